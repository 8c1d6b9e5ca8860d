package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/caption"
	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/session"
)

// caption lists stay small; anything bigger than this is not a
// caption document
const maxImportBytes = 4 << 20

// wire shape of a caption inside the API (the export file format has
// no id field; the API does, so rows can address captions)
type captionJSON struct {
	ID    string  `json:"id"`
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type draftJSON struct {
	Text  string `json:"text"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type stateJSON struct {
	VideoURL    string        `json:"videoUrl"`
	Captions    []captionJSON `json:"captions"`
	Draft       draftJSON     `json:"draft"`
	CurrentTime float64       `json:"currentTime"`
	EditingID   string        `json:"editingId"`
}

func toCaptionJSON(captions []caption.Caption) []captionJSON {
	out := make([]captionJSON, len(captions))
	for i, c := range captions {
		out[i] = captionJSON{ID: c.ID, Text: c.Text, Start: c.Start, End: c.End}
	}
	return out
}

func toStateJSON(snap session.Snapshot) stateJSON {
	return stateJSON{
		VideoURL:    snap.VideoURL,
		Captions:    toCaptionJSON(snap.Captions),
		Draft:       draftJSON{Text: snap.Draft.Text, Start: snap.Draft.Start, End: snap.Draft.End},
		CurrentTime: snap.CurrentTime,
		EditingID:   snap.EditingID,
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// maps the user-visible error kinds to a notification payload
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, caption.ErrIncomplete),
		errors.Is(err, caption.ErrInvalidTime),
		errors.Is(err, caption.ErrMalformedImport):
		status = http.StatusBadRequest
	case errors.Is(err, caption.ErrNotFound):
		status = http.StatusNotFound
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toStateJSON(s.session.Snapshot()))
}

func (s *Server) handleSetVideo(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, caption.ErrMalformedImport)
		return
	}

	s.session.SetVideoURL(body.URL)
	s.logger.Infow("Video URL set", "url", body.URL)
	respondJSON(w, http.StatusOK, toStateJSON(s.session.Snapshot()))
}

func (s *Server) handleMergeDraft(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text  *string `json:"text"`
		Start *string `json:"start"`
		End   *string `json:"end"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, caption.ErrMalformedImport)
		return
	}

	s.session.MergeDraft(session.DraftPatch{
		Text:  body.Text,
		Start: body.Start,
		End:   body.End,
	})
	respondJSON(w, http.StatusOK, toStateJSON(s.session.Snapshot()))
}

func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	if err := s.session.CommitDraft(); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toStateJSON(s.session.Snapshot()))
}

func (s *Server) handleBeginEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.session.BeginEdit(id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toStateJSON(s.session.Snapshot()))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.session.DeleteCaption(id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toStateJSON(s.session.Snapshot()))
}

func (s *Server) handleVisible(w http.ResponseWriter, r *http.Request) {
	var visible []caption.Caption
	if raw := r.URL.Query().Get("t"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, caption.ErrInvalidTime)
			return
		}
		visible = s.session.VisibleAt(t)
	} else {
		visible = s.session.Visible()
	}
	respondJSON(w, http.StatusOK, toCaptionJSON(visible))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.session.ExportJSON()
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="captions.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		respondError(w, err)
		return
	}

	if err := s.session.ImportJSON(data); err != nil {
		s.logger.Warnw("Import rejected", "error", err)
		respondError(w, err)
		return
	}

	snap := s.session.Snapshot()
	s.logger.Infow("Captions imported", "count", len(snap.Captions))
	respondJSON(w, http.StatusOK, toStateJSON(snap))
}

func (s *Server) handleReportTime(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Time float64 `json:"time"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, caption.ErrMalformedImport)
		return
	}

	s.session.ReportTime(body.Time)
	respondJSON(w, http.StatusOK, toCaptionJSON(s.session.Visible()))
}

func (s *Server) handleRequestSeek(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Time float64 `json:"time"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, caption.ErrMalformedImport)
		return
	}

	s.session.RequestSeek(body.Time)
	respondJSON(w, http.StatusOK, map[string]float64{"time": body.Time})
}

// handlePlayback reports the stored time and hands out a pending seek
// at most once, so the surface applies each requested seek exactly once.
func (s *Server) handlePlayback(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		CurrentTime float64  `json:"currentTime"`
		Seek        *float64 `json:"seek"`
	}{
		CurrentTime: s.session.Snapshot().CurrentTime,
	}
	if t, ok := s.session.TakeSeek(); ok {
		resp.Seek = &t
	}
	respondJSON(w, http.StatusOK, resp)
}
