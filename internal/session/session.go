// Package session holds the editor's application state: the video URL,
// the caption list, the in-progress draft, the playback position and
// the edit target. The browser page is stateless; every mutation goes
// through here.
package session

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/caption"
)

// renders a seconds value back into a draft field without trailing
// zeros, so editing 2.5 shows "2.5" and editing 3 shows "3"
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Session owns all editor state. HTTP handlers run on separate
// goroutines, so every operation takes the mutex; within an operation
// mutations are atomic, matching the single-threaded semantics of the
// browser surface.
type Session struct {
	mu sync.Mutex

	videoURL    string
	store       *caption.Store
	draft       caption.Draft
	currentTime float64
	editingID   string   // empty means the next commit appends
	pendingSeek *float64 // set by RequestSeek, consumed by TakeSeek
}

func New() *Session {
	return &Session{store: caption.NewStore()}
}

// read model for rendering
type Snapshot struct {
	VideoURL    string
	Captions    []caption.Caption
	Draft       caption.Draft
	CurrentTime float64
	EditingID   string
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		VideoURL:    s.videoURL,
		Captions:    s.store.List(),
		Draft:       s.draft,
		CurrentTime: s.currentTime,
		EditingID:   s.editingID,
	}
}

// SetVideoURL stores the URL handed to the playback surface.
// No validation of scheme or reachability; the surface deals with it.
func (s *Session) SetVideoURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videoURL = url
}

// partial draft update; nil fields are left as they are
type DraftPatch struct {
	Text  *string
	Start *string
	End   *string
}

// MergeDraft applies a partial update to the draft fields.
func (s *Session) MergeDraft(p DraftPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Text != nil {
		s.draft.Text = *p.Text
	}
	if p.Start != nil {
		s.draft.Start = *p.Start
	}
	if p.End != nil {
		s.draft.End = *p.End
	}
}

// CommitDraft validates the draft and either appends a new caption or,
// when an edit target is set, replaces that caption in place. On
// success the draft resets and edit mode clears; on error nothing
// changes.
func (s *Session) CommitDraft() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := caption.ParseDraft(s.draft)
	if err != nil {
		return err
	}

	if s.editingID != "" {
		if err := s.store.Update(s.editingID, c); err != nil {
			// edit target vanished (deleted between edit and commit);
			// fall through to append like a fresh caption
			s.store.Add(c)
		}
	} else {
		s.store.Add(c)
	}

	s.draft = caption.Draft{}
	s.editingID = ""
	return nil
}

// BeginEdit loads the caption into the draft and targets later commits
// at it.
func (s *Session) BeginEdit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.store.Get(id)
	if !ok {
		return fmt.Errorf("caption %s: %w", id, caption.ErrNotFound)
	}
	s.draft = caption.Draft{
		Text:  c.Text,
		Start: formatSeconds(c.Start),
		End:   formatSeconds(c.End),
	}
	s.editingID = id
	return nil
}

// DeleteCaption removes the caption. Deleting the caption under edit
// also leaves edit mode, so the next commit appends instead of
// silently retargeting a neighbour.
func (s *Session) DeleteCaption(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(id); err != nil {
		return err
	}
	if s.editingID == id {
		s.editingID = ""
		s.draft = caption.Draft{}
	}
	return nil
}

// ReportTime stores the playback surface's current position.
func (s *Session) ReportTime(t float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentTime = t
}

// RequestSeek records a seek for the playback surface to pick up.
// A second request before the first is taken overwrites it.
func (s *Session) RequestSeek(t float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingSeek = &t
}

// TakeSeek returns the pending seek target, if any, exactly once.
func (s *Session) TakeSeek() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingSeek == nil {
		return 0, false
	}
	t := *s.pendingSeek
	s.pendingSeek = nil
	return t, true
}

// Visible returns the captions active at the stored playback time.
func (s *Session) Visible() []caption.Caption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return caption.VisibleAt(s.store.List(), s.currentTime)
}

// VisibleAt returns the captions active at an explicit time.
func (s *Session) VisibleAt(t float64) []caption.Caption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return caption.VisibleAt(s.store.List(), t)
}

// ExportJSON serializes the caption list to a caption document.
func (s *Session) ExportJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return caption.Export(s.store.List())
}

// ImportJSON replaces the caption list with the parsed document.
// On error the existing list is untouched. Concurrent imports are
// last-wins.
func (s *Session) ImportJSON(data []byte) error {
	captions, err := caption.Import(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Replace(captions)
	return nil
}
