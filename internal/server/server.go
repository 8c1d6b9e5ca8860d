// Package server exposes the caption editor over HTTP: an embedded
// editor page and a JSON API the page drives. All state lives in a
// session; the browser is a rendering and playback surface.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/logging"
	"github.com/nikhilgahlaut/VideoCaptioningApp/internal/session"
)

type Server struct {
	session *session.Session
	logger  *logging.Logger
	http    *http.Server
}

func New(addr string, sess *session.Session, logger *logging.Logger) *Server {
	s := &Server{
		session: sess,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleEditorPage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/video", s.handleSetVideo)
		r.Post("/draft", s.handleMergeDraft)

		r.Route("/captions", func(r chi.Router) {
			r.Post("/commit", s.handleCommit)
			r.Post("/{id}/edit", s.handleBeginEdit)
			r.Delete("/{id}", s.handleDelete)
			r.Get("/visible", s.handleVisible)
			r.Get("/export", s.handleExport)
			r.Post("/import", s.handleImport)
		})

		r.Route("/playback", func(r chi.Router) {
			r.Get("/", s.handlePlayback)
			r.Post("/time", s.handleReportTime)
			r.Post("/seek", s.handleRequestSeek)
		})
	})

	s.http = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks until the server stops or ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	s.logger.Infow("Editor running", "addr", "http://"+s.http.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
