package web

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/philosophercode/itinerary-rewind-demo/internal/format"
	"github.com/philosophercode/itinerary-rewind-demo/internal/view"
	"github.com/philosophercode/itinerary-rewind-demo/internal/viewer"
	"go.uber.org/zap"
)

// openSession loads the trip document for one request. On failure it writes
// the error page and returns nil.
func (s *Server) openSession(w http.ResponseWriter, r *http.Request) *viewer.Session {
	sess, err := s.Viewer.Open(r.Context())
	if err != nil {
		s.log().Error("loading trip data", zap.Error(err))
		s.writePage(w, http.StatusInternalServerError, func(out io.Writer) error {
			return RenderError(out, view.NewErrorPage())
		})
		return nil
	}
	return sess
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.openSession(w, r)
	if sess == nil {
		return
	}

	if path := r.URL.Query().Get("photo"); path != "" {
		if !sess.ShowPhoto(path) {
			s.log().Debug("photo not in trip", zap.String("photo", path))
		}
	}

	s.writePage(w, http.StatusOK, func(out io.Writer) error {
		return RenderIndex(out, IndexData{Page: sess.Page, Lightbox: sess.Lightbox.View()})
	})
}

func (s *Server) handleTrip(w http.ResponseWriter, r *http.Request) {
	sess, err := s.Viewer.Open(r.Context())
	if err != nil {
		s.log().Error("loading trip data", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, sess.Doc)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	sess, err := s.Viewer.Open(r.Context())
	if err != nil {
		s.log().Error("loading trip data", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, sess.Page.Map)
}

// handlePhoto answers the lightbox caption for ?path=.
func (s *Server) handlePhoto(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "missing 'path' parameter", http.StatusBadRequest)
		return
	}

	sess, err := s.Viewer.Open(r.Context())
	if err != nil {
		s.log().Error("loading trip data", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	p, ok := sess.Doc.FindPhoto(path)
	if !ok {
		http.Error(w, "photo not found", http.StatusNotFound)
		return
	}
	writeJSON(w, struct {
		Src     string         `json:"src"`
		Caption format.Caption `json:"caption"`
	}{p.FilePath, format.PhotoCaption(p)})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if v == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
