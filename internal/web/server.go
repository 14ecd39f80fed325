package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/philosophercode/itinerary-rewind-demo/internal/staging"
	"github.com/philosophercode/itinerary-rewind-demo/internal/viewer"
	"go.uber.org/zap"
)

//go:embed all:static
var staticFS embed.FS

// Server serves the trip viewer, the upload staging screen and the photos.
type Server struct {
	Viewer  *viewer.Viewer
	Staging *staging.Selection
	DataDir string
	Addr    string
	Logger  *zap.Logger

	// MaxUploadBytes caps one staging request body.
	MaxUploadBytes int64
}

// Handler builds the route table.
func (s *Server) Handler() (http.Handler, error) {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/index.html", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)

	// API endpoints
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/trip", s.handleTrip).Methods(http.MethodGet)
	api.HandleFunc("/map", s.handleMap).Methods(http.MethodGet)
	api.HandleFunc("/photo", s.handlePhoto).Methods(http.MethodGet)
	api.HandleFunc("/upload/files", s.handleStagedFiles).Methods(http.MethodGet)

	// Upload staging screen
	r.HandleFunc("/upload", s.handleUploadPage).Methods(http.MethodGet)
	r.HandleFunc("/upload.html", s.handleUploadPage).Methods(http.MethodGet)
	r.HandleFunc("/upload", s.handleUploadAdd).Methods(http.MethodPost)
	r.HandleFunc("/upload/files/{index:[0-9]+}/remove", s.handleUploadRemove).Methods(http.MethodPost)
	r.HandleFunc("/upload/continue", s.handleUploadContinue).Methods(http.MethodPost)

	// Static files
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating sub filesystem: %w", err)
	}
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// Photos and anything else alongside the trip document
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.DataDir))).Methods(http.MethodGet, http.MethodHead)

	return withRecovery(s.log(), withRequestLog(s.log(), r)), nil
}

func (s *Server) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	h, err := s.Handler()
	if err != nil {
		return err
	}

	fmt.Printf("Serving at http://%s\n", s.Addr)
	return http.ListenAndServe(s.Addr, h)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("ok"))
}
