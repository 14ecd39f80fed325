package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/philosophercode/itinerary-rewind-demo/internal/lightbox"
	"github.com/philosophercode/itinerary-rewind-demo/internal/staging"
	"github.com/philosophercode/itinerary-rewind-demo/internal/view"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"json": toJSON,
}).ParseFS(templateFS, "templates/*.html"))

// IndexData feeds the viewer page.
type IndexData struct {
	Page     view.Page
	Lightbox lightbox.View
}

// UploadData feeds the staging page.
type UploadData struct {
	Entries    []UploadEntry
	CountLabel string
	Notice     string
}

// UploadEntry is one staged file as the page draws it.
type UploadEntry struct {
	ID      string
	Name    string
	Preview template.URL
}

func newUploadData(entries []staging.Entry, notice string) UploadData {
	data := UploadData{
		Entries:    make([]UploadEntry, 0, len(entries)),
		CountLabel: staging.Label(len(entries)),
		Notice:     notice,
	}
	// Previews are data: URLs that staging.DataURL built from image bytes.
	for _, e := range entries {
		data.Entries = append(data.Entries, UploadEntry{
			ID:      e.ID.String(),
			Name:    e.Name,
			Preview: template.URL(e.Preview),
		})
	}
	return data
}

// RenderIndex writes the viewer page.
func RenderIndex(w io.Writer, data IndexData) error {
	return pages.ExecuteTemplate(w, "index.html", data)
}

// RenderError writes the page that replaces the viewer when loading fails.
func RenderError(w io.Writer, data view.ErrorPage) error {
	return pages.ExecuteTemplate(w, "error.html", data)
}

// RenderUpload writes the staging page.
func RenderUpload(w io.Writer, data UploadData) error {
	return pages.ExecuteTemplate(w, "upload.html", data)
}

// WriteStatic copies the embedded stylesheet and scripts into dir/static.
func WriteStatic(dir string) error {
	return fs.WalkDir(staticFS, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		body, err := staticFS.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, body, 0o644)
	})
}

// writePage renders into a buffer first so a template error never leaves a
// half-written page behind.
func (s *Server) writePage(w http.ResponseWriter, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.log().Error("rendering page", zap.Error(err))
		http.Error(w, "rendering page failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
