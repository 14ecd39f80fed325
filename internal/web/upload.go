package web

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/philosophercode/itinerary-rewind-demo/internal/staging"
	"go.uber.org/zap"
)

const (
	// ImagesOnlyNotice is shown when a selection held files that are not images.
	ImagesOnlyNotice = "Please select image files only"
	// NoticeHeader carries the notice for scripted uploads that never render
	// the returned page.
	NoticeHeader = "X-Notice"
)

func (s *Server) uploadData(notice string) UploadData {
	return newUploadData(s.Staging.Entries(), notice)
}

func (s *Server) handleUploadPage(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, func(out io.Writer) error {
		return RenderUpload(out, s.uploadData(""))
	})
}

// handleUploadAdd stages the multipart "files" field. Drops and the file
// picker both post here.
func (s *Server) handleUploadAdd(w http.ResponseWriter, r *http.Request) {
	if s.MaxUploadBytes > 0 {
		if r.ContentLength > s.MaxUploadBytes {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, s.MaxUploadBytes)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, fmt.Sprintf("parsing upload: %v", err), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	files := make([]staging.File, 0, len(headers))
	for _, fh := range headers {
		f, err := readPart(fh)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		files = append(files, f)
	}

	added, err := s.Staging.Add(files)
	if errors.Is(err, staging.ErrNoImages) {
		w.Header().Set(NoticeHeader, ImagesOnlyNotice)
		s.writePage(w, http.StatusBadRequest, func(out io.Writer) error {
			return RenderUpload(out, s.uploadData(ImagesOnlyNotice))
		})
		return
	}
	if err != nil {
		s.log().Error("staging files", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if len(added) < len(files) {
		w.Header().Set(NoticeHeader, ImagesOnlyNotice)
		s.writePage(w, http.StatusOK, func(out io.Writer) error {
			return RenderUpload(out, s.uploadData(ImagesOnlyNotice))
		})
		return
	}
	http.Redirect(w, r, "/upload", http.StatusSeeOther)
}

func (s *Server) handleUploadRemove(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}
	if _, err := s.Staging.Remove(i); err != nil {
		if errors.Is(err, staging.ErrIndexOutOfRange) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/upload", http.StatusSeeOther)
}

// handleUploadContinue moves on to the viewer. The staged files stay where
// they are.
func (s *Server) handleUploadContinue(w http.ResponseWriter, r *http.Request) {
	s.log().Info("continuing to viewer", zap.Int("staged", s.Staging.Count()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type stagedFile struct {
	Index       int    `json:"index"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Preview     string `json:"preview,omitempty"`
}

func (s *Server) handleStagedFiles(w http.ResponseWriter, r *http.Request) {
	entries := s.Staging.Entries()
	out := make([]stagedFile, 0, len(entries))
	for i, e := range entries {
		out = append(out, stagedFile{
			Index:       i,
			ID:          e.ID.String(),
			Name:        e.Name,
			ContentType: e.ContentType,
			Size:        e.Size,
			Preview:     e.Preview,
		})
	}
	writeJSON(w, struct {
		Count int          `json:"count"`
		Label string       `json:"label"`
		Files []stagedFile `json:"files"`
	}{len(out), staging.Label(len(out)), out})
}

func readPart(fh *multipart.FileHeader) (staging.File, error) {
	f, err := fh.Open()
	if err != nil {
		return staging.File{}, fmt.Errorf("opening %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return staging.File{}, fmt.Errorf("reading %s: %w", fh.Filename, err)
	}
	return staging.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
