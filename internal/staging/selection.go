// Package staging keeps the photos picked on the upload screen. Nothing here
// transmits files anywhere; the list lives only as long as the process.
package staging

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNoImages is returned when a selection contains no image files.
	ErrNoImages = errors.New("please select image files only")
	// ErrIndexOutOfRange is returned by Remove for a bad index.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// File is one incoming file from a drop or the file picker.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Entry is a staged image. Preview is empty until its data URL is ready.
type Entry struct {
	ID          uuid.UUID
	Name        string
	ContentType string
	Size        int64
	Preview     string
}

// Selection is the ordered staged list. Order is insertion order and is
// never affected by when previews finish.
type Selection struct {
	mu      sync.Mutex
	entries []Entry
	pending sync.WaitGroup

	log     *zap.Logger
	preview func(File) string
}

// New returns an empty selection.
func New(log *zap.Logger) *Selection {
	if log == nil {
		log = zap.NewNop()
	}
	return &Selection{log: log, preview: DataURL}
}

// Add appends the image files among files, in order, and starts one preview
// per accepted file. When none of files is an image the list is unchanged.
func (s *Selection) Add(files []File) ([]Entry, error) {
	type accepted struct {
		entry Entry
		file  File
	}

	var batch []accepted
	for _, f := range files {
		ct, ok := imageType(f)
		if !ok {
			s.log.Debug("skipping non-image file", zap.String("name", f.Name), zap.String("content_type", ct))
			continue
		}
		f.ContentType = ct
		batch = append(batch, accepted{
			entry: Entry{ID: uuid.New(), Name: f.Name, ContentType: ct, Size: int64(len(f.Data))},
			file:  f,
		})
	}
	if len(batch) == 0 {
		return nil, ErrNoImages
	}

	added := make([]Entry, 0, len(batch))
	s.mu.Lock()
	for _, a := range batch {
		s.entries = append(s.entries, a.entry)
		added = append(added, a.entry)
	}
	s.mu.Unlock()

	for _, a := range batch {
		s.pending.Add(1)
		go func(id uuid.UUID, f File) {
			defer s.pending.Done()
			s.setPreview(id, s.preview(f))
		}(a.entry.ID, a.file)
	}

	s.log.Info("staged files", zap.Int("accepted", len(batch)), zap.Int("offered", len(files)))
	return added, nil
}

// Remove drops the entry at index i. Remaining entries keep their order.
func (s *Selection) Remove(i int) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.entries) {
		return Entry{}, fmt.Errorf("removing %d of %d: %w", i, len(s.entries), ErrIndexOutOfRange)
	}
	removed := s.entries[i]
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	return removed, nil
}

// Entries returns a snapshot of the list.
func (s *Selection) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

func (s *Selection) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// CountLabel renders "1 photo selected" or "<n> photos selected".
func (s *Selection) CountLabel() string { return Label(s.Count()) }

// Label is the count line for n staged photos.
func Label(n int) string {
	if n == 1 {
		return "1 photo selected"
	}
	return fmt.Sprintf("%d photos selected", n)
}

// Wait blocks until every started preview has finished or ctx is done.
func (s *Selection) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// setPreview attaches a finished preview. Previews for entries removed in the
// meantime are dropped.
func (s *Selection) setPreview(id uuid.UUID, preview string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Preview = preview
			return
		}
	}
}

// DataURL encodes f as a data: URL usable as an <img> source.
func DataURL(f File) string {
	return "data:" + f.ContentType + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}

// imageType returns the file's media type and whether it is an image. The
// declared type wins unless it is missing or generic, then content is sniffed.
func imageType(f File) (string, bool) {
	ct := strings.TrimSpace(f.ContentType)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" || ct == "application/octet-stream" {
		ct = mimetype.Detect(f.Data).String()
		if i := strings.IndexByte(ct, ';'); i >= 0 {
			ct = ct[:i]
		}
	}
	return ct, strings.HasPrefix(ct, "image/")
}
