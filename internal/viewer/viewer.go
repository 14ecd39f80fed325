// Package viewer owns the application state of one page load: the loaded
// trip document, its rendered sections and the lightbox.
package viewer

import (
	"context"

	"github.com/philosophercode/itinerary-rewind-demo/internal/config"
	"github.com/philosophercode/itinerary-rewind-demo/internal/format"
	"github.com/philosophercode/itinerary-rewind-demo/internal/lightbox"
	"github.com/philosophercode/itinerary-rewind-demo/internal/loader"
	"github.com/philosophercode/itinerary-rewind-demo/internal/model"
	"github.com/philosophercode/itinerary-rewind-demo/internal/view"
)

// Viewer builds sessions from the configured fallback chain.
type Viewer struct {
	Loader *loader.Loader
	Map    config.MapConfig
}

// Session is one page load. The document is read-only once loaded.
type Session struct {
	Doc       *model.TripDocument
	Candidate string
	Page      view.Page
	Lightbox  lightbox.Controller
}

// Open loads the document and renders every section. On error no section
// is rendered and the caller shows view.NewErrorPage.
func (v *Viewer) Open(ctx context.Context) (*Session, error) {
	res, err := v.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{
		Doc:       res.Doc,
		Candidate: res.Candidate,
		Page:      view.Render(res.Doc, v.Map),
	}, nil
}

// ShowPhoto opens the lightbox on the photo with the given path. Unknown
// paths leave the lightbox as it was.
func (s *Session) ShowPhoto(path string) bool {
	p, ok := s.Doc.FindPhoto(path)
	if !ok {
		return false
	}
	s.Lightbox.Open(p.FilePath, format.PhotoCaption(p))
	return true
}

// Stats is a quick census of the loaded document.
type Stats struct {
	Candidate       string
	Days            int
	Photos          int
	Locations       int
	LocatedPlaces   int
	LocatedDays     int
	DaysWithoutText int
}

func (s *Session) Stats() Stats {
	st := Stats{
		Candidate: s.Candidate,
		Days:      len(s.Doc.Itinerary),
		Photos:    len(s.Doc.AllPhotos),
		Locations: len(s.Doc.Locations),
	}
	for _, loc := range s.Doc.Locations {
		if loc.HasCoordinates() {
			st.LocatedPlaces++
		}
	}
	for _, day := range s.Doc.Itinerary {
		if day.Coordinates != nil {
			st.LocatedDays++
		}
		if format.SplitDescription(day.Description).Empty() {
			st.DaysWithoutText++
		}
	}
	return st
}
