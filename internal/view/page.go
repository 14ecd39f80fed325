// Package view turns a trip document into declarative page sections. Each
// renderer reads only its slice of the document and returns a fresh value,
// so rendering twice never accumulates content.
package view

import (
	"github.com/philosophercode/itinerary-rewind-demo/internal/config"
	"github.com/philosophercode/itinerary-rewind-demo/internal/model"
)

// LoadErrorNotice replaces the whole page when the trip document is missing.
const LoadErrorNotice = "Please make sure trip_data.json exists in the same directory."

// Page is the full viewer, sections in render order.
type Page struct {
	Summary     Summary
	Narrative   Narrative
	Map         Map
	Locations   []LocationCard
	Timeline    []TimelineEntry
	Gallery     []GalleryTile
	Description string
}

// ErrorPage is shown instead of Page when loading failed.
type ErrorPage struct {
	Title  string
	Notice string
}

// NewErrorPage returns the static load-failure notice.
func NewErrorPage() ErrorPage {
	return ErrorPage{Title: "Error loading trip data", Notice: LoadErrorNotice}
}

// Render runs every section renderer in order against doc.
func Render(doc *model.TripDocument, mc config.MapConfig) Page {
	narrative := RenderNarrative(doc.TripNarrative, doc.Summary)
	return Page{
		Summary:     RenderSummary(doc.Summary),
		Narrative:   narrative,
		Map:         RenderMap(doc.Locations, doc.Itinerary, mc),
		Locations:   RenderLocationCards(doc.Locations),
		Timeline:    RenderTimeline(doc.Itinerary),
		Gallery:     RenderGallery(doc.AllPhotos),
		Description: narrative.Excerpt,
	}
}
