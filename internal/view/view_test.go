package view

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/philosophercode/itinerary-rewind-demo/internal/config"
	"github.com/philosophercode/itinerary-rewind-demo/internal/model"
)

func coords(lat, lon float64) *model.Coordinates {
	return &model.Coordinates{Latitude: lat, Longitude: lon}
}

func testTrip() *model.TripDocument {
	return &model.TripDocument{
		Summary: model.Summary{DurationDays: 3, TotalPhotos: 4, UniqueLocations: 3, StartDate: "2024-06-01", EndDate: "2024-06-03"},
		Locations: []model.Location{
			{Name: "Lisbon", PhotoCount: 2, DateRange: "Jun 1", Coordinates: coords(38, -9)},
			{Name: "Sintra", PhotoCount: 1, DateRange: "Jun 2"},
			{Name: "Porto", PhotoCount: 1, DateRange: "Jun 3", Coordinates: coords(42, -8)},
		},
		Itinerary: []model.ItineraryDay{
			{
				DayNumber: 1, FormattedDate: "June 1, 2024", DayName: "Saturday", Location: "Lisbon",
				Coordinates: coords(38.7, -9.1), PhotoCount: 2,
				Description: "Arrived. Walked. Ate.",
				Photos: []model.Photo{
					{FilePath: "p/1.jpg", FileName: "1.jpg", Time: "09:00", Aperture: "f/1.8"},
					{FilePath: "p/2.jpg", FileName: "2.jpg", Time: "18:30"},
				},
			},
			{FormattedDate: "June 2, 2024", DayName: "Sunday", Location: "Sintra", PhotoCount: 0},
			{
				FormattedDate: "June 3, 2024", DayName: "Monday", Location: "Porto",
				Coordinates: coords(41.1, -8.6), PhotoCount: 1,
				Photos: []model.Photo{{FilePath: "p/3.jpg", FileName: "3.jpg"}},
			},
		},
		AllPhotos: []model.Photo{
			{FilePath: "p/1.jpg", FileName: "1.jpg", Date: "2024-06-01", Time: "09:00"},
			{FilePath: "p/2.jpg", FileName: "2.jpg", Date: "2024-06-01"},
			{FilePath: "p/3.jpg", FileName: "3.jpg"},
			{FilePath: "p/4.jpg", FileName: "4.jpg"},
		},
	}
}

func TestRenderSummary(t *testing.T) {
	got := RenderSummary(testTrip().Summary)
	want := Summary{Duration: 3, Photos: 4, Locations: 3, DateRange: "2024-06-01 - 2024-06-03"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderNarrativeFallback(t *testing.T) {
	n := RenderNarrative("", model.Summary{DurationDays: 5, UniqueLocations: 4, TotalPhotos: 120})
	if n.Authored {
		t.Error("expected synthesized narrative")
	}
	if n.Heading != "Your Journey" {
		t.Errorf("expected heading 'Your Journey', got %q", n.Heading)
	}
	want := "Explore your 5-day adventure through 4 unique locations, captured in 120 stunning photographs."
	if n.Text != want {
		t.Errorf("unexpected text %q", n.Text)
	}
}

func TestRenderNarrativeAuthoredIsSanitized(t *testing.T) {
	n := RenderNarrative(`<h3>Portugal</h3><p>Seven days <em>by train</em>.</p><script>alert(1)</script>`, model.Summary{})
	if !n.Authored {
		t.Fatal("expected authored narrative")
	}
	if strings.Contains(string(n.HTML), "<script") {
		t.Errorf("expected script stripped, got %q", n.HTML)
	}
	if !strings.Contains(string(n.HTML), "<em>by train</em>") {
		t.Errorf("expected inline markup kept, got %q", n.HTML)
	}
	if n.Excerpt != "Portugal Seven days by train." {
		t.Errorf("unexpected excerpt %q", n.Excerpt)
	}
}

func TestRenderMapNoCoordinates(t *testing.T) {
	locs := []model.Location{{Name: "Nowhere"}, {Name: "Elsewhere"}}
	days := []model.ItineraryDay{{Coordinates: coords(1, 2)}}

	m := RenderMap(locs, days, config.Defaults().Map)
	if m.HasMap() {
		t.Fatal("expected no map object")
	}
	if m.Placeholder != NoGPSNotice {
		t.Errorf("expected placeholder notice, got %q", m.Placeholder)
	}
	if len(m.Markers) != 0 || len(m.Route) != 0 || len(m.Bounds) != 0 {
		t.Errorf("expected empty map, got %+v", m)
	}
}

func TestRenderMapMarkersFromLocationsBoundsFromItinerary(t *testing.T) {
	doc := testTrip()
	m := RenderMap(doc.Locations, doc.Itinerary, config.Defaults().Map)

	if !m.HasMap() {
		t.Fatal("expected a map")
	}
	if diff := cmp.Diff(LatLng{40, -8.5}, m.Center); diff != "" {
		t.Errorf("center should be the mean of located locations (-want +got):\n%s", diff)
	}
	if m.Zoom != 7 {
		t.Errorf("expected zoom 7, got %d", m.Zoom)
	}

	wantMarkers := []Marker{
		{Position: LatLng{38, -9}, Name: "Lisbon", PhotoCount: 2, DateRange: "Jun 1"},
		{Position: LatLng{42, -8}, Name: "Porto", PhotoCount: 1, DateRange: "Jun 3"},
	}
	if diff := cmp.Diff(wantMarkers, m.Markers); diff != "" {
		t.Errorf("markers mismatch (-want +got):\n%s", diff)
	}

	wantPoints := []LatLng{{38.7, -9.1}, {41.1, -8.6}}
	if diff := cmp.Diff(wantPoints, m.Route); diff != "" {
		t.Errorf("route should follow itinerary day order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantPoints, m.Bounds); diff != "" {
		t.Errorf("bounds should come from itinerary points (-want +got):\n%s", diff)
	}
	if m.Tiles.MaxZoom != 19 || !strings.Contains(m.Tiles.Attribution, "OpenStreetMap") {
		t.Errorf("unexpected tiles %+v", m.Tiles)
	}
}

func TestRenderMapSingleItineraryPointHasNoRoute(t *testing.T) {
	locs := []model.Location{{Name: "A", Coordinates: coords(1, 1)}}
	days := []model.ItineraryDay{{Coordinates: coords(1, 1)}, {}}

	m := RenderMap(locs, days, config.Defaults().Map)
	if m.Route != nil {
		t.Errorf("expected no route for a single point, got %v", m.Route)
	}
	if len(m.Bounds) != 1 {
		t.Errorf("expected bounds over the one point, got %v", m.Bounds)
	}
}

func TestRenderLocationCards(t *testing.T) {
	cards := RenderLocationCards(testTrip().Locations)
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	if cards[0].Coords != "38.0000, -9.0000" || !cards[0].HasCoords {
		t.Errorf("unexpected Lisbon card %+v", cards[0])
	}
	if cards[1].Coords != NoGPSCardNotice || cards[1].HasCoords {
		t.Errorf("unexpected Sintra card %+v", cards[1])
	}
}

func TestRenderTimeline(t *testing.T) {
	entries := RenderTimeline(testTrip().Itinerary)
	if len(entries) != 3 {
		t.Fatalf("expected one entry per day, got %d", len(entries))
	}

	first := entries[0]
	if first.DayNumber != 1 || first.PhotoLabel != "2 photos" || first.TimeRange != "09:00 - 18:30" {
		t.Errorf("unexpected first entry %+v", first)
	}
	if first.Description.Intro != "Arrived." || len(first.Description.Bullets) != 2 {
		t.Errorf("unexpected description %+v", first.Description)
	}
	if first.Photos[0].Exposure != "f/1.8" || !first.Photos[0].HasDetails() {
		t.Errorf("unexpected thumbnail %+v", first.Photos[0])
	}
	if first.Photos[0].Caption.Title != "1.jpg" {
		t.Errorf("expected caption title 1.jpg, got %q", first.Photos[0].Caption.Title)
	}

	second := entries[1]
	if second.DayNumber != 2 {
		t.Errorf("expected positional day number 2, got %d", second.DayNumber)
	}
	if len(second.Photos) != 0 || second.TimeRange != "" || !second.Description.Empty() {
		t.Errorf("expected empty day, got %+v", second)
	}
	if second.PhotoLabel != "0 photos" {
		t.Errorf("expected '0 photos', got %q", second.PhotoLabel)
	}

	third := entries[2]
	if third.PhotoLabel != "1 photo" || third.TimeRange != "" || third.Photos[0].HasDetails() {
		t.Errorf("unexpected third entry %+v", third)
	}
}

func TestRenderGallery(t *testing.T) {
	doc := testTrip()
	tiles := RenderGallery(doc.AllPhotos)
	if len(tiles) != len(doc.AllPhotos) {
		t.Fatalf("expected %d tiles, got %d", len(doc.AllPhotos), len(tiles))
	}
	for i, tile := range tiles {
		if tile.Src != doc.AllPhotos[i].FilePath {
			t.Errorf("tile %d out of order: %q", i, tile.Src)
		}
	}
	if !tiles[0].HasOverlay() || tiles[0].Date != "Jun 1, 2024" || tiles[0].Time != "09:00" {
		t.Errorf("unexpected first tile %+v", tiles[0])
	}
	if tiles[2].HasOverlay() {
		t.Errorf("expected no overlay without a date, got %+v", tiles[2])
	}
	if tiles[0].Caption.Title != "1.jpg" {
		t.Errorf("unexpected caption %+v", tiles[0].Caption)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	doc := testTrip()
	mc := config.Defaults().Map

	first := Render(doc, mc)
	second := Render(doc, mc)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-rendering changed the page (-first +second):\n%s", diff)
	}
	if len(second.Timeline) != len(doc.Itinerary) || len(second.Gallery) != len(doc.AllPhotos) {
		t.Errorf("re-rendering appended content: %d entries, %d tiles", len(second.Timeline), len(second.Gallery))
	}
}

func TestErrorPage(t *testing.T) {
	p := NewErrorPage()
	if p.Title != "Error loading trip data" || p.Notice != LoadErrorNotice {
		t.Errorf("unexpected error page %+v", p)
	}
}
