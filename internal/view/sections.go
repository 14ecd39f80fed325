package view

import (
	"github.com/philosophercode/itinerary-rewind-demo/internal/format"
	"github.com/philosophercode/itinerary-rewind-demo/internal/model"
)

// NoGPSCardNotice marks a location card without coordinates.
const NoGPSCardNotice = "No GPS data"

type LocationCard struct {
	Name       string
	PhotoCount int
	DateRange  string
	Coords     string
	HasCoords  bool
}

func RenderLocationCards(locations []model.Location) []LocationCard {
	cards := make([]LocationCard, 0, len(locations))
	for _, loc := range locations {
		card := LocationCard{
			Name:       loc.Name,
			PhotoCount: loc.PhotoCount,
			DateRange:  loc.DateRange,
			Coords:     NoGPSCardNotice,
		}
		if loc.Coordinates != nil {
			card.HasCoords = true
			card.Coords = format.Coords(loc.Coordinates.Latitude, loc.Coordinates.Longitude)
		}
		cards = append(cards, card)
	}
	return cards
}

// Thumbnail is a clickable photo with everything the lightbox needs.
type Thumbnail struct {
	Src      string
	Alt      string
	Time     string
	Camera   string
	Exposure string
	Caption  format.Caption
}

// HasDetails reports whether the thumbnail shows an EXIF strip.
func (t Thumbnail) HasDetails() bool {
	return t.Time != "" || t.Camera != "" || t.Exposure != ""
}

type TimelineEntry struct {
	DayNumber   int
	Date        string
	DayName     string
	Location    string
	PhotoLabel  string
	TimeRange   string
	Description format.Description
	Photos      []Thumbnail
}

// RenderTimeline emits one entry per itinerary day in document order, even
// for days without photos.
func RenderTimeline(itinerary []model.ItineraryDay) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(itinerary))
	for i, day := range itinerary {
		dayNumber := day.DayNumber
		if dayNumber == 0 {
			dayNumber = i + 1
		}

		thumbs := make([]Thumbnail, 0, len(day.Photos))
		times := make([]string, 0, len(day.Photos))
		for _, p := range day.Photos {
			times = append(times, p.Time)
			thumbs = append(thumbs, Thumbnail{
				Src:      p.FilePath,
				Alt:      p.FileName,
				Time:     p.Time,
				Camera:   format.Camera(p),
				Exposure: format.Exposure(p.Aperture, string(p.ShutterSpeed), string(p.ISO)),
				Caption:  format.PhotoCaption(p),
			})
		}

		entries = append(entries, TimelineEntry{
			DayNumber:   dayNumber,
			Date:        day.FormattedDate,
			DayName:     day.DayName,
			Location:    day.Location,
			PhotoLabel:  format.Plural(day.PhotoCount, "photo"),
			TimeRange:   format.TimeRange(times),
			Description: format.SplitDescription(day.Description),
			Photos:      thumbs,
		})
	}
	return entries
}

type GalleryTile struct {
	Src     string
	Alt     string
	Date    string
	Time    string
	Caption format.Caption
}

// HasOverlay reports whether the tile shows its date overlay.
func (g GalleryTile) HasOverlay() bool { return g.Date != "" }

// RenderGallery emits one tile per photo in document order.
func RenderGallery(photos []model.Photo) []GalleryTile {
	tiles := make([]GalleryTile, 0, len(photos))
	for _, p := range photos {
		tile := GalleryTile{
			Src:     p.FilePath,
			Alt:     p.FileName,
			Caption: format.PhotoCaption(p),
		}
		if p.Date != "" {
			tile.Date = format.Date(p.Date)
			tile.Time = p.Time
		}
		tiles = append(tiles, tile)
	}
	return tiles
}
