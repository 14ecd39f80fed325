package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// TripDocument is the pre-built itinerary the viewer renders.
type TripDocument struct {
	Summary       Summary        `json:"summary"`
	TripNarrative string         `json:"trip_narrative,omitempty"`
	Locations     []Location     `json:"locations"`
	Itinerary     []ItineraryDay `json:"itinerary"`
	AllPhotos     []Photo        `json:"all_photos"`
}

// Summary holds the headline trip counts.
type Summary struct {
	DurationDays    int    `json:"duration_days"`
	TotalPhotos     int    `json:"total_photos"`
	UniqueLocations int    `json:"unique_locations"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is a place visited during the trip.
type Location struct {
	Name        string       `json:"name"`
	PhotoCount  int          `json:"photo_count"`
	DateRange   string       `json:"date_range"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// ItineraryDay aggregates one calendar day of the trip.
type ItineraryDay struct {
	DayNumber     int          `json:"day_number,omitempty"`
	Date          string       `json:"date,omitempty"`
	FormattedDate string       `json:"formatted_date"`
	DayName       string       `json:"day_name"`
	Location      string       `json:"location"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	Description   string       `json:"description,omitempty"`
	Photos        []Photo      `json:"photos"`
	PhotoCount    int          `json:"photo_count"`
}

// Photo is one image with its pre-extracted metadata. Every field other
// than the path and name may be absent.
type Photo struct {
	FilePath     string       `json:"filepath"`
	FileName     string       `json:"filename"`
	Date         string       `json:"date,omitempty"`
	Time         string       `json:"time,omitempty"`
	CameraMake   string       `json:"camera_make,omitempty"`
	CameraModel  string       `json:"camera_model,omitempty"`
	Aperture     string       `json:"aperture,omitempty"`
	ShutterSpeed FlexString   `json:"shutter_speed,omitempty"`
	ISO          FlexString   `json:"iso,omitempty"`
	GPS          *Coordinates `json:"gps,omitempty"`
}

// FlexString accepts either a JSON string or a JSON number and keeps the
// literal text. Exposure fields are written both ways by the photo indexer.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	s := string(f)
	if _, err := strconv.ParseFloat(s, 64); err == nil && json.Valid([]byte(s)) {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

// HasCoordinates reports whether the location can be placed on the map.
func (l Location) HasCoordinates() bool { return l.Coordinates != nil }

// FindPhoto scans the itinerary and then the full photo list for the photo
// with the given file path.
func (d *TripDocument) FindPhoto(path string) (Photo, bool) {
	for _, day := range d.Itinerary {
		for _, p := range day.Photos {
			if p.FilePath == path {
				return p, true
			}
		}
	}
	for _, p := range d.AllPhotos {
		if p.FilePath == path {
			return p, true
		}
	}
	return Photo{}, false
}
