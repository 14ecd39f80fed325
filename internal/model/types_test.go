package model

import (
	"encoding/json"
	"testing"
)

const sampleTrip = `{
  "summary": {"duration_days": 2, "total_photos": 3, "unique_locations": 1, "start_date": "2024-06-01", "end_date": "2024-06-02"},
  "locations": [{"name": "Lisbon", "photo_count": 3, "date_range": "Jun 1 - Jun 2", "coordinates": {"latitude": 38.7223, "longitude": -9.1393}}],
  "itinerary": [
    {"day_number": 1, "formatted_date": "June 1, 2024", "day_name": "Saturday", "location": "Lisbon",
     "photos": [{"filepath": "photos/a.jpg", "filename": "a.jpg", "shutter_speed": 0.005, "iso": 400}], "photo_count": 1},
    {"formatted_date": "June 2, 2024", "day_name": "Sunday", "location": "Lisbon", "photos": [], "photo_count": 0}
  ],
  "all_photos": [
    {"filepath": "photos/a.jpg", "filename": "a.jpg", "shutter_speed": 0.005, "iso": 400},
    {"filepath": "photos/b.jpg", "filename": "b.jpg", "shutter_speed": "1/250", "iso": "200", "aperture": "f/2.8"},
    {"filepath": "photos/c.jpg", "filename": "c.jpg", "shutter_speed": null}
  ]
}`

func TestDecodeTripDocument(t *testing.T) {
	var doc TripDocument
	if err := json.Unmarshal([]byte(sampleTrip), &doc); err != nil {
		t.Fatalf("decoding trip: %v", err)
	}

	if doc.Summary.DurationDays != 2 {
		t.Errorf("expected duration 2, got %d", doc.Summary.DurationDays)
	}
	if !doc.Locations[0].HasCoordinates() {
		t.Error("expected Lisbon to carry coordinates")
	}
	if doc.Itinerary[1].Coordinates != nil {
		t.Error("expected day 2 without coordinates")
	}

	tests := []struct {
		idx          int
		shutter, iso FlexString
	}{
		{0, "0.005", "400"},
		{1, "1/250", "200"},
		{2, "", ""},
	}
	for _, tt := range tests {
		p := doc.AllPhotos[tt.idx]
		if p.ShutterSpeed != tt.shutter {
			t.Errorf("photo %d: expected shutter %q, got %q", tt.idx, tt.shutter, p.ShutterSpeed)
		}
		if p.ISO != tt.iso {
			t.Errorf("photo %d: expected iso %q, got %q", tt.idx, tt.iso, p.ISO)
		}
	}
}

func TestFlexStringMarshal(t *testing.T) {
	tests := []struct {
		in   FlexString
		want string
	}{
		{"400", `400`},
		{"0.005", `0.005`},
		{"1/250", `"1/250"`},
		{"NaN", `"NaN"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.in)
		if err != nil {
			t.Fatalf("marshal %q: %v", tt.in, err)
		}
		if string(got) != tt.want {
			t.Errorf("marshal %q = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFindPhoto(t *testing.T) {
	var doc TripDocument
	if err := json.Unmarshal([]byte(sampleTrip), &doc); err != nil {
		t.Fatalf("decoding trip: %v", err)
	}

	if p, ok := doc.FindPhoto("photos/b.jpg"); !ok || p.FileName != "b.jpg" {
		t.Errorf("expected b.jpg from all_photos, got %+v (found=%v)", p, ok)
	}
	if _, ok := doc.FindPhoto("photos/missing.jpg"); ok {
		t.Error("expected missing photo not to be found")
	}
}
