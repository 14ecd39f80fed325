package view

import (
	"github.com/philosophercode/itinerary-rewind-demo/internal/config"
	"github.com/philosophercode/itinerary-rewind-demo/internal/model"
)

// NoGPSNotice is shown in place of the map when no location has coordinates.
const NoGPSNotice = "No GPS data available for map"

// LatLng is a map point in Leaflet's [lat, lng] order.
type LatLng [2]float64

// Map describes the Leaflet map the browser builds. When Placeholder is set
// no map object is constructed.
type Map struct {
	Placeholder string   `json:"placeholder,omitempty"`
	Center      LatLng   `json:"center"`
	Zoom        int      `json:"zoom"`
	Tiles       Tiles    `json:"tiles"`
	Markers     []Marker `json:"markers"`
	Route       []LatLng `json:"route,omitempty"`
	Bounds      []LatLng `json:"bounds,omitempty"`
	Padding     int      `json:"padding"`
}

// Tiles is the slippy-map tile layer.
type Tiles struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"maxZoom"`
}

// Marker is one location pin with its popup.
type Marker struct {
	Position   LatLng `json:"position"`
	Name       string `json:"name"`
	PhotoCount int    `json:"photoCount"`
	DateRange  string `json:"dateRange"`
}

// HasMap reports whether a map object should be built.
func (m Map) HasMap() bool { return m.Placeholder == "" }

// RenderMap places markers from locations but draws the route and fits the
// bounds from itinerary days. The two point sets are independent.
func RenderMap(locations []model.Location, itinerary []model.ItineraryDay, mc config.MapConfig) Map {
	var located []model.Location
	for _, loc := range locations {
		if loc.HasCoordinates() {
			located = append(located, loc)
		}
	}
	if len(located) == 0 {
		return Map{Placeholder: NoGPSNotice}
	}

	var sumLat, sumLon float64
	markers := make([]Marker, 0, len(located))
	for _, loc := range located {
		sumLat += loc.Coordinates.Latitude
		sumLon += loc.Coordinates.Longitude
		markers = append(markers, Marker{
			Position:   LatLng{loc.Coordinates.Latitude, loc.Coordinates.Longitude},
			Name:       loc.Name,
			PhotoCount: loc.PhotoCount,
			DateRange:  loc.DateRange,
		})
	}
	n := float64(len(located))

	var points []LatLng
	for _, day := range itinerary {
		if day.Coordinates != nil {
			points = append(points, LatLng{day.Coordinates.Latitude, day.Coordinates.Longitude})
		}
	}

	m := Map{
		Center: LatLng{sumLat / n, sumLon / n},
		Zoom:   mc.Zoom,
		Tiles: Tiles{
			URL:         mc.TileURL,
			Attribution: mc.Attribution,
			MaxZoom:     mc.MaxZoom,
		},
		Markers: markers,
		Bounds:  points,
		Padding: mc.Padding,
	}
	if len(points) > 1 {
		m.Route = points
	}
	return m
}
