package format

import "github.com/philosophercode/itinerary-rewind-demo/internal/model"

// Caption is the lightbox text for one photo. Lines are omitted when the
// fields behind them are missing.
type Caption struct {
	Title    string   `json:"title"`
	Lines    []string `json:"lines,omitempty"`
	Exposure string   `json:"exposure,omitempty"`
}

// PhotoCaption composes the lightbox caption for p.
func PhotoCaption(p model.Photo) Caption {
	c := Caption{Title: p.FileName}

	if p.Date != "" && p.Time != "" {
		c.Lines = append(c.Lines, Date(p.Date)+" at "+p.Time)
	}
	if camera := Camera(p); camera != "" {
		c.Lines = append(c.Lines, camera)
	}
	if p.GPS != nil {
		c.Lines = append(c.Lines, "📍 "+Coords(p.GPS.Latitude, p.GPS.Longitude))
	}
	c.Exposure = Exposure(p.Aperture, string(p.ShutterSpeed), string(p.ISO))

	return c
}

// Camera renders "<make> <model>" when both are known.
func Camera(p model.Photo) string {
	if p.CameraMake == "" || p.CameraModel == "" {
		return ""
	}
	return p.CameraMake + " " + p.CameraModel
}
