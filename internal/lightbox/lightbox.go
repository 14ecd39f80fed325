// Package lightbox is the two-state photo overlay.
package lightbox

import "github.com/philosophercode/itinerary-rewind-demo/internal/format"

type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Target is the element a click landed on.
type Target int

const (
	TargetBackground Target = iota
	TargetImage
	TargetCaption
	TargetClose
)

// EscapeKey is the key name that dismisses the overlay.
const EscapeKey = "Escape"

// Controller holds the overlay state. The zero value is hidden.
type Controller struct {
	state   State
	src     string
	caption format.Caption
}

// View is what the page needs to draw the overlay.
type View struct {
	Visible bool
	Src     string
	Caption format.Caption
}

// Open shows src with caption, whatever the current state.
func (c *Controller) Open(src string, caption format.Caption) {
	c.state = Visible
	c.src = src
	c.caption = caption
}

// Close hides the overlay. It reports whether the state changed.
func (c *Controller) Close() bool {
	if c.state == Hidden {
		return false
	}
	c.state = Hidden
	return true
}

// HandleClick closes on the close control or the backdrop. Clicks on the
// photo or its caption leave the overlay open.
func (c *Controller) HandleClick(t Target) bool {
	switch t {
	case TargetClose, TargetBackground:
		return c.Close()
	default:
		return false
	}
}

// HandleKey closes on Escape while visible.
func (c *Controller) HandleKey(key string) bool {
	if key != EscapeKey || c.state != Visible {
		return false
	}
	return c.Close()
}

func (c *Controller) State() State { return c.state }

func (c *Controller) View() View {
	if c.state == Hidden {
		return View{}
	}
	return View{Visible: true, Src: c.src, Caption: c.caption}
}
