package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/philosophercode/itinerary-rewind-demo/internal/model"
)

// Summary mirrors the headline counters.
type Summary struct {
	Duration  int
	Photos    int
	Locations int
	DateRange string
}

func RenderSummary(s model.Summary) Summary {
	return Summary{
		Duration:  s.DurationDays,
		Photos:    s.TotalPhotos,
		Locations: s.UniqueLocations,
		DateRange: s.StartDate + " - " + s.EndDate,
	}
}

// Narrative is either the authored narrative markup or a synthesized intro.
type Narrative struct {
	Authored bool
	HTML     template.HTML
	Heading  string
	Text     string
	Excerpt  string
}

var narrativePolicy = bluemonday.UGCPolicy()

const excerptLen = 200

// RenderNarrative prefers the authored narrative, sanitized, and falls back
// to one sentence built from the summary counts.
func RenderNarrative(authored string, s model.Summary) Narrative {
	if strings.TrimSpace(authored) != "" {
		clean := narrativePolicy.Sanitize(authored)
		return Narrative{
			Authored: true,
			HTML:     template.HTML(clean),
			Excerpt:  excerpt(clean),
		}
	}

	text := fmt.Sprintf("Explore your %d-day adventure through %d unique locations, captured in %d stunning photographs.",
		s.DurationDays, s.UniqueLocations, s.TotalPhotos)
	return Narrative{Heading: "Your Journey", Text: text, Excerpt: text}
}

// excerpt flattens narrative markup to its first excerptLen characters of
// text, keeping block elements apart.
func excerpt(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	var blocks []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			blocks = append(blocks, t)
		}
	})
	if len(blocks) == 0 {
		blocks = append(blocks, doc.Text())
	}

	text := strings.Join(strings.Fields(strings.Join(blocks, " ")), " ")
	runes := []rune(text)
	if len(runes) <= excerptLen {
		return text
	}
	return strings.TrimSpace(string(runes[:excerptLen])) + "…"
}
