// Package format turns raw trip fields into display strings. Every function
// is pure and tolerates missing or malformed input.
package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// InvalidDate is emitted for dates that cannot be parsed.
const InvalidDate = "Invalid Date"

// Separator joins exposure fragments.
const Separator = " • "

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006:01:02 15:04:05",
	"2006:01:02",
}

// Date renders an ISO-like date as "Jan 2, 2006". Unparseable input yields
// InvalidDate rather than an error.
func Date(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return InvalidDate
}

// Exposure joins aperture, shutter speed and ISO into one line. Absent or
// unparseable fields are left out; the result is empty if nothing remains.
func Exposure(aperture, shutter, iso string) string {
	var parts []string

	if v, ok := parseNumber(strings.TrimPrefix(strings.TrimSpace(aperture), "f/")); ok {
		parts = append(parts, "f/"+strconv.FormatFloat(v, 'f', 1, 64))
	}

	if v, ok := parseNumber(shutter); ok && v > 0 {
		if v >= 1 {
			parts = append(parts, strconv.FormatFloat(v, 'f', -1, 64)+"s")
		} else {
			parts = append(parts, "1/"+strconv.FormatFloat(math.Round(1/v), 'f', -1, 64)+"s")
		}
	}

	if iso = strings.TrimSpace(iso); iso != "" {
		if v, ok := parseNumber(iso); !ok || v != 0 {
			parts = append(parts, "ISO "+iso)
		}
	}

	return strings.Join(parts, Separator)
}

// Coords renders a point to four decimal places.
func Coords(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', 4, 64) + ", " + strconv.FormatFloat(lon, 'f', 4, 64)
}

// TimeRange summarises the times present in a day: "first - last", the
// single value when only one is present, or "".
func TimeRange(times []string) string {
	var present []string
	for _, t := range times {
		if t != "" {
			present = append(present, t)
		}
	}
	switch len(present) {
	case 0:
		return ""
	case 1:
		return present[0]
	default:
		return present[0] + " - " + present[len(present)-1]
	}
}

// Plural renders "1 photo" or "3 photos".
func Plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)`)

// parseNumber reads the leading decimal number of s, mirroring how loosely
// typed exposure values are read ("f/2.8" after trimming, "2 sec"). A
// fraction such as "1/250" is evaluated.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, nok := parseNumber(num)
		d, dok := parseNumber(den)
		if !nok || !dok || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
