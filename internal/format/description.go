package format

import (
	"regexp"
	"strings"
)

var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]+`)

// Description is a day narrative split into an intro paragraph and bullets.
type Description struct {
	Intro   string
	Bullets []string
}

// Empty reports whether there is anything to show.
func (d Description) Empty() bool { return d.Intro == "" && len(d.Bullets) == 0 }

// SplitDescription breaks text into sentences on . ! ? boundaries. The first
// ceil(n/3) sentences, capped at three, form the intro; the rest become
// bullets. Abbreviations and decimals are not special-cased.
func SplitDescription(text string) Description {
	sentences := sentenceRe.FindAllString(text, -1)
	if len(sentences) == 0 {
		return Description{}
	}

	introLen := min(3, (len(sentences)+2)/3)

	intro := make([]string, 0, introLen)
	for _, s := range sentences[:introLen] {
		intro = append(intro, strings.TrimSpace(s))
	}

	var bullets []string
	for _, s := range sentences[introLen:] {
		bullets = append(bullets, strings.TrimSpace(s))
	}

	return Description{Intro: strings.Join(intro, " "), Bullets: bullets}
}
