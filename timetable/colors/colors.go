// Package colors assigns each subject a stable display color. The mapping
// is a pure function of the subject name so the same subject keeps the
// same color across days, weeks, and sessions without any shared state.
package colors

import "fmt"

const (
	saturation = 70
	lightness  = 50

	backgroundAlpha = 0.18
	borderAlpha     = 0.35
)

// Color is a background/text pair of CSS color strings for one subject.
type Color struct {
	Background string `json:"background"`
	Text       string `json:"text"`
}

// HashString is a 31-polynomial rolling hash with unsigned 32-bit
// wraparound. Collisions are accepted, they only cost two subjects
// sharing a hue.
func HashString(s string) uint32 {
	var h uint32
	for _, r := range s {
		h = h*31 + uint32(r)
	}
	return h
}

// ForSubject derives the hsla pair for a subject: a low alpha background
// and a stronger accent used for borders and text.
func ForSubject(subject string) Color {
	hue := HashString(subject) % 360
	return Color{
		Background: fmt.Sprintf("hsla(%d, %d%%, %d%%, %.2f)", hue, saturation, lightness, backgroundAlpha),
		Text:       fmt.Sprintf("hsla(%d, %d%%, %d%%, %.2f)", hue, saturation, lightness, borderAlpha),
	}
}
