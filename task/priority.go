package task

import (
	"strings"
	"unicode"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the recognized priority values in display order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// PriorityNames returns the recognized priorities joined for prompts,
// e.g. "Low/Medium/High".
func PriorityNames() string {
	names := make([]string, 0, 3)
	for _, p := range Priorities() {
		names = append(names, string(p))
	}
	return strings.Join(names, "/")
}

// ParsePriority maps raw text onto a Priority after title-casing it.
// Empty text means the default. Reports false when the text does not name
// a recognized priority; the returned value is then PriorityLow.
func ParsePriority(text string) (Priority, bool) {
	switch TitleCase(text) {
	case "", string(PriorityLow):
		return PriorityLow, true
	case string(PriorityMedium):
		return PriorityMedium, true
	case string(PriorityHigh):
		return PriorityHigh, true
	default:
		return PriorityLow, false
	}
}

// NormalizePriority coerces raw text to the nearest recognized Priority,
// defaulting to Low.
func NormalizePriority(text string) Priority {
	p, _ := ParsePriority(text)
	return p
}

// TitleCase trims the text and normalizes it to an upper first rune with a
// lowercase tail ("hIGH" -> "High").
func TitleCase(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	runes := []rune(strings.ToLower(text))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
