package task

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// ParseStatus maps raw text onto a Status after title-casing it.
// Empty text means the default. Reports false when the text does not name
// a recognized status; the returned value is then StatusPending.
func ParseStatus(text string) (Status, bool) {
	switch TitleCase(text) {
	case "", string(StatusPending):
		return StatusPending, true
	case string(StatusCompleted):
		return StatusCompleted, true
	default:
		return StatusPending, false
	}
}

// NormalizeStatus coerces raw text to the nearest recognized Status,
// defaulting to Pending.
func NormalizeStatus(text string) Status {
	s, _ := ParseStatus(text)
	return s
}
