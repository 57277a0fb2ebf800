package config

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GenerateTaskID generates an 8-character random lowercase hex task ID.
// Uniqueness is probabilistic only, which is plenty at personal-list scale.
func GenerateTaskID() string {
	const alphabet = "0123456789abcdef"
	const length = 8
	id, err := gonanoid.Generate(alphabet, length)
	if err != nil {
		// Fallback if the system entropy source fails
		return "00000000"
	}
	return id
}
