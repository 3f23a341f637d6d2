package id

import "github.com/google/uuid"

// NewRequestID returns a random (v4) UUID in its canonical 36-character form.
func NewRequestID() string {
	return uuid.NewString()
}

// Valid reports whether s parses as a UUID.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
