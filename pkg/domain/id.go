package domain

import "github.com/google/uuid"

const shortIdLength = 6

// NewShortId generates a randomized identifier for a new record:
// the first 6 characters of a random UUID.
//
// No uniqueness check is performed against existing rows. A collision is
// rejected by the primary-key constraint at insert time, and that error
// propagates to the caller as-is.
func NewShortId() string {
	return uuid.NewString()[:shortIdLength]
}
