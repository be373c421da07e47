package summary

import (
	"errors"
	"strconv"
)

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Rating is the 1-5 satisfaction score stored with a saved summary.
type Rating int

var (
	ErrRatingNotNumber  = errors.New("Please enter a number.")           //nolint:staticcheck // shown to the user verbatim
	ErrRatingOutOfRange = errors.New("Rating must be between 1 and 5.") //nolint:staticcheck // shown to the user verbatim
)

// ParseRating converts a trimmed answer into a Rating.
func ParseRating(s string) (Rating, error) {
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrRatingOutOfRange
	}
	if err != nil {
		return 0, ErrRatingNotNumber
	}
	r := Rating(n)
	if !r.Valid() {
		return 0, ErrRatingOutOfRange
	}
	return r, nil
}

// ValidateRating is ParseRating shaped as a prompt validator.
func ValidateRating(s string) error {
	_, err := ParseRating(s)
	return err
}

// Valid reports whether r is within [MinRating, MaxRating].
func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}
