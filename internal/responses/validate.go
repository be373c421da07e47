package responses

import (
	"errors"
	"strconv"
)

var (
	ErrEmpty      = errors.New("Input cannot be empty. Please try again.")  //nolint:staticcheck // shown to the user verbatim
	ErrInvalidAge = errors.New("Please enter a valid positive number for age.") //nolint:staticcheck // shown to the user verbatim
)

// ValidatorFor returns the validation rule for the given field key.
func ValidatorFor(key string) func(string) error {
	if key == KeyAge {
		return ValidateAge
	}
	return ValidateNonEmpty
}

// ValidateNonEmpty rejects empty answers. Callers pass trimmed input.
func ValidateNonEmpty(s string) error {
	if s == "" {
		return ErrEmpty
	}
	return nil
}

// ValidateAge accepts a string made only of ASCII digits whose value is
// greater than zero.
func ValidateAge(s string) error {
	if s == "" {
		return ErrInvalidAge
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return ErrInvalidAge
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		// all digits and larger than any uint64, so positive
		return nil
	}
	if err != nil || n == 0 {
		return ErrInvalidAge
	}
	return nil
}
