package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidItem       = errors.New("invalid item in list field")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidTime       = errors.New("invalid time")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrDanglingReference = errors.New("referenced event does not exist")
	ErrDuplicateSlug     = errors.New("an event with this slug already exists")
	ErrEventNotFound     = errors.New("event not found")
)

// MissingField reports a required field that is absent or blank.
// The returned error matches ErrMissingField under errors.Is.
func MissingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

// InvalidItem reports a list field containing a blank element.
func InvalidItem(name string) error {
	return fmt.Errorf("%w: %s", ErrInvalidItem, name)
}
