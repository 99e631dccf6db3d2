package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrUnknownCategory = errors.New("invalid category")
	ErrUnknownUnit     = errors.New("unsupported unit")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidValue    = errors.New("value must be a finite number")
	ErrOutOfRange      = errors.New("result is out of range")
)

// ValidationError describes a caller mistake: a missing or malformed request
// field, an unknown category or a unit outside the category.
type ValidationError struct {
	// Field is the request field at fault (value, from_unit, to_unit, category).
	Field string
	// Value is the offending raw input, empty when the field was missing.
	Value string
	// Category is set for unit errors.
	Category Category
	Err      error
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingField):
		return fmt.Sprintf("%s: %s", e.Err, e.Field)
	case errors.Is(e.Err, ErrUnknownUnit) && e.Category != "":
		return fmt.Sprintf("%s %q for category %q (%s)", e.Err, e.Value, e.Category, e.Field)
	case e.Value != "":
		return fmt.Sprintf("%s: %q", e.Err, e.Value)
	default:
		return e.Err.Error()
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func unknownUnit(c Category, field, unit string) error {
	return &ValidationError{Field: field, Value: unit, Category: c, Err: ErrUnknownUnit}
}

// checkFinite rejects results that overflowed float64.
func checkFinite(c Category, value, result float64) (float64, error) {
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, &ValidationError{
			Field:    "value",
			Value:    strconv.FormatFloat(value, 'g', -1, 64),
			Category: c,
			Err:      ErrOutOfRange,
		}
	}
	return result, nil
}
