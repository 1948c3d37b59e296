package query

import (
	"errors"
	"fmt"
)

// Sentinel errors for the taxonomy in spec.md §6/§7. Validate wraps the
// relevant sentinel in a *ValidationError so callers can both errors.Is
// against the category and inspect the offending field.
var (
	ErrDifferentStartEndRowInMultipart = errors.New("query: start and end row differ in a multi-part composition")
	ErrUndefinedLabel                  = errors.New("query: call references an undefined label")
	ErrNoMethods                       = errors.New("query: no methods given")
	ErrDuplicateShorthand              = errors.New("query: duplicate method shorthand")
	ErrNoCourseHeadInPart              = errors.New("query: course-head mask matches no course head in some part")
	ErrWrongCallingPositionsLength      = errors.New("query: calling-positions list has the wrong length for this stage")
	ErrSizeLimit                       = errors.New("query: graph size limit exceeded")
	ErrInconsistentStroke              = errors.New("query: stroke-specific music used with odd-length chunks")
	ErrUnachievableLength              = errors.New("query: length range is not achievable by any combination of chunks")
	ErrUnachievableMethodCount         = errors.New("query: a method's count range is not achievable")
	ErrTooMuchMethodCount              = errors.New("query: a method's minimum count exceeds what the length range allows")
	ErrTooLittleMethodCount            = errors.New("query: a method's maximum count is below what the length range requires")
)

// ValidationError reports a single failed validation rule, naming the
// sentinel it belongs to and the offending field or value (spec.md §7:
// "report the nearest achievable lengths on either side" for the
// length/count categories, carried in Nearest).
type ValidationError struct {
	Err     error
	Field   string
	Nearest []int // populated for the Unachievable* categories
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Field)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func validationErr(sentinel error, field string) *ValidationError {
	return &ValidationError{Err: sentinel, Field: field}
}
