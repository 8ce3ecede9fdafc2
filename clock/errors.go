package clock

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which validation rule rejected a time string.
type ErrorKind int

const (
	// The text did not split into exactly three non-empty segments
	WrongSegmentCount ErrorKind = iota + 1
	// A segment was not a non-negative decimal integer
	NonNumericSegment
	// A component fell outside its valid range
	OutOfRange
)

var (
	ErrWrongSegmentCount = errors.New("wrong segment count")
	ErrNonNumericSegment = errors.New("non-numeric segment")
	ErrOutOfRange        = errors.New("value out of range")
)

func (k ErrorKind) String() string {
	switch k {
	case WrongSegmentCount:
		return "wrong segment count"
	case NonNumericSegment:
		return "non-numeric segment"
	case OutOfRange:
		return "out of range"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is returned by ParseTime and NewTimeOfDay.
type ParseError struct {
	Kind  ErrorKind
	Input string
	// Field is the offending component ("hour", "minute" or "second").
	// Empty for WrongSegmentCount.
	Field   string
	Segment string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case WrongSegmentCount:
		return fmt.Sprintf("parse time %q: want three non-empty H:M:S segments", e.Input)
	case NonNumericSegment:
		return fmt.Sprintf("parse time %q: %s %q is not a non-negative integer", e.Input, e.Field, e.Segment)
	case OutOfRange:
		lo, hi := fieldRange(e.Field)
		return fmt.Sprintf("parse time %q: %s %s not in [%d,%d]", e.Input, e.Field, e.Segment, lo, hi)
	default:
		return fmt.Sprintf("parse time %q: %s", e.Input, e.Kind)
	}
}

// Unwrap lets callers match a ParseError with errors.Is against the
// sentinel for its kind.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case WrongSegmentCount:
		return ErrWrongSegmentCount
	case NonNumericSegment:
		return ErrNonNumericSegment
	case OutOfRange:
		return ErrOutOfRange
	default:
		return nil
	}
}
