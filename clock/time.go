package clock

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/scheerer/berlin-uhr/internal/logging"
)

var logger = logging.New("clock")

const (
	separator = ":"

	fieldHour   = "hour"
	fieldMinute = "minute"
	fieldSecond = "second"
)

// TimeOfDay is a validated wall-clock time. The zero value is midnight.
type TimeOfDay struct {
	hour   int
	minute int
	second int
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }
func (t TimeOfDay) Second() int { return t.second }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

// NewTimeOfDay validates the components against their ranges.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	input := fmt.Sprintf("%d:%d:%d", hour, minute, second)
	values := [3]int{hour, minute, second}
	for i, field := range [3]string{fieldHour, fieldMinute, fieldSecond} {
		if err := checkRange(input, field, strconv.Itoa(values[i]), values[i]); err != nil {
			return TimeOfDay{}, err
		}
	}
	return TimeOfDay{hour: hour, minute: minute, second: second}, nil
}

// ParseTime parses "H:M:S". Components need not be zero-padded ("3:5:9"
// is valid) but no signs, spaces or other characters are accepted.
func ParseTime(text string) (TimeOfDay, error) {
	t, err := parseTime(text)
	if err != nil {
		logger.With(zap.String("input", text), zap.Error(err)).Debug("Rejected time")
	}
	return t, err
}

func parseTime(text string) (TimeOfDay, error) {
	segments := strings.Split(text, separator)
	if len(segments) != 3 {
		return TimeOfDay{}, &ParseError{Kind: WrongSegmentCount, Input: text}
	}
	for _, s := range segments {
		if s == "" {
			return TimeOfDay{}, &ParseError{Kind: WrongSegmentCount, Input: text}
		}
	}

	fields := [3]string{fieldHour, fieldMinute, fieldSecond}
	var values [3]int
	for i, s := range segments {
		if !isDigits(s) {
			return TimeOfDay{}, &ParseError{Kind: NonNumericSegment, Input: text, Field: fields[i], Segment: s}
		}
	}
	for i, s := range segments {
		v, err := strconv.Atoi(s)
		if err != nil {
			// only digits reach here, so the failure is an overflow
			return TimeOfDay{}, &ParseError{Kind: OutOfRange, Input: text, Field: fields[i], Segment: s}
		}
		if err := checkRange(text, fields[i], s, v); err != nil {
			return TimeOfDay{}, err
		}
		values[i] = v
	}

	return TimeOfDay{hour: values[0], minute: values[1], second: values[2]}, nil
}

func checkRange(input, field, segment string, v int) error {
	lo, hi := fieldRange(field)
	if v < lo || v > hi {
		return &ParseError{Kind: OutOfRange, Input: input, Field: field, Segment: segment}
	}
	return nil
}

func fieldRange(field string) (int, int) {
	if field == fieldHour {
		return 0, 23
	}
	return 0, 59
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
