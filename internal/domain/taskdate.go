package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a task date cannot be normalized.
var ErrInvalidDate = errors.New("invalid task date")

// TaskDateLayout is the wire format for task dates: ISO 8601 in UTC with
// millisecond precision.
const TaskDateLayout = "2006-01-02T15:04:05.000Z"

// NormalizeTaskDate converts operator input into the wire format. A bare
// YYYY-MM-DD date means UTC midnight; a full RFC 3339 timestamp is converted
// to UTC. Anything else, including an empty string, is rejected.
func NormalizeTaskDate(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("%w: date is empty", ErrInvalidDate)
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC().Format(TaskDateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC().Format(TaskDateLayout), nil
	}
	return "", fmt.Errorf("%w: %q (use YYYY-MM-DD)", ErrInvalidDate, input)
}

// ParseTaskDate parses a wire-format date for display. It accepts any
// RFC 3339 timestamp, which includes TaskDateLayout.
func ParseTaskDate(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
