// Package dates normalizes every date representation the backend emits to a
// single canonical YYYY-MM-DD key. All range checks and holiday lookups in
// the rest of the codebase compare keys, never raw representations.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// KeyLayout is the canonical day-key format. Fixed width and zero padded so
// lexicographic comparison matches chronological order.
const KeyLayout = "2006-01-02"

// ZeroKey is the key produced by an unset backend timestamp. Records
// carrying it must be excluded from range filtering, not matched.
const ZeroKey = "0001-01-01"

// ErrInvalidDate reports a value that cannot be resolved to a calendar date
var ErrInvalidDate = errors.New("invalid date input")

// ToKey converts a date-like value to its canonical key. It accepts a
// time.Time (local calendar fields of its own location) or a string that is
// either a plain date or a date with a time component (ISO "T" separator or
// a space). Two representations of the same calendar day always normalize
// to the same key.
func ToKey(value any) (string, error) {
	switch v := value.(type) {
	case time.Time:
		return v.Format(KeyLayout), nil
	case string:
		return keyFromString(v)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, value)
	}
}

// Key formats a time.Time as a day key. Shorthand for the common case where
// no error is possible.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

func keyFromString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	// Strip any time component: "2024-06-03T00:00:00Z" and
	// "2024-06-03 00:00:00" both reduce to "2024-06-03".
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}

	if _, err := time.Parse(KeyLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return s, nil
}

// InRange reports whether key falls within [startKey, endKey], inclusive on
// both ends. Valid only for canonical keys, where string order is date order.
func InRange(key, startKey, endKey string) bool {
	return key >= startKey && key <= endKey
}

// MonthWindow returns the keys of the first and last day of the given month
func MonthWindow(year int, month time.Month) (startKey, endKey string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return Key(first), Key(last)
}

// Parse converts a canonical key back to a time.Time at midnight UTC
func Parse(key string) (time.Time, error) {
	t, err := time.Parse(KeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, key)
	}
	return t, nil
}

// WeekdayName returns the English weekday name for a canonical key, or the
// empty string if the key is malformed.
func WeekdayName(key string) string {
	t, err := Parse(key)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

// IsWeekend reports whether t falls on a Saturday or Sunday
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
