package model

import (
	"fmt"
	"time"
)

// Supported birth year range.
const (
	MinYear = 1
	MaxYear = 9999
)

// NewDate builds a midnight-UTC date from calendar components.
// time.Date silently normalizes out-of-range components (Feb 30 becomes
// Mar 2); that normalization is treated as an error here, never accepted.
func NewDate(year, month, day int) (time.Time, error) {
	if year < MinYear || year > MaxYear {
		return time.Time{}, fmt.Errorf("%w: year must be between %d and %d, got %d", ErrInvalidDateRange, MinYear, MaxYear, year)
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrInvalidDateRange, month)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: day must be between 1 and 31, got %d", ErrInvalidDateRange, day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d does not exist", ErrInvalidDateRange, year, month, day)
	}
	return t, nil
}

// ParseDate parses a YYYY-MM-DD date into a midnight-UTC time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	return t, nil
}
