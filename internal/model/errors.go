package model

import "errors"

// Sentinel errors for the biorhythm core.
// Use errors.Is to check: errors.Is(err, model.ErrInvalidPeriod)
var (
	ErrInvalidPeriod        = errors.New("biorhythm: cycle period must be positive")
	ErrInvalidConfiguration = errors.New("biorhythm: invalid chart configuration")
	ErrInvalidDateRange     = errors.New("biorhythm: invalid calendar date")
)
