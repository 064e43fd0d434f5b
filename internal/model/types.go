// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"
)

// CycleName identifies one of the three biorhythm cycles.
type CycleName string

// The canonical cycle names.
const (
	Physical     CycleName = "physical"
	Emotional    CycleName = "emotional"
	Intellectual CycleName = "intellectual"
)

// Cycle pairs a cycle name with its period in days.
type Cycle struct {
	Name       CycleName
	PeriodDays int
}

// Cycle periods in days, from the classic biorhythm triad.
const (
	PhysicalPeriodDays     = 23
	EmotionalPeriodDays    = 28
	IntellectualPeriodDays = 33
)

// The 23- and 28-day cycles realign every 644 days, all three every 21252.
const (
	PhysicalEmotionalRepeatDays = 644
	AllCyclesRepeatDays         = 21252
)

// DefaultCycles returns the canonical cycle triad in priority order:
// physical, emotional, intellectual. The slice is fresh on every call.
func DefaultCycles() []Cycle {
	return []Cycle{
		{Name: Physical, PeriodDays: PhysicalPeriodDays},
		{Name: Emotional, PeriodDays: EmotionalPeriodDays},
		{Name: Intellectual, PeriodDays: IntellectualPeriodDays},
	}
}

// Orientation selects the chart layout mode.
type Orientation string

// Recognized orientations.
const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// ParseOrientation converts a string to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case Vertical:
		return Vertical, nil
	case Horizontal:
		return Horizontal, nil
	default:
		return "", fmt.Errorf("%w: orientation must be %q or %q, got %q", ErrInvalidConfiguration, Vertical, Horizontal, s)
	}
}

// MinChartWidth is the narrowest chart that can still separate three
// markers around the zero line.
const MinChartWidth = 12

// Default chart dimensions.
const (
	DefaultChartWidth = 55
	DefaultDays       = 29
)

// Config defines validated chart settings.
type Config struct {
	Width       int
	Days        int
	Orientation Orientation
}

// NewConfig validates chart settings. Values are rejected, never clamped.
func NewConfig(width, days int, orientation Orientation) (Config, error) {
	if width < MinChartWidth {
		return Config{}, fmt.Errorf("%w: width must be >= %d, got %d", ErrInvalidConfiguration, MinChartWidth, width)
	}
	if days <= 0 {
		return Config{}, fmt.Errorf("%w: days must be > 0, got %d", ErrInvalidConfiguration, days)
	}
	if orientation != Vertical && orientation != Horizontal {
		return Config{}, fmt.Errorf("%w: orientation must be %q or %q, got %q", ErrInvalidConfiguration, Vertical, Horizontal, orientation)
	}
	return Config{Width: width, Days: days, Orientation: orientation}, nil
}

// DayRecord holds the computed cycle state for a single calendar day.
// Records are never mutated after assembly.
type DayRecord struct {
	Date      time.Time
	DayOffset int
	Values    map[CycleName]float64
	// Critical lists cycles with a zero crossing that day, in priority
	// order (physical, emotional, intellectual). Empty when none.
	Critical []CycleName
}

// IsCritical reports whether the given cycle crosses zero on this day.
func (r DayRecord) IsCritical(name CycleName) bool {
	for _, c := range r.Critical {
		if c == name {
			return true
		}
	}
	return false
}

// TimeSeriesResult is the hand-off object between the assembler and the
// renderer/serializer. Records are ordered by increasing date with no
// gaps or duplicates, and len(Records) == Config.Days.
type TimeSeriesResult struct {
	BirthDate time.Time
	PlotStart time.Time
	Config    Config
	Cycles    []Cycle
	Records   []DayRecord
}
