// Package rhythm implements the biorhythm cycle mathematics: per-day
// sine values, calendar day offsets, zero-crossing detection, and the
// time-series assembler.
package rhythm

import (
	"fmt"
	"math"

	"github.com/verte-zerg/biorhythm/internal/model"
)

// Value computes the cycle value sin(2π·dayOffset/periodDays) in [-1, 1].
// The function is odd in dayOffset and periodic with period periodDays;
// negative offsets (days before birth) are valid input.
func Value(dayOffset, periodDays int) (float64, error) {
	if periodDays <= 0 {
		return 0, fmt.Errorf("%w: got %d", model.ErrInvalidPeriod, periodDays)
	}
	return math.Sin(2 * math.Pi * float64(dayOffset) / float64(periodDays)), nil
}
