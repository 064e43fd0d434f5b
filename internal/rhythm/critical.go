package rhythm

import "math"

// DefaultTolerance is the |value| bound under which a day counts as a
// zero crossing.
const DefaultTolerance = 0.1

// Crossing classifies a day's relation to a cycle's zero line.
type Crossing int

// Crossing states.
const (
	CrossingNone Crossing = iota
	CrossingAscending
	CrossingDescending
)

// String implements fmt.Stringer.
func (c Crossing) String() string {
	switch c {
	case CrossingAscending:
		return "ascending"
	case CrossingDescending:
		return "descending"
	default:
		return "none"
	}
}

// Classify reports whether the cycle crosses zero at the given day
// offset, and in which direction. A day is critical when the cycle
// value lies within tolerance of zero; the direction comes from the
// sign of the derivative cos(2π·dayOffset/periodDays), so each day is
// classified independently of its neighbors.
func Classify(dayOffset, periodDays int, tolerance float64) (Crossing, error) {
	v, err := Value(dayOffset, periodDays)
	if err != nil {
		return CrossingNone, err
	}
	if math.Abs(v) >= tolerance {
		return CrossingNone, nil
	}
	if math.Cos(2*math.Pi*float64(dayOffset)/float64(periodDays)) > 0 {
		return CrossingAscending, nil
	}
	return CrossingDescending, nil
}
