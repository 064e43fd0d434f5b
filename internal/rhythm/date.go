package rhythm

import "time"

// DayOffset returns the whole-day difference from birth to target,
// ignoring time-of-day. Zero on the birth date itself, negative for
// days before birth. Both dates are normalized to midnight UTC so the
// subtraction is exact across leap years and month boundaries. The
// difference is taken on Unix seconds rather than time.Duration, which
// would saturate on spans over ~292 years.
func DayOffset(birth, target time.Time) int {
	b := midnightUTC(birth)
	t := midnightUTC(target)
	return int((t.Unix() - b.Unix()) / 86400)
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
