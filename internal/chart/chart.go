// Package chart renders a biorhythm time series as a fixed-width ASCII
// grid, day-per-line (vertical) or cycle-per-row (horizontal).
package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/biorhythm/internal/model"
)

const (
	zeroGlyph         = ':'
	collisionGlyph    = '*'
	criticalCollision = '!'
	plotDayFill       = '-'
	criticalDayFill   = '.'
	dayFill           = ' '

	longDateFormat  = "Mon Jan 02 2006"
	shortDateFormat = "Mon Jan 02"
	axisDateFormat  = "02.01."

	headerRule = "============================================================"
)

var cycleMarkers = map[model.CycleName]rune{
	model.Physical:     'p',
	model.Emotional:    'e',
	model.Intellectual: 'i',
}

// Render writes the full chart (header, body, critical-day summary) for
// the result. Orientation and width come from the result metadata; both
// were validated when the Config was constructed.
func Render(w io.Writer, res model.TimeSeriesResult) error {
	lines, err := Lines(res)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

// Lines renders the chart as a slice of output lines.
func Lines(res model.TimeSeriesResult) ([]string, error) {
	if res.Config.Orientation != model.Vertical && res.Config.Orientation != model.Horizontal {
		return nil, fmt.Errorf("%w: unknown orientation %q", model.ErrInvalidConfiguration, res.Config.Orientation)
	}
	lines := headerLines(res)
	if res.Config.Orientation == model.Horizontal {
		lines = append(lines, horizontalLines(res)...)
	} else {
		lines = append(lines, verticalLines(res)...)
	}
	lines = append(lines, "")
	lines = append(lines, criticalSummaryLines(res)...)
	return lines, nil
}

// column maps a cycle value in [-1, 1] to a column index, centered on
// the chart's mid column and clamped against floating rounding at the
// extremes.
func column(v float64, width int) int {
	col := int(math.Round((v + 1) / 2 * float64(width-1)))
	if col < 0 {
		col = 0
	}
	if col >= width {
		col = width - 1
	}
	return col
}

// plotDate is the day the chart window is centered on.
func plotDate(res model.TimeSeriesResult) model.DayRecord {
	idx := res.Config.Days / 2
	if idx >= len(res.Records) {
		idx = len(res.Records) - 1
	}
	return res.Records[idx]
}

func marker(name model.CycleName, critical bool) rune {
	m, ok := cycleMarkers[name]
	if !ok {
		m = '?'
	}
	if critical {
		return []rune(strings.ToUpper(string(m)))[0]
	}
	return m
}

func headerLines(res model.TimeSeriesResult) []string {
	plot := plotDate(res)
	daysAlive := plot.DayOffset
	lines := []string{
		headerRule,
		fmt.Sprintf("BIORHYTHM CHART (%s) - FOR ENTERTAINMENT ONLY", strings.ToUpper(string(res.Config.Orientation))),
		"WARNING: This theory has NO SCIENTIFIC BASIS",
		headerRule,
		"Birth:  " + res.BirthDate.Format(longDateFormat),
		"Plot:   " + plot.Date.Format(longDateFormat),
		fmt.Sprintf("Alive:  %s days", groupThousands(daysAlive)),
		"",
		"Legend:",
		"p:      Physical (23-day cycle) - coordination, strength, well-being",
		"e:      Emotional (28-day cycle) - creativity, sensitivity, mood",
		"i:      Intellectual (33-day cycle) - alertness, analytical functioning",
		"*:      Multiple cycles overlap at this position",
		"!:      Critical day (cycle near zero - traditionally considered risky)",
		"",
	}
	repeat2328 := model.PhysicalEmotionalRepeatDays - mod(daysAlive, model.PhysicalEmotionalRepeatDays)
	repeatAll := model.AllCyclesRepeatDays - mod(daysAlive, model.AllCyclesRepeatDays)
	lines = append(lines,
		fmt.Sprintf("Cycle Info: Physical+Emotional repeat in %d days", repeat2328),
		fmt.Sprintf("            All cycles repeat in %d days", repeatAll),
		"",
	)
	return lines
}

// groupThousands formats n with comma separators (12345 -> "12,345").
func groupThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// mod is the non-negative remainder, so repeat countdowns stay sensible
// for records before the birth date.
func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

func criticalSummaryLines(res model.TimeSeriesResult) []string {
	var rows [][]string
	for _, rec := range res.Records {
		if len(rec.Critical) == 0 {
			continue
		}
		names := make([]string, len(rec.Critical))
		for i, c := range rec.Critical {
			names[i] = string(c)
		}
		rows = append(rows, []string{rec.Date.Format(shortDateFormat), strings.Join(names, ", ")})
	}
	if len(rows) == 0 {
		return []string{"No critical days in the displayed period."}
	}
	lines := []string{"CRITICAL DAYS detected in chart period:"}
	for _, row := range formatTable([]string{"Date", "Cycles"}, rows, nil) {
		lines = append(lines, "  "+row)
	}
	return lines
}
