package chart

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/biorhythm/internal/model"
)

// verticalLines renders one chart line per day, in chronological order.
// Each line is a short date label, a space, and a Config.Width-column
// field holding the zero line and the cycle markers.
func verticalLines(res model.TimeSeriesResult) []string {
	width := res.Config.Width
	plot := plotDate(res)
	datePad := len(shortDateFormat) + 1

	lines := captionLines(width, datePad)
	for _, rec := range res.Records {
		isPlotDay := rec.Date.Equal(plot.Date)
		lines = append(lines, rec.Date.Format(shortDateFormat)+" "+dayLine(res, rec, isPlotDay))
	}
	lines = append(lines, strings.Repeat(" ", datePad)+percentages(plot))
	return lines
}

func captionLines(width, datePad int) []string {
	const caption = "PASSIVE  CRITICAL  ACTIVE"
	mid := column(0, width)
	pad := datePad + mid - len(caption)/2
	if pad < 0 {
		pad = 0
	}
	axis := "-100% " + strings.Repeat("=", width-12) + " +100%"
	return []string{
		strings.Repeat(" ", pad) + caption,
		strings.Repeat(" ", datePad) + axis,
	}
}

// dayLine lays out a single day's field. Markers are placed in the
// cycle priority order carried by the result (physical first), so a
// collision always keeps the highest-priority marker deterministic: the
// cell flips to the multi-marker glyph when a lower-priority cycle
// lands on an occupied column.
func dayLine(res model.TimeSeriesResult, rec model.DayRecord, isPlotDay bool) string {
	width := res.Config.Width
	fill := dayFill
	if len(rec.Critical) > 0 {
		fill = criticalDayFill
	}
	if isPlotDay {
		fill = plotDayFill
	}
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = fill
	}
	cells[column(0, width)] = zeroGlyph

	occupied := make(map[int]bool, len(res.Cycles))
	for _, c := range res.Cycles {
		col := column(rec.Values[c.Name], width)
		if occupied[col] {
			if len(rec.Critical) > 0 {
				cells[col] = criticalCollision
			} else {
				cells[col] = collisionGlyph
			}
			continue
		}
		cells[col] = marker(c.Name, rec.IsCritical(c.Name))
		occupied[col] = true
	}
	return string(cells)
}

func percentages(rec model.DayRecord) string {
	return fmt.Sprintf("p:%+.1f%% e:%+.1f%% i:%+.1f%%",
		rec.Values[model.Physical]*100,
		rec.Values[model.Emotional]*100,
		rec.Values[model.Intellectual]*100)
}
