package chart

import (
	"math"
	"strings"

	"github.com/verte-zerg/biorhythm/internal/model"
)

// fillRamp maps a cycle value to a density rune, low to high.
var fillRamp = []rune(" .:-=+*#@")

const rowLabelWidth = 12

// horizontalLines renders one timeline row per cycle, one column per
// day. A cell shows the cycle's marker only on a zero-crossing day;
// otherwise it holds a fill rune proportional to the value.
func horizontalLines(res model.TimeSeriesResult) []string {
	days := len(res.Records)
	lines := make([]string, 0, len(res.Cycles)+2)
	for _, c := range res.Cycles {
		var row strings.Builder
		row.WriteString(rowLabel(string(c.Name)))
		for _, rec := range res.Records {
			if rec.IsCritical(c.Name) {
				row.WriteRune(marker(c.Name, true))
				continue
			}
			row.WriteRune(fillRune(rec.Values[c.Name]))
		}
		lines = append(lines, row.String())
	}
	lines = append(lines, rowLabel("date")+dateAxis(res, days))
	return lines
}

func rowLabel(name string) string {
	label := strings.ToUpper(name[:1]) + name[1:]
	if len(label) > rowLabelWidth {
		label = label[:rowLabelWidth]
	}
	return label + strings.Repeat(" ", rowLabelWidth-len(label)) + ": "
}

func fillRune(v float64) rune {
	idx := int(math.Round((v + 1) / 2 * float64(len(fillRamp)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(fillRamp) {
		idx = len(fillRamp) - 1
	}
	return fillRamp[idx]
}

func dateAxis(res model.TimeSeriesResult, days int) string {
	axis := make([]rune, days)
	for i := range axis {
		axis[i] = ' '
	}
	interval := days / 6
	if interval < 1 {
		interval = 1
	}
	for i := 0; i < days; i += interval {
		label := res.Records[i].Date.Format(axisDateFormat)
		for j, r := range label {
			if i+j >= days {
				break
			}
			axis[i+j] = r
		}
	}
	return string(axis)
}
