package chart

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/biorhythm/internal/model"
	"github.com/verte-zerg/biorhythm/internal/rhythm"
)

func buildResult(t *testing.T, width, days int, o model.Orientation, birth, start time.Time) model.TimeSeriesResult {
	t.Helper()
	cfg, err := model.NewConfig(width, days, o)
	require.NoError(t, err)
	res, err := rhythm.Build(cfg, birth, start, nil)
	require.NoError(t, err)
	return res
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestColumnMapping(t *testing.T) {
	assert.Equal(t, 0, column(-1, 20))
	assert.Equal(t, 19, column(1, 20))
	assert.Equal(t, 10, column(0, 20))

	// Floating rounding past the extremes clamps instead of overflowing.
	assert.Equal(t, 19, column(1.0000001, 20))
	assert.Equal(t, 0, column(-1.0000001, 20))
}

func TestRenderVerticalLineWidths(t *testing.T) {
	for _, width := range []int{12, 20, 55, 80} {
		res := buildResult(t, width, 15, model.Vertical, date(1990, time.May, 15), date(2024, time.March, 1))
		lines := verticalLines(res)
		datePad := len(shortDateFormat) + 1
		// Two caption lines, one day line per record, one percentage line.
		require.Len(t, lines, 2+len(res.Records)+1)
		for _, line := range lines[2 : 2+len(res.Records)] {
			assert.Len(t, line, datePad+width)
		}
	}
}

func TestRenderVerticalZeroLine(t *testing.T) {
	res := buildResult(t, 20, 5, model.Vertical, date(1990, time.May, 15), date(2024, time.March, 1))
	datePad := len(shortDateFormat) + 1
	mid := column(0, 20)
	for i, line := range verticalLines(res)[2 : 2+len(res.Records)] {
		cell := rune(line[datePad+mid])
		if len(res.Records[i].Critical) == 0 {
			// Markers may land on the zero column; anything else there
			// must be the zero-line glyph.
			assert.Contains(t, string([]rune{zeroGlyph, 'p', 'e', 'i', collisionGlyph}), string(cell))
		}
	}
}

func TestRenderVerticalCollisionOnBirthDay(t *testing.T) {
	// All three cycles are exactly zero on the birth date, so they all
	// map to the mid column and collapse into the critical multi-marker.
	birth := date(1990, time.May, 15)
	res := buildResult(t, 20, 1, model.Vertical, birth, birth)
	lines := verticalLines(res)
	line := lines[2]
	datePad := len(shortDateFormat) + 1
	assert.Equal(t, byte(criticalCollision), line[datePad+column(0, 20)])
	// Plot-day fill everywhere else.
	assert.Equal(t, byte(plotDayFill), line[datePad])
}

func TestRenderDeterministic(t *testing.T) {
	res := buildResult(t, 55, 29, model.Vertical, date(1990, time.May, 15), date(2024, time.March, 1))
	var buf1, buf2 bytes.Buffer
	require.NoError(t, Render(&buf1, res))
	require.NoError(t, Render(&buf2, res))
	assert.Equal(t, buf1.Bytes(), buf2.Bytes())
}

func TestRenderHorizontalRows(t *testing.T) {
	res := buildResult(t, 55, 30, model.Horizontal, date(1990, time.May, 15), date(2024, time.March, 1))
	lines := horizontalLines(res)
	// One row per cycle plus the date axis.
	require.Len(t, lines, len(res.Cycles)+1)
	for _, line := range lines {
		assert.Len(t, line, rowLabelWidth+2+len(res.Records))
	}
	assert.True(t, strings.HasPrefix(lines[0], "Physical"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "Date"))
}

func TestRenderHorizontalMarksCrossings(t *testing.T) {
	birth := date(1990, time.May, 15)
	res := buildResult(t, 55, 1, model.Horizontal, birth, birth)
	lines := horizontalLines(res)
	// Day 0 is a crossing for every cycle: each row shows its marker.
	assert.Equal(t, byte('P'), lines[0][rowLabelWidth+2])
	assert.Equal(t, byte('E'), lines[1][rowLabelWidth+2])
	assert.Equal(t, byte('I'), lines[2][rowLabelWidth+2])
}

func TestLinesRejectsUnknownOrientation(t *testing.T) {
	res := buildResult(t, 55, 5, model.Vertical, date(1990, time.May, 15), date(2024, time.March, 1))
	res.Config.Orientation = "diagonal"
	_, err := Lines(res)
	require.ErrorIs(t, err, model.ErrInvalidConfiguration)
}

func TestHeaderMentionsOrientationAndRepeats(t *testing.T) {
	res := buildResult(t, 55, 5, model.Vertical, date(1990, time.May, 15), date(2024, time.March, 1))
	header := strings.Join(headerLines(res), "\n")
	assert.Contains(t, header, "BIORHYTHM CHART (VERTICAL)")
	assert.Contains(t, header, "Physical+Emotional repeat in")
	assert.Contains(t, header, "All cycles repeat in")
	// 1990-05-15 to 2024-03-03 (plot day, start+2) is 12,346 days.
	assert.Contains(t, header, "Alive:  12,346 days")
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "12,346", groupThousands(12346))
	assert.Equal(t, "1,234,567", groupThousands(1234567))
	assert.Equal(t, "-12,346", groupThousands(-12346))
}

func TestCriticalSummary(t *testing.T) {
	birth := date(1990, time.May, 15)
	res := buildResult(t, 55, 1, model.Vertical, birth, birth)
	summary := strings.Join(criticalSummaryLines(res), "\n")
	assert.Contains(t, summary, "CRITICAL DAYS detected")
	assert.Contains(t, summary, "physical, emotional, intellectual")

	// Offset 3..7 from birth has no crossing in any cycle.
	quiet := buildResult(t, 55, 5, model.Vertical, birth, birth.AddDate(0, 0, 3))
	summary = strings.Join(criticalSummaryLines(quiet), "\n")
	assert.Contains(t, summary, "No critical days")
}

func TestFillRuneRamp(t *testing.T) {
	assert.Equal(t, fillRamp[0], fillRune(-1))
	assert.Equal(t, fillRamp[len(fillRamp)-1], fillRune(1))
	assert.Equal(t, fillRamp[(len(fillRamp)-1)/2], fillRune(0))
}

func TestFormatTableAlignment(t *testing.T) {
	lines := formatTable([]string{"Date", "Cycles"}, [][]string{
		{"Mon Jan 01", "physical"},
		{"Tue Jan 02", "physical, emotional"},
	}, nil)
	require.Len(t, lines, 3)
	// Header and rows are padded to a common column width.
	assert.Equal(t, len(lines[1]), len(lines[2]))
}
