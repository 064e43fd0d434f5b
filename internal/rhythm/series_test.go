package rhythm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/biorhythm/internal/model"
)

func mustConfig(t *testing.T, width, days int, o model.Orientation) model.Config {
	t.Helper()
	cfg, err := model.NewConfig(width, days, o)
	require.NoError(t, err)
	return cfg
}

func TestBuildRecordCountAndOrder(t *testing.T) {
	birth := date(1990, time.May, 15)
	start := date(2024, time.January, 1)
	for _, days := range []int{1, 7, 29, 90} {
		cfg := mustConfig(t, 55, days, model.Vertical)
		res, err := Build(cfg, birth, start, nil)
		require.NoError(t, err)
		require.Len(t, res.Records, days)
		for i, rec := range res.Records {
			assert.Equal(t, start.AddDate(0, 0, i), rec.Date)
			assert.Equal(t, DayOffset(birth, rec.Date), rec.DayOffset)
		}
	}
}

func TestBuildBirthDayAllCriticalAscending(t *testing.T) {
	birth := date(1990, time.May, 15)
	cfg := mustConfig(t, 55, 1, model.Vertical)
	res, err := Build(cfg, birth, birth, nil)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	rec := res.Records[0]
	assert.Equal(t, 0, rec.DayOffset)
	for _, c := range res.Cycles {
		assert.InDelta(t, 0.0, rec.Values[c.Name], 1e-9)
		crossing, err := Classify(rec.DayOffset, c.PeriodDays, DefaultTolerance)
		require.NoError(t, err)
		assert.Equal(t, CrossingAscending, crossing)
	}
	assert.Equal(t, []model.CycleName{model.Physical, model.Emotional, model.Intellectual}, rec.Critical)
}

func TestBuildDefaultsToCanonicalCycles(t *testing.T) {
	cfg := mustConfig(t, 55, 3, model.Horizontal)
	res, err := Build(cfg, date(1990, time.May, 15), date(2024, time.June, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCycles(), res.Cycles)
	for _, rec := range res.Records {
		assert.Len(t, rec.Values, 3)
	}
}

func TestBuildBeforeBirth(t *testing.T) {
	birth := date(1990, time.May, 15)
	cfg := mustConfig(t, 55, 5, model.Vertical)
	res, err := Build(cfg, birth, birth.AddDate(0, 0, -10), nil)
	require.NoError(t, err)
	assert.Equal(t, -10, res.Records[0].DayOffset)
	assert.Equal(t, -6, res.Records[4].DayOffset)
}

func TestBuildRejectsNonPositiveDays(t *testing.T) {
	for _, days := range []int{0, -5} {
		cfg := model.Config{Width: 55, Days: days, Orientation: model.Vertical}
		_, err := Build(cfg, date(1990, time.May, 15), date(2024, time.January, 1), nil)
		require.ErrorIs(t, err, model.ErrInvalidConfiguration)
	}
}

func TestBuildRejectsInvalidPeriod(t *testing.T) {
	cfg := mustConfig(t, 55, 3, model.Vertical)
	cycles := []model.Cycle{{Name: model.Physical, PeriodDays: 0}}
	_, err := Build(cfg, date(1990, time.May, 15), date(2024, time.January, 1), cycles)
	require.ErrorIs(t, err, model.ErrInvalidPeriod)
}

func TestBuildDeterministic(t *testing.T) {
	cfg := mustConfig(t, 55, 29, model.Vertical)
	birth := date(1985, time.December, 3)
	start := date(2024, time.March, 10)
	res1, err := Build(cfg, birth, start, nil)
	require.NoError(t, err)
	res2, err := Build(cfg, birth, start, nil)
	require.NoError(t, err)
	assert.Equal(t, res1, res2)
}
