package rhythm

import (
	"fmt"
	"time"

	"github.com/verte-zerg/biorhythm/internal/model"
)

// Build assembles one DayRecord per consecutive calendar day, starting
// at start, for cfg.Days days. Per-day computation is independent; the
// loop runs in date order so records come out already sorted. Either
// the full result is produced or an error is returned — never a partial
// series.
func Build(cfg model.Config, birth, start time.Time, cycles []model.Cycle) (model.TimeSeriesResult, error) {
	if cfg.Days <= 0 {
		return model.TimeSeriesResult{}, fmt.Errorf("%w: days must be > 0, got %d", model.ErrInvalidConfiguration, cfg.Days)
	}
	if len(cycles) == 0 {
		cycles = model.DefaultCycles()
	}
	for _, c := range cycles {
		if c.PeriodDays <= 0 {
			return model.TimeSeriesResult{}, fmt.Errorf("%w: cycle %q has period %d", model.ErrInvalidPeriod, c.Name, c.PeriodDays)
		}
	}

	startDay := midnightUTC(start)
	records := make([]model.DayRecord, 0, cfg.Days)
	for i := 0; i < cfg.Days; i++ {
		date := startDay.AddDate(0, 0, i)
		rec, err := buildDay(birth, date, cycles)
		if err != nil {
			return model.TimeSeriesResult{}, err
		}
		records = append(records, rec)
	}

	return model.TimeSeriesResult{
		BirthDate: midnightUTC(birth),
		PlotStart: startDay,
		Config:    cfg,
		Cycles:    cycles,
		Records:   records,
	}, nil
}

func buildDay(birth, date time.Time, cycles []model.Cycle) (model.DayRecord, error) {
	offset := DayOffset(birth, date)
	values := make(map[model.CycleName]float64, len(cycles))
	critical := make([]model.CycleName, 0, len(cycles))
	for _, c := range cycles {
		v, err := Value(offset, c.PeriodDays)
		if err != nil {
			return model.DayRecord{}, err
		}
		values[c.Name] = v
		crossing, err := Classify(offset, c.PeriodDays, DefaultTolerance)
		if err != nil {
			return model.DayRecord{}, err
		}
		if crossing != CrossingNone {
			critical = append(critical, c.Name)
		}
	}
	return model.DayRecord{
		Date:      date,
		DayOffset: offset,
		Values:    values,
		Critical:  critical,
	}, nil
}
