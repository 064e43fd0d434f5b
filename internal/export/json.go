// Package export serializes a biorhythm time series into a stable,
// analysis-ready JSON payload.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/verte-zerg/biorhythm/internal/model"
)

// FormatVersion tags the payload shape. Version 2 is the canonical
// named-key schema; the old array-positional shape is not produced.
const FormatVersion = "2"

const dateFormat = "2006-01-02"

// Payload is the top-level serialized structure.
type Payload struct {
	Meta         Meta          `json:"meta"`
	CycleRepeats CycleRepeats  `json:"cycle_repeats"`
	CriticalDays []CriticalDay `json:"critical_days"`
	Series       []Entry       `json:"series"`
}

// Meta describes the generation parameters.
type Meta struct {
	FormatVersion string         `json:"format_version"`
	Generator     string         `json:"generator"`
	BirthDate     string         `json:"birth_date"`
	PlotDate      string         `json:"plot_date"`
	DaysAlive     int            `json:"days_alive"`
	Days          int            `json:"days"`
	Width         int            `json:"width"`
	Orientation   string         `json:"orientation"`
	CyclePeriods  map[string]int `json:"cycle_periods_days"`
}

// CycleRepeats carries the alignment countdowns of the cycle periods.
type CycleRepeats struct {
	PhysicalEmotionalRepeatInDays int `json:"physical_emotional_repeat_in_days"`
	AllCyclesRepeatInDays         int `json:"all_cycles_repeat_in_days"`
}

// CriticalDay lists the cycles crossing zero on one date.
type CriticalDay struct {
	Date   string   `json:"date"`
	Cycles []string `json:"cycles"`
}

// Entry is one day of the series. Cycle identity is always a named key;
// CriticalCycles is always an array, never null.
type Entry struct {
	Date           string             `json:"date"`
	DayOffset      int                `json:"day_offset"`
	Cycles         map[string]float64 `json:"cycles"`
	CriticalCycles []string           `json:"critical_cycles"`
}

// Serialize converts a result into the canonical payload. It touches no
// I/O; pair it with EncodeJSON or any encoder.
func Serialize(res model.TimeSeriesResult) *Payload {
	periods := make(map[string]int, len(res.Cycles))
	for _, c := range res.Cycles {
		periods[string(c.Name)] = c.PeriodDays
	}

	plotIdx := res.Config.Days / 2
	if plotIdx >= len(res.Records) {
		plotIdx = len(res.Records) - 1
	}
	plot := res.Records[plotIdx]
	daysAlive := plot.DayOffset

	series := make([]Entry, 0, len(res.Records))
	var criticalDays []CriticalDay
	for _, rec := range res.Records {
		values := make(map[string]float64, len(rec.Values))
		for name, v := range rec.Values {
			values[string(name)] = v
		}
		critical := make([]string, 0, len(rec.Critical))
		for _, name := range rec.Critical {
			critical = append(critical, string(name))
		}
		series = append(series, Entry{
			Date:           rec.Date.Format(dateFormat),
			DayOffset:      rec.DayOffset,
			Cycles:         values,
			CriticalCycles: critical,
		})
		if len(critical) > 0 {
			criticalDays = append(criticalDays, CriticalDay{
				Date:   rec.Date.Format(dateFormat),
				Cycles: critical,
			})
		}
	}
	if criticalDays == nil {
		criticalDays = []CriticalDay{}
	}

	return &Payload{
		Meta: Meta{
			FormatVersion: FormatVersion,
			Generator:     "biorhythm",
			BirthDate:     res.BirthDate.Format(dateFormat),
			PlotDate:      plot.Date.Format(dateFormat),
			DaysAlive:     daysAlive,
			Days:          res.Config.Days,
			Width:         res.Config.Width,
			Orientation:   string(res.Config.Orientation),
			CyclePeriods:  periods,
		},
		CycleRepeats: CycleRepeats{
			PhysicalEmotionalRepeatInDays: repeatIn(daysAlive, model.PhysicalEmotionalRepeatDays),
			AllCyclesRepeatInDays:         repeatIn(daysAlive, model.AllCyclesRepeatDays),
		},
		CriticalDays: criticalDays,
		Series:       series,
	}
}

// EncodeJSON writes the serialized result as indented JSON.
func EncodeJSON(w io.Writer, res model.TimeSeriesResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Serialize(res)); err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	return nil
}

func repeatIn(daysAlive, period int) int {
	r := daysAlive % period
	if r < 0 {
		r += period
	}
	return period - r
}
