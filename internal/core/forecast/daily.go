package forecast

import (
	"time"

	"coolassistant.app/internal/ports"
)

type dayMax struct {
	day   time.Time
	value float64
}

// dailyMax keeps the largest value per calendar day in loc, in the order days
// first appear, truncated to limit days.
func dailyMax(times []time.Time, values []float64, loc *time.Location, limit int) []dayMax {
	index := make(map[string]int)
	var days []dayMax
	for i, ts := range times {
		local := ts.In(loc)
		key := local.Format("2006-01-02")
		if pos, ok := index[key]; ok {
			if values[i] > days[pos].value {
				days[pos].value = values[i]
			}
			continue
		}
		index[key] = len(days)
		days = append(days, dayMax{
			day:   time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc),
			value: values[i],
		})
	}
	if len(days) > limit {
		days = days[:limit]
	}
	return days
}

// DailyPM10Max groups pollution samples by UTC day and classifies each day's maximum
func DailyPM10Max(samples []ports.PollutionSample, limit int) []DailyValue {
	times := make([]time.Time, len(samples))
	values := make([]float64, len(samples))
	for i, s := range samples {
		times[i] = s.Time
		values[i] = s.PM10
	}
	return toDailyValues(dailyMax(times, values, time.UTC, limit), DustRiskRanges)
}

// DailyTempMax groups temperature samples by the city's local day
func DailyTempMax(forecast *ports.TemperatureForecast, limit int) []DailyValue {
	if forecast == nil {
		return []DailyValue{}
	}
	loc := time.FixedZone("city", forecast.TimezoneOffset)
	times := make([]time.Time, len(forecast.Samples))
	values := make([]float64, len(forecast.Samples))
	for i, s := range forecast.Samples {
		times[i] = s.Time
		values[i] = s.TempMax
	}
	return toDailyValues(dailyMax(times, values, loc, limit), HeatRanges)
}

func toDailyValues(days []dayMax, table []Range) []DailyValue {
	out := make([]DailyValue, 0, len(days))
	for _, d := range days {
		v := d.value
		out = append(out, DailyValue{
			Date:    d.day.Format("2006-01-02"),
			Weekday: d.day.Weekday().String(),
			Value:   v,
			Level:   Classify(&v, table),
		})
	}
	return out
}
