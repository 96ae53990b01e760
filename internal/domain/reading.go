package domain

import "time"

// WeatherRow is one parsed day of readings.
type WeatherRow struct {
	Date string `json:"date"`  // verbatim ISO-8601 text from the source
	MinF int    `json:"min_f"` // daily minimum, °F
	MaxF int    `json:"max_f"` // daily maximum, °F
}

// Dataset is an ordered sequence of rows in source file order.
// Order matters: extremes resolve ties to the last position.
type Dataset []WeatherRow

// MinColumn returns the minimum readings as floats, in order.
func (d Dataset) MinColumn() []float64 {
	out := make([]float64, len(d))
	for i, row := range d {
		out[i] = float64(row.MinF)
	}
	return out
}

// MaxColumn returns the maximum readings as floats, in order.
func (d Dataset) MaxColumn() []float64 {
	out := make([]float64, len(d))
	for i, row := range d {
		out[i] = float64(row.MaxF)
	}
	return out
}

// DayReading names a single temperature and the day it occurred.
type DayReading struct {
	Date          string  `json:"date"`
	FormattedDate string  `json:"formatted_date"`
	Celsius       float64 `json:"celsius"`
}

// Report is the result of summarizing one dataset.
type Report struct {
	Source       string     `json:"source"`
	Days         int        `json:"days"`
	Lowest       DayReading `json:"lowest"`
	Highest      DayReading `json:"highest"`
	AverageLowC  float64    `json:"average_low_c"`
	AverageHighC float64    `json:"average_high_c"`
	Overall      string     `json:"overall"`
	Daily        string     `json:"daily"`
	GeneratedAt  time.Time  `json:"generated_at"`
}
