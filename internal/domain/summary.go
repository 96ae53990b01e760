package domain

import (
	"fmt"
	"strings"
)

// overview holds the figures behind an overall summary.
type overview struct {
	days         int
	lowest       DayReading
	highest      DayReading
	averageLowC  float64
	averageHighC float64
}

func computeOverview(ds Dataset) (overview, error) {
	minCol := ds.MinColumn()
	maxCol := ds.MaxColumn()

	low, ok := FindMin(minCol)
	if !ok {
		return overview{}, fmt.Errorf("overall summary: %w", ErrEmptyInput)
	}
	high, _ := FindMax(maxCol)

	lowest, err := dayReading(ds[low.Index].Date, low.Value)
	if err != nil {
		return overview{}, err
	}
	highest, err := dayReading(ds[high.Index].Date, high.Value)
	if err != nil {
		return overview{}, err
	}

	meanLow, err := Mean(minCol)
	if err != nil {
		return overview{}, err
	}
	meanHigh, err := Mean(maxCol)
	if err != nil {
		return overview{}, err
	}

	return overview{
		days:         len(ds),
		lowest:       lowest,
		highest:      highest,
		averageLowC:  FahrenheitToCelsius(meanLow),
		averageHighC: FahrenheitToCelsius(meanHigh),
	}, nil
}

func dayReading(date string, fahrenheit float64) (DayReading, error) {
	formatted, err := FormatDate(date)
	if err != nil {
		return DayReading{}, err
	}
	return DayReading{
		Date:          date,
		FormattedDate: formatted,
		Celsius:       FahrenheitToCelsius(fahrenheit),
	}, nil
}

func (o overview) text() string {
	lines := []string{
		fmt.Sprintf("%d Day Overview", o.days),
		fmt.Sprintf("  The lowest temperature will be %s, and will occur on %s.",
			FormatTemperature(o.lowest.Celsius), o.lowest.FormattedDate),
		fmt.Sprintf("  The highest temperature will be %s, and will occur on %s.",
			FormatTemperature(o.highest.Celsius), o.highest.FormattedDate),
		fmt.Sprintf("  The average low this week is %s.", FormatTemperature(o.averageLowC)),
		fmt.Sprintf("  The average high this week is %s.", FormatTemperature(o.averageHighC)),
	}
	return strings.Join(lines, "\n") + "\n"
}

// OverallSummary reports the extremes and averages of a dataset:
//
//	2 Day Overview
//	  The lowest temperature will be 3.9°C, and will occur on Monday 05 July 2021.
//	  The highest temperature will be 11.1°C, and will occur on Tuesday 06 July 2021.
//	  The average low this week is 4.4°C.
//	  The average high this week is 9.7°C.
//
// The lowest reading comes from the minimum column and the highest from the
// maximum column. Returns ErrEmptyInput for an empty dataset.
func OverallSummary(ds Dataset) (string, error) {
	o, err := computeOverview(ds)
	if err != nil {
		return "", err
	}
	return o.text(), nil
}

// DailySummary renders one block per row, in order, each followed by a blank line.
func DailySummary(ds Dataset) (string, error) {
	fragments := make([]string, 0, len(ds)*4)
	for _, row := range ds {
		date, err := FormatDate(row.Date)
		if err != nil {
			return "", err
		}
		fragments = append(fragments,
			fmt.Sprintf("---- %s ----\n", date),
			fmt.Sprintf("  Minimum Temperature: %s\n", FormatTemperature(FahrenheitToCelsius(float64(row.MinF)))),
			fmt.Sprintf("  Maximum Temperature: %s\n", FormatTemperature(FahrenheitToCelsius(float64(row.MaxF)))),
			"\n",
		)
	}
	return strings.Join(fragments, ""), nil
}

// BuildReport produces both summaries and the figures behind them.
func BuildReport(source string, ds Dataset) (Report, error) {
	o, err := computeOverview(ds)
	if err != nil {
		return Report{}, err
	}
	daily, err := DailySummary(ds)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Source:       source,
		Days:         o.days,
		Lowest:       o.lowest,
		Highest:      o.highest,
		AverageLowC:  o.averageLowC,
		AverageHighC: o.averageHighC,
		Overall:      o.text(),
		Daily:        daily,
		GeneratedAt:  clock.Now().UTC(),
	}, nil
}
