package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DegreeSymbol is appended to every rendered temperature.
const DegreeSymbol = "°C"

// fahrenheitFactor approximates 5/9 to four places.
const fahrenheitFactor = 0.5556

// humanDateLayout renders e.g. "Tuesday 06 July 2021".
const humanDateLayout = "Monday 02 January 2006"

// isoLayouts are tried in order by FormatDate. Times may be given to the
// hour, minute or second, with either separator and an optional zone.
var isoLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T15Z07:00",
	"2006-01-02T15",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04",
	"2006-01-02 15Z07:00",
	"2006-01-02 15",
}

// Number is any value FormatTemperature can render. Integers render without
// a decimal point, floats always with one.
type Number interface {
	int | int64 | ~float64
}

// ParseReading converts numeric text to a float. Surrounding whitespace is ignored.
func ParseReading(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrParse, s)
	}
	return v, nil
}

// FahrenheitToCelsius converts a Fahrenheit temperature and rounds it to one
// decimal place.
func FahrenheitToCelsius(f float64) float64 {
	return roundTenths((f - 32) * fahrenheitFactor)
}

// roundTenths rounds half to even on the exact binary value, which is what
// strconv does when asked for a fixed precision.
func roundTenths(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}

// FormatTemperature renders a Celsius value followed by DegreeSymbol.
func FormatTemperature[T Number](v T) string {
	switch x := any(v).(type) {
	case int:
		return strconv.Itoa(x) + DegreeSymbol
	case int64:
		return strconv.FormatInt(x, 10) + DegreeSymbol
	}
	return formatFloat(float64(v)) + DegreeSymbol
}

// formatFloat returns the shortest text that round-trips v, always keeping a
// decimal point so 5 renders as "5.0".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// FormatDate renders an ISO-8601 date as "Monday 02 January 2006".
func FormatDate(iso string) (string, error) {
	t, err := parseISODate(iso)
	if err != nil {
		return "", err
	}
	return t.Format(humanDateLayout), nil
}

// parseISODate accepts the text exactly as given; surrounding whitespace is
// an error.
func parseISODate(iso string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrFormat, iso)
}
