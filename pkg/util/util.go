package util

import (
	"math"
	"time"
)

// Alpha Vantage intraday series keys use this layout; chart output drops seconds.
const (
	BarTimeLayout   = "2006-01-02 15:04:05"
	ChartTimeLayout = "2006-01-02 15:04"
)

// ParseBarTime parses a provider bar timestamp.
func ParseBarTime(s string) (time.Time, bool) {
	t, err := time.Parse(BarTimeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatChartTime renders a bar timestamp for chart consumers.
func FormatChartTime(t time.Time) string {
	return t.Format(ChartTimeLayout)
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
