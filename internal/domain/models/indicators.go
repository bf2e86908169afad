package models

import "math"

// IndicatorSet holds every computed indicator series for one bar sequence.
// Positions where a window is not yet satisfied hold NaN; NaN means
// "unavailable", never zero. JSON-facing code converts NaN to null.
type IndicatorSet struct {
	SMA         map[int][]float64 // period -> series aligned with the bars
	RSI         float64           // latest RSI(14), NaN when under 15 bars
	MACD        MACDSeries
	VolumeRatio float64 // latest volume vs mean of 10 prior bars, NaN when unavailable
	AvgVolume   float64 // mean volume of the 10 prior bars, NaN when unavailable
	Support     float64 // min close over the whole available series
	Resistance  float64 // max close over the whole available series
}

// MACDSeries carries the MACD(12,26,9) component series, NaN where undefined.
type MACDSeries struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// Latest returns the last value of a series, or NaN for an empty series.
func Latest(series []float64) float64 {
	if len(series) == 0 {
		return math.NaN()
	}
	return series[len(series)-1]
}

// Available reports whether v is a defined indicator value.
func Available(v float64) bool {
	return !math.IsNaN(v)
}

// OptFloat converts an indicator value to a JSON-friendly pointer:
// nil for unavailable, otherwise the value rounded to the given places.
func OptFloat(v float64, places int) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	p := math.Pow10(places)
	r := math.Round(v*p) / p
	return &r
}

// TrendLabel is the discrete trend classification.
type TrendLabel string

const (
	TrendStrongUptrend TrendLabel = "Strong Uptrend"
	TrendUptrend       TrendLabel = "Uptrend"
	TrendDowntrend     TrendLabel = "Downtrend"
	TrendSideways      TrendLabel = "Sideways"
)
