// Package analysis computes technical indicators over intraday bar series.
//
// Every series function returns a slice aligned index-for-index with its
// input; positions where the indicator's window is not yet satisfied hold
// math.NaN(). Callers must treat NaN as "unavailable", never as zero.
package analysis

import (
	"math"

	"StockSense/internal/domain/models"
)

const (
	rsiPeriod      = 14
	macdFast       = 12
	macdSlow       = 26
	macdSignal     = 9
	volumeLookback = 10
)

var smaPeriods = []int{5, 10, 20, 60}

// SMASeries returns the simple moving average of values for the given
// period. Entries before index period-1 are NaN.
func SMASeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// EMASeries returns the exponential moving average with smoothing
// 2/(period+1). The first defined value, at index period-1, is seeded with
// the simple average of the first period values; earlier entries are NaN.
func EMASeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if len(values) < period {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	alpha := 2.0 / float64(period+1)
	var seed float64
	for i := 0; i < period-1; i++ {
		out[i] = math.NaN()
		seed += values[i]
	}
	seed = (seed + values[period-1]) / float64(period)
	out[period-1] = seed
	for i := period; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// RSI returns the latest Wilder-smoothed RSI over the given period, or NaN
// when fewer than period+1 values are available.
func RSI(values []float64, period int) float64 {
	if len(values) < period+1 {
		return math.NaN()
	}
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		d := values[i] - values[i-1]
		if d > 0 {
			avgGain += d
		} else {
			avgLoss -= d
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	for i := period + 1; i < len(values); i++ {
		d := values[i] - values[i-1]
		var gain, loss float64
		if d > 0 {
			gain = d
		} else {
			loss = -d
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// MACD computes the MACD(fast, slow, signal) component series over values.
// The line is defined from index slow-1, the signal and histogram from index
// slow+signal-2; everything earlier is NaN.
func MACD(values []float64, fast, slow, signal int) models.MACDSeries {
	fastEMA := EMASeries(values, fast)
	slowEMA := EMASeries(values, slow)

	line := make([]float64, len(values))
	for i := range values {
		if math.IsNaN(fastEMA[i]) || math.IsNaN(slowEMA[i]) {
			line[i] = math.NaN()
		} else {
			line[i] = fastEMA[i] - slowEMA[i]
		}
	}

	sig := make([]float64, len(values))
	hist := make([]float64, len(values))
	for i := range sig {
		sig[i] = math.NaN()
		hist[i] = math.NaN()
	}
	if len(values) >= slow {
		defined := line[slow-1:]
		sigDefined := EMASeries(defined, signal)
		copy(sig[slow-1:], sigDefined)
		for i := slow - 1; i < len(values); i++ {
			if !math.IsNaN(line[i]) && !math.IsNaN(sig[i]) {
				hist[i] = line[i] - sig[i]
			}
		}
	}
	return models.MACDSeries{Line: line, Signal: sig, Histogram: hist}
}

// VolumeRatio returns the latest bar's volume divided by the mean volume of
// the lookback bars immediately before it, plus that mean. Both are NaN when
// fewer than lookback prior bars exist or the mean is zero.
func VolumeRatio(volumes []int64, lookback int) (ratio, avg float64) {
	if len(volumes) < lookback+1 {
		return math.NaN(), math.NaN()
	}
	var sum int64
	for _, v := range volumes[len(volumes)-lookback-1 : len(volumes)-1] {
		sum += v
	}
	avg = float64(sum) / float64(lookback)
	if avg == 0 {
		return math.NaN(), avg
	}
	return float64(volumes[len(volumes)-1]) / avg, avg
}

// Compute derives the full indicator set from a chronological bar series.
func Compute(bars []models.Bar) models.IndicatorSet {
	closes := models.Closes(bars)
	volumes := models.Volumes(bars)

	set := models.IndicatorSet{
		SMA:  make(map[int][]float64, len(smaPeriods)),
		MACD: MACD(closes, macdFast, macdSlow, macdSignal),
		RSI:  RSI(closes, rsiPeriod),
	}
	for _, p := range smaPeriods {
		set.SMA[p] = SMASeries(closes, p)
	}
	set.VolumeRatio, set.AvgVolume = VolumeRatio(volumes, volumeLookback)

	set.Support = math.Inf(1)
	set.Resistance = math.Inf(-1)
	for _, c := range closes {
		set.Support = math.Min(set.Support, c)
		set.Resistance = math.Max(set.Resistance, c)
	}
	if len(closes) == 0 {
		set.Support = math.NaN()
		set.Resistance = math.NaN()
	}
	return set
}
