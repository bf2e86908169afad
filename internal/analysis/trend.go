package analysis

import (
	"math"

	"StockSense/internal/domain/models"
)

// ClassifyTrend maps the latest close against the latest SMA(5), SMA(20)
// and SMA(60) values to a discrete trend label. Rules are evaluated in
// order; a NaN comparison fails, so missing averages fall through toward
// Sideways.
func ClassifyTrend(close, sma5, sma20, sma60 float64) models.TrendLabel {
	switch {
	case close > sma5 && sma5 > sma20 && sma20 > sma60:
		return models.TrendStrongUptrend
	case close > sma20:
		return models.TrendUptrend
	case close < sma20 && sma5 < sma20:
		return models.TrendDowntrend
	default:
		return models.TrendSideways
	}
}

// TrendFromSet is a convenience over ClassifyTrend using the latest values
// of a computed indicator set.
func TrendFromSet(close float64, set models.IndicatorSet) models.TrendLabel {
	latest := func(period int) float64 {
		s, ok := set.SMA[period]
		if !ok {
			return math.NaN()
		}
		return models.Latest(s)
	}
	return ClassifyTrend(close, latest(5), latest(20), latest(60))
}
