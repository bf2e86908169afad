package analysis

import (
	"StockSense/internal/domain/models"
	"StockSense/pkg/util"
)

// BuildChartSeries converts a chronological bar series into the parallel
// display sequences of the chart endpoint. SMA overlays keep nulls where the
// window is incomplete so every slice stays the same length as the bars.
func BuildChartSeries(bars []models.Bar) models.ChartSeries {
	closes := models.Closes(bars)
	sma5 := SMASeries(closes, 5)
	sma20 := SMASeries(closes, 20)

	series := models.ChartSeries{
		Timestamps: make([]string, len(bars)),
		Prices:     make([]float64, len(bars)),
		Volumes:    make([]int64, len(bars)),
		SMA5:       make([]*float64, len(bars)),
		SMA20:      make([]*float64, len(bars)),
		Highs:      make([]float64, len(bars)),
		Lows:       make([]float64, len(bars)),
	}
	for i, b := range bars {
		series.Timestamps[i] = util.FormatChartTime(b.Timestamp)
		series.Prices[i] = b.Close
		series.Volumes[i] = b.Volume
		series.SMA5[i] = models.OptFloat(sma5[i], 2)
		series.SMA20[i] = models.OptFloat(sma20[i], 2)
		series.Highs[i] = b.High
		series.Lows[i] = b.Low
	}
	return series
}
