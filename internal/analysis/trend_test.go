package analysis

import (
	"math"
	"testing"

	"StockSense/internal/domain/models"
)

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name                     string
		close, sma5, sma20, sma60 float64
		want                     models.TrendLabel
	}{
		{"strong uptrend stacked averages", 110, 108, 105, 100, models.TrendStrongUptrend},
		{"uptrend above sma20 only", 106, 104, 105, 107, models.TrendUptrend},
		{"downtrend below sma20 with sma5 confirming", 95, 97, 100, 102, models.TrendDowntrend},
		{"sideways when sma5 holds above sma20", 95, 101, 100, 102, models.TrendSideways},
		{"sideways at exact sma20", 100, 100, 100, 100, models.TrendSideways},
		{"missing long average blocks strong uptrend", 110, 108, 105, math.NaN(), models.TrendUptrend},
		{"all averages missing", 110, math.NaN(), math.NaN(), math.NaN(), models.TrendSideways},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTrend(tt.close, tt.sma5, tt.sma20, tt.sma60)
			if got != tt.want {
				t.Fatalf("want %s, got %s", tt.want, got)
			}
		})
	}
}

func TestTrendFromSet(t *testing.T) {
	closes := make([]float64, 70)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	set := Compute(barsFromCloses(closes))
	got := TrendFromSet(closes[len(closes)-1], set)
	if got != models.TrendStrongUptrend {
		t.Fatalf("steadily rising series: want %s, got %s", models.TrendStrongUptrend, got)
	}
}
