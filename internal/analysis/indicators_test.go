package analysis

import (
	"math"
	"testing"
	"time"

	"StockSense/internal/domain/models"
)

func barsFromCloses(closes []float64) []models.Bar {
	bars := make([]models.Bar, len(closes))
	base := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = models.Bar{
			Timestamp: base.Add(time.Duration(i) * 5 * time.Minute),
			Open:      c,
			High:      c + 0.5,
			Low:       c - 0.5,
			Close:     c,
			Volume:    1000,
		}
	}
	return bars
}

func TestSMASeriesWindowing(t *testing.T) {
	values := []float64{10, 11, 12}
	out := SMASeries(values, 5)
	for i, v := range out {
		if !math.IsNaN(v) {
			t.Fatalf("index %d: want NaN before window fills, got %v", i, v)
		}
	}

	values = []float64{1, 2, 3, 4, 5, 6}
	out = SMASeries(values, 5)
	if !math.IsNaN(out[3]) {
		t.Fatalf("index 3: want NaN, got %v", out[3])
	}
	if got := out[4]; got != 3 {
		t.Fatalf("index 4: want 3, got %v", got)
	}
	if got := out[5]; got != 4 {
		t.Fatalf("index 5: want 4, got %v", got)
	}
}

func TestSMASeriesConstantInput(t *testing.T) {
	values := make([]float64, 30)
	for i := range values {
		values[i] = 42.5
	}
	for _, period := range []int{5, 10, 20} {
		out := SMASeries(values, period)
		for i := period - 1; i < len(out); i++ {
			if math.Abs(out[i]-42.5) > 1e-9 {
				t.Fatalf("period %d index %d: want 42.5, got %v", period, i, out[i])
			}
		}
	}
}

func TestEMASeriesSeededWithSMA(t *testing.T) {
	values := []float64{2, 4, 6, 8, 10}
	out := EMASeries(values, 3)
	if !math.IsNaN(out[0]) || !math.IsNaN(out[1]) {
		t.Fatal("want NaN before the seed index")
	}
	if got := out[2]; got != 4 {
		t.Fatalf("seed: want SMA(2,4,6)=4, got %v", got)
	}
	// alpha = 0.5 for period 3
	if got := out[3]; math.Abs(got-6) > 1e-9 {
		t.Fatalf("index 3: want 6, got %v", got)
	}
	if got := out[4]; math.Abs(got-8) > 1e-9 {
		t.Fatalf("index 4: want 8, got %v", got)
	}
}

func TestRSIRange(t *testing.T) {
	values := []float64{
		100, 101.2, 100.8, 102.3, 103.1, 102.7, 104.0, 103.5,
		105.2, 104.8, 106.1, 105.9, 107.3, 106.8, 108.2, 107.9,
		109.5, 108.7, 110.1, 109.8,
	}
	got := RSI(values, 14)
	if math.IsNaN(got) {
		t.Fatal("want defined RSI with 20 values")
	}
	if got < 0 || got > 100 {
		t.Fatalf("RSI out of range: %v", got)
	}
	if got <= 50 {
		t.Fatalf("rising series should score above 50, got %v", got)
	}
}

func TestRSIUnderMinimumBars(t *testing.T) {
	values := make([]float64, 14)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	if got := RSI(values, 14); !math.IsNaN(got) {
		t.Fatalf("want NaN with only 14 values, got %v", got)
	}
}

func TestRSIAllGains(t *testing.T) {
	values := make([]float64, 30)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	if got := RSI(values, 14); got != 100 {
		t.Fatalf("monotonic gains: want 100, got %v", got)
	}
}

func TestMACDNaNPrefix(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = 100 + 0.3*float64(i)
	}
	m := MACD(values, 12, 26, 9)

	if !math.IsNaN(m.Line[24]) {
		t.Fatalf("line index 24: want NaN, got %v", m.Line[24])
	}
	if math.IsNaN(m.Line[25]) {
		t.Fatal("line index 25: want defined")
	}
	if !math.IsNaN(m.Signal[32]) {
		t.Fatalf("signal index 32: want NaN, got %v", m.Signal[32])
	}
	if math.IsNaN(m.Signal[33]) {
		t.Fatal("signal index 33: want defined")
	}
	if math.IsNaN(m.Histogram[33]) {
		t.Fatal("histogram index 33: want defined")
	}
	for i := 33; i < len(values); i++ {
		want := m.Line[i] - m.Signal[i]
		if math.Abs(m.Histogram[i]-want) > 1e-9 {
			t.Fatalf("histogram index %d: want %v, got %v", i, want, m.Histogram[i])
		}
	}
}

func TestMACDShortSeries(t *testing.T) {
	values := []float64{100, 101, 102}
	m := MACD(values, 12, 26, 9)
	for i := range values {
		if !math.IsNaN(m.Line[i]) || !math.IsNaN(m.Signal[i]) || !math.IsNaN(m.Histogram[i]) {
			t.Fatalf("index %d: want all NaN for a 3-bar series", i)
		}
	}
}

func TestVolumeRatioExcludesCurrentBar(t *testing.T) {
	volumes := []int64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 300}
	ratio, avg := VolumeRatio(volumes, 10)
	if avg != 100 {
		t.Fatalf("avg: want 100, got %v", avg)
	}
	if ratio != 3 {
		t.Fatalf("ratio: want 3, got %v", ratio)
	}
}

func TestVolumeRatioInsufficientHistory(t *testing.T) {
	volumes := []int64{100, 120, 90, 110, 105}
	ratio, avg := VolumeRatio(volumes, 10)
	if !math.IsNaN(ratio) || !math.IsNaN(avg) {
		t.Fatalf("want NaN with 5 bars, got ratio=%v avg=%v", ratio, avg)
	}
}

func TestComputeSupportResistance(t *testing.T) {
	bars := barsFromCloses([]float64{105, 98.5, 110.2, 101, 107})
	set := Compute(bars)
	if set.Support != 98.5 {
		t.Fatalf("support: want 98.5, got %v", set.Support)
	}
	if set.Resistance != 110.2 {
		t.Fatalf("resistance: want 110.2, got %v", set.Resistance)
	}
}

func TestComputeSMAperiods(t *testing.T) {
	bars := barsFromCloses(make([]float64, 70))
	set := Compute(bars)
	for _, p := range []int{5, 10, 20, 60} {
		series, ok := set.SMA[p]
		if !ok {
			t.Fatalf("missing SMA(%d)", p)
		}
		if len(series) != len(bars) {
			t.Fatalf("SMA(%d): length %d, want %d", p, len(series), len(bars))
		}
	}
}
