package analysis

import (
	"testing"

	"StockSense/internal/domain/models"
)

func TestResolveAlignment(t *testing.T) {
	tests := []struct {
		label models.SentimentLabel
		trend models.TrendLabel
		want  models.Alignment
	}{
		{models.SentimentPositive, models.TrendUptrend, models.AlignmentAligned},
		{models.SentimentPositive, models.TrendStrongUptrend, models.AlignmentAligned},
		{models.SentimentNegative, models.TrendDowntrend, models.AlignmentAligned},
		{models.SentimentPositive, models.TrendDowntrend, models.AlignmentDiverged},
		{models.SentimentNegative, models.TrendUptrend, models.AlignmentDiverged},
		{models.SentimentNegative, models.TrendStrongUptrend, models.AlignmentDiverged},
		{models.SentimentNeutral, models.TrendUptrend, models.AlignmentMixed},
		{models.SentimentNeutral, models.TrendDowntrend, models.AlignmentMixed},
		{models.SentimentPositive, models.TrendSideways, models.AlignmentMixed},
		{models.SentimentNegative, models.TrendSideways, models.AlignmentMixed},
	}
	for _, tt := range tests {
		got := ResolveAlignment(tt.label, tt.trend)
		if got.Outcome != tt.want {
			t.Fatalf("%s vs %s: want %s, got %s", tt.label, tt.trend, tt.want, got.Outcome)
		}
		if got.Rationale == "" {
			t.Fatalf("%s vs %s: empty rationale", tt.label, tt.trend)
		}
	}
}
