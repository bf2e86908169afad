package analysis

import "StockSense/internal/domain/models"

const (
	rationaleAligned  = "Market sentiment agrees with the price trend."
	rationaleDiverged = "Market sentiment contradicts the price trend."
	rationaleMixed    = "No clear relationship between sentiment and the price trend."
)

// ResolveAlignment compares sentiment polarity with trend direction.
// Positive sentiment agrees with an uptrend and contradicts a downtrend;
// negative sentiment is the mirror case. Neutral sentiment or a sideways
// trend never produces a definitive verdict.
func ResolveAlignment(label models.SentimentLabel, trend models.TrendLabel) models.AlignmentVerdict {
	up := trend == models.TrendUptrend || trend == models.TrendStrongUptrend
	down := trend == models.TrendDowntrend

	var outcome models.Alignment
	switch {
	case label == models.SentimentPositive && up,
		label == models.SentimentNegative && down:
		outcome = models.AlignmentAligned
	case label == models.SentimentPositive && down,
		label == models.SentimentNegative && up:
		outcome = models.AlignmentDiverged
	default:
		outcome = models.AlignmentMixed
	}

	rationale := rationaleMixed
	switch outcome {
	case models.AlignmentAligned:
		rationale = rationaleAligned
	case models.AlignmentDiverged:
		rationale = rationaleDiverged
	}
	return models.AlignmentVerdict{Outcome: outcome, Rationale: rationale}
}
