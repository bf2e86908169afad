package sentiment

import (
	"StockSense/internal/domain/models"
	"StockSense/pkg/config"
	"StockSense/pkg/util"
)

// Combine blends per-source readings into one weighted score. Sources with
// weight 0 are excluded and the remaining weights are renormalized, so one
// silent provider never drags the blend toward zero. When nothing
// contributed the combined score is nil with the lowest confidence tier.
func Combine(sources []models.SourceSentiment, th config.SentimentConfig) models.CombinedSentiment {
	combined := models.CombinedSentiment{
		Label:      models.SentimentNeutral,
		Confidence: models.ConfidenceLow,
		Sources:    sources,
	}

	var weightSum, weighted float64
	contributing := 0
	for _, s := range sources {
		if s.Weight <= 0 {
			continue
		}
		weightSum += s.Weight
		weighted += s.Score * s.Weight
		contributing++
	}
	if contributing == 0 || weightSum == 0 {
		return combined
	}

	score := util.Round(weighted/weightSum, 2)
	combined.Score = &score
	combined.Label = LabelFor(score, th)
	combined.Confidence = confidenceFor(contributing, score, th)
	return combined
}

// confidenceFor tiers by how many sources contributed, then demotes one
// tier when the blended score sits inside the neutral band.
func confidenceFor(contributing int, score float64, th config.SentimentConfig) models.Confidence {
	tiers := []models.Confidence{
		models.ConfidenceLow,
		models.ConfidenceMedium,
		models.ConfidenceHigh,
		models.ConfidenceVeryHigh,
	}
	idx := contributing
	if idx >= len(tiers) {
		idx = len(tiers) - 1
	}
	if score <= th.PositiveThreshold && score >= th.NegativeThreshold && idx > 0 {
		idx--
	}
	return tiers[idx]
}
