package sentiment

import (
	"StockSense/internal/domain/models"
	"StockSense/pkg/config"
	"StockSense/pkg/util"
)

const maxItemsPerSource = 10

// NormalizeSource scores every item from one provider and reduces them to a
// single source reading on the [-100, 100] scale. A source with zero items
// gets weight 0 so aggregation excludes it; nominalWeight applies otherwise.
func NormalizeSource(a Analyzer, source string, items []models.NewsItem, nominalWeight float64, th config.SentimentConfig) models.SourceSentiment {
	out := models.SourceSentiment{
		Source:    source,
		Label:     models.SentimentNeutral,
		ItemCount: len(items),
	}
	if len(items) == 0 {
		return out
	}

	var sum float64
	scored := make([]models.ScoredItem, 0, len(items))
	for _, item := range items {
		text := item.Title
		if item.Body != "" {
			text += ". " + item.Body
		}
		s := a.Score(text) * 100
		sum += s
		scored = append(scored, models.ScoredItem{
			Title:       item.Title,
			Origin:      item.Origin,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
			Label:       LabelFor(s, th),
			Engagement:  item.Engagement,
		})
	}

	out.Score = util.Round(sum/float64(len(items)), 2)
	out.Label = LabelFor(out.Score, th)
	out.Weight = nominalWeight
	if len(scored) > maxItemsPerSource {
		scored = scored[:maxItemsPerSource]
	}
	out.Items = scored
	return out
}

// LabelFor maps a [-100, 100] score to a label using strict thresholds:
// a score exactly at either bound stays Neutral.
func LabelFor(score float64, th config.SentimentConfig) models.SentimentLabel {
	switch {
	case score > th.PositiveThreshold:
		return models.SentimentPositive
	case score < th.NegativeThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
