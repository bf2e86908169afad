package sentiment

import (
	"math"
	"testing"
	"time"

	"StockSense/internal/domain/models"
	"StockSense/pkg/config"
)

func testThresholds() config.SentimentConfig {
	return config.SentimentConfig{
		PositiveThreshold: 15,
		NegativeThreshold: -15,
		Weights: config.SentimentWeights{
			Finnhub: 0.40,
			NewsAPI: 0.35,
			Reddit:  0.25,
		},
	}
}

func src(name string, score, weight float64, count int) models.SourceSentiment {
	return models.SourceSentiment{
		Source:    name,
		Score:     score,
		Label:     LabelFor(score, testThresholds()),
		ItemCount: count,
		Weight:    weight,
	}
}

func TestCombineRenormalizesMissingSource(t *testing.T) {
	th := testThresholds()
	sources := []models.SourceSentiment{
		src("finnhub", 60, 0.40, 8),
		src("newsapi", 0, 0, 0),
		src("reddit", -20, 0.25, 12),
	}
	got := Combine(sources, th)

	if got.Score == nil {
		t.Fatal("want a combined score")
	}
	want := (60*0.40 + (-20)*0.25) / 0.65
	if math.Abs(*got.Score-29.23) > 0.01 {
		t.Fatalf("combined score: want %.2f, got %v", want, *got.Score)
	}
	if got.Label != models.SentimentPositive {
		t.Fatalf("label: want Positive, got %s", got.Label)
	}
	if got.Confidence != models.ConfidenceHigh {
		t.Fatalf("confidence: want high for 2 contributing sources, got %s", got.Confidence)
	}
}

func TestCombineAllSourcesEmpty(t *testing.T) {
	sources := []models.SourceSentiment{
		src("finnhub", 0, 0, 0),
		src("newsapi", 0, 0, 0),
		src("reddit", 0, 0, 0),
	}
	got := Combine(sources, testThresholds())
	if got.Score != nil {
		t.Fatalf("want nil score when nothing contributed, got %v", *got.Score)
	}
	if got.Label != models.SentimentNeutral {
		t.Fatalf("label: want Neutral, got %s", got.Label)
	}
	if got.Confidence != models.ConfidenceLow {
		t.Fatalf("confidence: want low, got %s", got.Confidence)
	}
}

func TestCombineThresholdIsStrict(t *testing.T) {
	sources := []models.SourceSentiment{src("finnhub", 15, 0.40, 5)}
	got := Combine(sources, testThresholds())
	if got.Label != models.SentimentNeutral {
		t.Fatalf("score exactly at threshold must stay Neutral, got %s", got.Label)
	}

	sources = []models.SourceSentiment{src("finnhub", 15.01, 0.40, 5)}
	got = Combine(sources, testThresholds())
	if got.Label != models.SentimentPositive {
		t.Fatalf("score just over threshold must be Positive, got %s", got.Label)
	}
}

func TestCombineConfidenceTiers(t *testing.T) {
	th := testThresholds()
	tests := []struct {
		name    string
		sources []models.SourceSentiment
		want    models.Confidence
	}{
		{
			"three strong sources",
			[]models.SourceSentiment{
				src("finnhub", 40, 0.40, 5),
				src("newsapi", 35, 0.35, 5),
				src("reddit", 50, 0.25, 5),
			},
			models.ConfidenceVeryHigh,
		},
		{
			"three weak sources demoted",
			[]models.SourceSentiment{
				src("finnhub", 5, 0.40, 5),
				src("newsapi", -3, 0.35, 5),
				src("reddit", 8, 0.25, 5),
			},
			models.ConfidenceHigh,
		},
		{
			"single strong source",
			[]models.SourceSentiment{src("reddit", -40, 0.25, 5)},
			models.ConfidenceMedium,
		},
		{
			"single weak source demoted",
			[]models.SourceSentiment{src("reddit", 4, 0.25, 5)},
			models.ConfidenceLow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(tt.sources, th)
			if got.Confidence != tt.want {
				t.Fatalf("want %s, got %s", tt.want, got.Confidence)
			}
		})
	}
}

func TestCombineConfidenceWithAsymmetricThresholds(t *testing.T) {
	th := testThresholds()
	th.NegativeThreshold = -30

	got := Combine([]models.SourceSentiment{src("finnhub", -20, 0.40, 5)}, th)
	if got.Label != models.SentimentNeutral {
		t.Fatalf("-20 sits above the negative threshold: want Neutral, got %s", got.Label)
	}
	if got.Confidence != models.ConfidenceLow {
		t.Fatalf("neutral-band score must demote: want low, got %s", got.Confidence)
	}

	got = Combine([]models.SourceSentiment{src("finnhub", -40, 0.40, 5)}, th)
	if got.Label != models.SentimentNegative {
		t.Fatalf("-40 clears the negative threshold: want Negative, got %s", got.Label)
	}
	if got.Confidence != models.ConfidenceMedium {
		t.Fatalf("decisive score must keep its tier: want medium, got %s", got.Confidence)
	}
}

func TestNormalizeSourceZeroItems(t *testing.T) {
	got := NormalizeSource(NewLexiconAnalyzer(), "newsapi", nil, 0.35, testThresholds())
	if got.Weight != 0 {
		t.Fatalf("zero items: want weight 0, got %v", got.Weight)
	}
	if got.ItemCount != 0 || got.Label != models.SentimentNeutral {
		t.Fatal("zero items: want neutral empty reading")
	}
}

func TestNormalizeSourceScoresAndCaps(t *testing.T) {
	a := NewLexiconAnalyzer()
	items := make([]models.NewsItem, 14)
	for i := range items {
		items[i] = models.NewsItem{
			Title:       "Earnings beat with strong growth",
			Origin:      "wallstreetbets",
			PublishedAt: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
		}
	}
	got := NormalizeSource(a, "reddit", items, 0.25, testThresholds())

	if got.ItemCount != 14 {
		t.Fatalf("item count: want 14, got %d", got.ItemCount)
	}
	if len(got.Items) != 10 {
		t.Fatalf("reported items capped at 10, got %d", len(got.Items))
	}
	if got.Weight != 0.25 {
		t.Fatalf("weight: want 0.25, got %v", got.Weight)
	}
	if got.Score != 100 {
		t.Fatalf("uniformly bullish items: want 100, got %v", got.Score)
	}
	if got.Label != models.SentimentPositive {
		t.Fatalf("label: want Positive, got %s", got.Label)
	}
	for _, item := range got.Items {
		if item.Label != models.SentimentPositive {
			t.Fatalf("item label: want Positive, got %s", item.Label)
		}
	}
}
