package repository

import (
	"context"

	"StockSense/internal/domain/models"
)

// BarProvider supplies a time-ordered intraday bar series for a ticker.
// full requests the provider's extended output size (chart data).
type BarProvider interface {
	IntradayBars(ctx context.Context, stockCode, marketType string, full bool) (bars []models.Bar, ticker string, err error)
}

// NewsSource supplies raw text items for one sentiment provider.
// Zero items is a valid, distinguishable response; a failed or disabled
// source is excluded from aggregation, never fatal.
type NewsSource interface {
	Name() string
	Enabled() bool
	Fetch(ctx context.Context, stockCode string) ([]models.NewsItem, error)
}

// Summarizer turns the structured analysis output into free-text narrative.
type Summarizer interface {
	Enabled() bool
	Summarize(ctx context.Context, report *models.TechnicalReport, sentiment *models.CombinedSentiment, alignment *models.AlignmentVerdict) (string, error)
}
