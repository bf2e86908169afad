// Package usecase orchestrates bar retrieval, indicator computation,
// sentiment aggregation and narrative generation behind the API handlers.
package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"StockSense/internal/analysis"
	"StockSense/internal/domain/models"
	drepo "StockSense/internal/domain/repository"
	"StockSense/internal/sentiment"
	"StockSense/pkg/config"
	httpkit "StockSense/pkg/http"
	"StockSense/pkg/logger"
	"StockSense/pkg/util"
)

// StockAnalyzer wires the providers together. All upstream calls flow
// through it; handlers stay transport-only.
type StockAnalyzer struct {
	bars       drepo.BarProvider
	sources    []drepo.NewsSource
	scorer     sentiment.Analyzer
	summarizer drepo.Summarizer
	sentCfg    config.SentimentConfig
	modelName  string
	log        *logger.Logger
}

func NewStockAnalyzer(
	bars drepo.BarProvider,
	sources []drepo.NewsSource,
	scorer sentiment.Analyzer,
	summarizer drepo.Summarizer,
	sentCfg config.SentimentConfig,
	modelName string,
	log *logger.Logger,
) *StockAnalyzer {
	return &StockAnalyzer{
		bars:       bars,
		sources:    sources,
		scorer:     scorer,
		summarizer: summarizer,
		sentCfg:    sentCfg,
		modelName:  modelName,
		log:        log,
	}
}

// Analyze runs the technical pipeline only.
func (a *StockAnalyzer) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalysisResult, error) {
	report, err := a.buildReport(ctx, req.StockCode, req.MarketType)
	if err != nil {
		return nil, err
	}
	return &models.AnalysisResult{
		Stock:     report,
		ModelInfo: models.ModelInfo{Provider: "none"},
		Timestamp: time.Now().UTC(),
	}, nil
}

// AnalyzeWithSentiment runs the full pipeline: technicals, the sentiment
// blend across all enabled sources, the alignment verdict and, when a
// summarizer is configured, the narrative. A failed narrative downgrades to
// a warning; sentiment and technicals still come back.
func (a *StockAnalyzer) AnalyzeWithSentiment(ctx context.Context, req *models.AnalyzeWithSentimentRequest) (*models.AnalysisResult, error) {
	report, err := a.buildReport(ctx, req.StockCode, req.MarketType)
	if err != nil {
		return nil, err
	}

	result := &models.AnalysisResult{
		Stock:     report,
		ModelInfo: models.ModelInfo{Provider: "none"},
		Timestamp: time.Now().UTC(),
	}

	if req.IncludeSentiment == nil || *req.IncludeSentiment {
		combined := a.fetchSentiment(ctx, req.StockCode)
		verdict := analysis.ResolveAlignment(combined.Label, report.Trend)
		result.Sentiment = &combined
		result.Alignment = &verdict
		result.ModelInfo.IncludesRealSentiment = combined.Score != nil
		for _, s := range combined.Sources {
			if s.Weight > 0 {
				result.ModelInfo.SentimentSources = append(result.ModelInfo.SentimentSources, s.Source)
			}
		}
	}

	if a.summarizer != nil && a.summarizer.Enabled() {
		result.ModelInfo.Provider = "gemini"
		result.ModelInfo.Model = a.modelName
		text, err := a.summarizer.Summarize(ctx, report, result.Sentiment, result.Alignment)
		if err != nil {
			a.log.Warn("narrative generation failed", logger.Error(err))
			result.Warning = "AI analysis unavailable; structured data returned without narrative"
		} else {
			result.AISummary = text
		}
	}
	return result, nil
}

// ChartData fetches the extended bar series and converts it for display.
func (a *StockAnalyzer) ChartData(ctx context.Context, req *models.ChartDataRequest) (*models.ChartSeries, error) {
	bars, _, err := a.bars.IntradayBars(ctx, req.StockCode, req.MarketType, true)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, httpkit.UpstreamError("price provider returned no bars")
	}
	series := analysis.BuildChartSeries(bars)
	return &series, nil
}

func (a *StockAnalyzer) buildReport(ctx context.Context, stockCode, marketType string) (*models.TechnicalReport, error) {
	bars, ticker, err := a.bars.IntradayBars(ctx, stockCode, marketType, false)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, httpkit.UpstreamError("price provider returned no bars")
	}

	set := analysis.Compute(bars)
	last := bars[len(bars)-1]
	trend := analysis.TrendFromSet(last.Close, set)

	var change, changePct float64
	if len(bars) >= 2 {
		prev := bars[len(bars)-2].Close
		change = last.Close - prev
		if prev != 0 {
			changePct = change / prev * 100
		}
	}

	report := &models.TechnicalReport{
		StockCode:      stockCode,
		MarketType:     marketType,
		Ticker:         ticker,
		Timestamp:      last.Timestamp,
		CurrentPrice:   util.Round(last.Close, 2),
		PriceChange:    util.Round(change, 2),
		PriceChangePct: util.Round(changePct, 2),
		Open:           util.Round(last.Open, 2),
		High:           util.Round(last.High, 2),
		Low:            util.Round(last.Low, 2),
		Volume:         last.Volume,
		Trend:          trend,
		Indicators: models.IndicatorSnapshot{
			SMA5:          models.OptFloat(models.Latest(set.SMA[5]), 2),
			SMA10:         models.OptFloat(models.Latest(set.SMA[10]), 2),
			SMA20:         models.OptFloat(models.Latest(set.SMA[20]), 2),
			SMA60:         models.OptFloat(models.Latest(set.SMA[60]), 2),
			MACD:          models.OptFloat(models.Latest(set.MACD.Line), 4),
			MACDSignal:    models.OptFloat(models.Latest(set.MACD.Signal), 4),
			MACDHistogram: models.OptFloat(models.Latest(set.MACD.Histogram), 4),
			RSI:           models.OptFloat(set.RSI, 2),
		},
		SupportResistance: models.SupportResistance{
			Support:    util.Round(set.Support, 2),
			Resistance: util.Round(set.Resistance, 2),
		},
		VolumeAnalysis: models.VolumeAnalysis{
			CurrentVolume: last.Volume,
			AvgVolume10:   models.OptFloat(set.AvgVolume, 2),
			VolumeRatio:   models.OptFloat(set.VolumeRatio, 2),
		},
	}

	a.log.Info("technical report built",
		logger.String("stock_code", stockCode),
		logger.String("ticker", ticker),
		logger.Int("bars", len(bars)),
		logger.String("trend", string(trend)))
	return report, nil
}

// fetchSentiment queries every enabled source concurrently. Individual
// failures degrade that source to a zero-weight reading instead of failing
// the request.
func (a *StockAnalyzer) fetchSentiment(ctx context.Context, stockCode string) models.CombinedSentiment {
	readings := make([]models.SourceSentiment, len(a.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range a.sources {
		i, src := i, src
		g.Go(func() error {
			if !src.Enabled() {
				readings[i] = models.SourceSentiment{Source: src.Name(), Label: models.SentimentNeutral}
				return nil
			}
			items, err := src.Fetch(gctx, stockCode)
			if err != nil {
				a.log.Warn("sentiment source failed",
					logger.String("source", src.Name()), logger.Error(err))
				readings[i] = models.SourceSentiment{Source: src.Name(), Label: models.SentimentNeutral}
				return nil
			}
			readings[i] = sentiment.NormalizeSource(a.scorer, src.Name(), items, a.nominalWeight(src.Name()), a.sentCfg)
			return nil
		})
	}
	_ = g.Wait()

	combined := sentiment.Combine(readings, a.sentCfg)
	if combined.Score != nil {
		a.log.Info("sentiment combined",
			logger.String("stock_code", stockCode),
			logger.Float64("score", *combined.Score),
			logger.String("label", string(combined.Label)),
			logger.String("confidence", string(combined.Confidence)))
	}
	return combined
}

func (a *StockAnalyzer) nominalWeight(source string) float64 {
	switch source {
	case "finnhub":
		return a.sentCfg.Weights.Finnhub
	case "newsapi":
		return a.sentCfg.Weights.NewsAPI
	case "reddit":
		return a.sentCfg.Weights.Reddit
	default:
		return 0
	}
}

// SourceStatus reports which upstream providers are configured, for the
// health endpoint.
func (a *StockAnalyzer) SourceStatus() map[string]bool {
	status := make(map[string]bool, len(a.sources)+2)
	status["alphavantage"] = a.bars != nil
	for _, src := range a.sources {
		status[src.Name()] = src.Enabled()
	}
	status["gemini"] = a.summarizer != nil && a.summarizer.Enabled()
	return status
}
