package di

import (
	"fmt"

	"StockSense/internal/domain/repository"
	"StockSense/internal/handler/api"
	"StockSense/internal/sentiment"
	"StockSense/internal/service/alphavantage"
	"StockSense/internal/service/cache"
	"StockSense/internal/service/finnhub"
	"StockSense/internal/service/gemini"
	"StockSense/internal/service/newsapi"
	"StockSense/internal/service/reddit"
	"StockSense/internal/usecase"
	"StockSense/pkg/config"
	xhttp "StockSense/pkg/http"
	"StockSense/pkg/logger"
	"StockSense/pkg/server"
)

// ProvideLogger creates the structured logger. Development gets readable
// console output; everything else logs JSON.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	lc := &logger.Config{Level: "info", Format: "json", Output: "stdout"}
	if cfg.Environment == "development" {
		lc.Level = "debug"
		lc.Format = "console"
	}
	l, err := logger.New(lc)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideBytesCache picks the bar payload cache backend.
func ProvideBytesCache(cfg *config.Config) cache.BytesCache {
	if cfg.Cache.Redis.Enabled {
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return cache.NewTTLCache()
}

// ProvideBarProvider creates the Alpha Vantage client.
func ProvideBarProvider(cfg *config.Config, c cache.BytesCache, log *logger.Logger) repository.BarProvider {
	return alphavantage.New(alphavantage.Config{
		APIKey:   cfg.AlphaVantage.APIKey,
		BaseURL:  cfg.AlphaVantage.BaseURL,
		Interval: cfg.AlphaVantage.Interval,
		CacheTTL: cfg.Cache.TTL,
	}, xhttp.NewClient(xhttp.WithTimeout(cfg.AlphaVantage.Timeout)), c, log)
}

// ProvideNewsSources creates every sentiment source. Sources without
// credentials stay in the slice as disabled so the health endpoint can
// report them.
func ProvideNewsSources(cfg *config.Config, log *logger.Logger) []repository.NewsSource {
	return []repository.NewsSource{
		finnhub.New(finnhub.Config{
			APIKey:       cfg.Finnhub.APIKey,
			BaseURL:      cfg.Finnhub.BaseURL,
			LookbackDays: cfg.Finnhub.LookbackDays,
			MaxItems:     cfg.Finnhub.MaxItems,
		}, xhttp.NewClient(xhttp.WithTimeout(cfg.Finnhub.Timeout)), log),
		newsapi.New(newsapi.Config{
			APIKey:   cfg.NewsAPI.APIKey,
			BaseURL:  cfg.NewsAPI.BaseURL,
			PageSize: cfg.NewsAPI.PageSize,
			MaxItems: cfg.NewsAPI.MaxItems,
		}, xhttp.NewClient(xhttp.WithTimeout(cfg.NewsAPI.Timeout)), log),
		reddit.New(reddit.Config{
			ClientID:          cfg.Reddit.ClientID,
			ClientSecret:      cfg.Reddit.ClientSecret,
			BaseURL:           cfg.Reddit.BaseURL,
			UserAgent:         cfg.Reddit.UserAgent,
			Subreddits:        cfg.Reddit.Subreddits,
			PostsPerSubreddit: cfg.Reddit.PostsPerSubreddit,
		}, xhttp.NewClient(xhttp.WithTimeout(cfg.Reddit.Timeout)), log),
	}
}

// ProvideScorer creates the text sentiment scorer.
func ProvideScorer() sentiment.Analyzer {
	return sentiment.NewLexiconAnalyzer()
}

// ProvideSummarizer creates the narrative generator.
func ProvideSummarizer(cfg *config.Config, log *logger.Logger) repository.Summarizer {
	return gemini.New(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
	}, xhttp.NewClient(xhttp.WithTimeout(cfg.Gemini.Timeout)), log)
}

// ProvideAnalyzer creates the orchestrating use case.
func ProvideAnalyzer(
	bars repository.BarProvider,
	sources []repository.NewsSource,
	scorer sentiment.Analyzer,
	summarizer repository.Summarizer,
	cfg *config.Config,
	log *logger.Logger,
) *usecase.StockAnalyzer {
	return usecase.NewStockAnalyzer(bars, sources, scorer, summarizer,
		cfg.Sentiment, cfg.Gemini.Model, log)
}

// ProvideHandler creates the HTTP handler surface.
func ProvideHandler(cfg *config.Config, log *logger.Logger, analyzer *usecase.StockAnalyzer) xhttp.Handler {
	return api.NewAnalysisHandler(log, analyzer, cfg.Auth.APIKey)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler xhttp.Handler, log *logger.Logger) *server.App {
	return server.New(cfg, handler, log)
}
