// Package finnhub fetches recent company news from the Finnhub REST API.
package finnhub

import (
	"context"
	"time"

	"StockSense/internal/domain/models"
	drepo "StockSense/internal/domain/repository"
	"StockSense/internal/service/metrics"
	httpkit "StockSense/pkg/http"
	"StockSense/pkg/logger"
)

type Config struct {
	APIKey       string
	BaseURL      string
	LookbackDays int
	MaxItems     int
}

// Client implements NewsSource over the company-news endpoint.
type Client struct {
	cfg  Config
	http *httpkit.Client
	log  *logger.Logger
}

func New(cfg Config, httpClient *httpkit.Client, log *logger.Logger) drepo.NewsSource {
	return &Client{cfg: cfg, http: httpClient, log: log}
}

func (c *Client) Name() string { return "finnhub" }

func (c *Client) Enabled() bool { return c.cfg.APIKey != "" }

type newsArticle struct {
	Datetime int64  `json:"datetime"` // unix seconds
	Headline string `json:"headline"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// Fetch returns up to MaxItems articles from the lookback window.
func (c *Client) Fetch(ctx context.Context, stockCode string) ([]models.NewsItem, error) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -c.cfg.LookbackDays)

	var articles []newsArticle
	err := c.http.SendAndParse(ctx, &httpkit.RequestOptions{
		Method: httpkit.MethodGet,
		URL:    c.cfg.BaseURL + "/company-news",
		QueryParams: map[string][]string{
			"symbol": {stockCode},
			"from":   {from.Format("2006-01-02")},
			"to":     {to.Format("2006-01-02")},
			"token":  {c.cfg.APIKey},
		},
	}, &articles)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("finnhub").Inc()
		return nil, httpkit.UpstreamError("company news request failed").WithError(err)
	}

	if len(articles) > c.cfg.MaxItems {
		articles = articles[:c.cfg.MaxItems]
	}
	items := make([]models.NewsItem, 0, len(articles))
	for _, a := range articles {
		if a.Headline == "" {
			continue
		}
		items = append(items, models.NewsItem{
			Title:       a.Headline,
			Body:        a.Summary,
			Origin:      a.Source,
			URL:         a.URL,
			PublishedAt: time.Unix(a.Datetime, 0).UTC(),
		})
	}
	c.log.Debug("fetched company news", logger.String("symbol", stockCode), logger.Int("items", len(items)))
	return items, nil
}
