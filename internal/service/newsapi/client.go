// Package newsapi fetches English-language articles from the NewsAPI
// everything endpoint.
package newsapi

import (
	"context"
	"strconv"
	"time"

	"StockSense/internal/domain/models"
	drepo "StockSense/internal/domain/repository"
	"StockSense/internal/service/metrics"
	httpkit "StockSense/pkg/http"
	"StockSense/pkg/logger"
)

type Config struct {
	APIKey   string
	BaseURL  string
	PageSize int
	MaxItems int
}

type Client struct {
	cfg  Config
	http *httpkit.Client
	log  *logger.Logger
}

func New(cfg Config, httpClient *httpkit.Client, log *logger.Logger) drepo.NewsSource {
	return &Client{cfg: cfg, http: httpClient, log: log}
}

func (c *Client) Name() string { return "newsapi" }

func (c *Client) Enabled() bool { return c.cfg.APIKey != "" }

type everythingResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

func (c *Client) Fetch(ctx context.Context, stockCode string) ([]models.NewsItem, error) {
	var resp everythingResponse
	err := c.http.SendAndParse(ctx, &httpkit.RequestOptions{
		Method: httpkit.MethodGet,
		URL:    c.cfg.BaseURL + "/everything",
		Headers: map[string]string{
			"X-Api-Key": c.cfg.APIKey,
		},
		QueryParams: map[string][]string{
			"q":        {stockCode + " stock"},
			"language": {"en"},
			"sortBy":   {"relevancy"},
			"pageSize": {strconv.Itoa(c.cfg.PageSize)},
		},
	}, &resp)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("newsapi").Inc()
		return nil, httpkit.UpstreamError("news article request failed").WithError(err)
	}
	if resp.Status != "ok" {
		metrics.UpstreamErrors.WithLabelValues("newsapi").Inc()
		return nil, httpkit.UpstreamError("news provider rejected the request").WithParam("reason", resp.Message)
	}

	items := make([]models.NewsItem, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title == "" {
			continue
		}
		items = append(items, models.NewsItem{
			Title:       a.Title,
			Body:        a.Description,
			Origin:      a.Source.Name,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
		if len(items) == c.cfg.MaxItems {
			break
		}
	}
	c.log.Debug("fetched news articles", logger.String("symbol", stockCode), logger.Int("items", len(items)))
	return items, nil
}
