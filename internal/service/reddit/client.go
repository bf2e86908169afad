// Package reddit searches a fixed set of finance subreddits through the
// public JSON listing API.
package reddit

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"
	"unicode/utf8"

	"StockSense/internal/domain/models"
	drepo "StockSense/internal/domain/repository"
	"StockSense/internal/service/metrics"
	httpkit "StockSense/pkg/http"
	"StockSense/pkg/logger"
)

type Config struct {
	ClientID          string
	ClientSecret      string
	BaseURL           string
	UserAgent         string
	Subreddits        []string
	PostsPerSubreddit int
}

type Client struct {
	cfg  Config
	http *httpkit.Client
	log  *logger.Logger
}

func New(cfg Config, httpClient *httpkit.Client, log *logger.Logger) drepo.NewsSource {
	return &Client{cfg: cfg, http: httpClient, log: log}
}

func (c *Client) Name() string { return "reddit" }

// Enabled requires both credentials; a half-configured source stays off.
func (c *Client) Enabled() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != ""
}

type listing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title      string  `json:"title"`
				Selftext   string  `json:"selftext"`
				Permalink  string  `json:"permalink"`
				Score      int     `json:"score"`
				CreatedUTC float64 `json:"created_utc"`
				Subreddit  string  `json:"subreddit"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Fetch searches each configured subreddit for the stock code over the past
// week. A failing subreddit is skipped, not fatal, so one bad listing
// cannot silence the others.
func (c *Client) Fetch(ctx context.Context, stockCode string) ([]models.NewsItem, error) {
	var items []models.NewsItem
	for _, sub := range c.cfg.Subreddits {
		posts, err := c.searchSubreddit(ctx, sub, stockCode)
		if err != nil {
			metrics.UpstreamErrors.WithLabelValues("reddit").Inc()
			c.log.Warn("subreddit search failed",
				logger.String("subreddit", sub), logger.Error(err))
			continue
		}
		items = append(items, posts...)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Engagement > items[j].Engagement })
	c.log.Debug("fetched reddit posts", logger.String("symbol", stockCode), logger.Int("items", len(items)))
	return items, nil
}

// selftextLimit keeps long posts from drowning the title signal.
const selftextLimit = 200

// truncateBody cuts at selftextLimit without splitting a multi-byte rune.
func truncateBody(body string) string {
	if len(body) <= selftextLimit {
		return body
	}
	cut := selftextLimit
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut]
}

func (c *Client) searchSubreddit(ctx context.Context, subreddit, stockCode string) ([]models.NewsItem, error) {
	var l listing
	err := c.http.SendAndParse(ctx, &httpkit.RequestOptions{
		Method: httpkit.MethodGet,
		URL:    fmt.Sprintf("%s/r/%s/search.json", c.cfg.BaseURL, subreddit),
		Headers: map[string]string{
			"User-Agent": c.cfg.UserAgent,
		},
		QueryParams: map[string][]string{
			"q":           {stockCode},
			"restrict_sr": {"on"},
			"sort":        {"new"},
			"t":           {"week"},
			"limit":       {strconv.Itoa(c.cfg.PostsPerSubreddit)},
		},
	}, &l)
	if err != nil {
		return nil, err
	}

	items := make([]models.NewsItem, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		p := child.Data
		if p.Title == "" {
			continue
		}
		body := truncateBody(p.Selftext)
		items = append(items, models.NewsItem{
			Title:       p.Title,
			Body:        body,
			Origin:      p.Subreddit,
			URL:         "https://www.reddit.com" + p.Permalink,
			PublishedAt: time.Unix(int64(p.CreatedUTC), 0).UTC(),
			Engagement:  p.Score,
		})
	}
	return items, nil
}
