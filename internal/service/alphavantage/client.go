// Package alphavantage fetches intraday bar series from the Alpha Vantage
// TIME_SERIES_INTRADAY endpoint.
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"StockSense/internal/domain/models"
	drepo "StockSense/internal/domain/repository"
	"StockSense/internal/service/cache"
	"StockSense/internal/service/metrics"
	httpkit "StockSense/pkg/http"
	"StockSense/pkg/logger"
	"StockSense/pkg/util"
)

type Config struct {
	APIKey   string
	BaseURL  string
	Interval string
	CacheTTL time.Duration
}

// Client implements BarProvider over the vendor REST API with an
// hour-keyed payload cache, so repeated analyses of the same symbol
// within the hour cost one upstream call.
type Client struct {
	cfg   Config
	http  *httpkit.Client
	cache cache.BytesCache
	log   *logger.Logger
}

func New(cfg Config, httpClient *httpkit.Client, c cache.BytesCache, log *logger.Logger) drepo.BarProvider {
	return &Client{cfg: cfg, http: httpClient, cache: c, log: log}
}

// IntradayBars returns the chronological bar series for a stock code.
func (c *Client) IntradayBars(ctx context.Context, stockCode, marketType string, full bool) ([]models.Bar, string, error) {
	ticker := MapSymbol(stockCode, marketType)
	outputSize := "compact"
	if full {
		outputSize = "full"
	}

	payload, err := c.fetchPayload(ctx, ticker, outputSize)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("alphavantage").Inc()
		return nil, ticker, err
	}

	bars, err := c.parseBars(payload)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("alphavantage").Inc()
		return nil, ticker, err
	}
	return bars, ticker, nil
}

func (c *Client) fetchPayload(ctx context.Context, ticker, outputSize string) ([]byte, error) {
	key := fmt.Sprintf("av:%s:%s:%s", ticker, outputSize, time.Now().UTC().Format("2006010215"))
	if b, ok, err := c.cache.GetBytes(key); err == nil && ok {
		metrics.CacheHits.WithLabelValues("hit").Inc()
		return b, nil
	}
	metrics.CacheHits.WithLabelValues("miss").Inc()

	var body []byte
	err := c.http.SendAndParseWithRetry(ctx, &httpkit.RequestOptions{
		Method: httpkit.MethodGet,
		URL:    c.cfg.BaseURL,
		QueryParams: map[string][]string{
			"function":   {"TIME_SERIES_INTRADAY"},
			"symbol":     {ticker},
			"interval":   {c.cfg.Interval},
			"outputsize": {outputSize},
			"apikey":     {c.cfg.APIKey},
		},
	}, &body, 3)
	if err != nil {
		return nil, httpkit.UpstreamError("price data request failed").WithError(err)
	}

	if err := c.cache.SetBytes(key, body, c.cfg.CacheTTL); err != nil {
		c.log.Warn("bar cache write failed", logger.Error(err))
	}
	return body, nil
}

func (c *Client) parseBars(payload []byte) ([]models.Bar, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("parse bars: %w", err)
	}

	if raw, ok := envelope["Error Message"]; ok {
		var msg string
		_ = json.Unmarshal(raw, &msg)
		return nil, httpkit.BadRequestError("unknown or invalid stock code").WithParam("detail", msg)
	}
	for _, key := range []string{"Note", "Information"} {
		if raw, ok := envelope[key]; ok {
			var msg string
			_ = json.Unmarshal(raw, &msg)
			c.log.Warn("vendor throttled the request", logger.String("detail", msg))
			return nil, httpkit.UpstreamError("price provider rate limited")
		}
	}

	seriesKey := fmt.Sprintf("Time Series (%s)", c.cfg.Interval)
	raw, ok := envelope[seriesKey]
	if !ok {
		return nil, httpkit.UpstreamError("price provider returned no time series")
	}

	var series map[string]rawBar
	if err := json.Unmarshal(raw, &series); err != nil {
		return nil, fmt.Errorf("parse time series: %w", err)
	}
	if len(series) == 0 {
		return nil, httpkit.UpstreamError("price provider returned an empty time series")
	}

	stamps := make([]string, 0, len(series))
	for ts := range series {
		stamps = append(stamps, ts)
	}
	sort.Strings(stamps)

	bars := make([]models.Bar, 0, len(stamps))
	for _, ts := range stamps {
		bar, err := series[ts].toBar(ts)
		if err != nil {
			return nil, fmt.Errorf("bar %s: %w", ts, err)
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

type rawBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

func (r rawBar) toBar(ts string) (models.Bar, error) {
	t, ok := util.ParseBarTime(ts)
	if !ok {
		return models.Bar{}, fmt.Errorf("bad timestamp %q", ts)
	}
	open, err := strconv.ParseFloat(r.Open, 64)
	if err != nil {
		return models.Bar{}, fmt.Errorf("open: %w", err)
	}
	high, err := strconv.ParseFloat(r.High, 64)
	if err != nil {
		return models.Bar{}, fmt.Errorf("high: %w", err)
	}
	low, err := strconv.ParseFloat(r.Low, 64)
	if err != nil {
		return models.Bar{}, fmt.Errorf("low: %w", err)
	}
	cl, err := strconv.ParseFloat(r.Close, 64)
	if err != nil {
		return models.Bar{}, fmt.Errorf("close: %w", err)
	}
	vol, err := strconv.ParseInt(r.Volume, 10, 64)
	if err != nil {
		return models.Bar{}, fmt.Errorf("volume: %w", err)
	}
	return models.Bar{Timestamp: t, Open: open, High: high, Low: low, Close: cl, Volume: vol}, nil
}
