// Package gemini produces the narrative analysis text via the Google
// generative language REST API.
package gemini

import (
	"context"
	"fmt"

	"StockSense/internal/domain/models"
	drepo "StockSense/internal/domain/repository"
	"StockSense/internal/service/metrics"
	httpkit "StockSense/pkg/http"
	"StockSense/pkg/logger"
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Client struct {
	cfg  Config
	http *httpkit.Client
	log  *logger.Logger
}

func New(cfg Config, httpClient *httpkit.Client, log *logger.Logger) drepo.Summarizer {
	return &Client{cfg: cfg, http: httpClient, log: log}
}

func (c *Client) Enabled() bool { return c.cfg.APIKey != "" }

// Model reports the configured model identifier for response metadata.
func (c *Client) Model() string { return c.cfg.Model }

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []content `json:"contents"`
	GenerationConfig struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Summarize sends the structured analysis as a prompt and returns the
// model's narrative.
func (c *Client) Summarize(ctx context.Context, report *models.TechnicalReport, sentiment *models.CombinedSentiment, alignment *models.AlignmentVerdict) (string, error) {
	var req generateRequest
	req.Contents = []content{{Parts: []part{{Text: BuildPrompt(report, sentiment, alignment)}}}}
	req.GenerationConfig.Temperature = 0.3

	var resp generateResponse
	err := c.http.SendAndParse(ctx, &httpkit.RequestOptions{
		Method: httpkit.MethodPost,
		URL:    fmt.Sprintf("%s/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model),
		Headers: map[string]string{
			"x-goog-api-key": c.cfg.APIKey,
		},
		Body: req,
	}, &resp)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("gemini").Inc()
		return "", httpkit.UpstreamError("narrative generation request failed").WithError(err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		metrics.UpstreamErrors.WithLabelValues("gemini").Inc()
		return "", httpkit.UpstreamError("narrative model returned no candidates")
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	c.log.Debug("generated analysis narrative", logger.Int("chars", len(text)))
	return text, nil
}
