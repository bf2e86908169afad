// Package api exposes the analysis endpoints over Echo.
package api

import (
	"time"

	"github.com/labstack/echo/v4"

	"StockSense/internal/domain/models"
	"StockSense/internal/service/metrics"
	"StockSense/internal/service/ratelimit"
	"StockSense/internal/usecase"
	xhttp "StockSense/pkg/http"
	"StockSense/pkg/http/middleware"
	xlogger "StockSense/pkg/logger"
)

const (
	rateLimitCapacity = 10
	rateLimitRefill   = 2 // tokens per second
)

// AnalysisHandler serves the technical and sentiment analysis endpoints.
type AnalysisHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.StockAnalyzer
	rl       *ratelimit.Limiter
	apiKey   string
}

func NewAnalysisHandler(logger *xlogger.Logger, analyzer *usecase.StockAnalyzer, apiKey string) *AnalysisHandler {
	metrics.Register()
	return &AnalysisHandler{
		logger:   logger,
		analyzer: analyzer,
		rl:       ratelimit.New(),
		apiKey:   apiKey,
	}
}

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	g := e.Group("", middleware.BearerAuth(h.apiKey))
	g.POST("/analyze", h.Analyze)
	g.POST("/analyze_with_sentiment", h.AnalyzeWithSentiment)
	g.POST("/chart_data", h.ChartData)
}

func (h *AnalysisHandler) Analyze(c echo.Context) error {
	start := time.Now()
	endpoint := "analyze"
	defer func() { metrics.RequestLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":"+endpoint, rateLimitCapacity, rateLimitRefill) {
		return xhttp.TooManyRequestsResponse(c)
	}

	res, err := h.analyzer.Analyze(c.Request().Context(), req)
	if err != nil {
		metrics.RequestErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("analyze usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) AnalyzeWithSentiment(c echo.Context) error {
	start := time.Now()
	endpoint := "analyze_with_sentiment"
	defer func() { metrics.RequestLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.AnalyzeWithSentimentRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":"+endpoint, rateLimitCapacity, rateLimitRefill) {
		return xhttp.TooManyRequestsResponse(c)
	}

	res, err := h.analyzer.AnalyzeWithSentiment(c.Request().Context(), req)
	if err != nil {
		metrics.RequestErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("analyze_with_sentiment usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) ChartData(c echo.Context) error {
	start := time.Now()
	endpoint := "chart_data"
	defer func() { metrics.RequestLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.ChartDataRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":"+endpoint, rateLimitCapacity, rateLimitRefill) {
		return xhttp.TooManyRequestsResponse(c)
	}

	res, err := h.analyzer.ChartData(c.Request().Context(), req)
	if err != nil {
		metrics.RequestErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("chart_data usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// Health reports liveness and which upstream providers are configured.
// It is intentionally unauthenticated for load balancer probes.
func (h *AnalysisHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":              "healthy",
		"services_configured": h.analyzer.SourceStatus(),
		"timestamp":           time.Now().UTC(),
	})
}
