package models

import "time"

// IndicatorSnapshot is the latest-value view of an IndicatorSet with
// unavailable values rendered as null.
type IndicatorSnapshot struct {
	SMA5          *float64 `json:"sma_5"`
	SMA10         *float64 `json:"sma_10"`
	SMA20         *float64 `json:"sma_20"`
	SMA60         *float64 `json:"sma_60"`
	MACD          *float64 `json:"macd"`
	MACDSignal    *float64 `json:"macd_signal"`
	MACDHistogram *float64 `json:"macd_histogram"`
	RSI           *float64 `json:"rsi"`
}

// VolumeAnalysis mirrors the volume section of the technical report.
type VolumeAnalysis struct {
	CurrentVolume int64    `json:"current_volume"`
	AvgVolume10   *float64 `json:"avg_volume_10"`
	VolumeRatio   *float64 `json:"volume_ratio"`
}

// SupportResistance is min/max close over the whole available series.
type SupportResistance struct {
	Support    float64 `json:"support"`
	Resistance float64 `json:"resistance"`
}

// TechnicalReport is the full technical-analysis output for one request.
type TechnicalReport struct {
	StockCode         string            `json:"stock_code"`
	MarketType        string            `json:"market_type"`
	Ticker            string            `json:"ticker"`
	Timestamp         time.Time         `json:"timestamp"`
	CurrentPrice      float64           `json:"current_price"`
	PriceChange       float64           `json:"price_change"`
	PriceChangePct    float64           `json:"price_change_percent"`
	Open              float64           `json:"open"`
	High              float64           `json:"high"`
	Low               float64           `json:"low"`
	Volume            int64             `json:"volume"`
	Trend             TrendLabel        `json:"trend"`
	Indicators        IndicatorSnapshot `json:"technical_indicators"`
	SupportResistance SupportResistance `json:"support_resistance"`
	VolumeAnalysis    VolumeAnalysis    `json:"volume_analysis"`
}

// ChartSeries holds the display-ready parallel sequences for the chart
// endpoint. All slices have equal length; SMA entries are null where the
// window is incomplete so renderers skip the point instead of plotting zero.
type ChartSeries struct {
	Timestamps []string   `json:"timestamps"`
	Prices     []float64  `json:"prices"`
	Volumes    []int64    `json:"volumes"`
	SMA5       []*float64 `json:"sma5"`
	SMA20      []*float64 `json:"sma20"`
	Highs      []float64  `json:"highs"`
	Lows       []float64  `json:"lows"`
}

// ModelInfo describes what produced the narrative part of a result.
type ModelInfo struct {
	Provider              string   `json:"provider"`
	Model                 string   `json:"model"`
	IncludesRealSentiment bool     `json:"includes_real_sentiment"`
	SentimentSources      []string `json:"sentiment_sources,omitempty"`
}

// AnalysisResult is the complete response payload of the analyze endpoints.
type AnalysisResult struct {
	Stock     *TechnicalReport   `json:"stock_data"`
	Sentiment *CombinedSentiment `json:"sentiment_data,omitempty"`
	Alignment *AlignmentVerdict  `json:"alignment,omitempty"`
	AISummary string             `json:"ai_analysis,omitempty"`
	ModelInfo ModelInfo          `json:"model_info"`
	Warning   string             `json:"warning,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}
