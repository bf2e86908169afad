package models

// Requests for the analysis HTTP endpoints. Defined in domain for consistency and reuse.

type AnalyzeRequest struct {
	StockCode  string `json:"stock_code" validate:"required,max=12"`
	MarketType string `json:"market_type" default:"US" validate:"oneof=US A-share HK"`
}

type AnalyzeWithSentimentRequest struct {
	StockCode        string `json:"stock_code" validate:"required,max=12"`
	MarketType       string `json:"market_type" default:"US" validate:"oneof=US A-share HK"`
	IncludeSentiment *bool  `json:"include_sentiment" default:"true"`
}

type ChartDataRequest struct {
	StockCode  string `json:"stock_code" validate:"required,max=12"`
	MarketType string `json:"market_type" default:"US" validate:"oneof=US A-share HK"`
}
