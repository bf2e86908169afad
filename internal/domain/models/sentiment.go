package models

import "time"

// SentimentLabel is the three-way sentiment classification.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNegative SentimentLabel = "Negative"
	SentimentNeutral  SentimentLabel = "Neutral"
)

// Confidence is the qualitative tier of a combined sentiment reading.
type Confidence string

const (
	ConfidenceLow      Confidence = "low"
	ConfidenceMedium   Confidence = "medium"
	ConfidenceHigh     Confidence = "high"
	ConfidenceVeryHigh Confidence = "very high"
)

// NewsItem is one raw text item from a sentiment source, before scoring.
type NewsItem struct {
	Title       string    `json:"title"`
	Body        string    `json:"body,omitempty"`
	Origin      string    `json:"origin,omitempty"` // publisher, subreddit, etc.
	URL         string    `json:"url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	Engagement  int       `json:"engagement,omitempty"` // upvotes/score where the source has one
}

// ScoredItem is a news item annotated with its per-item sentiment label.
type ScoredItem struct {
	Title       string         `json:"title"`
	Origin      string         `json:"origin,omitempty"`
	URL         string         `json:"url,omitempty"`
	PublishedAt time.Time      `json:"published_at"`
	Label       SentimentLabel `json:"sentiment"`
	Engagement  int            `json:"engagement,omitempty"`
}

// SourceSentiment is one provider's normalized contribution.
// Weight is the provider's nominal weight when ItemCount > 0, else 0.
type SourceSentiment struct {
	Source    string         `json:"source"`
	Score     float64        `json:"score"` // [-100,100]
	Label     SentimentLabel `json:"label"`
	ItemCount int            `json:"item_count"`
	Weight    float64        `json:"weight"`
	Items     []ScoredItem   `json:"items,omitempty"`
}

// CombinedSentiment is the weighted blend across sources. Score is nil when
// no source contributed; nil is distinct from a computed zero.
type CombinedSentiment struct {
	Score      *float64          `json:"combined_score"`
	Label      SentimentLabel    `json:"combined_label"`
	Confidence Confidence        `json:"confidence"`
	Sources    []SourceSentiment `json:"sources"`
}

// Alignment is the verdict comparing trend direction against sentiment polarity.
type Alignment string

const (
	AlignmentAligned  Alignment = "Aligned"
	AlignmentDiverged Alignment = "Diverged"
	AlignmentMixed    Alignment = "Mixed"
)

// AlignmentVerdict pairs the outcome with its fixed rationale string.
type AlignmentVerdict struct {
	Outcome   Alignment `json:"outcome"`
	Rationale string    `json:"rationale"`
}
