package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Auth struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"auth"`
	AlphaVantage struct {
		APIKey   string        `yaml:"api_key"`
		BaseURL  string        `yaml:"base_url"`
		Interval string        `yaml:"interval"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"alpha_vantage"`
	Finnhub struct {
		APIKey       string        `yaml:"api_key"`
		BaseURL      string        `yaml:"base_url"`
		LookbackDays int           `yaml:"lookback_days"`
		MaxItems     int           `yaml:"max_items"`
		Timeout      time.Duration `yaml:"timeout"`
	} `yaml:"finnhub"`
	NewsAPI struct {
		APIKey   string        `yaml:"api_key"`
		BaseURL  string        `yaml:"base_url"`
		PageSize int           `yaml:"page_size"`
		MaxItems int           `yaml:"max_items"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"newsapi"`
	Reddit struct {
		ClientID          string        `yaml:"client_id"`
		ClientSecret      string        `yaml:"client_secret"`
		BaseURL           string        `yaml:"base_url"`
		UserAgent         string        `yaml:"user_agent"`
		Subreddits        []string      `yaml:"subreddits"`
		PostsPerSubreddit int           `yaml:"posts_per_subreddit"`
		Timeout           time.Duration `yaml:"timeout"`
	} `yaml:"reddit"`
	Gemini struct {
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url"`
		Model   string        `yaml:"model"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"gemini"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	Cache     struct {
		TTL   time.Duration `yaml:"ttl"`
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// SentimentConfig carries the policy values of the sentiment pipeline:
// classification thresholds and nominal per-source weights. They are
// configuration rather than constants so tests can probe boundary behavior.
type SentimentConfig struct {
	PositiveThreshold float64          `yaml:"positive_threshold"`
	NegativeThreshold float64          `yaml:"negative_threshold"`
	Weights           SentimentWeights `yaml:"weights"`
}

// SentimentWeights are the nominal per-source blend weights.
type SentimentWeights struct {
	Finnhub float64 `yaml:"finnhub"`
	NewsAPI float64 `yaml:"newsapi"`
	Reddit  float64 `yaml:"reddit"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("API_KEY"); v != "" {
		c.Auth.APIKey = v
	}
	if v := os.Getenv("ALPHA_VANTAGE_KEY"); v != "" {
		c.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		c.Finnhub.APIKey = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		c.NewsAPI.APIKey = v
	}
	if v := os.Getenv("REDDIT_CLIENT_ID"); v != "" {
		c.Reddit.ClientID = v
	}
	if v := os.Getenv("REDDIT_CLIENT_SECRET"); v != "" {
		c.Reddit.ClientSecret = v
	}
	if v := os.Getenv("REDDIT_USER_AGENT"); v != "" {
		c.Reddit.UserAgent = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Enabled = true
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("SUBREDDITS"); v != "" {
		c.Reddit.Subreddits = strings.Split(v, ",")
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.AlphaVantage.BaseURL == "" {
		c.AlphaVantage.BaseURL = "https://www.alphavantage.co/query"
	}
	if c.AlphaVantage.Interval == "" {
		c.AlphaVantage.Interval = "5min"
	}
	if c.AlphaVantage.Timeout == 0 {
		c.AlphaVantage.Timeout = 10 * time.Second
	}
	if c.Finnhub.BaseURL == "" {
		c.Finnhub.BaseURL = "https://finnhub.io/api/v1"
	}
	if c.Finnhub.LookbackDays == 0 {
		c.Finnhub.LookbackDays = 7
	}
	if c.Finnhub.MaxItems == 0 {
		c.Finnhub.MaxItems = 15
	}
	if c.Finnhub.Timeout == 0 {
		c.Finnhub.Timeout = 10 * time.Second
	}
	if c.NewsAPI.BaseURL == "" {
		c.NewsAPI.BaseURL = "https://newsapi.org/v2"
	}
	if c.NewsAPI.PageSize == 0 {
		c.NewsAPI.PageSize = 20
	}
	if c.NewsAPI.MaxItems == 0 {
		c.NewsAPI.MaxItems = 15
	}
	if c.NewsAPI.Timeout == 0 {
		c.NewsAPI.Timeout = 10 * time.Second
	}
	if c.Reddit.BaseURL == "" {
		c.Reddit.BaseURL = "https://www.reddit.com"
	}
	if c.Reddit.UserAgent == "" {
		c.Reddit.UserAgent = "stock_analyzer_bot/1.0"
	}
	if len(c.Reddit.Subreddits) == 0 {
		c.Reddit.Subreddits = []string{"wallstreetbets", "stocks", "investing", "StockMarket"}
	}
	if c.Reddit.PostsPerSubreddit == 0 {
		c.Reddit.PostsPerSubreddit = 10
	}
	if c.Reddit.Timeout == 0 {
		c.Reddit.Timeout = 10 * time.Second
	}
	if c.Gemini.BaseURL == "" {
		c.Gemini.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.Timeout == 0 {
		c.Gemini.Timeout = 60 * time.Second
	}
	if c.Sentiment.PositiveThreshold == 0 {
		c.Sentiment.PositiveThreshold = 15
	}
	if c.Sentiment.NegativeThreshold == 0 {
		c.Sentiment.NegativeThreshold = -15
	}
	w := &c.Sentiment.Weights
	if w.Finnhub == 0 && w.NewsAPI == 0 && w.Reddit == 0 {
		w.Finnhub = 0.40
		w.NewsAPI = 0.35
		w.Reddit = 0.25
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = time.Hour
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	if c.AlphaVantage.APIKey == "" || c.AlphaVantage.APIKey == "demo" {
		return fmt.Errorf("alpha_vantage.api_key is required (the 'demo' key is rejected)")
	}
	if c.Sentiment.PositiveThreshold <= 0 {
		return fmt.Errorf("sentiment.positive_threshold must be > 0")
	}
	if c.Sentiment.NegativeThreshold >= 0 {
		return fmt.Errorf("sentiment.negative_threshold must be < 0")
	}
	w := c.Sentiment.Weights
	for name, v := range map[string]float64{"finnhub": w.Finnhub, "newsapi": w.NewsAPI, "reddit": w.Reddit} {
		if v < 0 || v > 1 {
			return fmt.Errorf("sentiment.weights.%s must be in [0,1], got %v", name, v)
		}
	}
	if sum := w.Finnhub + w.NewsAPI + w.Reddit; sum > 1.0000001 {
		return fmt.Errorf("sentiment.weights must sum to <= 1, got %v", sum)
	}
	return nil
}
