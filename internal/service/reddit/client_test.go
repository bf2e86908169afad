package reddit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	httpkit "StockSense/pkg/http"
	"StockSense/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatal(err)
	}
	return log
}

func TestFetchAggregatesSubreddits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "test-agent/1.0" {
			t.Errorf("user agent: %s", ua)
		}
		if q := r.URL.Query(); q.Get("restrict_sr") != "on" || q.Get("t") != "week" {
			t.Errorf("query: %v", q)
		}
		sub := strings.Split(r.URL.Path, "/")[2]
		w.Write([]byte(`{"data": {"children": [
			{"data": {"title": "GME to the moon", "selftext": "body", "permalink": "/r/` + sub + `/comments/1", "score": 420, "created_utc": 1748856600, "subreddit": "` + sub + `"}}
		]}}`))
	}))
	defer srv.Close()

	c := New(Config{
		ClientID:          "id",
		ClientSecret:      "secret",
		BaseURL:           srv.URL,
		UserAgent:         "test-agent/1.0",
		Subreddits:        []string{"wallstreetbets", "stocks"},
		PostsPerSubreddit: 10,
	}, httpkit.NewClient(), testLogger(t))

	items, err := c.Fetch(context.Background(), "GME")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("want 1 post per subreddit, got %d", len(items))
	}
	if items[0].Origin != "wallstreetbets" || items[1].Origin != "stocks" {
		t.Fatalf("origins: %s, %s", items[0].Origin, items[1].Origin)
	}
	if items[0].Engagement != 420 {
		t.Fatalf("engagement: %d", items[0].Engagement)
	}
}

func TestFetchSkipsFailingSubreddit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "broken") {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"data": {"children": [
			{"data": {"title": "still here", "permalink": "/r/stocks/comments/2", "score": 5, "created_utc": 1748856600, "subreddit": "stocks"}}
		]}}`))
	}))
	defer srv.Close()

	c := New(Config{
		ClientID:          "id",
		ClientSecret:      "secret",
		BaseURL:           srv.URL,
		UserAgent:         "test-agent/1.0",
		Subreddits:        []string{"broken", "stocks"},
		PostsPerSubreddit: 10,
	}, httpkit.NewClient(), testLogger(t))

	items, err := c.Fetch(context.Background(), "GME")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Title != "still here" {
		t.Fatalf("want the healthy subreddit's post, got %+v", items)
	}
}

func TestFetchSortsByScoreAndTruncatesBody(t *testing.T) {
	long := strings.Repeat("x", 500)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"children": [
			{"data": {"title": "quiet post", "selftext": "` + long + `", "permalink": "/r/stocks/comments/1", "score": 3, "created_utc": 1748856600, "subreddit": "stocks"}},
			{"data": {"title": "hot post", "permalink": "/r/stocks/comments/2", "score": 900, "created_utc": 1748856600, "subreddit": "stocks"}}
		]}}`))
	}))
	defer srv.Close()

	c := New(Config{
		ClientID:          "id",
		ClientSecret:      "secret",
		BaseURL:           srv.URL,
		UserAgent:         "test-agent/1.0",
		Subreddits:        []string{"stocks"},
		PostsPerSubreddit: 10,
	}, httpkit.NewClient(), testLogger(t))

	items, err := c.Fetch(context.Background(), "GME")
	if err != nil {
		t.Fatal(err)
	}
	if items[0].Title != "hot post" {
		t.Fatalf("want highest-score post first, got %q", items[0].Title)
	}
	if len(items[1].Body) != 200 {
		t.Fatalf("selftext should be truncated to 200 chars, got %d", len(items[1].Body))
	}
}

func TestTruncateBodyKeepsRunesWhole(t *testing.T) {
	short := "短い本文"
	if got := truncateBody(short); got != short {
		t.Fatalf("short body must pass through, got %q", got)
	}

	// 3-byte runes, so the byte limit lands mid-rune.
	long := strings.Repeat("股", 100)
	got := truncateBody(long)
	if len(got) > 200 {
		t.Fatalf("body too long after truncation: %d bytes", len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got[len(got)-3:])
	}
	if len(got) != 198 {
		t.Fatalf("want cut at the last rune boundary, got %d bytes", len(got))
	}
}

func TestEnabledRequiresBothCredentials(t *testing.T) {
	log := testLogger(t)
	hc := httpkit.NewClient()
	if New(Config{ClientID: "id"}, hc, log).Enabled() {
		t.Fatal("missing secret: want disabled")
	}
	if New(Config{ClientSecret: "s"}, hc, log).Enabled() {
		t.Fatal("missing id: want disabled")
	}
	if !New(Config{ClientID: "id", ClientSecret: "s"}, hc, log).Enabled() {
		t.Fatal("both set: want enabled")
	}
}
