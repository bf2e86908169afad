package finnhub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

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

func TestFetchMapsArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/company-news" {
			t.Errorf("path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("symbol") != "AAPL" || q.Get("token") != "fh-key" {
			t.Errorf("query: %v", q)
		}
		if q.Get("from") == "" || q.Get("to") == "" {
			t.Error("missing date window")
		}
		w.Write([]byte(`[
			{"datetime": 1748856600, "headline": "Apple beats estimates", "source": "Reuters", "summary": "Strong quarter.", "url": "https://example.com/1"},
			{"datetime": 1748856000, "headline": "", "source": "PR", "summary": "ignored", "url": "https://example.com/2"},
			{"datetime": 1748855400, "headline": "Supply chain update", "source": "Bloomberg", "summary": "", "url": "https://example.com/3"}
		]`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "fh-key", BaseURL: srv.URL, LookbackDays: 7, MaxItems: 15}, httpkit.NewClient(), testLogger(t))
	items, err := c.Fetch(context.Background(), "AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 items (empty headline skipped), got %d", len(items))
	}
	if items[0].Title != "Apple beats estimates" || items[0].Origin != "Reuters" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[0].Body != "Strong quarter." {
		t.Fatalf("body: %q", items[0].Body)
	}
}

func TestFetchCapsAtMaxItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"datetime": 1, "headline": "a"}, {"datetime": 2, "headline": "b"},
			{"datetime": 3, "headline": "c"}, {"datetime": 4, "headline": "d"}
		]`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", BaseURL: srv.URL, LookbackDays: 7, MaxItems: 2}, httpkit.NewClient(), testLogger(t))
	items, err := c.Fetch(context.Background(), "AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %d", len(items))
	}
}

func TestFetchUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", BaseURL: srv.URL, LookbackDays: 7, MaxItems: 15}, httpkit.NewClient(), testLogger(t))
	if _, err := c.Fetch(context.Background(), "AAPL"); err == nil {
		t.Fatal("want error on upstream failure")
	}
}

func TestEnabled(t *testing.T) {
	log := testLogger(t)
	if New(Config{}, httpkit.NewClient(), log).Enabled() {
		t.Fatal("no key: want disabled")
	}
	if !New(Config{APIKey: "k"}, httpkit.NewClient(), log).Enabled() {
		t.Fatal("with key: want enabled")
	}
}
