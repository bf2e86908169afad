package newsapi

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
		if r.URL.Path != "/everything" {
			t.Errorf("path: %s", r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "na-key" {
			t.Error("missing api key header")
		}
		q := r.URL.Query()
		if q.Get("q") != "TSLA stock" || q.Get("language") != "en" || q.Get("sortBy") != "relevancy" {
			t.Errorf("query: %v", q)
		}
		w.Write([]byte(`{
			"status": "ok",
			"totalResults": 2,
			"articles": [
				{"source": {"name": "CNBC"}, "title": "Tesla rallies", "description": "Shares surge.", "url": "https://example.com/1", "publishedAt": "2025-06-02T12:00:00Z"},
				{"source": {"name": "WSJ"}, "title": "EV market outlook", "description": "", "url": "https://example.com/2", "publishedAt": "2025-06-01T09:00:00Z"}
			]
		}`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "na-key", BaseURL: srv.URL, PageSize: 20, MaxItems: 15}, httpkit.NewClient(), testLogger(t))
	items, err := c.Fetch(context.Background(), "TSLA")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %d", len(items))
	}
	if items[0].Title != "Tesla rallies" || items[0].Origin != "CNBC" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
}

func TestFetchVendorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "message": "apiKeyInvalid"}`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "bad", BaseURL: srv.URL, PageSize: 20, MaxItems: 15}, httpkit.NewClient(), testLogger(t))
	if _, err := c.Fetch(context.Background(), "TSLA"); err == nil {
		t.Fatal("want error on vendor error status")
	}
}

func TestFetchCapsAtMaxItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{"source": {"name": "A"}, "title": "one", "publishedAt": "2025-06-02T12:00:00Z"},
				{"source": {"name": "B"}, "title": "two", "publishedAt": "2025-06-02T12:00:00Z"},
				{"source": {"name": "C"}, "title": "three", "publishedAt": "2025-06-02T12:00:00Z"}
			]
		}`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", BaseURL: srv.URL, PageSize: 20, MaxItems: 2}, httpkit.NewClient(), testLogger(t))
	items, err := c.Fetch(context.Background(), "TSLA")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %d", len(items))
	}
}
