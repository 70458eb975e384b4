package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateReturnsFirstCandidateText(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  {\"report\":\"ok\"}  "}]}}]}`))
	}))
	defer srv.Close()

	c := New("test-key")
	c.BaseURL = srv.URL

	out, err := c.Generate(context.Background(), "analyze this")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != `{"report":"ok"}` {
		t.Fatalf("expected trimmed candidate text, got %q", out)
	}
	if !strings.HasSuffix(gotPath, "/gemini-2.0-flash:generateContent") {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key not sent, got %q", gotKey)
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New("test-key")
	c.BaseURL = srv.URL

	if _, err := c.Generate(context.Background(), "p"); err == nil {
		t.Fatalf("expected error on non-200 status")
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := New("test-key")
	c.BaseURL = srv.URL

	if _, err := c.Generate(context.Background(), "p"); err == nil {
		t.Fatalf("expected error for empty candidates")
	}
}

func TestGenerateRequiresAPIKey(t *testing.T) {
	c := New("")
	if _, err := c.Generate(context.Background(), "p"); err == nil {
		t.Fatalf("expected error without api key")
	}
}
