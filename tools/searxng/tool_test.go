package searxng

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bububa/react-agents/tools"
)

func startSearxngServer(t *testing.T, results []SearchResultItem) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "json" {
			t.Errorf("expect json format, but got %s", r.URL.Query().Get("format"))
		}
		json.NewEncoder(w).Encode(SearchResponse{
			Query:           r.URL.Query().Get("q"),
			NumberOfResults: len(results),
			Results:         results,
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSearxngSearchWithCategory(t *testing.T) {
	mockItem := SearchResultItem{
		URL:      "https://example.com/test-category",
		Title:    "Test Result with Category",
		Content:  "This is a test result content with category.",
		Category: NewsCategory,
	}
	srv := startSearxngServer(t, []SearchResultItem{mockItem})
	tool := New(WithBaseURL(srv.URL))
	result, err := tool.Run(context.Background(), NewInput(NewsCategory, []string{"test query with category"}))
	if err != nil {
		t.Fatalf("Error running SearxngSearch: %v", err)
	}
	if len(result.Results) != 1 {
		t.Fatalf("Error number of results, expect 1, but got %d", len(result.Results))
	}
	item := result.Results[0]
	if item.Title != mockItem.Title || item.URL != mockItem.URL || item.Content != mockItem.Content {
		t.Errorf("Expect %+v, but got %+v", mockItem, item)
	}
	if item.Query != "test query with category" {
		t.Errorf("Expect query to be recorded, but got %s", item.Query)
	}
	if result.Category != NewsCategory {
		t.Errorf("Expect category %s, but got %s", NewsCategory, result.Category)
	}
}

func TestSearxngSearchMissingFields(t *testing.T) {
	srv := startSearxngServer(t, []SearchResultItem{
		{Title: "Result Missing Content", URL: "https://example.com/1"},
		{Content: "Result Missing Title", URL: "https://example.com/2"},
		{Title: "Result Missing URL", Content: "Some content"},
		{Title: "Valid Result", Content: "Some content", URL: "https://example.com/5"},
		{Title: "Duplicate Result", Content: "Some content", URL: "https://example.com/5"},
	})
	tool := New(WithBaseURL(srv.URL))
	result, err := tool.Run(context.Background(), NewInput(EmptyCategory, []string{"query with missing fields"}))
	if err != nil {
		t.Fatalf("Error running SearxngSearch: %v", err)
	}
	if len(result.Results) != 1 {
		t.Fatalf("Error number of results, expect 1, but got %d", len(result.Results))
	}
	if title := result.Results[0].Title; title != "Valid Result" {
		t.Errorf("Expect title Valid Result, but got %s", title)
	}
}

func TestSearxngSearchWithMaxResults(t *testing.T) {
	srv := startSearxngServer(t, []SearchResultItem{
		{Title: "First", URL: "https://example.com/1", Content: "one"},
		{Title: "Second", URL: "https://example.com/2", Content: "two"},
		{Title: "Third", URL: "https://example.com/3", Content: "three"},
	})
	tool := New(WithBaseURL(srv.URL), WithMaxResults(2))
	result, err := tool.Run(context.Background(), NewInput(EmptyCategory, []string{"a", "b"}))
	if err != nil {
		t.Fatalf("Error running SearxngSearch: %v", err)
	}
	if len(result.Results) != 2 {
		t.Errorf("Error number of results, expect 2, but got %d", len(result.Results))
	}
}

func TestSearxngSearchInvalidInput(t *testing.T) {
	tool := New(WithBaseURL("http://127.0.0.1:0"))
	tests := []*Input{
		NewInput(EmptyCategory, nil),
		NewInput(EmptyCategory, []string{""}),
		NewInput("sports", []string{"query"}),
	}
	for _, input := range tests {
		if _, err := tool.Run(context.Background(), input); !errors.Is(err, tools.ErrInvalidInput) {
			t.Errorf("expect ErrInvalidInput for %+v, but got %v", input, err)
		}
	}
}

func TestSpec(t *testing.T) {
	srv := startSearxngServer(t, []SearchResultItem{
		{Title: "Knowledge Bases for Amazon Bedrock", URL: "https://aws.amazon.com/kb", Content: "Announced in November 2023."},
	})
	spec := New(WithBaseURL(srv.URL)).Spec()
	if spec.Name != DefaultTitle {
		t.Errorf("expect name %s, but got %s", DefaultTitle, spec.Name)
	}
	out, err := spec.Invoke(context.Background(), "  Knowledge Bases announcement date ")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Announced in November 2023.") {
		t.Errorf("unexpected observation %q", out)
	}
	if _, err := spec.Invoke(context.Background(), "   "); !errors.Is(err, tools.ErrInvalidInput) {
		t.Errorf("expect ErrInvalidInput, but got %v", err)
	}
}

func TestOutputStringEmpty(t *testing.T) {
	if got := (Output{}).String(); got != NoResults {
		t.Errorf("expect %q, but got %q", NoResults, got)
	}
}

func TestNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()
	if _, err := New(WithBaseURL(srv.URL)).Run(context.Background(), NewInput(EmptyCategory, []string{"q"})); err == nil {
		t.Error("expect error on non-200 status")
	}
}
