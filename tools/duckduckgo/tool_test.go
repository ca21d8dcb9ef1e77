package duckduckgo

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bububa/react-agents/tools"
)

const resultsPage = `<html><body>
<div class="result results_links result--ad">
  <a class="result__a" href="https://ads.example.com">Sponsored</a>
  <a class="result__snippet">Buy now</a>
</div>
<div class="result results_links">
  <h2><a class="result__a" href="https://aws.amazon.com/bedrock/knowledge-bases/">Knowledge Bases for Amazon Bedrock</a></h2>
  <a class="result__snippet">Knowledge Bases for Amazon Bedrock was
     announced in <b>November</b> 2023.</a>
</div>
<div class="result results_links">
  <h2><a class="result__a" href="https://example.com/2">Second</a></h2>
  <a class="result__snippet">Fully managed RAG.</a>
</div>
</body></html>`

func newSearchServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/html/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("q") == "" {
			t.Error("expect query parameter")
		}
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun(t *testing.T) {
	srv := newSearchServer(t, resultsPage)
	ret, err := New(WithBaseURL(srv.URL)).Run(context.Background(), &Input{Query: "knowledge bases bedrock"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ret.Results) != 2 {
		t.Fatalf("expect 2 organic results, but got %d", len(ret.Results))
	}
	if ret.Results[0].URL != "https://aws.amazon.com/bedrock/knowledge-bases/" {
		t.Errorf("unexpected url %s", ret.Results[0].URL)
	}
	expect := "Knowledge Bases for Amazon Bedrock was announced in November 2023. Fully managed RAG."
	if got := ret.String(); got != expect {
		t.Errorf("expect %q, but got %q", expect, got)
	}
}

func TestRunMaxResults(t *testing.T) {
	srv := newSearchServer(t, resultsPage)
	ret, err := New(WithBaseURL(srv.URL), WithMaxResults(1)).Run(context.Background(), &Input{Query: "q"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ret.Results) != 1 {
		t.Errorf("expect 1 result, but got %d", len(ret.Results))
	}
}

func TestSpecNoResults(t *testing.T) {
	srv := newSearchServer(t, `<html><body><div class="no-results">nothing</div></body></html>`)
	spec := New(WithBaseURL(srv.URL)).Spec()
	if spec.Name != DefaultTitle {
		t.Errorf("expect name %s, but got %s", DefaultTitle, spec.Name)
	}
	out, err := spec.Invoke(context.Background(), `"obscure query"`)
	if err != nil {
		t.Fatal(err)
	}
	if out != NoResults {
		t.Errorf("expect %q, but got %q", NoResults, out)
	}
	if _, err := spec.Invoke(context.Background(), " "); !errors.Is(err, tools.ErrInvalidInput) {
		t.Errorf("expect ErrInvalidInput, but got %v", err)
	}
}
