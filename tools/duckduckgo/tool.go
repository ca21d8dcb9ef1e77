// Package duckduckgo searches the web through the DuckDuckGo HTML endpoint,
// which needs no API key.
package duckduckgo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/bububa/react-agents/tools"
)

const (
	DefaultTitle       = "Web Search"
	DefaultDescription = "A useful tool for searching the Internet to find information on world events, years, dates, issues, etc. Worth using for general topics. Use precise questions."
	DefaultBaseURL     = "https://html.duckduckgo.com"
	DefaultMaxResults  = 5
	DefaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	NoResults          = "No good DuckDuckGo Search Result was found"
)

type Input struct {
	Query string `json:"query"`
}

// Result is a single organic search result
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

type Output struct {
	Results []Result `json:"results,omitempty"`
}

// String joins the snippets the way the observation is fed back to the model
func (o Output) String() string {
	snippets := make([]string, 0, len(o.Results))
	for _, r := range o.Results {
		if r.Snippet != "" {
			snippets = append(snippets, r.Snippet)
		}
	}
	if len(snippets) == 0 {
		return NoResults
	}
	return strings.Join(snippets, " ")
}

type Config struct {
	tools.Config
	baseURL    string
	region     string
	userAgent  string
	maxResults int
	httpClient *http.Client
}

type Tool struct {
	Config
}

var _ tools.Tool[Input, Output] = (*Tool)(nil)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle(DefaultTitle)
	}
	if ret.Description() == "" {
		ret.SetDescription(DefaultDescription)
	}
	if ret.baseURL == "" {
		ret.baseURL = DefaultBaseURL
	}
	ret.baseURL = strings.TrimRight(ret.baseURL, "/")
	if ret.userAgent == "" {
		ret.userAgent = DefaultUserAgent
	}
	if ret.maxResults <= 0 {
		ret.maxResults = DefaultMaxResults
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return ret
}

func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", tools.ErrInvalidInput)
	}
	doc, err := t.fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	ret := new(Output)
	doc.Find(".result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.HasClass("result--ad") {
			return true
		}
		link := sel.Find(".result__a").First()
		item := Result{
			Title:   strings.TrimSpace(link.Text()),
			Snippet: strings.Join(strings.Fields(sel.Find(".result__snippet").First().Text()), " "),
		}
		item.URL, _ = link.Attr("href")
		if item.Title == "" && item.Snippet == "" {
			return true
		}
		ret.Results = append(ret.Results, item)
		return len(ret.Results) < t.maxResults
	})
	return ret, nil
}

// Spec exposes the search to the dispatch loop; the action input is the query
func (t *Tool) Spec() tools.ToolSpec {
	return t.Config.Spec(func(ctx context.Context, input string) (string, error) {
		ret, err := t.Run(ctx, &Input{Query: strings.Trim(strings.TrimSpace(input), `"`)})
		if err != nil {
			return "", err
		}
		return ret.String(), nil
	})
}

func (t *Tool) fetch(ctx context.Context, query string) (*goquery.Document, error) {
	values := url.Values{}
	values.Set("q", query)
	if t.region != "" {
		values.Set("kl", t.region)
	}
	searchURL := fmt.Sprintf("%s/html/?%s", t.baseURL, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", t.userAgent)
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error querying duckduckgo: %w", err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response from duckduckgo: %d", httpResp.StatusCode)
	}
	return goquery.NewDocumentFromReader(httpResp.Body)
}
