package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bububa/react-agents/tools"
)

type Category = string

const (
	EmptyCategory       Category = ""
	GeneralCategory     Category = "general"
	NewsCategory        Category = "news"
	SocialMediaCategory Category = "social_media"
)

const (
	DefaultTitle       = "SearxNG Search"
	DefaultDescription = "A useful tool for searching the Internet to find information on world events, years, dates, issues, etc. Worth using for general topics. Use precise questions."
	DefaultMaxResults  = 10
	NoResults          = "No search results found."
)

var validate = validator.New()

// Input for searching information, news, references and other content using SearxNG.
type Input struct {
	// Queries list of search queries.
	Queries []string `json:"queries" validate:"required,min=1,dive,required"`
	// Category of the search queries.
	Category Category `json:"category,omitempty" validate:"omitempty,oneof=general news social_media"`
}

func NewInput(category Category, queries []string) *Input {
	return &Input{
		Queries:  queries,
		Category: category,
	}
}

// SearchResultItem represents a single search result item
type SearchResultItem struct {
	// URL of the search result
	URL string `json:"url"`
	// Title of the search result
	Title string `json:"title"`
	// Content snippet of the search result
	Content string `json:"content,omitempty"`
	// Query used to obtain this search result
	Query         string   `json:"query,omitempty"`
	Category      Category `json:"category,omitempty"`
	Metadata      string   `json:"metadata,omitempty"`
	PublishedDate string   `json:"publishedDate,omitempty"`
}

// SearchResponse is the JSON body returned by SearxNG
type SearchResponse struct {
	Query           string             `json:"query"`
	NumberOfResults int                `json:"number_of_results"`
	Results         []SearchResultItem `json:"results"`
}

// Output of the SearxNG search tool
type Output struct {
	Results  []SearchResultItem `json:"results,omitempty"`
	Category Category           `json:"category,omitempty"`
}

// String renders the results as observation text, one block per result
func (o Output) String() string {
	if len(o.Results) == 0 {
		return NoResults
	}
	var sb strings.Builder
	for idx, item := range o.Results {
		if idx > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(item.Title)
		sb.WriteString("\n")
		sb.WriteString(item.URL)
		if item.Content != "" {
			sb.WriteString("\n")
			sb.WriteString(item.Content)
		}
	}
	return sb.String()
}

type Config struct {
	tools.Config
	language   string
	baseURL    string
	category   Category
	maxResults int
	httpClient *http.Client
}

// Tool searches a SearxNG instance
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
	if ret.maxResults <= 0 {
		ret.maxResults = DefaultMaxResults
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	ret.baseURL = strings.TrimRight(ret.baseURL, "/")
	return ret
}

// Run queries SearxNG for every query and merges the results.
// Results missing a url, title or content are dropped and urls are deduplicated.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", tools.ErrInvalidInput, err)
	}
	category := input.Category
	if category == EmptyCategory {
		category = t.category
	}
	seen := make(map[string]struct{})
	ret := &Output{Category: category}
	for _, query := range input.Queries {
		items, err := t.fetchSearchResults(ctx, query, category)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if item.URL == "" || item.Title == "" || item.Content == "" {
				continue
			}
			if _, ok := seen[item.URL]; ok {
				continue
			}
			seen[item.URL] = struct{}{}
			ret.Results = append(ret.Results, item)
			if len(ret.Results) >= t.maxResults {
				return ret, nil
			}
		}
	}
	return ret, nil
}

// Spec exposes the search to the dispatch loop; the action input is the query
func (t *Tool) Spec() tools.ToolSpec {
	return t.Config.Spec(func(ctx context.Context, input string) (string, error) {
		query := strings.TrimSpace(input)
		if query == "" {
			return "", fmt.Errorf("%w: empty query", tools.ErrInvalidInput)
		}
		ret, err := t.Run(ctx, NewInput(EmptyCategory, []string{query}))
		if err != nil {
			return "", err
		}
		return ret.String(), nil
	})
}

// fetchSearchResults queries the search engine and returns the parsed results
func (t *Tool) fetchSearchResults(ctx context.Context, query string, category Category) ([]SearchResultItem, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("safesearch", "0")
	values.Set("format", "json")
	values.Set("engines", "bing,duckduckgo,google,startpage,yandex")
	if t.language != "" {
		values.Set("language", t.language)
	}
	if category != "" {
		values.Set("categories", category)
	}
	searchURL := fmt.Sprintf("%s/search?%s", t.baseURL, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}

	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error querying search engine: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response from search engine: %d", httpResp.StatusCode)
	}

	var searchResponse SearchResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&searchResponse); err != nil {
		return nil, err
	}
	for idx := range searchResponse.Results {
		searchResponse.Results[idx].Query = query
	}
	return searchResponse.Results, nil
}
