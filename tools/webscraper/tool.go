package webscraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"

	"github.com/bububa/react-agents/components"
	"github.com/bububa/react-agents/tools"
)

const (
	DefaultTitle       = "Webpage Scraper"
	DefaultDescription = "Fetches a webpage and returns its main content as markdown. Input must be a single absolute URL."
)

var (
	validate        = validator.New()
	blankLinesRegex = regexp.MustCompile(`\r?\n{2,}`)
	linkRegex       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
)

// Input for the webpage scraper
type Input struct {
	// URL of the webpage to scrape.
	URL string `json:"url,omitempty" validate:"required,http_url"`
	// IncludeLinks whether to preserve hyperlinks in the markdown output.
	IncludeLinks bool `json:"include_links,omitempty"`
}

func NewInput(link string, includeLinks bool) *Input {
	return &Input{
		URL:          link,
		IncludeLinks: includeLinks,
	}
}

// Metadata of a scraped webpage
type Metadata struct {
	Title       string `json:"title,omitempty"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
	SiteName    string `json:"sitename,omitempty"`
	Domain      string `json:"domain,omitempty"`
}

// Output of the webpage scraper
type Output struct {
	// Content the scraped content in markdown format.
	Content  string    `json:"content,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

func NewOutput(content string, metadata *Metadata) *Output {
	return &Output{
		Content:  content,
		Metadata: metadata,
	}
}

// String renders the page title followed by its markdown content
func (o Output) String() string {
	if o.Metadata == nil || o.Metadata.Title == "" {
		return o.Content
	}
	return "# " + strings.TrimSpace(o.Metadata.Title) + "\n\n" + o.Content
}

type Config struct {
	tools.Config
	userAgent        string
	timeout          int
	maxContentLength int64
	maxTokens        int
	tokenCounter     components.TokenCounter
	includeLinks     bool
	httpClient       *http.Client
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
	if ret.userAgent == "" {
		ret.userAgent = DefaultUserAgent
	}
	if ret.timeout == 0 {
		ret.timeout = 30
	}
	if ret.maxContentLength == 0 {
		ret.maxContentLength = 1_000_000
	}
	if ret.tokenCounter == nil {
		ret.tokenCounter = components.DefaultTokenCounter{}
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: time.Second * time.Duration(ret.timeout)}
	}
	return ret
}

func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", tools.ErrInvalidInput, err)
	}
	parsedURL, err := url.ParseRequestURI(input.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tools.ErrInvalidInput, err)
	}
	doc, err := t.fetch(ctx, input.URL)
	if err != nil {
		return nil, err
	}
	meta := &Metadata{Domain: parsedURL.Host}
	extractMetadata(doc, meta)
	mainContent := extractMainContent(doc)
	markdown, err := htmltomarkdown.ConvertString(
		mainContent,
		converter.WithDomain(fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)),
	)
	if err != nil {
		return nil, err
	}
	if !input.IncludeLinks {
		markdown = linkRegex.ReplaceAllString(markdown, "$1")
	}
	content := cleanMarkdownContent(markdown)
	if cut, ok := components.TruncateSentences(content, t.tokenCounter, t.maxTokens); ok {
		content = strings.TrimSpace(cut) + components.TruncatedSuffix + "\n"
	}
	return NewOutput(content, meta), nil
}

// Spec exposes the scraper to the dispatch loop; the action input is the URL
func (t *Tool) Spec() tools.ToolSpec {
	return t.Config.Spec(func(ctx context.Context, input string) (string, error) {
		link := strings.Trim(strings.TrimSpace(input), `"'`)
		ret, err := t.Run(ctx, NewInput(link, t.includeLinks))
		if err != nil {
			return "", err
		}
		return ret.String(), nil
	})
}

func (t *Tool) fetch(ctx context.Context, link string) (*goquery.Document, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", t.userAgent)
	httpReq.Header.Set("Accept", DefaultAccept)
	httpReq.Header.Set("Connection", "keep-alive")
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", link, httpResp.StatusCode)
	}
	if httpResp.ContentLength > t.maxContentLength {
		return nil, fmt.Errorf("content length exceeds maximum of %d bytes", t.maxContentLength)
	}
	return goquery.NewDocumentFromReader(io.LimitReader(httpResp.Body, t.maxContentLength))
}

func extractMetadata(doc *goquery.Document, meta *Metadata) {
	meta.Title = strings.TrimSpace(doc.Find("head title").First().Text())
	meta.Author, _ = doc.Find("meta[name='author']").Attr("content")
	meta.Description, _ = doc.Find("meta[name='description']").Attr("content")
	meta.Keywords, _ = doc.Find("meta[name='keywords']").Attr("content")
	meta.SiteName, _ = doc.Find("meta[property='og:site_name']").Attr("content")
}

// extractMainContent picks the first matching content container
func extractMainContent(doc *goquery.Document) string {
	doc.Find("script, style, nav, header, footer").Remove()
	for _, selector := range []string{"main", "#content, #main", ".content, .main", "article", "body"} {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if txt, err := sel.Html(); err == nil && strings.TrimSpace(txt) != "" {
			return txt
		}
	}
	txt, _ := doc.Html()
	return txt
}

func cleanMarkdownContent(content string) string {
	content = blankLinesRegex.ReplaceAllString(content, "\n\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}
