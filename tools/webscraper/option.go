package webscraper

import (
	"net/http"

	"github.com/bububa/react-agents/components"
	"github.com/bububa/react-agents/tools"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultAccept    = "text/html,application/xhtml+xml,application/xml;"
)

type Option func(*Config)

// WithToolOptions applies the shared tool options (title, description, hooks)
func WithToolOptions(opts ...tools.Option) Option {
	return func(c *Config) {
		for _, opt := range opts {
			opt(&c.Config)
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.userAgent = ua
	}
}

// WithTimeout sets the request timeout in seconds
func WithTimeout(timeout int) Option {
	return func(c *Config) {
		c.timeout = timeout
	}
}

func WithMaxContentLength(l int64) Option {
	return func(c *Config) {
		c.maxContentLength = l
	}
}

// WithMaxTokens keeps whole sentences of the content up to n tokens; n <= 0 disables the budget
func WithMaxTokens(n int) Option {
	return func(c *Config) {
		c.maxTokens = n
	}
}

func WithTokenCounter(counter components.TokenCounter) Option {
	return func(c *Config) {
		c.tokenCounter = counter
	}
}

func WithIncludeLinks(v bool) Option {
	return func(c *Config) {
		c.includeLinks = v
	}
}

func WithHttpClient(clt *http.Client) Option {
	return func(c *Config) {
		c.httpClient = clt
	}
}
