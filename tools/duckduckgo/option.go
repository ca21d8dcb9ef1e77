package duckduckgo

import (
	"net/http"

	"github.com/bububa/react-agents/tools"
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

func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.baseURL = baseURL
	}
}

// WithRegion sets the kl parameter, eg. us-en
func WithRegion(region string) Option {
	return func(c *Config) {
		c.region = region
	}
}

func WithMaxResults(n int) Option {
	return func(c *Config) {
		c.maxResults = n
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.userAgent = ua
	}
}

func WithHttpClient(clt *http.Client) Option {
	return func(c *Config) {
		c.httpClient = clt
	}
}
