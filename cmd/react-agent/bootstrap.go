package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bububa/react-agents/agents/react"
	"github.com/bububa/react-agents/components"
	"github.com/bububa/react-agents/components/completion"
	"github.com/bububa/react-agents/components/completion/providers"
	"github.com/bububa/react-agents/config"
	"github.com/bububa/react-agents/logging"
	"github.com/bububa/react-agents/tools"
	"github.com/bububa/react-agents/tools/calculator"
	"github.com/bububa/react-agents/tools/duckduckgo"
	"github.com/bububa/react-agents/tools/llmmath"
	"github.com/bububa/react-agents/tools/searxng"
	"github.com/bububa/react-agents/tools/webscraper"
)

// CompleterFactory creates the completion service from provider settings
type CompleterFactory func(ctx context.Context, settings providers.Settings) (completion.Completer, error)

// Bootstrap wires config -> provider -> tools -> agent
func Bootstrap(ctx context.Context, cfg *config.Config, factory CompleterFactory, logger *slog.Logger, opts ...react.Option) (*react.Agent, error) {
	if factory == nil {
		factory = providers.New
	}
	completer, err := factory(ctx, cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("create completer: %w", err)
	}
	set, err := BuildTools(cfg, completer, logger)
	if err != nil {
		return nil, err
	}
	agentOpts := []react.Option{
		react.WithName(cfg.Agent.Name),
		react.WithMaxSteps(cfg.Agent.MaxSteps),
		react.WithObservationLimit(cfg.Agent.ObservationLimit),
		react.WithParams(cfg.Model),
		react.WithLogger(logger),
	}
	if enc := cfg.Agent.TokenEncoding; enc != "" {
		counter, err := components.NewTikTokenCounter(enc)
		if err != nil {
			return nil, fmt.Errorf("token encoding %s: %w", enc, err)
		}
		agentOpts = append(agentOpts, react.WithTokenCounter(counter))
	}
	agentOpts = append(agentOpts, opts...)
	return react.New(completer, react.Config{
		Preamble: cfg.Agent.Preamble,
		Grammar:  cfg.Agent.Grammar,
		Tools:    set,
	}, agentOpts...)
}

// BuildTools creates the configured tools in order
func BuildTools(cfg *config.Config, completer completion.Completer, logger *slog.Logger) (*tools.Set, error) {
	toolLogger := logging.NewComponentLogger(logger, "tools")
	specs := make([]tools.ToolSpec, 0, len(cfg.Tools))
	for _, tc := range cfg.Tools {
		spec, err := buildTool(tc, cfg, completer, toolLogger)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", tc.Kind, err)
		}
		specs = append(specs, spec)
	}
	return tools.NewSet(specs...)
}

func buildTool(tc config.ToolConfig, cfg *config.Config, completer completion.Completer, logger *slog.Logger) (tools.ToolSpec, error) {
	var settings config.ToolSettings
	if err := config.Decode(tc.Settings, &settings); err != nil {
		return tools.ToolSpec{}, err
	}
	toolOpts := []tools.Option{
		tools.WithStartHook(func(ctx context.Context, name string, input string) {
			logger.Debug("tool start", "tool", name, "input", input)
		}),
		tools.WithEndHook(func(ctx context.Context, name string, input string, output string) {
			logger.Debug("tool end", "tool", name, "output_bytes", len(output))
		}),
		tools.WithErrorHook(func(ctx context.Context, name string, input string, err error) {
			logger.Warn("tool failed", "tool", name, "error", err)
		}),
	}
	if tc.Name != "" {
		toolOpts = append(toolOpts, tools.WithTitle(tc.Name))
	}
	if tc.Description != "" {
		toolOpts = append(toolOpts, tools.WithDescription(tc.Description))
	}
	var httpClient *http.Client
	if settings.Timeout > 0 {
		httpClient = &http.Client{Timeout: time.Duration(settings.Timeout) * time.Second}
	}
	switch tc.Kind {
	case config.CalculatorTool:
		return calculator.New(toolOpts...).Spec(), nil
	case config.LLMMathTool:
		return llmmath.New(completer, llmmath.WithParams(cfg.Math), llmmath.WithToolOptions(toolOpts...)).Spec(), nil
	case config.DuckDuckGoTool:
		opts := []duckduckgo.Option{
			duckduckgo.WithToolOptions(toolOpts...),
			duckduckgo.WithBaseURL(settings.BaseURL),
			duckduckgo.WithRegion(settings.Region),
			duckduckgo.WithMaxResults(settings.MaxResults),
		}
		if httpClient != nil {
			opts = append(opts, duckduckgo.WithHttpClient(httpClient))
		}
		return duckduckgo.New(opts...).Spec(), nil
	case config.SearxNGTool:
		if settings.BaseURL == "" {
			return tools.ToolSpec{}, fmt.Errorf("%w: base_url is required", tools.ErrInvalidInput)
		}
		opts := []searxng.Option{
			searxng.WithToolOptions(toolOpts...),
			searxng.WithBaseURL(settings.BaseURL),
			searxng.WithLanguage(settings.Language),
			searxng.WithMaxResults(settings.MaxResults),
		}
		if httpClient != nil {
			opts = append(opts, searxng.WithHttpClient(httpClient))
		}
		return searxng.New(opts...).Spec(), nil
	case config.WebscraperTool:
		opts := []webscraper.Option{
			webscraper.WithToolOptions(toolOpts...),
			webscraper.WithIncludeLinks(settings.IncludeLinks),
			webscraper.WithMaxTokens(settings.MaxTokens),
		}
		if settings.Timeout > 0 {
			opts = append(opts, webscraper.WithTimeout(settings.Timeout))
		}
		return webscraper.New(opts...).Spec(), nil
	}
	return tools.ToolSpec{}, fmt.Errorf("unknown tool kind %q", tc.Kind)
}
