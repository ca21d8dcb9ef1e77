// Package config loads the agent configuration from YAML and REACT_ environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/bububa/react-agents/components/completion"
	"github.com/bububa/react-agents/components/completion/providers"
	"github.com/bububa/react-agents/logging"
)

// EnvPrefix prefixes environment overrides, eg. REACT_AGENT_MAX_STEPS
const EnvPrefix = "REACT"

// Tool kinds that can be configured
const (
	CalculatorTool = "calculator"
	LLMMathTool    = "llmmath"
	DuckDuckGoTool = "duckduckgo"
	SearxNGTool    = "searxng"
	WebscraperTool = "webscraper"
)

type Config struct {
	Provider providers.Settings `mapstructure:"provider" yaml:"provider"`
	// Model params of the reasoning model
	Model completion.Params `mapstructure:"model" yaml:"model"`
	// Math params of the model behind the llmmath tool
	Math  completion.Params `mapstructure:"math" yaml:"math"`
	Agent AgentConfig       `mapstructure:"agent" yaml:"agent"`
	Tools []ToolConfig      `mapstructure:"tools" yaml:"tools" validate:"dive"`
	Log   logging.Config    `mapstructure:"log" yaml:"log"`
}

type AgentConfig struct {
	Name             string   `mapstructure:"name" yaml:"name"`
	MaxSteps         int      `mapstructure:"max_steps" yaml:"max_steps" validate:"gte=1"`
	ObservationLimit int      `mapstructure:"observation_limit" yaml:"observation_limit" validate:"gte=0"`
	Preamble         []string `mapstructure:"preamble" yaml:"preamble,omitempty"`
	Grammar          string   `mapstructure:"grammar" yaml:"grammar,omitempty"`
	// TokenEncoding tiktoken encoding used to estimate usage, eg. cl100k_base.
	// Empty counts whitespace separated words.
	TokenEncoding string `mapstructure:"token_encoding" yaml:"token_encoding,omitempty"`
}

// ToolConfig registers one tool. Kind specific keys are kept in Settings
// and decoded with Decode.
type ToolConfig struct {
	Kind        string         `mapstructure:"kind" yaml:"kind" validate:"required,oneof=calculator llmmath duckduckgo searxng webscraper"`
	Name        string         `mapstructure:"name" yaml:"name,omitempty"`
	Description string         `mapstructure:"description" yaml:"description,omitempty"`
	Settings    map[string]any `mapstructure:",remain" yaml:",inline"`
}

// ToolSettings are the kind specific keys understood by the HTTP tools
type ToolSettings struct {
	BaseURL      string `mapstructure:"base_url"`
	MaxResults   int    `mapstructure:"max_results"`
	Language     string `mapstructure:"language"`
	Region       string `mapstructure:"region"`
	Timeout      int    `mapstructure:"timeout"`
	MaxTokens    int    `mapstructure:"max_tokens"`
	IncludeLinks bool   `mapstructure:"include_links"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider.name", completion.ProviderBedrock)
	v.SetDefault("provider.model", "anthropic.claude-instant-v1")
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.base_url", "")
	v.SetDefault("provider.region", "")
	v.SetDefault("model.temperature", 0.0)
	v.SetDefault("model.top_p", 0.5)
	v.SetDefault("model.max_tokens", 2000)
	v.SetDefault("model.stop", completion.DefaultStop)
	v.SetDefault("math.temperature", 0.0)
	v.SetDefault("math.top_p", 1.0)
	v.SetDefault("math.max_tokens", 256)
	v.SetDefault("math.stop", []string{"```output"})
	v.SetDefault("agent.name", "react")
	v.SetDefault("agent.max_steps", 10)
	v.SetDefault("agent.observation_limit", 4000)
	v.SetDefault("agent.token_encoding", "")
	v.SetDefault("tools", []map[string]any{
		{"kind": DuckDuckGoTool},
		{"kind": LLMMathTool},
	})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads the YAML file at path, applies defaults and REACT_ environment
// overrides and validates the result. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(c.Tools))
	for _, t := range c.Tools {
		if t.Name == "" {
			continue
		}
		if _, ok := seen[t.Name]; ok {
			return fmt.Errorf("tools: duplicate name %q", t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	return nil
}

// Decode decodes free-form settings into out, accepting weakly typed values
func Decode(settings map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(settings)
}
