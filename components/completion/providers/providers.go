// Package providers builds a completion.Completer from provider settings.
package providers

import (
	"context"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	cohereClient "github.com/cohere-ai/cohere-go/v2/client"
	cohereOption "github.com/cohere-ai/cohere-go/v2/option"
	"github.com/google/generative-ai-go/genai"
	anthropicSDK "github.com/liushuangls/go-anthropic/v2"
	openaiSDK "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"github.com/bububa/react-agents/components/completion"
	"github.com/bububa/react-agents/components/completion/providers/anthropic"
	"github.com/bububa/react-agents/components/completion/providers/bedrock"
	"github.com/bububa/react-agents/components/completion/providers/cohere"
	"github.com/bububa/react-agents/components/completion/providers/gemini"
	"github.com/bububa/react-agents/components/completion/providers/openai"
)

var (
	FromOpenAI    = openai.New
	FromAnthropic = anthropic.New
	FromBedrock   = bedrock.New
	FromGemini    = gemini.New
	FromCohere    = cohere.New
)

// Settings selects and configures a completion provider
type Settings struct {
	// Name one of openai, anthropic, bedrock, gemini, cohere
	Name completion.Provider `mapstructure:"name" validate:"required,oneof=openai anthropic bedrock gemini cohere"`
	// Model provider model identifier
	Model string `mapstructure:"model"`
	// APIKey falls back to the provider's usual environment variable
	APIKey string `mapstructure:"api_key"`
	// BaseURL optional endpoint override
	BaseURL string `mapstructure:"base_url"`
	// Region AWS region for bedrock
	Region string `mapstructure:"region"`
}

var apiKeyEnv = map[completion.Provider]string{
	completion.ProviderOpenAI:    "OPENAI_API_KEY",
	completion.ProviderAnthropic: "ANTHROPIC_API_KEY",
	completion.ProviderGemini:    "GEMINI_API_KEY",
	completion.ProviderCohere:    "COHERE_API_KEY",
}

// ResolveAPIKey returns the configured key or the provider's environment variable
func (s Settings) ResolveAPIKey() string {
	if s.APIKey != "" {
		return s.APIKey
	}
	if env, ok := apiKeyEnv[s.Name]; ok {
		return os.Getenv(env)
	}
	return ""
}

// New creates the Completer named by settings
func New(ctx context.Context, s Settings) (completion.Completer, error) {
	modelOpt := completion.WithModel(s.Model)
	switch s.Name {
	case completion.ProviderOpenAI:
		cfg := openaiSDK.DefaultConfig(s.ResolveAPIKey())
		if s.BaseURL != "" {
			cfg.BaseURL = s.BaseURL
		}
		return FromOpenAI(openaiSDK.NewClientWithConfig(cfg), modelOpt), nil
	case completion.ProviderAnthropic:
		opts := make([]anthropicSDK.ClientOption, 0, 1)
		if s.BaseURL != "" {
			opts = append(opts, anthropicSDK.WithBaseURL(s.BaseURL))
		}
		return FromAnthropic(anthropicSDK.NewClient(s.ResolveAPIKey(), opts...), modelOpt), nil
	case completion.ProviderBedrock:
		loadOpts := make([]func(*awsconfig.LoadOptions) error, 0, 1)
		if s.Region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(s.Region))
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		opts := []completion.Option{}
		if s.Model != "" {
			opts = append(opts, modelOpt)
		}
		return FromBedrock(bedrockruntime.NewFromConfig(cfg), opts...), nil
	case completion.ProviderGemini:
		clt, err := genai.NewClient(ctx, option.WithAPIKey(s.ResolveAPIKey()))
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		return FromGemini(clt, modelOpt), nil
	case completion.ProviderCohere:
		opts := make([]cohereOption.RequestOption, 0, 2)
		opts = append(opts, cohereOption.WithToken(s.ResolveAPIKey()))
		if s.BaseURL != "" {
			opts = append(opts, cohereOption.WithBaseURL(s.BaseURL))
		}
		return FromCohere(cohereClient.NewClient(opts...), modelOpt), nil
	}
	return nil, fmt.Errorf("unknown completion provider %q", s.Name)
}
