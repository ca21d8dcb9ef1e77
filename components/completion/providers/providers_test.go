package providers

import (
	"context"
	"testing"

	"github.com/bububa/react-agents/components/completion"
	"github.com/bububa/react-agents/components/completion/providers/anthropic"
	"github.com/bububa/react-agents/components/completion/providers/bedrock"
	"github.com/bububa/react-agents/components/completion/providers/openai"
)

func TestNew(t *testing.T) {
	ctx := context.Background()
	t.Setenv("AWS_REGION", "us-east-1")
	tests := []struct {
		settings Settings
		check    func(completion.Completer) bool
	}{
		{
			settings: Settings{Name: completion.ProviderOpenAI, Model: "gpt-4o-mini", APIKey: "k"},
			check: func(c completion.Completer) bool {
				v, ok := c.(*openai.Completer)
				return ok && v.Model() == "gpt-4o-mini"
			},
		},
		{
			settings: Settings{Name: completion.ProviderAnthropic, Model: "claude-3-5-haiku-20241022", APIKey: "k"},
			check: func(c completion.Completer) bool {
				v, ok := c.(*anthropic.Completer)
				return ok && v.Provider() == completion.ProviderAnthropic
			},
		},
		{
			settings: Settings{Name: completion.ProviderBedrock, Region: "us-east-1"},
			check: func(c completion.Completer) bool {
				v, ok := c.(*bedrock.Completer)
				return ok && v.Model() == bedrock.DefaultModel
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.settings.Name, func(t *testing.T) {
			c, err := New(ctx, tt.settings)
			if err != nil {
				t.Fatal(err)
			}
			if !tt.check(c) {
				t.Errorf("unexpected completer %T", c)
			}
		})
	}
	if _, err := New(ctx, Settings{Name: "nope"}); err == nil {
		t.Error("expect error for unknown provider")
	}
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "from-env")
	if got := (Settings{Name: completion.ProviderOpenAI}).ResolveAPIKey(); got != "from-env" {
		t.Errorf("expect from-env, but got %s", got)
	}
	if got := (Settings{Name: completion.ProviderOpenAI, APIKey: "explicit"}).ResolveAPIKey(); got != "explicit" {
		t.Errorf("expect explicit, but got %s", got)
	}
	if got := (Settings{Name: completion.ProviderBedrock}).ResolveAPIKey(); got != "" {
		t.Errorf("expect empty key for bedrock, but got %s", got)
	}
}
