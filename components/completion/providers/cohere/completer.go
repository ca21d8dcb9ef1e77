package cohere

import (
	"context"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereClient "github.com/cohere-ai/cohere-go/v2/client"

	"github.com/bububa/react-agents/components"
	"github.com/bububa/react-agents/components/completion"
)

// Completer sends prompts to the Cohere chat API
type Completer struct {
	*cohereClient.Client

	completion.Options
}

var _ completion.Completer = (*Completer)(nil)

func (c *Completer) SetClient(clt *cohereClient.Client) {
	c.Client = clt
}

func New(client *cohereClient.Client, opts ...completion.Option) *Completer {
	ret := &Completer{
		Client: client,
	}
	completion.WithProvider(completion.ProviderCohere)(&ret.Options)
	for _, opt := range opts {
		opt(&ret.Options)
	}
	return ret
}

func (c *Completer) Complete(ctx context.Context, prompt string, params completion.Params) (*completion.Completion, error) {
	model := c.Model()
	temperature := params.Temperature
	topP := params.TopPOrDefault()
	maxTokens := params.MaxTokens
	req := cohere.ChatRequest{
		Message:       prompt,
		Model:         &model,
		Temperature:   &temperature,
		P:             &topP,
		MaxTokens:     &maxTokens,
		StopSequences: params.Stop,
	}
	resp, err := c.Chat(ctx, &req)
	if err != nil {
		return nil, err
	}
	ret := &completion.Completion{
		Text:  resp.Text,
		Model: model,
	}
	if meta := resp.Meta; meta != nil {
		if usage := meta.Tokens; usage != nil {
			ret.Usage = new(components.LLMUsage)
			if usage.InputTokens != nil {
				ret.Usage.InputTokens = int64(*usage.InputTokens)
			}
			if usage.OutputTokens != nil {
				ret.Usage.OutputTokens = int64(*usage.OutputTokens)
			}
		}
	}
	return ret, nil
}
