package openai

import (
	"context"
	"math"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bububa/react-agents/components"
	"github.com/bububa/react-agents/components/completion"
)

// Completer sends prompts as a single user message to the chat completions API
type Completer struct {
	*openai.Client

	completion.Options
}

var _ completion.Completer = (*Completer)(nil)

func (c *Completer) SetClient(clt *openai.Client) {
	c.Client = clt
}

func New(client *openai.Client, opts ...completion.Option) *Completer {
	ret := &Completer{
		Client: client,
	}
	completion.WithProvider(completion.ProviderOpenAI)(&ret.Options)
	for _, opt := range opts {
		opt(&ret.Options)
	}
	return ret
}

func (c *Completer) Complete(ctx context.Context, prompt string, params completion.Params) (*completion.Completion, error) {
	// a zero temperature is dropped by omitempty and the API falls back to 1
	temperature := float32(params.Temperature)
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}
	req := openai.ChatCompletionRequest{
		Model: c.Model(),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: temperature,
		TopP:        float32(params.TopP),
		MaxTokens:   params.MaxTokens,
		Stop:        params.Stop,
	}
	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, completion.ErrEmptyCompletion
	}
	return &completion.Completion{
		Text:  resp.Choices[0].Message.Content,
		Model: resp.Model,
		Usage: &components.LLMUsage{
			InputTokens:  int64(resp.Usage.PromptTokens),
			OutputTokens: int64(resp.Usage.CompletionTokens),
		},
	}, nil
}
