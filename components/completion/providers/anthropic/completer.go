package anthropic

import (
	"context"
	"strings"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/bububa/react-agents/components"
	"github.com/bububa/react-agents/components/completion"
)

// Completer sends prompts to the Anthropic messages API
type Completer struct {
	*anthropic.Client

	completion.Options
}

var _ completion.Completer = (*Completer)(nil)

func (c *Completer) SetClient(clt *anthropic.Client) {
	c.Client = clt
}

func New(client *anthropic.Client, opts ...completion.Option) *Completer {
	ret := &Completer{
		Client: client,
	}
	completion.WithProvider(completion.ProviderAnthropic)(&ret.Options)
	for _, opt := range opts {
		opt(&ret.Options)
	}
	return ret
}

func (c *Completer) Complete(ctx context.Context, prompt string, params completion.Params) (*completion.Completion, error) {
	temperature := float32(params.Temperature)
	topP := float32(params.TopPOrDefault())
	req := anthropic.MessagesRequest{
		Model: anthropic.Model(c.Model()),
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
		MaxTokens:     params.MaxTokens,
		Temperature:   &temperature,
		TopP:          &topP,
		StopSequences: stopSequences(params.Stop),
	}
	resp, err := c.CreateMessages(ctx, req)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	for _, content := range resp.Content {
		if content.Type == anthropic.MessagesContentTypeText && content.Text != nil {
			sb.WriteString(*content.Text)
		}
	}
	if sb.Len() == 0 && len(resp.Content) == 0 {
		return nil, completion.ErrEmptyCompletion
	}
	return &completion.Completion{
		Text:  sb.String(),
		Model: string(resp.Model),
		Usage: &components.LLMUsage{
			InputTokens:  int64(resp.Usage.InputTokens),
			OutputTokens: int64(resp.Usage.OutputTokens),
		},
	}, nil
}

// stopSequences drops whitespace-only sequences which the API rejects
func stopSequences(stop []string) []string {
	ret := make([]string, 0, len(stop))
	for _, v := range stop {
		if strings.TrimSpace(v) == "" {
			continue
		}
		ret = append(ret, v)
	}
	if len(ret) == 0 {
		return nil
	}
	return ret
}
