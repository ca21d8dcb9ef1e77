package gemini

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/bububa/react-agents/components"
	"github.com/bububa/react-agents/components/completion"
)

// Completer sends prompts to a Gemini generative model
type Completer struct {
	*genai.Client

	completion.Options
}

var _ completion.Completer = (*Completer)(nil)

func (c *Completer) SetClient(clt *genai.Client) {
	c.Client = clt
}

func New(client *genai.Client, opts ...completion.Option) *Completer {
	ret := &Completer{
		Client: client,
	}
	completion.WithProvider(completion.ProviderGemini)(&ret.Options)
	for _, opt := range opts {
		opt(&ret.Options)
	}
	return ret
}

func (c *Completer) Complete(ctx context.Context, prompt string, params completion.Params) (*completion.Completion, error) {
	model := c.GenerativeModel(c.Model())
	model.SetTemperature(float32(params.Temperature))
	model.SetTopP(float32(params.TopPOrDefault()))
	model.SetMaxOutputTokens(int32(params.MaxTokens))
	model.StopSequences = params.Stop
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}
	text, ok := firstCandidateText(resp)
	if !ok {
		return nil, completion.ErrEmptyCompletion
	}
	ret := &completion.Completion{
		Text:  text,
		Model: c.Model(),
	}
	if meta := resp.UsageMetadata; meta != nil {
		ret.Usage = &components.LLMUsage{
			InputTokens:  int64(meta.PromptTokenCount),
			OutputTokens: int64(meta.CandidatesTokenCount),
		}
	}
	return ret, nil
}

func firstCandidateText(resp *genai.GenerateContentResponse) (string, bool) {
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range candidate.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
		return sb.String(), true
	}
	return "", false
}
