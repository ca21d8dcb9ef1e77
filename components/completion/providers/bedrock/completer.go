// Package bedrock runs Claude text completions on Amazon Bedrock.
package bedrock

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/bububa/react-agents/components/completion"
)

const (
	// DefaultModel is the model the agent was first written against
	DefaultModel = "anthropic.claude-instant-v1"
	humanPrefix  = "\n\nHuman:"
	assistantCue = "\n\nAssistant:"
	contentType  = "application/json"
)

// InvokeModelAPI is the part of the bedrockruntime client the completer needs
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Request is the Claude text-completion body
type Request struct {
	Prompt            string   `json:"prompt"`
	MaxTokensToSample int      `json:"max_tokens_to_sample"`
	Temperature       float64  `json:"temperature"`
	TopP              float64  `json:"top_p"`
	StopSequences     []string `json:"stop_sequences,omitempty"`
}

// Response is the Claude text-completion reply
type Response struct {
	Completion string `json:"completion"`
	StopReason string `json:"stop_reason"`
}

// Completer invokes a Bedrock hosted Claude model
type Completer struct {
	client InvokeModelAPI

	completion.Options
}

var _ completion.Completer = (*Completer)(nil)

func New(client InvokeModelAPI, opts ...completion.Option) *Completer {
	ret := &Completer{
		client: client,
	}
	completion.WithProvider(completion.ProviderBedrock)(&ret.Options)
	completion.WithModel(DefaultModel)(&ret.Options)
	for _, opt := range opts {
		opt(&ret.Options)
	}
	return ret
}

func (c *Completer) Complete(ctx context.Context, prompt string, params completion.Params) (*completion.Completion, error) {
	body, err := json.Marshal(Request{
		Prompt:            WrapPrompt(prompt),
		MaxTokensToSample: params.MaxTokens,
		Temperature:       params.Temperature,
		TopP:              params.TopPOrDefault(),
		StopSequences:     params.Stop,
	})
	if err != nil {
		return nil, err
	}
	out, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.Model()),
		Body:        body,
		ContentType: aws.String(contentType),
		Accept:      aws.String(contentType),
	})
	if err != nil {
		return nil, err
	}
	var resp Response
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return nil, err
	}
	return &completion.Completion{
		Text:  resp.Completion,
		Model: c.Model(),
	}, nil
}

// WrapPrompt puts the prompt into the Human/Assistant frame the text-completion API requires
func WrapPrompt(prompt string) string {
	if !strings.HasPrefix(prompt, humanPrefix) {
		prompt = humanPrefix + " " + strings.TrimLeft(prompt, "\n")
	}
	if !strings.HasSuffix(strings.TrimRight(prompt, " "), assistantCue) {
		prompt += assistantCue
	}
	return prompt
}
