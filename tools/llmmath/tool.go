// Package llmmath answers math questions by asking a model for an expression
// and evaluating it with the calculator.
package llmmath

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bububa/react-agents/components/completion"
	"github.com/bububa/react-agents/tools"
	"github.com/bububa/react-agents/tools/calculator"
)

const (
	DefaultTitle       = "Calculator"
	DefaultDescription = "Useful for when you need to answer questions about math."
	answerPrefix       = "Answer:"
)

// ErrUnknownFormat is returned when the model reply holds neither an expression nor an answer
var ErrUnknownFormat = errors.New("llmmath: unknown format from model")

var fenceRegex = regexp.MustCompile("(?s)```text(.*?)```")

// DefaultParams returns the params of the math model: deterministic, stopping before an output block
func DefaultParams() completion.Params {
	return completion.Params{
		Temperature: 0,
		TopP:        1,
		MaxTokens:   256,
		Stop:        []string{StopSequence},
	}
}

type Input struct {
	Question string `json:"question"`
}

type Output struct {
	// Expression the expression proposed by the model, empty when it answered directly
	Expression string `json:"expression,omitempty"`
	Answer     string `json:"answer"`
}

func (o Output) String() string {
	return answerPrefix + " " + o.Answer
}

type Config struct {
	tools.Config
	completer  completion.Completer
	params     completion.Params
	prompt     string
	calculator *calculator.Tool
}

type Option func(*Config)

// WithToolOptions applies the shared tool options (title, description, hooks)
func WithToolOptions(opts ...tools.Option) Option {
	return func(c *Config) {
		for _, opt := range opts {
			opt(&c.Config)
		}
	}
}

func WithParams(params completion.Params) Option {
	return func(c *Config) {
		c.params = params
	}
}

// WithPrompt replaces the prompt template; it must contain one %s for the question
func WithPrompt(prompt string) Option {
	return func(c *Config) {
		c.prompt = prompt
	}
}

type Tool struct {
	Config
}

var _ tools.Tool[Input, Output] = (*Tool)(nil)

func New(completer completion.Completer, opts ...Option) *Tool {
	ret := &Tool{
		Config: Config{
			completer: completer,
			params:    DefaultParams(),
			prompt:    DefaultPrompt,
		},
	}
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle(DefaultTitle)
	}
	if ret.Description() == "" {
		ret.SetDescription(DefaultDescription)
	}
	ret.calculator = calculator.New()
	return ret
}

func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", tools.ErrInvalidInput)
	}
	prompt := strings.Replace(t.prompt, "%s", question, 1)
	resp, err := t.completer.Complete(ctx, prompt, t.params)
	if err != nil {
		return nil, err
	}
	return t.processReply(ctx, resp.Text)
}

// Spec exposes the tool to the dispatch loop; the action input is the question
func (t *Tool) Spec() tools.ToolSpec {
	return t.Config.Spec(func(ctx context.Context, input string) (string, error) {
		ret, err := t.Run(ctx, &Input{Question: input})
		if err != nil {
			return "", err
		}
		return ret.String(), nil
	})
}

func (t *Tool) processReply(ctx context.Context, reply string) (*Output, error) {
	reply = strings.TrimSpace(reply)
	if m := fenceRegex.FindStringSubmatch(reply); m != nil {
		exp := calculator.CleanExpression(m[1])
		if exp == "" {
			return nil, fmt.Errorf("%w: empty expression", ErrUnknownFormat)
		}
		ret, err := t.calculator.Run(ctx, calculator.NewInput(exp, nil))
		if err != nil {
			return nil, fmt.Errorf("evaluate %q: %w", exp, err)
		}
		return &Output{Expression: exp, Answer: ret.String()}, nil
	}
	// stop sequence hit before the closing fence
	if rest, ok := strings.CutPrefix(reply, "```text"); ok {
		exp := calculator.CleanExpression(rest)
		if exp != "" {
			ret, err := t.calculator.Run(ctx, calculator.NewInput(exp, nil))
			if err != nil {
				return nil, fmt.Errorf("evaluate %q: %w", exp, err)
			}
			return &Output{Expression: exp, Answer: ret.String()}, nil
		}
	}
	if rest, ok := strings.CutPrefix(reply, answerPrefix); ok {
		return &Output{Answer: strings.TrimSpace(rest)}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, reply)
}
