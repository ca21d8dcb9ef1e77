// Package completion defines the text-completion service consumed by the
// dispatch loop and the tools that need a model.
package completion

import (
	"context"
	"errors"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/bububa/react-agents/components"
)

// ErrEmptyCompletion is returned when a provider responds without text candidates
var ErrEmptyCompletion = errors.New("completion: empty response")

// DefaultStop keeps the model from writing its own observations
var DefaultStop = []string{"\nObservation:"}

// Params is the bounded generation configuration sent with every prompt
type Params struct {
	// Temperature sampling temperature
	Temperature float64 `json:"temperature" mapstructure:"temperature" validate:"gte=0,lte=2"`
	// TopP nucleus-sampling threshold
	TopP float64 `json:"top_p" mapstructure:"top_p" validate:"gte=0,lte=1"`
	// MaxTokens maximum output length
	MaxTokens int `json:"max_tokens" mapstructure:"max_tokens" validate:"gte=1"`
	// Stop stop sequences
	Stop []string `json:"stop,omitempty" mapstructure:"stop" validate:"dive,required"`
}

// DefaultParams returns the model parameters of the reasoning model
func DefaultParams() Params {
	return Params{
		Temperature: 0,
		TopP:        0.5,
		MaxTokens:   2000,
		Stop:        append([]string(nil), DefaultStop...),
	}
}

// Validate checks the params are within bounds
func (p Params) Validate() error {
	return validate.Struct(p)
}

// TopPOrDefault returns TopP, treating 0 as "provider default" (1)
func (p Params) TopPOrDefault() float64 {
	if p.TopP <= 0 {
		return 1
	}
	return math.Min(p.TopP, 1)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Completion is the generated text of one call
type Completion struct {
	Text  string
	Model string
	// Usage may be nil when the provider does not report token counts
	Usage *components.LLMUsage
}

// Completer turns a serialized prompt into generated text synchronously
type Completer interface {
	Complete(ctx context.Context, prompt string, params Params) (*Completion, error)
}

// Func adapts a function to the Completer interface
type Func func(ctx context.Context, prompt string, params Params) (*Completion, error)

func (f Func) Complete(ctx context.Context, prompt string, params Params) (*Completion, error) {
	return f(ctx, prompt, params)
}
