package react

import (
	"context"
	"log/slog"

	"github.com/bububa/react-agents/components"
	"github.com/bububa/react-agents/components/completion"
)

const (
	DefaultMaxSteps         = 10
	DefaultObservationLimit = 4000
	DefaultName             = "react"
)

// StepEvent describes one parsed model step
type StepEvent struct {
	RunID string
	// Step 1-based iteration number
	Step int
	// Raw model output
	Raw string
	// Parsed parsed model output
	Parsed Step
}

type options struct {
	// maxSteps step budget of a run
	maxSteps int
	// params generation params of the reasoning model
	params completion.Params
	// observationLimit maximum observation length in graphemes
	observationLimit int
	logger           *slog.Logger
	tokenCounter     components.TokenCounter
	// name is Agent name presentation
	name      string
	startHook func(context.Context, *Agent, string)
	stepHook  func(context.Context, *Agent, StepEvent)
	endHook   func(context.Context, *Agent, string, *Result)
	errorHook func(context.Context, *Agent, string, error)
}

type Option func(o *options)

func WithMaxSteps(n int) Option {
	return func(o *options) {
		o.maxSteps = n
	}
}

func WithParams(params completion.Params) Option {
	return func(o *options) {
		o.params = params
	}
}

// WithObservationLimit caps observations at n graphemes; n <= 0 disables truncation
func WithObservationLimit(n int) Option {
	return func(o *options) {
		o.observationLimit = n
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTokenCounter sets the counter used to estimate usage when the provider reports none
func WithTokenCounter(c components.TokenCounter) Option {
	return func(o *options) {
		o.tokenCounter = c
	}
}

func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func WithStartHook(fn func(context.Context, *Agent, string)) Option {
	return func(o *options) {
		o.startHook = fn
	}
}

func WithStepHook(fn func(context.Context, *Agent, StepEvent)) Option {
	return func(o *options) {
		o.stepHook = fn
	}
}

func WithEndHook(fn func(context.Context, *Agent, string, *Result)) Option {
	return func(o *options) {
		o.endHook = fn
	}
}

func WithErrorHook(fn func(context.Context, *Agent, string, error)) Option {
	return func(o *options) {
		o.errorHook = fn
	}
}
