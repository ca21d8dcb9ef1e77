// Package react implements a single-threaded ReAct tool-dispatch loop.
//
// The Agent asks a completion service for the next reasoning step, parses
// it against the Thought / Action / Action Input / Observation / Final Answer
// grammar, runs the named tool and feeds the observation back until the
// model produces a final answer or the step budget runs out.
package react

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bububa/react-agents/components"
	"github.com/bububa/react-agents/components/completion"
	"github.com/bububa/react-agents/components/systemprompt"
	"github.com/bububa/react-agents/components/systemprompt/zeroshot"
	"github.com/bububa/react-agents/logging"
	"github.com/bububa/react-agents/tools"
)

// CorrectionFormat is appended after output that does not follow the grammar
const CorrectionFormat = "respond using the exact format, either 'Action:' followed by 'Action Input:', or 'Final Answer:'."

// Config is the explicit, immutable configuration of an Agent
type Config struct {
	// Preamble background lines opening the instructions
	Preamble []string
	// Grammar step grammar description; %s receives the quoted tool names
	Grammar string
	// Tools registered tools, matched by exact name
	Tools *tools.Set
	// ContextProviders extra sections rendered after the grammar
	ContextProviders []systemprompt.ContextProvider
}

// Agent runs questions through the dispatch loop.
// It is immutable after New and safe for concurrent Runs.
type Agent struct {
	options
	completer    completion.Completer
	tools        *tools.Set
	instructions string
}

// New creates an Agent with the given completion service and configuration
func New(completer completion.Completer, cfg Config, opts ...Option) (*Agent, error) {
	if completer == nil {
		return nil, errors.New("react: completer is required")
	}
	ret := &Agent{
		options: options{
			maxSteps:         DefaultMaxSteps,
			params:           completion.DefaultParams(),
			observationLimit: DefaultObservationLimit,
			tokenCounter:     components.DefaultTokenCounter{},
			name:             DefaultName,
		},
		completer: completer,
		tools:     cfg.Tools,
	}
	for _, opt := range opts {
		opt(&ret.options)
	}
	if ret.maxSteps < 1 {
		return nil, fmt.Errorf("react: max steps must be at least 1, got %d", ret.maxSteps)
	}
	if err := ret.params.Validate(); err != nil {
		return nil, fmt.Errorf("react: invalid params: %w", err)
	}
	if ret.tools == nil {
		ret.tools = tools.MustNewSet()
	}
	if ret.tokenCounter == nil {
		ret.tokenCounter = components.DefaultTokenCounter{}
	}
	ret.logger = logging.NewComponentLogger(ret.logger, ret.name)
	genOpts := []zeroshot.Option{
		zeroshot.WithBackground(cfg.Preamble),
		zeroshot.WithTools(ret.tools.Specs()...),
		zeroshot.WithContextProviders(cfg.ContextProviders...),
	}
	if cfg.Grammar != "" {
		genOpts = append(genOpts, zeroshot.WithFormatInstructions(cfg.Grammar))
	}
	ret.instructions = zeroshot.New(genOpts...).Generate()
	return ret, nil
}

// Name returns the agent name
func (a *Agent) Name() string {
	return a.name
}

// Instructions returns the rendered instruction preamble
func (a *Agent) Instructions() string {
	return a.instructions
}

// Tools returns the registered tool set
func (a *Agent) Tools() *tools.Set {
	return a.tools
}

// MaxSteps returns the step budget of a run
func (a *Agent) MaxSteps() int {
	return a.maxSteps
}

// Run answers question. Failures are *Error values matching one of the
// Err* kinds with errors.Is.
func (a *Agent) Run(ctx context.Context, question string) (*Result, error) {
	if fn := a.startHook; fn != nil {
		fn(ctx, a, question)
	}
	r := a.newRun(question)
	if err := r.loop(ctx); err != nil {
		if fn := a.errorHook; fn != nil {
			fn(ctx, a, question, err)
		}
		return nil, err
	}
	if fn := a.endHook; fn != nil {
		fn(ctx, a, question, r.result)
	}
	return r.result, nil
}

// run is the per-question state of the loop
type run struct {
	*Agent
	transcript *components.Transcript
	state      State
	result     *Result
	logger     *slog.Logger
	lastRaw    string
	unparsable bool
}

func (a *Agent) newRun(question string) *run {
	transcript := components.NewTranscript(a.instructions)
	transcript.Append(components.QuestionRole, question)
	runID := uuid.NewString()
	return &run{
		Agent:      a,
		transcript: transcript,
		state:      StateThinking,
		result: &Result{
			RunID:      runID,
			Transcript: transcript,
			States:     []State{StateThinking},
		},
		logger: a.logger.With("run_id", runID, "transcript_id", transcript.ID()),
	}
}

func (r *run) loop(ctx context.Context) error {
	for step := 1; step <= r.maxSteps; step++ {
		r.result.Steps = step
		if err := ctx.Err(); err != nil {
			return r.fail(ErrTransport, "", err)
		}
		prompt := r.transcript.Render()
		resp, err := r.completer.Complete(ctx, prompt, r.params)
		r.result.ModelCalls++
		if err == nil && resp == nil {
			err = completion.ErrEmptyCompletion
		}
		if err != nil {
			return r.fail(ErrTransport, "", err)
		}
		r.addUsage(prompt, resp)
		r.lastRaw = resp.Text
		parsed := Parse(resp.Text)
		if fn := r.stepHook; fn != nil {
			fn(ctx, r.Agent, StepEvent{RunID: r.result.RunID, Step: step, Raw: resp.Text, Parsed: parsed})
		}
		r.unparsable = false
		switch v := parsed.Result.(type) {
		case FinalAnswer:
			r.appendThought(parsed.Thought)
			r.transcript.Append(components.FinalAnswerRole, v.Answer)
			r.transition(StateDone)
			r.result.Answer = v.Answer
			r.logger.Debug("final answer", "step", step)
			return nil
		case Action:
			if err := r.dispatch(ctx, step, parsed.Thought, v); err != nil {
				return err
			}
		case ParseFailure:
			r.correct(step, v.Raw, v.Reason)
		case Unrecognized:
			r.correct(step, v.Raw, "missing 'Action:' after 'Thought:'")
		}
	}
	return r.fail(ErrLoopExceeded, "", nil)
}

// dispatch runs one action and appends its observation
func (r *run) dispatch(ctx context.Context, step int, thought string, action Action) error {
	r.appendThought(thought)
	r.transcript.Append(components.ActionRole, action.Tool)
	r.transcript.Append(components.ActionInputRole, action.Input)
	spec, ok := r.tools.Lookup(action.Tool)
	if !ok {
		return r.fail(ErrToolNotFound, action.Tool, nil)
	}
	r.transition(StateAwaitingObservation)
	r.logger.Debug("dispatch", "step", step, "tool", action.Tool)
	output, err := invoke(ctx, spec, action.Input)
	r.result.ToolCalls++
	if err != nil {
		return r.fail(ErrToolExecution, action.Tool, err)
	}
	r.transcript.Append(components.ObservationRole, components.SanitizeObservation(output, r.observationLimit))
	r.transition(StateThinking)
	return nil
}

// invoke runs the tool, turning a panic into an error
func invoke(ctx context.Context, spec tools.ToolSpec, input string) (output string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return spec.Invoke(ctx, input)
}

// correct appends the invalid output and the corrective nudge
func (r *run) correct(step int, raw string, reason string) {
	r.unparsable = true
	r.transcript.Append(components.InvalidRole, components.SanitizeObservation(raw, r.observationLimit))
	r.transcript.Append(components.CorrectionRole, reason+", "+CorrectionFormat)
	r.transition(StateThinking)
	r.logger.Warn("unparsable step", "step", step, "reason", reason)
}

func (r *run) appendThought(thought string) {
	if thought != "" {
		r.transcript.Append(components.ThoughtRole, thought)
	}
}

func (r *run) transition(next State) {
	if !r.state.CanTransition(next) {
		r.logger.Error("invalid state transition", "from", r.state, "to", next)
	}
	r.state = next
	r.result.States = append(r.result.States, next)
}

func (r *run) addUsage(prompt string, resp *completion.Completion) {
	if resp.Usage != nil {
		r.result.Usage.Merge(resp.Usage)
		return
	}
	r.result.Usage.Merge(&components.LLMUsage{
		InputTokens:  int64(r.tokenCounter.Count(prompt)),
		OutputTokens: int64(r.tokenCounter.Count(resp.Text)),
	})
}

func (r *run) fail(kind error, tool string, cause error) error {
	r.transition(StateFailed)
	err := &Error{
		Kind:       kind,
		Tool:       tool,
		Step:       r.result.Steps,
		Cause:      cause,
		Raw:        r.lastRaw,
		Transcript: r.transcript.Copy(),
		unparsable: kind == ErrLoopExceeded && r.unparsable,
	}
	r.logger.Warn("run failed", "error", err, "step", r.result.Steps, "model_calls", r.result.ModelCalls, "tool_calls", r.result.ToolCalls)
	return err
}
