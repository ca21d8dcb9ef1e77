package react

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bububa/react-agents/components"
)

// Error kinds returned by Agent.Run, matched with errors.Is
var (
	// ErrLoopExceeded the step budget ran out without a final answer
	ErrLoopExceeded = errors.New("react: loop exceeded")
	// ErrToolNotFound the model named a tool that is not registered
	ErrToolNotFound = errors.New("react: tool not found")
	// ErrToolExecution a tool invocation failed
	ErrToolExecution = errors.New("react: tool execution failed")
	// ErrUnparsableStep the model output did not follow the step grammar
	ErrUnparsableStep = errors.New("react: unparsable step")
	// ErrTransport the completion service failed
	ErrTransport = errors.New("react: completion transport failed")
)

// Error is the failure of a run. It carries enough context to diagnose
// the run: the tool involved, the last raw model output and the transcript.
type Error struct {
	// Kind one of the Err* kinds
	Kind error
	// Tool name of the tool involved, if any
	Tool string
	// Step 1-based step the run failed at
	Step int
	// Cause underlying failure from the tool or completion service
	Cause error
	// Raw last raw model output
	Raw string
	// Transcript copy of the transcript at the time of failure
	Transcript *components.Transcript
	// unparsable the last step failed to parse
	unparsable bool
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	if e.Tool != "" {
		fmt.Fprintf(&sb, ": tool %q", e.Tool)
	}
	if e.Step > 0 {
		fmt.Fprintf(&sb, " at step %d", e.Step)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap exposes the kind and the cause to errors.Is and errors.As
func (e *Error) Unwrap() []error {
	ret := make([]error, 0, 3)
	ret = append(ret, e.Kind)
	if e.unparsable && e.Kind != ErrUnparsableStep {
		ret = append(ret, ErrUnparsableStep)
	}
	if e.Cause != nil {
		ret = append(ret, e.Cause)
	}
	return ret
}
