package tools

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned by tools when the action input cannot be used
	ErrInvalidInput = errors.New("invalid tool input")
	// ErrDuplicateTool is returned when two tools share a name in a Set
	ErrDuplicateTool = errors.New("duplicate tool name")
)

// InvokeFunc runs a tool with the raw action input and returns the observation text
type InvokeFunc func(ctx context.Context, input string) (string, error)

// ToolSpec describes a tool that the dispatch loop can call.
// Name is matched case-sensitively against Action directives;
// Description is only used to build the prompt.
type ToolSpec struct {
	Name        string
	Description string
	Invoke      InvokeFunc
}

// Validate checks the spec can be registered
func (s ToolSpec) Validate() error {
	if s.Name == "" {
		return errors.New("tool name is required")
	}
	if s.Invoke == nil {
		return fmt.Errorf("tool %s has no invoke function", s.Name)
	}
	return nil
}

// ITool is implemented by every concrete tool
type ITool interface {
	SetTitle(string)
	Title() string
	SetDescription(string)
	Description() string
	// Spec exposes the tool to the dispatch loop
	Spec() ToolSpec
}

// Tool is a typed tool taking input I and producing output O
type Tool[I any, O any] interface {
	ITool
	Run(context.Context, *I) (*O, error)
}
