package zeroshot

import (
	"github.com/bububa/react-agents/components/systemprompt"
	"github.com/bububa/react-agents/tools"
)

type Option = func(g *Generator)

// WithBackground set Generator background lines
func WithBackground(background []string) Option {
	return func(g *Generator) {
		g.background = background
	}
}

// WithTools set the tools listed in the catalogue
func WithTools(specs ...tools.ToolSpec) Option {
	return func(g *Generator) {
		g.tools = specs
	}
}

// WithFormatInstructions overrides the step grammar description.
// A %s verb, if present, is replaced with the quoted tool names.
func WithFormatInstructions(format string) Option {
	return func(g *Generator) {
		g.format = format
	}
}

// WithContextProviders set Generator context providers
func WithContextProviders(providers ...systemprompt.ContextProvider) Option {
	return func(g *Generator) {
		g.AddContextProviders(providers...)
	}
}
