// Package zeroshot renders the zero-shot ReAct instruction preamble: a tool
// catalogue followed by the strict Thought / Action / Action Input /
// Observation / Final Answer grammar.
package zeroshot

import (
	"fmt"
	"strings"

	"github.com/bububa/react-agents/components/systemprompt"
	"github.com/bububa/react-agents/tools"
)

// DefaultBackground opens the preamble when no background is configured
const DefaultBackground = "Answer the following questions as best you can."

// DefaultFormatInstructions is the step grammar; %s receives the tool names
const DefaultFormatInstructions = `Use the following format:

Question: the input question you must answer
Thought: you should always think about what to do
Action: the action to take, should be one of [%s]
Action Input: the input to the action
Observation: the result of the action
... (this Thought/Action/Action Input/Observation can repeat N times)
Thought: I now know the final answer
Final Answer: the final answer to the original input question`

// Generator is the zero-shot ReAct system prompt generator
type Generator struct {
	systemprompt.BaseGenerator
	background []string
	tools      []tools.ToolSpec
	format     string
}

var _ systemprompt.Generator = (*Generator)(nil)

// New returns a new zero-shot Generator
func New(options ...Option) *Generator {
	ret := new(Generator)
	for _, opt := range options {
		opt(ret)
	}
	if len(ret.background) == 0 {
		ret.background = []string{DefaultBackground}
	}
	if ret.format == "" {
		ret.format = DefaultFormatInstructions
	}
	return ret
}

// ToolNames returns the quoted, comma separated tool names
func (g *Generator) ToolNames() string {
	names := make([]string, 0, len(g.tools))
	for _, t := range g.tools {
		names = append(names, fmt.Sprintf("%q", t.Name))
	}
	return strings.Join(names, ", ")
}

func (g *Generator) Generate() string {
	promptParts := make([]string, 0, len(g.background)+len(g.tools)+6)
	promptParts = append(promptParts, g.background...)
	if len(g.tools) > 0 {
		promptParts = append(promptParts, "", "You have access to the following tools:", "")
		for _, t := range g.tools {
			promptParts = append(promptParts, fmt.Sprintf("%s: %s", t.Name, t.Description))
		}
	}
	promptParts = append(promptParts, "")
	promptParts = append(promptParts, strings.Replace(g.format, "%s", g.ToolNames(), 1))
	if extra := g.RenderContextProviders(); extra != "" {
		promptParts = append(promptParts, "", extra)
	}
	return strings.TrimSpace(strings.Join(promptParts, "\n"))
}
