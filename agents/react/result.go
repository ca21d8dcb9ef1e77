package react

import (
	"github.com/bububa/react-agents/components"
)

// Result of a successful run
type Result struct {
	// RunID unique identifier of the run
	RunID string `json:"run_id" yaml:"run_id"`
	// Answer the final answer text
	Answer string `json:"answer" yaml:"answer"`
	// Transcript the full transcript of the run
	Transcript *components.Transcript `json:"-" yaml:"-"`
	// Steps number of loop iterations used
	Steps int `json:"steps" yaml:"steps"`
	// ModelCalls number of completion service calls
	ModelCalls int `json:"model_calls" yaml:"model_calls"`
	// ToolCalls number of tool invocations
	ToolCalls int `json:"tool_calls" yaml:"tool_calls"`
	// Usage accumulated token usage, estimated when the provider reports none
	Usage components.LLMUsage `json:"usage" yaml:"usage"`
	// States trace of loop states, starting at StateThinking
	States []State `json:"states" yaml:"states"`
}
