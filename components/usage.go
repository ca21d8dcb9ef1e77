package components

// LLMUsage token usage reported by a completion service
type LLMUsage struct {
	InputTokens  int64 `json:"input_tokens,omitempty" yaml:"input_tokens,omitempty"`
	OutputTokens int64 `json:"output_tokens,omitempty" yaml:"output_tokens,omitempty"`
}

func (u *LLMUsage) Merge(v *LLMUsage) {
	if v == nil {
		return
	}
	u.InputTokens += v.InputTokens
	u.OutputTokens += v.OutputTokens
}

// Total returns input plus output tokens
func (u LLMUsage) Total() int64 {
	return u.InputTokens + u.OutputTokens
}
