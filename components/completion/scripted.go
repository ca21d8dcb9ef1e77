package completion

import (
	"context"
	"errors"
	"sync"
)

// ErrScriptExhausted is returned when a Scripted completer runs out of responses
var ErrScriptExhausted = errors.New("completion: script exhausted")

// Scripted is a deterministic Completer replaying fixed responses in order.
// It records every prompt it receives.
type Scripted struct {
	responses []string
	prompts   []string
	params    []Params
	mtx       sync.Mutex
}

var _ Completer = (*Scripted)(nil)

// NewScripted returns a Scripted completer
func NewScripted(responses ...string) *Scripted {
	return &Scripted{responses: responses}
}

func (s *Scripted) Complete(ctx context.Context, prompt string, params Params) (*Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	idx := len(s.prompts)
	if idx >= len(s.responses) {
		return nil, ErrScriptExhausted
	}
	s.prompts = append(s.prompts, prompt)
	s.params = append(s.params, params)
	return &Completion{Text: s.responses[idx], Model: "scripted"}, nil
}

// Calls returns the number of answered calls
func (s *Scripted) Calls() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.prompts)
}

// Prompts returns a copy of the received prompts
func (s *Scripted) Prompts() []string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	ret := make([]string, len(s.prompts))
	copy(ret, s.prompts)
	return ret
}

// Params returns a copy of the received params
func (s *Scripted) Params() []Params {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	ret := make([]Params, len(s.params))
	copy(ret, s.params)
	return ret
}
