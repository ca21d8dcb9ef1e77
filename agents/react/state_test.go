package react

import "testing"

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from, to State
		ok       bool
	}{
		{StateThinking, StateDone, true},
		{StateThinking, StateAwaitingObservation, true},
		{StateThinking, StateThinking, true},
		{StateThinking, StateFailed, true},
		{StateAwaitingObservation, StateThinking, true},
		{StateAwaitingObservation, StateFailed, true},
		{StateAwaitingObservation, StateDone, false},
		{StateDone, StateThinking, false},
		{StateFailed, StateThinking, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.ok {
			t.Errorf("%s -> %s: expect %v, but got %v", tt.from, tt.to, tt.ok, got)
		}
	}
	if !StateDone.Terminal() || !StateFailed.Terminal() || StateThinking.Terminal() {
		t.Error("unexpected terminal states")
	}
}

func TestValidTrace(t *testing.T) {
	if !ValidTrace([]State{StateThinking, StateAwaitingObservation, StateThinking, StateDone}) {
		t.Error("expect valid trace")
	}
	if ValidTrace([]State{StateAwaitingObservation}) {
		t.Error("expect trace to start at thinking")
	}
	if ValidTrace([]State{StateThinking, StateDone, StateThinking}) {
		t.Error("expect no transition out of done")
	}
}
