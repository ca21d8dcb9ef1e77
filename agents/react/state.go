package react

import (
	"fmt"
	"slices"
)

// State of the dispatch loop
type State int

const (
	// StateThinking waits for the next model step
	StateThinking State = iota
	// StateAwaitingObservation a tool call is in flight
	StateAwaitingObservation
	// StateDone a final answer was produced
	StateDone
	// StateFailed the run ended with an error
	StateFailed
)

var stateNames = map[State]string{
	StateThinking:            "thinking",
	StateAwaitingObservation: "awaiting_observation",
	StateDone:                "done",
	StateFailed:              "failed",
}

var transitions = map[State][]State{
	StateThinking:            {StateDone, StateAwaitingObservation, StateThinking, StateFailed},
	StateAwaitingObservation: {StateThinking, StateFailed},
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// MarshalText renders the state name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether no transition leaves the state
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// CanTransition reports whether the loop may move from s to next
func (s State) CanTransition(next State) bool {
	return slices.Contains(transitions[s], next)
}

// ValidTrace reports whether states is a legal path from the initial state
func ValidTrace(states []State) bool {
	if len(states) == 0 || states[0] != StateThinking {
		return false
	}
	for idx := 1; idx < len(states); idx++ {
		if !states[idx-1].CanTransition(states[idx]) {
			return false
		}
	}
	return true
}
