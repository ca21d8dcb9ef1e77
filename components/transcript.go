package components

import (
	"strings"

	"github.com/rs/xid"
)

// NewTranscriptID returns a new transcript ID.
func NewTranscriptID() string {
	return xid.New().String()
}

// Role is the kind of a transcript turn
type Role = string

const (
	QuestionRole    Role = "question"
	ThoughtRole     Role = "thought"
	ActionRole      Role = "action"
	ActionInputRole Role = "action_input"
	ObservationRole Role = "observation"
	// InvalidRole holds model output that did not follow the step grammar
	InvalidRole Role = "invalid"
	// CorrectionRole holds the nudge appended after an invalid output
	CorrectionRole  Role = "correction"
	FinalAnswerRole Role = "final_answer"
)

// Turn is a single entry of a Transcript
type Turn struct {
	Role Role   `json:"role" yaml:"role"`
	Text string `json:"text" yaml:"text"`
}

// Transcript is the growing prompt context of one dispatch run.
// It is append-only and owned by a single run; it is not safe for concurrent use.
type Transcript struct {
	// id unique identifier of the transcript
	id string
	// preamble instruction text rendered before the turns
	preamble string
	// turns ordered list of turns
	turns []Turn
}

// NewTranscript returns a new empty Transcript rendered after the given preamble
func NewTranscript(preamble string) *Transcript {
	return &Transcript{
		id:       NewTranscriptID(),
		preamble: preamble,
	}
}

// ID returns the transcript ID
func (t *Transcript) ID() string {
	return t.id
}

// Preamble returns the instruction preamble
func (t *Transcript) Preamble() string {
	return t.preamble
}

// Append adds a turn at the end of the transcript
func (t *Transcript) Append(role Role, text string) Turn {
	turn := Turn{Role: role, Text: text}
	t.turns = append(t.turns, turn)
	return turn
}

// Turns returns a copy of the turns
func (t *Transcript) Turns() []Turn {
	ret := make([]Turn, len(t.turns))
	copy(ret, t.turns)
	return ret
}

// Len returns the number of turns
func (t *Transcript) Len() int {
	return len(t.turns)
}

// Last returns the most recent turn
func (t *Transcript) Last() (Turn, bool) {
	if len(t.turns) == 0 {
		return Turn{}, false
	}
	return t.turns[len(t.turns)-1], true
}

// Count returns the number of turns with the given role
func (t *Transcript) Count(role Role) int {
	var n int
	for _, v := range t.turns {
		if v.Role == role {
			n++
		}
	}
	return n
}

// PendingAction reports whether the latest action still waits for its observation
func (t *Transcript) PendingAction() bool {
	for i := len(t.turns) - 1; i >= 0; i-- {
		switch t.turns[i].Role {
		case ObservationRole:
			return false
		case ActionRole:
			return true
		}
	}
	return false
}

// Copy creates an independent copy of the transcript with the same ID
func (t *Transcript) Copy() *Transcript {
	return &Transcript{
		id:       t.id,
		preamble: t.preamble,
		turns:    t.Turns(),
	}
}

// Render serializes the transcript into the prompt text sent to the completion service.
// The rendered text always ends with a "Thought:" cue for the next step.
func (t *Transcript) Render() string {
	var sb strings.Builder
	if t.preamble != "" {
		sb.WriteString(t.preamble)
		sb.WriteString("\n\n")
	}
	for _, turn := range t.turns {
		switch turn.Role {
		case QuestionRole:
			sb.WriteString("Question: ")
		case ThoughtRole:
			sb.WriteString("Thought: ")
		case ActionRole:
			sb.WriteString("Action: ")
		case ActionInputRole:
			sb.WriteString("Action Input: ")
		case ObservationRole:
			sb.WriteString("Observation: ")
		case CorrectionRole:
			sb.WriteString("Observation: Invalid Format: ")
		case FinalAnswerRole:
			sb.WriteString("Final Answer: ")
		}
		sb.WriteString(turn.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("Thought:")
	return sb.String()
}
