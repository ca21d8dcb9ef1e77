package components

import (
	"strings"
	"testing"
)

func TestTranscriptRender(t *testing.T) {
	tr := NewTranscript("Answer the question.")
	tr.Append(QuestionRole, "2+2?")
	tr.Append(ThoughtRole, "I should use the calculator")
	tr.Append(ActionRole, "Calculator")
	tr.Append(ActionInputRole, "2+2")
	tr.Append(ObservationRole, "4")
	expect := strings.Join([]string{
		"Answer the question.",
		"",
		"Question: 2+2?",
		"Thought: I should use the calculator",
		"Action: Calculator",
		"Action Input: 2+2",
		"Observation: 4",
		"Thought:",
	}, "\n")
	if got := tr.Render(); got != expect {
		t.Errorf("expect:\n%s\nbut got:\n%s", expect, got)
	}
	if tr.Render() != tr.Render() {
		t.Error("render is not stable")
	}
}

func TestTranscriptRenderCorrection(t *testing.T) {
	tr := NewTranscript("")
	tr.Append(QuestionRole, "q")
	tr.Append(InvalidRole, "I am not sure")
	tr.Append(CorrectionRole, "respond using the exact format")
	expect := "Question: q\nI am not sure\nObservation: Invalid Format: respond using the exact format\nThought:"
	if got := tr.Render(); got != expect {
		t.Errorf("expect:\n%s\nbut got:\n%s", expect, got)
	}
}

func TestTranscriptPendingAction(t *testing.T) {
	tr := NewTranscript("")
	tr.Append(QuestionRole, "q")
	if tr.PendingAction() {
		t.Fatal("expect no pending action")
	}
	tr.Append(ActionRole, "Calculator")
	tr.Append(ActionInputRole, "1+1")
	if !tr.PendingAction() {
		t.Fatal("expect pending action")
	}
	tr.Append(ObservationRole, "2")
	if tr.PendingAction() {
		t.Fatal("expect no pending action after observation")
	}
}

func TestTranscriptCopy(t *testing.T) {
	tr := NewTranscript("p")
	tr.Append(QuestionRole, "q")
	cp := tr.Copy()
	tr.Append(ThoughtRole, "later")
	if cp.Len() != 1 {
		t.Errorf("expect copy length 1, but got %d", cp.Len())
	}
	if cp.ID() != tr.ID() {
		t.Errorf("expect copy id %s, but got %s", tr.ID(), cp.ID())
	}
	turns := tr.Turns()
	turns[0].Text = "mutated"
	if last, _ := tr.Last(); last.Text != "later" {
		t.Errorf("expect last turn later, but got %s", last.Text)
	}
	if first := tr.Turns()[0]; first.Text != "q" {
		t.Errorf("Turns must return a copy, got %s", first.Text)
	}
	if n := tr.Count(ThoughtRole); n != 1 {
		t.Errorf("expect 1 thought, but got %d", n)
	}
}
