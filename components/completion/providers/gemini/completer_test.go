package gemini

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestFirstCandidateText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Action: Calculator\n"), genai.Text("Action Input: 2+2")}}},
		},
	}
	text, ok := firstCandidateText(resp)
	if !ok {
		t.Fatal("expect a candidate")
	}
	if text != "Action: Calculator\nAction Input: 2+2" {
		t.Errorf("unexpected text %q", text)
	}
	if _, ok := firstCandidateText(&genai.GenerateContentResponse{}); ok {
		t.Error("expect no candidate")
	}
}
