package react

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		thought string
		expect  StepResult
	}{
		{
			name:    "action",
			raw:     " I need to add the numbers.\nAction: Calculator\nAction Input: 2+2",
			thought: "I need to add the numbers.",
			expect:  Action{Tool: "Calculator", Input: "2+2"},
		},
		{
			name:   "final answer",
			raw:    "Final Answer: 4",
			expect: FinalAnswer{Answer: "4"},
		},
		{
			name:    "final answer wins over action",
			raw:     "Thought: I now know the final answer\nAction: Calculator\nAction Input: 1+1\nFinal Answer: 12",
			thought: "I now know the final answer",
			expect:  FinalAnswer{Answer: "12"},
		},
		{
			name:   "multi line final answer",
			raw:    "Final Answer: Knowledge Bases was announced in November.\n11 * 3 = 33",
			expect: FinalAnswer{Answer: "Knowledge Bases was announced in November.\n11 * 3 = 33"},
		},
		{
			name:   "hallucinated observation is dropped",
			raw:    "Action: Web Search\nAction Input: Knowledge Bases announcement\nObservation: made up\nThought: search again\nAction: Calculator\nAction Input: 1+1",
			expect: Action{Tool: "Web Search", Input: "Knowledge Bases announcement"},
		},
		{
			name:   "final answer after hallucinated observation",
			raw:    "Action: Calculator\nAction Input: 2+2\nObservation: 4\nThought: I now know the final answer\nFinal Answer: 4",
			expect: FinalAnswer{Answer: "4"},
		},
		{
			name:   "quoted input",
			raw:    "Action: Calculator\nAction Input: \"11 * 3\"",
			expect: Action{Tool: "Calculator", Input: "11 * 3"},
		},
		{
			name:   "multi line input",
			raw:    "Action: Calculator\nAction Input: (3 +\n4)\nThought: wait",
			expect: Action{Tool: "Calculator", Input: "(3 +\n4)"},
		},
		{
			name:   "inline action input",
			raw:    "Action: Calculator Action Input: 2+2",
			expect: Action{Tool: "Calculator", Input: "2+2"},
		},
		{
			name:   "first action wins",
			raw:    "Action: Web Search\nAction Input: a\nAction: Calculator\nAction Input: b",
			expect: Action{Tool: "Web Search", Input: "a"},
		},
		{
			name:    "labels are case sensitive",
			raw:     "action: Calculator\naction input: 2+2",
			thought: "action: Calculator\naction input: 2+2",
			expect:  Unrecognized{Raw: "action: Calculator\naction input: 2+2"},
		},
		{
			name:   "missing action input",
			raw:    "Action: Calculator",
			expect: ParseFailure{Raw: "Action: Calculator", Reason: "missing 'Action Input:' after 'Action:'"},
		},
		{
			name:   "empty tool name",
			raw:    "Action:\nAction Input: 2+2",
			expect: ParseFailure{Raw: "Action:\nAction Input: 2+2", Reason: "missing tool name after 'Action:'"},
		},
		{
			name:   "input without action",
			raw:    "Action Input: 2+2",
			expect: ParseFailure{Raw: "Action Input: 2+2", Reason: "missing 'Action:' before 'Action Input:'"},
		},
		{
			name:   "empty final answer",
			raw:    "Final Answer:   ",
			expect: ParseFailure{Raw: "Final Answer:   ", Reason: "empty 'Final Answer:'"},
		},
		{
			name:    "prose only",
			raw:     "I am not sure what to do.",
			thought: "I am not sure what to do.",
			expect:  Unrecognized{Raw: "I am not sure what to do."},
		},
		{
			name:   "empty",
			raw:    "  \n ",
			expect: Unrecognized{Raw: "  \n "},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if !reflect.DeepEqual(got.Result, tt.expect) {
				t.Errorf("expect %#v, but got %#v", tt.expect, got.Result)
			}
			if got.Thought != tt.thought {
				t.Errorf("expect thought %q, but got %q", tt.thought, got.Thought)
			}
		})
	}
}
