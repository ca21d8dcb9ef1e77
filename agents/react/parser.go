package react

import (
	"strings"
)

const (
	thoughtLabel     = "Thought:"
	actionLabel      = "Action:"
	actionInputLabel = "Action Input:"
	observationLabel = "Observation:"
	finalAnswerLabel = "Final Answer:"
)

// StepResult is the outcome of parsing one model response.
// It is one of FinalAnswer, Action, ParseFailure or Unrecognized.
type StepResult interface {
	isStepResult()
}

// FinalAnswer terminates the run with Answer
type FinalAnswer struct {
	Answer string
}

// Action asks for Tool to be invoked with Input
type Action struct {
	Tool  string
	Input string
}

// ParseFailure is a response that started a directive but did not complete it
type ParseFailure struct {
	Raw    string
	Reason string
}

// Unrecognized is a response without any directive
type Unrecognized struct {
	Raw string
}

func (FinalAnswer) isStepResult()  {}
func (Action) isStepResult()       {}
func (ParseFailure) isStepResult() {}
func (Unrecognized) isStepResult() {}

// Step is a parsed model response
type Step struct {
	// Thought free text preceding the directive, without its label
	Thought string
	Result  StepResult
}

// Parse reads one model response against the step grammar.
//
// Lines are trimmed and labels are case-sensitive at the start of a line.
// A "Final Answer:" line anywhere in the response wins over any action.
// Otherwise everything from the first "Observation:" line on is ignored and
// the first "Action:" line and the "Action Input:" that follows it form the
// action.
func Parse(raw string) Step {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return Step{Result: Unrecognized{Raw: raw}}
	}
	for idx, line := range lines {
		if rest, ok := strings.CutPrefix(line, finalAnswerLabel); ok {
			ret := Step{Thought: parseThought(lines[:idx])}
			answer := joinBlock(rest, lines[idx+1:], false)
			if answer == "" {
				ret.Result = ParseFailure{Raw: raw, Reason: "empty 'Final Answer:'"}
				return ret
			}
			ret.Result = FinalAnswer{Answer: answer}
			return ret
		}
	}
	for idx, line := range lines {
		if strings.HasPrefix(line, observationLabel) {
			lines = lines[:idx]
			break
		}
	}
	return Step{Thought: parseThought(lines), Result: parseAction(raw, lines)}
}

func parseAction(raw string, lines []string) StepResult {
	actionIdx := -1
	for idx, line := range lines {
		if strings.HasPrefix(line, actionLabel) {
			actionIdx = idx
			break
		}
	}
	if actionIdx < 0 {
		for _, line := range lines {
			if strings.HasPrefix(line, actionInputLabel) {
				return ParseFailure{Raw: raw, Reason: "missing 'Action:' before 'Action Input:'"}
			}
		}
		return Unrecognized{Raw: raw}
	}
	name := strings.TrimSpace(strings.TrimPrefix(lines[actionIdx], actionLabel))
	if before, after, ok := strings.Cut(name, actionInputLabel); ok {
		name = strings.TrimSpace(before)
		if name == "" {
			return ParseFailure{Raw: raw, Reason: "missing tool name after 'Action:'"}
		}
		return Action{Tool: unquote(name), Input: unquote(joinBlock(after, lines[actionIdx+1:], true))}
	}
	name = unquote(name)
	if name == "" {
		return ParseFailure{Raw: raw, Reason: "missing tool name after 'Action:'"}
	}
	for idx := actionIdx + 1; idx < len(lines); idx++ {
		if rest, ok := strings.CutPrefix(lines[idx], actionInputLabel); ok {
			return Action{Tool: name, Input: unquote(joinBlock(rest, lines[idx+1:], true))}
		}
		if isLabel(lines[idx]) {
			break
		}
	}
	return ParseFailure{Raw: raw, Reason: "missing 'Action Input:' after 'Action:'"}
}

// parseThought returns the text before the first directive line
func parseThought(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, actionLabel) || strings.HasPrefix(line, actionInputLabel) || strings.HasPrefix(line, finalAnswerLabel) {
			break
		}
		parts = append(parts, strings.TrimSpace(strings.TrimPrefix(line, thoughtLabel)))
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// joinBlock joins first with the following lines, stopping at the next label when stopAtLabel is set
func joinBlock(first string, rest []string, stopAtLabel bool) string {
	parts := []string{strings.TrimSpace(first)}
	for _, line := range rest {
		if stopAtLabel && isLabel(line) {
			break
		}
		parts = append(parts, line)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func isLabel(line string) bool {
	for _, label := range []string{thoughtLabel, actionLabel, actionInputLabel, observationLabel, finalAnswerLabel} {
		if strings.HasPrefix(line, label) {
			return true
		}
	}
	return false
}

func splitLines(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	for idx, line := range lines {
		lines[idx] = strings.TrimSpace(line)
	}
	return lines
}

// unquote removes one pair of surrounding double quotes or backticks
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	for _, q := range []byte{'"', '`'} {
		if s[0] == q && s[len(s)-1] == q {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
