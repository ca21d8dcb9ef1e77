package components

import (
	"github.com/clipperhouse/uax29/sentences"
)

// TruncateSentences keeps whole sentences from the start of text while
// their token count stays within budget, and reports whether anything was cut.
// A budget <= 0 or a nil counter returns text unchanged.
func TruncateSentences(text string, counter TokenCounter, budget int) (string, bool) {
	if budget <= 0 || counter == nil || counter.Count(text) <= budget {
		return text, false
	}
	var (
		used int
		end  int
	)
	for _, seg := range sentences.SegmentAll([]byte(text)) {
		n := counter.Count(string(seg))
		if used+n > budget {
			break
		}
		used += n
		end += len(seg)
	}
	return text[:end], true
}
