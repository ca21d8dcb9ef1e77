package components

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/graphemes"
)

// TruncatedSuffix is appended to observations cut at the grapheme limit
const TruncatedSuffix = " ...(truncated)"

// SanitizeObservation prepares tool output for the transcript.
// Control characters other than newline and tab become spaces, carriage
// returns are dropped, and the text is cut to at most limit graphemes.
// A limit <= 0 disables truncation.
func SanitizeObservation(text string, limit int) string {
	text = strings.ToValidUTF8(text, "�")
	text = strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r == '\r':
			return -1
		case unicode.IsControl(r):
			return ' '
		}
		return r
	}, text)
	text = strings.TrimSpace(text)
	if limit <= 0 || len(text) <= limit {
		return text
	}
	segments := graphemes.SegmentAll([]byte(text))
	if len(segments) <= limit {
		return text
	}
	var sb strings.Builder
	for _, seg := range segments[:limit] {
		sb.Write(seg)
	}
	sb.WriteString(TruncatedSuffix)
	return sb.String()
}
