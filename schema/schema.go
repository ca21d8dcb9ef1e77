package schema

import "encoding/json"

// Schema is a tool or agent payload that can be rendered into prompt text
type Schema interface {
	String() string
}

// Stringify renders a Schema into prompt text.
// Schemas with an empty String() fall back to their JSON encoding.
func Stringify(s Schema) string {
	if s == nil {
		return ""
	}
	if v, ok := s.(String); ok {
		return string(v)
	}
	if txt := s.String(); txt != "" {
		return txt
	}
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Base is a base schema
type Base struct{}

// String implements Schema interface
func (r Base) String() string {
	return ""
}
