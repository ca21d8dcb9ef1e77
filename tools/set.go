package tools

import "fmt"

// Set is an immutable, ordered collection of uniquely named tools
type Set struct {
	specs []ToolSpec
	index map[string]int
}

// NewSet registers the specs in order.
// It fails on invalid specs or duplicate names.
func NewSet(specs ...ToolSpec) (*Set, error) {
	ret := &Set{
		specs: make([]ToolSpec, 0, len(specs)),
		index: make(map[string]int, len(specs)),
	}
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		if _, found := ret.index[spec.Name]; found {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTool, spec.Name)
		}
		ret.index[spec.Name] = len(ret.specs)
		ret.specs = append(ret.specs, spec)
	}
	return ret, nil
}

// MustNewSet is like NewSet but panics on error
func MustNewSet(specs ...ToolSpec) *Set {
	ret, err := NewSet(specs...)
	if err != nil {
		panic(err)
	}
	return ret
}

// Lookup finds a tool by exact name
func (s *Set) Lookup(name string) (ToolSpec, bool) {
	if s == nil {
		return ToolSpec{}, false
	}
	idx, found := s.index[name]
	if !found {
		return ToolSpec{}, false
	}
	return s.specs[idx], true
}

// Names returns tool names in registration order
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	ret := make([]string, 0, len(s.specs))
	for _, v := range s.specs {
		ret = append(ret, v.Name)
	}
	return ret
}

// Specs returns a copy of the registered specs
func (s *Set) Specs() []ToolSpec {
	if s == nil {
		return nil
	}
	ret := make([]ToolSpec, len(s.specs))
	copy(ret, s.specs)
	return ret
}

// Len returns the number of tools
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.specs)
}
