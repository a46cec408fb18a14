package eval

import "github.com/vivian-lang/vivian/internal/symbols"

// localScope is one function call's bindings: its parameters plus every
// local variable its body declares. A call pushes exactly one of these
// and pops it on every return path (spec.md §4.4/§5).
type localScope map[*symbols.VariableSymbol]any

// scopeStack is the evaluator's private stack of localScope values. It
// is never visible to callers — only the externally-owned globals map
// (passed into Evaluate) is shared state (spec.md §5).
type scopeStack struct {
	frames []localScope
}

func (s *scopeStack) push() {
	s.frames = append(s.frames, localScope{})
}

func (s *scopeStack) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *scopeStack) top() localScope {
	return s.frames[len(s.frames)-1]
}
