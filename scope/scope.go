/*
File    : bogus-go/scope/scope.go
*/

// Package scope implements the lexically-nested name → value mapping
// the evaluator resolves identifiers through. Scopes form a chain from
// the innermost frame to the process-wide top-level scope.
package scope

import (
	"fmt"

	"github.com/juhofriman/bogus-go/object"
)

// Scope is one frame of the scope chain: its own bindings plus a link
// to the enclosing frame. A nil Parent marks the top-level scope.
//
// The chain is asymmetric on purpose: Resolve walks outward through
// parents, Store writes to the current frame only (so `let` shadows),
// and Reassign walks outward to update a binding in the frame where it
// was declared.
type Scope struct {
	Variables map[string]object.Value
	Parent    *Scope
}

// NewScope creates a scope with the given parent. A nil parent creates
// a top-level scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]object.Value),
		Parent:    parent,
	}
}

// Resolve looks a name up in this frame, walking to the parent on a
// miss. The innermost binding wins, which is what makes shadowing work.
func (s *Scope) Resolve(name string) (object.Value, bool) {
	value, ok := s.Variables[name]
	if !ok && s.Parent != nil {
		return s.Parent.Resolve(name)
	}
	return value, ok
}

// ResolveResult is Resolve with the miss turned into the evaluation
// error identifier references surface.
func (s *Scope) ResolveResult(name string) (object.Value, error) {
	value, ok := s.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("Can't resolve variable `%s`", name)
	}
	return value, nil
}

// Store binds a name in the current frame only, shadowing any binding
// of the same name in an enclosing frame.
func (s *Scope) Store(name string, value object.Value) {
	s.Variables[name] = value
}

// Reassign updates an existing binding in the frame where it was
// declared, walking the chain outward. Reports false when the name is
// not bound anywhere, so the caller can raise the assignment error.
func (s *Scope) Reassign(name string, value object.Value) bool {
	if _, ok := s.Variables[name]; ok {
		s.Variables[name] = value
		return true
	}
	if s.Parent != nil {
		return s.Parent.Reassign(name, value)
	}
	return false
}
