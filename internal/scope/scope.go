// Package scope implements the lexically scoped environment: a stack of
// frames searched innermost-first for name resolution.
package scope

import (
	"fmt"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/values"
)

// Binding is the pair (declared type, current value, mutability) stored
// under a name in a frame. Constants carry Mutable=false and a
// DeclaredType inferred from their initializer.
type Binding struct {
	DeclaredType ast.TypeDesc
	Value        values.Value
	Mutable      bool
}

// frame is one lexical level: an insertion-ordered set of bindings. Go
// maps don't preserve insertion order, but nothing in this language
// observes binding iteration order, so a plain map suffices.
type frame map[string]*Binding

// Stack is the scope stack: the evaluator pushes a frame on entering a
// subroutine body, conditional, switch, or loop, and pops it on exit.
type Stack struct {
	frames []frame
}

// New returns a Stack with a single global frame.
func New() *Stack {
	return &Stack{frames: []frame{make(frame)}}
}

// Push enters a new lexical frame.
func (s *Stack) Push() { s.frames = append(s.frames, make(frame)) }

// Pop exits the innermost lexical frame.
func (s *Stack) Pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth returns the number of lexical frames currently entered.
func (s *Stack) Depth() int { return len(s.frames) }

// Get resolves name innermost-first.
func (s *Stack) Get(name string) (values.Value, error) {
	b, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return b.Value, nil
}

// GetBinding resolves name innermost-first and returns its full binding,
// for callers that need the declared type or mutability as well as the
// value.
func (s *Stack) GetBinding(name string) (*Binding, error) {
	return s.lookup(name)
}

func (s *Stack) lookup(name string) (*Binding, error) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if b, ok := s.frames[i][name]; ok {
			return b, nil
		}
	}
	return nil, fmt.Errorf("variable %q is not defined", name)
}

// Define installs binding under name in the top frame unconditionally;
// redefinition within the same frame is "most recent write wins".
func (s *Stack) Define(name string, binding *Binding) {
	s.frames[len(s.frames)-1][name] = binding
}

// Assign resolves name innermost-first and overwrites its value, enforcing
// the language's assignment invariants: constants cannot be assigned,
// whole arrays cannot be reassigned (use index assignment), and the new
// value's type must match the declared type exactly.
func (s *Stack) Assign(name string, value values.Value) error {
	for i := len(s.frames) - 1; i >= 0; i-- {
		b, ok := s.frames[i][name]
		if !ok {
			continue
		}
		if !b.Mutable {
			return fmt.Errorf("cannot assign to constant %q", name)
		}
		if b.DeclaredType.IsArray() {
			return fmt.Errorf("cannot reassign array %q directly; use indexed assignment", name)
		}
		if b.DeclaredType.String() != value.TypeName() {
			return fmt.Errorf("assignment type mismatch for %q: expected %q, got %q", name, b.DeclaredType.String(), value.TypeName())
		}
		b.Value = value
		return nil
	}
	return fmt.Errorf("variable %q is not declared", name)
}

// ArrayAt resolves name innermost-first and returns its *values.Array,
// failing if the binding isn't one.
func (s *Stack) ArrayAt(name string) (*values.Array, error) {
	b, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	arr, ok := b.Value.(*values.Array)
	if !ok {
		return nil, fmt.Errorf("%q is not an array", name)
	}
	return arr, nil
}
