package values

import (
	"fmt"
	"strings"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
)

// Array is the ARRAY value kind: a one-indexed, fixed-size, rectangular
// sequence whose elements all share ElemType. For a 2-D array, ElemType
// itself describes an ARRAY (see ast.TypeDesc), and each Element is a
// *Array of that inner type.
//
// Arrays are owned by the binding that holds them; Copy produces an
// independent array so that crossing a subroutine boundary (argument
// passing) never lets two bindings alias the same backing slice.
type Array struct {
	ElemType ast.TypeDesc
	Elements []Value
}

// NewArray allocates a 1-D array of length n filled with the default value
// for elemType.
func NewArray(elemType string, n int) (*Array, error) {
	def, err := Default(elemType)
	if err != nil {
		return nil, err
	}
	elems := make([]Value, n)
	for i := range elems {
		elems[i] = def
	}
	return &Array{ElemType: ast.TypeDesc{Name: elemType}, Elements: elems}, nil
}

// NewArray2D allocates a 2-D array of u1 rows each holding u2 elements of
// elemType: the outer array holds u1 arrays of length u2.
func NewArray2D(elemType string, u1, u2 int) (*Array, error) {
	rows := make([]Value, u1)
	for i := range rows {
		inner, err := NewArray(elemType, u2)
		if err != nil {
			return nil, err
		}
		rows[i] = inner
	}
	return &Array{
		ElemType: ast.TypeDesc{Name: "ARRAY", Elem: &ast.TypeDesc{Name: elemType}},
		Elements: rows,
	}, nil
}

func (*Array) Kind() Kind        { return KindArray }
func (a *Array) TypeName() string { return fmt.Sprintf("ARRAY<%s>", a.ElemType.String()) }
func (a *Array) Length() int      { return len(a.Elements) }

// String renders the array the way a REAL/INTEGER/etc would print under
// OUTPUT: comma-separated elements in brackets, e.g. "[1, 2, 3]".
func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Get returns the element at the one-indexed position idx.
func (a *Array) Get(idx int) (Value, error) {
	if idx < 1 || idx > len(a.Elements) {
		return nil, fmt.Errorf("index %d out of bounds for array of length %d", idx, len(a.Elements))
	}
	return a.Elements[idx-1], nil
}

// Set overwrites the element at the one-indexed position idx.
func (a *Array) Set(idx int, v Value) error {
	if idx < 1 || idx > len(a.Elements) {
		return fmt.Errorf("index %d out of bounds for array of length %d", idx, len(a.Elements))
	}
	a.Elements[idx-1] = v
	return nil
}

// Copy returns a deep copy of the array: inner arrays are copied
// recursively so no two live arrays ever share backing storage.
func (a *Array) Copy() *Array {
	elems := make([]Value, len(a.Elements))
	for i, e := range a.Elements {
		if inner, ok := e.(*Array); ok {
			elems[i] = inner.Copy()
		} else {
			elems[i] = e
		}
	}
	return &Array{ElemType: a.ElemType, Elements: elems}
}
