package scope

import (
	"testing"

	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/values"
)

func TestStack_defineAndGetInSameFrame(t *testing.T) {
	s := New()
	s.Define("x", &Binding{DeclaredType: ast.TypeDesc{Name: "INTEGER"}, Value: values.Integer{1}, Mutable: true})

	v, err := s.Get("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(values.Integer).Value != 1 {
		t.Fatalf("want 1, got %v", v)
	}
}

func TestStack_innerFrameShadowsOuter(t *testing.T) {
	s := New()
	s.Define("x", &Binding{DeclaredType: ast.TypeDesc{Name: "INTEGER"}, Value: values.Integer{1}, Mutable: true})

	s.Push()
	s.Define("x", &Binding{DeclaredType: ast.TypeDesc{Name: "STRING"}, Value: values.Str{"inner"}, Mutable: true})
	v, _ := s.Get("x")
	if v.(values.Str).Value != "inner" {
		t.Fatalf("inner frame should shadow outer, got %v", v)
	}
	s.Pop()

	v, _ = s.Get("x")
	if v.(values.Integer).Value != 1 {
		t.Fatalf("outer binding should be unaffected after pop, got %v", v)
	}
}

func TestStack_popRemovesInnerBindings(t *testing.T) {
	s := New()
	s.Push()
	s.Define("y", &Binding{DeclaredType: ast.TypeDesc{Name: "INTEGER"}, Value: values.Integer{1}, Mutable: true})
	s.Pop()

	if _, err := s.Get("y"); err == nil {
		t.Fatal("binding defined in a popped frame should no longer be visible")
	}
}

func TestStack_assignRejectsConstants(t *testing.T) {
	s := New()
	s.Define("PI", &Binding{DeclaredType: ast.TypeDesc{Name: "REAL"}, Value: values.Real{3.14}, Mutable: false})

	if err := s.Assign("PI", values.Real{1}); err == nil {
		t.Fatal("assigning to a constant should fail")
	}
}

func TestStack_assignRejectsWholeArrayReassignment(t *testing.T) {
	s := New()
	arr, _ := values.NewArray("INTEGER", 3)
	s.Define("a", &Binding{DeclaredType: ast.TypeDesc{Name: "ARRAY", Elem: &ast.TypeDesc{Name: "INTEGER"}}, Value: arr, Mutable: true})

	if err := s.Assign("a", arr); err == nil {
		t.Fatal("whole-array reassignment should fail; use indexed assignment")
	}
}

func TestStack_assignRejectsTypeMismatch(t *testing.T) {
	s := New()
	s.Define("x", &Binding{DeclaredType: ast.TypeDesc{Name: "INTEGER"}, Value: values.Integer{1}, Mutable: true})

	if err := s.Assign("x", values.Str{"oops"}); err == nil {
		t.Fatal("assigning a STRING to an INTEGER binding should fail")
	}
}

func TestStack_assignToUndeclaredNameFails(t *testing.T) {
	s := New()
	if err := s.Assign("missing", values.Integer{1}); err == nil {
		t.Fatal("assigning to an undeclared name should fail")
	}
}
