// Package ast defines the Abstract Syntax Tree node types produced by the
// parser and consumed by the evaluator. Every node reports the source line
// it was parsed from, so runtime diagnostics can always point back at the
// offending source.
package ast

import "fmt"

// Node is the base interface implemented by every AST node.
type Node interface {
	// Line returns the 1-indexed source line this node was parsed from.
	Line() int
}

// Expression is a node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action when executed.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of a parsed source file: a flat list of top-level
// statements in source order.
type Program struct {
	Statements []Statement
}

// TypeDesc describes a declared or parameter type: either a scalar type
// name (INTEGER, REAL, STRING, BOOLEAN, CHAR) or ARRAY<T>, up to two
// levels of array nesting for 2-D arrays.
type TypeDesc struct {
	Elem *TypeDesc
	Name string
}

// String renders the type the way diagnostics name it externally, e.g.
// "INTEGER" or "ARRAY<ARRAY<INTEGER>>".
func (t TypeDesc) String() string {
	if t.Elem == nil {
		return t.Name
	}
	return fmt.Sprintf("ARRAY<%s>", t.Elem.String())
}

// IsArray reports whether this descriptor denotes an array type.
func (t TypeDesc) IsArray() bool { return t.Name == "ARRAY" }

type baseNode struct{ line int }

func (n baseNode) Line() int { return n.line }

// ---- literals and variable reference ----

// NumberLit is an integer or real literal.
type NumberLit struct {
	baseNode
	Value   float64
	IsFloat bool
}

func NewNumberLit(line int, value float64, isFloat bool) *NumberLit {
	return &NumberLit{baseNode{line}, value, isFloat}
}
func (*NumberLit) expressionNode() {}

// StringLit is a string literal with escapes already resolved by the lexer.
type StringLit struct {
	baseNode
	Value string
}

func NewStringLit(line int, value string) *StringLit { return &StringLit{baseNode{line}, value} }
func (*StringLit) expressionNode()                    {}

// CharLit is a single-code-point character literal.
type CharLit struct {
	baseNode
	Value rune
}

func NewCharLit(line int, value rune) *CharLit { return &CharLit{baseNode{line}, value} }
func (*CharLit) expressionNode()                {}

// BoolLit is a TRUE/FALSE literal.
type BoolLit struct {
	baseNode
	Value bool
}

func NewBoolLit(line int, value bool) *BoolLit { return &BoolLit{baseNode{line}, value} }
func (*BoolLit) expressionNode()                {}

// VarExpr references a bound name.
type VarExpr struct {
	baseNode
	Name string
}

func NewVarExpr(line int, name string) *VarExpr { return &VarExpr{baseNode{line}, name} }
func (*VarExpr) expressionNode()                 {}

// ---- operators ----

// BinaryOp enumerates the binary expression node kinds.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	And
	Or
	Gt
	Lt
	Gte
	Lte
	Eq
	Neq
)

// BinaryExpr is any two-operand arithmetic, logical, or comparison
// expression; Op selects the node kind.
type BinaryExpr struct {
	baseNode
	Left, Right Expression
	Op          BinaryOp
}

func NewBinaryExpr(line int, op BinaryOp, left, right Expression) *BinaryExpr {
	return &BinaryExpr{baseNode{line}, left, right, op}
}
func (*BinaryExpr) expressionNode() {}

// NegExpr is unary minus.
type NegExpr struct {
	baseNode
	Operand Expression
}

func NewNegExpr(line int, operand Expression) *NegExpr { return &NegExpr{baseNode{line}, operand} }
func (*NegExpr) expressionNode()                        {}

// IndexExpr is `a[i]` or `a[i,j]`; len(Indices) is 1 or 2.
type IndexExpr struct {
	baseNode
	Target  Expression
	Indices []Expression
}

func NewIndexExpr(line int, target Expression, indices []Expression) *IndexExpr {
	return &IndexExpr{baseNode{line}, target, indices}
}
func (*IndexExpr) expressionNode() {}

// CallExpr is a function call used as an expression: `name(args)`.
type CallExpr struct {
	baseNode
	Name string
	Args []Expression
}

func NewCallExpr(line int, name string, args []Expression) *CallExpr {
	return &CallExpr{baseNode{line}, name, args}
}
func (*CallExpr) expressionNode() {}

// LengthExpr is the builtin `LENGTH(x)`.
type LengthExpr struct {
	baseNode
	Operand Expression
}

func NewLengthExpr(line int, operand Expression) *LengthExpr {
	return &LengthExpr{baseNode{line}, operand}
}
func (*LengthExpr) expressionNode() {}

// CastExpr is the builtin type-name cast `T(x)`.
type CastExpr struct {
	baseNode
	TargetType string
	Operand    Expression
}

func NewCastExpr(line int, targetType string, operand Expression) *CastExpr {
	return &CastExpr{baseNode{line}, targetType, operand}
}
func (*CastExpr) expressionNode() {}
