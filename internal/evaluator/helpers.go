package evaluator

import (
	"github.com/jeff-160/Pseudocode-Interpreter/internal/ast"
	"github.com/jeff-160/Pseudocode-Interpreter/internal/token"
)

// pos builds the token.Position a *errors.RuntimeError needs from any AST
// node's line number. Column tracking stops at the lexer; the evaluator
// only ever needs the line to format the <file>:<line> diagnostic.
func pos(n ast.Node) token.Position {
	return token.Position{Line: n.Line()}
}
