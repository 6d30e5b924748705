// Package ast defines the abstract syntax tree for uscript programs.
//
// The AST is split into two node families:
//
//	Node (interface)
//	├── Expr (interface) - expressions that produce values
//	│   ├── NumLit, StrLit, BoolLit, NilLit, ArrayLit - literals
//	│   ├── Ident - references
//	│   ├── UnaryExpr, BinaryExpr, GroupExpr - operations
//	│   ├── CallExpr, FuncLit - functions
//	│   └── BlockExpr, IfExpr, WhileExpr - compound expressions
//	├── Stmt (interface) - statements, which evaluate to nil
//	│   ├── LetStmt, AssignStmt, FuncStmt - bindings
//	│   └── ReturnStmt, ExprStmt - control and expression statements
//	└── Program - top-level statement sequence
//
// Statements never carry a value of their own; a block's value is the value
// of its final expression statement, which the parser marks as Tail. The
// evaluator propagates values only for Tail-marked statements, so the
// statement/expression duality is decided entirely at parse time.
package ast

import "github.com/kolkov/uscript/internal/token"

// Node is the interface implemented by all AST nodes.
// It provides source position information for error reporting.
type Node interface {
	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position

	// End returns the position of the first character immediately after this node.
	End() token.Position
}

// Expr is the interface for all expression nodes.
// Expressions are AST nodes that evaluate to a value.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
// Statements are AST nodes whose own value is always nil.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// BaseExpr provides common fields for all expression nodes.
// Embedded in concrete expression types for position tracking.
type BaseExpr struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }
func (b *BaseExpr) End() token.Position { return b.EndPos }
func (b *BaseExpr) exprNode()           {}

// BaseStmt provides common fields for all statement nodes.
// Embedded in concrete statement types for position tracking.
type BaseStmt struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseStmt) Pos() token.Position { return b.StartPos }
func (b *BaseStmt) End() token.Position { return b.EndPos }
func (b *BaseStmt) stmtNode()           {}

// MakeBaseExpr creates a BaseExpr with the given positions.
func MakeBaseExpr(start, end token.Position) BaseExpr {
	return BaseExpr{StartPos: start, EndPos: end}
}

// MakeBaseStmt creates a BaseStmt with the given positions.
func MakeBaseStmt(start, end token.Position) BaseStmt {
	return BaseStmt{StartPos: start, EndPos: end}
}
