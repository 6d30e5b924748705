package ast

import "github.com/kolkov/uscript/internal/token"

// LetStmt represents a let declaration.
// Creates a new binding in the current scope.
// Example: let x = 1;
type LetStmt struct {
	BaseStmt
	Name    string         // Declared name
	NamePos token.Position // Position of the name
	Value   Expr           // Initializer expression
}

// AssignStmt represents an assignment to an existing binding.
// Mutates the nearest enclosing scope that declares the name.
// Example: x = x + 1;
type AssignStmt struct {
	BaseStmt
	Name    string         // Target name
	NamePos token.Position // Position of the name
	Value   Expr           // Value expression
}

// FuncStmt represents a named function definition.
// Sugar for a let binding of a function literal.
// Example: fn add(a, b) { return a + b; }
type FuncStmt struct {
	BaseStmt
	Name    string         // Function name
	NamePos token.Position // Position of the name
	Fn      *FuncLit       // The function literal
}

// ReturnStmt represents a return statement.
// Short-circuits the remaining statements of the current call frame.
// Examples: return; return x + 1;
type ReturnStmt struct {
	BaseStmt
	Result Expr // Result expression (nil means return nil)
}

// ExprStmt represents an expression used as a statement.
// Its own value is nil unless it is the Tail statement of a block
// evaluated in expression position.
type ExprStmt struct {
	BaseStmt
	Expr Expr // Expression to evaluate
	Tail bool // true for the final expression statement of a block
}

// Program represents a complete uscript program: an ordered sequence of
// top-level statements. A Tail-marked final expression statement becomes
// the program's result value.
type Program struct {
	// Top-level statements, executed in order.
	Stmts []Stmt

	// Position information for the entire program.
	StartPos token.Position
	EndPos   token.Position
}

// Pos returns the position of the first token in the program.
func (p *Program) Pos() token.Position { return p.StartPos }

// End returns the position after the last token in the program.
func (p *Program) End() token.Position { return p.EndPos }

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Stmt = (*LetStmt)(nil)
	_ Stmt = (*AssignStmt)(nil)
	_ Stmt = (*FuncStmt)(nil)
	_ Stmt = (*ReturnStmt)(nil)
	_ Stmt = (*ExprStmt)(nil)
	_ Node = (*Program)(nil)
)
