package ast

import "github.com/kolkov/uscript/internal/token"

// -----------------------------------------------------------------------------
// Literals
// -----------------------------------------------------------------------------

// NumLit represents a numeric literal.
// The lexical form decides integer versus float: a literal with a decimal
// point is a float, anything else an integer.
// Examples: 42, 3.14
type NumLit struct {
	BaseExpr
	IsInt bool    // true for integer literals
	Int   int64   // Value when IsInt
	Float float64 // Value when !IsInt
	Raw   string  // Original source text (for exact reprinting)
}

// StrLit represents a string literal.
// Examples: "hello", "line\n"
type StrLit struct {
	BaseExpr
	Value string // Unescaped string value
}

// BoolLit represents a boolean literal: true or false.
type BoolLit struct {
	BaseExpr
	Value bool
}

// NilLit represents the nil literal.
type NilLit struct {
	BaseExpr
}

// ArrayLit represents an array literal.
// Example: [1, "two", [3]]
type ArrayLit struct {
	BaseExpr
	Elems []Expr // Element expressions (may be empty)
}

// -----------------------------------------------------------------------------
// References and operations
// -----------------------------------------------------------------------------

// Ident represents an identifier reference.
type Ident struct {
	BaseExpr
	Name string // Identifier name
}

// UnaryExpr represents a unary operation.
// Example: -x
type UnaryExpr struct {
	BaseExpr
	Op   token.Token // Operator token (SUB)
	Expr Expr        // Operand
}

// BinaryExpr represents a binary operation.
// Examples: a + b, x == y
type BinaryExpr struct {
	BaseExpr
	Left  Expr        // Left operand
	Op    token.Token // Operator token
	Right Expr        // Right operand
}

// GroupExpr represents a parenthesized expression.
// Preserves explicit grouping for the printer.
// Example: (a + b)
type GroupExpr struct {
	BaseExpr
	Expr Expr // Inner expression
}

// -----------------------------------------------------------------------------
// Functions and calls
// -----------------------------------------------------------------------------

// CallExpr represents a function call.
// The callee is an arbitrary expression; it must evaluate to a function
// value at runtime.
// Examples: add(1, 2), make(5)(), (f)(x)
type CallExpr struct {
	BaseExpr
	Fun  Expr   // Callee expression
	Args []Expr // Arguments (may be empty)
}

// FuncLit represents an anonymous function literal.
// Example: fn (a, b) { return a + b; }
type FuncLit struct {
	BaseExpr
	Params   []string         // Ordered parameter names
	ParamPos []token.Position // Position of each parameter name
	Body     *BlockExpr       // Function body
}

// -----------------------------------------------------------------------------
// Compound expressions
// -----------------------------------------------------------------------------

// BlockExpr represents a brace-delimited statement sequence usable as an
// expression. Its value is the value of the final statement when that
// statement is a Tail-marked ExprStmt, nil otherwise.
type BlockExpr struct {
	BaseExpr
	Stmts []Stmt // Statements in the block (may be empty)
}

// IfExpr represents an if expression.
// Yields the chosen branch's block value, or nil when the condition is
// false and there is no else branch.
type IfExpr struct {
	BaseExpr
	Cond Expr       // Condition expression (must evaluate to a boolean)
	Then *BlockExpr // Then branch
	Else *BlockExpr // Else branch (nil if absent)
}

// WhileExpr represents a while expression.
// Yields nil by default; the evaluator can optionally collect each
// iteration's tail value into an array.
type WhileExpr struct {
	BaseExpr
	Cond Expr       // Loop condition (must evaluate to a boolean)
	Body *BlockExpr // Loop body
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Expr = (*NumLit)(nil)
	_ Expr = (*StrLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*NilLit)(nil)
	_ Expr = (*ArrayLit)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*GroupExpr)(nil)
	_ Expr = (*CallExpr)(nil)
	_ Expr = (*FuncLit)(nil)
	_ Expr = (*BlockExpr)(nil)
	_ Expr = (*IfExpr)(nil)
	_ Expr = (*WhileExpr)(nil)
)
