// Package interp implements the tree-walking evaluator for uscript.
//
// An Interp owns the host I/O boundary and the root environment with
// the builtin bindings. Each Run executes a parsed program in a fresh
// global scope, so one Interp can run many programs and one program can
// run on many Interps.
package interp

import (
	"bufio"
	"io"

	"github.com/kolkov/uscript/internal/ast"
	"github.com/kolkov/uscript/internal/token"
	"github.com/kolkov/uscript/internal/value"
)

// Interp evaluates parsed programs against a host I/O boundary.
type Interp struct {
	root         *value.Environment // Builtin bindings, parent of every global scope
	stdin        *bufio.Reader
	output       io.Writer
	collectWhile bool
}

// Option configures an Interp.
type Option func(*Interp)

// WithCollectWhileValues makes while loops evaluate to an array of each
// iteration's value instead of nil.
func WithCollectWhileValues() Option {
	return func(in *Interp) {
		in.collectWhile = true
	}
}

// New creates an interpreter reading builtin input from input and
// writing builtin output to output.
func New(input io.Reader, output io.Writer, opts ...Option) *Interp {
	in := &Interp{
		root:   value.NewEnvironment(),
		stdin:  bufio.NewReader(input),
		output: output,
	}
	for _, opt := range opts {
		opt(in)
	}
	in.installBuiltins()
	return in
}

// returnValue is the unwinding sentinel for return statements. It
// travels the error path from the return site to the enclosing call
// frame (or to Run, for a top-level return).
type returnValue struct {
	val value.Value
}

func (r *returnValue) Error() string {
	return "return outside function"
}

// Run executes a program in a fresh global scope. The result is the
// value of the program's final expression statement, or nil; a
// top-level return ends the run with the returned value.
func (in *Interp) Run(prog *ast.Program) (value.Value, error) {
	globals := value.NewEnclosed(in.root)
	v, err := in.execStmts(prog.Stmts, globals)
	if ret, ok := err.(*returnValue); ok {
		return ret.val, nil
	}
	if err != nil {
		return value.Nil(), err
	}
	return v, nil
}

// execStmts executes statements in order and returns the value of the
// final tail-marked expression statement, or nil.
func (in *Interp) execStmts(stmts []ast.Stmt, env *value.Environment) (value.Value, error) {
	result := value.Nil()
	for _, s := range stmts {
		v, err := in.execStmt(s, env)
		if err != nil {
			return value.Nil(), err
		}
		result = v
	}
	return result, nil
}

func (in *Interp) execStmt(s ast.Stmt, env *value.Environment) (value.Value, error) {
	switch n := s.(type) {
	case *ast.LetStmt:
		v, err := in.eval(n.Value, env)
		if err != nil {
			return value.Nil(), err
		}
		env.Define(n.Name, v)
		return value.Nil(), nil

	case *ast.AssignStmt:
		v, err := in.eval(n.Value, env)
		if err != nil {
			return value.Nil(), err
		}
		if !env.Assign(n.Name, v) {
			return value.Nil(), errorf(NameError, n.NamePos, "undefined variable %q", n.Name)
		}
		return value.Nil(), nil

	case *ast.FuncStmt:
		fn := &value.Func{
			Name:   n.Name,
			Params: n.Fn.Params,
			Body:   n.Fn.Body,
			Env:    env,
		}
		env.Define(n.Name, value.FuncVal(fn))
		return value.Nil(), nil

	case *ast.ReturnStmt:
		v := value.Nil()
		if n.Result != nil {
			var err error
			v, err = in.eval(n.Result, env)
			if err != nil {
				return value.Nil(), err
			}
		}
		return value.Nil(), &returnValue{val: v}

	case *ast.ExprStmt:
		v, err := in.eval(n.Expr, env)
		if err != nil {
			return value.Nil(), err
		}
		if n.Tail {
			return v, nil
		}
		return value.Nil(), nil

	default:
		return value.Nil(), errorf(TypeError, s.Pos(), "unexpected statement")
	}
}

func (in *Interp) eval(e ast.Expr, env *value.Environment) (value.Value, error) {
	switch n := e.(type) {
	case *ast.NumLit:
		if n.IsInt {
			return value.IntVal(n.Int), nil
		}
		return value.FloatVal(n.Float), nil

	case *ast.StrLit:
		return value.Str(n.Value), nil

	case *ast.BoolLit:
		return value.Bool(n.Value), nil

	case *ast.NilLit:
		return value.Nil(), nil

	case *ast.ArrayLit:
		elems := make([]value.Value, len(n.Elems))
		for i, el := range n.Elems {
			v, err := in.eval(el, env)
			if err != nil {
				return value.Nil(), err
			}
			elems[i] = v
		}
		return value.NewArray(elems), nil

	case *ast.Ident:
		v, ok := env.Get(n.Name)
		if !ok {
			return value.Nil(), errorf(NameError, n.Pos(), "undefined variable %q", n.Name)
		}
		return v, nil

	case *ast.UnaryExpr:
		return in.evalUnary(n, env)

	case *ast.BinaryExpr:
		return in.evalBinary(n, env)

	case *ast.GroupExpr:
		return in.eval(n.Expr, env)

	case *ast.CallExpr:
		return in.evalCall(n, env)

	case *ast.FuncLit:
		fn := &value.Func{
			Params: n.Params,
			Body:   n.Body,
			Env:    env,
		}
		return value.FuncVal(fn), nil

	case *ast.BlockExpr:
		return in.execStmts(n.Stmts, value.NewEnclosed(env))

	case *ast.IfExpr:
		return in.evalIf(n, env)

	case *ast.WhileExpr:
		return in.evalWhile(n, env)

	default:
		return value.Nil(), errorf(TypeError, e.Pos(), "unexpected expression")
	}
}

func (in *Interp) evalUnary(n *ast.UnaryExpr, env *value.Environment) (value.Value, error) {
	v, err := in.eval(n.Expr, env)
	if err != nil {
		return value.Nil(), err
	}
	if v.Kind() != value.KindNum {
		return value.Nil(), errorf(TypeError, n.Pos(), "cannot negate %s", v.Kind())
	}
	return value.Num(v.AsNum().Neg()), nil
}

func (in *Interp) evalBinary(n *ast.BinaryExpr, env *value.Environment) (value.Value, error) {
	left, err := in.eval(n.Left, env)
	if err != nil {
		return value.Nil(), err
	}
	right, err := in.eval(n.Right, env)
	if err != nil {
		return value.Nil(), err
	}

	switch n.Op {
	case token.EQUALS:
		return value.Bool(value.Equal(left, right)), nil
	case token.NOT_EQUALS:
		return value.Bool(!value.Equal(left, right)), nil
	}

	// + concatenates strings and appends to arrays; everything else
	// below is numeric or an ordered comparison.
	if n.Op == token.ADD {
		switch {
		case left.Kind() == value.KindStr && right.Kind() == value.KindStr:
			return value.Str(left.AsStr() + right.AsStr()), nil
		case left.Kind() == value.KindArray:
			old := left.AsArray().Elems
			elems := make([]value.Value, len(old), len(old)+1)
			copy(elems, old)
			return value.NewArray(append(elems, right)), nil
		}
	}

	if left.Kind() == value.KindStr && right.Kind() == value.KindStr {
		switch n.Op {
		case token.LESS:
			return value.Bool(left.AsStr() < right.AsStr()), nil
		case token.LTE:
			return value.Bool(left.AsStr() <= right.AsStr()), nil
		case token.GREATER:
			return value.Bool(left.AsStr() > right.AsStr()), nil
		case token.GTE:
			return value.Bool(left.AsStr() >= right.AsStr()), nil
		}
	}

	if left.Kind() != value.KindNum || right.Kind() != value.KindNum {
		return value.Nil(), errorf(TypeError, n.Pos(),
			"unsupported operand types for %s: %s and %s", opText(n.Op), left.Kind(), right.Kind())
	}
	a, b := left.AsNum(), right.AsNum()

	switch n.Op {
	case token.ADD:
		return value.Num(a.Add(b)), nil
	case token.SUB:
		return value.Num(a.Sub(b)), nil
	case token.MUL:
		return value.Num(a.Mul(b)), nil
	case token.DIV:
		q, err := a.Div(b)
		if err != nil {
			return value.Nil(), errorf(ArithmeticError, n.Pos(), "division by zero")
		}
		return value.Num(q), nil
	case token.MOD:
		m, err := a.Mod(b)
		if err != nil {
			return value.Nil(), errorf(ArithmeticError, n.Pos(), "modulo by zero")
		}
		return value.Num(m), nil
	case token.LESS:
		return value.Bool(a.Cmp(b) < 0), nil
	case token.LTE:
		return value.Bool(a.Cmp(b) <= 0), nil
	case token.GREATER:
		return value.Bool(a.Cmp(b) > 0), nil
	case token.GTE:
		return value.Bool(a.Cmp(b) >= 0), nil
	default:
		return value.Nil(), errorf(TypeError, n.Pos(), "unsupported operator %s", opText(n.Op))
	}
}

func opText(op token.Token) string {
	switch op {
	case token.ADD:
		return "+"
	case token.SUB:
		return "-"
	case token.MUL:
		return "*"
	case token.DIV:
		return "/"
	case token.MOD:
		return "%"
	case token.LESS:
		return "<"
	case token.LTE:
		return "<="
	case token.GREATER:
		return ">"
	case token.GTE:
		return ">="
	default:
		return op.String()
	}
}

func (in *Interp) evalCall(n *ast.CallExpr, env *value.Environment) (value.Value, error) {
	callee, err := in.eval(n.Fun, env)
	if err != nil {
		return value.Nil(), err
	}
	if callee.Kind() != value.KindFunc {
		return value.Nil(), errorf(TypeError, n.Pos(), "%s is not callable", callee.Kind())
	}

	args := make([]value.Value, len(n.Args))
	for i, arg := range n.Args {
		v, err := in.eval(arg, env)
		if err != nil {
			return value.Nil(), err
		}
		args[i] = v
	}
	return in.call(callee.AsFunc(), args, n.Pos())
}

// call invokes a function value with already-evaluated arguments.
// pos is the call site, used for arity and builtin errors.
func (in *Interp) call(fn *value.Func, args []value.Value, pos token.Position) (value.Value, error) {
	if !fn.Variadic && len(args) != len(fn.Params) {
		name := fn.Name
		if name == "" {
			name = "function"
		}
		return value.Nil(), errorf(ArityError, pos,
			"%s expects %d argument(s), got %d", name, len(fn.Params), len(args))
	}

	if fn.Builtin != nil {
		v, err := fn.Builtin(args)
		if err != nil {
			if rerr, ok := err.(*Error); ok {
				if !rerr.Pos.IsValid() {
					rerr.Pos = pos
				}
				return value.Nil(), rerr
			}
			return value.Nil(), errorf(IOError, pos, "%s: %v", fn.Name, err)
		}
		return v, nil
	}

	// The frame's parent is the environment captured at the definition
	// site, not the caller's: lexical scoping.
	frame := value.NewEnclosed(fn.Env)
	for i, name := range fn.Params {
		frame.Define(name, args[i])
	}

	v, err := in.execStmts(fn.Body.Stmts, frame)
	if ret, ok := err.(*returnValue); ok {
		return ret.val, nil
	}
	if err != nil {
		return value.Nil(), err
	}
	return v, nil
}

func (in *Interp) evalIf(n *ast.IfExpr, env *value.Environment) (value.Value, error) {
	cond, err := in.eval(n.Cond, env)
	if err != nil {
		return value.Nil(), err
	}
	if cond.Kind() != value.KindBool {
		return value.Nil(), errorf(TypeError, n.Cond.Pos(), "if condition must be a boolean, got %s", cond.Kind())
	}
	if cond.AsBool() {
		return in.execStmts(n.Then.Stmts, value.NewEnclosed(env))
	}
	if n.Else != nil {
		return in.execStmts(n.Else.Stmts, value.NewEnclosed(env))
	}
	return value.Nil(), nil
}

func (in *Interp) evalWhile(n *ast.WhileExpr, env *value.Environment) (value.Value, error) {
	var collected []value.Value
	for {
		cond, err := in.eval(n.Cond, env)
		if err != nil {
			return value.Nil(), err
		}
		if cond.Kind() != value.KindBool {
			return value.Nil(), errorf(TypeError, n.Cond.Pos(), "while condition must be a boolean, got %s", cond.Kind())
		}
		if !cond.AsBool() {
			break
		}
		// Fresh scope per iteration so let bindings do not leak across
		// iterations.
		v, err := in.execStmts(n.Body.Stmts, value.NewEnclosed(env))
		if err != nil {
			return value.Nil(), err
		}
		if in.collectWhile {
			collected = append(collected, v)
		}
	}
	if in.collectWhile {
		return value.NewArray(collected), nil
	}
	return value.Nil(), nil
}
