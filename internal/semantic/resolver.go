package semantic

import (
	"github.com/kolkov/uscript/internal/ast"
)

// Check runs the static checks over a parsed program.
// builtins is the set of names bound in the interpreter's root
// environment; those bindings are not reassignable.
//
// Checks performed:
//   - duplicate parameter names in a function
//   - assignment to a builtin name that no enclosing lexical scope shadows
//
// Assignment to a name with no lexical binding at all is left to the
// runtime, which reports it as a name error.
func Check(prog *ast.Program, builtins []string) []*Error {
	r := &resolver{builtins: make(map[string]bool, len(builtins))}
	for _, name := range builtins {
		r.builtins[name] = true
	}

	r.checkParams(prog)

	r.push()
	r.stmts(prog.Stmts)
	r.pop()

	return r.errors
}

// resolver tracks the stack of lexical scopes during the walk.
// Scoping in uscript is purely lexical, so declarations can be resolved
// statically even though lookups happen at runtime.
type resolver struct {
	scopes   []map[string]bool // Declared names, innermost scope last
	builtins map[string]bool   // Root-environment builtin names
	errors   []*Error
}

func (r *resolver) push() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *resolver) pop() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) declare(name string) {
	r.scopes[len(r.scopes)-1][name] = true
}

// declared returns true if name is bound in any enclosing lexical scope.
func (r *resolver) declared(name string) bool {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if r.scopes[i][name] {
			return true
		}
	}
	return false
}

// checkParams reports duplicate parameter names in every function literal.
func (r *resolver) checkParams(prog *ast.Program) {
	ast.Walk(prog, func(n ast.Node) bool {
		fn, ok := n.(*ast.FuncLit)
		if !ok {
			return true
		}
		seen := make(map[string]bool, len(fn.Params))
		for i, name := range fn.Params {
			if seen[name] {
				r.errors = append(r.errors, errorf(fn.ParamPos[i], "duplicate parameter %q", name))
			}
			seen[name] = true
		}
		return true
	})
}

func (r *resolver) stmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.stmt(s)
	}
}

func (r *resolver) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.LetStmt:
		r.expr(n.Value)
		r.declare(n.Name)

	case *ast.AssignStmt:
		r.expr(n.Value)
		if !r.declared(n.Name) && r.builtins[n.Name] {
			r.errors = append(r.errors, errorf(n.NamePos, "cannot assign to builtin %q", n.Name))
		}

	case *ast.FuncStmt:
		// The name is visible inside the body: recursion.
		r.declare(n.Name)
		r.funcLit(n.Fn)

	case *ast.ReturnStmt:
		if n.Result != nil {
			r.expr(n.Result)
		}

	case *ast.ExprStmt:
		r.expr(n.Expr)
	}
}

func (r *resolver) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.ArrayLit:
		for _, el := range n.Elems {
			r.expr(el)
		}
	case *ast.UnaryExpr:
		r.expr(n.Expr)
	case *ast.BinaryExpr:
		r.expr(n.Left)
		r.expr(n.Right)
	case *ast.GroupExpr:
		r.expr(n.Expr)
	case *ast.CallExpr:
		r.expr(n.Fun)
		for _, arg := range n.Args {
			r.expr(arg)
		}
	case *ast.FuncLit:
		r.funcLit(n)
	case *ast.BlockExpr:
		r.block(n)
	case *ast.IfExpr:
		r.expr(n.Cond)
		r.block(n.Then)
		if n.Else != nil {
			r.block(n.Else)
		}
	case *ast.WhileExpr:
		r.expr(n.Cond)
		r.block(n.Body)
	}
}

func (r *resolver) block(b *ast.BlockExpr) {
	r.push()
	r.stmts(b.Stmts)
	r.pop()
}

func (r *resolver) funcLit(fn *ast.FuncLit) {
	r.push()
	for _, name := range fn.Params {
		r.declare(name)
	}
	r.stmts(fn.Body.Stmts)
	r.pop()
}
