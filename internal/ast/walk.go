package ast

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: count all identifiers
//
//	count := 0
//	ast.Walk(program, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Ident); ok {
//	        count++
//	    }
//	    return true
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, fn)
		}

	case *LetStmt:
		Walk(n.Value, fn)
	case *AssignStmt:
		Walk(n.Value, fn)
	case *FuncStmt:
		Walk(n.Fn, fn)
	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, fn)
		}
	case *ExprStmt:
		Walk(n.Expr, fn)

	case *ArrayLit:
		for _, el := range n.Elems {
			Walk(el, fn)
		}
	case *UnaryExpr:
		Walk(n.Expr, fn)
	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *GroupExpr:
		Walk(n.Expr, fn)
	case *CallExpr:
		Walk(n.Fun, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
	case *FuncLit:
		Walk(n.Body, fn)
	case *BlockExpr:
		for _, s := range n.Stmts {
			Walk(s, fn)
		}
	case *IfExpr:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		if n.Else != nil {
			Walk(n.Else, fn)
		}
	case *WhileExpr:
		Walk(n.Cond, fn)
		Walk(n.Body, fn)

	case *NumLit, *StrLit, *BoolLit, *NilLit, *Ident:
		// Leaf nodes
	}
}
