package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/kolkov/uscript/internal/token"
)

// Printer writes AST nodes back out as uscript source.
// The output is not textually identical to the input - binary and unary
// expressions are fully parenthesized - but re-parsing it yields a
// semantically identical AST.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the source form of the node to the writer.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

// Format returns the source form of the node as a string.
func Format(node Node) string {
	var sb strings.Builder
	_ = NewPrinter(&sb).Print(node)
	return sb.String()
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "    ")
	}
}

func (p *Printer) printNode(node Node) {
	if node == nil {
		p.printf("<nil>")
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printProgram(n)
	case Expr:
		p.printExpr(n)
	case Stmt:
		p.printStmt(n)
	default:
		p.printf("<%T>", node)
	}
}

func (p *Printer) printProgram(prog *Program) {
	for _, s := range prog.Stmts {
		p.printStmt(s)
		p.printf("\n")
	}
}

func (p *Printer) printStmt(s Stmt) {
	p.writeIndent()

	switch n := s.(type) {
	case *LetStmt:
		p.printf("let %s = ", n.Name)
		p.printExpr(n.Value)
		p.printf(";")

	case *AssignStmt:
		p.printf("%s = ", n.Name)
		p.printExpr(n.Value)
		p.printf(";")

	case *FuncStmt:
		p.printf("fn %s(%s) ", n.Name, strings.Join(n.Fn.Params, ", "))
		p.printBlock(n.Fn.Body)

	case *ReturnStmt:
		p.printf("return")
		if n.Result != nil {
			p.printf(" ")
			p.printExpr(n.Result)
		}
		p.printf(";")

	case *ExprStmt:
		p.printExpr(n.Expr)
		p.printf(";")

	default:
		p.printf("<%T>", s)
	}
}

func (p *Printer) printExpr(e Expr) {
	switch n := e.(type) {
	case *NumLit:
		if n.Raw != "" {
			p.printf("%s", n.Raw)
		} else if n.IsInt {
			p.printf("%d", n.Int)
		} else {
			p.printf("%g", n.Float)
		}

	case *StrLit:
		p.printf("%s", quote(n.Value))

	case *BoolLit:
		p.printf("%t", n.Value)

	case *NilLit:
		p.printf("nil")

	case *ArrayLit:
		p.printf("[")
		for i, el := range n.Elems {
			if i > 0 {
				p.printf(", ")
			}
			p.printExpr(el)
		}
		p.printf("]")

	case *Ident:
		p.printf("%s", n.Name)

	case *UnaryExpr:
		p.printf("(-")
		p.printExpr(n.Expr)
		p.printf(")")

	case *BinaryExpr:
		p.printf("(")
		p.printExpr(n.Left)
		p.printf(" %s ", opText(n.Op))
		p.printExpr(n.Right)
		p.printf(")")

	case *GroupExpr:
		// Binary and unary expressions are printed parenthesized already,
		// so the group itself adds nothing. Printing it transparently
		// keeps formatting idempotent.
		p.printExpr(n.Expr)

	case *CallExpr:
		p.printExpr(n.Fun)
		p.printf("(")
		for i, arg := range n.Args {
			if i > 0 {
				p.printf(", ")
			}
			p.printExpr(arg)
		}
		p.printf(")")

	case *FuncLit:
		p.printf("fn (%s) ", strings.Join(n.Params, ", "))
		p.printBlock(n.Body)

	case *BlockExpr:
		p.printBlock(n)

	case *IfExpr:
		p.printf("if (")
		p.printExpr(n.Cond)
		p.printf(") ")
		p.printBlock(n.Then)
		if n.Else != nil {
			p.printf(" else ")
			p.printBlock(n.Else)
		}

	case *WhileExpr:
		p.printf("while (")
		p.printExpr(n.Cond)
		p.printf(") ")
		p.printBlock(n.Body)

	default:
		p.printf("<%T>", e)
	}
}

func (p *Printer) printBlock(b *BlockExpr) {
	if len(b.Stmts) == 0 {
		p.printf("{}")
		return
	}

	p.printf("{\n")
	p.indent++
	for _, s := range b.Stmts {
		p.printStmt(s)
		p.printf("\n")
	}
	p.indent--
	p.writeIndent()
	p.printf("}")
}

// opText returns the source text of an operator token.
func opText(t token.Token) string {
	switch t {
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
	case token.EQUALS:
		return "=="
	case token.NOT_EQUALS:
		return "!="
	case token.LESS:
		return "<"
	case token.LTE:
		return "<="
	case token.GREATER:
		return ">"
	case token.GTE:
		return ">="
	default:
		return fmt.Sprintf("<op %d>", t)
	}
}

// quote renders s as a uscript string literal using the language's escape
// set: \n \t \r \" \\.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
