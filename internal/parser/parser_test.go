package parser_test

import (
	"strings"
	"testing"

	"github.com/kolkov/uscript/internal/ast"
	"github.com/kolkov/uscript/internal/parser"
)

// TestParseEmpty tests parsing an empty program.
func TestParseEmpty(t *testing.T) {
	prog, err := parser.Parse("")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if prog == nil {
		t.Fatal("Parse() returned nil program")
	}
	if len(prog.Stmts) != 0 {
		t.Errorf("Stmts = %d, want 0", len(prog.Stmts))
	}
}

// TestParseStatements tests statement dispatch and counts.
func TestParseStatements(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantStmts int
	}{
		{"let", "let x = 1;", 1},
		{"assign", "let x = 1; x = 2;", 2},
		{"function definition", "fn f(a, b) { a + b }", 1},
		{"return", "return 1;", 1},
		{"bare return", "return;", 1},
		{"expression with semicolon", "1 + 2;", 1},
		{"bare tail expression", "1 + 2", 1},
		{"block statement", "{ let x = 1; x }", 1},
		{"if statement", "if (true) { 1 }", 1},
		{"if else", "if (true) { 1 } else { 2 }", 1},
		{"while statement", "while (false) { 1 }", 1},
		{"function literal expression", "fn (x) { x }", 1},
		{"call", "f(1, 2);", 1},
		{"array literal", "[1, 2, 3];", 1},
		{"empty array", "[];", 1},
		{"no semicolon after block expr", "{ 1 } print(2);", 2},
		{"semicolon after block expr", "{ 1 }; print(2);", 2},
		{"comments only", "// a\n/* b */", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parser.Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.src, err)
			}
			if len(prog.Stmts) != tt.wantStmts {
				t.Errorf("Stmts = %d, want %d", len(prog.Stmts), tt.wantStmts)
			}
		})
	}
}

// TestParseStatementTypes tests that statements produce the right node types.
func TestParseStatementTypes(t *testing.T) {
	prog, err := parser.Parse(`
		let x = 1;
		x = 2;
		fn f(a) { a }
		return x;
	`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(prog.Stmts) != 4 {
		t.Fatalf("Stmts = %d, want 4", len(prog.Stmts))
	}
	if _, ok := prog.Stmts[0].(*ast.LetStmt); !ok {
		t.Errorf("Stmts[0] = %T, want *ast.LetStmt", prog.Stmts[0])
	}
	if _, ok := prog.Stmts[1].(*ast.AssignStmt); !ok {
		t.Errorf("Stmts[1] = %T, want *ast.AssignStmt", prog.Stmts[1])
	}
	if _, ok := prog.Stmts[2].(*ast.FuncStmt); !ok {
		t.Errorf("Stmts[2] = %T, want *ast.FuncStmt", prog.Stmts[2])
	}
	if _, ok := prog.Stmts[3].(*ast.ReturnStmt); !ok {
		t.Errorf("Stmts[3] = %T, want *ast.ReturnStmt", prog.Stmts[3])
	}
}

// TestParsePrecedence checks operator precedence and associativity via
// the parenthesized printer form.
func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"8 / 4 / 2", "((8 / 4) / 2)"},
		{"1 + 2 % 3", "(1 + (2 % 3))"},
		{"1 < 2 == true", "((1 < 2) == true)"},
		{"1 + 2 < 3 + 4", "((1 + 2) < (3 + 4))"},
		{"a == b != c", "((a == b) != c)"},
		{"-2 * 3", "((-2) * 3)"},
		{"-f(x)", "(-f(x))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"f(x)(y)", "f(x)(y)"},
		{"1 <= 2 >= 3", "((1 <= 2) >= 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expr, err := parser.ParseExpr(tt.src)
			if err != nil {
				t.Fatalf("ParseExpr(%q) error = %v", tt.src, err)
			}
			if got := ast.Format(expr); got != tt.want {
				t.Errorf("Format = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestParseNumLit tests the integer/float split of number literals.
func TestParseNumLit(t *testing.T) {
	tests := []struct {
		src     string
		wantInt bool
	}{
		{"42", true},
		{"0", true},
		{"2.5", false},
		{"5.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expr, err := parser.ParseExpr(tt.src)
			if err != nil {
				t.Fatalf("ParseExpr(%q) error = %v", tt.src, err)
			}
			lit, ok := expr.(*ast.NumLit)
			if !ok {
				t.Fatalf("expr = %T, want *ast.NumLit", expr)
			}
			if lit.IsInt != tt.wantInt {
				t.Errorf("IsInt = %v, want %v", lit.IsInt, tt.wantInt)
			}
		})
	}
}

// TestParseTailMarking tests that final expression statements are marked
// as tails, with or without a trailing semicolon.
func TestParseTailMarking(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"bare tail", "1; 2", true},
		{"tail with semicolon", "1; 2;", true},
		{"let is never a tail", "1; let x = 2;", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parser.Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.src, err)
			}
			last := prog.Stmts[len(prog.Stmts)-1]
			es, ok := last.(*ast.ExprStmt)
			if !ok {
				if tt.want {
					t.Fatalf("last stmt = %T, want *ast.ExprStmt", last)
				}
				return
			}
			if es.Tail != tt.want {
				t.Errorf("Tail = %v, want %v", es.Tail, tt.want)
			}
		})
	}
}

// TestParseBlockTail tests tail marking inside blocks.
func TestParseBlockTail(t *testing.T) {
	prog, err := parser.Parse("{ 1; 2; 3 }")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	block := prog.Stmts[0].(*ast.ExprStmt).Expr.(*ast.BlockExpr)
	for i, s := range block.Stmts {
		es := s.(*ast.ExprStmt)
		want := i == len(block.Stmts)-1
		if es.Tail != want {
			t.Errorf("stmt %d: Tail = %v, want %v", i, es.Tail, want)
		}
	}
}

// TestParseClosureBody tests that a trailing function literal is the
// body's tail so closures escape their constructors.
func TestParseClosureBody(t *testing.T) {
	prog, err := parser.Parse(`
		fn make(x) {
			fn () { return x; }
		}
	`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	fs := prog.Stmts[0].(*ast.FuncStmt)
	body := fs.Fn.Body.Stmts
	es, ok := body[len(body)-1].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("body tail = %T, want *ast.ExprStmt", body[len(body)-1])
	}
	if !es.Tail {
		t.Error("function literal in tail position should be marked Tail")
	}
	if _, ok := es.Expr.(*ast.FuncLit); !ok {
		t.Errorf("tail expr = %T, want *ast.FuncLit", es.Expr)
	}
}

// TestParseElseIf tests that else-if chains desugar into nested if
// expressions in tail position of the else block.
func TestParseElseIf(t *testing.T) {
	prog, err := parser.Parse("if (a) { 1 } else if (b) { 2 } else { 3 }")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	outer := prog.Stmts[0].(*ast.ExprStmt).Expr.(*ast.IfExpr)
	if outer.Else == nil || len(outer.Else.Stmts) != 1 {
		t.Fatal("else block should hold exactly the nested if")
	}
	es := outer.Else.Stmts[0].(*ast.ExprStmt)
	if !es.Tail {
		t.Error("nested if should be the else block's tail")
	}
	if _, ok := es.Expr.(*ast.IfExpr); !ok {
		t.Errorf("nested expr = %T, want *ast.IfExpr", es.Expr)
	}
}

// TestParseErrors tests rejection of malformed programs.
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
		wantLex bool
	}{
		{"missing semicolon after let", "let x = 1 let y = 2;", "expected ;", false},
		{"missing expression", "let x = ;", "expected expression", false},
		{"missing let name", "let = 1;", "expected name", false},
		{"missing close paren", "(1 + 2", "expected )", false},
		{"missing close bracket", "[1, 2", "expected ]", false},
		{"missing close brace", "{ 1; ", "expected }", false},
		{"if without parens", "if true { 1 }", "expected (", false},
		{"fn missing body", "fn f(a);", "expected {", false},
		{"fn missing param name", "fn f(1) { 1 }", "expected name", false},
		{"dangling binary", "1 +", "expected expression", false},
		{"call missing comma", "f(1 2);", "expected ,", false},
		{"unterminated string", `"abc`, "unterminated string", true},
		{"invalid escape", `"a\q"`, "invalid escape", true},
		{"invalid number", "1.2.3", "invalid number", true},
		{"unterminated comment", "/* abc", "unterminated comment", true},
		{"unexpected character", "1 ? 2", "unexpected character", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.src)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}

			var first *parser.ParseError
			switch e := err.(type) {
			case *parser.ParseError:
				first = e
			case parser.ErrorList:
				first = e[0]
			default:
				t.Fatalf("error type = %T", err)
			}
			if first.Lex != tt.wantLex {
				t.Errorf("Lex = %v, want %v", first.Lex, tt.wantLex)
			}
			if !first.Pos.IsValid() {
				t.Error("error should carry a position")
			}
		})
	}
}

// TestParseErrorPosition tests exact error positions.
func TestParseErrorPosition(t *testing.T) {
	_, err := parser.Parse("let x = 1;\nlet y = ;")
	if err == nil {
		t.Fatal("Parse() should fail")
	}
	el, ok := err.(parser.ErrorList)
	if !ok {
		t.Fatalf("error type = %T, want parser.ErrorList", err)
	}
	if el[0].Pos.Line != 2 {
		t.Errorf("Line = %d, want 2", el[0].Pos.Line)
	}
	if el[0].Pos.Column != 9 {
		t.Errorf("Column = %d, want 9", el[0].Pos.Column)
	}
}

// TestParseExprRejectsTrailing tests that ParseExpr requires the whole
// input to be one expression.
func TestParseExprRejectsTrailing(t *testing.T) {
	if _, err := parser.ParseExpr("1 + 2; 3"); err == nil {
		t.Error("ParseExpr should reject trailing tokens")
	}
}
