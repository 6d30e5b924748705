package parser

import (
	"fmt"
	"strconv"

	"github.com/kolkov/uscript/internal/ast"
	"github.com/kolkov/uscript/internal/lexer"
	"github.com/kolkov/uscript/internal/token"
)

// tokenName returns a human-readable name for a token type.
func tokenName(t token.Token) string {
	switch t {
	case token.ILLEGAL:
		return "illegal"
	case token.EOF:
		return "end of file"
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
	case token.ASSIGN:
		return "="
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
	case token.LPAREN:
		return "("
	case token.RPAREN:
		return ")"
	case token.LBRACE:
		return "{"
	case token.RBRACE:
		return "}"
	case token.LBRACKET:
		return "["
	case token.RBRACKET:
		return "]"
	case token.COMMA:
		return ","
	case token.SEMICOLON:
		return ";"
	case token.LET:
		return "let"
	case token.FN:
		return "fn"
	case token.IF:
		return "if"
	case token.ELSE:
		return "else"
	case token.WHILE:
		return "while"
	case token.RETURN:
		return "return"
	case token.TRUE:
		return "true"
	case token.FALSE:
		return "false"
	case token.NIL:
		return "nil"
	case token.NAME:
		return "name"
	case token.NUMBER:
		return "number"
	case token.STRING:
		return "string"
	default:
		return fmt.Sprintf("token(%d)", t)
	}
}

// Operator precedence, lowest to highest. Zero means "not a binary operator".
func binaryPrec(t token.Token) int {
	switch t {
	case token.EQUALS, token.NOT_EQUALS:
		return 1
	case token.LESS, token.LTE, token.GREATER, token.GTE:
		return 2
	case token.ADD, token.SUB:
		return 3
	case token.MUL, token.DIV, token.MOD:
		return 4
	default:
		return 0
	}
}

// Parser is a recursive descent parser for uscript programs.
type Parser struct {
	lexer   *lexer.Lexer // Lexer instance
	tok     lexer.Token  // Current token
	peekTok lexer.Token  // One token of lookahead (statement disambiguation)
	errors  ErrorList    // Accumulated errors
}

// bailout is panicked to abort parsing after an unrecoverable error.
// Recovered in parse entry points.
type bailout struct{}

// Parse parses a uscript program from source code.
func Parse(src string) (*ast.Program, error) {
	return ParseBytes([]byte(src))
}

// ParseBytes parses a uscript program from a byte slice.
func ParseBytes(src []byte) (prog *ast.Program, err error) {
	p := newParser(src)
	defer p.recoverBailout(&err)

	prog = p.parseProgram()

	if e := p.errors.Err(); e != nil {
		return nil, e
	}
	return prog, nil
}

// ParseExpr parses a single expression (useful for testing).
func ParseExpr(src string) (expr ast.Expr, err error) {
	p := newParser([]byte(src))
	defer p.recoverBailout(&err)

	expr = p.parseExpr()
	if p.tok.Type != token.EOF {
		p.fail(expectedError(p.tok.Pos, "end of file", p.tokenDesc()))
	}

	if e := p.errors.Err(); e != nil {
		return nil, e
	}
	return expr, nil
}

func newParser(src []byte) *Parser {
	p := &Parser{lexer: lexer.New(src)}
	// Fill the two-token window.
	p.next()
	p.next()
	return p
}

func (p *Parser) recoverBailout(err *error) {
	if r := recover(); r != nil {
		if _, ok := r.(bailout); !ok {
			panic(r)
		}
		*err = p.errors.Err()
	}
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next advances to the next token.
func (p *Parser) next() {
	p.tok = p.peekTok
	p.peekTok = p.lexer.Scan()
}

// expect checks that the current token is tok and advances.
// If not, it aborts with an error.
func (p *Parser) expect(tok token.Token) {
	if p.tok.Type != tok {
		p.fail(expectedError(p.tok.Pos, tokenName(tok), p.tokenDesc()))
	}
	p.next()
}

// expectName expects a NAME token and returns its value and position.
func (p *Parser) expectName() (string, token.Position) {
	name := p.tok.Value
	pos := p.tok.Pos
	p.expect(token.NAME)
	return name, pos
}

// match returns true if the current token matches any of the given types.
func (p *Parser) match(types ...token.Token) bool {
	for _, t := range types {
		if p.tok.Type == t {
			return true
		}
	}
	return false
}

// tokenDesc returns a description of the current token for error messages.
func (p *Parser) tokenDesc() string {
	switch p.tok.Type {
	case token.NAME, token.NUMBER:
		return p.tok.Value
	case token.STRING:
		return strconv.Quote(p.tok.Value)
	case token.ILLEGAL:
		// ILLEGAL token's Value contains the actual error message
		return p.tok.Value
	case token.EOF:
		return "end of file"
	default:
		return tokenName(p.tok.Type)
	}
}

// fail records a parse error and aborts parsing.
// A lexical error on the current token takes precedence over the
// grammatical one, so malformed tokens surface as lex errors.
func (p *Parser) fail(err *ParseError) {
	if p.tok.Type == token.ILLEGAL {
		err = lexError(p.tok.Pos, p.tok.Value)
	}
	p.errors = append(p.errors, err)
	panic(bailout{})
}

// failf records a formatted parse error at the current position and aborts.
func (p *Parser) failf(format string, args ...any) {
	p.fail(errorf(p.tok.Pos, format, args...))
}

// -----------------------------------------------------------------------------
// Program and statements
// -----------------------------------------------------------------------------

// parseProgram parses a complete program: statements until end of file.
// The final statement, if an expression statement, is marked as the
// program's tail and becomes the run's result value.
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{StartPos: p.tok.Pos}

	for p.tok.Type != token.EOF {
		prog.Stmts = append(prog.Stmts, p.parseStmt())
	}
	markTail(prog.Stmts)

	prog.EndPos = p.tok.Pos
	return prog
}

// markTail marks the final statement of a statement list as being in tail
// position when it is an expression statement. The evaluator propagates
// values only for tail-marked statements.
func markTail(stmts []ast.Stmt) {
	if len(stmts) == 0 {
		return
	}
	if es, ok := stmts[len(stmts)-1].(*ast.ExprStmt); ok {
		es.Tail = true
	}
}

// parseStmt parses a single statement. Statements are recognized by their
// leading keyword (let, fn, return); a name followed by = is an assignment;
// anything else is an expression statement.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok.Type {
	case token.LET:
		return p.parseLetStmt()

	case token.FN:
		// "fn name(...)" declares a function; "fn (...)" starts a
		// function literal expression.
		if p.peekTok.Type == token.NAME {
			return p.parseFuncStmt()
		}
		return p.parseExprStmt()

	case token.RETURN:
		return p.parseReturnStmt()

	case token.NAME:
		if p.peekTok.Type == token.ASSIGN {
			return p.parseAssignStmt()
		}
		return p.parseExprStmt()

	default:
		return p.parseExprStmt()
	}
}

// parseLetStmt parses: "let" NAME "=" expression ";"
func (p *Parser) parseLetStmt() ast.Stmt {
	startPos := p.tok.Pos
	p.expect(token.LET)

	name, namePos := p.expectName()
	p.expect(token.ASSIGN)
	value := p.parseExpr()
	endPos := p.tok.Pos
	p.expect(token.SEMICOLON)

	return &ast.LetStmt{
		BaseStmt: ast.MakeBaseStmt(startPos, endPos),
		Name:     name,
		NamePos:  namePos,
		Value:    value,
	}
}

// parseAssignStmt parses: NAME "=" expression ";"
func (p *Parser) parseAssignStmt() ast.Stmt {
	name, namePos := p.expectName()
	p.expect(token.ASSIGN)
	value := p.parseExpr()
	endPos := p.tok.Pos
	p.expect(token.SEMICOLON)

	return &ast.AssignStmt{
		BaseStmt: ast.MakeBaseStmt(namePos, endPos),
		Name:     name,
		NamePos:  namePos,
		Value:    value,
	}
}

// parseFuncStmt parses: "fn" NAME "(" params? ")" block
// A named function definition is sugar for a let binding of a function
// literal; the evaluator treats it exactly that way.
func (p *Parser) parseFuncStmt() ast.Stmt {
	startPos := p.tok.Pos
	p.expect(token.FN)
	name, namePos := p.expectName()

	fn := p.parseFuncRest(startPos)

	return &ast.FuncStmt{
		BaseStmt: ast.MakeBaseStmt(startPos, fn.End()),
		Name:     name,
		NamePos:  namePos,
		Fn:       fn,
	}
}

// parseReturnStmt parses: "return" expression? ";"
func (p *Parser) parseReturnStmt() ast.Stmt {
	startPos := p.tok.Pos
	p.expect(token.RETURN)

	var result ast.Expr
	if p.tok.Type != token.SEMICOLON {
		result = p.parseExpr()
	}
	endPos := p.tok.Pos
	p.expect(token.SEMICOLON)

	return &ast.ReturnStmt{
		BaseStmt: ast.MakeBaseStmt(startPos, endPos),
		Result:   result,
	}
}

// parseExprStmt parses an expression statement. The terminating semicolon
// is required except after a block-ended expression (block, if, while,
// function literal) or in tail position at the end of a block or file.
func (p *Parser) parseExprStmt() ast.Stmt {
	startPos := p.tok.Pos
	expr := p.parseExpr()
	endPos := p.tok.Pos

	switch {
	case p.tok.Type == token.SEMICOLON:
		p.next()
	case endsWithBlock(expr):
		// { ... } and if/while/fn bodies terminate themselves.
	case p.match(token.RBRACE, token.EOF):
		// Bare tail expression.
	default:
		p.fail(expectedError(p.tok.Pos, ";", p.tokenDesc()))
	}

	return &ast.ExprStmt{
		BaseStmt: ast.MakeBaseStmt(startPos, endPos),
		Expr:     expr,
	}
}

// endsWithBlock returns true if the expression's source form ends with a
// closing brace, making a terminating semicolon unnecessary.
func endsWithBlock(e ast.Expr) bool {
	switch e.(type) {
	case *ast.BlockExpr, *ast.IfExpr, *ast.WhileExpr, *ast.FuncLit:
		return true
	default:
		return false
	}
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

// parseExpr parses an expression at the lowest precedence level.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinaryExpr(1)
}

// parseBinaryExpr implements precedence climbing for binary operators.
// All binary operators are left-associative.
func (p *Parser) parseBinaryExpr(minPrec int) ast.Expr {
	left := p.parseUnary()

	for {
		prec := binaryPrec(p.tok.Type)
		if prec == 0 || prec < minPrec {
			return left
		}
		op := p.tok.Type
		p.next()
		right := p.parseBinaryExpr(prec + 1)
		left = &ast.BinaryExpr{
			BaseExpr: ast.MakeBaseExpr(left.Pos(), right.End()),
			Left:     left,
			Op:       op,
			Right:    right,
		}
	}
}

// parseUnary parses a unary expression: "-" unary | postfix.
// Unary minus binds tighter than any binary operator.
func (p *Parser) parseUnary() ast.Expr {
	if p.tok.Type == token.SUB {
		startPos := p.tok.Pos
		p.next()
		expr := p.parseUnary()
		return &ast.UnaryExpr{
			BaseExpr: ast.MakeBaseExpr(startPos, expr.End()),
			Op:       token.SUB,
			Expr:     expr,
		}
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any number of call
// suffixes. Calls bind tighter than unary minus: -f() negates the result.
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()

	for p.tok.Type == token.LPAREN {
		p.next()
		var args []ast.Expr
		for p.tok.Type != token.RPAREN && p.tok.Type != token.EOF {
			if len(args) > 0 {
				p.expect(token.COMMA)
			}
			args = append(args, p.parseExpr())
		}
		endPos := p.tok.Pos
		p.expect(token.RPAREN)

		expr = &ast.CallExpr{
			BaseExpr: ast.MakeBaseExpr(expr.Pos(), endPos),
			Fun:      expr,
			Args:     args,
		}
	}
	return expr
}

// parsePrimary parses literals, identifiers, groupings, blocks, function
// literals, and if/while expressions.
func (p *Parser) parsePrimary() ast.Expr {
	pos := p.tok.Pos

	switch p.tok.Type {
	case token.NUMBER:
		return p.parseNumLit()

	case token.STRING:
		value := p.tok.Value
		p.next()
		return &ast.StrLit{BaseExpr: ast.MakeBaseExpr(pos, p.tok.Pos), Value: value}

	case token.TRUE, token.FALSE:
		value := p.tok.Type == token.TRUE
		p.next()
		return &ast.BoolLit{BaseExpr: ast.MakeBaseExpr(pos, p.tok.Pos), Value: value}

	case token.NIL:
		p.next()
		return &ast.NilLit{BaseExpr: ast.MakeBaseExpr(pos, p.tok.Pos)}

	case token.NAME:
		name := p.tok.Value
		p.next()
		return &ast.Ident{BaseExpr: ast.MakeBaseExpr(pos, p.tok.Pos), Name: name}

	case token.LPAREN:
		p.next()
		inner := p.parseExpr()
		endPos := p.tok.Pos
		p.expect(token.RPAREN)
		return &ast.GroupExpr{BaseExpr: ast.MakeBaseExpr(pos, endPos), Expr: inner}

	case token.LBRACKET:
		return p.parseArrayLit()

	case token.LBRACE:
		return p.parseBlock()

	case token.FN:
		p.expect(token.FN)
		return p.parseFuncRest(pos)

	case token.IF:
		return p.parseIfExpr()

	case token.WHILE:
		return p.parseWhileExpr()

	default:
		p.fail(expectedError(pos, "expression", p.tokenDesc()))
		return nil // unreachable
	}
}

// parseNumLit parses a number literal. The lexical form decides integer
// versus float: a decimal point makes it a float.
func (p *Parser) parseNumLit() ast.Expr {
	pos := p.tok.Pos
	raw := p.tok.Value
	p.next()

	lit := &ast.NumLit{BaseExpr: ast.MakeBaseExpr(pos, p.tok.Pos), Raw: raw}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		lit.IsInt = true
		lit.Int = i
		return lit
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(errorf(pos, "invalid number %q", raw))
	}
	lit.Float = f
	return lit
}

// parseArrayLit parses: "[" (expression ("," expression)*)? "]"
func (p *Parser) parseArrayLit() ast.Expr {
	pos := p.tok.Pos
	p.expect(token.LBRACKET)

	var elems []ast.Expr
	for p.tok.Type != token.RBRACKET && p.tok.Type != token.EOF {
		if len(elems) > 0 {
			p.expect(token.COMMA)
		}
		elems = append(elems, p.parseExpr())
	}
	endPos := p.tok.Pos
	p.expect(token.RBRACKET)

	return &ast.ArrayLit{BaseExpr: ast.MakeBaseExpr(pos, endPos), Elems: elems}
}

// parseBlock parses: "{" statement* "}"
// The final statement, if an expression statement, is marked Tail; its
// value becomes the block's value in expression position.
func (p *Parser) parseBlock() *ast.BlockExpr {
	pos := p.tok.Pos
	p.expect(token.LBRACE)

	var stmts []ast.Stmt
	for p.tok.Type != token.RBRACE && p.tok.Type != token.EOF {
		stmts = append(stmts, p.parseStmt())
	}
	markTail(stmts)

	endPos := p.tok.Pos
	p.expect(token.RBRACE)

	return &ast.BlockExpr{BaseExpr: ast.MakeBaseExpr(pos, endPos), Stmts: stmts}
}

// parseFuncRest parses the parameter list and body of a function, after
// the fn keyword (and optional name) have been consumed.
func (p *Parser) parseFuncRest(startPos token.Position) *ast.FuncLit {
	p.expect(token.LPAREN)

	var params []string
	var paramPos []token.Position
	for p.tok.Type != token.RPAREN && p.tok.Type != token.EOF {
		if len(params) > 0 {
			p.expect(token.COMMA)
		}
		name, pos := p.expectName()
		params = append(params, name)
		paramPos = append(paramPos, pos)
	}
	p.expect(token.RPAREN)

	body := p.parseBlock()

	return &ast.FuncLit{
		BaseExpr: ast.MakeBaseExpr(startPos, body.End()),
		Params:   params,
		ParamPos: paramPos,
		Body:     body,
	}
}

// parseIfExpr parses: "if" "(" expression ")" block ("else" (block | if_expr))?
// An else-if chain is desugared into an else block whose tail is the
// nested if expression.
func (p *Parser) parseIfExpr() ast.Expr {
	pos := p.tok.Pos
	p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)

	then := p.parseBlock()

	var els *ast.BlockExpr
	if p.tok.Type == token.ELSE {
		p.next()
		switch p.tok.Type {
		case token.IF:
			nested := p.parseIfExpr()
			els = &ast.BlockExpr{
				BaseExpr: ast.MakeBaseExpr(nested.Pos(), nested.End()),
				Stmts: []ast.Stmt{&ast.ExprStmt{
					BaseStmt: ast.MakeBaseStmt(nested.Pos(), nested.End()),
					Expr:     nested,
					Tail:     true,
				}},
			}
		default:
			els = p.parseBlock()
		}
	}

	end := then.End()
	if els != nil {
		end = els.End()
	}
	return &ast.IfExpr{
		BaseExpr: ast.MakeBaseExpr(pos, end),
		Cond:     cond,
		Then:     then,
		Else:     els,
	}
}

// parseWhileExpr parses: "while" "(" expression ")" block
func (p *Parser) parseWhileExpr() ast.Expr {
	pos := p.tok.Pos
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)

	body := p.parseBlock()

	return &ast.WhileExpr{
		BaseExpr: ast.MakeBaseExpr(pos, body.End()),
		Cond:     cond,
		Body:     body,
	}
}
