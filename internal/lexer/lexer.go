// Package lexer provides uscript source code tokenization.
package lexer

import (
	"github.com/kolkov/uscript/internal/token"
)

// Lexer tokenizes uscript source code.
type Lexer struct {
	src     []byte         // Source code
	ch      byte           // Current character (0 at EOF)
	offset  int            // Current byte offset
	pos     token.Position // Current position
	nextPos token.Position // Position of next character
}

// New creates a new Lexer for the given source code.
func New(src []byte) *Lexer {
	l := &Lexer{
		src: src,
		nextPos: token.Position{
			Line:   1,
			Column: 1,
		},
	}
	l.next() // Initialize first character
	return l
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New([]byte(src))
}

// Token represents a scanned token with its position and value.
type Token struct {
	Type  token.Token
	Pos   token.Position
	Value string
}

// Scan scans and returns the next token.
// Lexical errors are reported as ILLEGAL tokens whose Value holds the
// error message; the parser converts them into positioned errors.
func (l *Lexer) Scan() Token {
	l.skipWhitespace()

	// Skip comments; an unterminated block comment is a lexical error.
	for l.ch == '/' && (l.peek() == '/' || l.peek() == '*') {
		if tok, ok := l.skipComment(); !ok {
			return tok
		}
		l.skipWhitespace()
	}

	// Record position
	pos := l.pos

	// EOF
	if l.ch == 0 {
		return Token{Type: token.EOF, Pos: pos}
	}

	switch l.ch {
	case '+':
		l.next()
		return Token{Type: token.ADD, Pos: pos, Value: "+"}

	case '-':
		l.next()
		return Token{Type: token.SUB, Pos: pos, Value: "-"}

	case '*':
		l.next()
		return Token{Type: token.MUL, Pos: pos, Value: "*"}

	case '/':
		l.next()
		return Token{Type: token.DIV, Pos: pos, Value: "/"}

	case '%':
		l.next()
		return Token{Type: token.MOD, Pos: pos, Value: "%"}

	case '=':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.EQUALS, Pos: pos, Value: "=="}
		}
		return Token{Type: token.ASSIGN, Pos: pos, Value: "="}

	case '!':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.NOT_EQUALS, Pos: pos, Value: "!="}
		}
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unexpected character '!'"}

	case '<':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.LTE, Pos: pos, Value: "<="}
		}
		return Token{Type: token.LESS, Pos: pos, Value: "<"}

	case '>':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.GTE, Pos: pos, Value: ">="}
		}
		return Token{Type: token.GREATER, Pos: pos, Value: ">"}

	case '(':
		l.next()
		return Token{Type: token.LPAREN, Pos: pos, Value: "("}
	case ')':
		l.next()
		return Token{Type: token.RPAREN, Pos: pos, Value: ")"}
	case '{':
		l.next()
		return Token{Type: token.LBRACE, Pos: pos, Value: "{"}
	case '}':
		l.next()
		return Token{Type: token.RBRACE, Pos: pos, Value: "}"}
	case '[':
		l.next()
		return Token{Type: token.LBRACKET, Pos: pos, Value: "["}
	case ']':
		l.next()
		return Token{Type: token.RBRACKET, Pos: pos, Value: "]"}
	case ',':
		l.next()
		return Token{Type: token.COMMA, Pos: pos, Value: ","}
	case ';':
		l.next()
		return Token{Type: token.SEMICOLON, Pos: pos, Value: ";"}

	case '"':
		return l.scanString(pos)

	default:
		if isDigit(l.ch) {
			return l.scanNumber(pos)
		}
		if isIdentStart(l.ch) {
			return l.scanIdent(pos)
		}
		ch := l.ch
		l.next()
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unexpected character '" + string(ch) + "'"}
	}
}

func (l *Lexer) scanString(pos token.Position) Token {
	l.next() // consume opening quote

	var sb []byte
	for l.ch != 0 && l.ch != '"' && l.ch != '\n' {
		if l.ch == '\\' {
			l.next()
			switch l.ch {
			case 'n':
				sb = append(sb, '\n')
			case 't':
				sb = append(sb, '\t')
			case 'r':
				sb = append(sb, '\r')
			case '"':
				sb = append(sb, '"')
			case '\\':
				sb = append(sb, '\\')
			case 0, '\n':
				return Token{Type: token.ILLEGAL, Pos: pos, Value: "unterminated string"}
			default:
				return Token{Type: token.ILLEGAL, Pos: pos, Value: "invalid escape sequence '\\" + string(l.ch) + "'"}
			}
			l.next()
		} else {
			sb = append(sb, l.ch)
			l.next()
		}
	}

	if l.ch != '"' {
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unterminated string"}
	}
	l.next() // consume closing quote

	return Token{Type: token.STRING, Pos: pos, Value: string(sb)}
}

func (l *Lexer) scanNumber(pos token.Position) Token {
	start := pos.Offset
	dots := 0

	// Integer or decimal-point float; no exponents, no hex.
	for isDigit(l.ch) || l.ch == '.' {
		if l.ch == '.' {
			// Only a digit may follow the decimal point.
			if dots > 0 || !isDigit(l.peek()) {
				l.next() // include the offending dot in the message
				value := string(l.src[start:l.endOffset()])
				return Token{Type: token.ILLEGAL, Pos: pos, Value: "invalid number '" + value + "'"}
			}
			dots++
		}
		l.next()
	}

	return Token{Type: token.NUMBER, Pos: pos, Value: string(l.src[start:l.endOffset()])}
}

func (l *Lexer) scanIdent(pos token.Position) Token {
	start := pos.Offset
	for isIdentContinue(l.ch) {
		l.next()
	}
	name := string(l.src[start:l.endOffset()])
	return Token{Type: token.LookupIdent(name), Pos: pos, Value: name}
}

// endOffset returns the correct end offset for slicing l.src.
// At EOF, l.pos is not updated, so we use len(l.src); otherwise l.pos.Offset.
func (l *Lexer) endOffset() int {
	if l.ch == 0 {
		return len(l.src)
	}
	return l.pos.Offset
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.next()
	}
}

// skipComment consumes a // line comment or a /* */ block comment.
// Returns ok=false with an ILLEGAL token if a block comment is unterminated.
func (l *Lexer) skipComment() (Token, bool) {
	pos := l.pos
	l.next() // consume /

	if l.ch == '/' {
		for l.ch != 0 && l.ch != '\n' {
			l.next()
		}
		return Token{}, true
	}

	// Block comment; does not nest.
	l.next() // consume *
	for l.ch != 0 {
		if l.ch == '*' && l.peek() == '/' {
			l.next()
			l.next()
			return Token{}, true
		}
		l.next()
	}
	return Token{Type: token.ILLEGAL, Pos: pos, Value: "unterminated comment"}, false
}

// peek returns the next character without consuming it.
func (l *Lexer) peek() byte {
	if l.offset >= len(l.src) {
		return 0
	}
	return l.src[l.offset]
}

func (l *Lexer) next() {
	if l.offset >= len(l.src) {
		l.ch = 0
		return
	}

	l.pos = l.nextPos
	l.ch = l.src[l.offset]
	l.offset++
	l.nextPos.Column++
	l.nextPos.Offset = l.offset

	if l.ch == '\n' {
		l.nextPos.Line++
		l.nextPos.Column = 1
	}
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
