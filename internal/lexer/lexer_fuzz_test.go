package lexer

import (
	"testing"

	"github.com/kolkov/uscript/internal/token"
)

// FuzzLexer tests that the lexer handles arbitrary input without panicking
// and produces valid tokens.
func FuzzLexer(f *testing.F) {
	seeds := []string{
		// Basic programs
		`let x = 1;`,
		`print("hello");`,
		`fn add(a, b) { a + b }`,
		`if (x > 0) { 1 } else { 2 }`,
		`while (i < 10) { i = i + 1; }`,
		`return nil;`,

		// Expressions
		`x + y * z`,
		`a == b`,
		`a != b`,
		`1 <= 2 >= 3`,
		`-x`,
		`f(g(x), [1, 2])`,

		// Numbers
		`123 456.789 0 0.5`,
		`12. 1.2.3`,

		// Strings
		`"hello" "world\n" "tab\there"`,
		`"unterminated`,
		`"bad \q escape"`,

		// Comments
		`// line comment`,
		`/* block comment */`,
		`/* unterminated`,
		`1 /* a */ + /* b */ 2`,

		// Edge cases
		``,
		`;;;`,
		`let let let`,
		`@#$`,

		// Unicode
		`"привет мир"`,
		`"こんにちは"`,
		`"emoji 🎉"`,
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		l := New(data)

		// Scan all tokens - should not panic
		tokenCount := 0
		const maxTokens = 10000 // Prevent infinite loops

		for tokenCount < maxTokens {
			tok := l.Scan()

			if tok.Pos.Line < 1 || tok.Pos.Column < 1 || tok.Pos.Offset < 0 {
				t.Errorf("invalid position: %v", tok.Pos)
			}

			// An ILLEGAL token must carry its error message.
			if tok.Type == token.ILLEGAL && tok.Value == "" {
				t.Error("ILLEGAL token with empty message")
			}

			if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
				break
			}

			tokenCount++
		}

		if tokenCount >= maxTokens {
			t.Skip("too many tokens, possibly malformed input")
		}
	})
}

// FuzzLexerStrings tests string scanning.
func FuzzLexerStrings(f *testing.F) {
	seeds := []string{
		`"hello"`,
		`"with\nescape"`,
		`"with\\backslash"`,
		`"quote \" inside"`,
		`"tab\tand\rreturn"`,
		`"bad \x"`,
		`"unterminated`,
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		l := New(data)

		for {
			tok := l.Scan()
			if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
				break
			}
		}
	})
}

// FuzzLexerNumbers tests number scanning.
func FuzzLexerNumbers(f *testing.F) {
	seeds := []string{
		`123`,
		`456.789`,
		`0`,
		`0.0`,
		`12.`,
		`1.2.3`,
		`9999999999999999999999`,
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		l := New(data)

		for {
			tok := l.Scan()
			if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
				break
			}
		}
	})
}
