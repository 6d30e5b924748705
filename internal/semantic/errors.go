// Package semantic provides static checks for parsed uscript programs.
//
// The language is dynamically typed and name resolution is a runtime
// concern (an unresolved identifier is a runtime name error), so the
// checks here are deliberately small: they reject only programs that
// could never be correct under any execution.
package semantic

import (
	"fmt"

	"github.com/kolkov/uscript/internal/token"
)

// Error represents a semantic error with source position.
type Error struct {
	Pos     token.Position // Position where the error occurred
	Message string         // Human-readable error message
}

// Error returns a formatted error message with position information.
func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// errorf creates an Error at the given position with a formatted message.
func errorf(pos token.Position, format string, args ...any) *Error {
	return &Error{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}
