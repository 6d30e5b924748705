package interp

import (
	"fmt"

	"github.com/kolkov/uscript/internal/token"
)

// ErrorKind classifies runtime errors.
type ErrorKind uint8

const (
	NameError       ErrorKind = iota // Unresolved identifier
	TypeError                        // Operand or argument of the wrong kind
	ArityError                       // Call with the wrong argument count
	ArithmeticError                  // Division or modulo by zero
	IOError                          // Host input/output failure
)

// String returns the conventional name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case NameError:
		return "name error"
	case TypeError:
		return "type error"
	case ArityError:
		return "arity error"
	case ArithmeticError:
		return "arithmetic error"
	case IOError:
		return "io error"
	default:
		return "runtime error"
	}
}

// Error represents a runtime error with its kind and source position.
type Error struct {
	Kind    ErrorKind      // Error classification
	Pos     token.Position // Position of the originating expression
	Message string         // Human-readable error message
}

// Error returns a formatted error message with position information.
func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// errorf creates an Error of the given kind at pos with a formatted message.
func errorf(kind ErrorKind, pos token.Position, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}
