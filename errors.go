package uscript

import (
	"fmt"
)

// LexError represents an invalid token in script source code.
type LexError struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// ParseError represents a syntax error in script source code.
type ParseError struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// CompileError represents a semantic error found before execution,
// such as a duplicate parameter name or assignment to a builtin.
type CompileError struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile error at %d:%d: %s", e.Line, e.Column, e.Message)
}

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

// RuntimeError represents an error during script execution.
type RuntimeError struct {
	Kind    ErrorKind // Error classification
	Line    int       // 1-based line number
	Column  int       // 1-based column number
	Message string    // Error description
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Column, e.Message)
}
