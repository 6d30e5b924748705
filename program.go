package uscript

import (
	"bytes"
	"io"
	"strings"

	"github.com/kolkov/uscript/internal/ast"
	"github.com/kolkov/uscript/internal/interp"
)

// Program represents a parsed script ready for execution.
// It is safe for concurrent use; each call to Run creates an
// independent execution context with its own global scope.
type Program struct {
	prog   *ast.Program
	source string // Original source for debugging
}

// Run executes the program with the given input and configuration.
// Returns the output as a string, or an error if execution fails.
//
// If config is nil, default configuration is used.
// If config.Output is set, output is written there and the returned
// string will be empty.
func (p *Program) Run(input io.Reader, config *Config) (string, error) {
	if config == nil {
		config = &Config{}
	}
	if input == nil {
		input = strings.NewReader("")
	}

	var outputBuf *bytes.Buffer
	output := config.Output
	if output == nil {
		outputBuf = &bytes.Buffer{}
		output = outputBuf
	}

	var opts []interp.Option
	if config.CollectWhileValues {
		opts = append(opts, interp.WithCollectWhileValues())
	}

	in := interp.New(input, output, opts...)
	if _, err := in.Run(p.prog); err != nil {
		if rerr, ok := err.(*interp.Error); ok {
			return "", &RuntimeError{
				Kind:    ErrorKind(rerr.Kind),
				Line:    rerr.Pos.Line,
				Column:  rerr.Pos.Column,
				Message: rerr.Message,
			}
		}
		return "", &RuntimeError{Message: err.Error()}
	}

	if outputBuf != nil {
		return outputBuf.String(), nil
	}
	return "", nil
}

// Format returns the program's source as rendered by the canonical
// printer. Re-parsing the result yields a semantically identical
// program. Useful for debugging and normalizing scripts.
func (p *Program) Format() string {
	return ast.Format(p.prog)
}

// Source returns the original script source code.
func (p *Program) Source() string {
	return p.source
}
