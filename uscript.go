package uscript

import (
	"io"

	"github.com/kolkov/uscript/internal/interp"
	"github.com/kolkov/uscript/internal/parser"
	"github.com/kolkov/uscript/internal/semantic"
)

// Version is the uscript version string.
const Version = "0.1.0"

// Run executes a script with the given input.
// This is a convenience function for one-off execution.
// For repeated execution of the same script, use Parse followed by
// Program.Run.
//
// Parameters:
//   - src: script source code
//   - input: reader for the input builtin (can be nil for scripts
//     that never read input)
//   - config: execution configuration (can be nil for defaults)
//
// Returns the script output as a string, or an error if parsing or
// execution fails.
//
// Example:
//
//	output, err := uscript.Run(`print("hello");`, nil, nil)
//	// output: "hello\n"
func Run(src string, input io.Reader, config *Config) (string, error) {
	prog, err := Parse(src)
	if err != nil {
		return "", err
	}
	return prog.Run(input, config)
}

// Parse parses and checks a script for execution.
// The returned Program can be executed multiple times with different
// inputs; each run gets an independent global scope.
//
// Example:
//
//	prog, err := uscript.Parse(`let greeting = "hi " + input(); print(greeting);`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	output1, _ := prog.Run(strings.NewReader("ada"), nil)
//	output2, _ := prog.Run(strings.NewReader("grace"), nil)
func Parse(src string) (*Program, error) {
	astProg, err := parser.Parse(src)
	if err != nil {
		return nil, publicParseError(err)
	}

	if errs := semantic.Check(astProg, interp.BuiltinNames()); len(errs) > 0 {
		first := errs[0]
		return nil, &CompileError{
			Line:    first.Pos.Line,
			Column:  first.Pos.Column,
			Message: first.Message,
		}
	}

	return &Program{
		prog:   astProg,
		source: src,
	}, nil
}

// MustParse is like Parse but panics on error.
// It simplifies initialization of scripts known to be valid:
//
//	var greet = uscript.MustParse(`print("hi " + input());`)
func MustParse(src string) *Program {
	prog, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return prog
}

// Exec is a simplified interface for running a script.
// It reads builtin input from input, writes builtin output to output,
// and returns any error.
//
// Example:
//
//	err := uscript.Exec(`print(input());`, os.Stdin, os.Stdout, nil)
func Exec(src string, input io.Reader, output io.Writer, config *Config) error {
	prog, err := Parse(src)
	if err != nil {
		return err
	}

	if config == nil {
		config = &Config{}
	}
	cfg := *config
	cfg.Output = output

	_, err = prog.Run(input, &cfg)
	return err
}

// publicParseError converts internal parser errors to the public typed
// errors. Lexical errors surface as LexError, everything else as
// ParseError; an error list reports its first entry.
func publicParseError(err error) error {
	var pe *parser.ParseError
	switch e := err.(type) {
	case *parser.ParseError:
		pe = e
	case parser.ErrorList:
		if len(e) == 0 {
			return &ParseError{Message: err.Error()}
		}
		pe = e[0]
	default:
		return &ParseError{Message: err.Error()}
	}

	if pe.Lex {
		return &LexError{
			Line:    pe.Pos.Line,
			Column:  pe.Pos.Column,
			Message: pe.Message,
		}
	}
	return &ParseError{
		Line:    pe.Pos.Line,
		Column:  pe.Pos.Column,
		Message: pe.Message,
	}
}
