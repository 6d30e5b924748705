// Package uscript provides an embeddable interpreter for uscript, a
// small dynamically typed scripting language.
//
// uscript has let bindings with lexical scoping, first-class functions
// with closures, and expression-oriented blocks: the final expression
// of a block is the block's value, and if/while are expressions.
// Values are numbers (integer/float duality), strings, booleans,
// arrays, functions and nil.
//
// # Quick Start
//
// For simple one-off execution:
//
//	output, err := uscript.Run(`print("hello");`, nil, nil)
//	// output: "hello\n"
//
// # Parsed Programs
//
// For repeated execution of the same script:
//
//	prog, err := uscript.Parse(`
//	    let name = input();
//	    print("hi " + name);
//	`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, r := range readers {
//	    output, err := prog.Run(r, nil)
//	    // ...
//	}
//
// # Host I/O
//
// Scripts touch the outside world only through the print and input
// builtins. The host supplies their endpoints: input comes from the
// reader passed to [Program.Run], output goes to [Config].Output, or
// is captured and returned when Output is nil.
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [LexError]: invalid tokens in script source
//   - [ParseError]: syntax errors in script source
//   - [CompileError]: semantic errors found before execution
//   - [RuntimeError]: errors during execution, classified by [ErrorKind]
//
// # Thread Safety
//
// Parsed [Program] objects are safe for concurrent use.
// Each call to [Program.Run] creates an independent execution context.
package uscript
