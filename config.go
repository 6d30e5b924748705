package uscript

import "io"

// Config holds configuration options for script execution.
type Config struct {
	// Output is the writer for the print builtin.
	// If nil, output is captured and returned from Run.
	Output io.Writer

	// CollectWhileValues makes while loops evaluate to an array of each
	// iteration's value. By default a while loop evaluates to nil.
	CollectWhileValues bool
}
