package interp

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kolkov/uscript/internal/value"
)

// BuiltinNames returns the names bound in the root environment, in the
// order they are installed. The static checker uses it to reject
// assignment to a builtin.
func BuiltinNames() []string {
	return []string{"print", "input", "len", "push", "pop", "int", "float"}
}

// installBuiltins binds the builtin functions in the root environment.
// Builtins are ordinary function values backed by Go implementations,
// so they can be passed around and compared like user functions.
func (in *Interp) installBuiltins() {
	define := func(name string, params []string, variadic bool, impl value.BuiltinImpl) {
		in.root.Define(name, value.FuncVal(&value.Func{
			Name:     name,
			Params:   params,
			Variadic: variadic,
			Builtin:  impl,
		}))
	}

	define("print", nil, true, in.builtinPrint)
	define("input", nil, false, in.builtinInput)
	define("len", []string{"x"}, false, builtinLen)
	define("push", []string{"arr", "v"}, false, builtinPush)
	define("pop", []string{"arr"}, false, builtinPop)
	define("int", []string{"x"}, false, builtinInt)
	define("float", []string{"x"}, false, builtinFloat)
}

// builtinPrint writes the display representations of its arguments,
// joined by single spaces and followed by a newline.
func (in *Interp) builtinPrint(args []value.Value) (value.Value, error) {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(arg.Display())
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(in.output, sb.String()); err != nil {
		return value.Nil(), &Error{Kind: IOError, Message: "print: " + err.Error()}
	}
	return value.Nil(), nil
}

// builtinInput reads one line from host input with surrounding
// whitespace trimmed. End of input yields the empty string.
func (in *Interp) builtinInput(args []value.Value) (value.Value, error) {
	line, err := in.stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return value.Nil(), &Error{Kind: IOError, Message: "input: " + err.Error()}
	}
	return value.Str(strings.TrimSpace(line)), nil
}

// builtinLen returns the rune count of a string or the element count of
// an array.
func builtinLen(args []value.Value) (value.Value, error) {
	switch args[0].Kind() {
	case value.KindStr:
		return value.IntVal(int64(utf8.RuneCountInString(args[0].AsStr()))), nil
	case value.KindArray:
		return value.IntVal(int64(len(args[0].AsArray().Elems))), nil
	default:
		return value.Nil(), &Error{Kind: TypeError, Message: "len expects a string or array, got " + args[0].Kind().String()}
	}
}

// builtinPush returns a new array with v appended; the original array
// is untouched.
func builtinPush(args []value.Value) (value.Value, error) {
	if args[0].Kind() != value.KindArray {
		return value.Nil(), &Error{Kind: TypeError, Message: "push expects an array, got " + args[0].Kind().String()}
	}
	old := args[0].AsArray().Elems
	elems := make([]value.Value, len(old), len(old)+1)
	copy(elems, old)
	return value.NewArray(append(elems, args[1])), nil
}

// builtinPop returns the last element of an array.
func builtinPop(args []value.Value) (value.Value, error) {
	if args[0].Kind() != value.KindArray {
		return value.Nil(), &Error{Kind: TypeError, Message: "pop expects an array, got " + args[0].Kind().String()}
	}
	elems := args[0].AsArray().Elems
	if len(elems) == 0 {
		return value.Nil(), &Error{Kind: TypeError, Message: "pop from empty array"}
	}
	return elems[len(elems)-1], nil
}

// builtinInt converts a number or numeric string to an integer,
// truncating toward zero.
func builtinInt(args []value.Value) (value.Value, error) {
	switch args[0].Kind() {
	case value.KindNum:
		return value.IntVal(args[0].AsNum().Int64()), nil
	case value.KindStr:
		n, err := value.ParseNumber(strings.TrimSpace(args[0].AsStr()))
		if err != nil {
			return value.Nil(), &Error{Kind: TypeError, Message: "int: cannot parse " + strconv.Quote(args[0].AsStr())}
		}
		return value.IntVal(n.Int64()), nil
	default:
		return value.Nil(), &Error{Kind: TypeError, Message: "int expects a number or string, got " + args[0].Kind().String()}
	}
}

// builtinFloat converts a number or numeric string to a float.
func builtinFloat(args []value.Value) (value.Value, error) {
	switch args[0].Kind() {
	case value.KindNum:
		return value.FloatVal(args[0].AsNum().Float64()), nil
	case value.KindStr:
		n, err := value.ParseNumber(strings.TrimSpace(args[0].AsStr()))
		if err != nil {
			return value.Nil(), &Error{Kind: TypeError, Message: "float: cannot parse " + strconv.Quote(args[0].AsStr())}
		}
		return value.FloatVal(n.Float64()), nil
	default:
		return value.Nil(), &Error{Kind: TypeError, Message: "float expects a number or string, got " + args[0].Kind().String()}
	}
}
