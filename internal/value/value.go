// Package value defines the runtime value and environment model for
// uscript: a closed tagged union over number, string, boolean, array,
// function and nil.
package value

import (
	"strings"

	"github.com/kolkov/uscript/internal/ast"
)

// Kind represents the type of a uscript value.
type Kind uint8

const (
	KindNil   Kind = iota // The nil singleton
	KindNum               // Numeric value
	KindStr               // String value
	KindBool              // Boolean value
	KindArray             // Array value (shared by reference)
	KindFunc              // Function value (shared by reference)
)

// String returns a human-readable name for the kind, used in type errors.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindNum:
		return "number"
	case KindStr:
		return "string"
	case KindBool:
		return "boolean"
	case KindArray:
		return "array"
	case KindFunc:
		return "function"
	default:
		return "unknown"
	}
}

// Value represents a uscript runtime value.
// Uses the tagged union pattern; scalar kinds are copied by value while
// arrays and functions are shared by reference.
type Value struct {
	kind Kind
	num  Number
	str  string
	arr  *Array
	fn   *Func
}

// Array is the backing store of an array value.
// Arrays are ordered, mutable, 0-indexed, and shared by reference:
// mutation is visible to every holder.
type Array struct {
	Elems []Value
}

// BuiltinImpl is the Go implementation of a builtin function.
// Builtins receive evaluated arguments and report failures with the
// sentinel-style errors the interpreter converts to positioned ones.
type BuiltinImpl func(args []Value) (Value, error)

// Func is the backing store of a function value: either a user function
// (parameters, body AST, and the environment captured at the definition
// site) or a builtin backed by a Go implementation.
type Func struct {
	Name     string         // Binding name; empty for anonymous literals
	Params   []string       // Ordered parameter names
	Body     *ast.BlockExpr // Body (nil for builtins)
	Env      *Environment   // Captured defining environment (nil for builtins)
	Builtin  BuiltinImpl    // Non-nil for builtins
	Variadic bool           // Accepts any number of arguments (print)
}

// Constructors

// Nil returns the nil value.
func Nil() Value {
	return Value{kind: KindNil}
}

// Num creates a numeric value.
func Num(n Number) Value {
	return Value{kind: KindNum, num: n}
}

// IntVal creates an integer numeric value.
func IntVal(i int64) Value {
	return Num(Int(i))
}

// FloatVal creates a floating-point numeric value.
func FloatVal(f float64) Value {
	return Num(Float(f))
}

// Str creates a string value.
func Str(s string) Value {
	return Value{kind: KindStr, str: s}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = Int(1)
	}
	return v
}

// NewArray creates an array value backed by elems.
func NewArray(elems []Value) Value {
	return Value{kind: KindArray, arr: &Array{Elems: elems}}
}

// FuncVal creates a function value backed by fn.
func FuncVal(fn *Func) Value {
	return Value{kind: KindFunc, fn: fn}
}

// Accessors

// Kind returns the value's type.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNil returns true if the value is nil.
func (v Value) IsNil() bool {
	return v.kind == KindNil
}

// AsNum returns the numeric payload. Valid only for KindNum.
func (v Value) AsNum() Number {
	return v.num
}

// AsStr returns the string payload. Valid only for KindStr.
func (v Value) AsStr() string {
	return v.str
}

// AsBool returns the boolean payload. Valid only for KindBool.
func (v Value) AsBool() bool {
	return !v.num.IsZero()
}

// AsArray returns the shared array payload. Valid only for KindArray.
func (v Value) AsArray() *Array {
	return v.arr
}

// AsFunc returns the shared function payload. Valid only for KindFunc.
func (v Value) AsFunc() *Func {
	return v.fn
}

// Equal reports equality between two values of any kinds.
// Cross-kind comparison is always unequal, never an error. Numbers
// compare numerically, arrays element-wise, functions by identity.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindNum:
		return a.num.Equal(b.num)
	case KindStr:
		return a.str == b.str
	case KindBool:
		return a.AsBool() == b.AsBool()
	case KindArray:
		if a.arr == b.arr {
			return true
		}
		if len(a.arr.Elems) != len(b.arr.Elems) {
			return false
		}
		for i := range a.arr.Elems {
			if !Equal(a.arr.Elems[i], b.arr.Elems[i]) {
				return false
			}
		}
		return true
	case KindFunc:
		return a.fn == b.fn
	default:
		return false
	}
}

// Display returns the representation used by print and for array
// elements: strings render raw, numbers per Number.String, arrays as
// bracketed comma-separated elements.
func (v Value) Display() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindNum:
		return v.num.String()
	case KindStr:
		return v.str
	case KindBool:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case KindArray:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, el := range v.arr.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(el.Display())
		}
		sb.WriteByte(']')
		return sb.String()
	case KindFunc:
		return v.fn.display()
	default:
		return "<invalid>"
	}
}

// String returns the same representation as Display; it makes Value
// printable in tests and debug output.
func (v Value) String() string {
	return v.Display()
}

func (f *Func) display() string {
	if f.Builtin != nil {
		return "builtin " + f.Name
	}
	var sb strings.Builder
	sb.WriteString("fn ")
	if f.Name != "" {
		sb.WriteString(f.Name)
	}
	sb.WriteByte('(')
	sb.WriteString(strings.Join(f.Params, ", "))
	sb.WriteByte(')')
	return sb.String()
}
