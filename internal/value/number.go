package value

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrDivideByZero is returned by Div and Mod for a zero divisor.
// The interpreter converts it into a positioned arithmetic error.
var ErrDivideByZero = errors.New("division by zero")

// Number represents a numeric value with integer/float duality.
// Arithmetic stays integral while both operands are integral and the
// operation is exact; otherwise it promotes to floating point.
// Equality and ordering are numeric: 1 == 1.0.
type Number struct {
	i     int64
	f     float64
	isInt bool
}

// Int creates an integer Number.
func Int(i int64) Number {
	return Number{i: i, isInt: true}
}

// Float creates a floating-point Number.
func Float(f float64) Number {
	return Number{f: f}
}

// ParseNumber parses a number literal: decimal integer or decimal-point
// float. Integer literals too large for int64 fall back to float.
func ParseNumber(s string) (Number, error) {
	if !strings.Contains(s, ".") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, err
	}
	return Float(f), nil
}

// IsInt returns true if the number is integral.
func (n Number) IsInt() bool {
	return n.isInt
}

// Int64 returns the value truncated to an integer.
func (n Number) Int64() int64 {
	if n.isInt {
		return n.i
	}
	return int64(n.f)
}

// Float64 returns the value as a float.
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// IsZero returns true if the number is numerically zero.
func (n Number) IsZero() bool {
	if n.isInt {
		return n.i == 0
	}
	return n.f == 0
}

// Add returns n + m.
func (n Number) Add(m Number) Number {
	if n.isInt && m.isInt {
		return Int(n.i + m.i)
	}
	return Float(n.Float64() + m.Float64())
}

// Sub returns n - m.
func (n Number) Sub(m Number) Number {
	if n.isInt && m.isInt {
		return Int(n.i - m.i)
	}
	return Float(n.Float64() - m.Float64())
}

// Mul returns n * m.
func (n Number) Mul(m Number) Number {
	if n.isInt && m.isInt {
		return Int(n.i * m.i)
	}
	return Float(n.Float64() * m.Float64())
}

// Div returns n / m. Integer division stays integral only when exact;
// an inexact quotient promotes to float. A zero divisor returns
// ErrDivideByZero.
func (n Number) Div(m Number) (Number, error) {
	if m.IsZero() {
		return Number{}, ErrDivideByZero
	}
	if n.isInt && m.isInt {
		if n.i%m.i == 0 {
			return Int(n.i / m.i), nil
		}
		return Float(float64(n.i) / float64(m.i)), nil
	}
	return Float(n.Float64() / m.Float64()), nil
}

// Mod returns n % m. A zero divisor returns ErrDivideByZero.
func (n Number) Mod(m Number) (Number, error) {
	if m.IsZero() {
		return Number{}, ErrDivideByZero
	}
	if n.isInt && m.isInt {
		return Int(n.i % m.i), nil
	}
	return Float(math.Mod(n.Float64(), m.Float64())), nil
}

// Neg returns -n.
func (n Number) Neg() Number {
	if n.isInt {
		return Int(-n.i)
	}
	return Float(-n.f)
}

// Equal reports numeric equality: 1 == 1.0.
func (n Number) Equal(m Number) bool {
	if n.isInt && m.isInt {
		return n.i == m.i
	}
	return n.Float64() == m.Float64()
}

// Cmp returns -1, 0, or 1 comparing n to m numerically.
func (n Number) Cmp(m Number) int {
	if n.isInt && m.isInt {
		switch {
		case n.i < m.i:
			return -1
		case n.i > m.i:
			return 1
		default:
			return 0
		}
	}
	a, b := n.Float64(), m.Float64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String returns the display representation: integers without a decimal
// point, floats always with one.
func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	s := strconv.FormatFloat(n.f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0" // keep the float-ness visible: 2.0, not 2
	}
	return s
}
