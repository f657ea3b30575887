package expr

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrParse = errors.New("parse error")
	ErrEval  = errors.New("eval error")
	// ErrUnknownVar is returned when evaluating an expression with an undefined variable.
	ErrUnknownVar = errors.New("unknown variable")
)

type valueKind uint8

const (
	valueReal valueKind = iota
	valueComplex
)

// value is the internal evaluation result: a real number or a complex one.
// Complex values only exist inside the evaluator; the public boundary keeps
// the real component and discards the imaginary part.
type value struct {
	kind valueKind
	f    float64
	c    complex128
}

func realValue(f float64) value { return value{kind: valueReal, f: f} }

func complexValue(c complex128) value {
	if imag(c) == 0 {
		return realValue(real(c))
	}
	return value{kind: valueComplex, c: c}
}

func (v value) isReal() bool { return v.kind == valueReal }

// real64 projects the value onto the real line.
func (v value) real64() float64 {
	if v.kind == valueComplex {
		return real(v.c)
	}
	return v.f
}

func (v value) complex128() complex128 {
	if v.kind == valueComplex {
		return v.c
	}
	return complex(v.f, 0)
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "+Inf"
	}
	if math.IsInf(f, -1) {
		return "-Inf"
	}
	return fmt.Sprintf("%g", f)
}
