package expr

// This file contains the expression tree and its evaluator.

import (
	"fmt"
	"math"
	"math/cmplx"
)

type node interface {
	Eval(e *env) (value, error)
}

type nodeNumber struct{ v float64 }

func (n nodeNumber) Eval(_ *env) (value, error) { return realValue(n.v), nil }

type nodeIdent struct{ name string }

func (n nodeIdent) Eval(e *env) (value, error) {
	v, ok := e.vars[n.name]
	if !ok {
		return value{}, fmt.Errorf("%w: %w %q", ErrEval, ErrUnknownVar, n.name)
	}
	return v, nil
}

type nodeUnary struct {
	op byte
	x  node
}

func (n nodeUnary) Eval(e *env) (value, error) {
	v, err := n.x.Eval(e)
	if err != nil {
		return value{}, err
	}
	switch n.op {
	case '+':
		return v, nil
	case '-':
		if v.kind == valueComplex {
			return complexValue(-v.c), nil
		}
		return realValue(-v.f), nil
	default:
		return value{}, fmt.Errorf("%w: unary %q", ErrEval, n.op)
	}
}

type nodeBinary struct {
	op    byte
	left  node
	right node
}

func (n nodeBinary) Eval(e *env) (value, error) {
	a, err := n.left.Eval(e)
	if err != nil {
		return value{}, err
	}
	b, err := n.right.Eval(e)
	if err != nil {
		return value{}, err
	}
	if a.kind == valueComplex || b.kind == valueComplex {
		return evalBinaryComplex(n.op, a.complex128(), b.complex128())
	}
	return evalBinaryReal(n.op, a.f, b.f)
}

// evalBinaryReal applies IEEE semantics throughout; division by zero yields
// an infinity which the public boundary reports as a computation error.
func evalBinaryReal(op byte, a, b float64) (value, error) {
	switch op {
	case '+':
		return realValue(a + b), nil
	case '-':
		return realValue(a - b), nil
	case '*':
		return realValue(a * b), nil
	case '/':
		return realValue(a / b), nil
	case '^':
		// Negative base with fractional exponent has a complex principal
		// value; keep it instead of returning NaN.
		if a < 0 && b != math.Trunc(b) {
			return complexValue(cmplx.Pow(complex(a, 0), complex(b, 0))), nil
		}
		return realValue(math.Pow(a, b)), nil
	default:
		return value{}, fmt.Errorf("%w: binary %q", ErrEval, op)
	}
}

func evalBinaryComplex(op byte, a, b complex128) (value, error) {
	switch op {
	case '+':
		return complexValue(a + b), nil
	case '-':
		return complexValue(a - b), nil
	case '*':
		return complexValue(a * b), nil
	case '/':
		return complexValue(a / b), nil
	case '^':
		return complexValue(cmplx.Pow(a, b)), nil
	default:
		return value{}, fmt.Errorf("%w: binary %q", ErrEval, op)
	}
}

type nodeCompare struct {
	op    tokenKind
	left  node
	right node
}

func (n nodeCompare) Eval(e *env) (value, error) {
	a, err := n.left.Eval(e)
	if err != nil {
		return value{}, err
	}
	b, err := n.right.Eval(e)
	if err != nil {
		return value{}, err
	}

	if a.kind == valueComplex || b.kind == valueComplex {
		za, zb := a.complex128(), b.complex128()
		switch n.op {
		case tokEq:
			return boolValue(za == zb), nil
		case tokNe:
			return boolValue(za != zb), nil
		default:
			return value{}, fmt.Errorf("%w: ordered comparison of complex values", ErrEval)
		}
	}

	af, bf := a.f, b.f
	switch n.op {
	case tokEq:
		return boolValue(af == bf), nil
	case tokNe:
		return boolValue(af != bf), nil
	case tokLt:
		return boolValue(af < bf), nil
	case tokLe:
		return boolValue(af <= bf), nil
	case tokGt:
		return boolValue(af > bf), nil
	case tokGe:
		return boolValue(af >= bf), nil
	default:
		return value{}, fmt.Errorf("%w: unknown compare op", ErrEval)
	}
}

func boolValue(ok bool) value {
	if ok {
		return realValue(1)
	}
	return realValue(0)
}

type nodeCall struct {
	name string
	args []node
}

func (n nodeCall) Eval(e *env) (value, error) {
	// Control functions evaluate their own arguments lazily where it
	// matters; if() is eager here, matching the arithmetic semantics of the
	// rest of the language.
	if n.name == "if" {
		if len(n.args) != 3 {
			return value{}, fmt.Errorf("%w: if(cond, a, b)", ErrEval)
		}
		cond, err := n.args[0].Eval(e)
		if err != nil {
			return value{}, err
		}
		if truthy(cond) {
			return n.args[1].Eval(e)
		}
		return n.args[2].Eval(e)
	}

	args := make([]value, 0, len(n.args))
	for _, a := range n.args {
		v, err := a.Eval(e)
		if err != nil {
			return value{}, err
		}
		args = append(args, v)
	}

	if out, ok, err := builtinCallComplex(n.name, args); ok {
		return out, err
	}

	spec, ok := scalarBuiltins[n.name]
	if !ok {
		return value{}, fmt.Errorf("%w: unknown function %q", ErrEval, n.name)
	}
	if len(args) < spec.minArgs || (spec.maxArgs >= 0 && len(args) > spec.maxArgs) {
		if spec.minArgs == spec.maxArgs {
			return value{}, fmt.Errorf("%w: %s expects %d argument(s)", ErrEval, n.name, spec.minArgs)
		}
		if spec.maxArgs < 0 {
			return value{}, fmt.Errorf("%w: %s expects >= %d argument(s)", ErrEval, n.name, spec.minArgs)
		}
		return value{}, fmt.Errorf("%w: %s expects %d..%d argument(s)", ErrEval, n.name, spec.minArgs, spec.maxArgs)
	}
	return spec.fn(args)
}

func truthy(v value) bool {
	if v.kind == valueComplex {
		return v.c != 0
	}
	return v.f != 0
}
