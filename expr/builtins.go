package expr

import (
	"math"
	"math/cmplx"
)

// scalarBuiltin describes a function callable from expressions.
type scalarBuiltin struct {
	minArgs int
	maxArgs int
	fn      func(args []value) (value, error)
}

func scalarUnary(fn func(float64) float64) func([]value) (value, error) {
	return func(args []value) (value, error) {
		return realValue(fn(args[0].real64())), nil
	}
}

func scalarBinary(fn func(a, b float64) float64) func([]value) (value, error) {
	return func(args []value) (value, error) {
		return realValue(fn(args[0].real64(), args[1].real64())), nil
	}
}

var scalarBuiltins = map[string]scalarBuiltin{
	// Trigonometry.
	"sin":   {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Sin)},
	"cos":   {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Cos)},
	"tan":   {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Tan)},
	"asin":  {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Asin)},
	"acos":  {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Acos)},
	"atan":  {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Atan)},
	"atan2": {minArgs: 2, maxArgs: 2, fn: scalarBinary(math.Atan2)},
	"cot": {minArgs: 1, maxArgs: 1, fn: scalarUnary(func(x float64) float64 {
		return 1 / math.Tan(x)
	})},
	"sec": {minArgs: 1, maxArgs: 1, fn: scalarUnary(func(x float64) float64 {
		return 1 / math.Cos(x)
	})},
	"csc": {minArgs: 1, maxArgs: 1, fn: scalarUnary(func(x float64) float64 {
		return 1 / math.Sin(x)
	})},

	// Hyperbolic.
	"sinh":  {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Sinh)},
	"cosh":  {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Cosh)},
	"tanh":  {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Tanh)},
	"asinh": {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Asinh)},
	"acosh": {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Acosh)},
	"atanh": {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Atanh)},

	// Exponentials and logs.
	"exp":   {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Exp)},
	"ln":    {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Log)},
	"log":   {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Log)},
	"log2":  {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Log2)},
	"log10": {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Log10)},

	// Powers and roots.
	"pow": {minArgs: 2, maxArgs: 2, fn: func(args []value) (value, error) {
		return evalBinaryReal('^', args[0].real64(), args[1].real64())
	}},
	"sqrt": {minArgs: 1, maxArgs: 1, fn: func(args []value) (value, error) {
		x := args[0].real64()
		// Principal square root of a negative number is imaginary; kept
		// complex here, truncated to its real component at the boundary.
		if x < 0 {
			return complexValue(complex(0, math.Sqrt(-x))), nil
		}
		return realValue(math.Sqrt(x)), nil
	}},
	"cbrt":  {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Cbrt)},
	"hypot": {minArgs: 2, maxArgs: 2, fn: scalarBinary(math.Hypot)},

	// Rounding.
	"floor": {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Floor)},
	"ceil":  {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Ceil)},
	"trunc": {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Trunc)},
	"round": {minArgs: 1, maxArgs: 1, fn: scalarUnary(math.Round)},

	// Misc numeric.
	"abs": {minArgs: 1, maxArgs: 1, fn: func(args []value) (value, error) {
		if !args[0].isReal() {
			return realValue(cmplx.Abs(args[0].c)), nil
		}
		return realValue(math.Abs(args[0].f)), nil
	}},
	"sign": {minArgs: 1, maxArgs: 1, fn: scalarUnary(sign)},
	"mod": {minArgs: 2, maxArgs: 2, fn: scalarBinary(func(a, b float64) float64 {
		return a - b*math.Floor(a/b)
	})},
	"rad": {minArgs: 1, maxArgs: 1, fn: scalarUnary(func(x float64) float64 {
		return x * math.Pi / 180
	})},
	"deg": {minArgs: 1, maxArgs: 1, fn: scalarUnary(func(x float64) float64 {
		return x * 180 / math.Pi
	})},

	// Variadic.
	"min": {minArgs: 1, maxArgs: -1, fn: func(args []value) (value, error) {
		m := args[0].real64()
		for _, v := range args[1:] {
			m = math.Min(m, v.real64())
		}
		return realValue(m), nil
	}},
	"max": {minArgs: 1, maxArgs: -1, fn: func(args []value) (value, error) {
		m := args[0].real64()
		for _, v := range args[1:] {
			m = math.Max(m, v.real64())
		}
		return realValue(m), nil
	}},
}

func sign(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// builtinCallComplex handles functions whose argument is complex, plus the
// accessors that only make sense for complex values.
func builtinCallComplex(name string, args []value) (value, bool, error) {
	if len(args) != 1 {
		return value{}, false, nil
	}

	switch name {
	case "re":
		return realValue(real(args[0].complex128())), true, nil
	case "im":
		return realValue(imag(args[0].complex128())), true, nil
	case "conj":
		return complexValue(cmplx.Conj(args[0].complex128())), true, nil
	case "arg":
		return realValue(cmplx.Phase(args[0].complex128())), true, nil
	}

	if args[0].isReal() {
		return value{}, false, nil
	}
	z := args[0].c
	switch name {
	case "abs":
		return realValue(cmplx.Abs(z)), true, nil
	case "sqrt":
		return complexValue(cmplx.Sqrt(z)), true, nil
	case "exp":
		return complexValue(cmplx.Exp(z)), true, nil
	case "ln", "log":
		return complexValue(cmplx.Log(z)), true, nil
	case "sin":
		return complexValue(cmplx.Sin(z)), true, nil
	case "cos":
		return complexValue(cmplx.Cos(z)), true, nil
	case "tan":
		return complexValue(cmplx.Tan(z)), true, nil
	}

	return value{}, false, nil
}
