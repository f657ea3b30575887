package numeric

import (
	"math"

	"grapher/expr"
)

// Func is a real function of one variable. The second return value reports
// whether the function is defined at x.
type Func func(x float64) (float64, bool)

// FromCompiled adapts a compiled expression to a Func. The expression is
// evaluated with the named variable bound to x; extra variables are passed
// through on every call.
func FromCompiled(c *expr.Compiled, name string, extra map[string]float64) Func {
	scope := make(map[string]float64, len(extra)+1)
	for k, v := range extra {
		scope[k] = v
	}
	return func(x float64) (float64, bool) {
		scope[name] = x
		res := c.Eval(scope)
		if !res.Valid() {
			return 0, false
		}
		return res.Value(), true
	}
}

// derivativeStep is the central difference step. Small enough for plot-scale
// accuracy, large enough to stay above float64 rounding noise.
const derivativeStep = 1e-8

// Derivative estimates f'(x) by central difference.
func Derivative(f Func, x float64) (float64, bool) {
	fm, ok := f(x - derivativeStep)
	if !ok {
		return 0, false
	}
	fp, ok := f(x + derivativeStep)
	if !ok {
		return 0, false
	}
	d := (fp - fm) / (2 * derivativeStep)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, false
	}
	return d, true
}

// Integral approximates the definite integral of f over [a, b] with
// composite Simpson quadrature. n is the number of subintervals; values
// below 2 select the default of 1000, odd values are rounded up to even.
func Integral(f Func, a, b float64, n int) (float64, bool) {
	if a == b {
		return 0, true
	}
	if n < 2 {
		n = 1000
	}
	if n%2 == 1 {
		n++
	}

	h := (b - a) / float64(n)
	fa, ok := f(a)
	if !ok {
		return 0, false
	}
	fb, ok := f(b)
	if !ok {
		return 0, false
	}
	sumOdd := 0.0
	sumEven := 0.0
	for i := 1; i < n; i++ {
		fx, ok := f(a + float64(i)*h)
		if !ok {
			return 0, false
		}
		if i%2 == 1 {
			sumOdd += fx
		} else {
			sumEven += fx
		}
	}
	out := (h / 3) * (fa + fb + 4*sumOdd + 2*sumEven)
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, false
	}
	return out, true
}

// Trapezoid approximates the definite integral of f over [a, b] with the
// composite trapezoid rule. Cheaper and rougher than Integral; n below 1
// selects the default of 1000.
func Trapezoid(f Func, a, b float64, n int) (float64, bool) {
	if a == b {
		return 0, true
	}
	if n < 1 {
		n = 1000
	}

	h := (b - a) / float64(n)
	fa, ok := f(a)
	if !ok {
		return 0, false
	}
	fb, ok := f(b)
	if !ok {
		return 0, false
	}
	sum := 0.5 * (fa + fb)
	for i := 1; i < n; i++ {
		fx, ok := f(a + float64(i)*h)
		if !ok {
			return 0, false
		}
		sum += fx
	}
	out := sum * h
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, false
	}
	return out, true
}

// Interp evaluates the piecewise-linear interpolant through the tabulated
// points (xs[i], ys[i]) at x. xs must be sorted ascending; x outside the
// table clamps to the nearest endpoint. Mismatched or empty tables fail.
func Interp(xs, ys []float64, x float64) (float64, bool) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return 0, false
	}
	if x <= xs[0] {
		return ys[0], true
	}
	last := len(xs) - 1
	if x >= xs[last] {
		return ys[last], true
	}
	for i := 0; i < last; i++ {
		if xs[i] <= x && x <= xs[i+1] {
			if xs[i] == xs[i+1] {
				return ys[i], true
			}
			t := (x - xs[i]) / (xs[i+1] - xs[i])
			return ys[i] + t*(ys[i+1]-ys[i]), true
		}
	}
	return 0, false
}
