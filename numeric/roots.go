package numeric

import "math"

const (
	defaultRootIterations = 100
	defaultRootTolerance  = 1e-10
)

// NewtonRaphson searches for a root of f near x0 using Newton's iteration
// with a numerically estimated derivative. maxIter values below 1 select
// the default of 100, tol values at or below 0 the default of 1e-10. The
// method fails when the derivative collapses below tol or the iteration
// budget runs out without convergence; callers wanting robustness near flat
// regions should fall back to Bisection with a bracketing interval.
func NewtonRaphson(f Func, x0 float64, maxIter int, tol float64) (float64, bool) {
	if maxIter < 1 {
		maxIter = defaultRootIterations
	}
	if tol <= 0 {
		tol = defaultRootTolerance
	}

	x := x0
	for i := 0; i < maxIter; i++ {
		fx, ok := f(x)
		if !ok {
			return 0, false
		}
		if math.Abs(fx) <= tol {
			return x, true
		}
		dfx, ok := Derivative(f, x)
		if !ok || math.Abs(dfx) < tol {
			return 0, false
		}
		next := x - fx/dfx
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, false
		}
		if math.Abs(next-x) < tol {
			return next, true
		}
		x = next
	}
	return 0, false
}

// Bisection searches for a root of f in [a, b]. f must be defined at both
// endpoints and change sign between them.
func Bisection(f Func, a, b float64, maxIter int, tol float64) (float64, bool) {
	if maxIter < 1 {
		maxIter = defaultRootIterations
	}
	if tol <= 0 {
		tol = defaultRootTolerance
	}
	if a > b {
		a, b = b, a
	}

	fa, ok := f(a)
	if !ok || math.IsNaN(fa) {
		return 0, false
	}
	fb, ok := f(b)
	if !ok || math.IsNaN(fb) {
		return 0, false
	}
	if fa == 0 {
		return a, true
	}
	if fb == 0 {
		return b, true
	}
	if (fa < 0) == (fb < 0) {
		return 0, false
	}

	for i := 0; i < maxIter; i++ {
		m := (a + b) / 2
		fm, ok := f(m)
		if !ok {
			return 0, false
		}
		if math.Abs(fm) <= tol || math.Abs(b-a) <= tol*(1+math.Abs(m)) {
			return m, true
		}
		if (fa < 0) != (fm < 0) {
			b = m
		} else {
			a = m
			fa = fm
		}
	}
	return (a + b) / 2, true
}

// Secant searches for a root of f starting from the pair x0, x1. It needs
// no derivative, so it also works where Derivative cannot sample f on both
// sides of the iterate.
func Secant(f Func, x0, x1 float64, maxIter int, tol float64) (float64, bool) {
	if maxIter < 1 {
		maxIter = defaultRootIterations
	}
	if tol <= 0 {
		tol = defaultRootTolerance
	}

	f0, ok := f(x0)
	if !ok {
		return 0, false
	}
	f1, ok := f(x1)
	if !ok {
		return 0, false
	}

	for i := 0; i < maxIter; i++ {
		if math.Abs(f1) <= tol {
			return x1, true
		}
		den := f1 - f0
		if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
			return 0, false
		}
		x2 := x1 - f1*(x1-x0)/den
		if math.Abs(x2-x1) <= tol*(1+math.Abs(x1)) {
			return x2, true
		}
		x0, x1 = x1, x2
		f0 = f1
		f1, ok = f(x1)
		if !ok {
			return 0, false
		}
	}
	return 0, false
}
