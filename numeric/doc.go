// Package numeric provides the numerical analysis kit behind the grapher:
// differentiation, quadrature, root finding and interpolation over plain
// float functions. Every routine reports success through an ok flag instead
// of an error; a false flag means the underlying function was invalid
// somewhere the routine needed it, or the iteration did not converge.
package numeric
