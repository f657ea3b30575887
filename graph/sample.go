package graph

import (
	"math"

	"grapher/expr"
)

// Samplers share the "skip invalid, keep walking" policy: a sample whose
// evaluation is not a finite real number is dropped from the output, and the
// walk continues. A degenerate pass may return an empty slice; that is not
// an error.

// SampleCartesian walks x over r and evaluates f with scope {x, extra}.
func SampleCartesian(f *expr.Compiled, r Range, extra map[string]float64) ([]Point, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	scope := cloneScope(extra)
	out := make([]Point, 0, r.Steps())
	walk(r, func(x float64) {
		scope["x"] = x
		res := f.Eval(scope)
		if res.Valid() {
			out = append(out, Point{X: x, Y: res.Value()})
		}
	})
	return out, nil
}

// SampleParametric walks t over r and evaluates the two component
// expressions independently. A point is kept only when BOTH are valid.
func SampleParametric(p Parametric, r Range, extra map[string]float64) ([]Point, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	scope := cloneScope(extra)
	out := make([]Point, 0, r.Steps())
	walk(r, func(t float64) {
		scope["t"] = t
		xr := p.X.Eval(scope)
		if !xr.Valid() {
			return
		}
		yr := p.Y.Eval(scope)
		if !yr.Valid() {
			return
		}
		out = append(out, Point{X: xr.Value(), Y: yr.Value()})
	})
	return out, nil
}

// SamplePolar walks theta over r, evaluates r(theta) and converts to
// cartesian coordinates. Both converted coordinates must be finite.
func SamplePolar(f *expr.Compiled, r Range, extra map[string]float64) ([]Point, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	scope := cloneScope(extra)
	out := make([]Point, 0, r.Steps())
	walk(r, func(theta float64) {
		scope["theta"] = theta
		res := f.Eval(scope)
		if !res.Valid() {
			return
		}
		radius := res.Value()
		x := radius * math.Cos(theta)
		y := radius * math.Sin(theta)
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			return
		}
		out = append(out, Point{X: x, Y: y})
	})
	return out, nil
}

// walk visits min, min+step, ... and always includes max as the final
// sample so the curve reaches the domain edge.
func walk(r Range, visit func(v float64)) {
	n := r.Steps()
	for i := 0; i < n; i++ {
		visit(r.Min + float64(i)*r.Step)
	}
	last := r.Min + float64(n-1)*r.Step
	if last < r.Max {
		visit(r.Max)
	}
}

func cloneScope(extra map[string]float64) map[string]float64 {
	scope := make(map[string]float64, len(extra)+2)
	for k, v := range extra {
		scope[k] = v
	}
	return scope
}
