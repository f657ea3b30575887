package graph

import (
	"math"

	"grapher/expr"
)

// SampleImplicit extracts the zero contour of f(x, y) over the viewport on
// an n-by-n grid using marching squares. Cells touching an invalid sample
// are skipped; the result is an unordered set of short segments, since a
// contour has no single walk order to preserve.
func SampleImplicit(f *expr.Compiled, v Viewport, n int, extra map[string]float64) []Segment {
	if n < 8 {
		n = 8
	} else if n > 512 {
		n = 512
	}
	if v.Width() <= 0 || v.Height() <= 0 {
		return nil
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		xs[i] = v.XMin + t*v.Width()
		ys[i] = v.YMin + t*v.Height()
	}

	// Grid values; invalid evaluations become NaN and poison their cells.
	scope := cloneScope(extra)
	val := make([]float64, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			scope["x"] = xs[i]
			scope["y"] = ys[j]
			res := f.Eval(scope)
			if res.Valid() {
				val[j*n+i] = res.Value()
			} else {
				val[j*n+i] = math.NaN()
			}
		}
	}

	interp := func(x0, y0, z0, x1, y1, z1 float64) (float64, float64, bool) {
		if math.IsNaN(z0) || math.IsNaN(z1) {
			return 0, 0, false
		}
		dz := z1 - z0
		if dz == 0 {
			return (x0 + x1) / 2, (y0 + y1) / 2, true
		}
		t := -z0 / dz
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		return x0 + t*(x1-x0), y0 + t*(y1-y0), true
	}

	var segs []Segment
	for j := 0; j < n-1; j++ {
		y0 := ys[j]
		y1 := ys[j+1]
		for i := 0; i < n-1; i++ {
			x0 := xs[i]
			x1 := xs[i+1]
			z00 := val[j*n+i]
			z10 := val[j*n+i+1]
			z01 := val[(j+1)*n+i]
			z11 := val[(j+1)*n+i+1]

			idx := 0
			if z00 > 0 {
				idx |= 1
			}
			if z10 > 0 {
				idx |= 2
			}
			if z11 > 0 {
				idx |= 4
			}
			if z01 > 0 {
				idx |= 8
			}
			if idx == 0 || idx == 15 {
				continue
			}

			// Edge intersections: e0 bottom (00-10), e1 right (10-11),
			// e2 top (01-11), e3 left (00-01).
			var ex, ey [4]float64
			var ok [4]bool
			ex[0], ey[0], ok[0] = interp(x0, y0, z00, x1, y0, z10)
			ex[1], ey[1], ok[1] = interp(x1, y0, z10, x1, y1, z11)
			ex[2], ey[2], ok[2] = interp(x0, y1, z01, x1, y1, z11)
			ex[3], ey[3], ok[3] = interp(x0, y0, z00, x0, y1, z01)

			emit := func(a, b int) {
				if ok[a] && ok[b] {
					segs = append(segs, Segment{
						A: Point{X: ex[a], Y: ey[a]},
						B: Point{X: ex[b], Y: ey[b]},
					})
				}
			}

			switch idx {
			case 1, 14:
				emit(3, 0)
			case 2, 13:
				emit(0, 1)
			case 3, 12:
				emit(3, 1)
			case 4, 11:
				emit(1, 2)
			case 5:
				emit(3, 2)
				emit(0, 1)
			case 6, 9:
				emit(0, 2)
			case 7, 8:
				emit(3, 2)
			case 10:
				emit(3, 0)
				emit(1, 2)
			}
		}
	}
	return segs
}
