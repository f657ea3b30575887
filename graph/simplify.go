package graph

import "math"

// DouglasPeucker reduces a polyline to the subset of points needed to stay
// within epsilon of the original. Paths of two or fewer points are returned
// as-is. A non-positive epsilon keeps every point.
func DouglasPeucker(points []Point, epsilon float64) []Point {
	if len(points) <= 2 || epsilon <= 0 {
		return points
	}

	maxDist := 0.0
	maxIdx := 0
	first := points[0]
	last := points[len(points)-1]
	for i := 1; i < len(points)-1; i++ {
		d := perpendicularDistance(points[i], first, last)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxDist <= epsilon {
		return []Point{first, last}
	}

	left := DouglasPeucker(points[:maxIdx+1], epsilon)
	right := DouglasPeucker(points[maxIdx:], epsilon)
	out := make([]Point, 0, len(left)+len(right)-1)
	out = append(out, left...)
	out = append(out, right[1:]...)
	return out
}

func perpendicularDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	return math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / norm
}

// MovingAverage smooths the Y values with a centered window, shrinking the
// window near the ends so every output point averages only real samples.
// Window sizes of one or less, or at least the path length, leave the
// input unchanged.
func MovingAverage(points []Point, window int) []Point {
	if window <= 1 || window >= len(points) {
		return points
	}
	half := window / 2
	out := make([]Point, len(points))
	for i := range points {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(points)-1 {
			hi = len(points) - 1
		}
		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += points[j].Y
		}
		out[i] = Point{X: points[i].X, Y: sum / float64(hi-lo+1)}
	}
	return out
}

// Smooth pulls each interior point toward the midpoint of its neighbors by
// the given factor. Endpoints are never moved, so the curve keeps its
// domain. Factors outside (0, 1] leave the input unchanged.
func Smooth(points []Point, factor float64) []Point {
	if len(points) < 3 || factor <= 0 || factor > 1 {
		return points
	}
	out := make([]Point, len(points))
	copy(out, points)
	for i := 1; i < len(points)-1; i++ {
		mid := (points[i-1].Y + points[i+1].Y) / 2
		out[i].Y = points[i].Y + factor*(mid-points[i].Y)
	}
	return out
}
