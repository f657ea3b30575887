package graph

import "math"

// BuildPaths groups sampled points into drawable polylines. A jump between
// consecutive points taller than half the canvas is treated as a
// discontinuity (asymptote or branch cut) and starts a new path, so the
// renderer never draws a vertical connector across it. Non-finite points
// also break the current path.
func BuildPaths(points []Point, v Viewport, canvasHeight int) [][]Point {
	if len(points) == 0 {
		return nil
	}
	if canvasHeight <= 0 {
		canvasHeight = 1
	}
	limit := math.Inf(1)
	if v.Height() > 0 {
		// Half the canvas in world units.
		limit = v.Height() / 2
	}

	var paths [][]Point
	var cur []Point
	flush := func() {
		if len(cur) >= 2 {
			paths = append(paths, cur)
		}
		cur = nil
	}

	for _, p := range points {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) || math.IsNaN(p.X) || math.IsInf(p.X, 0) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			if math.Abs(p.Y-prev.Y) > limit {
				flush()
			}
		}
		cur = append(cur, p)
	}
	flush()
	return paths
}
