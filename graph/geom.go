package graph

import (
	"errors"
	"fmt"
	"math"
)

var ErrRange = errors.New("invalid sample range")

// Point is a position in world (graph) coordinates.
type Point struct {
	X float64
	Y float64
}

// Segment is a straight world-space line segment, used by the implicit
// sampler whose output is not a single ordered walk.
type Segment struct {
	A Point
	B Point
}

// Range describes a 1-D domain walk: x for cartesian sampling, the
// parameter t, or the angle theta.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Validate enforces the walk invariants: positive step, ordered bounds, and
// a finite number of steps.
func (r Range) Validate() error {
	if r.Step <= 0 || math.IsNaN(r.Step) {
		return fmt.Errorf("%w: step %v", ErrRange, r.Step)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %v > max %v", ErrRange, r.Min, r.Max)
	}
	if math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) || math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return fmt.Errorf("%w: non-finite bounds", ErrRange)
	}
	if math.IsInf((r.Max-r.Min)/r.Step, 0) {
		return fmt.Errorf("%w: non-terminating walk", ErrRange)
	}
	return nil
}

// Steps returns the number of samples the walk produces, endpoints included.
func (r Range) Steps() int {
	return int(math.Floor((r.Max-r.Min)/r.Step)) + 1
}

// Viewport is the visible rectangular world-coordinate window. The core
// only reads it; pan/zoom state is owned by the caller.
type Viewport struct {
	XMin float64 `json:"xMin"`
	XMax float64 `json:"xMax"`
	YMin float64 `json:"yMin"`
	YMax float64 `json:"yMax"`
}

// Width returns the world-space width of the window.
func (v Viewport) Width() float64 { return v.XMax - v.XMin }

// Height returns the world-space height of the window.
func (v Viewport) Height() float64 { return v.YMax - v.YMin }

// StepFor derives the cartesian sampling step from the render width:
// domain width over twice the pixel width, i.e. roughly two samples per
// pixel. This is a policy knob, not a hard constant.
func (v Viewport) StepFor(pixelWidth int) float64 {
	if pixelWidth <= 0 {
		pixelWidth = 1
	}
	return v.Width() / float64(2*pixelWidth)
}

// XRange returns the full-width sampling range at the given render width.
func (v Viewport) XRange(pixelWidth int) Range {
	return Range{Min: v.XMin, Max: v.XMax, Step: v.StepFor(pixelWidth)}
}
