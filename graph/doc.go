// Package graph turns compiled expressions into renderable geometry: domain
// walking for cartesian, parametric, polar, and implicit functions, path
// splitting at discontinuities, and polyline simplification.
//
// Everything here is a pure computation over values; sampling never fails,
// it only drops samples whose evaluation is invalid.
package graph
