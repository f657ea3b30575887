// Package stats implements the descriptive statistics and curve-fitting
// engine for plotted datasets: summaries, outlier detection, correlation
// and a family of closed-form least-squares regressions.
package stats
