package stats

import (
	"errors"
	"math"
)

var (
	// ErrInsufficientData means the dataset has fewer usable points than
	// the model has coefficients.
	ErrInsufficientData = errors.New("insufficient data points")
	// ErrSingularMatrix means the normal equations are degenerate, for
	// example when every point shares the same x.
	ErrSingularMatrix = errors.New("singular normal equations")
)

// Point is one dataset sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Family names a regression model.
type Family string

const (
	FamilyLinear      Family = "linear"
	FamilyQuadratic   Family = "quadratic"
	FamilyExponential Family = "exponential"
	FamilyLogarithmic Family = "logarithmic"
)

// RegressionResult is a fitted model. Coefficients are ordered from the
// constant term up: [intercept, slope] for linear and logarithmic fits,
// [c, b, a] for y = a*x^2 + b*x + c, [a, b] for y = a*e^(b*x). Residuals
// are index-aligned with the input; points a transform had to discard
// carry a zero residual.
type RegressionResult struct {
	Family       Family    `json:"family"`
	Coefficients []float64 `json:"coefficients"`
	RSquared     float64   `json:"rSquared"`
	Residuals    []float64 `json:"residuals"`
}

// Predict evaluates the fitted model at x.
func (r RegressionResult) Predict(x float64) float64 {
	c := r.Coefficients
	switch r.Family {
	case FamilyQuadratic:
		return c[0] + c[1]*x + c[2]*x*x
	case FamilyExponential:
		return c[0] * math.Exp(c[1]*x)
	case FamilyLogarithmic:
		return c[0] + c[1]*math.Log(x)
	default:
		return c[0] + c[1]*x
	}
}

// Linear fits y = intercept + slope*x by ordinary least squares.
func Linear(points []Point) (RegressionResult, error) {
	if len(points) < 2 {
		return RegressionResult{}, ErrInsufficientData
	}
	intercept, slope, ok := leastSquares(points, func(p Point) (float64, float64, bool) {
		return p.X, p.Y, true
	})
	if !ok {
		return RegressionResult{}, ErrSingularMatrix
	}

	res := RegressionResult{
		Family:       FamilyLinear,
		Coefficients: []float64{intercept, slope},
		Residuals:    make([]float64, len(points)),
	}
	predicted := make([]float64, len(points))
	observed := make([]float64, len(points))
	for i, p := range points {
		predicted[i] = intercept + slope*p.X
		observed[i] = p.Y
		res.Residuals[i] = p.Y - predicted[i]
	}
	res.RSquared = rSquared(observed, predicted)
	return res, nil
}

// Quadratic fits y = a*x^2 + b*x + c through the 3x3 normal equations
// solved by Cramer's rule. Coefficients come back constant-first: [c, b, a].
func Quadratic(points []Point) (RegressionResult, error) {
	n := len(points)
	if n < 3 {
		return RegressionResult{}, ErrInsufficientData
	}

	var sumX, sumX2, sumX3, sumX4, sumY, sumXY, sumX2Y float64
	for _, p := range points {
		xi := p.X
		xi2 := xi * xi
		sumX += xi
		sumX2 += xi2
		sumX3 += xi2 * xi
		sumX4 += xi2 * xi2
		sumY += p.Y
		sumXY += xi * p.Y
		sumX2Y += xi2 * p.Y
	}

	// Normal equations, cofactor expansion along the first row:
	//   [n     sumX   sumX2] [c]   [sumY]
	//   [sumX  sumX2  sumX3] [b] = [sumXY]
	//   [sumX2 sumX3  sumX4] [a]   [sumX2Y]
	fn := float64(n)
	det := fn*(sumX2*sumX4-sumX3*sumX3) -
		sumX*(sumX*sumX4-sumX3*sumX2) +
		sumX2*(sumX*sumX3-sumX2*sumX2)
	if math.Abs(det) < 1e-10 {
		return RegressionResult{}, ErrSingularMatrix
	}

	detC := sumY*(sumX2*sumX4-sumX3*sumX3) -
		sumX*(sumXY*sumX4-sumX3*sumX2Y) +
		sumX2*(sumXY*sumX3-sumX2*sumX2Y)
	detB := fn*(sumXY*sumX4-sumX3*sumX2Y) -
		sumY*(sumX*sumX4-sumX3*sumX2) +
		sumX2*(sumX*sumX2Y-sumXY*sumX2)
	detA := fn*(sumX2*sumX2Y-sumXY*sumX3) -
		sumX*(sumX*sumX2Y-sumXY*sumX2) +
		sumY*(sumX*sumX3-sumX2*sumX2)

	c := detC / det
	b := detB / det
	a := detA / det

	res := RegressionResult{
		Family:       FamilyQuadratic,
		Coefficients: []float64{c, b, a},
		Residuals:    make([]float64, n),
	}
	predicted := make([]float64, n)
	observed := make([]float64, n)
	for i, p := range points {
		predicted[i] = c + b*p.X + a*p.X*p.X
		observed[i] = p.Y
		res.Residuals[i] = p.Y - predicted[i]
	}
	res.RSquared = rSquared(observed, predicted)
	return res, nil
}

// Polynomial fits a polynomial of the requested degree. Only degree 2 has a
// dedicated closed form; every other degree falls back to the linear model.
func Polynomial(points []Point, degree int) (RegressionResult, error) {
	if degree == 2 {
		return Quadratic(points)
	}
	return Linear(points)
}

// Exponential fits y = a*e^(b*x) by log-linearizing the y values. Points
// with y <= 0 cannot enter the transform and are skipped; at least two must
// survive. R squared is computed against the surviving points.
func Exponential(points []Point) (RegressionResult, error) {
	intercept, slope, kept, ok := transformedFit(points, func(p Point) (float64, float64, bool) {
		if p.Y <= 0 {
			return 0, 0, false
		}
		return p.X, math.Log(p.Y), true
	})
	if !ok {
		return RegressionResult{}, ErrSingularMatrix
	}
	if kept < 2 {
		return RegressionResult{}, ErrInsufficientData
	}
	a := math.Exp(intercept)
	b := slope

	res := RegressionResult{
		Family:       FamilyExponential,
		Coefficients: []float64{a, b},
		Residuals:    make([]float64, len(points)),
	}
	observed := make([]float64, 0, kept)
	predicted := make([]float64, 0, kept)
	for i, p := range points {
		if p.Y <= 0 {
			continue
		}
		pred := a * math.Exp(b*p.X)
		res.Residuals[i] = p.Y - pred
		observed = append(observed, p.Y)
		predicted = append(predicted, pred)
	}
	res.RSquared = rSquared(observed, predicted)
	return res, nil
}

// Logarithmic fits y = a + b*ln(x). Points with x <= 0 are skipped; at
// least two must survive.
func Logarithmic(points []Point) (RegressionResult, error) {
	a, b, kept, ok := transformedFit(points, func(p Point) (float64, float64, bool) {
		if p.X <= 0 {
			return 0, 0, false
		}
		return math.Log(p.X), p.Y, true
	})
	if !ok {
		return RegressionResult{}, ErrSingularMatrix
	}
	if kept < 2 {
		return RegressionResult{}, ErrInsufficientData
	}

	res := RegressionResult{
		Family:       FamilyLogarithmic,
		Coefficients: []float64{a, b},
		Residuals:    make([]float64, len(points)),
	}
	observed := make([]float64, 0, kept)
	predicted := make([]float64, 0, kept)
	for i, p := range points {
		if p.X <= 0 {
			continue
		}
		pred := a + b*math.Log(p.X)
		res.Residuals[i] = p.Y - pred
		observed = append(observed, p.Y)
		predicted = append(predicted, pred)
	}
	res.RSquared = rSquared(observed, predicted)
	return res, nil
}

// leastSquares runs OLS over the transformed pairs. ok is false when the
// transformed x values carry no variance.
func leastSquares(points []Point, transform func(Point) (float64, float64, bool)) (intercept, slope float64, ok bool) {
	var sumX, sumY, sumXY, sumX2 float64
	n := 0
	for _, p := range points {
		xi, yi, keep := transform(p)
		if !keep {
			continue
		}
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
		n++
	}
	if n == 0 {
		return 0, 0, false
	}
	fn := float64(n)
	meanX := sumX / fn
	meanY := sumY / fn
	den := sumX2 - fn*meanX*meanX
	if math.Abs(den) < 1e-10 {
		return 0, 0, false
	}
	slope = (sumXY - fn*meanX*meanY) / den
	intercept = meanY - slope*meanX
	return intercept, slope, true
}

func transformedFit(points []Point, transform func(Point) (float64, float64, bool)) (intercept, slope float64, kept int, ok bool) {
	for _, p := range points {
		if _, _, keep := transform(p); keep {
			kept++
		}
	}
	if kept < 2 {
		return 0, 0, kept, true
	}
	intercept, slope, ok = leastSquares(points, transform)
	return intercept, slope, kept, ok
}

// rSquared is the coefficient of determination, 1 - SSres/SStot. A series
// with no variance in the observations reports 0.
func rSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}
	var mean float64
	for _, v := range observed {
		mean += v
	}
	mean /= float64(len(observed))

	var ssTot, ssRes float64
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}
