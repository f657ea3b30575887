package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearPerfectFit(t *testing.T) {
	res, err := Linear([]Point{{0, 0}, {1, 2}, {2, 4}})
	require.NoError(t, err)
	require.Len(t, res.Coefficients, 2)
	assert.InDelta(t, 0.0, res.Coefficients[0], 1e-10)
	assert.InDelta(t, 2.0, res.Coefficients[1], 1e-10)
	assert.InDelta(t, 1.0, res.RSquared, 1e-10)
	for _, r := range res.Residuals {
		assert.InDelta(t, 0.0, r, 1e-10)
	}
}

func TestLinearInsufficientData(t *testing.T) {
	_, err := Linear([]Point{{1, 1}})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestLinearVerticalLine(t *testing.T) {
	_, err := Linear([]Point{{2, 1}, {2, 5}, {2, 9}})
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

func TestQuadraticPerfectFit(t *testing.T) {
	pts := []Point{{-2, 4}, {-1, 1}, {0, 0}, {1, 1}, {2, 4}}
	res, err := Quadratic(pts)
	require.NoError(t, err)
	require.Len(t, res.Coefficients, 3)
	assert.InDelta(t, 0.0, res.Coefficients[0], 1e-9)
	assert.InDelta(t, 0.0, res.Coefficients[1], 1e-9)
	assert.InDelta(t, 1.0, res.Coefficients[2], 1e-9)
	assert.InDelta(t, 1.0, res.RSquared, 1e-9)
}

func TestQuadraticShiftedParabola(t *testing.T) {
	// y = 2x^2 - 3x + 1
	f := func(x float64) float64 { return 2*x*x - 3*x + 1 }
	var pts []Point
	for x := -3.0; x <= 3; x++ {
		pts = append(pts, Point{X: x, Y: f(x)})
	}
	res, err := Quadratic(pts)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Coefficients[0], 1e-9)
	assert.InDelta(t, -3.0, res.Coefficients[1], 1e-9)
	assert.InDelta(t, 2.0, res.Coefficients[2], 1e-9)
}

func TestQuadraticInsufficientData(t *testing.T) {
	_, err := Quadratic([]Point{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestQuadraticDegenerateX(t *testing.T) {
	// Two distinct x values cannot pin down three coefficients.
	_, err := Quadratic([]Point{{1, 1}, {1, 2}, {2, 3}})
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

func TestPolynomialDegreeRouting(t *testing.T) {
	pts := []Point{{0, 1}, {1, 3}, {2, 9}, {3, 19}}

	quad, err := Polynomial(pts, 2)
	require.NoError(t, err)
	assert.Equal(t, FamilyQuadratic, quad.Family)

	lin, err := Polynomial(pts, 5)
	require.NoError(t, err)
	assert.Equal(t, FamilyLinear, lin.Family)
}

func TestExponentialFit(t *testing.T) {
	// y = 3 * e^(0.5x)
	var pts []Point
	for x := 0.0; x <= 5; x++ {
		pts = append(pts, Point{X: x, Y: 3 * math.Exp(0.5*x)})
	}
	res, err := Exponential(pts)
	require.NoError(t, err)
	assert.Equal(t, FamilyExponential, res.Family)
	assert.InDelta(t, 3.0, res.Coefficients[0], 1e-9)
	assert.InDelta(t, 0.5, res.Coefficients[1], 1e-9)
	assert.InDelta(t, 1.0, res.RSquared, 1e-9)
}

func TestExponentialFiltersNonPositive(t *testing.T) {
	pts := []Point{{0, -1}, {1, 0}, {2, math.E}, {3, math.E * math.E}, {4, math.E * math.E * math.E}}
	res, err := Exponential(pts)
	require.NoError(t, err)
	require.Len(t, res.Residuals, len(pts))
	assert.Zero(t, res.Residuals[0])
	assert.Zero(t, res.Residuals[1])
	assert.InDelta(t, 1.0, res.Coefficients[1], 1e-9)
}

func TestExponentialInsufficientAfterFilter(t *testing.T) {
	_, err := Exponential([]Point{{0, -1}, {1, -2}, {2, 5}})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestLogarithmicFit(t *testing.T) {
	// y = 2 + 3*ln(x)
	var pts []Point
	for _, x := range []float64{1, 2, 4, 8, 16} {
		pts = append(pts, Point{X: x, Y: 2 + 3*math.Log(x)})
	}
	res, err := Logarithmic(pts)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.Coefficients[0], 1e-9)
	assert.InDelta(t, 3.0, res.Coefficients[1], 1e-9)
}

func TestLogarithmicFiltersNonPositiveX(t *testing.T) {
	pts := []Point{{-1, 5}, {0, 5}, {1, 2}, {math.E, 5}}
	res, err := Logarithmic(pts)
	require.NoError(t, err)
	assert.Zero(t, res.Residuals[0])
	assert.Zero(t, res.Residuals[1])
	assert.InDelta(t, 2.0, res.Coefficients[0], 1e-9)
	assert.InDelta(t, 3.0, res.Coefficients[1], 1e-9)
}

func TestPredict(t *testing.T) {
	res, err := Quadratic([]Point{{-1, 1}, {0, 0}, {1, 1}, {2, 4}})
	require.NoError(t, err)
	assert.InDelta(t, 9.0, res.Predict(3), 1e-9)

	lin, err := Linear([]Point{{0, 1}, {1, 3}})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, lin.Predict(2), 1e-9)
}
