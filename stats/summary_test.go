package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{}, s)
}

func TestSummarizeBasic(t *testing.T) {
	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.Equal(t, 8, s.Count)
	assert.InDelta(t, 5.0, s.Mean, 1e-12)
	assert.InDelta(t, 4.5, s.Median, 1e-12)
	assert.Equal(t, []float64{4}, s.Modes)
	assert.InDelta(t, 4.571428571, s.Variance, 1e-9)
	assert.InDelta(t, 2.138089935, s.StdDev, 1e-9)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
}

func TestSummarizeQuartiles(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4, 5})
	assert.InDelta(t, 2.0, s.Q1, 1e-12)
	assert.InDelta(t, 3.0, s.Q2, 1e-12)
	assert.InDelta(t, 4.0, s.Q3, 1e-12)
}

func TestSummarizeModeTies(t *testing.T) {
	s := Summarize([]float64{1, 1, 2, 2, 3})
	assert.Equal(t, []float64{1, 2}, s.Modes)
}

func TestSummarizeNoMode(t *testing.T) {
	s := Summarize([]float64{1, 2, 3})
	assert.Empty(t, s.Modes)
}

func TestSummarizeSingle(t *testing.T) {
	s := Summarize([]float64{42})
	assert.Equal(t, 42.0, s.Mean)
	assert.Equal(t, 42.0, s.Median)
	assert.Zero(t, s.StdDev)
	assert.Zero(t, s.Variance)
}

func TestOutliers(t *testing.T) {
	flags := Outliers([]float64{1, 2, 3, 4, 100})
	require.Len(t, flags, 5)
	assert.Equal(t, []bool{false, false, false, false, true}, flags)
}

func TestOutliersSmallDataset(t *testing.T) {
	flags := Outliers([]float64{1, 100})
	assert.Equal(t, []bool{false, false}, flags)
}

func TestCorrelation(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{2, 4, 6, 8}
	assert.InDelta(t, 1.0, Correlation(a, b), 1e-12)

	c := []float64{8, 6, 4, 2}
	assert.InDelta(t, -1.0, Correlation(a, c), 1e-12)
}

func TestCorrelationDegenerate(t *testing.T) {
	assert.Zero(t, Correlation([]float64{1}, []float64{2}))
	assert.Zero(t, Correlation([]float64{3, 3, 3}, []float64{1, 2, 3}))
}

func TestCorrelationOverlapPrefix(t *testing.T) {
	a := []float64{1, 2, 3, 4, 99, -5}
	b := []float64{2, 4, 6, 8}
	assert.InDelta(t, 1.0, Correlation(a, b), 1e-12)
}

func TestCovariance(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{2, 4, 6, 8}
	// Population covariance of a perfectly linear pair.
	assert.InDelta(t, 2.5, Covariance(a, b), 1e-12)
	assert.Zero(t, Covariance(a, a[:1]))
}

func TestHistogram(t *testing.T) {
	bins := Histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
	require.Len(t, bins, 5)
	total := 0
	for _, b := range bins {
		assert.Equal(t, 2, b.Count)
		total += b.Count
	}
	assert.Equal(t, 10, total)
}

func TestHistogramDegenerateRange(t *testing.T) {
	bins := Histogram([]float64{3, 3, 3}, 4)
	require.Len(t, bins, 4)
	assert.Equal(t, 3, bins[0].Count)
	for _, b := range bins[1:] {
		assert.Zero(t, b.Count)
	}
}

func TestConvolve(t *testing.T) {
	got := Convolve([]float64{1, 2, 3}, []float64{0, 1})
	assert.Equal(t, []float64{0, 1, 2, 3}, got)

	assert.Nil(t, Convolve(nil, []float64{1}))
}
