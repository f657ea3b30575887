package stats

import (
	"math"
	"sort"
)

// Summary describes a single numeric series. Standard deviation and
// variance are the sample (n-1) forms; quartiles use linear interpolation
// between order statistics.
type Summary struct {
	Count    int
	Mean     float64
	Median   float64
	Modes    []float64
	StdDev   float64
	Variance float64
	Min      float64
	Max      float64
	Q1       float64
	Q2       float64
	Q3       float64
}

// Summarize computes a Summary over values. An empty input yields the zero
// Summary rather than an error, so callers can render it directly.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	variance := 0.0
	if n > 1 {
		for _, v := range sorted {
			d := v - mean
			variance += d * d
		}
		variance /= float64(n - 1)
	}

	return Summary{
		Count:    n,
		Mean:     mean,
		Median:   quantile(sorted, 0.5),
		Modes:    modes(sorted),
		StdDev:   math.Sqrt(variance),
		Variance: variance,
		Min:      sorted[0],
		Max:      sorted[n-1],
		Q1:       quantile(sorted, 0.25),
		Q2:       quantile(sorted, 0.5),
		Q3:       quantile(sorted, 0.75),
	}
}

// quantile interpolates the p-quantile of sorted values, 0 <= p <= 1.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// modes returns every value sharing the highest frequency. When no value
// repeats the series has no mode and the result is empty.
func modes(sorted []float64) []float64 {
	if len(sorted) == 0 {
		return nil
	}
	best := 1
	run := 1
	var out []float64
	flushRun := func(v float64) {
		if run > best {
			best = run
			out = out[:0]
			out = append(out, v)
		} else if run == best {
			out = append(out, v)
		}
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			run++
			continue
		}
		flushRun(sorted[i-1])
		run = 1
	}
	flushRun(sorted[len(sorted)-1])
	if best == 1 {
		return nil
	}
	return out
}

// Outliers flags values outside the Tukey fences Q1-1.5*IQR and
// Q3+1.5*IQR. The result is index-aligned with the input.
func Outliers(values []float64) []bool {
	out := make([]bool, len(values))
	if len(values) < 4 {
		return out
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1
	lo := q1 - 1.5*iqr
	hi := q3 + 1.5*iqr
	for i, v := range values {
		out[i] = v < lo || v > hi
	}
	return out
}

// Covariance returns the population covariance of the overlapping prefix of
// the two series, 0 when fewer than two pairs overlap.
func Covariance(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n < 2 {
		return 0
	}
	var ma, mb float64
	for i := 0; i < n; i++ {
		ma += a[i]
		mb += b[i]
	}
	ma /= float64(n)
	mb /= float64(n)
	var sum float64
	for i := 0; i < n; i++ {
		sum += (a[i] - ma) * (b[i] - mb)
	}
	return sum / float64(n)
}

// Correlation returns the Pearson correlation of the overlapping prefix of
// the two series. Fewer than two pairs, or a constant series, yields 0.
func Correlation(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n < 2 {
		return 0
	}
	a = a[:n]
	b = b[:n]
	cov := Covariance(a, b)
	sa := populationStd(a)
	sb := populationStd(b)
	if sa == 0 || sb == 0 || math.IsNaN(sa) || math.IsNaN(sb) {
		return 0
	}
	return cov / (sa * sb)
}

func populationStd(values []float64) float64 {
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// Bin is one histogram bucket, identified by its center value.
type Bin struct {
	Center float64
	Count  int
}

// Histogram buckets values into equal-width bins spanning the data
// range. Non-finite values are skipped; a degenerate range puts everything
// into the first bin.
func Histogram(values []float64, bins int) []Bin {
	if bins < 1 || len(values) == 0 {
		return nil
	}
	min := values[0]
	max := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return nil
	}

	out := make([]Bin, bins)
	if min == max {
		for i := range out {
			out[i].Center = min
		}
		out[0].Count = len(values)
		return out
	}

	width := (max - min) / float64(bins)
	for i := range out {
		out[i].Center = min + (float64(i)+0.5)*width
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		i := int((v - min) / width)
		if i < 0 {
			i = 0
		} else if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}

// Convolve returns the full discrete convolution of a and b, length
// len(a)+len(b)-1. Either input empty yields nil.
func Convolve(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}
