package expr

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind is the advisory function-family tag. It selects a sampling strategy
// downstream and never alters evaluation semantics.
type Kind string

const (
	KindLinear        Kind = "linear"
	KindQuadratic     Kind = "quadratic"
	KindPolynomial    Kind = "polynomial"
	KindTrigonometric Kind = "trigonometric"
	KindLogarithmic   Kind = "logarithmic"
	KindExponential   Kind = "exponential"
	KindParametric    Kind = "parametric"
	KindPolar         Kind = "polar"
	KindImplicit      Kind = "implicit"
	KindPiecewise     Kind = "piecewise"
	KindRecursive     Kind = "recursive"
	KindComplex       Kind = "complex"
)

var (
	trigNames = regexp.MustCompile(`\b(sin|cos|tan|asin|acos|atan|atan2|sec|csc|cot|sinh|cosh|tanh)\b`)
	logNames  = regexp.MustCompile(`\b(ln|log|log2|log10)\b`)
	expNames  = regexp.MustCompile(`\bexp\b`)
	// A power with x in the exponent: 2^x, e^(3x), 10^(x+1).
	expPattern    = regexp.MustCompile(`(\d+(\.\d+)?|\be)\s*\^\s*\(?[^)]*\bx\b`)
	paramMarkers  = regexp.MustCompile(`x\s*\(\s*t\s*\)|y\s*\(\s*t\s*\)|x\s*=|y\s*=`)
	powerOfX      = regexp.MustCompile(`\bx\s*\^\s*(\d+)`)
	xIdent        = regexp.MustCompile(`\bx\b`)
	yIdent        = regexp.MustCompile(`\by\b`)
	tIdent        = regexp.MustCompile(`\bt\b`)
	rIdent        = regexp.MustCompile(`\br\b`)
	xTimesX       = regexp.MustCompile(`\bx\b\s*\*\s*\bx\b`)
	explicitStart = regexp.MustCompile(`^\s*(y\s*=|f\s*\(\s*x\s*\)\s*=)`)
	ifWord        = regexp.MustCompile(`\bif\b`)
)

// Classify tags an expression with its heuristic function family. The
// decision list is ordered and the first match wins; categories overlap, so
// the order matters (sin(2^x) is trigonometric, not exponential).
//
// Misclassification is harmless for correctness: the tag only picks the
// sampler strategy.
func Classify(src string) Kind {
	s := Sanitize(src)
	if s == "" {
		return KindPolynomial
	}

	switch {
	case trigNames.MatchString(s):
		return KindTrigonometric
	case logNames.MatchString(s):
		return KindLogarithmic
	case expNames.MatchString(s) || expPattern.MatchString(s):
		return KindExponential
	case tIdent.MatchString(s) && paramMarkers.MatchString(s):
		return KindParametric
	case strings.Contains(s, "theta") || (rIdent.MatchString(s) && !strings.Contains(s, "sqrt")):
		return KindPolar
	case xIdent.MatchString(s) && yIdent.MatchString(s) && !explicitStart.MatchString(s):
		return KindImplicit
	case strings.ContainsAny(s, "{?:") || ifWord.MatchString(s):
		return KindPiecewise
	}

	return classifyDegree(s)
}

// classifyDegree scans for explicit x^n powers and repeated x*x chains and
// maps the resulting degree to linear/quadratic/polynomial.
func classifyDegree(s string) Kind {
	degree := 0
	for _, m := range powerOfX.FindAllStringSubmatch(s, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > degree {
			degree = n
		}
	}
	if degree == 0 {
		// No caret form. Count multiplicative occurrences for x*x chains.
		if xTimesX.MatchString(s) {
			degree = len(xIdent.FindAllString(s, -1))
		} else if xIdent.MatchString(s) {
			degree = 1
		}
	}
	switch {
	case degree == 1:
		return KindLinear
	case degree == 2:
		return KindQuadratic
	case degree >= 3:
		return KindPolynomial
	default:
		return KindPolynomial
	}
}
