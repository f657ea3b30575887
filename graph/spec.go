package graph

import (
	"regexp"
	"strings"

	"grapher/expr"
)

// FunctionSpec is the sum type of plottable function variants. Each variant
// carries only the fields its sampling mode needs; the classifier output
// selects which constructor runs, so there is no dynamically-typed field
// access anywhere downstream.
type FunctionSpec interface {
	functionSpec()
}

// Cartesian is y = f(x).
type Cartesian struct {
	Y *expr.Compiled
}

// Parametric is x = fx(t), y = fy(t).
type Parametric struct {
	X *expr.Compiled
	Y *expr.Compiled
}

// Polar is r = f(theta).
type Polar struct {
	R *expr.Compiled
}

// Implicit is f(x, y) = 0.
type Implicit struct {
	F *expr.Compiled
}

func (Cartesian) functionSpec()  {}
func (Parametric) functionSpec() {}
func (Polar) functionSpec()      {}
func (Implicit) functionSpec()   {}

var (
	defPrefix      = regexp.MustCompile(`^\s*(y\s*=|r\s*=|f\s*\(\s*x\s*\)\s*=)\s*`)
	polarPrefix    = regexp.MustCompile(`^\s*r\s*=`)
	cartesianStart = regexp.MustCompile(`^\s*(y\s*=|f\s*\(\s*x\s*\)\s*=)`)
	xIdent         = regexp.MustCompile(`\bx\b`)
	yIdent         = regexp.MustCompile(`\by\b`)
)

// stripDefinition removes a leading "y=", "r=" or "f(x)=" so users can type
// definitions the way they would write them on paper.
func stripDefinition(src string) string {
	return defPrefix.ReplaceAllString(src, "")
}

// ParseFunction compiles src into the matching variant. Routing looks at
// the definition shape before the advisory classifier: "r = ..." or a theta
// reference selects polar regardless of what functions appear inside (the
// classifier tags "r = 1+cos(theta)" as trigonometric, which is the right
// display label but the wrong sampler). Piecewise expressions evaluate
// through the ordinary cartesian path, the evaluator handles if();
// parametric input needs both components and uses NewParametric instead.
func ParseFunction(src string) (FunctionSpec, error) {
	c, err := expr.Compile(stripDefinition(src))
	if err != nil {
		return nil, err
	}
	clean := expr.Sanitize(src)
	switch {
	case polarPrefix.MatchString(clean) || strings.Contains(clean, "theta") ||
		expr.Classify(src) == expr.KindPolar:
		return Polar{R: c}, nil
	case xIdent.MatchString(clean) && yIdent.MatchString(clean) && !cartesianStart.MatchString(clean):
		return Implicit{F: c}, nil
	default:
		return Cartesian{Y: c}, nil
	}
}

// NewParametric compiles the two component expressions of a parametric
// curve.
func NewParametric(xSrc, ySrc string) (Parametric, error) {
	fx, err := expr.Compile(stripDefinition(xSrc))
	if err != nil {
		return Parametric{}, err
	}
	fy, err := expr.Compile(strings.TrimSpace(stripDefinition(ySrc)))
	if err != nil {
		return Parametric{}, err
	}
	return Parametric{X: fx, Y: fy}, nil
}
