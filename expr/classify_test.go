package expr

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		src  string
		want Kind
	}{
		{"sin(x)", KindTrigonometric},
		{"2*cos(x)+1", KindTrigonometric},
		{"ln(x)", KindLogarithmic},
		{"log10(x)", KindLogarithmic},
		{"exp(x)", KindExponential},
		{"2^x", KindExponential},
		{"e^(3*x)", KindExponential},
		{"x=cos(t)", KindTrigonometric}, // ordered list: trig wins over parametric
		{"t^2+x(t)", KindParametric},
		{"theta*2", KindPolar},
		{"r+1", KindPolar},
		{"x^2+y^2", KindImplicit}, // both x and y, no y= prefix
		{"x+y", KindImplicit},
		{"if(x>0, 1, 0)", KindPiecewise},
		{"x>0 ? 1 : 0", KindPiecewise},
		{"x+1", KindLinear},
		{"x^2+2*x+1", KindQuadratic},
		{"x*x", KindQuadratic},
		{"x^3-x", KindPolynomial},
		{"x*x*x", KindPolynomial},
		{"42", KindPolynomial},
		{"", KindPolynomial},
	}
	for _, c := range cases {
		if got := Classify(c.src); got != c.want {
			t.Fatalf("Classify(%q)=%q want %q", c.src, got, c.want)
		}
	}
}

func TestClassify_OrderMatters(t *testing.T) {
	// Overlapping categories resolve to the first match.
	if got := Classify("sin(2^x)"); got != KindTrigonometric {
		t.Fatalf("Classify(sin(2^x))=%q want trigonometric", got)
	}
	if got := Classify("ln(x)+sin(x)"); got != KindTrigonometric {
		t.Fatalf("Classify(ln(x)+sin(x))=%q want trigonometric", got)
	}
}
