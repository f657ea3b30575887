package graph

import "testing"

func TestParseFunctionRouting(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"y = 2*x + 1", "cartesian"},
		{"sin(x)", "cartesian"},
		{"r = 1 + cos(theta)", "polar"},
		{"x^2 + y^2 - 4", "implicit"},
	}
	for _, tc := range cases {
		spec, err := ParseFunction(tc.src)
		if err != nil {
			t.Fatalf("ParseFunction(%q): %v", tc.src, err)
		}
		var got string
		switch spec.(type) {
		case Cartesian:
			got = "cartesian"
		case Polar:
			got = "polar"
		case Implicit:
			got = "implicit"
		default:
			got = "other"
		}
		if got != tc.want {
			t.Fatalf("ParseFunction(%q) = %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestParseFunctionStripsDefinition(t *testing.T) {
	spec, err := ParseFunction("f(x) = x^2")
	if err != nil {
		t.Fatalf("ParseFunction: %v", err)
	}
	c, ok := spec.(Cartesian)
	if !ok {
		t.Fatalf("expected Cartesian, got %T", spec)
	}
	res := c.Y.Eval(map[string]float64{"x": 3})
	if !res.Valid() || res.Value() != 9 {
		t.Fatalf("f(3) = %v, want 9", res.Value())
	}
}

func TestParseFunctionBadSyntax(t *testing.T) {
	if _, err := ParseFunction("2 +* x"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNewParametric(t *testing.T) {
	p, err := NewParametric("cos(t)", "sin(t)")
	if err != nil {
		t.Fatalf("NewParametric: %v", err)
	}
	res := p.X.Eval(map[string]float64{"t": 0})
	if !res.Valid() || res.Value() != 1 {
		t.Fatalf("x(0) = %v, want 1", res.Value())
	}
}
