package expr

import "math"

// env is the evaluation environment for expressions.
type env struct {
	vars map[string]value
}

// Built-in constants are installed unconditionally; callers never need to
// supply pi or e themselves.
func newEnv() *env {
	return &env{
		vars: map[string]value{
			"pi":    realValue(math.Pi),
			"tau":   realValue(2 * math.Pi),
			"e":     realValue(math.E),
			"phi":   realValue((1 + math.Sqrt(5)) / 2),
			"inf":   realValue(math.Inf(1)),
			"i":     complexValue(complex(0, 1)),
			"sqrt2": realValue(math.Sqrt2),
			"ln2":   realValue(math.Ln2),
			"ln10":  realValue(math.Ln10),
		},
	}
}

// bind overlays caller variables on top of the constants. Caller variables
// shadow constants of the same name.
func (e *env) bind(vars map[string]float64) {
	for name, f := range vars {
		e.vars[name] = realValue(f)
	}
}

func (e *env) set(name string, f float64) { e.vars[name] = realValue(f) }
