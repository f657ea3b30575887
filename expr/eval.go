package expr

import (
	"errors"
	"math"
)

// ErrorKind categorizes an evaluation failure.
type ErrorKind uint8

const (
	// KindSyntax covers malformed input: unparsable expressions, unknown
	// identifiers, mismatched parentheses, wrong argument counts.
	KindSyntax ErrorKind = iota
	// KindDomain is reserved for future domain-restriction errors.
	KindDomain
	// KindComputation means the expression parsed and evaluated but the
	// result is not a finite real number.
	KindComputation
	// KindOverflow is reserved.
	KindOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindDomain:
		return "domain"
	case KindComputation:
		return "computation"
	case KindOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Error describes why an evaluation failed, with suggestions the
// presentation layer can surface to the user.
type Error struct {
	Kind        ErrorKind
	Message     string
	Suggestions []string
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Message }

var (
	syntaxSuggestions      = []string{"check syntax", "verify function names", "check parentheses"}
	computationSuggestions = []string{"check division by zero", "check domain restrictions"}
)

// Result is the discriminated outcome of an evaluation: exactly one of a
// real value or an error. Valid reports whether the value channel holds a
// finite real number.
type Result struct {
	value float64
	err   *Error
}

// Value returns the evaluated number. Only meaningful when Valid.
func (r Result) Value() float64 { return r.value }

// Err returns the failure, or nil on success.
func (r Result) Err() *Error { return r.err }

// Valid reports success with a finite real value.
func (r Result) Valid() bool { return r.err == nil }

func valueResult(f float64) Result { return Result{value: f} }

func errorResult(kind ErrorKind, msg string, suggestions []string) Result {
	return Result{err: &Error{Kind: kind, Message: msg, Suggestions: suggestions}}
}

// Compiled is a parsed expression ready for repeated evaluation. Parsing
// once and evaluating per sample keeps a full sampling pass inside the
// frame budget.
type Compiled struct {
	src  string
	tree node
}

// Compile sanitizes and parses src. On failure the error wraps ErrParse or
// ErrEval and maps to a syntax-kind Result at the Evaluate boundary.
func Compile(src string) (*Compiled, error) {
	clean := Sanitize(src)
	tree, err := parse(clean)
	if err != nil {
		return nil, err
	}
	return &Compiled{src: clean, tree: tree}, nil
}

// Source returns the sanitized expression text.
func (c *Compiled) Source() string { return c.src }

// Eval evaluates the compiled expression against the supplied variables.
// Built-in constants (pi, e, ...) are always in scope; vars may be nil.
func (c *Compiled) Eval(vars map[string]float64) Result {
	e := newEnv()
	e.bind(vars)
	return c.evalEnv(e)
}

func (c *Compiled) evalEnv(e *env) (res Result) {
	// The evaluator must never let a failure escape as anything other than
	// a Result value.
	defer func() {
		if r := recover(); r != nil {
			res = errorResult(KindSyntax, "internal evaluation failure", syntaxSuggestions)
		}
	}()

	v, err := c.tree.Eval(e)
	if err != nil {
		return errorResult(KindSyntax, err.Error(), syntaxSuggestions)
	}

	// A complex result keeps its real component; the imaginary part is
	// discarded rather than reported as an error.
	f := v.real64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errorResult(KindComputation, "non-finite result "+formatFloat(f), computationSuggestions)
	}
	return valueResult(f)
}

// Evaluate sanitizes, parses, and evaluates src in one step. The only
// observable outcomes are a finite value or a typed error; it never panics.
func Evaluate(src string, vars map[string]float64) Result {
	c, err := Compile(src)
	if err != nil {
		return errorResult(KindSyntax, err.Error(), syntaxSuggestions)
	}
	return c.Eval(vars)
}

// IsParseError reports whether err came from the parsing stage.
func IsParseError(err error) bool { return errors.Is(err, ErrParse) }
