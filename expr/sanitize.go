package expr

import (
	"regexp"
	"strings"
)

// codeWords is the denylist of identifiers that would trigger dynamic code
// loading or module resolution in a naive evaluation engine. Matches are
// removed on word boundaries so math names like "exp" survive.
var codeWords = regexp.MustCompile(`\b(eval|Function|function|constructor|require|import|process|global|globalThis|window|document|module|exports|child_process|execSync|exec|spawn|fs)\b`)

var (
	pathTraversal = regexp.MustCompile(`\.\.[/\\]`)
	templateOpen  = regexp.MustCompile(`\$\{`)
)

// unicodeSubs normalizes Unicode math symbols to their ASCII evaluator
// equivalents. Applied before the denylist so symbol expansion cannot
// resurrect a removed keyword.
var unicodeSubs = [...]struct{ from, to string }{
	{"×", "*"},
	{"⋅", "*"},
	{"·", "*"},
	{"÷", "/"},
	{"π", "pi"},
	{"√", "sqrt"},
	{"∞", "inf"},
	{"±", "+"},
	{"≈", "=="},
	{"θ", "theta"},
	{"−", "-"},
}

// Sanitize strips dangerous syntax from a raw expression string so it can be
// handed to the parser. Pure and deterministic; never fails. The worst case
// is an empty or unparsable result, which the evaluator turns into a syntax
// error.
//
// Sanitize is idempotent: Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(s string) string {
	for _, sub := range unicodeSubs {
		s = strings.ReplaceAll(s, sub.from, sub.to)
	}

	// Quote characters and statement separators.
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"', '`', ';':
			return -1
		}
		return r
	}, s)

	// Removal can expose a fresh match ("....//" leaves "../"), so repeat
	// until stable to keep the function idempotent.
	for {
		prev := s
		s = codeWords.ReplaceAllString(s, "")
		s = pathTraversal.ReplaceAllString(s, "")
		s = templateOpen.ReplaceAllString(s, "")
		if s == prev {
			break
		}
	}

	return strings.TrimSpace(s)
}
