// Package expr implements safe parsing and evaluation of user-supplied math
// expressions: sanitization, a recursive-descent parser, a tree-walking
// evaluator over a variable scope, and a heuristic function classifier.
//
// The evaluator never panics and never lets an error escape as anything
// other than a Result: callers receive either a finite real value or a typed
// error with recovery suggestions.
package expr
