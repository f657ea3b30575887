package expr

import (
	"fmt"
	"strconv"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
	tokEq
	tokNe
	tokLt
	tokLe
	tokGt
	tokGe
	tokBad
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF}
	}

	switch l.s[l.i] {
	case '+':
		l.i++
		return token{kind: tokPlus, text: "+"}
	case '-':
		l.i++
		return token{kind: tokMinus, text: "-"}
	case '*':
		l.i++
		// "**" is accepted as a power alias.
		if l.i < len(l.s) && l.s[l.i] == '*' {
			l.i++
			return token{kind: tokCaret, text: "^"}
		}
		return token{kind: tokStar, text: "*"}
	case '/':
		l.i++
		return token{kind: tokSlash, text: "/"}
	case '^':
		l.i++
		return token{kind: tokCaret, text: "^"}
	case '(', '[':
		l.i++
		return token{kind: tokLParen, text: "("}
	case ')', ']':
		l.i++
		return token{kind: tokRParen, text: ")"}
	case ',':
		l.i++
		return token{kind: tokComma, text: ","}
	case '=':
		if l.i+1 < len(l.s) && l.s[l.i+1] == '=' {
			l.i += 2
			return token{kind: tokEq, text: "=="}
		}
		l.i++
		return token{kind: tokBad, text: "="}
	case '!':
		if l.i+1 < len(l.s) && l.s[l.i+1] == '=' {
			l.i += 2
			return token{kind: tokNe, text: "!="}
		}
		l.i++
		return token{kind: tokBad, text: "!"}
	case '<':
		if l.i+1 < len(l.s) && l.s[l.i+1] == '=' {
			l.i += 2
			return token{kind: tokLe, text: "<="}
		}
		l.i++
		return token{kind: tokLt, text: "<"}
	case '>':
		if l.i+1 < len(l.s) && l.s[l.i+1] == '=' {
			l.i += 2
			return token{kind: tokGe, text: ">="}
		}
		l.i++
		return token{kind: tokGt, text: ">"}
	}

	ch := rune(l.s[l.i])
	if isIdentStart(ch) {
		start := l.i
		l.i++
		for l.i < len(l.s) && isIdentContinue(rune(l.s[l.i])) {
			l.i++
		}
		return token{kind: tokIdent, text: l.s[start:l.i]}
	}
	if ch == '.' || unicode.IsDigit(ch) {
		start := l.i
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		f, err := strconv.ParseFloat(txt, 64)
		if err != nil {
			return token{kind: tokBad, text: txt}
		}
		return token{kind: tokNumber, text: txt, num: f}
	}

	l.i++
	return token{kind: tokBad, text: string(ch)}
}

func scanNumber(s string, i int) int {
	start := i
	if i < len(s) && s[i] == '.' {
		i++
	}
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && unicode.IsDigit(rune(s[i])) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && unicode.IsDigit(rune(s[k])) {
			k++
		}
		if k > j {
			i = k
		}
	}
	if i == start {
		return start
	}
	return i
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

type parser struct {
	l   lexer
	cur token
}

// parse turns a sanitized expression string into an evaluable tree.
// The grammar is a single expression; assignments and statements are not
// part of the language.
func parse(s string) (node, error) {
	p := &parser{l: lexer{s: s}}
	p.cur = p.l.next()
	if p.cur.kind == tokEOF {
		return nil, fmt.Errorf("%w: empty expression", ErrParse)
	}
	ex, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q", ErrParse, p.cur.text)
	}
	return ex, nil
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) parseExpr() (node, error) {
	return p.parseCompare()
}

func (p *parser) parseCompare() (node, error) {
	left, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	switch p.cur.kind {
	case tokEq, tokNe, tokLt, tokLe, tokGt, tokGe:
		op := p.cur.kind
		p.next()
		right, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		return nodeCompare{op: op, left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

// Unary minus binds looser than ^, so -x^2 is -(x^2) as on a calculator.
func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	// Right-associative: 2^3^2 is 2^(3^2); the exponent may carry its own
	// sign, as in 2^-3.
	if p.cur.kind == tokCaret {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeBinary{op: '^', left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.next()
		return nodeNumber{v: v}, nil
	case tokIdent:
		name := p.cur.text
		p.next()
		if p.cur.kind == tokLParen {
			p.next()
			var args []node
			if p.cur.kind != tokRParen {
				for {
					ex, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, ex)
					if p.cur.kind == tokComma {
						p.next()
						continue
					}
					break
				}
			}
			if p.cur.kind != tokRParen {
				return nil, fmt.Errorf("%w: expected ')'", ErrParse)
			}
			p.next()
			return nodeCall{name: name, args: args}, nil
		}
		return nodeIdent{name: name}, nil
	case tokLParen:
		p.next()
		ex, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')'", ErrParse)
		}
		p.next()
		return ex, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrParse, p.cur.text)
	}
}
