// Package eval compiles and evaluates arithmetic expressions in the
// single free variable x.
//
// The grammar is deliberately closed: numeric literals, x, the
// constants pi and e, the operators + - * / and ^ (or **), parentheses
// and a fixed allow-list of named functions. There is no assignment,
// no general identifier lookup and no code execution of any kind, so
// user-typed expressions are safe to evaluate directly.
package eval

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Program is a compiled expression, ready for repeated pointwise
// evaluation. Compile once, call Eval per x value.
type Program struct {
	root node
	src  string
}

// Compile parses the expression and returns a reusable program.
// Syntax errors and unknown identifiers are reported with their
// position in the input.
func Compile(src string) (*Program, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return nil, fmt.Errorf("expression is empty")
	}

	p := &parser{src: trimmed}
	p.next()

	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, fmt.Errorf("unexpected %q at position %d", p.tok.text, p.tok.pos+1)
	}
	return &Program{root: root, src: trimmed}, nil
}

// Source returns the trimmed source text the program was compiled from.
func (p *Program) Source() string { return p.src }

// Eval evaluates the program at the given x. Domain violations (such
// as the square root of a negative number) surface as NaN or Inf in
// the result, following real arithmetic; callers decide how to report
// non-finite values.
func (p *Program) Eval(x float64) float64 {
	return p.root.eval(x)
}

// --- AST ---

type node interface {
	eval(x float64) float64
}

type numNode float64

func (n numNode) eval(float64) float64 { return float64(n) }

type varNode struct{}

func (varNode) eval(x float64) float64 { return x }

type negNode struct{ arg node }

func (n negNode) eval(x float64) float64 { return -n.arg.eval(x) }

type binNode struct {
	op   byte // one of + - * / ^
	l, r node
}

func (n binNode) eval(x float64) float64 {
	l := n.l.eval(x)
	r := n.r.eval(x)
	switch n.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	default:
		return power(l, r)
	}
}

type call1Node struct {
	fn  func(float64) float64
	arg node
}

func (n call1Node) eval(x float64) float64 { return n.fn(n.arg.eval(x)) }

type call2Node struct {
	fn   func(float64, float64) float64
	a, b node
}

func (n call2Node) eval(x float64) float64 { return n.fn(n.a.eval(x), n.b.eval(x)) }

// --- Lexer ---

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp     // + - * / ^ (** is normalized to ^)
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	pos  int
	val  float64 // for tokNumber
}

type parser struct {
	src string
	off int
	tok token
	err error
}

func (p *parser) next() {
	for p.off < len(p.src) && (p.src[p.off] == ' ' || p.src[p.off] == '\t') {
		p.off++
	}
	start := p.off
	if p.off >= len(p.src) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}

	c := p.src[p.off]
	switch {
	case c >= '0' && c <= '9' || c == '.':
		end := p.off
		seenExp := false
		for end < len(p.src) {
			ch := p.src[end]
			if ch >= '0' && ch <= '9' || ch == '.' {
				end++
				continue
			}
			if (ch == 'e' || ch == 'E') && !seenExp && end+1 < len(p.src) &&
				(isDigit(p.src[end+1]) || ((p.src[end+1] == '+' || p.src[end+1] == '-') && end+2 < len(p.src) && isDigit(p.src[end+2]))) {
				seenExp = true
				end += 2 // consume exponent marker and sign/first digit
				continue
			}
			break
		}
		text := p.src[start:end]
		val, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.err = fmt.Errorf("invalid number %q at position %d", text, start+1)
		}
		p.off = end
		p.tok = token{kind: tokNumber, text: text, pos: start, val: val}
	case isIdentStart(rune(c)):
		end := p.off
		for end < len(p.src) && isIdentPart(rune(p.src[end])) {
			end++
		}
		p.off = end
		p.tok = token{kind: tokIdent, text: p.src[start:end], pos: start}
	case c == '*':
		// Normalize Python-style ** to the caret operator.
		if p.off+1 < len(p.src) && p.src[p.off+1] == '*' {
			p.off += 2
			p.tok = token{kind: tokOp, text: "^", pos: start}
			return
		}
		p.off++
		p.tok = token{kind: tokOp, text: "*", pos: start}
	case c == '+' || c == '-' || c == '/' || c == '^':
		p.off++
		p.tok = token{kind: tokOp, text: string(c), pos: start}
	case c == '(':
		p.off++
		p.tok = token{kind: tokLParen, text: "(", pos: start}
	case c == ')':
		p.off++
		p.tok = token{kind: tokRParen, text: ")", pos: start}
	case c == ',':
		p.off++
		p.tok = token{kind: tokComma, text: ",", pos: start}
	default:
		p.err = fmt.Errorf("unexpected character %q at position %d", string(c), start+1)
		p.off++
		p.tok = token{kind: tokEOF, pos: start}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }

func isIdentPart(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }

// --- Parser ---

// parseExpr handles addition and subtraction.
func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOp && (p.tok.text == "+" || p.tok.text == "-") {
		op := p.tok.text[0]
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, l: left, r: right}
	}
	return left, p.err
}

// parseTerm handles multiplication and division.
func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOp && (p.tok.text == "*" || p.tok.text == "/") {
		op := p.tok.text[0]
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, l: left, r: right}
	}
	return left, p.err
}

// parseUnary handles leading sign. Power binds tighter than unary
// minus, so -x^2 parses as -(x^2).
func (p *parser) parseUnary() (node, error) {
	if p.tok.kind == tokOp && (p.tok.text == "-" || p.tok.text == "+") {
		neg := p.tok.text == "-"
		p.next()
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if neg {
			return negNode{arg: arg}, nil
		}
		return arg, nil
	}
	return p.parsePower()
}

// parsePower handles right-associative exponentiation.
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.tok.kind == tokOp && p.tok.text == "^" {
		p.next()
		// The exponent may carry its own sign, e.g. x^-2.
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return binNode{op: '^', l: base, r: exp}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (node, error) {
	if p.err != nil {
		return nil, p.err
	}

	switch p.tok.kind {
	case tokNumber:
		n := numNode(p.tok.val)
		p.next()
		return n, nil

	case tokIdent:
		name := p.tok.text
		pos := p.tok.pos
		p.next()

		if p.tok.kind == tokLParen {
			return p.parseCall(name, pos)
		}
		if name == "x" {
			return varNode{}, nil
		}
		if c, ok := constants[name]; ok {
			return numNode(c), nil
		}
		return nil, fmt.Errorf("unknown symbol %q at position %d", name, pos+1)

	case tokLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis at position %d", p.tok.pos+1)
		}
		p.next()
		return inner, nil

	case tokEOF:
		if p.err != nil {
			return nil, p.err
		}
		return nil, fmt.Errorf("unexpected end of expression")

	default:
		return nil, fmt.Errorf("unexpected %q at position %d", p.tok.text, p.tok.pos+1)
	}
}

// parseCall parses the argument list of an allow-listed function.
func (p *parser) parseCall(name string, pos int) (node, error) {
	fn1, ok1 := unaryFuncs[name]
	fn2, ok2 := binaryFuncs[name]
	if !ok1 && !ok2 {
		return nil, fmt.Errorf("unknown function %q at position %d", name, pos+1)
	}

	p.next() // consume '('
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.tok.kind == tokComma {
		if !ok2 {
			return nil, fmt.Errorf("function %q takes one argument", name)
		}
		p.next()
		second, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis at position %d", p.tok.pos+1)
		}
		p.next()
		return call2Node{fn: fn2, a: first, b: second}, nil
	}

	if p.tok.kind != tokRParen {
		return nil, fmt.Errorf("missing closing parenthesis at position %d", p.tok.pos+1)
	}
	p.next()

	if !ok1 {
		return nil, fmt.Errorf("function %q takes two arguments", name)
	}
	return call1Node{fn: fn1, arg: first}, nil
}
