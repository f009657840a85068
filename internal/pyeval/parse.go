package pyeval

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOp
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		ch := src[i]
		switch {
		case ch == ' ' || ch == '\t':
			i++
		case ch >= '0' && ch <= '9' || ch == '.':
			start := i
			for i < len(src) && (src[i] >= '0' && src[i] <= '9' || src[i] == '.') {
				i++
			}
			toks = append(toks, token{kind: tokNumber, text: src[start:i], pos: start})
		case ch == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case ch == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		case ch == '*' || ch == '/':
			if i+1 < len(src) && src[i+1] == ch {
				toks = append(toks, token{kind: tokOp, text: src[i : i+2], pos: i})
				i += 2
				continue
			}
			toks = append(toks, token{kind: tokOp, text: string(ch), pos: i})
			i++
		case ch == '+' || ch == '-' || ch == '%':
			toks = append(toks, token{kind: tokOp, text: string(ch), pos: i})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidExpression, ch, i)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

// EvalString parses and evaluates a Python arithmetic expression made of
// numeric literals, parentheses, unary signs and the operators in AllOps.
//
//	expr   := term (("+" | "-") term)*
//	term   := factor (("*" | "/" | "//" | "%") factor)*
//	factor := ("+" | "-") factor | power
//	power  := atom ["**" factor]
//	atom   := NUMBER | "(" expr ")"
func EvalString(src string) (Value, error) {
	toks, err := tokenize(strings.TrimSpace(src))
	if err != nil {
		return Value{}, err
	}
	p := &parser{toks: toks}
	v, err := p.expr()
	if err != nil {
		return Value{}, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return Value{}, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidExpression, t.text, t.pos)
	}
	return v, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) peekOp(ops ...Op) (Op, bool) {
	t := p.peek()
	if t.kind != tokOp {
		return "", false
	}
	for _, op := range ops {
		if t.text == string(op) {
			return op, true
		}
	}
	return "", false
}

func (p *parser) expr() (Value, error) {
	lhs, err := p.term()
	if err != nil {
		return Value{}, err
	}
	for {
		op, ok := p.peekOp(Add, Sub)
		if !ok {
			return lhs, nil
		}
		p.advance()
		rhs, err := p.term()
		if err != nil {
			return Value{}, err
		}
		if lhs, err = Apply(lhs, op, rhs); err != nil {
			return Value{}, err
		}
	}
}

func (p *parser) term() (Value, error) {
	lhs, err := p.factor()
	if err != nil {
		return Value{}, err
	}
	for {
		op, ok := p.peekOp(Mul, Div, FloorDiv, Mod)
		if !ok {
			return lhs, nil
		}
		p.advance()
		rhs, err := p.factor()
		if err != nil {
			return Value{}, err
		}
		if lhs, err = Apply(lhs, op, rhs); err != nil {
			return Value{}, err
		}
	}
}

func (p *parser) factor() (Value, error) {
	if op, ok := p.peekOp(Add, Sub); ok {
		p.advance()
		v, err := p.factor()
		if err != nil {
			return Value{}, err
		}
		if op == Sub {
			v.Num = -v.Num
		}
		return checked(v)
	}
	return p.power()
}

func (p *parser) power() (Value, error) {
	base, err := p.atom()
	if err != nil {
		return Value{}, err
	}
	if _, ok := p.peekOp(Pow); !ok {
		return base, nil
	}
	p.advance()
	exp, err := p.factor()
	if err != nil {
		return Value{}, err
	}
	return Apply(base, Pow, exp)
}

func (p *parser) atom() (Value, error) {
	t := p.advance()
	switch t.kind {
	case tokNumber:
		if strings.Contains(t.text, ".") {
			f, err := strconv.ParseFloat(t.text, 64)
			if err != nil {
				return Value{}, fmt.Errorf("%w: bad number %q", ErrInvalidExpression, t.text)
			}
			return FloatOf(f), nil
		}
		n, err := strconv.ParseInt(t.text, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: bad number %q", ErrInvalidExpression, t.text)
		}
		return checked(Value{Num: float64(n)})
	case tokLParen:
		v, err := p.expr()
		if err != nil {
			return Value{}, err
		}
		if p.advance().kind != tokRParen {
			return Value{}, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidExpression)
		}
		return v, nil
	case tokEOF:
		return Value{}, fmt.Errorf("%w: unexpected end of expression", ErrInvalidExpression)
	}
	return Value{}, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidExpression, t.text, t.pos)
}
