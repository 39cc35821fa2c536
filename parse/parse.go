package parse

import (
	"fmt"

	"github.com/booleq/booleq/debug"
	"github.com/booleq/booleq/ir"
)

// Parse reads an equation in the display syntax and returns its tree.
// Occurrences of the same variable name share one node.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := tokenize(d)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: %d tokens from %q\n", len(toks)-1, d)
	}
	p := &parser{
		toks:     toks,
		vars:     map[string]*ir.Node{},
		explicit: map[string]token{},
		opts:     pOpts,
	}
	n, err := p.equiv()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, tok.text, tok.off)
	}
	return n, nil
}

type parser struct {
	toks []token
	pos  int
	vars map[string]*ir.Node
	// explicit records the first name=0|1|? binding seen per name, so
	// later conflicting bindings can be rejected.
	explicit map[string]token
	opts     *parseOpts
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) equiv() (*ir.Node, error) {
	left, err := p.impl()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEquiv {
		return left, nil
	}
	p.next()
	right, err := p.equiv()
	if err != nil {
		return nil, err
	}
	return ir.Equiv(left, right)
}

func (p *parser) impl() (*ir.Node, error) {
	left, err := p.xor()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokImpl {
		return left, nil
	}
	p.next()
	right, err := p.impl()
	if err != nil {
		return nil, err
	}
	return ir.Implies(left, right)
}

func (p *parser) xor() (*ir.Node, error) {
	left, err := p.or()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokXor {
		p.next()
		right, err := p.or()
		if err != nil {
			return nil, err
		}
		left = left.Xor(right)
	}
	return left, nil
}

func (p *parser) or() (*ir.Node, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = left.Or(right)
	}
	return left, nil
}

func (p *parser) and() (*ir.Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = left.And(right)
	}
	return left, nil
}

func (p *parser) unary() (*ir.Node, error) {
	if p.peek().kind == tokNot {
		p.next()
		op, err := p.unary()
		if err != nil {
			return nil, err
		}
		return op.Negate(), nil
	}
	return p.atom()
}

func (p *parser) atom() (*ir.Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokConst:
		return ir.Const(tok.val), nil
	case tokName:
		return p.variable(tok)
	case tokLParen:
		n, err := p.equiv()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, fmt.Errorf("%w: unclosed ( at offset %d", ErrParse, tok.off)
		}
		return n, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
	default:
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, tok.text, tok.off)
	}
}

func (p *parser) variable(tok token) (*ir.Node, error) {
	n := p.vars[tok.text]
	if n == nil {
		var err error
		n, err = ir.Var(tok.text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if v, ok := p.opts.bindings[tok.text]; ok {
			n.Bool, n.Known = v, true
			p.explicit[tok.text] = token{text: tok.text, bound: true, val: v}
		}
		p.vars[tok.text] = n
	}
	if !tok.bound && !tok.unknown {
		return n, nil
	}
	// name=0|1|? bindings of the same variable must not conflict.
	if prev, ok := p.explicit[tok.text]; ok {
		if prev.bound != tok.bound || (prev.bound && prev.val != tok.val) {
			return nil, fmt.Errorf("%w: conflicting bindings for %q at offset %d",
				ErrParse, tok.text, tok.off)
		}
		return n, nil
	}
	p.explicit[tok.text] = tok
	if tok.bound {
		n.Bool, n.Known = tok.val, true
	}
	return n, nil
}
