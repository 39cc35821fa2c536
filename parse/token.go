package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type tokKind int

const (
	tokEOF tokKind = iota
	tokName
	tokConst
	tokNot
	tokAnd
	tokOr
	tokXor
	tokImpl
	tokEquiv
	tokLParen
	tokRParen
)

type token struct {
	kind tokKind
	text string
	off  int

	// name binding from the name=0|1|? form; bound is false for a bare
	// name and for the explicit '?' binding.
	bound   bool
	unknown bool
	val     bool
}

func tokenize(d []byte) ([]token, error) {
	var toks []token
	s := string(d)
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", off: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", off: i})
			i++
		case c == '~':
			toks = append(toks, token{kind: tokNot, text: "~", off: i})
			i++
		case c == '^':
			toks = append(toks, token{kind: tokAnd, text: "^", off: i})
			i++
		case strings.HasPrefix(s[i:], "<->"):
			toks = append(toks, token{kind: tokEquiv, text: "<->", off: i})
			i += 3
		case strings.HasPrefix(s[i:], "->"):
			toks = append(toks, token{kind: tokImpl, text: "->", off: i})
			i += 2
		case strings.HasPrefix(s[i:], "→"):
			toks = append(toks, token{kind: tokImpl, text: "→", off: i})
			i += len("→")
		case strings.HasPrefix(s[i:], "↔"):
			toks = append(toks, token{kind: tokEquiv, text: "↔", off: i})
			i += len("↔")
		case c == '0' || c == '1':
			toks = append(toks, token{kind: tokConst, text: s[i : i+1], off: i, val: c == '1'})
			i++
		case isNameByte(c):
			tok, n, err := nameToken(s[i:], i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i += n
		default:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, r, i)
		}
	}
	toks = append(toks, token{kind: tokEOF, off: len(s)})
	return toks, nil
}

func nameToken(s string, off int) (token, int, error) {
	n := 0
	for n < len(s) && isNameByte(s[n]) {
		n++
	}
	name := s[:n]
	if name == "v" {
		return token{kind: tokOr, text: "v", off: off}, n, nil
	}
	if name == "xor" {
		return token{kind: tokXor, text: "xor", off: off}, n, nil
	}
	tok := token{kind: tokName, text: name, off: off}
	if n >= len(s) || s[n] != '=' {
		return tok, n, nil
	}
	n++
	if n >= len(s) {
		return token{}, 0, fmt.Errorf("%w: missing state after %q at offset %d",
			ErrParse, name+"=", off)
	}
	switch s[n] {
	case '0':
		tok.bound, tok.val = true, false
	case '1':
		tok.bound, tok.val = true, true
	case '?':
		tok.unknown = true
	default:
		return token{}, 0, fmt.Errorf("%w: state of %q must be 0, 1 or ?, got %q at offset %d",
			ErrParse, name, s[n], off)
	}
	n++
	return tok, n, nil
}

func isNameByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
