// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse reduces a line of twine tokens to its string value.
//
// The tokens are treated as a stack and consumed from the right end of
// the line, so the rightmost term of a group is reduced first and each
// operand to its left is folded into it. This fixes the operand order for
// both operators: in a+b the left operand is a, and in a-b the string
// removed is b. No syntax tree is built; reduction and evaluation happen
// in the same pass.
package parse // import "github.com/twine-lang/twine/parse"

import (
	"github.com/twine-lang/twine/config"
	"github.com/twine-lang/twine/scan"
	"github.com/twine-lang/twine/value"
)

// Parser stores the state for the twine parser.
type Parser struct {
	conf   *config.Config
	tokens []scan.Token // The stack; the top is the last element.
}

// NewParser returns a parser that will reduce the tokens, which are in
// input order. The slice is not modified.
func NewParser(conf *config.Config, tokens []scan.Token) *Parser {
	return &Parser{
		conf:   conf,
		tokens: tokens,
	}
}

// Parse is a convenience wrapper that reduces the tokens with a new Parser.
func Parse(conf *config.Config, tokens []scan.Token) (string, error) {
	return NewParser(conf, tokens).Parse()
}

// Parse reduces the whole token stack to a single value.
//
// Line
//
//	molecular EOF
//
// The top level is a group with no enclosing parentheses: it ends when
// the stack is empty.
func (p *Parser) Parse() (string, error) {
	if len(p.tokens) == 0 {
		return "", p.errorf(ErrEmpty, scan.Token{Type: scan.EOF}, "nothing to evaluate")
	}
	return p.molecular(scan.Token{Type: scan.EOF})
}

// pop removes and returns the top of the stack. The boolean is false when
// the stack is empty; the returned token is then an EOF at the start of
// the line.
func (p *Parser) pop() (scan.Token, bool) {
	if len(p.tokens) == 0 {
		return scan.Token{Type: scan.EOF}, false
	}
	tok := p.tokens[len(p.tokens)-1]
	p.tokens = p.tokens[:len(p.tokens)-1]
	return tok, true
}

func (p *Parser) peek() scan.Token {
	if len(p.tokens) == 0 {
		return scan.Token{Type: scan.EOF}
	}
	return p.tokens[len(p.tokens)-1]
}

// atomic reduces one term.
//
// atomic
//
//	trim... '(' molecular ')' trim...
//	trim... name trim...
//
// Trims written after the term are on top of the stack and are popped
// first; those written before it are popped after the term itself.
func (p *Parser) atomic() (string, error) {
	var postfix []scan.Token
	for p.peek().IsTrim() {
		tok, _ := p.pop()
		postfix = append(postfix, tok)
	}
	tok, ok := p.pop()
	var val string
	switch {
	case !ok:
		return "", p.errorf(ErrUnexpectedToken, tok, "missing operand")
	case tok.Type == scan.Name:
		val = tok.Text
	case tok.Type == scan.RightParen:
		v, err := p.molecular(tok)
		if err != nil {
			return "", err
		}
		val = v
	default:
		return "", p.errorf(ErrUnexpectedToken, tok, "unexpected %s", tok.Type)
	}
	var err error
	// Closest to the term first.
	for i := len(postfix) - 1; i >= 0; i-- {
		if val, err = p.trim(postfix[i], val); err != nil {
			return "", err
		}
	}
	for p.peek().IsTrim() {
		tok, _ := p.pop()
		if val, err = p.trim(tok, val); err != nil {
			return "", err
		}
	}
	return val, nil
}

// trim applies one trim token to val.
func (p *Parser) trim(tok scan.Token, val string) (string, error) {
	var (
		res string
		err error
	)
	if tok.Type == scan.LeftTrim {
		res, err = value.TrimFirst(val)
	} else {
		res, err = value.TrimLast(val)
	}
	if err != nil {
		return "", p.wrap(ErrTrimUnderflow, tok, err)
	}
	if p.conf.Debug("parse") {
		p.conf.Logger().Debug("trim", "op", tok.Text, "value", val, "result", res)
	}
	return res, nil
}

// molecular reduces a group of terms joined by a single operator. The
// closing parenthesis of the group has been consumed and is passed as
// rparen; at the top level rparen is an EOF token.
//
// molecular
//
//	atomic
//	atomic '+' atomic...
//	atomic '-' atomic...
func (p *Parser) molecular(rparen scan.Token) (string, error) {
	top := rparen.Type == scan.EOF
	acc, err := p.atomic()
	if err != nil {
		return "", err
	}
	dominant := scan.EOF // Set by the first operator of the group.
	for {
		tok, ok := p.pop()
		switch {
		case !ok:
			if top {
				return acc, nil
			}
			return "", p.errorf(ErrUnbalanced, rparen, "unmatched )")
		case tok.Type == scan.LeftParen:
			if top {
				return "", p.errorf(ErrUnbalanced, tok, "unmatched (")
			}
			return acc, nil
		case !tok.IsOperator():
			if top {
				return "", p.errorf(ErrTrailingTokens, tok, "%s with no operator", tok.Type)
			}
			return "", p.errorf(ErrUnexpectedToken, tok, "expected operator, found %s", tok.Type)
		}
		if dominant == scan.EOF {
			dominant = tok.Type
		} else if tok.Type != dominant {
			return "", p.errorf(ErrMixedOperators, tok, "%s among %s without parentheses", tok.Text, symbol(dominant))
		}
		left, err := p.atomic()
		if err != nil {
			return "", err
		}
		right := acc
		if tok.Type == scan.Plus {
			acc = value.Concat(left, right)
		} else {
			acc = value.Remove(left, right)
		}
		if p.conf.Debug("parse") {
			p.conf.Logger().Debug("fold", "op", tok.Text, "left", left, "right", right, "result", acc)
		}
	}
}

func symbol(t scan.Type) string {
	if t == scan.Plus {
		return "+"
	}
	return "-"
}
