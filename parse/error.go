// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"errors"
	"fmt"

	"github.com/twine-lang/twine/scan"
)

// ErrMalformed is matched by every error returned by the parser.
var ErrMalformed = errors.New("malformed expression")

// The kinds of parse error.
var (
	ErrUnbalanced      = errors.New("unbalanced parentheses")
	ErrMixedOperators  = errors.New("mixed operators")
	ErrTrimUnderflow   = errors.New("trim underflow")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingTokens  = errors.New("leftover tokens")
	ErrEmpty           = errors.New("empty expression")
)

// Error describes a malformed expression.
type Error struct {
	Kind   error      // One of the Err variables above.
	Token  scan.Token // The token at which reduction stopped.
	Detail string
	Err    error // The underlying cause, if any.
}

func (e *Error) Error() string {
	s := fmt.Sprintf("offset %d: %s", e.Token.Offset, e.Kind)
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

func (e *Error) Unwrap() []error {
	errs := []error{e.Kind, ErrMalformed}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (p *Parser) errorf(kind error, tok scan.Token, format string, args ...interface{}) error {
	return &Error{
		Kind:   kind,
		Token:  tok,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (p *Parser) wrap(kind error, tok scan.Token, err error) error {
	return &Error{
		Kind:   kind,
		Token:  tok,
		Detail: err.Error(),
		Err:    err,
	}
}
