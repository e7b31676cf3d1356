// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate stringer -type Type

// Package scan turns a line of twine source into tokens.
package scan // import "github.com/twine-lang/twine/scan"

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/twine-lang/twine/config"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type   Type   // The type of this item.
	Offset int    // Byte offset of the item in the line.
	Text   string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF        Type = iota // end of the line; never part of a Tokenize result
	Name                   // run of lowercase letters
	LeftParen              // '('
	RightParen             // ')'
	LeftTrim               // '<', drops the first character
	RightTrim              // '>', drops the last character
	Plus                   // '+'
	Minus                  // '-'
)

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

// IsTrim reports whether the token is one of the unary trim operators.
func (i Token) IsTrim() bool {
	return i.Type == LeftTrim || i.Type == RightTrim
}

// IsOperator reports whether the token is a binary operator.
func (i Token) IsOperator() bool {
	return i.Type == Plus || i.Type == Minus
}

// ErrUnrecognized is matched by every *Error.
var ErrUnrecognized = errors.New("unrecognized character")

// Error reports a character outside the language.
type Error struct {
	Offset int
	Char   rune
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: unrecognized character: %#U", e.Offset, e.Char)
}

func (e *Error) Is(target error) bool {
	return target == ErrUnrecognized
}

const (
	eof      = -1
	alphabet = "abcdefghijklmnopqrstuvwxyz"
)

// symbols maps each single-character token to its type.
var symbols = map[rune]Type{
	'(': LeftParen,
	')': RightParen,
	'<': LeftTrim,
	'>': RightTrim,
	'+': Plus,
	'-': Minus,
}

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	conf      *config.Config
	input     string // the line of text being scanned.
	lastWidth int    // size of the most recent rune
	pos       int    // current position in the input
	start     int    // start position of this item
	token     Token
	err       *Error
}

// New creates and returns a new scanner for the line.
func New(conf *config.Config, input string) *Scanner {
	return &Scanner{
		conf:  conf,
		input: input,
	}
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	if l.pos >= len(l.input) {
		l.lastWidth = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.lastWidth = w
	l.pos += w
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	l.pos -= l.lastWidth
	l.lastWidth = 0
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	l.token = Token{t, l.start, l.input[l.start:l.pos]}
	if l.conf.Debug("tokens") {
		l.conf.Logger().Debug("emit", "offset", l.start, "token", l.token.String())
	}
	l.start = l.pos
	return nil
}

// errorf records the bad rune and stops the scan.
func (l *Scanner) errorf(r rune) stateFn {
	l.err = &Error{Offset: l.start, Char: r}
	l.start = len(l.input)
	l.pos = len(l.input)
	return nil
}

// Next returns the next token. At the end of the line it returns an EOF
// token; if the line holds an unrecognized character it returns the error.
func (l *Scanner) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	l.token = Token{EOF, l.pos, ""}
	state := lexAny
	for state != nil {
		state = state(l)
	}
	if l.err != nil {
		return Token{}, l.err
	}
	return l.token, nil
}

// Tokenize scans the whole line and returns its tokens in input order.
func Tokenize(conf *config.Config, line string) ([]Token, error) {
	l := New(conf, line)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// state functions

// lexAny scans the next item.
func lexAny(l *Scanner) stateFn {
	r := l.next()
	switch {
	case r == eof:
		return nil
	case r == ' ':
		return lexSpace
	case isLetter(r):
		return lexName
	}
	if t, ok := symbols[r]; ok {
		return l.emit(t)
	}
	return l.errorf(r)
}

// lexSpace scans a run of spaces.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for l.peek() == ' ' {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexName scans a run of letters. One has already been seen.
func lexName(l *Scanner) stateFn {
	for isLetter(l.peek()) {
		l.next()
	}
	return l.emit(Name)
}

func isLetter(r rune) bool {
	return r != eof && strings.ContainsRune(alphabet, r)
}
