// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the operations on twine values.
// Every value is a string.
package value // import "github.com/twine-lang/twine/value"

import (
	"strings"
	"unicode/utf8"
)

// Error is the type of the errors produced by the operations.
type Error string

func (err Error) Error() string {
	return string(err)
}

// ErrEmpty is returned when trimming the empty string.
const ErrEmpty = Error("trim of empty string")

// Concat returns left followed by right.
func Concat(left, right string) string {
	return left + right
}

// Remove returns left with the first occurrence of right deleted.
// If right does not occur in left, left is returned unchanged.
func Remove(left, right string) string {
	i := strings.Index(left, right)
	if i < 0 {
		return left
	}
	return left[:i] + left[i+len(right):]
}

// TrimFirst drops the first character of s.
func TrimFirst(s string) (string, error) {
	if s == "" {
		return "", ErrEmpty
	}
	_, w := utf8.DecodeRuneInString(s)
	return s[w:], nil
}

// TrimLast drops the last character of s.
func TrimLast(s string) (string, error) {
	if s == "" {
		return "", ErrEmpty
	}
	_, w := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-w], nil
}
