// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to twine,
// suitable for wrapping in a UI for mobile applications.
// It is designed to work well with the gomobile tool by exposing
// only primitive types. It's also handy for testing.
package mobile

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/twine-lang/twine/config"
	"github.com/twine-lang/twine/run"
)

// Eval evaluates the input string and returns its output: the value
// followed by a newline, or the diagnostic line on failure. A failure
// also returns an error holding the details.
func Eval(expr string) (result string, err error) {
	stdout := new(bytes.Buffer)
	conf := new(config.Config)
	conf.SetOutput(stdout)
	conf.SetErrOutput(io.Discard)
	if err := conf.SetColor(config.ColorNever); err != nil {
		return "", err
	}
	r := run.Line(conf, strings.TrimSuffix(expr, "\n"))
	run.Report(conf, r)
	return stdout.String(), r.Err
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	scanner *bufio.Scanner
}

// NewDemo returns a new Demo that will scan the input text line by line.
func NewDemo(input string) *Demo {
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. Blank lines and # comments produce no output.
// It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	for d.scanner.Scan() {
		line := strings.TrimSpace(d.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return Eval(line)
	}
	if err := d.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// IsEOF reports whether err marks the end of a Demo.
func IsEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
