// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for twine.
// It is factored out of main so it can be used for tests.
// This layout also helps out twine/mobile.
package run // import "github.com/twine-lang/twine/run"

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/twine-lang/twine/config"
	"github.com/twine-lang/twine/parse"
	"github.com/twine-lang/twine/scan"
)

// The fixed diagnostics printed in place of a value.
const (
	TokenizeFailure  = "failed to tokenize!"
	MalformedFailure = "malformed!"
)

// Status classifies the outcome of evaluating a line.
type Status int

const (
	OK Status = iota
	TokenizeFailed
	Malformed
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case TokenizeFailed:
		return "tokenize failure"
	case Malformed:
		return "malformed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of evaluating one line.
type Result struct {
	Value string
	Err   error
}

// Status reports how the evaluation ended.
func (r Result) Status() Status {
	switch {
	case r.Err == nil:
		return OK
	case errors.Is(r.Err, scan.ErrUnrecognized):
		return TokenizeFailed
	}
	return Malformed
}

// Line tokenizes and evaluates one line.
func Line(conf *config.Config, line string) Result {
	tokens, err := scan.Tokenize(conf, line)
	if err != nil {
		return Result{Err: err}
	}
	v, err := parse.Parse(conf, tokens)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Value: v}
}

// Report prints the value of the result, or the diagnostic for its failure,
// followed by a newline. In verbose mode the details of a failure are
// also written to the error output. It reports whether the result was
// a success.
func Report(conf *config.Config, r Result) bool {
	w := conf.Output()
	switch r.Status() {
	case OK:
		fmt.Fprintln(w, r.Value)
		return true
	case TokenizeFailed:
		diagnostic(conf).Fprintln(w, TokenizeFailure)
	default:
		diagnostic(conf).Fprintln(w, MalformedFailure)
	}
	if conf.Verbose() {
		fmt.Fprintf(conf.ErrOutput(), "twine: %s\n", r.Err)
	}
	return false
}

// diagnostic returns the color used for failure lines. In auto mode
// color is used only on a standard output that is a terminal.
func diagnostic(conf *config.Config) *color.Color {
	c := color.New(color.FgRed)
	switch conf.Color() {
	case config.ColorAlways:
		c.EnableColor()
	case config.ColorNever:
		c.DisableColor()
	default:
		if conf.Output() != io.Writer(os.Stdout) {
			c.DisableColor()
		}
	}
	return c
}

// Eval evaluates one line and reports the result.
func Eval(conf *config.Config, line string) bool {
	return Report(conf, Line(conf, line))
}

// Run evaluates each line read from r until EOF or a read error. Blank
// lines and lines starting with # are skipped. When interactive, the
// configured prompt is printed before each line is read.
// The return value says whether every line evaluated without error.
func Run(conf *config.Config, r io.Reader, interactive bool) (success bool, err error) {
	success = true
	scanner := bufio.NewScanner(r)
	for {
		if interactive {
			fmt.Fprint(conf.Output(), conf.Prompt())
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !Eval(conf, line) {
			success = false
		}
	}
	if interactive {
		fmt.Fprintln(conf.Output())
	}
	return success, scanner.Err()
}
