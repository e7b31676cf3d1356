// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the twine -D demonstration. The script for the
// demo is in demo.twn in this directory. Its content is embedded in this
// source file.
package demo

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	_ "embed"

	"github.com/twine-lang/twine/config"
	"github.com/twine-lang/twine/run"
)

//go:embed demo.twn
var demoText string

// Text returns the input text for the standard demo.
func Text() string {
	return demoText
}

// Run runs the demo, writing to the configured output. Each script line
// is echoed; expression lines are then evaluated. When the user hits a
// blank line, the next line of the script is shown. If the user's input
// line has text, that is evaluated instead and the script does not
// advance; "quit" stops. A nil userInput ignores the user and just runs
// the script.
func Run(conf *config.Config, userInput io.Reader) error {
	out := conf.Output()
	lines := strings.SplitAfter(demoText, "\n")
	step := func() bool {
		for len(lines) > 0 && lines[0] == "" {
			lines = lines[1:]
		}
		if len(lines) == 0 {
			return false
		}
		line := strings.TrimSuffix(lines[0], "\n")
		lines = lines[1:]
		fmt.Fprintln(out, line)
		if !strings.HasPrefix(line, "#") && strings.TrimSpace(line) != "" {
			run.Eval(conf, line)
		}
		return true
	}
	if userInput == nil {
		for step() {
		}
		return nil
	}
	// Show first line, with instructions, before accepting user input.
	if !step() {
		return nil
	}
	scan := bufio.NewScanner(userInput)
	for scan.Scan() {
		text := strings.TrimSpace(scan.Text())
		switch text {
		case "":
			if !step() {
				return nil
			}
		case "quit":
			return nil
		default:
			run.Eval(conf, text)
		}
	}
	return scan.Err()
}
