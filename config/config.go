// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings shared by the twine scanner, parser
// and driver.
package config // import "github.com/twine-lang/twine/config"

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// DebugFlags are the debug switches understood by twine.
var DebugFlags = []string{
	"parse",
	"tokens",
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// A Config holds information about the configuration of the system.
// The zero value of a Config is usable and writes to the standard output
// and error streams. The getters also accept a nil Config.
type Config struct {
	prompt    string
	output    io.Writer
	errOutput io.Writer
	debug     map[string]bool
	verbose   bool
	color     string
	logger    *slog.Logger
}

// Output returns the writer to be used for program output.
func (c *Config) Output() io.Writer {
	if c == nil || c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed.
func (c *Config) SetOutput(output io.Writer) {
	c.output = output
	c.logger = nil
}

// ErrOutput returns the writer to be used for error output.
func (c *Config) ErrOutput() io.Writer {
	if c == nil || c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error output is printed.
func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
	c.logger = nil
}

// Debug reports whether the debug switch is on.
func (c *Config) Debug(flag string) bool {
	if c == nil {
		return false
	}
	return c.debug[flag]
}

// SetDebug sets the value of the specified debug flag.
// It returns false if the flag is not known.
func (c *Config) SetDebug(flag string, state bool) bool {
	known := false
	for _, f := range DebugFlags {
		if f == flag {
			known = true
			break
		}
	}
	if !known {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[flag] = state
	c.logger = nil
	return true
}

// SetDebugList turns on each switch in the comma-separated list.
func (c *Config) SetDebugList(list string) error {
	for _, f := range strings.Split(list, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if !c.SetDebug(f, true) {
			return fmt.Errorf("unknown debug flag %q; known flags: %s", f, strings.Join(DebugFlags, ", "))
		}
	}
	return nil
}

// Debugging returns the debug switches that are on, sorted.
func (c *Config) Debugging() []string {
	if c == nil {
		return nil
	}
	var on []string
	for f, state := range c.debug {
		if state {
			on = append(on, f)
		}
	}
	sort.Strings(on)
	return on
}

func (c *Config) Prompt() string {
	if c == nil {
		return ""
	}
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Verbose reports whether failures are explained on the error output.
func (c *Config) Verbose() bool {
	return c != nil && c.verbose
}

func (c *Config) SetVerbose(verbose bool) {
	c.verbose = verbose
}

// Color returns the color mode: ColorAuto, ColorAlways or ColorNever.
func (c *Config) Color() string {
	if c == nil || c.color == "" {
		return ColorAuto
	}
	return c.color
}

// SetColor sets the color mode.
func (c *Config) SetColor(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		c.color = mode
		return nil
	}
	return fmt.Errorf("unknown color mode %q", mode)
}

// Logger returns a logger writing to the error output. Its level is
// debug when any debug switch is on, warnings otherwise.
func (c *Config) Logger() *slog.Logger {
	if c == nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	if c.logger == nil {
		level := slog.LevelWarn
		if len(c.Debugging()) > 0 {
			level = slog.LevelDebug
		}
		h := slog.NewTextHandler(c.ErrOutput(), &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				// No timestamps.
				if a.Key == slog.TimeKey && len(groups) == 0 {
					return slog.Attr{}
				}
				return a
			},
		})
		c.logger = slog.New(h)
	}
	return c.logger
}
