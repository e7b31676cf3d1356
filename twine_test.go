// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twine-lang/twine/config"
	"github.com/twine-lang/twine/run"
)

const verbose = false

func TestAll(t *testing.T) {
	var err error
	check := func() {
		if err != nil {
			t.Fatal(err)
		}
	}
	names, err := filepath.Glob(filepath.Join("testdata", "*.twn"))
	check()
	if len(names) == 0 {
		t.Fatal("no test files")
	}
	for _, path := range names {
		t.Log(path)
		var data []byte
		data, err = os.ReadFile(path)
		check()
		lines := strings.Split(string(data), "\n")
		// Will have a trailing empty string.
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		lineNum := 1
		errCount := 0
		for len(lines) > 0 {
			// Assemble the input to one example.
			input, output, length := getText(lines)
			if input == nil {
				break
			}
			if verbose {
				fmt.Printf("%s:%d: %s\n", path, lineNum, input)
			}
			if !runTest(t, path, lineNum, input, output) {
				errCount++
				if errCount > 3 {
					t.Fatal("too many errors")
				}
			}
			lines = lines[length:]
			lineNum += length
		}
	}
}

func runTest(t *testing.T, name string, lineNum int, input, output []string) bool {
	in := strings.Join(input, "\n")
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	conf := new(config.Config)
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	conf.SetColor(config.ColorNever)
	if _, err := run.Run(conf, strings.NewReader(in), false); err != nil {
		t.Fatalf("\nread failure (%s) at %s:%d:\n%s", err, name, lineNum, in)
	}
	if stderr.Len() != 0 {
		t.Fatalf("\nunexpected error output (%s) at %s:%d:\n%s", stderr, name, lineNum, in)
	}
	result := strings.Split(stdout.String(), "\n")
	if !equal(result, output) {
		t.Errorf("\n%s:%d:\n\t%s\ngot:\n\t%s\nwant:\n\t%s",
			name, lineNum,
			strings.Join(input, "\n\t"),
			strings.Join(result, "\n\t"),
			strings.Join(output, "\n\t"))
		return false
	}
	return true
}

func equal(a, b []string) bool {
	// Split leaves an empty trailing line.
	if len(a) > 0 && a[len(a)-1] == "" {
		a = a[:len(a)-1]
	}
	if len(a) != len(b) {
		return false
	}
	for i, s := range a {
		if strings.TrimSpace(s) != strings.TrimSpace(b[i]) {
			return false
		}
	}
	return true
}

// getText returns the next example: the input lines, the expected output
// and the number of lines consumed. Input ends at a tab-indented line;
// an indented "#" is an expected blank line in the output.
func getText(lines []string) (input, output []string, length int) {
	// Skip blank and initial comment lines.
	for _, line := range lines {
		if len(line) > 0 && !strings.HasPrefix(line, "#") {
			break
		}
		length++
	}

	for _, line := range lines[length:] {
		line = strings.TrimRight(line, " \t")
		if strings.HasPrefix(line, "\t") {
			break
		}
		input = append(input, line)
		length++
	}

	// Output ends at non-blank, non-tab-indented line.
	for _, line := range lines[length:] {
		line = strings.TrimRight(line, " \t")
		if line != "" && !strings.HasPrefix(line, "\t") {
			break
		}
		output = append(output, strings.TrimPrefix(line, "\t"))
		length++
	}
	for len(output) > 0 && output[len(output)-1] == "" {
		output = output[:len(output)-1]
	}
	for i, line := range output {
		if line == "#" {
			output[i] = ""
		}
	}

	return // Will return nil if no more tests exist.
}

// command runs twine with the arguments and standard input.
func command(t *testing.T, stdin string, args ...string) (status int, stdout, stderr string) {
	t.Helper()
	// Keep the developer's settings out of the test.
	for _, v := range []string{"TWINE_CONFIG", "TWINE_PROMPT", "TWINE_COLOR", "TWINE_VERBOSE", "TWINE_DEBUG"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
	saved := config.EnvFile
	config.EnvFile = filepath.Join(t.TempDir(), ".env")
	defer func() { config.EnvFile = saved }()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	argv := append([]string{"twine", "-n"}, args...)
	status = twine(argv, strings.NewReader(stdin), out, errOut)
	return status, out.String(), errOut.String()
}

func TestCommand(t *testing.T) {
	var tests = []struct {
		args   []string
		status int
		stdout string
	}{
		{nil, 0, "missing string to parse!\n"},
		{[]string{"snow"}, 0, "snow\n"},
		{[]string{"(a+b)"}, 0, "ab\n"},
		{[]string{"a+b+c"}, 0, "abc\n"},
		{[]string{"abcabc-bc"}, 0, "aabc\n"},
		{[]string{"<abc>"}, 0, "b\n"},
		{[]string{"a + b - c"}, 1, "malformed!\n"},
		{[]string{"a*b"}, 1, "failed to tokenize!\n"},
	}
	for _, test := range tests {
		status, stdout, stderr := command(t, "", test.args...)
		assert.Equal(t, test.status, status, "%q", test.args)
		assert.Equal(t, test.stdout, stdout, "%q", test.args)
		assert.Empty(t, stderr, "%q", test.args)
	}
}

func TestCommandUsage(t *testing.T) {
	status, _, stderr := command(t, "", "-x")
	assert.Equal(t, 2, status)
	assert.Contains(t, stderr, "usage: twine")

	status, _, stderr = command(t, "", "a", "b")
	assert.Equal(t, 2, status)
	assert.Contains(t, stderr, "too many arguments")

	status, stdout, _ := command(t, "", "-h")
	assert.Equal(t, 0, status)
	assert.Contains(t, stdout, "usage: twine")

	status, _, stderr = command(t, "", "-d", "everything", "a")
	assert.Equal(t, 2, status)
	assert.Contains(t, stderr, "unknown debug flag")
}

func TestCommandVerbose(t *testing.T) {
	status, stdout, stderr := command(t, "", "-v", "(a+b")
	assert.Equal(t, 1, status)
	assert.Equal(t, "malformed!\n", stdout)
	assert.Equal(t, "twine: offset 0: unbalanced parentheses: unmatched (\n", stderr)
}

func TestCommandDebug(t *testing.T) {
	status, stdout, stderr := command(t, "", "-d", "tokens,parse", "a+b")
	assert.Equal(t, 0, status)
	assert.Equal(t, "ab\n", stdout)
	assert.Contains(t, stderr, "msg=emit")
	assert.Contains(t, stderr, "msg=fold")
}

func TestCommandStdin(t *testing.T) {
	status, stdout, _ := command(t, "a+b\n\n<abc>\n", "-i")
	assert.Equal(t, 0, status)
	assert.Equal(t, "ab\nb\n", stdout)

	status, stdout, _ = command(t, "a+b\na-b+c\n", "-i")
	assert.Equal(t, 1, status)
	assert.Equal(t, "ab\nmalformed!\n", stdout)
}

func TestCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.twn")
	require.NoError(t, os.WriteFile(path, []byte("# Comment.\nsnow + ball\n(snowball - ball) + man\n"), 0o644))
	status, stdout, _ := command(t, "", "-f", path)
	assert.Equal(t, 0, status)
	assert.Equal(t, "snowball\nsnowman\n", stdout)

	status, _, stderr := command(t, "", "-f", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr, "twine: ")
}

func TestCommandConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o644))
	status, stdout, stderr := command(t, "", "-c", path, "a>>")
	assert.Equal(t, 1, status)
	assert.Equal(t, "malformed!\n", stdout)
	assert.Contains(t, stderr, "trim underflow")

	status, _, stderr = command(t, "", "-c", filepath.Join(t.TempDir(), "missing.yaml"), "a")
	assert.Equal(t, 2, status)
	assert.NotEmpty(t, stderr)
}
