// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Twine is an interpreter for a tiny language of string expressions.

Every value is a string. A name, a run of lowercase letters, stands for
itself:

	twine snow
	snow

Two binary operators combine strings. + joins them and - removes the
first occurrence of the right operand from the left one, leaving the left
operand unchanged if the right one does not occur in it:

	twine 'a + b + c'
	abc
	twine 'abcabc - bc'
	aabc

Two unary operators trim a term: < drops its first character and > drops
its last. Trimming an empty string is an error.

	twine '<abc>'
	b

Parentheses group. Within one group all binary operators must be the
same; a + b - c is rejected and must be written (a + b) - c. Expressions
are reduced from the right, so the rightmost term of a group is the
first to be evaluated and every operand to its left is folded into it.

Spaces separate names and are otherwise ignored. Any other character is
an error. A line that cannot be tokenized prints

	failed to tokenize!

and one that does not form an expression prints

	malformed!

Usage:

	twine [-hinvD] [-c config.yaml] [-d tokens,parse] [-f file] [expression]

With no expression and no flags twine prints a reminder and exits. The -f
flag evaluates each line of a file, -i each line of standard input, and
-D runs a short demonstration. Lines starting with # are comments.

The -d flag turns on traces: tokens logs each token as it is scanned and
parse logs each trim and fold. The -v flag explains failures on standard
error.

Settings may also come from a YAML file named by -c or $TWINE_CONFIG:

	prompt: "twine> "
	color: auto      # auto, always or never
	verbose: true
	debug: [parse]

and from the environment variables TWINE_PROMPT, TWINE_COLOR,
TWINE_VERBOSE and TWINE_DEBUG, which may be set in a .env file in the
current directory.
*/
package main
