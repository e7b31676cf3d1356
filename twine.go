// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/twine-lang/twine/config"
	"github.com/twine-lang/twine/demo"
	"github.com/twine-lang/twine/run"
)

const optstring = "c:d:f:hinvD"

type options struct {
	configFile  string
	debug       string
	file        string
	interactive bool
	noColor     bool
	verbose     bool
	demo        bool
	help        bool
	args        []string
}

func main() {
	os.Exit(twine(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// twine runs the command and returns the exit status.
func twine(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log.SetFlags(0)
	log.SetPrefix("twine: ")
	log.SetOutput(stderr)

	opts, err := readFlags(argv)
	if err != nil {
		log.Print(err)
		usage(stderr)
		return 2
	}
	if opts.help {
		usage(stdout)
		return 0
	}
	conf, err := config.Load(opts.configFile)
	if err != nil {
		log.Print(err)
		return 2
	}
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	if opts.debug != "" {
		if err := conf.SetDebugList(opts.debug); err != nil {
			log.Print(err)
			return 2
		}
	}
	if opts.noColor {
		conf.SetColor(config.ColorNever)
	}
	if opts.verbose {
		conf.SetVerbose(true)
	}

	switch {
	case opts.demo:
		var in io.Reader
		if isTTY(stdin) {
			in = stdin
		}
		if err := demo.Run(conf, in); err != nil {
			log.Print(err)
			return 1
		}
		return 0
	case opts.file != "":
		fd, err := os.Open(opts.file)
		if err != nil {
			log.Print(err)
			return 1
		}
		defer fd.Close()
		return status(run.Run(conf, fd, false))
	case opts.interactive:
		return status(run.Run(conf, stdin, isTTY(stdin)))
	}

	switch len(opts.args) {
	case 0:
		fmt.Fprintln(stdout, "missing string to parse!")
		return 0
	case 1:
		if run.Eval(conf, opts.args[0]) {
			return 0
		}
		return 1
	}
	log.Print("too many arguments; quote the expression")
	usage(stderr)
	return 2
}

// readFlags parses the command line. argv[0] is the program name.
func readFlags(argv []string) (*options, error) {
	parsed, optind, err := getopt.Getopts(argv, optstring)
	if err != nil {
		return nil, err
	}
	opts := &options{args: argv[optind:]}
	for _, opt := range parsed {
		switch opt.Option {
		case 'c':
			opts.configFile = opt.Value
		case 'd':
			opts.debug = opt.Value
		case 'f':
			opts.file = opt.Value
		case 'i':
			opts.interactive = true
		case 'n':
			opts.noColor = true
		case 'v':
			opts.verbose = true
		case 'D':
			opts.demo = true
		case 'h':
			opts.help = true
		}
	}
	return opts, nil
}

func status(ok bool, err error) int {
	if err != nil {
		log.Print(err)
		return 1
	}
	if !ok {
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: twine [-hinvD] [-c config.yaml] [-d tokens,parse] [-f file] [expression]\n")
	fmt.Fprintf(w, "Flags:\n")
	fmt.Fprintf(w, "  -c file  read settings from the YAML file\n")
	fmt.Fprintf(w, "  -d list  turn on debug switches (tokens, parse)\n")
	fmt.Fprintf(w, "  -f file  evaluate each line of the file\n")
	fmt.Fprintf(w, "  -h       print this message\n")
	fmt.Fprintf(w, "  -i       evaluate lines read from standard input\n")
	fmt.Fprintf(w, "  -n       no color\n")
	fmt.Fprintf(w, "  -v       explain failures on standard error\n")
	fmt.Fprintf(w, "  -D       run the demo\n")
}
