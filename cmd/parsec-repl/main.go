/*
Parsec-repl is an interactive shell for trying out this module's two
worked example grammars against ad hoc input.

It reads lines of input, one grammar instance at a time, and prints
either the parsed result or a human-readable diagnostic.Report for
whatever failed to parse.

Usage:

	parsec-repl [flags]

The flags are:

	-v, --version
		Print the current version and exit.

	-g, --grammar NAME
		Which grammar to parse input against: "regex" for
		examples/regexgrammar, or "rule" for examples/ruledsl. Defaults
		to "regex".

	-d, --direct
		Force reading directly from stdin instead of going through GNU
		readline, even when connected to a TTY.

	-c, --command INPUT
		Immediately parse the given input and print its result, then
		exit, instead of starting an interactive session. Multiple
		inputs may be separated by the ";" character.

Adapted from cmd/tqi/main.go's flag set and exit-code convention, with
the game engine swapped for a grammar dispatcher.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/dekarrin/parsec/diagnostic"
	"github.com/dekarrin/parsec/examples/regexgrammar"
	"github.com/dekarrin/parsec/examples/ruledsl"
	"github.com/dekarrin/parsec/internal/replinput"
	"github.com/dekarrin/parsec/span"
)

const version = "0.1.0"

const (
	ExitSuccess = iota
	ExitParseError
	ExitInitError
)

var (
	returnCode   = ExitSuccess
	flagVersion  = pflag.BoolP("version", "v", false, "Print the current version and exit")
	flagGrammar  = pflag.StringP("grammar", "g", "regex", `Which grammar to parse against: "regex" or "rule"`)
	forceDirect  = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline")
	startCommand = pflag.StringP("command", "c", "", `Immediately parse the given input(s), separated by ";", then exit`)
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("parsec-repl %s\n", version)
		return
	}

	run, err := lookupGrammar(*flagGrammar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	if *startCommand != "" {
		for _, line := range strings.Split(*startCommand, ";") {
			if !evalLine(run, line) {
				returnCode = ExitParseError
			}
		}
		return
	}

	if err := repl(run); err != nil && err != io.EOF {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitParseError
	}
}

// grammarFunc parses source and returns a human-readable rendering of
// the result (success or a diagnostic.Report).
type grammarFunc func(source string) string

func lookupGrammar(name string) (grammarFunc, error) {
	switch name {
	case "regex":
		return func(source string) string {
			pat, err := regexgrammar.Parse(source)
			if err != nil {
				return renderErr(source, err)
			}
			return fmt.Sprintf("%d sub-patterns: %+v", len(pat.Elements), pat.Elements)
		}, nil
	case "rule":
		return func(source string) string {
			g, err := ruledsl.Parse(source)
			if err != nil {
				return renderErr(source, err)
			}
			return fmt.Sprintf("%d statement(s): %+v", len(g.Statements), g.Statements)
		}, nil
	default:
		return nil, fmt.Errorf("unknown grammar %q: must be \"regex\" or \"rule\"", name)
	}
}

func renderErr(source string, err error) string {
	pe, ok := err.(span.ParseError)
	if !ok {
		return "error: " + err.Error()
	}
	return diagnostic.New(source, pe).String()
}

func evalLine(run grammarFunc, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	out := run(line)
	fmt.Println(out)
	return !strings.HasPrefix(out, "error:") && !strings.Contains(out, "(line ")
}

func repl(run grammarFunc) error {
	reader, err := newReader()
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		line, err := reader.ReadLine()
		if err != nil {
			return err
		}
		evalLine(run, line)
	}
}

func newReader() (replinput.LineReader, error) {
	if *forceDirect || !isatty.IsTerminal(os.Stdin.Fd()) {
		return replinput.NewDirectReader(os.Stdin), nil
	}
	return replinput.NewInteractiveReader(fmt.Sprintf("(%s) > ", *flagGrammar))
}
