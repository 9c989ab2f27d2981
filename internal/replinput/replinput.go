// Package replinput supplies the line-reading abstraction for
// cmd/parsec-repl: a direct, unadorned stdin reader for piped input and
// scripts, and a GNU-readline-backed reader for interactive TTY
// sessions with history and line editing.
//
// Adapted directly from internal/input/input.go's
// DirectCommandReader/InteractiveCommandReader split, renamed around
// "read a line of grammar input" instead of "read a player command".
package replinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader reads one line of input at a time, from whatever source
// backs it.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// DirectLineReader reads lines from any io.Reader verbatim, with no
// escape-sequence handling. Suited to piped or scripted input.
type DirectLineReader struct {
	r *bufio.Reader
}

// NewDirectReader wraps r in a DirectLineReader.
func NewDirectReader(r io.Reader) *DirectLineReader {
	return &DirectLineReader{r: bufio.NewReader(r)}
}

func (d *DirectLineReader) ReadLine() (string, error) {
	line, err := d.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (d *DirectLineReader) Close() error { return nil }

// InteractiveLineReader reads lines via GNU readline, giving history
// and in-line editing for a live TTY session.
type InteractiveLineReader struct {
	rl *readline.Instance
}

// NewInteractiveReader starts a readline session with the given
// prompt.
func NewInteractiveReader(prompt string) (*InteractiveLineReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &InteractiveLineReader{rl: rl}, nil
}

func (i *InteractiveLineReader) ReadLine() (string, error) {
	line, err := i.rl.Readline()
	if err != nil {
		return "", err
	}
	return line, nil
}

func (i *InteractiveLineReader) Close() error { return i.rl.Close() }

func (i *InteractiveLineReader) SetPrompt(p string) { i.rl.SetPrompt(p) }

var (
	_ LineReader = (*DirectLineReader)(nil)
	_ LineReader = (*InteractiveLineReader)(nil)
)
