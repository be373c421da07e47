// Package prompt reads validated answers from the user, either line by line
// from any io.Reader or through a huh form when attached to a terminal.
package prompt

//go:generate go tool mockgen -source=prompt.go -destination=mock_prompter.go -package=prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInputClosed is returned when the input stream ends (or the user aborts)
// before a valid answer was read.
var ErrInputClosed = errors.New("input closed")

// Prompter asks a question and returns the trimmed answer. When validate is
// non-nil, invalid answers are reported to the user and the question is asked
// again until validate accepts one.
type Prompter interface {
	Ask(question string, validate func(string) error) (string, error)
}

// ForReader returns a Terminal prompter when in is an interactive terminal
// and a Line prompter otherwise (pipes, files, tests).
func ForReader(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewTerminal(in, out)
	}
	return NewLine(in, out)
}

// Line prompts on out and reads one line per answer from in.
type Line struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLine creates a Line prompter. The reader is shared across questions so
// that buffered input is never lost between them. Lines have no length limit.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{reader: bufio.NewReader(in), out: out}
}

// Ask writes question, reads a line and trims it. Rejected answers print the
// validation error on its own line before the question is repeated. A final
// line without a trailing newline is still an answer.
func (l *Line) Ask(question string, validate func(string) error) (string, error) {
	for {
		fmt.Fprint(l.out, question) //nolint:errcheck

		line, err := l.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if err != nil && line == "" {
			fmt.Fprintln(l.out) //nolint:errcheck
			return "", ErrInputClosed
		}

		answer := strings.TrimSpace(line)
		if validate == nil {
			return answer, nil
		}
		if err := validate(answer); err != nil {
			fmt.Fprintln(l.out, err.Error()) //nolint:errcheck
			continue
		}
		return answer, nil
	}
}
