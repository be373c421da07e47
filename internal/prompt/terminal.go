package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/huh"
)

// Terminal asks each question through a single-field huh form. Validation
// errors are shown inline by huh and the field stays focused until the
// answer passes.
type Terminal struct {
	in         io.Reader
	lines      *lineReader
	out        io.Writer
	accessible bool
}

// NewTerminal creates a Terminal prompter.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, lines: &lineReader{r: bufio.NewReader(in)}, out: out}
}

// WithAccessible switches the forms to huh's accessible mode, which prints
// plain prompts and reads whole lines instead of redrawing the screen.
func (t *Terminal) WithAccessible(accessible bool) *Terminal {
	t.accessible = accessible
	return t
}

// Ask runs a one-field form for question and returns the trimmed answer.
func (t *Terminal) Ask(question string, validate func(string) error) (string, error) {
	var answer string

	input := huh.NewInput().
		Title(strings.TrimSpace(question)).
		Value(&answer)
	if validate != nil {
		input = input.Validate(func(s string) error {
			return validate(strings.TrimSpace(s))
		})
	}

	// The interactive renderer needs the terminal itself to enter raw mode.
	in := t.in
	if t.accessible {
		in = t.lines
	}

	form := huh.NewForm(huh.NewGroup(input)).
		WithInput(in).
		WithOutput(t.out).
		WithAccessible(t.accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			slog.Debug("Prompt aborted by user", "question", strings.TrimSpace(question))
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("running prompt: %w", err)
	}

	answer = strings.TrimSpace(answer)

	// Accessible forms stop quietly at end of input and keep whatever was
	// typed last, so a closed stream shows up as an answer that is empty or
	// still invalid.
	if t.accessible && t.lines.eof {
		if validate == nil && answer == "" {
			return "", ErrInputClosed
		}
		if validate != nil && validate(answer) != nil {
			return "", ErrInputClosed
		}
	}
	return answer, nil
}

// lineReader hands out at most one line per Read. huh's accessible mode
// builds a new scanner for every field, and this keeps each scanner from
// buffering answers meant for later questions.
type lineReader struct {
	r   *bufio.Reader
	eof bool
}

func (l *lineReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := l.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
			}
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		p[n] = b
		n++
		if b == '\n' {
			break
		}
	}
	return n, nil
}
