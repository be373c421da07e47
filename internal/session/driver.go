// Package session drives the assistant loop: collect, summarize, optionally
// save, then ask whether to go again.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spboyer/assistant/internal/collector"
	"github.com/spboyer/assistant/internal/prompt"
	"github.com/spboyer/assistant/internal/responses"
	"github.com/spboyer/assistant/internal/summary"
)

// User-facing text.
const (
	Welcome       = "👋 Welcome to Your Personal Assistant!"
	Farewell      = "👋 Goodbye! Thanks for chatting."
	SavePrompt    = "\nDo you want to save this summary? (yes/no): "
	RatingPrompt  = "Please rate this assistant (1 to 5): "
	RestartPrompt = "\nWould you like to restart? (yes/no): "
)

type state int

const (
	stateCollect state = iota
	stateSummarize
	stateAskSave
	stateRate
	statePersist
	stateAskRestart
	stateTerminate
)

func (s state) String() string {
	switch s {
	case stateCollect:
		return "collect"
	case stateSummarize:
		return "summarize"
	case stateAskSave:
		return "ask_save"
	case stateRate:
		return "rate"
	case statePersist:
		return "persist"
	case stateAskRestart:
		return "ask_restart"
	case stateTerminate:
		return "terminate"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Options wires a Driver to its collaborators.
type Options struct {
	Out       io.Writer
	Prompter  prompt.Prompter
	Chooser   collector.Chooser
	Presenter summary.Presenter
	Persister *summary.Persister
}

// Driver runs passes until the user declines to restart.
type Driver struct {
	out       io.Writer
	prompter  prompt.Prompter
	collector *collector.Collector
	presenter summary.Presenter
	persister *summary.Persister

	passes int
	saved  []string
}

// New creates a Driver. A nil Persister writes into the working directory.
func New(opts Options) *Driver {
	if opts.Persister == nil {
		opts.Persister = summary.NewPersister(".")
	}
	return &Driver{
		out:       opts.Out,
		prompter:  opts.Prompter,
		collector: collector.New(opts.Prompter, opts.Chooser),
		presenter: opts.Presenter,
		persister: opts.Persister,
	}
}

// Run prints the welcome and loops until the user declines to restart. It
// returns nil after the farewell, prompt.ErrInputClosed (wrapped) if input
// ends early, or the error from a failed save. ctx is checked between states;
// a read already blocked on input is not interrupted.
func (d *Driver) Run(ctx context.Context) error {
	fmt.Fprintln(d.out, Welcome) //nolint:errcheck
	fmt.Fprintln(d.out)          //nolint:errcheck

	var (
		answers *responses.Set
		rating  summary.Rating
		err     error
	)

	for st := stateCollect; st != stateTerminate; {
		if err := ctx.Err(); err != nil {
			return err
		}
		slog.Debug("Session state", "state", st, "pass", d.passes+1)

		switch st {
		case stateCollect:
			answers, err = d.collector.Collect()
			if err != nil {
				return err
			}
			st = stateSummarize

		case stateSummarize:
			if err := d.presenter.Present(d.out, answers); err != nil {
				return fmt.Errorf("writing summary: %w", err)
			}
			st = stateAskSave

		case stateAskSave:
			yes, err := d.askYes(SavePrompt)
			if err != nil {
				return err
			}
			if yes {
				st = stateRate
			} else {
				st = stateAskRestart
			}

		case stateRate:
			rating, err = d.askRating()
			if err != nil {
				return err
			}
			st = statePersist

		case statePersist:
			path, err := d.persister.Save(answers, rating)
			if err != nil {
				return err
			}
			d.saved = append(d.saved, path)
			fmt.Fprintf(d.out, "✅ Summary saved to %s\n", path) //nolint:errcheck
			st = stateAskRestart

		case stateAskRestart:
			d.passes++
			answers = nil
			yes, err := d.askYes(RestartPrompt)
			if err != nil {
				return err
			}
			if yes {
				st = stateCollect
			} else {
				fmt.Fprintln(d.out, Farewell) //nolint:errcheck
				st = stateTerminate
			}
		}
	}

	slog.Debug("Session finished", "passes", d.passes, "saved", len(d.saved))
	return nil
}

// Passes returns how many collect/summarize passes completed.
func (d *Driver) Passes() int {
	return d.passes
}

// Saved returns the paths written during Run, in order.
func (d *Driver) Saved() []string {
	return d.saved
}

// askYes reports whether the answer lower-cases to exactly "yes".
func (d *Driver) askYes(question string) (bool, error) {
	answer, err := d.prompter.Ask(question, nil)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "yes", nil
}

func (d *Driver) askRating() (summary.Rating, error) {
	answer, err := d.prompter.Ask(RatingPrompt, summary.ValidateRating)
	if err != nil {
		return 0, err
	}
	return summary.ParseRating(answer)
}
