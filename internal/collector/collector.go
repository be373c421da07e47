// Package collector runs the question flow for one pass: the mandatory
// questions followed by a chosen subset of the optional ones.
package collector

import (
	"fmt"

	"github.com/spboyer/assistant/internal/prompt"
	"github.com/spboyer/assistant/internal/responses"
)

// Collector asks every question of a pass and gathers the answers.
type Collector struct {
	prompter prompt.Prompter
	chooser  Chooser
}

// New creates a Collector.
func New(p prompt.Prompter, c Chooser) *Collector {
	return &Collector{prompter: p, chooser: c}
}

// Collect asks the mandatory questions in order, then the optional questions
// picked by the Chooser. It returns only once every question has a valid
// answer; the only failure is the prompter running out of input.
func (c *Collector) Collect() (*responses.Set, error) {
	fields := append(responses.Mandatory(), c.chooser.Choose(responses.OptionalPool())...)

	set := responses.New()
	for _, f := range fields {
		answer, err := c.prompter.Ask(f.Prompt, responses.ValidatorFor(f.Key))
		if err != nil {
			return nil, fmt.Errorf("asking for %s: %w", f.Key, err)
		}
		set.Put(f.Key, answer)
	}
	return set, nil
}
