package collector

//go:generate go tool mockgen -source=chooser.go -destination=mock_chooser.go -package=collector

import (
	"log/slog"
	"math/rand/v2"

	"github.com/spboyer/assistant/internal/responses"
)

// Default bounds for how many optional questions are asked per pass.
const (
	DefaultMinOptional = 2
	DefaultMaxOptional = 4
)

// Chooser picks which optional questions are asked on a pass, and in what
// order.
type Chooser interface {
	Choose(pool []responses.Field) []responses.Field
}

// RandomChooser draws a count uniformly from [min, max] and then that many
// distinct fields uniformly from the pool, in random order.
type RandomChooser struct {
	rng *rand.Rand
	min int
	max int
}

// NewRandomChooser returns a RandomChooser with the default bounds. Equal
// seeds produce equal sequences of choices.
func NewRandomChooser(seed uint64) *RandomChooser {
	return &RandomChooser{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		min: DefaultMinOptional,
		max: DefaultMaxOptional,
	}
}

// WithBounds overrides how many optional questions may be chosen.
func (c *RandomChooser) WithBounds(min, max int) *RandomChooser {
	c.min = min
	c.max = max
	return c
}

// Choose implements Chooser.
func (c *RandomChooser) Choose(pool []responses.Field) []responses.Field {
	lo, hi := c.bounds(len(pool))
	k := lo + c.rng.IntN(hi-lo+1)

	picked := make([]responses.Field, 0, k)
	for _, i := range c.rng.Perm(len(pool))[:k] {
		picked = append(picked, pool[i])
	}

	slog.Debug("Chose optional questions", "count", k, "keys", fieldKeys(picked))
	return picked
}

// bounds clamps the configured range to what a pool of size n can satisfy.
func (c *RandomChooser) bounds(n int) (int, int) {
	lo, hi := c.min, c.max
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// FixedChooser always picks the named keys, in the given order. Keys that are
// not in the pool are skipped.
type FixedChooser []string

// Choose implements Chooser.
func (f FixedChooser) Choose(pool []responses.Field) []responses.Field {
	byKey := make(map[string]responses.Field, len(pool))
	for _, field := range pool {
		byKey[field.Key] = field
	}

	var picked []responses.Field
	seen := make(map[string]bool, len(f))
	for _, key := range f {
		field, ok := byKey[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		picked = append(picked, field)
	}
	return picked
}

func fieldKeys(fields []responses.Field) []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}
