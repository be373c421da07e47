package summary

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spboyer/assistant/internal/responses"
)

const (
	header    = "User Summary"
	separator = "============"

	// TimestampLayout is the save time as it appears in file names.
	TimestampLayout = "2006-01-02_15-04-05"

	// DefaultFileStem names the file when no name was collected.
	DefaultFileStem = "user"
)

// Format renders the saved-file content: a header, one "Key: value" line per
// entry in insertion order, and the rating.
func Format(rs *responses.Set, rating Rating) string {
	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(separator + "\n")
	for _, e := range rs.Entries() {
		fmt.Fprintf(&b, "%s: %s\n", Label(e.Key), e.Value)
	}
	fmt.Fprintf(&b, "Rating: %d/%d\n", rating, MaxRating)
	return b.String()
}

// Label is the capitalized form of a field key used in saved files.
func Label(key string) string {
	return cases.Title(language.Und).String(key)
}

// FileName returns "{name}_{timestamp}.txt" for a save at t (local time).
// Path separators in the name are replaced so the file stays in its
// directory.
func FileName(rs *responses.Set, t time.Time) string {
	stem := rs.GetOr(responses.KeyName, DefaultFileStem)
	stem = strings.NewReplacer("/", "-", `\`, "-").Replace(stem)
	return fmt.Sprintf("%s_%s.txt", stem, t.Local().Format(TimestampLayout))
}

// Persister writes summaries into a directory.
type Persister struct {
	dir string
	now func() time.Time
}

// NewPersister creates a Persister writing into dir.
func NewPersister(dir string) *Persister {
	return &Persister{dir: dir, now: time.Now}
}

// WithClock replaces the time source used for file names.
func (p *Persister) WithClock(now func() time.Time) *Persister {
	p.now = now
	return p
}

// Save writes rs and rating to a new file and returns its path. A file of the
// same name (same user, same second) is overwritten.
func (p *Persister) Save(rs *responses.Set, rating Rating) (string, error) {
	if p.dir != "" && p.dir != "." {
		if err := os.MkdirAll(p.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}

	path := filepath.Join(p.dir, FileName(rs, p.now()))
	if err := os.WriteFile(path, []byte(Format(rs, rating)), 0o644); err != nil {
		return "", fmt.Errorf("writing summary: %w", err)
	}

	slog.Debug("Saved summary", "path", path, "fields", rs.Len(), "rating", int(rating))
	return path, nil
}
