package summary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spboyer/assistant/internal/responses"
)

// ErrMalformed is wrapped by every Parse error caused by file content.
var ErrMalformed = errors.New("malformed summary file")

// ParseFile reads a saved summary from path.
func ParseFile(path string) (*responses.Set, Rating, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening summary: %w", err)
	}
	defer f.Close() //nolint:errcheck

	return Parse(f)
}

// Parse reads content written by Format. Keys are returned lower-cased.
func Parse(r io.Reader) (*responses.Set, Rating, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading summary: %w", err)
	}

	if len(lines) < 3 || lines[0] != header || lines[1] != separator {
		return nil, 0, fmt.Errorf("%w: missing header", ErrMalformed)
	}

	body := lines[2:]
	rating, err := parseRatingLine(body[len(body)-1])
	if err != nil {
		return nil, 0, err
	}

	set := responses.New()
	for i, line := range body[:len(body)-1] {
		key, value, ok := strings.Cut(line, ": ")
		if !ok || key == "" {
			return nil, 0, fmt.Errorf("%w: line %d: %q", ErrMalformed, i+3, line)
		}
		set.Put(strings.ToLower(key), value)
	}
	return set, rating, nil
}

func parseRatingLine(line string) (Rating, error) {
	rest, ok := strings.CutPrefix(line, "Rating: ")
	if !ok {
		return 0, fmt.Errorf("%w: missing rating line", ErrMalformed)
	}
	num, ok := strings.CutSuffix(rest, fmt.Sprintf("/%d", MaxRating))
	if !ok {
		return 0, fmt.Errorf("%w: rating %q", ErrMalformed, rest)
	}
	n, err := strconv.Atoi(num)
	if err != nil || !Rating(n).Valid() {
		return 0, fmt.Errorf("%w: rating %q", ErrMalformed, rest)
	}
	return Rating(n), nil
}
