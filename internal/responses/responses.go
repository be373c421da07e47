// Package responses holds the answers collected during one pass through the
// question flow, along with the catalogue of questions that can be asked.
package responses

// Field keys.
const (
	KeyName   = "name"
	KeyAge    = "age"
	KeyColor  = "color"
	KeyFood   = "food"
	KeyCity   = "city"
	KeySchool = "school"
	KeyTeam   = "team"
)

// Field is a single question: the key its answer is stored under and the
// prompt shown to the user.
type Field struct {
	Key    string
	Prompt string
}

// Mandatory returns the fields asked on every pass, in the order they are asked.
func Mandatory() []Field {
	return []Field{
		{KeyName, "What is your name? "},
		{KeyAge, "How old are you? "},
	}
}

// OptionalPool returns the candidate fields a random subset is drawn from.
func OptionalPool() []Field {
	return []Field{
		{KeyColor, "What is your favorite color? "},
		{KeyFood, "What is your favorite food? "},
		{KeyCity, "Which city do you live in? "},
		{KeySchool, "Which SHS did you attend? "},
		{KeyTeam, "What is your favorite soccer team? "},
	}
}

// Entry is one key/value pair of a Set.
type Entry struct {
	Key   string
	Value string
}

// Set is an insertion-ordered mapping from field key to answer.
type Set struct {
	keys   []string
	values map[string]string
}

// New returns an empty Set.
func New() *Set {
	return &Set{values: make(map[string]string)}
}

// Put stores value under key. A key that is already present keeps its
// original position.
func (s *Set) Put(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (s *Set) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// GetOr returns the value stored under key, or fallback when the key is
// absent.
func (s *Set) GetOr(key, fallback string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return fallback
}

// Has reports whether key is present.
func (s *Set) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.keys)
}

// Keys returns the keys in insertion order.
func (s *Set) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Entries returns the key/value pairs in insertion order.
func (s *Set) Entries() []Entry {
	out := make([]Entry, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, Entry{Key: k, Value: s.values[k]})
	}
	return out
}
