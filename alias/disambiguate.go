package alias

import (
	"fmt"
	"strings"
	"unicode"

	"chat-cli/domain"
)

// Entry binds a unique label to an opaque identifier.
type Entry struct {
	ID    string
	Label string
}

type Entries []Entry

// ByID returns the identifier to label mapping.
func (e Entries) ByID() map[string]string {
	byID := make(map[string]string, len(e))
	for _, entry := range e {
		byID[entry.ID] = entry.Label
	}
	return byID
}

// Mapping returns the label to identifier mapping.
func (e Entries) Mapping() Mapping {
	mapping := make(Mapping, len(e))
	for _, entry := range e {
		mapping[entry.Label] = entry.ID
	}
	return mapping
}

func (e Entries) LabelList() []string {
	labels := make([]string, len(e))
	for i, entry := range e {
		labels[i] = entry.Label
	}
	return labels
}

// Pair is an identifier with its raw display name.
type Pair struct {
	ID   string
	Name string
}

// Normalize makes a display name usable as a single command-line word.
// Every run of whitespace or control characters becomes one underscore, so a
// label never spans lines of the cache file.
func Normalize(name string) string {
	return strings.Join(strings.FieldsFunc(name, separatorRune), "_")
}

func separatorRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

// Disambiguate assigns every identifier a unique label, in input order.
// A label already held by another identifier gets the first free "_N" suffix.
// The assignment is greedy: the same input order always gives the same
// labels, a different order may not.
func Disambiguate(pairs []Pair) Entries {
	owners := make(map[string]string, len(pairs))
	seen := make(map[string]bool, len(pairs))
	entries := make(Entries, 0, len(pairs))
	for _, p := range pairs {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true

		base := Normalize(p.Name)
		if base == "" {
			base = domain.UnknownName
		}
		label := base
		for n := 1; ; n++ {
			owner, taken := owners[label]
			if !taken || owner == p.ID {
				break
			}
			label = fmt.Sprintf("%s_%d", base, n)
		}
		owners[label] = p.ID
		entries = append(entries, Entry{ID: p.ID, Label: label})
	}
	return entries
}
