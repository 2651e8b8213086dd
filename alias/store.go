// Package alias keeps the local cache of conversation and user labels used to
// address the chat service from the command line.
//
// The cache is a flat text file with one "identifier : label" record per line.
// It is rebuilt from the roster after every run, so reads are best effort:
// a missing or damaged file is an empty cache.
package alias

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const separator = " : "

// Mapping maps labels to identifiers.
type Mapping map[string]string

// Lookup returns the identifier registered for label.
func (m Mapping) Lookup(label string) (string, bool) {
	id, ok := m[label]
	return id, ok
}

// Labels returns the labels in display order.
func (m Mapping) Labels() []string {
	entries := make(Entries, 0, len(m))
	for label, id := range m {
		entries = append(entries, Entry{ID: id, Label: label})
	}
	return Sorted(entries).LabelList()
}

// Parse reads "identifier : label" lines. Lines without a colon, or with an
// empty side, are skipped.
func Parse(r io.Reader) (Mapping, error) {
	mapping := Mapping{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		id := strings.TrimSpace(line[:idx])
		label := strings.TrimSpace(line[idx+1:])
		if id == "" || label == "" {
			continue
		}
		mapping[label] = id
	}
	return mapping, scanner.Err()
}

// Write emits one line per entry, in order. Nothing is written when an entry
// would not read back as itself.
func Write(w io.Writer, entries Entries) error {
	for _, e := range entries {
		if err := checkEntry(e); err != nil {
			return err
		}
	}
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s%s%s\n", e.ID, separator, Normalize(e.Label)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func checkEntry(e Entry) error {
	if e.ID == "" || strings.ContainsRune(e.ID, ':') || strings.IndexFunc(e.ID, separatorRune) >= 0 {
		return fmt.Errorf("alias identifier %q cannot be stored", e.ID)
	}
	if Normalize(e.Label) == "" {
		return fmt.Errorf("alias label for %s is empty", e.ID)
	}
	return nil
}

// Store is one cache file.
type Store struct {
	log  *slog.Logger
	path string
}

func NewStore(log *slog.Logger, path string) Store {
	return Store{log: log, path: path}
}

func (s Store) Path() string {
	return s.path
}

// Load reads the cache. Read failures are logged and yield what could be
// parsed, or an empty mapping.
func (s Store) Load() Mapping {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("Alias cache not found", "path", s.path)
		} else {
			s.log.Warn("Alias cache unreadable", "path", s.path, "error", err)
		}
		return Mapping{}
	}
	defer f.Close()

	mapping, err := Parse(f)
	if err != nil {
		s.log.Warn("Alias cache partially read", "path", s.path, "error", err)
	}
	s.log.Debug("Alias cache loaded", "path", s.path, "entries", len(mapping))
	return mapping
}

// Save overwrites the cache with entries. The write is not atomic.
func (s Store) Save(entries Entries) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create alias cache: %w", err)
	}
	if err = Write(f, entries); err != nil {
		_ = f.Close()
		return fmt.Errorf("write alias cache %s: %w", s.path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close alias cache %s: %w", s.path, err)
	}
	s.log.Debug("Alias cache saved", "path", s.path, "entries", len(entries))
	return nil
}
