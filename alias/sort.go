package alias

import (
	"sort"
	"strings"

	"chat-cli/domain"
)

// demoted sorts after any printable label.
const demoted = "\U0010FFFF"

// SortKey orders labels alphabetically, with labels of unknown users last.
// Only the key is prefixed, never the label.
func SortKey(label string) string {
	key := strings.ToLower(label)
	if strings.HasPrefix(label, domain.UnknownName) {
		return demoted + key
	}
	return key
}

// Sorted returns a copy of entries in display order.
func Sorted(entries Entries) Entries {
	sorted := make(Entries, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := SortKey(sorted[i].Label), SortKey(sorted[j].Label)
		if ki != kj {
			return ki < kj
		}
		return sorted[i].Label < sorted[j].Label
	})
	return sorted
}
