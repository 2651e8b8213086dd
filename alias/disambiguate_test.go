package alias

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisambiguate(t *testing.T) {
	t.Run("should suffix collisions in first-seen order", func(t *testing.T) {
		req := require.New(t)
		entries := Disambiguate([]Pair{
			{ID: "a", Name: "My Friend"},
			{ID: "b", Name: "My Friend"},
			{ID: "c", Name: "My Friend"},
		})
		req.Equal(Entries{
			{ID: "a", Label: "My_Friend"},
			{ID: "b", Label: "My_Friend_1"},
			{ID: "c", Label: "My_Friend_2"},
		}, entries)
	})

	t.Run("should skip suffixes already used as names", func(t *testing.T) {
		req := require.New(t)
		entries := Disambiguate([]Pair{
			{ID: "a", Name: "Bob_1"},
			{ID: "b", Name: "Bob"},
			{ID: "c", Name: "Bob"},
		})
		req.Equal([]string{"Bob_1", "Bob", "Bob_2"}, entries.LabelList())
	})

	t.Run("should keep the first label of a repeated identifier", func(t *testing.T) {
		req := require.New(t)
		entries := Disambiguate([]Pair{
			{ID: "a", Name: "Ann"},
			{ID: "a", Name: "Ann"},
		})
		req.Equal(Entries{{ID: "a", Label: "Ann"}}, entries)
	})

	t.Run("should produce pairwise distinct labels", func(t *testing.T) {
		req := require.New(t)
		var pairs []Pair
		for i := 0; i < 40; i++ {
			pairs = append(pairs, Pair{ID: fmt.Sprintf("id-%d", i), Name: []string{"Ann", "Ann 1", "Ann_1", "Bob"}[i%4]})
		}
		entries := Disambiguate(pairs)
		req.Len(entries, len(pairs))
		labels := map[string]bool{}
		for _, e := range entries {
			req.False(labels[e.Label], "duplicate label %s", e.Label)
			labels[e.Label] = true
		}
	})

	t.Run("should be idempotent for the same input order", func(t *testing.T) {
		req := require.New(t)
		pairs := []Pair{{"x", "Team"}, {"y", "Team"}, {"z", "Other team"}, {"w", "Team"}}
		req.Equal(Disambiguate(pairs), Disambiguate(pairs))
	})
}

func TestNormalize(t *testing.T) {
	req := require.New(t)
	req.Equal("Jane_van_Dam", Normalize(" Jane van Dam "))
	req.Equal("a_b_c", Normalize("a\n\tb  \x1bc"))
	req.Equal("", Normalize(" \t\n"))
}

func TestDisambiguate_BlankName(t *testing.T) {
	entries := Disambiguate([]Pair{{ID: "c1", Name: "\n\t"}, {ID: "c2", Name: " "}})
	require.Equal(t, Entries{{ID: "c1", Label: "Unknown"}, {ID: "c2", Label: "Unknown_1"}}, entries)
}
