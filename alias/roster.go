package alias

import (
	"sort"

	"chat-cli/domain"

	"github.com/samber/lo"
)

// ConversationEntries labels the roster conversations, most recently active
// first. That order is also the order they are saved in.
func ConversationEntries(roster domain.Roster) Entries {
	pairs := lo.Map(roster.ConversationsByActivity(), func(c domain.Conversation, _ int) Pair {
		return Pair{ID: c.ID, Name: c.DisplayName(roster.Self.ID, roster)}
	})
	return Disambiguate(pairs)
}

// UserEntries labels the roster users in name order, unknown users last and
// identifiers breaking ties.
func UserEntries(roster domain.Roster) Entries {
	users := roster.Users
	if roster.Self.ID != "" && !lo.ContainsBy(users, func(u domain.User) bool { return u.ID == roster.Self.ID }) {
		users = append([]domain.User{roster.Self}, users...)
	}
	pairs := lo.Map(users, func(u domain.User, _ int) Pair {
		return Pair{ID: u.ID, Name: u.DisplayName()}
	})
	sort.SliceStable(pairs, func(i, j int) bool {
		ki, kj := SortKey(Normalize(pairs[i].Name)), SortKey(Normalize(pairs[j].Name))
		if ki != kj {
			return ki < kj
		}
		return pairs[i].ID < pairs[j].ID
	})
	return Disambiguate(pairs)
}
