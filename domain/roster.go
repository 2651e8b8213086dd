package domain

import "sort"

// Directory resolves user identifiers to users.
type Directory interface {
	User(id string) User
}

// Roster is the initial state fetched when a session starts.
type Roster struct {
	Self          User
	Users         []User
	Conversations []Conversation
}

// User returns the user with the given identifier. Missing users come back
// with only their identifier set, which displays as UnknownName.
func (r Roster) User(id string) User {
	if r.Self.ID == id {
		return r.Self
	}
	for _, u := range r.Users {
		if u.ID == id {
			return u
		}
	}
	return User{ID: id}
}

// ConversationsByActivity returns the conversations sorted by descending
// last-modified time.
func (r Roster) ConversationsByActivity() []Conversation {
	conversations := make([]Conversation, len(r.Conversations))
	copy(conversations, r.Conversations)
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastModified.After(conversations[j].LastModified)
	})
	return conversations
}
