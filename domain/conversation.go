package domain

import (
	"sort"
	"strings"
	"time"
)

// EmptyConversationName labels a conversation whose only participant is the session user.
const EmptyConversationName = "Empty conversation"

// Conversation is a chat thread as listed in the roster.
type Conversation struct {
	ID           string
	Name         string
	Participants []string
	LastModified time.Time
}

// HasParticipant reports whether userID takes part in the conversation.
func (c Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// DisplayName returns the conversation name. Unnamed conversations are named
// after the other participants, sorted and joined with ", ".
func (c Conversation) DisplayName(selfID string, users Directory) string {
	if c.Name != "" {
		return c.Name
	}
	var names []string
	for _, id := range c.Participants {
		if id == selfID {
			continue
		}
		names = append(names, users.User(id).DisplayName())
	}
	if len(names) == 0 {
		return EmptyConversationName
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
