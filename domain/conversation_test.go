package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConversation_DisplayName(t *testing.T) {
	roster := Roster{
		Self: User{ID: "me", FullName: "Jules Doe", FirstName: "Jules"},
		Users: []User{
			{ID: "u1", FullName: "Zoe Martin", FirstName: "Zoe"},
			{ID: "u2", FullName: "Adam Smith", FirstName: "Adam"},
		},
	}

	t.Run("should prefer the conversation name", func(t *testing.T) {
		conv := Conversation{ID: "c1", Name: "Team", Participants: []string{"me", "u1"}}
		require.Equal(t, "Team", conv.DisplayName("me", roster))
	})

	t.Run("should name unnamed conversations after the other participants", func(t *testing.T) {
		conv := Conversation{ID: "c1", Participants: []string{"me", "u1", "u2"}}
		require.Equal(t, "Adam Smith, Zoe Martin", conv.DisplayName("me", roster))
	})

	t.Run("should label a conversation with only the session user", func(t *testing.T) {
		conv := Conversation{ID: "c1", Participants: []string{"me"}}
		require.Equal(t, EmptyConversationName, conv.DisplayName("me", roster))
	})

	t.Run("should show missing users as unknown", func(t *testing.T) {
		conv := Conversation{ID: "c1", Participants: []string{"me", "ghost"}}
		require.Equal(t, UnknownName, conv.DisplayName("me", roster))
	})
}

func TestRoster_ConversationsByActivity(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	roster := Roster{Conversations: []Conversation{
		{ID: "old", LastModified: now.Add(-time.Hour)},
		{ID: "new", LastModified: now},
		{ID: "mid", LastModified: now.Add(-time.Minute)},
	}}

	sorted := roster.ConversationsByActivity()

	req.Equal("new", sorted[0].ID)
	req.Equal("mid", sorted[1].ID)
	req.Equal("old", sorted[2].ID)
	req.Equal("old", roster.Conversations[0].ID)
}

func TestUser_ShortName(t *testing.T) {
	req := require.New(t)
	req.Equal("Ann", User{FirstName: "Ann", FullName: "Ann Lee"}.ShortName())
	req.Equal("Bob", User{FullName: "Bob Ray"}.ShortName())
	req.Equal(UnknownName, User{}.ShortName())
	req.Equal(UnknownName, User{FullName: "  "}.DisplayName())
}
