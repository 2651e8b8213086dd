package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"chat-cli/alias"
	"chat-cli/domain"
	"chat-cli/errors"

	"github.com/stretchr/testify/require"
)

func testAliases() Aliases {
	return Aliases{
		Conversations: alias.Mapping{"Team": "conv-1", "Family": "conv-2"},
		Users:         alias.Mapping{"Ann_Lee": "user-1", "Bob": "user-2"},
	}
}

func TestResolve_List(t *testing.T) {
	req := require.New(t)
	cmd, err := Resolve(Args{}, testAliases())
	req.NoError(err)
	req.Equal(domain.ListAllCommand{}, cmd)
}

func TestResolve_Get(t *testing.T) {
	t.Run("should translate the alias", func(t *testing.T) {
		req := require.New(t)
		cmd, err := Resolve(Args{Command: CommandGet, Conversation: "Team", Count: domain.DefaultEventCount}, testAliases())
		req.NoError(err)
		req.Equal(domain.GetCommand{ConversationAlias: "Team", ConversationID: "conv-1", MaxEvents: 50}, cmd)
	})

	t.Run("should keep an explicit count", func(t *testing.T) {
		req := require.New(t)
		cmd, err := Resolve(Args{Command: CommandGet, Conversation: "Family", Count: 7}, testAliases())
		req.NoError(err)
		req.Equal(7, cmd.(domain.GetCommand).MaxEvents)
	})

	t.Run("should require a conversation", func(t *testing.T) {
		req := require.New(t)
		_, err := Resolve(Args{Command: CommandGet, Count: 5}, testAliases())
		req.ErrorIs(err, errors.ErrMissingConversation)
		req.ErrorIs(err, errors.ErrUsage)
	})

	t.Run("should reject an unknown alias", func(t *testing.T) {
		req := require.New(t)
		_, err := Resolve(Args{Command: CommandGet, Conversation: "Nope", Count: 5}, testAliases())
		req.ErrorIs(err, errors.ErrUnknownConversation)
	})

	t.Run("should reject a count below one", func(t *testing.T) {
		req := require.New(t)
		for _, count := range []int{-3, 0} {
			_, err := Resolve(Args{Command: CommandGet, Conversation: "Team", Count: count}, testAliases())
			req.ErrorIs(err, errors.ErrInvalidArguments, count)
			req.ErrorIs(err, errors.ErrUsage, count)
		}
	})
}

func TestResolve_Send(t *testing.T) {
	t.Run("should fail without any target", func(t *testing.T) {
		req := require.New(t)
		_, err := Resolve(Args{Command: CommandSend, Message: "hi"}, testAliases())
		req.ErrorIs(err, errors.ErrNoTarget)
		req.ErrorIs(err, errors.ErrUsage)
	})

	t.Run("should fail with several targets", func(t *testing.T) {
		combinations := []Args{
			{Command: CommandSend, Message: "hi", Conversation: "Team", User: "Bob"},
			{Command: CommandSend, Message: "hi", Conversation: "Team", Number: "+33600000000"},
			{Command: CommandSend, Message: "hi", User: "Bob", Number: "+33600000000"},
			{Command: CommandSend, Message: "hi", Conversation: "Team", User: "Bob", Number: "+33600000000"},
		}
		for _, args := range combinations {
			_, err := Resolve(args, testAliases())
			require.ErrorIs(t, err, errors.ErrAmbiguousTarget)
		}
	})

	t.Run("should resolve a conversation target", func(t *testing.T) {
		req := require.New(t)
		cmd, err := Resolve(Args{Command: CommandSend, Conversation: "Team", Message: "hello"}, testAliases())
		req.NoError(err)
		req.Equal(domain.SendCommand{
			Target:  domain.ConversationTarget{Alias: "Team", ConversationID: "conv-1"},
			Message: "hello",
		}, cmd)
	})

	t.Run("should resolve a user target", func(t *testing.T) {
		req := require.New(t)
		cmd, err := Resolve(Args{Command: CommandSend, User: "Bob", Message: "hello"}, testAliases())
		req.NoError(err)
		req.Equal(domain.UserTarget{Alias: "Bob", UserID: "user-2"}, cmd.(domain.SendCommand).Target)
	})

	t.Run("should keep a number as typed", func(t *testing.T) {
		req := require.New(t)
		cmd, err := Resolve(Args{Command: CommandSend, Number: "+1 555 0100", Message: "hello"}, testAliases())
		req.NoError(err)
		req.Equal(domain.NumberTarget{Raw: "+1 555 0100"}, cmd.(domain.SendCommand).Target)
	})

	t.Run("should reject an unknown user", func(t *testing.T) {
		req := require.New(t)
		_, err := Resolve(Args{Command: CommandSend, User: "Carol", Message: "hello"}, testAliases())
		req.ErrorIs(err, errors.ErrUnknownUser)
	})

	t.Run("should require a message", func(t *testing.T) {
		req := require.New(t)
		_, err := Resolve(Args{Command: CommandSend, Conversation: "Team"}, testAliases())
		req.ErrorIs(err, errors.ErrInvalidArguments)
	})

	t.Run("should describe an attachment", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "notes.txt")
		req.NoError(os.WriteFile(path, []byte("plain text content\n"), 0o600))

		cmd, err := Resolve(Args{Command: CommandSend, Conversation: "Team", Message: "see file", Attachment: path}, testAliases())
		req.NoError(err)
		attachment := cmd.(domain.SendCommand).Attachment
		req.NotNil(attachment)
		req.Equal("notes.txt", attachment.Name)
		req.Equal(int64(19), attachment.Size)
		req.Contains(attachment.MimeType, "text/plain")
	})

	t.Run("should reject a missing attachment", func(t *testing.T) {
		req := require.New(t)
		_, err := Resolve(Args{Command: CommandSend, Conversation: "Team", Message: "x", Attachment: "/does/not/exist"}, testAliases())
		req.ErrorIs(err, errors.ErrInvalidAttachment)
	})
}

func TestResolve_Create(t *testing.T) {
	t.Run("should translate every user alias once", func(t *testing.T) {
		req := require.New(t)
		cmd, err := Resolve(Args{Command: CommandCreate, Title: " Weekend ", Users: []string{"Bob", "Ann_Lee", "Bob"}}, testAliases())
		req.NoError(err)
		req.Equal(domain.CreateCommand{Title: "Weekend", UserIDs: []string{"user-2", "user-1"}}, cmd)
	})

	t.Run("should require users", func(t *testing.T) {
		req := require.New(t)
		_, err := Resolve(Args{Command: CommandCreate, Title: "Solo"}, testAliases())
		req.ErrorIs(err, errors.ErrInvalidArguments)
	})
}

func TestResolve_RenameAndLeave(t *testing.T) {
	req := require.New(t)

	cmd, err := Resolve(Args{Command: CommandRename, Conversation: "Team", Title: "Core team"}, testAliases())
	req.NoError(err)
	req.Equal(domain.RenameCommand{ConversationAlias: "Team", ConversationID: "conv-1", NewName: "Core team"}, cmd)

	cmd, err = Resolve(Args{Command: CommandLeave, Conversation: "Family"}, testAliases())
	req.NoError(err)
	req.Equal(domain.LeaveCommand{ConversationAlias: "Family", ConversationID: "conv-2"}, cmd)

	_, err = Resolve(Args{Command: "explode"}, testAliases())
	req.ErrorIs(err, errors.ErrUsage)
}
