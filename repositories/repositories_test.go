package repositories

import (
	"log/slog"
	"testing"
	"time"

	"chat-cli/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) (*badger.DB, *slog.Logger) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelError)
	db, err := Open(t.TempDir(), log, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, log
}

func TestUserRepository(t *testing.T) {
	t.Run("should create and fetch a user by e-mail and id", func(t *testing.T) {
		req := require.New(t)
		db, log := setupDB(t)
		repo := NewUserRepository(db, log)

		// Given: a registered account
		id, err := repo.CreateUser(" Alice@Example.com ", "hash", "Alice Smith")
		req.NoError(err)

		// When: fetching it both ways
		byEmail, err := repo.GetUserByEmail("alice@example.com")
		req.NoError(err)
		byID, err := repo.GetUser(id)
		req.NoError(err)

		// Then: both views match
		req.Equal(id, byEmail.ID)
		req.Equal("alice@example.com", byEmail.Email)
		req.Equal("Alice Smith", byID.FullName)
		req.Equal("hash", byID.PasswordHash)
	})

	t.Run("should refuse a second account for the same e-mail", func(t *testing.T) {
		req := require.New(t)
		db, log := setupDB(t)
		repo := NewUserRepository(db, log)

		_, err := repo.CreateUser("bob@example.com", "hash", "Bob")
		req.NoError(err)
		_, err = repo.CreateUser("BOB@example.com", "other", "Bobby")
		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})

	t.Run("should report unknown users", func(t *testing.T) {
		req := require.New(t)
		db, log := setupDB(t)
		repo := NewUserRepository(db, log)

		_, err := repo.GetUser("missing")
		req.ErrorIs(err, errors.ErrUserNotFound)
		_, err = repo.GetUserByEmail("nobody@example.com")
		req.ErrorIs(err, errors.ErrUserNotFound)
	})

	t.Run("should list every user", func(t *testing.T) {
		req := require.New(t)
		db, log := setupDB(t)
		repo := NewUserRepository(db, log)

		_, err := repo.CreateUser("a@example.com", "h", "A")
		req.NoError(err)
		_, err = repo.CreateUser("b@example.com", "h", "B")
		req.NoError(err)

		users, err := repo.ListUsers()
		req.NoError(err)
		req.Len(users, 2)
		req.Less(users[0].ID, users[1].ID)
	})
}

func TestConversationRepository(t *testing.T) {
	t.Run("should list only conversations the user takes part in", func(t *testing.T) {
		req := require.New(t)
		db, log := setupDB(t)
		repo := NewConversationRepository(db, log)
		now := time.Now()

		mine, err := repo.CreateConversation("Team", []string{"u1", "u2", "u1"}, now)
		req.NoError(err)
		_, err = repo.CreateConversation("", []string{"u2", "u3"}, now)
		req.NoError(err)

		conversations, err := repo.ListConversations("u1")
		req.NoError(err)
		req.Len(conversations, 1)
		req.Equal(mine.ID, conversations[0].ID)
		req.Equal([]string{"u1", "u2"}, conversations[0].Participants)
	})

	t.Run("should update an existing conversation", func(t *testing.T) {
		req := require.New(t)
		db, log := setupDB(t)
		repo := NewConversationRepository(db, log)

		conversation, err := repo.CreateConversation("Old", []string{"u1"}, time.Now())
		req.NoError(err)
		conversation.Name = "New"
		conversation.LastModified = conversation.LastModified.Add(time.Minute)
		req.NoError(repo.UpdateConversation(conversation))

		fetched, err := repo.GetConversation(conversation.ID)
		req.NoError(err)
		req.Equal("New", fetched.Name)
		req.True(conversation.LastModified.Equal(fetched.LastModified))
	})

	t.Run("should not update a missing conversation", func(t *testing.T) {
		req := require.New(t)
		db, log := setupDB(t)
		repo := NewConversationRepository(db, log)

		err := repo.UpdateConversation(Conversation{ID: "missing"})
		req.ErrorIs(err, errors.ErrConversationNotFound)
		_, err = repo.GetConversation("missing")
		req.ErrorIs(err, errors.ErrConversationNotFound)
	})
}

func TestEventRepository(t *testing.T) {
	t.Run("should return the most recent events first, up to the limit", func(t *testing.T) {
		req := require.New(t)
		db, log := setupDB(t)
		repo := NewEventRepository(db, log)
		base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

		// Given: five messages in one conversation and one elsewhere
		for i := 0; i < 5; i++ {
			req.NoError(repo.StoreEvent(DiskEvent{
				Conversation: "c1",
				Kind:         EventMessage,
				Actor:        "u1",
				Text:         string(rune('a' + i)),
				At:           base.Add(time.Duration(i) * time.Minute),
			}))
		}
		req.NoError(repo.StoreEvent(DiskEvent{Conversation: "c2", Kind: EventMessage, Text: "x", At: base.Add(time.Hour)}))

		// When: fetching three of them
		events, err := repo.GetEvents("c1", 3)
		req.NoError(err)

		// Then: the newest three come back in reverse order
		req.Len(events, 3)
		req.Equal("e", events[0].Text)
		req.Equal("d", events[1].Text)
		req.Equal("c", events[2].Text)
		req.NotEqual(uuid.Nil, events[0].ID)
	})

	t.Run("should keep events of the same instant apart", func(t *testing.T) {
		req := require.New(t)
		db, log := setupDB(t)
		repo := NewEventRepository(db, log)
		at := time.Now()

		req.NoError(repo.StoreEvent(DiskEvent{Conversation: "c1", Kind: EventJoin, UserIDs: []string{"u2"}, At: at}))
		req.NoError(repo.StoreEvent(DiskEvent{Conversation: "c1", Kind: EventRename, Text: "Name", At: at}))

		events, err := repo.GetEvents("c1", 10)
		req.NoError(err)
		req.Len(events, 2)
	})

	t.Run("should round trip attachments", func(t *testing.T) {
		req := require.New(t)
		db, log := setupDB(t)
		repo := NewEventRepository(db, log)

		attachment := &DiskAttachment{Name: "report.pdf", MimeType: "application/pdf", Size: 2048}
		req.NoError(repo.StoreEvent(DiskEvent{Conversation: "c1", Kind: EventMessage, Attachment: attachment, At: time.Now()}))

		events, err := repo.GetEvents("c1", 1)
		req.NoError(err)
		req.Equal(attachment, events[0].Attachment)
	})

	t.Run("should return nothing for a non positive limit", func(t *testing.T) {
		req := require.New(t)
		db, log := setupDB(t)
		repo := NewEventRepository(db, log)
		req.NoError(repo.StoreEvent(DiskEvent{Conversation: "c1", Kind: EventMessage, At: time.Now()}))

		events, err := repo.GetEvents("c1", 0)
		req.NoError(err)
		req.Empty(events)
	})
}

func TestSigningKey(t *testing.T) {
	t.Run("should generate the key once and reuse it", func(t *testing.T) {
		req := require.New(t)
		db, _ := setupDB(t)
		calls := 0
		generate := func() ([]byte, error) {
			calls++
			return []byte("0123456789abcdef0123456789abcdef"), nil
		}

		first, err := SigningKey(db, generate)
		req.NoError(err)
		second, err := SigningKey(db, generate)
		req.NoError(err)

		req.Equal(first, second)
		req.Equal(1, calls)
	})
}

func TestInspect(t *testing.T) {
	t.Run("should describe every kind of entry", func(t *testing.T) {
		req := require.New(t)
		db, log := setupDB(t)
		users := NewUserRepository(db, log)
		conversations := NewConversationRepository(db, log)
		events := NewEventRepository(db, log)

		id, err := users.CreateUser("alice@example.com", "hash", "Alice Smith")
		req.NoError(err)
		conversation, err := conversations.CreateConversation("Team", []string{id}, time.Now())
		req.NoError(err)
		req.NoError(events.StoreEvent(DiskEvent{Conversation: conversation.ID, Kind: EventMessage, Text: "hello", At: time.Now()}))
		_, err = SigningKey(db, func() ([]byte, error) { return []byte("key"), nil })
		req.NoError(err)

		rows, err := Inspect(db, "")
		req.NoError(err)
		types := map[string]database.InspectRow{}
		for _, row := range rows {
			types[row.Type] = row
		}
		req.Equal("alice@example.com", types["ACCOUNT"].Key[len(accountPrefix):])
		req.Equal("Alice Smith <alice@example.com>", types["USER"].Detail)
		req.Equal(`"Team" 1 participants`, types["CONVERSATION"].Detail)
		req.Equal("hello", types["MESSAGE"].Detail)
		req.Equal(conversation.ID, types["MESSAGE"].Namespace)
		req.Equal(conversation.ID, types["CONVERSATION"].EntityID)
		req.Equal(id, types["ACCOUNT"].EntityID)
		req.Equal("Size: 3 bytes", types["META"].Detail)
	})

	t.Run("should flag entries that do not decode", func(t *testing.T) {
		req := require.New(t)
		db, _ := setupDB(t)
		req.NoError(db.Update(func(txn *badger.Txn) error {
			return txn.Set([]byte("user:broken"), []byte{0xff, 0x00})
		}))

		rows, err := Inspect(db, userPrefix)
		req.NoError(err)
		req.Len(rows, 1)
		req.Equal("INVALID", rows[0].Type)
	})
}
