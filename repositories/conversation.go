package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"chat-cli/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const conversationPrefix = "conv:"

type IConversationRepository interface {
	CreateConversation(name string, participants []string, at time.Time) (Conversation, error)
	GetConversation(id string) (Conversation, error)
	ListConversations(userID string) ([]Conversation, error)
	UpdateConversation(conversation Conversation) error
}

type ConversationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConversationRepository(db *badger.DB, log *slog.Logger) ConversationRepository {
	return ConversationRepository{db: db, log: log}
}

type Conversation struct {
	ID           string
	Name         string
	Participants []string
	LastModified time.Time
}

type conversationRecord struct {
	ID           string   `cbor:"id"`
	Name         string   `cbor:"name,omitempty"`
	Participants []string `cbor:"participants"`
	LastModified int64    `cbor:"last_modified"`
}

func (c ConversationRepository) CreateConversation(name string, participants []string, at time.Time) (Conversation, error) {
	conversation := Conversation{
		ID:           uuid.NewString(),
		Name:         name,
		Participants: lo.Uniq(participants),
		LastModified: at.UTC(),
	}
	err := c.db.Update(func(txn *badger.Txn) error {
		return setRecord(txn, conversationPrefix+conversation.ID, fromConversation(conversation))
	})
	if err != nil {
		return Conversation{}, err
	}
	c.log.Debug("Conversation created", "conversation", conversation.ID, "participants", len(conversation.Participants))
	return conversation, nil
}

func (c ConversationRepository) GetConversation(id string) (Conversation, error) {
	var record conversationRecord
	err := c.db.View(func(txn *badger.Txn) error {
		return getRecord(txn, conversationPrefix+id, &record)
	})
	if err != nil {
		return Conversation{}, notFound(err, errors.ErrConversationNotFound)
	}
	return toConversation(record), nil
}

// ListConversations returns the conversations userID takes part in.
func (c ConversationRepository) ListConversations(userID string) ([]Conversation, error) {
	var conversations []Conversation
	err := c.db.View(func(txn *badger.Txn) error {
		prefix := []byte(conversationPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record conversationRecord
			if err := it.Item().Value(func(val []byte) error {
				return decode(val, &record)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			if lo.Contains(record.Participants, userID) {
				conversations = append(conversations, toConversation(record))
			}
		}
		return nil
	})
	return conversations, err
}

// UpdateConversation overwrites an existing conversation.
func (c ConversationRepository) UpdateConversation(conversation Conversation) error {
	return c.db.Update(func(txn *badger.Txn) error {
		key := conversationPrefix + conversation.ID
		if _, err := txn.Get([]byte(key)); err != nil {
			return notFound(err, errors.ErrConversationNotFound)
		}
		return setRecord(txn, key, fromConversation(conversation))
	})
}

func fromConversation(c Conversation) conversationRecord {
	return conversationRecord{
		ID:           c.ID,
		Name:         c.Name,
		Participants: c.Participants,
		LastModified: c.LastModified.UnixNano(),
	}
}

func toConversation(r conversationRecord) Conversation {
	return Conversation{
		ID:           r.ID,
		Name:         r.Name,
		Participants: r.Participants,
		LastModified: time.Unix(0, r.LastModified).UTC(),
	}
}
