package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const eventPrefix = "evt:"

type EventKind string

const (
	EventMessage EventKind = "message"
	EventRename  EventKind = "rename"
	EventJoin    EventKind = "join"
	EventLeave   EventKind = "leave"
)

type IEventRepository interface {
	StoreEvent(event DiskEvent) error
	GetEvents(conversationID string, limit int) ([]DiskEvent, error)
}

type EventRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewEventRepository(db *badger.DB, log *slog.Logger) EventRepository {
	return EventRepository{db: db, log: log}
}

// DiskEvent is the stored form of every conversation event. Which fields are
// set depends on Kind.
type DiskEvent struct {
	ID           uuid.UUID
	Conversation string
	Kind         EventKind
	Actor        string
	Text         string
	UserIDs      []string
	Attachment   *DiskAttachment
	At           time.Time
}

type DiskAttachment struct {
	Name     string `cbor:"name"`
	MimeType string `cbor:"mime_type"`
	Size     int64  `cbor:"size"`
}

type eventRecord struct {
	ID           string          `cbor:"id"`
	Conversation string          `cbor:"conversation"`
	Kind         string          `cbor:"kind"`
	Actor        string          `cbor:"actor,omitempty"`
	Text         string          `cbor:"text,omitempty"`
	UserIDs      []string        `cbor:"user_ids,omitempty"`
	Attachment   *DiskAttachment `cbor:"attachment,omitempty"`
	At           int64           `cbor:"at"`
}

// StoreEvent persists an event under "evt:{conversation}:{timestamp}:{uuid}".
// The timestamp is zero padded to 19 digits so keys sort chronologically and
// the uuid keeps two events of the same nanosecond apart.
func (e EventRepository) StoreEvent(event DiskEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	key := fmt.Sprintf("%s%s:%019d:%s", eventPrefix, event.Conversation, event.At.UnixNano(), event.ID)
	return e.db.Update(func(txn *badger.Txn) error {
		return setRecord(txn, key, fromDiskEvent(event))
	})
}

// GetEvents returns at most limit events of a conversation, most recent
// first. A limit below 1 returns nothing.
func (e EventRepository) GetEvents(conversationID string, limit int) ([]DiskEvent, error) {
	var events []DiskEvent
	if limit < 1 {
		return events, nil
	}
	err := e.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("%s%s:", eventPrefix, conversationID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Past every padded timestamp, so the reverse scan starts at the newest.
		seekKey := append(append([]byte{}, prefix...), '~')
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if len(events) == limit {
				e.log.Debug(fmt.Sprintf("Maximum of %d events reached", limit))
				break
			}
			var record eventRecord
			if err := it.Item().Value(func(val []byte) error {
				return decode(val, &record)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			event, err := toDiskEvent(record)
			if err != nil {
				return err
			}
			events = append(events, event)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func fromDiskEvent(event DiskEvent) eventRecord {
	return eventRecord{
		ID:           event.ID.String(),
		Conversation: event.Conversation,
		Kind:         string(event.Kind),
		Actor:        event.Actor,
		Text:         event.Text,
		UserIDs:      event.UserIDs,
		Attachment:   event.Attachment,
		At:           event.At.UnixNano(),
	}
}

func toDiskEvent(record eventRecord) (DiskEvent, error) {
	parsedID, err := uuid.Parse(record.ID)
	if err != nil {
		return DiskEvent{}, err
	}
	return DiskEvent{
		ID:           parsedID,
		Conversation: record.Conversation,
		Kind:         EventKind(record.Kind),
		Actor:        record.Actor,
		Text:         record.Text,
		UserIDs:      record.UserIDs,
		Attachment:   record.Attachment,
		At:           time.Unix(0, record.At).UTC(),
	}, nil
}
