package repositories

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
)

// OpenReadOnly opens the store for inspection while another process may
// hold it.
func OpenReadOnly(path string, log *slog.Logger) (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(badgerLogger{log: log.With("component", "badger"), min: slog.LevelError}))
}

// Inspect decodes every entry whose key starts with prefix. Entries that
// cannot be decoded are reported in Detail rather than failing the scan.
func Inspect(db *badger.DB, prefix string) ([]database.InspectRow, error) {
	var rows []database.InspectRow
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			var row database.InspectRow
			err := item.Value(func(val []byte) error {
				row = ChatMapper(key, val)
				return nil
			})
			if err != nil {
				return err
			}
			rows = append(rows, row)
		}
		return nil
	})
	return rows, err
}

// ChatMapper decodes one store entry. Event keys share the
// "prefix:namespace:nanos:id" shape DefaultMapper parses, so the conversation
// lands in Namespace and the event id in EntityID.
func ChatMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	var err error
	switch {
	case strings.HasPrefix(key, userPrefix):
		var r userRecord
		if err = decode(val, &r); err == nil {
			row.Type = "USER"
			row.Timestamp = stamp(r.CreatedAt)
			row.EntityID = strings.TrimPrefix(key, userPrefix)
			row.Detail = fmt.Sprintf("%s <%s>", r.FullName, r.Email)
		}
	case strings.HasPrefix(key, accountPrefix):
		row.Type = "ACCOUNT"
		row.EntityID = string(val)
	case strings.HasPrefix(key, conversationPrefix):
		var r conversationRecord
		if err = decode(val, &r); err == nil {
			row.Type = "CONVERSATION"
			row.Timestamp = stamp(r.LastModified)
			row.EntityID = strings.TrimPrefix(key, conversationPrefix)
			row.Detail = fmt.Sprintf("%q %d participants", r.Name, len(r.Participants))
		}
	case strings.HasPrefix(key, eventPrefix):
		var r eventRecord
		if err = decode(val, &r); err == nil {
			row.Type = strings.ToUpper(r.Kind)
			row.Timestamp = stamp(r.At)
			row.Detail = r.Text
			if r.Attachment != nil {
				row.Detail = strings.TrimSpace(row.Detail + " +" + r.Attachment.Name)
			}
		}
	case key == signingKeyKey:
		row.Type = "META"
	}
	if err != nil {
		row.Type = "INVALID"
		row.Detail = "Error: " + err.Error()
	}
	return row
}

func stamp(nanos int64) string {
	return time.Unix(0, nanos).UTC().Format(time.RFC3339)
}
