package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
)

// Values are CBOR encoded with Core Deterministic Encoding; unknown fields
// are ignored on decode so older binaries can read newer records.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("repositories: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("repositories: CBOR decoder initialization failed: " + err.Error())
	}
}

func encode(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

func decode(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

func getRecord(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return decode(val, v)
	})
}

func setRecord(txn *badger.Txn, key string, v any) error {
	data, err := encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}

// Open opens the badger database at path. Badger's own messages go to log;
// below ERROR they are only kept when debug is set.
func Open(path string, log *slog.Logger, debug bool) (*badger.DB, error) {
	floor := slog.LevelError
	if debug {
		floor = slog.LevelDebug
	}
	return badger.Open(badger.DefaultOptions(path).
		WithLogger(badgerLogger{log: log.With("component", "badger"), min: floor}))
}

// badgerLogger adapts slog to badger.Logger.
type badgerLogger struct {
	log *slog.Logger
	min slog.Level
}

func (l badgerLogger) logf(level slog.Level, format string, args ...any) {
	if level < l.min {
		return
	}
	l.log.Log(context.Background(), level, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Errorf(format string, args ...any)   { l.logf(slog.LevelError, format, args...) }
func (l badgerLogger) Warningf(format string, args ...any) { l.logf(slog.LevelWarn, format, args...) }
func (l badgerLogger) Infof(format string, args ...any)    { l.logf(slog.LevelInfo, format, args...) }
func (l badgerLogger) Debugf(format string, args ...any)   { l.logf(slog.LevelDebug, format, args...) }
