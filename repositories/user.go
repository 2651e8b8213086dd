//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"chat-cli/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	accountPrefix = "account:"
	userPrefix    = "user:"
)

type IUserRepository interface {
	CreateUser(email, hashedPassword, fullName string) (string, error)
	GetUserByEmail(email string) (User, error)
	GetUser(id string) (User, error)
	ListUsers() ([]User, error)
}

type UserRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUserRepository(db *badger.DB, log *slog.Logger) UserRepository {
	return UserRepository{db: db, log: log}
}

// User is the repository view of an account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}

type userRecord struct {
	ID           string `cbor:"id"`
	Email        string `cbor:"email"`
	PasswordHash string `cbor:"password_hash"`
	FullName     string `cbor:"full_name,omitempty"`
	CreatedAt    int64  `cbor:"created_at"`
}

// CreateUser stores a new account and returns its identifier. The e-mail is
// the login and must be unused.
func (u UserRepository) CreateUser(email, hashedPassword, fullName string) (string, error) {
	email = normalizeEmail(email)
	id := uuid.NewString()
	record := userRecord{
		ID:           id,
		Email:        email,
		PasswordHash: hashedPassword,
		FullName:     strings.TrimSpace(fullName),
		CreatedAt:    time.Now().UnixNano(),
	}
	err := u.db.Update(func(txn *badger.Txn) error {
		accountKey := []byte(accountPrefix + email)
		if _, err := txn.Get(accountKey); err == nil {
			return errors.ErrUserAlreadyExists
		} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(accountKey, []byte(id)); err != nil {
			return err
		}
		return setRecord(txn, userPrefix+id, record)
	})
	if err != nil {
		return "", err
	}
	u.log.Debug("User created", "user", id)
	return id, nil
}

func (u UserRepository) GetUserByEmail(email string) (User, error) {
	var record userRecord
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(accountPrefix + normalizeEmail(email)))
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return getRecord(txn, userPrefix+string(id), &record)
	})
	if err != nil {
		return User{}, notFound(err, errors.ErrUserNotFound)
	}
	return toUser(record), nil
}

func (u UserRepository) GetUser(id string) (User, error) {
	var record userRecord
	err := u.db.View(func(txn *badger.Txn) error {
		return getRecord(txn, userPrefix+id, &record)
	})
	if err != nil {
		return User{}, notFound(err, errors.ErrUserNotFound)
	}
	return toUser(record), nil
}

// ListUsers returns every account, ordered by identifier.
func (u UserRepository) ListUsers() ([]User, error) {
	var users []User
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte(userPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record userRecord
			if err := it.Item().Value(func(val []byte) error {
				return decode(val, &record)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			users = append(users, toUser(record))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func toUser(record userRecord) User {
	return User{
		ID:           record.ID,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		FullName:     record.FullName,
		CreatedAt:    time.Unix(0, record.CreatedAt).UTC(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// notFound maps badger.ErrKeyNotFound to sentinel.
func notFound(err, sentinel error) error {
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return sentinel
	}
	return err
}
