package repositories

import (
	stderrors "errors"

	"github.com/dgraph-io/badger/v4"
)

const signingKeyKey = "meta:signing-key"

// SigningKey returns the store's token signing key, creating it with
// generate on first use.
func SigningKey(db *badger.DB, generate func() ([]byte, error)) ([]byte, error) {
	var key []byte
	err := db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(signingKeyKey))
		if err == nil {
			key, err = item.ValueCopy(nil)
			return err
		}
		if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if key, err = generate(); err != nil {
			return err
		}
		return txn.Set([]byte(signingKeyKey), key)
	})
	return key, err
}
