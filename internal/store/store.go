// Package store is the durable keyed store for accounts and journal
// entries. The core packages never import it: they work on snapshots
// the store hands out.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

// ErrNotFound is returned when a record is not in the store.
var ErrNotFound = errors.New("record not found")

// Bucket names.
const (
	bucketAccounts = "accounts"
	bucketEntries  = "entries"
)

// Store wraps a bbolt database with accounts and entries buckets.
// Values are JSON keyed by id.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database file and initializes buckets.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{bucketAccounts, bucketEntries} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("creating bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutAccount stores an account keyed by its id.
func (s *Store) PutAccount(a model.Account) error {
	return s.put(bucketAccounts, a.ID, a)
}

// GetAccount retrieves an account by id.
func (s *Store) GetAccount(id string) (model.Account, error) {
	var a model.Account
	err := s.get(bucketAccounts, id, &a)
	return a, err
}

// DeleteAccount removes an account by id.
func (s *Store) DeleteAccount(id string) error {
	return s.delete(bucketAccounts, id)
}

// Accounts returns all stored accounts in key order.
func (s *Store) Accounts() ([]model.Account, error) {
	var accounts []model.Account
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketAccounts)).ForEach(func(_, v []byte) error {
			var a model.Account
			if err := json.Unmarshal(v, &a); err != nil {
				return fmt.Errorf("decoding account: %w", err)
			}
			accounts = append(accounts, a)
			return nil
		})
	})
	return accounts, err
}

// AccountByCode scans for the account with the given (unique) code.
func (s *Store) AccountByCode(code string) (model.Account, error) {
	accounts, err := s.Accounts()
	if err != nil {
		return model.Account{}, err
	}
	for _, a := range accounts {
		if a.Code == code {
			return a, nil
		}
	}
	return model.Account{}, fmt.Errorf("code %q: %w", code, ErrNotFound)
}

// ChildrenOf returns the accounts whose ParentID is the given id.
func (s *Store) ChildrenOf(parentID string) ([]model.Account, error) {
	accounts, err := s.Accounts()
	if err != nil {
		return nil, err
	}
	var children []model.Account
	for _, a := range accounts {
		if a.ParentID == parentID && parentID != "" {
			children = append(children, a)
		}
	}
	return children, nil
}

// PutEntry stores a journal entry keyed by its id.
func (s *Store) PutEntry(e model.JournalEntry) error {
	return s.put(bucketEntries, e.ID, e)
}

// GetEntry retrieves a journal entry by id.
func (s *Store) GetEntry(id string) (model.JournalEntry, error) {
	var e model.JournalEntry
	err := s.get(bucketEntries, id, &e)
	return e, err
}

// DeleteEntry removes a journal entry by id.
func (s *Store) DeleteEntry(id string) error {
	return s.delete(bucketEntries, id)
}

// Entries returns all stored journal entries in key order.
func (s *Store) Entries() ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketEntries)).ForEach(func(_, v []byte) error {
			var e model.JournalEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("decoding entry: %w", err)
			}
			entries = append(entries, e)
			return nil
		})
	})
	return entries, err
}

func (s *Store) put(bucket, key string, value any) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding value: %w", err)
		}
		return tx.Bucket([]byte(bucket)).Put([]byte(key), data)
	})
}

func (s *Store) get(bucket, key string, value any) error {
	return s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucket)).Get([]byte(key))
		if data == nil {
			return fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return json.Unmarshal(data, value)
	})
}

func (s *Store) delete(bucket, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Delete([]byte(key))
	})
}
