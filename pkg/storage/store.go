// Package storage persists named application-state snapshots, so a demo or
// embedder can restore its bound data across runs.
package storage

import (
	"encoding/json"
	stderrors "errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/go-drift/bindings/pkg/errors"
)

var stateBucket = []byte("states")

// ErrNotFound is returned when no snapshot exists under the given name.
var ErrNotFound = stderrors.New("storage: state not found")

// Store is a bolt-backed snapshot store. Values are stored as JSON, so any
// data type the application binds can be persisted as long as it marshals.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, &errors.BindingsError{Op: "storage.Open", Kind: errors.KindStorage, Err: err, Path: path}
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, &errors.BindingsError{Op: "storage.Open", Kind: errors.KindStorage, Err: err, Path: path}
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveState stores value under name, replacing any previous snapshot.
func (s *Store) SaveState(name string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return &errors.BindingsError{Op: "storage.SaveState", Kind: errors.KindStorage, Err: err, Path: name}
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Put([]byte(name), encoded)
	})
	if err != nil {
		return &errors.BindingsError{Op: "storage.SaveState", Kind: errors.KindStorage, Err: err, Path: name}
	}
	return nil
}

// LoadState reads the snapshot stored under name into value.
func (s *Store) LoadState(name string, value any) error {
	var encoded []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(stateBucket).Get([]byte(name))
		if raw == nil {
			return ErrNotFound
		}
		encoded = append(encoded, raw...)
		return nil
	})
	if err != nil {
		if stderrors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return &errors.BindingsError{Op: "storage.LoadState", Kind: errors.KindStorage, Err: err, Path: name}
	}
	if err := json.Unmarshal(encoded, value); err != nil {
		return &errors.BindingsError{Op: "storage.LoadState", Kind: errors.KindStorage, Err: err, Path: name}
	}
	return nil
}

// Delete removes the snapshot stored under name. Deleting a missing name is
// not an error.
func (s *Store) Delete(name string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Delete([]byte(name))
	})
	if err != nil {
		return &errors.BindingsError{Op: "storage.Delete", Kind: errors.KindStorage, Err: err, Path: name}
	}
	return nil
}

// Names lists stored snapshot names in key order.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, &errors.BindingsError{Op: "storage.Names", Kind: errors.KindStorage, Err: err}
	}
	return names, nil
}
