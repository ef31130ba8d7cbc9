package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/werk-cli/werk/internal/models"
)

const projectBucket = "projects"

// BoltStore keeps each project as a JSON value in a BoltDB bucket keyed by
// project name.
type BoltStore struct {
	db   *bolt.DB
	path string
}

// openDB creates or opens a database and locks it.
func openDB(path string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		path,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrLocked.Fmt(path)
		}

		return nil, err
	}

	return db, nil
}

// newBoltReader opens an existing database read-only.
func newBoltReader(path string) (Store, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return emptyStore{}, nil
	}

	db, err := bolt.Open(
		path,
		0o600,
		&bolt.Options{Timeout: 1 * time.Second, ReadOnly: true},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrLocked.Fmt(path)
		}

		return nil, err
	}

	return &BoltStore{db: db, path: path}, nil
}

// NewBoltStore opens the BoltDB file at path and creates the projects bucket
// if it does not exist already.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(projectBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltStore{db: db, path: path}, nil
}

func (s *BoltStore) Load() (map[string]*models.Project, error) {
	projects := make(map[string]*models.Project)

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(projectBucket))
		if b == nil {
			return nil
		}

		return b.ForEach(func(k, v []byte) error {
			var p models.Project

			if err := json.Unmarshal(v, &p); err != nil {
				return ErrCorrupt.Fmt(s.path).Wrap(err)
			}

			projects[string(k)] = &p

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return normalize(projects), nil
}

// Save replaces the bucket content in a single transaction.
func (s *BoltStore) Save(projects map[string]*models.Project) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(projectBucket))
		if err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}

		b, err := tx.CreateBucket([]byte(projectBucket))
		if err != nil {
			return err
		}

		for name, p := range projects {
			value, err := json.Marshal(p)
			if err != nil {
				return err
			}

			if err := b.Put([]byte(name), value); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errWrite.Fmt(s.path).Wrap(err)
	}

	return nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
