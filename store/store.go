// Package store persists the tracked projects. A single JSON document is the
// default backend; bbolt and SQLite databases are also supported.
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/werk-cli/werk/internal/models"
	"github.com/werk-cli/werk/internal/osutil"
)

// Supported backends.
const (
	BackendJSON   = "json"
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// Store is the project storage interface.
type Store interface {
	// Load returns every saved project keyed by name. A store that has never
	// been written to yields an empty map.
	Load() (map[string]*models.Project, error)
	// Save replaces the stored projects with the given map
	Save(projects map[string]*models.Project) error
	// Close releases the store and any lock held on it
	Close() error
}

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendJSON, BackendBolt, BackendSQLite}
}

// DefaultFileName returns the file name used by a backend when no explicit
// path is configured.
func DefaultFileName(backend string) string {
	switch backend {
	case BackendBolt:
		return "werk.db"
	case BackendSQLite:
		return "werk.sqlite"
	default:
		return "time_tracker_data.json"
	}
}

// lockedStore ties a backend to the advisory lock guarding its path.
type lockedStore struct {
	Store
	lock *os.File
}

func (l *lockedStore) Close() error {
	err := l.Store.Close()

	return errors.Join(err, unlock(l.lock))
}

// Open locks path and opens the requested backend on it. The lock is held
// until Close is called, so a second process opening the same path gets
// ErrLocked.
func Open(backend, path string) (Store, error) {
	if backend == "" {
		backend = BackendJSON
	}

	var open func(string) (Store, error)

	switch backend {
	case BackendJSON:
		open = func(p string) (Store, error) { return NewFileStore(p), nil }
	case BackendBolt:
		open = func(p string) (Store, error) { return NewBoltStore(p) }
	case BackendSQLite:
		open = func(p string) (Store, error) { return NewSQLStore(p) }
	default:
		return nil, errUnknownBackend.Fmt(backend)
	}

	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	lock, err := acquire(path)
	if err != nil {
		return nil, err
	}

	s, err := open(path)
	if err != nil {
		_ = unlock(lock)
		return nil, err
	}

	return &lockedStore{Store: s, lock: lock}, nil
}

// OpenReader opens the backend without taking the advisory lock so that
// reports can be read while a timer is running. A bolt database that is held
// by a timer still fails with ErrLocked. Save on the returned store fails.
func OpenReader(backend, path string) (Store, error) {
	var (
		s   Store
		err error
	)

	switch backend {
	case "", BackendJSON:
		s = NewFileStore(path)
	case BackendBolt:
		s, err = newBoltReader(path)
	case BackendSQLite:
		if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
			return readOnly{Store: emptyStore{}}, nil
		}

		s, err = newSQLReader(path)
	default:
		return nil, errUnknownBackend.Fmt(backend)
	}

	if err != nil {
		return nil, err
	}

	return readOnly{Store: s}, nil
}

type readOnly struct {
	Store
}

func (readOnly) Save(map[string]*models.Project) error {
	return ErrReadOnly
}

// emptyStore stands in for a database that has not been created yet.
type emptyStore struct{}

func (emptyStore) Load() (map[string]*models.Project, error) {
	return make(map[string]*models.Project), nil
}

func (emptyStore) Save(map[string]*models.Project) error {
	return nil
}

func (emptyStore) Close() error {
	return nil
}

// InUse reports whether another process currently holds the lock on path.
func InUse(path string) bool {
	lock, err := acquire(path)
	if err != nil {
		return errors.Is(err, ErrLocked)
	}

	_ = unlock(lock)

	return false
}
