package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/werk-cli/werk/internal/models"
)

// FileStore keeps every project in a single JSON document.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the JSON file at path. The file is
// not touched until Load or Save is called.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the JSON document. A missing or empty file is a first run and
// yields an empty map; a file that cannot be decoded yields ErrCorrupt.
func (s *FileStore) Load() (map[string]*models.Project, error) {
	projects := make(map[string]*models.Project)

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return projects, nil
		}

		return nil, errRead.Fmt(s.path).Wrap(err)
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return projects, nil
	}

	err = json.Unmarshal(b, &projects)
	if err != nil {
		return nil, ErrCorrupt.Fmt(s.path).Wrap(err)
	}

	return normalize(projects), nil
}

// Save writes the projects to a temporary file in the same directory and
// renames it over the previous document, so an interrupted write leaves the
// old content intact.
func (s *FileStore) Save(projects map[string]*models.Project) error {
	b, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return errWrite.Fmt(s.path).Wrap(err)
	}

	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return errWrite.Fmt(s.path).Wrap(err)
	}

	defer func() {
		// no-op once the rename has succeeded
		_ = os.Remove(tmp.Name())
	}()

	_, err = tmp.Write(b)
	if err == nil {
		err = tmp.Sync()
	}

	if cerr := tmp.Close(); err == nil {
		err = cerr
	}

	if err == nil {
		err = os.Rename(tmp.Name(), s.path)
	}

	if err != nil {
		return errWrite.Fmt(s.path).Wrap(err)
	}

	return nil
}

func (s *FileStore) Close() error {
	return nil
}

// normalize drops null entries and makes the map key the project's name.
func normalize(projects map[string]*models.Project) map[string]*models.Project {
	for name, p := range projects {
		if p == nil {
			delete(projects, name)
			continue
		}

		p.Name = name
	}

	return projects
}
