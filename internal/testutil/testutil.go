package testutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/werk-cli/werk/internal/models"
)

var errSaveFailed = errors.New("save failed")

// Clock is a manually advanced clock.
type Clock struct {
	t  time.Time
	mu sync.Mutex
}

func NewClock(t time.Time) *Clock {
	return &Clock{t: t}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.t = c.t.Add(d)
}

// MemStore is an in-memory project store. Saved projects are deep copied so
// later changes by the caller are not visible until the next Save.
type MemStore struct {
	Projects map[string]*models.Project
	// Fail makes every Save return an error until it is cleared
	Fail  bool
	Saves int
	mu    sync.Mutex
}

func NewMemStore(projects ...*models.Project) *MemStore {
	s := &MemStore{Projects: make(map[string]*models.Project)}

	for _, p := range projects {
		s.Projects[p.Name] = p
	}

	return s
}

func (s *MemStore) Load() (map[string]*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneAll(s.Projects), nil
}

func (s *MemStore) Save(projects map[string]*models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Fail {
		return errSaveFailed
	}

	s.Projects = cloneAll(projects)
	s.Saves++

	return nil
}

// Get returns a copy of a saved project.
func (s *MemStore) Get(name string) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.Projects[name]
	if !ok {
		return models.Project{}, false
	}

	return p.Clone(), true
}

func cloneAll(projects map[string]*models.Project) map[string]*models.Project {
	out := make(map[string]*models.Project, len(projects))

	for name, p := range projects {
		c := p.Clone()
		out[name] = &c
	}

	return out
}

// CopyFile copies a fixture from src to dst.
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}
