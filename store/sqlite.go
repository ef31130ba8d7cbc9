package store

import (
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/werk-cli/werk/internal/duration"
	"github.com/werk-cli/werk/internal/models"
	"github.com/werk-cli/werk/internal/timeutil"
)

const schemaVersion = 1

const schemaV1 = `
CREATE TABLE IF NOT EXISTS projects (
	name          TEXT PRIMARY KEY,
	start_date    TEXT NOT NULL,
	total_seconds INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS project_days (
	project TEXT NOT NULL REFERENCES projects(name) ON DELETE CASCADE,
	day     TEXT NOT NULL,
	seconds INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (project, day)
);
`

// SQLStore keeps projects and their per-day totals in a SQLite database.
type SQLStore struct {
	db   *sqlx.DB
	path string
}

type projectRow struct {
	Name         string `db:"name"`
	StartDate    string `db:"start_date"`
	TotalSeconds int64  `db:"total_seconds"`
}

type dayRow struct {
	Project string `db:"project"`
	Day     string `db:"day"`
	Seconds int64  `db:"seconds"`
}

// NewSQLStore opens (or creates) the SQLite database at path and migrates
// its schema. Use ":memory:" for a throwaway database.
func NewSQLStore(path string) (*SQLStore, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &SQLStore{db: db, path: path}

	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// newSQLReader opens the database at path read-only. The schema is never
// created or migrated, so a database that a writer has not migrated yet reads
// as empty.
func newSQLReader(path string) (Store, error) {
	dsn := (&url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(path),
		RawQuery: "mode=ro",
	}).String()

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("exec pragma: %w", err)
	}

	var version int

	if err := db.Get(&version, "PRAGMA user_version"); err != nil {
		_ = db.Close()
		return nil, errRead.Fmt(path).Wrap(err)
	}

	if version < schemaVersion {
		_ = db.Close()
		return emptyStore{}, nil
	}

	return &SQLStore{db: db, path: path}, nil
}

func (s *SQLStore) migrate() error {
	var version int

	if err := s.db.Get(&version, "PRAGMA user_version"); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= schemaVersion {
		return nil
	}

	if _, err := s.db.Exec(schemaV1); err != nil {
		return err
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))

	return err
}

func (s *SQLStore) Load() (map[string]*models.Project, error) {
	var rows []projectRow

	err := s.db.Select(&rows, `SELECT name, start_date, total_seconds FROM projects`)
	if err != nil {
		return nil, errRead.Fmt(s.path).Wrap(err)
	}

	var days []dayRow

	err = s.db.Select(&days, `SELECT project, day, seconds FROM project_days`)
	if err != nil {
		return nil, errRead.Fmt(s.path).Wrap(err)
	}

	projects := make(map[string]*models.Project, len(rows))

	for _, r := range rows {
		p := &models.Project{
			Name:        r.Name,
			TotalTime:   duration.Seconds(r.TotalSeconds),
			HoursPerDay: make(map[string]duration.Seconds),
		}

		start, err := timeutil.ParseStamp(r.StartDate)
		if err != nil {
			p.Repairs = append(p.Repairs, fmt.Sprintf("start_date %q", r.StartDate))
		} else {
			p.StartDate = start
		}

		projects[r.Name] = p
	}

	for _, d := range days {
		p, ok := projects[d.Project]
		if !ok {
			continue
		}

		p.HoursPerDay[d.Day] = duration.Seconds(d.Seconds)
	}

	return projects, nil
}

// Save replaces every row in a single transaction.
func (s *SQLStore) Save(projects map[string]*models.Project) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return errWrite.Fmt(s.path).Wrap(err)
	}

	err = replaceAll(tx, projects)
	if err != nil {
		_ = tx.Rollback()
		return errWrite.Fmt(s.path).Wrap(err)
	}

	if err := tx.Commit(); err != nil {
		return errWrite.Fmt(s.path).Wrap(err)
	}

	return nil
}

func replaceAll(tx *sqlx.Tx, projects map[string]*models.Project) error {
	if _, err := tx.Exec(`DELETE FROM project_days`); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM projects`); err != nil {
		return err
	}

	for name, p := range projects {
		_, err := tx.Exec(
			`INSERT INTO projects (name, start_date, total_seconds) VALUES (?, ?, ?)`,
			name, timeutil.Stamp(p.StartDate), int64(p.TotalTime),
		)
		if err != nil {
			return err
		}

		for day, secs := range p.HoursPerDay {
			_, err := tx.Exec(
				`INSERT INTO project_days (project, day, seconds) VALUES (?, ?, ?)`,
				name, day, int64(secs),
			)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
