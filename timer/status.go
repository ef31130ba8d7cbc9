package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/werk-cli/werk/internal/duration"
	"github.com/werk-cli/werk/internal/osutil"
	"github.com/werk-cli/werk/store"
	"github.com/werk-cli/werk/tracker"
)

// Status represents the status of a running timer.
type Status struct {
	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Project   string    `json:"project"`
	State     string    `json:"state"`
	Elapsed   string    `json:"elapsed"`
}

func newStatus(snap tracker.Snapshot, now time.Time) Status {
	return Status{
		Project:   snap.Project,
		State:     snap.State.String(),
		Elapsed:   duration.Format(snap.Elapsed),
		StartedAt: snap.StartedAt,
		UpdatedAt: now,
	}
}

func writeStatusFile(path string, s Status) error {
	if path == "" {
		return nil
	}

	b, err := json.Marshal(s)
	if err != nil {
		return errWriteStatus.Wrap(err)
	}

	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return errWriteStatus.Wrap(err)
	}

	if err := os.WriteFile(path, b, osutil.FilePermission); err != nil {
		return errWriteStatus.Wrap(err)
	}

	return nil
}

func removeStatusFile(path string) {
	if path == "" {
		return
	}

	_ = os.Remove(path)
}

// staleAfter is how long a status file stays valid where the data file
// cannot be locked. A running timer rewrites it every second, paused or not.
const staleAfter = 5 * time.Second

var lockSupported = store.LockSupported

// ReportStatus writes the project tracked by a running instance to w. Nothing
// is written when no instance holds the data file. Where advisory locks are
// unavailable, a status file that has not been rewritten recently is taken to
// be left over from a timer that is no longer running.
func ReportStatus(w io.Writer, dataFile, statusFile string) error {
	if lockSupported && !store.InUse(dataFile) {
		return nil
	}

	b, err := os.ReadFile(statusFile)
	if err != nil {
		// the timer has not ticked yet
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return errReadStatus.Fmt(statusFile).Wrap(err)
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return errReadStatus.Fmt(statusFile).Wrap(err)
	}

	if !lockSupported && time.Since(s.UpdatedAt) > staleAfter {
		return nil
	}

	_, err = fmt.Fprintf(w, "[%s] %s: %s\n", s.State, s.Project, s.Elapsed)

	return err
}
