package hooks

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werk-cli/werk/internal/osutil"
	"github.com/werk-cli/werk/tracker"
)

var stopped = tracker.StopEvent{
	Project:   "writing",
	SessionID: "a1b2",
	Elapsed:   65,
	Today:     3600,
	TotalTime: 7325,
}

func TestNotification(t *testing.T) {
	var title, msg, icon string

	n := NewNotification("icon.png")
	n.notify = func(ti, m, i string) error {
		title, msg, icon = ti, m, i
		return nil
	}

	require.NoError(t, n.AfterStop(stopped))

	assert.Equal(t, "Stopped writing", title)
	assert.Equal(t, "Session 00:01:05, today 01:00:00, total 02:02:05", msg)
	assert.Equal(t, "icon.png", icon)
}

func TestNewCommand(t *testing.T) {
	c, err := NewCommand(`git commit -am "werk: stopped"`)
	require.NoError(t, err)
	assert.Equal(t, "git", c.name)
	assert.Equal(t, []string{"commit", "-am", "werk: stopped"}, c.args)

	c, err = NewCommand("   ")
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = NewCommand(`echo "unterminated`)
	require.ErrorIs(t, err, errParseStopCmd)
}

func TestCommandEnvironment(t *testing.T) {
	if runtime.GOOS == osutil.Windows {
		t.Skip("requires a POSIX shell")
	}

	out := filepath.Join(t.TempDir(), "out")

	c, err := NewCommand(
		`sh -c 'echo "$WERK_PROJECT $WERK_ELAPSED $WERK_TODAY $WERK_TOTAL" > "$0"' ` + out,
	)
	require.NoError(t, err)

	require.NoError(t, c.AfterStop(stopped))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "writing 00:01:05 01:00:00 02:02:05", strings.TrimSpace(string(b)))
}

func TestCommandFailure(t *testing.T) {
	if runtime.GOOS == osutil.Windows {
		t.Skip("requires a POSIX shell")
	}

	c, err := NewCommand("sh -c 'exit 3'")
	require.NoError(t, err)

	assert.Error(t, c.AfterStop(stopped))
}
