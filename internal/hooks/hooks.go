// Package hooks provides the actions werk can run after a session is stopped
// and saved.
package hooks

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/werk-cli/werk/internal/apperr"
	"github.com/werk-cli/werk/internal/duration"
	"github.com/werk-cli/werk/tracker"
)

var errParseStopCmd = &apperr.Error{
	Message: "unable to parse stop_cmd option",
}

// Notification shows a desktop notification when a session stops.
type Notification struct {
	notify func(title, message, appIcon string) error
	icon   string
}

// NewNotification returns a hook that notifies through the desktop's
// notification service. icon may be empty.
func NewNotification(icon string) *Notification {
	return &Notification{
		notify: beeep.Notify,
		icon:   icon,
	}
}

func (n *Notification) AfterStop(ev tracker.StopEvent) error {
	title := fmt.Sprintf("Stopped %s", ev.Project)

	msg := fmt.Sprintf(
		"Session %s, today %s, total %s",
		duration.Format(ev.Elapsed),
		duration.Format(ev.Today),
		duration.Format(ev.TotalTime),
	)

	return n.notify(title, msg, n.icon)
}

// Command runs a user-configured command when a session stops. The stopped
// session is described through WERK_* environment variables.
type Command struct {
	name string
	args []string
}

// NewCommand parses cmdline with shell quoting rules. A blank command line
// yields a nil hook.
func NewCommand(cmdline string) (*Command, error) {
	cmdSlice, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, errParseStopCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil, nil
	}

	return &Command{name: cmdSlice[0], args: cmdSlice[1:]}, nil
}

func (c *Command) AfterStop(ev tracker.StopEvent) error {
	cmd := exec.Command(c.name, c.args...)

	cmd.Env = append(
		os.Environ(),
		"WERK_PROJECT="+ev.Project,
		"WERK_SESSION="+ev.SessionID,
		"WERK_ELAPSED="+duration.Format(ev.Elapsed),
		"WERK_TODAY="+duration.Format(ev.Today),
		"WERK_TOTAL="+duration.Format(ev.TotalTime),
	)

	return cmd.Run()
}
