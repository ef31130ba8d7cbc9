package tracker

import (
	"time"

	"github.com/werk-cli/werk/internal/duration"
)

// StopEvent describes a session that has been folded into its project and
// saved.
type StopEvent struct {
	StoppedAt time.Time
	Project   string
	SessionID string
	Elapsed   duration.Seconds
	Today     duration.Seconds
	TotalTime duration.Seconds
}

// StopHook runs after a stopped session has been persisted. Hook failures are
// reported but never undo the stop.
type StopHook interface {
	AfterStop(ev StopEvent) error
}

// StopHookFunc adapts a function to the StopHook interface.
type StopHookFunc func(ev StopEvent) error

func (f StopHookFunc) AfterStop(ev StopEvent) error {
	return f(ev)
}
