// Package timer runs the live tracking view: it advances the engine once a
// second and maps key presses to pause, resume, switch and stop.
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/werk-cli/werk/tracker"
)

// Options configures a Timer.
type Options struct {
	Logger *slog.Logger
	// Notices must be the notifier the engine was created with
	Notices *NoticeLog
	// StatusFile is rewritten on every tick and removed on exit
	StatusFile string
	Style      Style
}

type tickMsg time.Time

// Timer is the bubbletea model for a running session.
type Timer struct {
	engine     *tracker.Engine
	notices    *NoticeLog
	log        *slog.Logger
	form       *huh.Form
	err        error
	now        func() time.Time
	style      Style
	statusFile string
	switchName string
	message    tracker.Notice
	help       help.Model
	hasMessage bool
	quitting   bool
}

// New returns a timer driving engine, which should already be tracking a
// project.
func New(engine *tracker.Engine, opts Options) *Timer {
	t := &Timer{
		engine:     engine,
		notices:    opts.Notices,
		log:        opts.Logger,
		style:      opts.Style,
		statusFile: opts.StatusFile,
		help:       help.New(),
		now:        time.Now,
	}

	if t.notices == nil {
		t.notices = NewNoticeLog()
	}

	if t.log == nil {
		t.log = slog.Default()
	}

	t.pullNotices()

	return t
}

// Err returns the error that ended the timer, if any.
func (t *Timer) Err() error {
	return t.err
}

// Close removes the status file. It is safe to call more than once and must
// be called after the program returns, however it ended.
func (t *Timer) Close() {
	removeStatusFile(t.statusFile)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(now time.Time) tea.Msg {
		return tickMsg(now)
	})
}

func (t *Timer) Init() tea.Cmd {
	t.refreshStatus()

	return tick()
}

// pullNotices keeps the latest notice for display.
func (t *Timer) pullNotices() {
	notices := t.notices.Drain()
	if len(notices) == 0 {
		return
	}

	t.message = notices[len(notices)-1]
	t.hasMessage = true
}

func (t *Timer) refreshStatus() {
	snap, ok := t.engine.Snapshot()
	if !ok {
		return
	}

	err := writeStatusFile(t.statusFile, newStatus(snap, t.now()))
	if err != nil {
		t.log.Warn("status file not written", "path", t.statusFile, "err", err)
	}
}
