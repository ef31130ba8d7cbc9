// Package tracker owns the tracked projects and the active session, and
// implements the start, pause, resume, switch and stop transitions.
package tracker

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/werk-cli/werk/internal/duration"
	"github.com/werk-cli/werk/internal/models"
	"github.com/werk-cli/werk/internal/timeutil"
)

// State is the engine's position in the tracking state machine.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Store loads and saves the full project map.
type Store interface {
	Load() (map[string]*models.Project, error)
	Save(projects map[string]*models.Project) error
}

// active is the project being tracked together with its session. The engine
// is idle exactly when it holds no active value.
type active struct {
	project *models.Project
	session *models.Session
}

// Snapshot is a read-only view of the active session.
type Snapshot struct {
	StartedAt time.Time
	Project   string
	SessionID string
	Elapsed   duration.Seconds
	State     State
}

// Engine is the tracking engine. All methods are safe for concurrent use.
type Engine struct {
	store    Store
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
	projects map[string]*models.Project
	current  *active
	hooks    []StopHook
	mu       sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now. Day keys are derived from the clock's
// location.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithNotifier sets the receiver of user-facing notices. n is called while
// the engine is locked and must not call back into it.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithHooks registers hooks to run after every successful stop.
func WithHooks(hooks ...StopHook) Option {
	return func(e *Engine) {
		e.hooks = append(e.hooks, hooks...)
	}
}

// New loads the projects from s once and returns an idle engine.
func New(s Store, opts ...Option) (*Engine, error) {
	e := &Engine{
		store:    s,
		notifier: discard{},
		log:      slog.Default(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	projects, err := s.Load()
	if err != nil {
		return nil, errLoad.Wrap(err)
	}

	if projects == nil {
		projects = make(map[string]*models.Project)
	}

	e.projects = projects

	for _, p := range sortProjects(projects) {
		for _, field := range p.Repairs {
			e.log.Warn("repaired unreadable field", "project", p.Name, "field", field)
			e.warn("Project %q: unreadable %s was treated as zero.", p.Name, field)
		}
	}

	return e, nil
}

func (e *Engine) notify(kind Kind, format string, args ...any) {
	e.notifier.Notify(Notice{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func (e *Engine) warn(format string, args ...any) {
	e.notify(Warning, format, args...)
}

func (e *Engine) today() string {
	return timeutil.DayKey(e.now())
}

// Start begins a new session on the named project, creating the project if
// it does not exist. A session that is already active is stopped and saved
// first.
func (e *Engine) Start(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	e.mu.Lock()

	ev, err := e.stopLocked()
	if err == nil {
		e.startLocked(name)
	}

	e.mu.Unlock()

	e.runHooks(ev)

	return err
}

// SwitchTo stops the active session, saving its time, and starts a new one
// on the named project. If the save fails no new session is started.
func (e *Engine) SwitchTo(name string) error {
	return e.Start(name)
}

func (e *Engine) startLocked(name string) {
	now := e.now()

	p, ok := e.projects[name]
	if !ok {
		p = models.NewProject(name, now)
		e.projects[name] = p
	}

	p.EnsureDay(timeutil.DayKey(now))

	sess := models.NewSession(now)

	e.current = &active{project: p, session: sess}

	e.log.Debug("session started", "project", name, "session", sess.ID, "new", !ok)
	e.notify(Info, "Starting project: %q.", name)
}

// Pause freezes the active session. Pausing a paused session only warns.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		e.warn("No project is being tracked.")
		return
	}

	if e.current.session.Paused {
		e.warn("Project is already paused.")
		return
	}

	e.current.session.Paused = true

	e.log.Debug("session paused", "session", e.current.session.ID)
	e.notify(Info, "Paused %q.", e.current.project.Name)
}

// Resume continues a paused session. Resuming a running session only warns.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		e.warn("No project is being tracked.")
		return
	}

	if !e.current.session.Paused {
		e.warn("Project is already running.")
		return
	}

	e.current.session.Paused = false

	e.log.Debug("session resumed", "session", e.current.session.ID)
	e.notify(Info, "Resumed project: %q.", e.current.project.Name)
}

// Tick adds one second to a running session. It reports whether the session
// advanced.
func (e *Engine) Tick() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		return false
	}

	return e.current.session.Tick(e.today())
}

// Stop folds the active session into its project and saves every project.
// Stopping an idle engine does nothing. When the save fails the folded time
// stays in memory and the returned error matches ErrPersistence.
func (e *Engine) Stop() error {
	e.mu.Lock()
	ev, err := e.stopLocked()
	e.mu.Unlock()

	e.runHooks(ev)

	return err
}

// stopLocked returns the event for the hooks only when the save succeeded.
func (e *Engine) stopLocked() (*StopEvent, error) {
	if e.current == nil {
		return nil, nil
	}

	cur := e.current
	cur.session.Paused = true

	for day, secs := range cur.session.Days {
		cur.project.Fold(day, secs)
	}

	e.current = nil

	now := e.now()

	ev := &StopEvent{
		StoppedAt: now,
		Project:   cur.project.Name,
		SessionID: cur.session.ID,
		Elapsed:   cur.session.Elapsed,
		Today:     cur.project.HoursPerDay[timeutil.DayKey(now)],
		TotalTime: cur.project.TotalTime,
	}

	e.log.Info(
		"session folded",
		"project", ev.Project,
		"session", ev.SessionID,
		"elapsed", duration.Format(ev.Elapsed),
		"total", duration.Format(ev.TotalTime),
	)

	if err := e.store.Save(e.projects); err != nil {
		e.log.Error("save failed", "project", ev.Project, "err", err)
		return nil, ErrPersistence.Wrap(err)
	}

	e.notify(
		Success,
		"Stopped %q after %s (today %s, total %s).",
		ev.Project,
		duration.Format(ev.Elapsed),
		duration.Format(ev.Today),
		duration.Format(ev.TotalTime),
	)

	return ev, nil
}

func (e *Engine) runHooks(ev *StopEvent) {
	if ev == nil {
		return
	}

	for _, h := range e.hooks {
		if err := h.AfterStop(*ev); err != nil {
			e.log.Warn("stop hook failed", "project", ev.Project, "err", err)
			e.warn("After-stop action failed: %v", err)
		}
	}
}

// Save persists the current projects, e.g. to retry after a failed stop.
func (e *Engine) Save() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Save(e.projects); err != nil {
		return ErrPersistence.Wrap(err)
	}

	return nil
}

// State returns the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stateLocked()
}

func (e *Engine) stateLocked() State {
	switch {
	case e.current == nil:
		return Idle
	case e.current.session.Paused:
		return Paused
	default:
		return Running
	}
}

// Snapshot describes the active session. The boolean is false when idle.
func (e *Engine) Snapshot() (Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		return Snapshot{State: Idle}, false
	}

	return Snapshot{
		Project:   e.current.project.Name,
		SessionID: e.current.session.ID,
		StartedAt: e.current.session.StartedAt,
		Elapsed:   e.current.session.Elapsed,
		State:     e.stateLocked(),
	}, true
}
