package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werk-cli/werk/internal/duration"
	"github.com/werk-cli/werk/internal/models"
	"github.com/werk-cli/werk/internal/testutil"
)

var morning = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local)

type recorder struct {
	notices []Notice
}

func (r *recorder) Notify(n Notice) {
	r.notices = append(r.notices, n)
}

func (r *recorder) kinds(k Kind) []string {
	var out []string

	for _, n := range r.notices {
		if n.Kind == k {
			out = append(out, n.Message)
		}
	}

	return out
}

type fixture struct {
	engine *Engine
	store  *testutil.MemStore
	clock  *testutil.Clock
	rec    *recorder
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	f := &fixture{
		store: testutil.NewMemStore(),
		clock: testutil.NewClock(morning),
		rec:   &recorder{},
	}

	opts = append(
		[]Option{WithClock(f.clock.Now), WithNotifier(f.rec)},
		opts...,
	)

	e, err := New(f.store, opts...)
	require.NoError(t, err)

	f.engine = e

	return f
}

func (f *fixture) tick(n int) {
	for range n {
		f.engine.Tick()
		f.clock.Advance(time.Second)
	}
}

func TestStartTickStop(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.engine.Start("writing"))
	assert.Equal(t, Running, f.engine.State())

	f.tick(3)

	require.NoError(t, f.engine.Stop())
	assert.Equal(t, Idle, f.engine.State())

	p, ok := f.store.Get("writing")
	require.True(t, ok)

	assert.Equal(t, "00:00:03", duration.Format(p.TotalTime))
	assert.Equal(t, "00:00:03", duration.Format(p.HoursPerDay["03/10/24"]))
	assert.Equal(t, morning, p.StartDate)
	assert.Contains(t, f.rec.kinds(Info), `Starting project: "writing".`)
	assert.Equal(
		t,
		[]string{`Stopped "writing" after 00:00:03 (today 00:00:03, total 00:00:03).`},
		f.rec.kinds(Success),
	)
}

func TestStartTrimsAndRejectsEmptyNames(t *testing.T) {
	f := newFixture(t)

	for _, name := range []string{"", "   ", "\t"} {
		err := f.engine.Start(name)
		require.ErrorIs(t, err, ErrEmptyName)
	}

	assert.Equal(t, Idle, f.engine.State())

	require.NoError(t, f.engine.Start("  writing "))

	snap, ok := f.engine.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "writing", snap.Project)
}

func TestStartExistingProjectKeepsHistory(t *testing.T) {
	first := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.Local)
	existing := models.NewProject("writing", first)
	existing.Fold("01/02/24", 90)

	f := newFixture(t)
	f.store.Projects["writing"] = existing

	e, err := New(f.store, WithClock(f.clock.Now))
	require.NoError(t, err)

	require.NoError(t, e.Start("writing"))
	e.Tick()
	require.NoError(t, e.Stop())

	p, ok := f.store.Get("writing")
	require.True(t, ok)

	assert.Equal(t, first, p.StartDate)
	assert.Equal(t, duration.Seconds(91), p.TotalTime)
	assert.Equal(t, duration.Seconds(90), p.HoursPerDay["01/02/24"])
	assert.Equal(t, duration.Seconds(1), p.HoursPerDay["03/10/24"])
}

func TestPauseResume(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.engine.Start("writing"))
	f.tick(2)

	f.engine.Pause()
	f.engine.Pause()
	assert.Equal(t, Paused, f.engine.State())

	assert.False(t, f.engine.Tick())
	assert.False(t, f.engine.Tick())

	f.engine.Resume()
	f.engine.Resume()
	assert.Equal(t, Running, f.engine.State())

	f.tick(1)

	snap, ok := f.engine.Snapshot()
	require.True(t, ok)
	assert.Equal(t, duration.Seconds(3), snap.Elapsed)

	assert.Equal(
		t,
		[]string{"Project is already paused.", "Project is already running."},
		f.rec.kinds(Warning),
	)

	require.NoError(t, f.engine.Stop())

	p, _ := f.store.Get("writing")
	assert.Equal(t, duration.Seconds(3), p.TotalTime)
}

func TestPauseResumeWhileIdle(t *testing.T) {
	f := newFixture(t)

	f.engine.Pause()
	f.engine.Resume()

	assert.Equal(t, Idle, f.engine.State())
	assert.Equal(
		t,
		[]string{"No project is being tracked.", "No project is being tracked."},
		f.rec.kinds(Warning),
	)
}

func TestStopPausedSession(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.engine.Start("writing"))
	f.tick(4)
	f.engine.Pause()
	f.tick(10)

	require.NoError(t, f.engine.Stop())

	p, _ := f.store.Get("writing")
	assert.Equal(t, duration.Seconds(4), p.TotalTime)
}

func TestStopWhileIdle(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.engine.Stop())
	assert.Zero(t, f.store.Saves)
	assert.Empty(t, f.rec.notices)
}

func TestSwitchSavesBeforeStarting(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.engine.Start("a"))
	f.tick(5)

	require.NoError(t, f.engine.SwitchTo("b"))

	assert.Equal(t, 1, f.store.Saves)

	a, ok := f.store.Get("a")
	require.True(t, ok)
	assert.Equal(t, duration.Seconds(5), a.TotalTime)

	_, ok = f.store.Get("b")
	assert.False(t, ok, "b must not be persisted before its first stop")

	snap, ok := f.engine.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "b", snap.Project)
	assert.Equal(t, Running, snap.State)
	assert.Zero(t, snap.Elapsed)

	f.tick(2)
	require.NoError(t, f.engine.Stop())

	b, ok := f.store.Get("b")
	require.True(t, ok)
	assert.Equal(t, duration.Seconds(2), b.TotalTime)

	a, _ = f.store.Get("a")
	assert.Equal(t, duration.Seconds(5), a.TotalTime)
}

func TestSwitchFromPaused(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.engine.Start("a"))
	f.tick(1)
	f.engine.Pause()

	require.NoError(t, f.engine.SwitchTo("b"))
	assert.Equal(t, Running, f.engine.State())

	a, _ := f.store.Get("a")
	assert.Equal(t, duration.Seconds(1), a.TotalTime)
}

func TestStopSaveFailureKeepsTime(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.engine.Start("writing"))
	f.tick(3)

	f.store.Fail = true

	err := f.engine.Stop()
	require.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, Idle, f.engine.State())
	assert.Empty(t, f.rec.kinds(Success))

	p, err := f.engine.ListOne("writing")
	require.NoError(t, err)
	assert.Equal(t, duration.Seconds(3), p.TotalTime)

	f.store.Fail = false

	require.NoError(t, f.engine.Save())

	saved, ok := f.store.Get("writing")
	require.True(t, ok)
	assert.Equal(t, duration.Seconds(3), saved.TotalTime)
}

func TestSwitchSaveFailureDoesNotStart(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.engine.Start("a"))
	f.tick(1)

	f.store.Fail = true

	err := f.engine.SwitchTo("b")
	require.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, Idle, f.engine.State())

	_, err = f.engine.ListOne("b")
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestSessionAcrossMidnight(t *testing.T) {
	f := newFixture(t)
	f.clock = testutil.NewClock(
		time.Date(2024, time.March, 10, 23, 59, 58, 0, time.Local),
	)

	e, err := New(f.store, WithClock(f.clock.Now))
	require.NoError(t, err)

	f.engine = e

	require.NoError(t, e.Start("night"))
	f.tick(3)
	require.NoError(t, e.Stop())

	p, _ := f.store.Get("night")

	assert.Equal(t, duration.Seconds(2), p.HoursPerDay["03/10/24"])
	assert.Equal(t, duration.Seconds(1), p.HoursPerDay["03/11/24"])
	assert.Equal(t, duration.Seconds(3), p.TotalTime)
}

func TestStopHooks(t *testing.T) {
	var events []StopEvent

	ok := StopHookFunc(func(ev StopEvent) error {
		events = append(events, ev)
		return nil
	})

	failing := StopHookFunc(func(StopEvent) error {
		return errors.New("boom")
	})

	f := newFixture(t, WithHooks(ok, failing))

	require.NoError(t, f.engine.Start("writing"))
	f.tick(2)
	require.NoError(t, f.engine.Stop())

	require.Len(t, events, 1)
	assert.Equal(t, "writing", events[0].Project)
	assert.Equal(t, duration.Seconds(2), events[0].Elapsed)
	assert.Equal(t, duration.Seconds(2), events[0].Today)
	assert.Equal(t, duration.Seconds(2), events[0].TotalTime)
	assert.NotEmpty(t, events[0].SessionID)

	assert.Equal(
		t,
		[]string{"After-stop action failed: boom"},
		f.rec.kinds(Warning),
	)

	// hooks only run once the time is saved
	require.NoError(t, f.engine.Start("writing"))
	f.store.Fail = true
	require.Error(t, f.engine.Stop())
	assert.Len(t, events, 1)
}

func TestNewReportsRepairs(t *testing.T) {
	broken := models.NewProject("legacy", morning)
	broken.Repairs = []string{`total_time "xx:00:00"`}

	s := testutil.NewMemStore(broken)
	rec := &recorder{}

	_, err := New(s, WithNotifier(rec))
	require.NoError(t, err)

	assert.Equal(
		t,
		[]string{`Project "legacy": unreadable total_time "xx:00:00" was treated as zero.`},
		rec.kinds(Warning),
	)
}

type brokenStore struct{}

func (brokenStore) Load() (map[string]*models.Project, error) {
	return nil, errors.New("disk on fire")
}

func (brokenStore) Save(map[string]*models.Project) error {
	return nil
}

func TestNewLoadFailure(t *testing.T) {
	_, err := New(brokenStore{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errLoad)
	assert.ErrorContains(t, err, "disk on fire")
}

func TestSnapshotWhileIdle(t *testing.T) {
	f := newFixture(t)

	snap, ok := f.engine.Snapshot()
	assert.False(t, ok)
	assert.Equal(t, Idle, snap.State)
}
