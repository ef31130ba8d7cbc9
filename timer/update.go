package timer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/werk-cli/werk/tracker"
)

func validateProjectName(s string) error {
	if strings.TrimSpace(s) == "" {
		return tracker.ErrEmptyName
	}

	return nil
}

// openSwitchForm prompts for the project to switch to. The running session
// keeps ticking while the prompt is open.
func (t *Timer) openSwitchForm() tea.Cmd {
	t.switchName = ""

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New project name:").
				Value(&t.switchName).
				Validate(validateProjectName),
		),
	).WithShowHelp(false).WithShowErrors(true)

	t.form.SubmitCmd = nil
	t.form.CancelCmd = nil

	return t.form.Init()
}

func (t *Timer) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, defaultKeymap.quit):
			return t.quit()
		case key.Matches(keyMsg, defaultKeymap.cancel):
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	switch t.form.State {
	case huh.StateCompleted:
		return t.finishSwitch()
	case huh.StateAborted:
		t.form = nil
		return t, nil
	}

	return t, cmd
}

func (t *Timer) finishSwitch() (tea.Model, tea.Cmd) {
	t.form = nil

	err := t.engine.SwitchTo(t.switchName)
	if err != nil {
		t.log.Error("switch failed", "project", t.switchName, "err", err)

		return t.exit(err)
	}

	t.pullNotices()
	t.refreshStatus()

	return t, nil
}

// quit stops the session, saving its time, and ends the program. Notices from
// the stop stay in the log for the caller to print.
func (t *Timer) quit() (tea.Model, tea.Cmd) {
	return t.exit(t.engine.Stop())
}

func (t *Timer) exit(err error) (tea.Model, tea.Cmd) {
	t.err = err
	t.quitting = true

	t.Close()

	return t, tea.Quit
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.stop), key.Matches(msg, defaultKeymap.quit):
		return t.quit()

	case key.Matches(msg, defaultKeymap.swap):
		return t, t.openSwitchForm()

	case key.Matches(msg, defaultKeymap.pause):
		t.engine.Pause()

	case key.Matches(msg, defaultKeymap.resume):
		t.engine.Resume()
	}

	t.pullNotices()
	t.refreshStatus()

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tm, ok := msg.(tickMsg); ok {
		t.engine.Tick()
		t.refreshStatus()

		t.log.Debug("tick", "at", tm)

		return t, tick()
	}

	if t.log.Enabled(context.Background(), slog.LevelDebug) {
		t.log.Debug("timer message", "msg", spew.Sdump(msg))
	}

	if t.quitting {
		return t, nil
	}

	if t.form != nil {
		return t.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return t.handleKeyPress(keyMsg)
	}

	return t, nil
}
