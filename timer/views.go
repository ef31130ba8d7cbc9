package timer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/werk-cli/werk/internal/duration"
	"github.com/werk-cli/werk/tracker"
)

func (t *Timer) statusLine(snap tracker.Snapshot) string {
	var s strings.Builder

	s.WriteString("Project: ")
	s.WriteString(t.style.Project.Render(snap.Project))
	s.WriteString(" ‖ Elapsed time: ")
	s.WriteString(t.style.Elapsed.Render(duration.Format(snap.Elapsed)))

	if snap.State == tracker.Paused {
		s.WriteString(t.style.Paused.Render("[Paused]"))
	}

	return s.String()
}

func (t *Timer) messageView() string {
	if !t.hasMessage {
		return ""
	}

	switch t.message.Kind {
	case tracker.Success:
		return t.style.Success.Render(t.message.Message)
	case tracker.Warning:
		return t.style.Warning.Render(t.message.Message)
	default:
		return t.style.Info.Render(t.message.Message)
	}
}

func (t *Timer) helpView(state tracker.State) string {
	toggle := defaultKeymap.pause
	if state == tracker.Paused {
		toggle = defaultKeymap.resume
	}

	return t.help.ShortHelpView([]key.Binding{
		defaultKeymap.stop,
		defaultKeymap.swap,
		toggle,
		defaultKeymap.quit,
	})
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	snap, ok := t.engine.Snapshot()
	if !ok {
		return ""
	}

	var s strings.Builder

	s.WriteString(t.statusLine(snap))

	if msg := t.messageView(); msg != "" {
		s.WriteString("\n\n" + msg)
	}

	if t.form != nil {
		s.WriteString("\n\n" + t.form.View())
		s.WriteString("\n" + t.help.ShortHelpView([]key.Binding{defaultKeymap.cancel}))
	} else {
		s.WriteString("\n\n" + t.helpView(snap.State))
	}

	return t.style.Base.Render(s.String())
}
