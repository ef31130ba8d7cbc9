package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	stop   key.Binding
	swap   key.Binding
	pause  key.Binding
	resume key.Binding
	quit   key.Binding
	cancel key.Binding
}

var defaultKeymap = keymap{
	stop: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "stop and quit"),
	),
	swap: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "switch project"),
	),
	pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	resume: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "resume"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "stop and quit"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}
