package tracker

// Kind classifies a notice for the presentation layer.
type Kind int

const (
	Info Kind = iota
	Success
	Warning
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Warning:
		return "warning"
	default:
		return "info"
	}
}

// Notice is a user-facing message emitted by the engine. Rendering is left to
// the caller.
type Notice struct {
	Message string
	Kind    Kind
}

// Notifier receives the engine's notices.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

type discard struct{}

func (discard) Notify(Notice) {}
