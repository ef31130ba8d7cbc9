package ui

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/werk-cli/werk/tracker"
)

// PrintNotice writes an engine notice to w with the prefix matching its kind.
func PrintNotice(w io.Writer, n tracker.Notice) {
	switch n.Kind {
	case tracker.Success:
		pterm.Success.WithWriter(w).Println(n.Message)
	case tracker.Warning:
		pterm.Warning.WithWriter(w).Println(n.Message)
	default:
		pterm.Info.WithWriter(w).Println(n.Message)
	}
}

// Notifier returns a notifier printing to w.
func Notifier(w io.Writer) tracker.Notifier {
	return tracker.NotifierFunc(func(n tracker.Notice) {
		PrintNotice(w, n)
	})
}
