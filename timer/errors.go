package timer

import "github.com/werk-cli/werk/internal/apperr"

var (
	errReadStatus = &apperr.Error{
		Message: "unable to read the timer status from %s",
	}

	errWriteStatus = &apperr.Error{
		Message: "unable to write the timer status",
	}
)
