package tracker

import "github.com/werk-cli/werk/internal/apperr"

var (
	// ErrEmptyName is returned when a project name is blank.
	ErrEmptyName = &apperr.Error{
		Message: "a project name is required",
	}

	// ErrProjectNotFound is returned when no project has the requested name.
	ErrProjectNotFound = &apperr.Error{
		Message: "project %q not found",
	}

	// ErrDayNotFound is returned when no project has time on the requested day.
	ErrDayNotFound = &apperr.Error{
		Message: "day %q not found",
	}

	// ErrPersistence is returned when folded time could not be saved. The time
	// is kept in memory and Save may be retried.
	ErrPersistence = &apperr.Error{
		Message: "tracked time could not be saved",
	}

	errLoad = &apperr.Error{
		Message: "unable to load projects",
	}
)
