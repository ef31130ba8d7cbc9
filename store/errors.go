package store

import "github.com/werk-cli/werk/internal/apperr"

var (
	// ErrLocked is returned when another werk process holds the store.
	ErrLocked = &apperr.Error{
		Message: "is werk already running? Only one instance can use %s at a time",
	}

	// ErrCorrupt is returned when the store exists but cannot be decoded.
	ErrCorrupt = &apperr.Error{
		Message: "the data in %s is corrupt and was not loaded",
	}

	// ErrReadOnly is returned by Save on a store opened with OpenReader.
	ErrReadOnly = &apperr.Error{
		Message: "the store was opened read-only",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown store backend: %q (must be json, bolt or sqlite)",
	}

	errWrite = &apperr.Error{
		Message: "unable to write projects to %s",
	}

	errRead = &apperr.Error{
		Message: "unable to read projects from %s",
	}
)
