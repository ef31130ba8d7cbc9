package config

import "github.com/werk-cli/werk/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown store backend %q (must be one of %s)",
	}

	errUnknownLogLevel = &apperr.Error{
		Message: "unknown log level %q (must be one of %s)",
	}
)
