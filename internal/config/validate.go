package config

import (
	"slices"
	"strings"

	"github.com/werk-cli/werk/store"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	if c.Store.Backend == "" {
		c.Store.Backend = store.BackendJSON
	}

	if !slices.Contains(store.Backends(), c.Store.Backend) {
		return errUnknownBackend.Fmt(
			c.Store.Backend,
			strings.Join(store.Backends(), ", "),
		)
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return errUnknownLogLevel.Fmt(c.Log.Level, strings.Join(logLevels, ", "))
	}

	return nil
}
