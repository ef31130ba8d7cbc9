package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options. Empty values
// leave the file configuration alone.
type CLIOptions struct {
	Backend  string
	DataFile string
	NoColor  bool
	Notify   bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Backend:  ctx.String("backend"),
			DataFile: ctx.String("data-file"),
			NoColor:  ctx.Bool("no-color"),
			Notify:   ctx.Bool("notify"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Backend != "" {
		c.Store.Backend = opts.Backend
	}

	if opts.DataFile != "" {
		c.Store.Path = opts.DataFile
	}

	if opts.NoColor {
		c.Display.NoColor = true
	}

	if opts.Notify {
		c.Notifications.Enabled = true
	}
}
