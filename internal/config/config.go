// Package config loads werk's settings from the config file and the command
// line
package config

type (
	// Config holds all configuration settings
	Config struct {
		Store         StoreConfig        `mapstructure:"store"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Log           LogConfig          `mapstructure:"log"`
	}

	// StoreConfig selects where projects are persisted
	StoreConfig struct {
		Backend string `mapstructure:"backend"`
		// Path overrides the default data file in the data directory
		Path string `mapstructure:"path"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
		NoColor   bool `mapstructure:"-"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds behaviour settings
	SettingsConfig struct {
		// StopCmd runs after every saved stop
		StopCmd string `mapstructure:"stop_cmd"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v1.0.0"

// New creates a new Config, applies options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
