package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyStoreBackend         = "store.backend"
	keyStorePath            = "store.path"
	keyDarkTheme            = "display.dark_theme"
	keyNotificationsEnabled = "notifications.enabled"
	keyStopCmd              = "settings.stop_cmd"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults there if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyStoreBackend, "json")
	v.SetDefault(keyStorePath, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyNotificationsEnabled, false)
	v.SetDefault(keyStopCmd, "")
	v.SetDefault(keyLogLevel, "info")
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
