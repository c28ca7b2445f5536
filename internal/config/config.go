package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults holds the values used for settings the user never changed.
type Defaults struct {
	DarkMode bool   `mapstructure:"dark_mode"`
	Country  string `mapstructure:"country"`
}

// Reminders configures the reminder store and alarm watcher.
type Reminders struct {
	Access   string `mapstructure:"access"`
	Schedule string `mapstructure:"schedule"`
}

// Config holds all runtime configuration.
// Values are populated from .dashalert.yaml, DASHALERT_* env vars, and CLI flags.
type Config struct {
	DBPath    string    `mapstructure:"db_path"`
	Addr      string    `mapstructure:"addr"`
	Launcher  string    `mapstructure:"launcher"`
	Verbose   bool      `mapstructure:"verbose"`
	Defaults  Defaults  `mapstructure:"defaults"`
	Reminders Reminders `mapstructure:"reminders"`
}

// DefaultDBPath is ~/.dashalert/dashalert.db
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dashalert", "dashalert.db")
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("db_path", DefaultDBPath())
	viper.SetDefault("addr", ":8080")
	viper.SetDefault("launcher", "print")
	viper.SetDefault("verbose", false)
	viper.SetDefault("defaults.dark_mode", true)
	viper.SetDefault("defaults.country", "United States")
	viper.SetDefault("reminders.access", "granted")
	viper.SetDefault("reminders.schedule", "@every 1m")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
