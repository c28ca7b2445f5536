package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"DBPath", cfg.DBPath, DefaultDBPath()},
		{"Addr", cfg.Addr, ":8080"},
		{"Launcher", cfg.Launcher, "print"},
		{"Verbose", cfg.Verbose, false},
		{"Defaults.DarkMode", cfg.Defaults.DarkMode, true},
		{"Defaults.Country", cfg.Defaults.Country, "United States"},
		{"Reminders.Access", cfg.Reminders.Access, "granted"},
		{"Reminders.Schedule", cfg.Reminders.Schedule, "@every 1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "addr",
			envKey: "DASHALERT_ADDR",
			envVal: "127.0.0.1:9000",
			field:  func(c Config) any { return c.Addr },
			want:   "127.0.0.1:9000",
		},
		{
			name:   "launcher",
			envKey: "DASHALERT_LAUNCHER",
			envVal: "exec",
			field:  func(c Config) any { return c.Launcher },
			want:   "exec",
		},
		{
			name:   "verbose",
			envKey: "DASHALERT_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.SetEnvPrefix("DASHALERT")
			viper.AutomaticEnv()

			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper()

	path := filepath.Join(t.TempDir(), "dashalert.yaml")
	content := "defaults:\n  dark_mode: false\n  country: Japan\nreminders:\n  access: denied\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Defaults.DarkMode || cfg.Defaults.Country != "Japan" || cfg.Reminders.Access != "denied" {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.Reminders.Schedule != "@every 1m" {
		t.Errorf("unset key lost its default: %q", cfg.Reminders.Schedule)
	}
}
