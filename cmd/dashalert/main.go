package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pbaille/dashalert/internal/config"
	"github.com/pbaille/dashalert/internal/settings"
	"github.com/pbaille/dashalert/internal/store"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dashalert",
		Short: "Dashboard warning lights, emergency numbers and maintenance reminders",
	}

	var cfgFile string
	cobra.OnInitialize(func() { initConfig(cfgFile) })

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .dashalert.yaml)")
	root.PersistentFlags().String("db", "", "database path (default ~/.dashalert/dashalert.db)")
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("db_path", root.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(signsCmd())
	root.AddCommand(showCmd())
	root.AddCommand(groupsCmd())
	root.AddCommand(guideCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(browseCmd())
	root.AddCommand(countriesCmd())
	root.AddCommand(dialCmd())
	root.AddCommand(remindCmd())
	root.AddCommand(settingsCmd())
	root.AddCommand(tourCmd())
	root.AddCommand(serveCmd())

	return root
}

func initConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".dashalert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("DASHALERT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// No config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// app bundles what most commands need: config, the store and the settings
type app struct {
	cfg      config.Config
	store    *store.Store
	settings *settings.Manager
}

func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	s, err := getStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	s.SetAccessPolicy(cfg.Reminders.Access)

	m, err := settings.NewManager(s, settings.Defaults(cfg.Defaults.DarkMode, cfg.Defaults.Country))
	if err != nil {
		s.Close()
		return nil, err
	}

	return &app{cfg: cfg, store: s, settings: m}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func getStore(dbPath string) (*store.Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	return store.New(dbPath)
}

func truncate(s string, max int) string {
	// Replace newlines with spaces for display
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
