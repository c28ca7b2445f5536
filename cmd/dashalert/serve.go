package main

import (
	"context"
	"log"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pbaille/dashalert/internal/api"
	"github.com/pbaille/dashalert/internal/catalog"
	"github.com/pbaille/dashalert/internal/config"
	"github.com/pbaille/dashalert/internal/domain"
	"github.com/pbaille/dashalert/internal/reminder"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			// Note: don't defer Close() as server runs indefinitely

			if viper.ConfigFileUsed() != "" {
				viper.OnConfigChange(func(e fsnotify.Event) {
					cfg, err := config.Load()
					if err != nil {
						log.Printf("Config reload failed: %v", err)
						return
					}
					a.store.SetAccessPolicy(cfg.Reminders.Access)
					log.Printf("Config %s changed (%s), reminder access policy is %s", e.Name, e.Op, cfg.Reminders.Access)
				})
				viper.WatchConfig()
			}

			w := reminder.NewWatcher(a.store, a.cfg.Reminders.Schedule, func(r domain.Reminder) {
				log.Printf("Reminder due: %s (%s)", r.Title, r.ID[:8])
			})
			go func() {
				if err := w.Run(context.Background()); err != nil {
					log.Printf("Reminder watcher stopped: %v", err)
				}
			}()

			server := api.New(api.Deps{
				Signs:     catalog.Default(),
				Guides:    catalog.Guides(),
				Reminders: reminder.NewService(a.store),
				Lister:    a.store,
				Settings:  a.settings,
				Verbose:   a.cfg.Verbose,
			}, a.cfg.Addr)
			return server.Run()
		},
	}

	cmd.Flags().StringP("addr", "a", ":8080", "server address")
	_ = viper.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	return cmd
}
