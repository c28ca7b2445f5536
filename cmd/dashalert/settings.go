package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pbaille/dashalert/internal/settings"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change saved settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			st := a.settings.State()
			fmt.Printf("Dark mode:     %t\n", st.DarkMode)
			fmt.Printf("Country:       %s\n", st.Country)
			fmt.Printf("Tour finished: %t\n", st.HasCompletedTour)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "dark-mode [on|off|toggle]",
		Short:     "Set the theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			a.settings.Subscribe(printChange)

			switch args[0] {
			case "on":
				return a.settings.SetDarkMode(true)
			case "off":
				return a.settings.SetDarkMode(false)
			case "toggle":
				_, err := a.settings.ToggleDarkMode()
				return err
			default:
				return fmt.Errorf("unknown value %q (want on, off or toggle)", args[0])
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "country [name]",
		Short: "Select the country used for emergency calls",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			a.settings.Subscribe(printChange)

			country := strings.Join(args, " ")
			if err := a.settings.SetCountry(country); err != nil {
				if errors.Is(err, settings.ErrUnknownCountry) {
					return fmt.Errorf("%w (see 'dashalert countries')", err)
				}
				return err
			}
			return nil
		},
	})

	return cmd
}

func printChange(c settings.Change) {
	fmt.Printf("%s: %s -> %s\n", c.Key, c.Old, c.New)
}

func tourCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tour",
		Short: "Walk through the app's main controls",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			t := settings.NewTour(a.settings)
			if err := t.Start(); err != nil {
				return err
			}

			in := bufio.NewScanner(os.Stdin)
			for t.Active {
				fmt.Printf("[%d/%d] %s\n  %s\n", t.Step, settings.TourSteps, t.Anchor(), t.Hint())
				fmt.Print("enter: next, q: skip > ")
				if !in.Scan() || strings.EqualFold(strings.TrimSpace(in.Text()), "q") {
					t.End()
					break
				}
				t.Next()
			}

			fmt.Println("\nTour finished.")
			return nil
		},
	}
}
