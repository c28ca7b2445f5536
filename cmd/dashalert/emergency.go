package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pbaille/dashalert/internal/emergency"
)

func countriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List supported countries and their emergency numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			selected := a.settings.State().Country
			for _, c := range emergency.Countries() {
				number, _ := emergency.Number(c)
				marker := " "
				if c == selected {
					marker = "*"
				}
				fmt.Printf("%s %-16s %s\n", marker, c, number)
			}
			return nil
		},
	}
}

func dialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dial [country]",
		Short: "Call the emergency number of a country (default: the saved country)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			country := strings.Join(args, " ")
			if country == "" {
				country = a.settings.State().Country
			}

			res, err := emergency.NewDialer(launcher(a.cfg.Launcher)).Dial(country)
			if err != nil {
				return err
			}

			switch {
			case res.Number == "":
				fmt.Printf("No emergency number known for %s.\n", country)
			case !res.Dialed:
				fmt.Printf("This device cannot place calls. Dial %s for %s.\n", res.Number, country)
			}
			return nil
		},
	}
}

func launcher(kind string) emergency.Launcher {
	if kind == "exec" {
		return emergency.ExecLauncher{}
	}
	return emergency.PrintLauncher{W: os.Stdout}
}
