package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/pbaille/dashalert/internal/catalog"
	"github.com/pbaille/dashalert/internal/domain"
	"github.com/pbaille/dashalert/internal/tui"
)

func signsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signs [query]",
		Short: "List dashboard warning signs",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			signs := catalog.Default().Filter(query)

			if len(signs) == 0 {
				fmt.Printf("No dashboard signs match %q.\n", query)
				return nil
			}

			for _, s := range signs {
				fmt.Printf("%s  %-45s %d cause(s)\n", s.ID[:8], truncate(s.Name, 45), len(s.Entries))
			}
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id|name]",
		Short: "Show the causes behind a sign",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := strings.Join(args, " ")
			sign, ok := catalog.Default().Find(ref)
			if !ok {
				return fmt.Errorf("sign not found: %s", ref)
			}
			printSign(cmd.OutOrStdout(), sign)
			return nil
		},
	}
}

func printSign(w io.Writer, sign domain.Category) {
	fmt.Fprintf(w, "ID:    %s\n", sign.ID)
	fmt.Fprintf(w, "Sign:  %s\n", sign.Name)
	if sign.IconRef != "" {
		fmt.Fprintf(w, "Icon:  %s\n", sign.IconRef)
	}

	for i, e := range sign.Entries {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, e.Name)
		fmt.Fprintf(w, "   Description: %s\n", e.Description)
		fmt.Fprintf(w, "   Solution:    %s\n", e.Remedy)
		if e.ContinueDriving != "" {
			fmt.Fprintf(w, "   Keep driving: %s\n", e.ContinueDriving)
		}
		if cost := e.CostLabel(); cost != "" {
			fmt.Fprintf(w, "   Average repair cost: %s\n", cost)
		}
	}
}

func groupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups [query]",
		Short: "Group signs by icon",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := catalog.GroupByIcon(catalog.Default().Filter(strings.Join(args, " ")))
			if g.Len() == 0 {
				fmt.Println("No dashboard signs match.")
				return nil
			}

			for _, icon := range g.Keys() {
				first, _ := g.First(icon)
				fmt.Printf("%-28s %s", icon, first.Name)
				if n := len(g.Get(icon)); n > 1 {
					fmt.Printf(" (+%d more)", n-1)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func guideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide [query]",
		Short: "List emergency guides",
		RunE: func(cmd *cobra.Command, args []string) error {
			guides := catalog.Guides().Filter(strings.Join(args, " "))
			if len(guides) == 0 {
				fmt.Println("No matching guides found.")
				return nil
			}

			for _, g := range guides {
				fmt.Printf("%-16s %s\n", g.Name, truncate(g.Summary, 60))
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show [name]",
		Short: "Show the steps of a guide",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := strings.Join(args, " ")
			g, ok := catalog.Guides().Find(ref)
			if !ok {
				return fmt.Errorf("guide not found: %s", ref)
			}

			fmt.Printf("%s\n%s\n\n", g.Name, g.Summary)
			for i, step := range g.Steps {
				fmt.Printf("%2d. %s\n", i+1, step)
			}
			return nil
		},
	})

	return cmd
}

// exportDoc is the document written by export
type exportDoc struct {
	Signs  []domain.Category `json:"signs" toml:"signs"`
	Guides []domain.Guide    `json:"guides" toml:"guides"`
}

func exportCmd() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as JSON or TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := exportDoc{
				Signs:  catalog.Default().All(),
				Guides: catalog.Guides().All(),
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			return writeExport(w, format, doc)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json or toml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func writeExport(w io.Writer, format string, doc exportDoc) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "toml":
		return toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("unknown format %q (want json or toml)", format)
	}
}

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse signs in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			m := tui.New(tui.Options{
				Signs:         catalog.Default(),
				DarkMode:      a.settings.State().DarkMode,
				OnToggleTheme: a.settings.ToggleDarkMode,
			})
			return tui.Run(m)
		},
	}
}
