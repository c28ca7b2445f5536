package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pbaille/dashalert/internal/domain"
	"github.com/pbaille/dashalert/internal/reminder"
	"github.com/pbaille/dashalert/internal/store"
)

// dueLayouts are the accepted --due formats, tried in order
var dueLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseDue(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid due date %q (use YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")", s)
}

func remindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Manage maintenance reminders",
	}

	cmd.AddCommand(remindAddCmd())
	cmd.AddCommand(remindListCmd())
	cmd.AddCommand(remindShowCmd())
	cmd.AddCommand(remindDeleteCmd())
	cmd.AddCommand(remindWatchCmd())
	return cmd
}

func remindAddCmd() *cobra.Command {
	var due, notes, priority string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a reminder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseDue(due, time.Now())
			if err != nil {
				return err
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			out := reminder.NewService(a.store).Create(cmd.Context(), reminder.Draft{
				Title:    strings.Join(args, " "),
				DueDate:  dueDate,
				Notes:    notes,
				Priority: priority,
			})
			if !out.OK {
				return errors.New(out.Message)
			}

			fmt.Println(out.Message)
			fmt.Printf("  %s  %s  due %s  [%s]\n", out.Reminder.ID[:8], out.Reminder.Title,
				out.Reminder.DueDate.Format("2006-01-02 15:04"), reminder.PriorityFromOrdinal(out.Reminder.Priority))
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "due date (default: now)")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	cmd.Flags().StringVarP(&priority, "priority", "p", "Medium", "priority: Low, Medium or High")
	return cmd
}

func remindListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders by due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			reminders, err := a.store.ListReminders(limit, 0)
			if err != nil {
				return err
			}

			if len(reminders) == 0 {
				fmt.Println("No reminders yet. Use 'dashalert remind add' to create one.")
				return nil
			}

			for _, r := range reminders {
				printReminderLine(r)
			}

			total, pending, err := a.store.Stats()
			if err != nil {
				return err
			}
			fmt.Printf("\n%d reminder(s), %d pending\n", total, pending)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of reminders to show")
	return cmd
}

func printReminderLine(r domain.Reminder) {
	mark := " "
	if r.Notified {
		mark = "✓"
	}
	fmt.Printf("%s %s  %s  %-6s  %s\n", mark, r.ID[:8], r.DueDate.Local().Format("2006-01-02 15:04"),
		reminder.PriorityFromOrdinal(r.Priority), truncate(r.Title, 50))
}

func remindShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show reminder details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			r, err := a.store.FindReminder(args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("reminder not found: %s", args[0])
			}
			if err != nil {
				return err
			}

			fmt.Printf("ID:       %s\n", r.ID)
			fmt.Printf("Title:    %s\n", r.Title)
			fmt.Printf("Due:      %s\n", r.DueDate.Local().Format("2006-01-02 15:04"))
			fmt.Printf("Priority: %s\n", reminder.PriorityFromOrdinal(r.Priority))
			fmt.Printf("Created:  %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			fmt.Printf("Fired:    %t\n", r.Notified)
			if r.Notes != "" {
				fmt.Printf("Notes:\n%s\n", r.Notes)
			}
			return nil
		},
	}
}

func remindDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			r, err := a.store.FindReminder(args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("reminder not found: %s", args[0])
			}
			if err != nil {
				return err
			}
			if err := a.store.DeleteReminder(r.ID); err != nil {
				return err
			}

			fmt.Printf("Deleted reminder %s (%s)\n", r.ID[:8], r.Title)
			return nil
		},
	}
}

func remindWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Fire reminder alarms as they come due",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := reminder.NewWatcher(a.store, a.cfg.Reminders.Schedule, announce)

			// Catch up on anything that came due while nothing was watching.
			if _, err := w.Tick(ctx, time.Now()); err != nil {
				return err
			}
			return w.Run(ctx)
		},
	}
}

func announce(r domain.Reminder) {
	fmt.Printf("⏰ %s is due (%s, %s priority)\n", r.Title,
		r.DueDate.Local().Format("2006-01-02 15:04"), reminder.PriorityFromOrdinal(r.Priority))
	if r.Notes != "" {
		fmt.Printf("   %s\n", r.Notes)
	}
}
