package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pbaille/dashalert/internal/domain"
)

// DefaultSchedule checks for due reminders once a minute
const DefaultSchedule = "@every 1m"

// DueSource lists reminders whose alarm has not fired yet
type DueSource interface {
	DueReminders(ctx context.Context, now time.Time) ([]domain.Reminder, error)
	MarkNotified(ctx context.Context, id string) error
}

// Watcher fires the alarm for each reminder once its due date passes
type Watcher struct {
	source   DueSource
	notify   func(domain.Reminder)
	schedule string
}

// NewWatcher creates a Watcher. An empty schedule uses DefaultSchedule.
func NewWatcher(src DueSource, schedule string, notify func(domain.Reminder)) *Watcher {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &Watcher{source: src, notify: notify, schedule: schedule}
}

// Tick fires every reminder due at now and returns how many fired
func (w *Watcher) Tick(ctx context.Context, now time.Time) (int, error) {
	due, err := w.source.DueReminders(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list due reminders: %w", err)
	}

	fired := 0
	for _, r := range due {
		if err := w.source.MarkNotified(ctx, r.ID); err != nil {
			log.Printf("Could not mark reminder %s notified: %v", r.ID, err)
			continue
		}
		r.Notified = true
		w.notify(r)
		fired++
	}
	return fired, nil
}

// Run ticks on the schedule until ctx is done
func (w *Watcher) Run(ctx context.Context) error {
	c := cron.New()
	_, err := c.AddFunc(w.schedule, func() {
		if _, err := w.Tick(ctx, time.Now()); err != nil {
			log.Printf("Scheduled reminder check failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", w.schedule, err)
	}

	log.Printf("Reminder watcher scheduled (%s)", w.schedule)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
