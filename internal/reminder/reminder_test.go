package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pbaille/dashalert/internal/domain"
)

type fakePlatform struct {
	granted   bool
	accessErr error
	saveErr   error
	saved     []*domain.Reminder
	asked     int
}

func (f *fakePlatform) RequestAccess(context.Context) (bool, error) {
	f.asked++
	return f.granted, f.accessErr
}

func (f *fakePlatform) Save(_ context.Context, r *domain.Reminder) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, r)
	return nil
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"Low", 0},
		{"Medium", 1},
		{"High", 2},
		{"high", 1},
		{"HIGH", 1},
		{" LOW ", 1},
		{" High ", 1},
		{"Urgent", 1},
		{"", 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := ParsePriority(tt.in).Ordinal(); got != tt.want {
				t.Errorf("ParsePriority(%q).Ordinal() = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPriority_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, p := range Priorities {
		if got := ParsePriority(p.String()); got != p {
			t.Errorf("ParsePriority(%q) = %v, want %v", p.String(), got, p)
		}
		if got := PriorityFromOrdinal(p.Ordinal()); got != p {
			t.Errorf("PriorityFromOrdinal(%d) = %v, want %v", p.Ordinal(), got, p)
		}
	}
	if got := PriorityFromOrdinal(9); got != Medium {
		t.Errorf("PriorityFromOrdinal(9) = %v, want Medium", got)
	}
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	p := &fakePlatform{granted: true}
	svc := NewService(p)
	due := time.Date(2026, 11, 2, 9, 30, 0, 0, time.UTC)

	out := svc.Create(context.Background(), Draft{
		Title:    "Oil change",
		DueDate:  due,
		Notes:    "5W-30",
		Priority: "High",
	})

	if !out.OK || out.Message != MsgCreated {
		t.Fatalf("Create() = %+v, want success", out)
	}
	if len(p.saved) != 1 {
		t.Fatalf("expected 1 saved reminder, got %d", len(p.saved))
	}
	r := p.saved[0]
	if r.Priority != 2 {
		t.Errorf("Priority = %d, want 2", r.Priority)
	}
	if r.Title != "Oil change" || r.Notes != "5W-30" || !r.DueDate.Equal(due) {
		t.Errorf("saved reminder = %+v", r)
	}
	if r.ID == "" || r.CreatedAt.IsZero() {
		t.Error("expected ID and CreatedAt to be set")
	}
}

func TestCreate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		platform   *fakePlatform
		wantDenied bool
		wantMsg    string
	}{
		{"denied", &fakePlatform{granted: false}, true, MsgDenied},
		{"access error", &fakePlatform{accessErr: errors.New("prompt dismissed")}, true, MsgDenied},
		{"save error", &fakePlatform{granted: true, saveErr: errors.New("disk full")}, false, MsgFailed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := NewService(tt.platform).Create(context.Background(), Draft{Title: "Tires"})
			if out.OK {
				t.Fatal("expected failure")
			}
			if out.Denied != tt.wantDenied || out.Message != tt.wantMsg {
				t.Errorf("Create() = %+v, want denied=%v msg=%q", out, tt.wantDenied, tt.wantMsg)
			}
			if tt.platform.asked != 1 {
				t.Errorf("RequestAccess called %d times, want 1", tt.platform.asked)
			}
			if len(tt.platform.saved) != 0 {
				t.Error("nothing should have been saved")
			}
		})
	}
}

type fakeDue struct {
	items    []domain.Reminder
	notified map[string]bool
	markErr  error
}

func (f *fakeDue) DueReminders(_ context.Context, now time.Time) ([]domain.Reminder, error) {
	var out []domain.Reminder
	for _, r := range f.items {
		if !f.notified[r.ID] && !r.DueDate.After(now) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeDue) MarkNotified(_ context.Context, id string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.notified[id] = true
	return nil
}

func TestWatcher_Tick(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	src := &fakeDue{
		notified: map[string]bool{},
		items: []domain.Reminder{
			{ID: "a", Title: "past", DueDate: now.Add(-time.Hour)},
			{ID: "b", Title: "now", DueDate: now},
			{ID: "c", Title: "future", DueDate: now.Add(time.Hour)},
		},
	}

	var fired []string
	w := NewWatcher(src, "", func(r domain.Reminder) {
		if !r.Notified {
			t.Errorf("reminder %s delivered before being marked", r.ID)
		}
		fired = append(fired, r.ID)
	})

	n, err := w.Tick(context.Background(), now)
	if err != nil {
		t.Fatalf("Tick() error: %v", err)
	}
	if n != 2 || len(fired) != 2 || fired[0] != "a" || fired[1] != "b" {
		t.Errorf("fired %v (n=%d), want [a b]", fired, n)
	}

	n, _ = w.Tick(context.Background(), now)
	if n != 0 {
		t.Errorf("second tick fired %d, want 0", n)
	}
}

func TestWatcher_MarkFailureSkips(t *testing.T) {
	t.Parallel()

	src := &fakeDue{
		notified: map[string]bool{},
		markErr:  errors.New("locked"),
		items:    []domain.Reminder{{ID: "a"}},
	}
	called := false
	w := NewWatcher(src, "", func(domain.Reminder) { called = true })

	n, err := w.Tick(context.Background(), time.Now())
	if err != nil || n != 0 || called {
		t.Errorf("Tick() = %d, %v; notify called = %v", n, err, called)
	}
}

func TestWatcher_RunRejectsBadSchedule(t *testing.T) {
	t.Parallel()

	w := NewWatcher(&fakeDue{notified: map[string]bool{}}, "not a schedule", func(domain.Reminder) {})
	if err := w.Run(context.Background()); err == nil {
		t.Fatal("expected an error for an invalid schedule")
	}
}

func TestWatcher_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	w := NewWatcher(&fakeDue{notified: map[string]bool{}}, "@every 1h", func(domain.Reminder) {})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
