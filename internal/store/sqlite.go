package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pbaille/dashalert/internal/domain"
)

//go:embed schema.sql
var schema string

// KeyRemindersAccess holds the persisted reminder permission decision
const KeyRemindersAccess = "reminders_access"

// Access policies for reminders that have not been granted or denied yet.
const (
	AccessGranted = "granted"
	AccessDenied  = "denied"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("not found")

// Store handles database operations
type Store struct {
	db *sql.DB

	mu     sync.RWMutex
	policy string
}

// New creates a new Store with the given database path
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Initialize schema
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, policy: AccessGranted}, nil
}

// SetAccessPolicy sets the answer given the first time reminder access is requested
func (s *Store) SetAccessPolicy(policy string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy = policy
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// RequestAccess returns the stored reminder permission, deciding it from
// the access policy on first use
func (s *Store) RequestAccess(ctx context.Context) (bool, error) {
	v, ok, err := s.GetSetting(KeyRemindersAccess)
	if err != nil {
		return false, err
	}
	if !ok {
		s.mu.RLock()
		v = s.policy
		s.mu.RUnlock()
		if v != AccessDenied {
			v = AccessGranted
		}
		if err := s.SetSetting(KeyRemindersAccess, v); err != nil {
			return false, err
		}
	}
	return v == AccessGranted, nil
}

// Save stores a reminder
func (s *Store) Save(ctx context.Context, r *domain.Reminder) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO reminders (id, title, due_date, notes, priority, created_at, notified) VALUES (?, ?, ?, ?, ?, ?, ?)",
		r.ID, r.Title, r.DueDate.UTC(), r.Notes, r.Priority, r.CreatedAt.UTC(), r.Notified,
	)
	if err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	return nil
}

// GetReminder retrieves a reminder by ID
func (s *Store) GetReminder(id string) (*domain.Reminder, error) {
	row := s.db.QueryRow(
		"SELECT id, title, due_date, notes, priority, created_at, notified FROM reminders WHERE id = ?",
		id,
	)
	r, err := scanReminder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get reminder %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get reminder: %w", err)
	}
	return &r, nil
}

// MinPrefix is the shortest ID prefix FindReminder resolves. Shorter
// references must be a full ID.
const MinPrefix = 8

// FindReminder resolves an ID prefix to a single reminder. The prefix is
// compared literally.
func (s *Store) FindReminder(prefix string) (*domain.Reminder, error) {
	if utf8.RuneCountInString(prefix) < MinPrefix {
		return s.GetReminder(prefix)
	}
	rows, err := s.db.Query(
		"SELECT id FROM reminders WHERE substr(id, 1, ?) = ? ORDER BY id LIMIT 2",
		utf8.RuneCountInString(prefix), prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("find reminder: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan reminder id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()

	switch len(ids) {
	case 0:
		return nil, fmt.Errorf("reminder %s: %w", prefix, ErrNotFound)
	case 1:
		return s.GetReminder(ids[0])
	default:
		return nil, fmt.Errorf("reminder prefix %s is ambiguous", prefix)
	}
}

// ListReminders returns reminders ordered by due date with pagination
func (s *Store) ListReminders(limit, offset int) ([]domain.Reminder, error) {
	rows, err := s.db.Query(
		"SELECT id, title, due_date, notes, priority, created_at, notified FROM reminders ORDER BY due_date, created_at LIMIT ? OFFSET ?",
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

// DueReminders returns unfired reminders due at or before now
func (s *Store) DueReminders(ctx context.Context, now time.Time) ([]domain.Reminder, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, due_date, notes, priority, created_at, notified FROM reminders WHERE notified = FALSE AND due_date <= ? ORDER BY due_date",
		now.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("due reminders: %w", err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

// MarkNotified records that a reminder's alarm fired
func (s *Store) MarkNotified(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE reminders SET notified = TRUE WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}
	return expectOne(res, id)
}

// DeleteReminder removes a reminder
func (s *Store) DeleteReminder(id string) error {
	res, err := s.db.Exec("DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return expectOne(res, id)
}

// GetSetting reads a flag. The bool is false when it was never set.
func (s *Store) GetSetting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting: %w", err)
	}
	return value, true, nil
}

// SetSetting writes a flag
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReminder(sc scanner) (domain.Reminder, error) {
	var r domain.Reminder
	err := sc.Scan(&r.ID, &r.Title, &r.DueDate, &r.Notes, &r.Priority, &r.CreatedAt, &r.Notified)
	return r, err
}

func collectReminders(rows *sql.Rows) ([]domain.Reminder, error) {
	var out []domain.Reminder
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminders: %w", err)
	}
	return out, nil
}

func expectOne(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("reminder %s: %w", id, ErrNotFound)
	}
	return nil
}

// Stats reports counts for the status line
func (s *Store) Stats() (total, pending int, err error) {
	err = s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(CASE WHEN notified THEN 0 ELSE 1 END), 0) FROM reminders",
	).Scan(&total, &pending)
	if err != nil {
		return 0, 0, fmt.Errorf("reminder stats: %w", err)
	}
	return total, pending, nil
}
