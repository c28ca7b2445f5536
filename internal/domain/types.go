package domain

import (
	"errors"
	"fmt"
	"time"
)

// Entry is one documented cause behind a dashboard warning sign
type Entry struct {
	ID              string   `json:"id" toml:"id"`
	Name            string   `json:"name" toml:"name"`
	Description     string   `json:"description" toml:"description"`
	Remedy          string   `json:"solution" toml:"solution"`
	IsComplexRepair bool     `json:"is_complex_repair" toml:"is_complex_repair"`
	ContinueDriving string   `json:"continue_driving,omitempty" toml:"continue_driving,omitempty"`
	AverageCost     *float64 `json:"average_cost,omitempty" toml:"average_cost,omitempty"`
}

// CostLabel formats the average repair cost. Simple repairs and entries
// without a cost estimate have no label.
func (e Entry) CostLabel() string {
	if !e.IsComplexRepair || e.AverageCost == nil {
		return ""
	}
	return fmt.Sprintf("$%.2f", *e.AverageCost)
}

// Category is a dashboard warning indicator with its ordered causes
type Category struct {
	ID      string  `json:"id" toml:"id"`
	Name    string  `json:"name" toml:"name"`
	IconRef string  `json:"icon,omitempty" toml:"icon,omitempty"`
	Entries []Entry `json:"causes" toml:"causes"`
}

// Validate checks the record rules of a category and its entries
func (c Category) Validate() error {
	if c.Name == "" {
		return errors.New("category name is empty")
	}
	seen := make(map[string]bool, len(c.Entries))
	for _, e := range c.Entries {
		if e.Name == "" {
			return fmt.Errorf("%s: entry name is empty", c.Name)
		}
		if seen[e.ID] {
			return fmt.Errorf("%s: duplicate entry id %s", c.Name, e.ID)
		}
		seen[e.ID] = true
		if e.AverageCost != nil && *e.AverageCost < 0 {
			return fmt.Errorf("%s: negative cost for %s", c.Name, e.Name)
		}
	}
	return nil
}

// Guide is an emergency-guide card
type Guide struct {
	ID      string   `json:"id" toml:"id"`
	Name    string   `json:"name" toml:"name"`
	Summary string   `json:"summary" toml:"summary"`
	Steps   []string `json:"steps" toml:"steps"`
}

// Reminder is a maintenance reminder as handed to the reminder store
type Reminder struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	DueDate   time.Time `json:"due_date"`
	Notes     string    `json:"notes,omitempty"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	Notified  bool      `json:"notified"`
}
