// Package reminder assembles maintenance reminders and hands them to the
// reminder store, and fires them when they come due.
package reminder

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pbaille/dashalert/internal/domain"
)

// User-facing outcome messages.
const (
	MsgCreated = "Your reminder has been created successfully."
	MsgFailed  = "Failed to create reminder."
	MsgDenied  = "Reminder access was denied."
)

// Platform is the reminder store the app writes into
type Platform interface {
	RequestAccess(ctx context.Context) (bool, error)
	Save(ctx context.Context, r *domain.Reminder) error
}

// Draft is what the user fills in on the reminder form
type Draft struct {
	Title    string    `json:"title"`
	DueDate  time.Time `json:"due_date"`
	Notes    string    `json:"notes,omitempty"`
	Priority string    `json:"priority"`
}

// Outcome reports a single create attempt
type Outcome struct {
	OK       bool             `json:"ok"`
	Denied   bool             `json:"denied,omitempty"`
	Message  string           `json:"message"`
	Reminder *domain.Reminder `json:"reminder,omitempty"`
}

// Service creates reminders against a Platform
type Service struct {
	platform Platform
	now      func() time.Time
}

// NewService creates a reminder Service
func NewService(p Platform) *Service {
	return &Service{platform: p, now: time.Now}
}

// Build turns a draft into the record stored by the platform
func (s *Service) Build(d Draft) *domain.Reminder {
	return &domain.Reminder{
		ID:        uuid.New().String(),
		Title:     d.Title,
		DueDate:   d.DueDate,
		Notes:     d.Notes,
		Priority:  ParsePriority(d.Priority).Ordinal(),
		CreatedAt: s.now(),
	}
}

// Create asks for access and saves the reminder once. Errors are folded
// into the outcome message.
func (s *Service) Create(ctx context.Context, d Draft) Outcome {
	granted, err := s.platform.RequestAccess(ctx)
	if err != nil {
		log.Printf("Reminder access request failed: %v", err)
		return Outcome{Denied: true, Message: MsgDenied}
	}
	if !granted {
		return Outcome{Denied: true, Message: MsgDenied}
	}

	r := s.Build(d)
	if err := s.platform.Save(ctx, r); err != nil {
		log.Printf("Error creating reminder: %v", err)
		return Outcome{Message: MsgFailed}
	}

	return Outcome{OK: true, Message: MsgCreated, Reminder: r}
}
