package services

import (
	"context"

	"github.com/dmitrijs2005/pubcrawl/internal/common"
	"github.com/dmitrijs2005/pubcrawl/internal/logging"
	"github.com/dmitrijs2005/pubcrawl/internal/models"
	"github.com/dmitrijs2005/pubcrawl/internal/repositories/snapshot"
	"github.com/dmitrijs2005/pubcrawl/internal/store"
)

// AttendanceService maintains the per-event attendee lists. Events themselves
// live in the external catalog; only their ids are used here. There is no
// leave operation, matching the product behavior.
type AttendanceService interface {
	// Join adds the current user to the event. It fails only with
	// common.ErrNoSession; joining twice is a no-op, not an error.
	Join(ctx context.Context, eventID string) error

	// IsJoined reports whether the current user is on the event's list.
	// Always false when logged out.
	IsJoined(eventID string) bool

	// Members returns the event's attendees in join order. Emails with no
	// matching account are skipped.
	Members(eventID string) []models.Account

	// Count returns the raw attendance list length, 0 for unknown events.
	Count(eventID string) int
}

type attendanceService struct {
	base
}

// NewAttendanceService constructs an AttendanceService over the shared store.
func NewAttendanceService(st *store.Store, snapshots snapshot.Repository, log logging.Logger) AttendanceService {
	return &attendanceService{base{store: st, snapshots: snapshots, log: log}}
}

func (s *attendanceService) Join(ctx context.Context, eventID string) error {
	email := s.store.Session()
	if email == "" {
		return common.ErrNoSession
	}

	if s.store.AppendAttendee(eventID, email) {
		s.log.Info(ctx, "joined event", "event", eventID, "email", email)
	}
	s.persist(ctx)
	return nil
}

func (s *attendanceService) IsJoined(eventID string) bool {
	email := s.store.Session()
	if email == "" {
		return false
	}
	return s.store.IsAttendee(eventID, email)
}

func (s *attendanceService) Members(eventID string) []models.Account {
	emails := s.store.Attendees(eventID)
	members := make([]models.Account, 0, len(emails))
	for _, email := range emails {
		// Skip dangling references from inconsistent persisted state.
		account, ok := s.store.Account(email)
		if !ok {
			continue
		}
		members = append(members, *account)
	}
	return members
}

func (s *attendanceService) Count(eventID string) int {
	return s.store.AttendeeCount(eventID)
}
