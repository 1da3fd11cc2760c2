// Package store holds the in-memory state of the application: accounts keyed
// by email, the single current session, and per-event attendance lists.
//
// A Store is constructed once at startup and passed explicitly to every
// service; there are no package-level globals. Attendance lists keep
// insertion order because the UI displays attendees in join order.
package store

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/pubcrawl/internal/models"
)

// Store is the single shared state container. All methods are safe for
// concurrent use, although the CLI drives it from one goroutine.
type Store struct {
	mu        sync.RWMutex
	users     map[string]*models.Account
	session   string
	attendees map[string][]string
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:     make(map[string]*models.Account),
		attendees: make(map[string][]string),
	}
}

// PutAccount inserts or replaces the account stored under its email.
func (s *Store) PutAccount(a *models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[a.Email] = a.Clone()
}

// Account returns a copy of the account stored under email, if any.
func (s *Store) Account(email string) (*models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.users[email]
	if !ok {
		return nil, false
	}
	return a.Clone(), true
}

// HasAccount reports whether an account exists for email.
func (s *Store) HasAccount(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[email]
	return ok
}

// SetSession records email as the current session. Re-login simply
// overwrites; there is no session stacking.
func (s *Store) SetSession(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = email
}

// ClearSession logs the current user out.
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = ""
}

// Session returns the current session email, or "" when logged out.
func (s *Store) Session() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// AppendAttendee adds email to the event's attendance list unless it is
// already present. It reports whether the list changed.
func (s *Store) AppendAttendee(eventID, email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.attendees[eventID], email) {
		return false
	}
	s.attendees[eventID] = append(s.attendees[eventID], email)
	return true
}

// IsAttendee reports whether email is on the event's attendance list.
func (s *Store) IsAttendee(eventID, email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.attendees[eventID], email)
}

// Attendees returns a copy of the event's attendance list in join order.
func (s *Store) Attendees(eventID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.attendees[eventID])
}

// AttendeeCount returns the raw length of the event's attendance list,
// 0 for an unknown event.
func (s *Store) AttendeeCount(eventID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.attendees[eventID])
}

// Snapshot returns a deep copy of the whole state in the persisted wire
// shape.
func (s *Store) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := models.NewSnapshot()
	snap.Session = s.session
	for email, a := range s.users {
		snap.Users[email] = a.Clone()
	}
	for id, list := range s.attendees {
		snap.Attendees[id] = slices.Clone(list)
	}
	return snap
}

// Merge overlays a restored snapshot on top of the current (seeded) state:
// saved accounts win per email, saved attendance lists replace the whole
// list per event id, and the saved session wins only when non-empty. This
// keeps demo seeds around while preserving real accounts and edits.
func (s *Store) Merge(snap *models.Snapshot) {
	if snap == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for email, a := range snap.Users {
		if a == nil {
			continue
		}
		s.users[email] = a.Clone()
	}
	for id, list := range snap.Attendees {
		s.attendees[id] = slices.Clone(list)
	}
	if snap.Session != "" {
		s.session = snap.Session
	}
}
