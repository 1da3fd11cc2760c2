package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/pubcrawl/internal/logging"
	"github.com/dmitrijs2005/pubcrawl/internal/models"
	"github.com/dmitrijs2005/pubcrawl/internal/repositories/snapshot"
	"github.com/dmitrijs2005/pubcrawl/internal/store"
)

// ProfileUpdate carries the raw editor fields. Age arrives as the string the
// user typed; the service parses it.
type ProfileUpdate struct {
	Name  string
	Age   string
	Bio   string
	Photo string
}

// ProfileService edits the current user's profile. Update is a deliberate
// soft-fail: with no session, or with an empty name, the whole call is a
// silent no-op — no partial update, no error.
type ProfileService interface {
	Update(ctx context.Context, upd ProfileUpdate)
}

type profileService struct {
	base
}

// NewProfileService constructs a ProfileService over the shared store.
func NewProfileService(st *store.Store, snapshots snapshot.Repository, log logging.Logger) ProfileService {
	return &profileService{base{store: st, snapshots: snapshots, log: log}}
}

func (s *profileService) Update(ctx context.Context, upd ProfileUpdate) {
	email := s.store.Session()
	if email == "" {
		s.log.Debug(ctx, "profile update skipped: no session")
		return
	}

	name := strings.TrimSpace(upd.Name)
	if name == "" {
		s.log.Debug(ctx, "profile update skipped: empty name", "email", email)
		return
	}

	account, ok := s.store.Account(email)
	if !ok {
		return
	}

	account.Name = name
	account.Age = parseAge(upd.Age)
	account.Bio = clipBio(upd.Bio)
	if upd.Photo != "" {
		// Photo is an opaque data URI; overwrite without inspecting it.
		account.Photo = upd.Photo
	}

	s.store.PutAccount(account)
	s.persist(ctx)
}

// parseAge turns the raw editor value into an optional positive age. Empty,
// unparseable or non-positive input clears the field.
func parseAge(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

// clipBio trims the bio and clips it to the shared length bound.
func clipBio(bio string) string {
	bio = strings.TrimSpace(bio)
	runes := []rune(bio)
	if len(runes) > models.MaxBioLen {
		return string(runes[:models.MaxBioLen])
	}
	return bio
}
