package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/pubcrawl/internal/common"
	"github.com/dmitrijs2005/pubcrawl/internal/logging"
	"github.com/dmitrijs2005/pubcrawl/internal/repositories/snapshot"
	"github.com/dmitrijs2005/pubcrawl/internal/store"
)

// Restore loads the persisted snapshot and merges it over the seeded store.
// It runs exactly once at startup, after seeding and before any user
// interaction. Every failure path is non-fatal: no snapshot means a fresh
// demo state, a corrupted snapshot has already been discarded by the
// repository, and any other load error just leaves the seeds in place.
func Restore(ctx context.Context, st *store.Store, repo snapshot.Repository, log logging.Logger) {
	snap, err := repo.Load(ctx)
	switch {
	case err == nil:
		st.Merge(snap)
		log.Info(ctx, "snapshot restored",
			"accounts", len(snap.Users), "events", len(snap.Attendees))
	case errors.Is(err, common.ErrNotFound):
		log.Debug(ctx, "no saved snapshot, starting from seeds")
	case errors.Is(err, common.ErrCorruptedSnapshot):
		log.Warn(ctx, "corrupted snapshot discarded, starting from seeds")
	default:
		log.Warn(ctx, "snapshot load failed", "error", err)
	}
}
