// Package services contains the application services of the pubcrawl demo:
// authentication and session handling, event attendance, and profile
// editing. Services mutate the shared in-memory store and write the full
// state through to the snapshot repository after every mutation.
package services

import (
	"context"

	"github.com/dmitrijs2005/pubcrawl/internal/logging"
	"github.com/dmitrijs2005/pubcrawl/internal/repositories/snapshot"
	"github.com/dmitrijs2005/pubcrawl/internal/store"
)

// base carries the dependencies every service shares.
type base struct {
	store     *store.Store
	snapshots snapshot.Repository
	log       logging.Logger
}

// persist writes the current state through to storage. Durability is
// best-effort: a failed save (quota, I/O) is logged and otherwise swallowed,
// it never surfaces to the user.
func (b *base) persist(ctx context.Context) {
	if err := b.snapshots.Save(ctx, b.store.Snapshot()); err != nil {
		b.log.Warn(ctx, "snapshot save failed", "error", err)
	}
}
