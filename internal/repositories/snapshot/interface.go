// Package snapshot persists the whole application state as a single blob.
//
// The entire durable state — accounts, session, attendance — is written as
// one JSON document under one fixed key after every mutation, and read back
// exactly once at startup. There is no partial update and no versioning:
// a blob that no longer decodes is discarded wholesale.
package snapshot

import (
	"context"

	"github.com/dmitrijs2005/pubcrawl/internal/models"
)

// Repository stores and restores full state snapshots.
type Repository interface {
	// Save writes the snapshot, replacing whatever was stored before.
	Save(ctx context.Context, snap *models.Snapshot) error

	// Load reads the stored snapshot. It returns common.ErrNotFound when
	// nothing was ever saved, and common.ErrCorruptedSnapshot after
	// discarding a blob that could not be decoded.
	Load(ctx context.Context) (*models.Snapshot, error)

	// Clear removes the stored snapshot, if any.
	Clear(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
