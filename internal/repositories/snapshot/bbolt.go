package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pubcrawl/internal/common"
	"github.com/dmitrijs2005/pubcrawl/internal/filex"
	"github.com/dmitrijs2005/pubcrawl/internal/models"
	"go.etcd.io/bbolt"
)

const (
	stateBucket = "state"

	// snapshotKey matches the original web demo's localStorage key.
	snapshotKey = "pubcrawl_db"
)

// BoltRepository is a Repository backed by a single-file BoltDB database.
type BoltRepository struct {
	db *bbolt.DB
}

// OpenBolt opens (creating if needed) the BoltDB file at path and ensures
// the state bucket exists.
func OpenBolt(path string) (*BoltRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("prepare storage dir: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(stateBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state bucket: %w", err)
	}

	return &BoltRepository{db: db}, nil
}

// Save serializes the snapshot and writes it under the fixed key.
func (r *BoltRepository) Save(ctx context.Context, snap *models.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Put([]byte(snapshotKey), payload)
	})
}

// Load reads and decodes the stored snapshot. A blob that fails to decode is
// deleted before common.ErrCorruptedSnapshot is returned, so the next run
// starts from a clean slate instead of crashing on the same data again.
func (r *BoltRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var payload []byte
	err := r.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(stateBucket)).Get([]byte(snapshotKey))
		if raw == nil {
			return common.ErrNotFound
		}
		payload = make([]byte, len(raw))
		copy(payload, raw)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var snap models.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		if clearErr := r.Clear(ctx); clearErr != nil {
			return nil, fmt.Errorf("discard corrupted snapshot: %w", clearErr)
		}
		return nil, common.ErrCorruptedSnapshot
	}

	return &snap, nil
}

// Clear deletes the stored snapshot.
func (r *BoltRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Delete([]byte(snapshotKey))
	})
}

// Close closes the underlying database.
func (r *BoltRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
