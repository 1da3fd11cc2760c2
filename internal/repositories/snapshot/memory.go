package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/pubcrawl/internal/common"
	"github.com/dmitrijs2005/pubcrawl/internal/models"
)

// MemoryRepository is an in-process Repository used when no storage path is
// configured, and in tests. It still round-trips through JSON so it behaves
// exactly like the durable implementation, including the corrupted-blob path.
type MemoryRepository struct {
	mu   sync.Mutex
	blob []byte
}

// NewMemory returns an empty in-memory repository.
func NewMemory() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Save(ctx context.Context, snap *models.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blob = payload
	return nil
}

func (r *MemoryRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.blob == nil {
		return nil, common.ErrNotFound
	}
	var snap models.Snapshot
	if err := json.Unmarshal(r.blob, &snap); err != nil {
		r.blob = nil
		return nil, common.ErrCorruptedSnapshot
	}
	return &snap, nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blob = nil
	return nil
}

func (r *MemoryRepository) Close() error { return nil }

// Corrupt overwrites the stored blob with bytes that do not decode. Test
// helper for the malformed-snapshot path.
func (r *MemoryRepository) Corrupt() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blob = []byte("{not json")
}
