package snapshot

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/pubcrawl/internal/common"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, repo.Save(ctx, sampleSnapshot()))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sampleSnapshot(), got)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Load(ctx)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryCorruptedBlob(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleSnapshot()))
	repo.Corrupt()

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, common.ErrCorruptedSnapshot)

	_, err = repo.Load(ctx)
	require.ErrorIs(t, err, common.ErrNotFound)
}
