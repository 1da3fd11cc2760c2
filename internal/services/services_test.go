package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/pubcrawl/internal/logging"
	"github.com/dmitrijs2005/pubcrawl/internal/models"
	"github.com/dmitrijs2005/pubcrawl/internal/repositories/snapshot"
	"github.com/dmitrijs2005/pubcrawl/internal/store"
	"github.com/stretchr/testify/require"
)

// testEnv wires a fresh store and in-memory snapshot repository behind the
// three services, the same way the CLI app does.
type testEnv struct {
	store      *store.Store
	snapshots  *snapshot.MemoryRepository
	auth       AuthService
	attendance AttendanceService
	profile    ProfileService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := store.New()
	repo := snapshot.NewMemory()
	log := logging.NewTextLogger(io.Discard, "error")
	return &testEnv{
		store:      st,
		snapshots:  repo,
		auth:       NewAuthService(st, repo, log),
		attendance: NewAttendanceService(st, repo, log),
		profile:    NewProfileService(st, repo, log),
	}
}

func (e *testEnv) signUp(t *testing.T, name, email, password string) *models.Account {
	t.Helper()
	a, err := e.auth.SignUp(context.Background(), name, email, password)
	require.NoError(t, err)
	return a
}

func sampleSeed() *models.Account {
	age := 28
	return &models.Account{
		Name:           "Sarah",
		Email:          "sarah@demo.com",
		PasswordDigest: "demo",
		Photo:          "https://i.pravatar.cc/100?img=1",
		Bio:            "First pub crawl",
		Age:            &age,
	}
}

// failingRepo always fails to save; loads behave like an empty store.
type failingRepo struct {
	snapshot.MemoryRepository
	saves int
}

func (f *failingRepo) Save(ctx context.Context, snap *models.Snapshot) error {
	f.saves++
	return errors.New("quota exceeded")
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	st := store.New()
	repo := &failingRepo{}
	log := logging.NewTextLogger(io.Discard, "error")
	auth := NewAuthService(st, repo, log)

	// The mutation succeeds even though every save fails.
	a, err := auth.SignUp(context.Background(), "Alex", "alex@test.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "alex@test.com", a.Email)
	require.Positive(t, repo.saves)
}
