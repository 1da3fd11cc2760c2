package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/pubcrawl/internal/catalog"
	"github.com/dmitrijs2005/pubcrawl/internal/client/config"
	"github.com/dmitrijs2005/pubcrawl/internal/logging"
	"github.com/dmitrijs2005/pubcrawl/internal/repositories/snapshot"
	"github.com/dmitrijs2005/pubcrawl/internal/seed"
	"github.com/dmitrijs2005/pubcrawl/internal/services"
	"github.com/dmitrijs2005/pubcrawl/internal/store"
)

// App wires the services, the catalog and the terminal together.
type App struct {
	config     *config.Config
	log        logging.Logger
	auth       services.AuthService
	attendance services.AttendanceService
	profile    services.ProfileService
	catalog    *catalog.Catalog
	snapshots  snapshot.Repository
	reader     *bufio.Reader
	out        io.Writer
}

// NewApp builds the application: open storage, load the catalog, seed the
// demo data, restore the saved snapshot on top, and wire the services.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewTextLogger(os.Stderr, c.LogLevel)

	cat, err := catalog.Load(c.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var repo snapshot.Repository
	if c.StoragePath == "" {
		log.Warn(ctx, "no storage path configured, state will not survive exit")
		repo = snapshot.NewMemory()
	} else {
		repo, err = snapshot.OpenBolt(c.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
	}

	st := store.New()
	seed.Apply(st)
	services.Restore(ctx, st, repo, log)

	return &App{
		config:     c,
		log:        log,
		auth:       services.NewAuthService(st, repo, log),
		attendance: services.NewAttendanceService(st, repo, log),
		profile:    services.NewProfileService(st, repo, log),
		catalog:    cat,
		snapshots:  repo,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Pub Crawl (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the underlying storage.
func (a *App) Close() {
	if err := a.snapshots.Close(); err != nil {
		a.log.Warn(context.Background(), "closing storage failed", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.auth.CurrentUser()
	return ok
}

// status renders the prompt segment: the logged-in name or "guest".
func (a *App) status() string {
	if user, ok := a.auth.CurrentUser(); ok {
		return user.Name
	}
	return "guest"
}
