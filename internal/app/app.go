// Package app implements the application layer for dedup.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/dedup/internal/engine/dupcache"
	"go.trai.ch/dedup/internal/engine/selector"
	"go.trai.ch/zerr"
)

// DuplicateSource provides the duplicate sets of an install.
type DuplicateSource interface {
	GetDuplicateSets(ctx context.Context, opts dupcache.Options) (domain.DuplicateSets, bool, error)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	duplicates   DuplicateSource
	locks        ports.LockStore
	hasher       ports.Fingerprinter
	resolvers    ports.ResolverFactory
	identities   ports.IdentityReader
	watcher      ports.Watcher
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	duplicates DuplicateSource,
	locks ports.LockStore,
	hasher ports.Fingerprinter,
	resolvers ports.ResolverFactory,
	identities ports.IdentityReader,
	watcher ports.Watcher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		duplicates:   duplicates,
		locks:        locks,
		hasher:       hasher,
		resolvers:    resolvers,
		identities:   identities,
		watcher:      watcher,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// Plan is the eager rewrite plan of an install.
type Plan struct {
	Sets    domain.DuplicateSets
	Mapping domain.CanonicalMapping
}

// LoadConfig loads the configuration at path, or the default file in cwd.
func (a *App) LoadConfig(cwd, path string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(cwd, path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// Scan returns the duplicate sets of the install described by cfg.
func (a *App) Scan(ctx context.Context, cfg *domain.Config) (domain.DuplicateSets, error) {
	ctx, vertex := a.telemetry.Record(ctx, domain.PhaseScan)

	sets, cached, err := a.duplicates.GetDuplicateSets(ctx, dupcache.Options{
		RootDir:      cfg.Root,
		CacheDir:     cfg.CacheDir,
		PatchesDir:   cfg.PatchesDir,
		LockfileName: cfg.Lockfile,
	})
	if err != nil {
		vertex.Complete(err)
		return nil, zerr.Wrap(err, "duplicate scan failed")
	}
	vertex.Log(domain.LogLevelDebug, fmt.Sprintf("%d duplicate sets with %d members", len(sets), sets.Members()))

	if cached {
		vertex.Cached()
	}
	vertex.Complete(nil)
	return sets, nil
}

// Plan selects a canonical directory for every duplicate set up front,
// keeping the winners of the existing lock where possible. The lock is not written.
func (a *App) Plan(ctx context.Context, cfg *domain.Config) (*Plan, error) {
	previous, err := a.readLock(cfg)
	if err != nil {
		return nil, err
	}

	sets, err := a.Scan(ctx, cfg)
	if err != nil {
		return nil, err
	}

	mapping, _ := selector.New(previous.Resolve.Absolutize(cfg.Root)).Select(sets)
	return &Plan{Sets: sets, Mapping: mapping}, nil
}

// Begin scans the install and starts a resolution session.
func (a *App) Begin(ctx context.Context, cfg *domain.Config) (*Session, error) {
	previous, err := a.readLock(cfg)
	if err != nil {
		return nil, err
	}

	sets, err := a.Scan(ctx, cfg)
	if err != nil {
		return nil, err
	}

	_, vertex := a.telemetry.Record(ctx, domain.PhaseIndex)
	s := newSession(a, cfg, previous, sets)
	vertex.Complete(nil)

	return s, nil
}

func (a *App) readLock(cfg *domain.Config) (*domain.Lock, error) {
	lock, err := a.locks.Read(cfg.LockFile)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read lock")
	}
	return lock, nil
}
