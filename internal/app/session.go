package app

import (
	"context"
	"sync/atomic"

	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/engine/rewrite"
	"go.trai.ch/dedup/internal/engine/selector"
	"go.trai.ch/zerr"
)

// Session rewrites the resolutions of one build and persists the chosen
// winners when it ends. Rewrite and BeforeResolve may be called concurrently.
type Session struct {
	app      *App
	cfg      *domain.Config
	previous *domain.Lock
	engine   *rewrite.Engine
	closed   atomic.Bool
}

func newSession(a *App, cfg *domain.Config, previous *domain.Lock, sets domain.DuplicateSets) *Session {
	sel := selector.New(previous.Resolve.Absolutize(cfg.Root))
	engine := rewrite.New(
		a.resolvers.NewResolver(cfg.MainFields, cfg.Extensions),
		a.identities,
		sel,
		sets,
		rewrite.Options{StrictIdentity: cfg.StrictIdentity},
	)
	return &Session{
		app:      a,
		cfg:      cfg,
		previous: previous,
		engine:   engine,
	}
}

// Rewrite returns the canonical path for data, or false when the request is left alone.
func (s *Session) Rewrite(data domain.ResolveData) (domain.RewriteOutcome, bool) {
	if s.closed.Load() {
		return domain.RewriteOutcome{}, false
	}
	return s.engine.Rewrite(data)
}

// BeforeResolve is the host bundler hook. It points data.Request at the
// canonical copy and returns data, or returns nil when nothing changes.
func (s *Session) BeforeResolve(data *domain.ResolveData) *domain.ResolveData {
	if data == nil {
		return nil
	}
	out, ok := s.Rewrite(*data)
	if !ok {
		return nil
	}
	s.app.logger.Debug("rewrote " + out.Original + " to " + out.Path)
	data.Request = out.Path
	return data
}

// End writes the lock unless the dependency lockfile is unchanged since the
// lock was last written. It reports whether the lock file was written.
func (s *Session) End(ctx context.Context) (bool, error) {
	if !s.closed.CompareAndSwap(false, true) {
		return false, domain.ErrSessionClosed
	}

	_, vertex := s.app.telemetry.Record(ctx, domain.PhaseLock)

	hash, err := s.app.hasher.HashFile(s.cfg.Lockfile)
	if err != nil {
		vertex.Complete(err)
		return false, zerr.Wrap(err, "failed to hash lockfile")
	}

	lock := domain.NewLock(hash, s.engine.Lock().Relativize(s.cfg.Root))
	written, err := s.app.locks.Write(s.cfg.LockFile, lock, s.previous.LockfileHash)
	if err != nil {
		vertex.Complete(err)
		return false, zerr.Wrap(err, "failed to write lock")
	}

	if written {
		s.app.logger.Info("lock written to " + s.cfg.LockFile)
	} else {
		vertex.Cached()
		s.app.logger.Debug("lockfile unchanged, lock kept")
	}
	vertex.Complete(nil)
	return written, nil
}
