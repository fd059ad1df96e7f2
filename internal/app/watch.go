package app

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch scans the install, then rescans whenever the lockfile or the patch
// set changes, keeping the duplicate-set cache warm. onScan receives every
// successful result. Watch returns when ctx is done.
func (a *App) Watch(ctx context.Context, cfg *domain.Config, onScan func(domain.DuplicateSets)) error {
	sets, err := a.Scan(ctx, cfg)
	if err != nil {
		return err
	}
	onScan(sets)

	dirs := []string{filepath.Dir(cfg.Lockfile)}
	if err := a.watcher.Start(ctx, dirs, []string{cfg.PatchesDir}); err != nil {
		return zerr.Wrap(err, "failed to watch dependency inputs")
	}
	defer func() { _ = a.watcher.Stop() }()

	a.logger.Info("watching " + cfg.Lockfile + " and " + cfg.PatchesDir)
	for batch := range a.watcher.Batches() {
		if !slices.ContainsFunc(batch, func(p string) bool { return affectsScan(cfg, p) }) {
			continue
		}

		a.logger.Info("dependency inputs changed, rescanning")
		sets, err := a.Scan(ctx, cfg)
		if err != nil {
			// Retried on the next change.
			a.logger.Error(err)
			continue
		}
		onScan(sets)
	}
	return nil
}

func affectsScan(cfg *domain.Config, path string) bool {
	if path == cfg.Lockfile {
		return true
	}
	return path == cfg.PatchesDir ||
		strings.HasPrefix(path, cfg.PatchesDir+string(filepath.Separator))
}
