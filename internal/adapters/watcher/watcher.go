package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultDebounceWindow is the default time window for coalescing events.
const DefaultDebounceWindow = 200 * time.Millisecond

// skippedDirectories are never watched as part of a tree.
var skippedDirectories = map[string]bool{
	".git":                   true,
	".jj":                    true,
	domain.DependencyDirName: true,
}

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	window time.Duration
	log    ports.Logger

	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	trees     []string
	batches   chan []string
	done      chan struct{}
	stopOnce  sync.Once
}

// New creates a Watcher that coalesces events within window.
func New(window time.Duration, log ports.Logger) *Watcher {
	return &Watcher{
		window:  window,
		log:     log,
		batches: make(chan []string),
		done:    make(chan struct{}),
	}
}

// Start begins watching dirs and the directory trees rooted at trees.
// Paths that do not exist are ignored.
func (w *Watcher) Start(ctx context.Context, dirs, trees []string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	w.fsWatcher = fsw
	w.trees = trees
	w.debouncer = NewDebouncer(w.window, w.deliver)

	for _, dir := range dirs {
		if err := w.add(dir); err != nil {
			_ = fsw.Close()
			return err
		}
	}
	for _, tree := range trees {
		for dir := range walkDirs(tree) {
			if err := w.add(dir); err != nil {
				_ = fsw.Close()
				return err
			}
		}
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		if w.fsWatcher != nil {
			err = w.fsWatcher.Close()
		}
	})
	return err
}

// Batches yields coalesced changes until the watcher stops or its context ends.
func (w *Watcher) Batches() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for {
			select {
			case <-w.done:
				return
			case batch := <-w.batches:
				if !yield(batch) {
					return
				}
			}
		}
	}
}

func (w *Watcher) add(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil //nolint:nilerr // Missing directories are not watched
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
	}
	return nil
}

func (w *Watcher) deliver(paths []string) {
	select {
	case w.batches <- paths:
	case <-w.done:
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			_ = w.Stop()
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.debouncer.Add(event.Name)

			if event.Has(fsnotify.Create) && w.inTree(event.Name) {
				for dir := range walkDirs(event.Name) {
					_ = w.add(dir)
				}
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher: " + err.Error())
		}
	}
}

func (w *Watcher) inTree(path string) bool {
	for _, tree := range w.trees {
		if path == tree || strings.HasPrefix(path, tree+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// walkDirs yields root and every directory below it, skipping dependency and VCS directories.
func walkDirs(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // Unreadable directories are skipped
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && skippedDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
