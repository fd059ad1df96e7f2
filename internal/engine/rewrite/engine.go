// Package rewrite redirects module resolutions from duplicate package copies
// to their canonical copy.
package rewrite

import (
	"strings"

	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/dedup/internal/engine/pathindex"
	"go.trai.ch/dedup/internal/engine/selector"
	"go.trai.ch/dedup/internal/syncmap"
)

// Options tune the identity guard.
type Options struct {
	// StrictIdentity also requires the versions of the original and the
	// rewritten package to match.
	StrictIdentity bool
}

type resolveKey struct {
	Request string
	Context string
}

type resolveResult struct {
	path string
	ok   bool
}

// Engine rewrites resolution requests. It is safe for concurrent use.
type Engine struct {
	resolver   ports.ModuleResolver
	identities ports.IdentityReader
	selector   *selector.Selector
	sets       domain.DuplicateSets
	index      *pathindex.Index[domain.PackageKey]
	opts       Options

	resolved syncmap.Map[resolveKey, resolveResult]
}

// New creates an Engine over sets. Winners are claimed from sel as sets are
// first encountered.
func New(
	resolver ports.ModuleResolver,
	identities ports.IdentityReader,
	sel *selector.Selector,
	sets domain.DuplicateSets,
	opts Options,
) *Engine {
	return &Engine{
		resolver:   resolver,
		identities: identities,
		selector:   sel,
		sets:       sets,
		index:      pathindex.BuildMembers(sets),
		opts:       opts,
	}
}

// Rewrite returns the canonical path for data, or false when the request
// must be left alone.
func (e *Engine) Rewrite(data domain.ResolveData) (domain.RewriteOutcome, bool) {
	if strings.HasPrefix(data.Request, domain.LoaderMarker) {
		return domain.RewriteOutcome{}, false
	}

	original, ok := e.resolve(data)
	if !ok || !domain.ContainsDependencyDir(original) {
		return domain.RewriteOutcome{}, false
	}

	match, ok := e.index.Lookup(original)
	if !ok {
		return domain.RewriteOutcome{}, false
	}

	canonical := e.selector.Claim(match.Value, match.Prefix, e.sets[match.Value])
	if canonical == match.Prefix {
		return domain.RewriteOutcome{}, false
	}

	rest := domain.SplitPath(original)[match.Depth:]
	if rest.Count(domain.DependencyDirName) > 0 {
		// The duplicate's own node_modules may hold packages the canonical copy lacks.
		return domain.RewriteOutcome{}, false
	}
	candidate := rest.ReplacePrefix(0, domain.SplitPath(canonical)).String()

	if !e.sameIdentity(original, candidate) {
		return domain.RewriteOutcome{}, false
	}

	return domain.RewriteOutcome{
		Path:      candidate,
		Original:  original,
		Key:       match.Value,
		Matched:   match.Prefix,
		Canonical: canonical,
	}, true
}

// Lock returns the winners claimed so far.
func (e *Engine) Lock() domain.CanonicalMapping {
	return e.selector.Lock()
}

func (e *Engine) resolve(data domain.ResolveData) (string, bool) {
	key := resolveKey{Request: data.Request, Context: data.Context}
	if res, ok := e.resolved.Load(key); ok {
		return res.path, res.ok
	}

	path, ok := e.resolver.Resolve(data.Request, data.Context)
	res, _ := e.resolved.LoadOrStore(key, resolveResult{path: path, ok: ok})
	return res.path, res.ok
}

func (e *Engine) sameIdentity(original, candidate string) bool {
	want, err := e.identities.Identity(original)
	if err != nil {
		return false
	}
	got, err := e.identities.Identity(candidate)
	if err != nil {
		return false
	}
	return got.SameAs(want, e.opts.StrictIdentity)
}
