// Package resolve implements Node-style module resolution.
package resolve

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
)

var (
	_ ports.ModuleResolver  = (*Resolver)(nil)
	_ ports.ResolverFactory = (*Factory)(nil)
)

const (
	nodeSchemePrefix = "node:"
	indexFileName    = "index"
)

// Resolver resolves requests the way a bundler does for browser targets:
// relative and absolute requests against the file system, bare requests
// through the node_modules directories of every ancestor of the context.
type Resolver struct {
	mainFields []string
	extensions []string
}

// New creates a resolver that consults mainFields for package entry points
// and tries extensions for extension-less requests.
func New(mainFields, extensions []string) *Resolver {
	if len(mainFields) == 0 {
		mainFields = domain.DefaultMainFields()
	}
	if len(extensions) == 0 {
		extensions = domain.DefaultExtensions()
	}
	return &Resolver{mainFields: mainFields, extensions: extensions}
}

// Resolve returns the absolute file request resolves to from the context directory.
func (r *Resolver) Resolve(request, context string) (string, bool) {
	if request == "" || strings.HasPrefix(request, nodeSchemePrefix) {
		return "", false
	}

	if filepath.IsAbs(request) {
		return r.resolvePath(filepath.Clean(request))
	}
	if isRelative(request) {
		return r.resolvePath(filepath.Join(context, filepath.FromSlash(request)))
	}
	return r.resolveBare(request, context)
}

func isRelative(request string) bool {
	return request == "." || request == ".." ||
		strings.HasPrefix(request, "./") || strings.HasPrefix(request, "../")
}

// resolveBare looks request up in node_modules of context and each of its ancestors,
// skipping ancestors that are themselves node_modules directories.
func (r *Resolver) resolveBare(request, context string) (string, bool) {
	rel := filepath.FromSlash(request)
	dir := filepath.Clean(context)

	for {
		if filepath.Base(dir) != domain.DependencyDirName {
			if p, ok := r.resolvePath(filepath.Join(dir, domain.DependencyDirName, rel)); ok {
				return p, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// resolvePath resolves p as a file, then as a package directory.
func (r *Resolver) resolvePath(p string) (string, bool) {
	if f, ok := r.resolveFile(p); ok {
		return f, true
	}
	return r.resolveDir(p)
}

func (r *Resolver) resolveFile(p string) (string, bool) {
	if isFile(p) {
		return p, true
	}
	for _, ext := range r.extensions {
		if isFile(p + ext) {
			return p + ext, true
		}
	}
	return "", false
}

func (r *Resolver) resolveDir(dir string) (string, bool) {
	if !isDir(dir) {
		return "", false
	}

	for _, entry := range r.entryPoints(dir) {
		target := filepath.Join(dir, filepath.FromSlash(entry))
		if f, ok := r.resolveFile(target); ok {
			return f, true
		}
		if f, ok := r.resolveIndex(target); ok {
			return f, true
		}
	}

	return r.resolveIndex(dir)
}

func (r *Resolver) resolveIndex(dir string) (string, bool) {
	for _, ext := range r.extensions {
		p := filepath.Join(dir, indexFileName+ext)
		if isFile(p) {
			return p, true
		}
	}
	return "", false
}

// entryPoints returns the string values of the configured main fields in dir's manifest.
func (r *Resolver) entryPoints(dir string) []string {
	//nolint:gosec // Path is derived from the resolution context
	data, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	if err != nil {
		return nil
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil
	}

	var entries []string
	for _, field := range r.mainFields {
		if v, ok := manifest[field].(string); ok && v != "" {
			entries = append(entries, v)
		}
	}
	return entries
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// Factory builds Resolvers.
type Factory struct{}

// NewFactory creates a new resolver factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewResolver creates a Resolver for the given preferences.
func (f *Factory) NewResolver(mainFields, extensions []string) ports.ModuleResolver {
	return New(mainFields, extensions)
}
