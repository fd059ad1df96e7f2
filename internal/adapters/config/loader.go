// Package config provides the configuration loader for dedup.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads the configuration at path, or dedup.yaml in cwd when path is empty.
// A relative root resolves against the file's directory, and the other
// relative paths resolve against root.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(cwd, domain.ConfigFileName)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
			return Resolve(cwd, &Dedupfile{})
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Dedupfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return Resolve(filepath.Dir(path), &file)
}

// Resolve applies defaults to file. Root is made absolute against base and
// the remaining paths against root.
func Resolve(base string, file *Dedupfile) (*domain.Config, error) {
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "path", base)
	}

	root := absolute(base, orDefault(file.Root, "."))

	cacheDir := domain.DefaultCachePath()
	if file.CacheDir != nil {
		cacheDir = *file.CacheDir
	}
	if cacheDir != "" {
		cacheDir = absolute(root, cacheDir)
	}

	cfg := &domain.Config{
		Root:           root,
		Lockfile:       absolute(root, orDefault(file.Lockfile, domain.DefaultLockfileName)),
		CacheDir:       cacheDir,
		PatchesDir:     absolute(root, orDefault(file.PatchesDir, domain.DefaultPatchesDirName)),
		LockFile:       absolute(root, orDefault(file.LockFile, domain.DefaultDedupLockName)),
		MainFields:     file.MainFields,
		Extensions:     file.Extensions,
		StrictIdentity: file.StrictIdentity,
	}
	if len(cfg.MainFields) == 0 {
		cfg.MainFields = domain.DefaultMainFields()
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = domain.DefaultExtensions()
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func absolute(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
