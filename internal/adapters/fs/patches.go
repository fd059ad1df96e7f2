package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PatchLister = (*PatchLister)(nil)

// PatchLister reads the keys of patched packages from a patches directory.
// Sub-directories are scopes, e.g. patches/@org/pkg+1.0.0.patch.
type PatchLister struct{}

// NewPatchLister creates a new PatchLister.
func NewPatchLister() *PatchLister {
	return &PatchLister{}
}

// ListPatched returns the package keys of every *.patch file in dir and its scope directories.
func (p *PatchLister) ListPatched(dir string) ([]domain.PackageKey, error) {
	return p.list(dir, "")
}

func (p *PatchLister) list(dir, scope string) ([]domain.PackageKey, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPatchesReadFailed.Error()), "path", dir)
	}

	var keys []domain.PackageKey
	for _, e := range entries {
		if e.IsDir() {
			nested, err := p.list(filepath.Join(dir, e.Name()), e.Name())
			if err != nil {
				return nil, err
			}
			keys = append(keys, nested...)
			continue
		}

		if !strings.HasSuffix(e.Name(), domain.PatchFileExt) {
			continue
		}
		if key, ok := domain.DecodePatchName(e.Name(), scope); ok {
			keys = append(keys, key)
		}
	}

	return keys, nil
}
