package fs

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/dedup/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// patchedKeySeparator joins patched package keys in a fingerprint.
const patchedKeySeparator = ","

// Hasher computes xxhash fingerprints of files and dependency state.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile computes the XXHash of a file's content.
func (h *Hasher) HashFile(path string) (string, error) {
	digest := xxhash.New()
	if err := h.writeFile(path, digest); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

// Fingerprint hashes the lockfile content followed by the sorted patched keys,
// so any change to installed versions or to the patch set yields a new value.
func (h *Hasher) Fingerprint(lockfilePath string, patched []domain.PackageKey) (string, error) {
	digest := xxhash.New()
	if err := h.writeFile(lockfilePath, digest); err != nil {
		return "", err
	}

	keys := make([]string, len(patched))
	for i, k := range patched {
		keys[i] = k.String()
	}
	slices.Sort(keys)
	_, _ = digest.WriteString(strings.Join(keys, patchedKeySeparator))

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func (h *Hasher) writeFile(path string, w io.Writer) error {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockfileReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(w, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return nil
}
