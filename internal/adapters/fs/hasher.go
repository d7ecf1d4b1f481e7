package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tsrun/internal/core/ports"
	"go.trai.ch/zerr"
)

// Hasher fingerprints files for change detection.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeStateHash fingerprints the names and modification times of files, plus salt.
// Files that cannot be stat'ed contribute a zero time, so deleting a file changes the hash.
func (h *Hasher) ComputeStateHash(host ports.Host, files []string, salt string) string {
	sorted := slices.Clone(files)
	slices.Sort(sorted)

	hasher := xxhash.New()
	_, _ = hasher.WriteString(salt)
	_, _ = hasher.Write([]byte{0})

	for _, f := range sorted {
		_, _ = hasher.WriteString(f)
		_, _ = hasher.Write([]byte{0})

		var stamp int64
		if mt, err := host.ModTime(f); err == nil {
			stamp = mt.UnixNano()
		}
		_ = binary.Write(hasher, binary.LittleEndian, stamp)
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
