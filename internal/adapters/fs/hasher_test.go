package fs_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsrun/internal/adapters/fs"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.ts")
	b := filepath.Join(tmpDir, "b.ts")
	writeFile(t, a, "export const a = 1")
	writeFile(t, b, "export const a = 1")

	h := fs.NewHasher()
	ha, err := h.ComputeFileHash(a)
	require.NoError(t, err)
	hb, err := h.ComputeFileHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)

	writeFile(t, b, "export const a = 2")
	hb, err = h.ComputeFileHash(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)

	_, err = h.ComputeFileHash(filepath.Join(tmpDir, "missing.ts"))
	require.Error(t, err)
}

func TestHasher_ComputeStateHash(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fsys := fstest.MapFS{
		"a.ts": {ModTime: t1},
		"b.ts": {ModTime: t1},
	}
	host := fs.NewFSHost("/p", fsys)
	h := fs.NewHasher()

	files := []string{"/p/a.ts", "/p/b.ts"}
	base := h.ComputeStateHash(host, files, "strict=true")

	assert.Len(t, base, 16)
	assert.Equal(t, base, h.ComputeStateHash(host, []string{"/p/b.ts", "/p/a.ts"}, "strict=true"), "order independent")
	assert.NotEqual(t, base, h.ComputeStateHash(host, files, "strict=false"), "salt changes hash")

	fsys["b.ts"] = &fstest.MapFile{ModTime: t1.Add(time.Second)}
	assert.NotEqual(t, base, h.ComputeStateHash(host, files, "strict=true"), "mtime changes hash")
}
