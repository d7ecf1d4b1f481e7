package fs

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Host = (*FSHost)(nil)

// FSHost adapts an fs.FS, such as fstest.MapFS or an embed.FS, to ports.Host.
// Absolute paths under Root map onto the file system's relative names.
type FSHost struct {
	FS   fs.FS
	Root string // simulated root path
	Cwd  string

	// CaseSensitive controls path comparison for configurations loaded through this host.
	CaseSensitive bool

	walker *Walker
}

// NewFSHost creates a host serving fsys at root. The working directory defaults to root.
func NewFSHost(root string, fsys fs.FS) *FSHost {
	root = filepath.Clean(root)
	return &FSHost{
		FS:            fsys,
		Root:          root,
		Cwd:           root,
		CaseSensitive: true,
		walker:        NewWalker(),
	}
}

// FileExists reports whether path names a regular file.
func (h *FSHost) FileExists(path string) bool {
	info, err := h.stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirectoryExists reports whether path names a directory.
func (h *FSHost) DirectoryExists(path string) bool {
	info, err := h.stat(path)
	return err == nil && info.IsDir()
}

// ReadFile returns the contents of path.
func (h *FSHost) ReadFile(path string) ([]byte, error) {
	rel, ok := h.toRelPath(path)
	if !ok {
		return nil, zerr.With(zerr.Wrap(fs.ErrNotExist, domain.ErrFileReadFailed.Error()), "path", path)
	}
	data, err := fs.ReadFile(h.FS, rel)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return data, nil
}

// ReadDirectory lists matching files below root in sorted order.
func (h *FSHost) ReadDirectory(root string, extensions, skip []string) ([]string, error) {
	rel, ok := h.toRelPath(root)
	if !ok || !h.DirectoryExists(root) {
		return nil, nil
	}
	prefix := h.Root
	files := slices.Collect(h.walker.WalkFS(h.FS, rel, prefix, extensions, skip))
	slices.Sort(files)
	return files, nil
}

// GetDirectories lists the immediate subdirectories of path.
func (h *FSHost) GetDirectories(path string) ([]string, error) {
	rel, ok := h.toRelPath(path)
	if !ok {
		return nil, zerr.With(zerr.Wrap(fs.ErrNotExist, "failed to read directory"), "path", path)
	}
	entries, err := fs.ReadDir(h.FS, rel)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", path)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}

// Realpath returns path; fs.FS has no symbolic links.
func (h *FSHost) Realpath(path string) string {
	return path
}

// UseCaseSensitiveFileNames returns CaseSensitive.
func (h *FSHost) UseCaseSensitiveFileNames() bool {
	return h.CaseSensitive
}

// CurrentDirectory returns Cwd.
func (h *FSHost) CurrentDirectory() string {
	return h.Cwd
}

// DefaultLibFilePath searches node_modules upward from Cwd.
func (h *FSHost) DefaultLibFilePath(settings domain.CompilerSettings) string {
	return findDefaultLib(h.Cwd, settings, h.FileExists)
}

// ModTime returns the modification time recorded in the file system.
func (h *FSHost) ModTime(path string) (time.Time, error) {
	info, err := h.stat(path)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return info.ModTime(), nil
}

func (h *FSHost) stat(path string) (fs.FileInfo, error) {
	rel, ok := h.toRelPath(path)
	if !ok {
		return nil, fs.ErrNotExist
	}
	return fs.Stat(h.FS, rel)
}

// toRelPath converts an absolute path to a name within the file system.
// Paths outside Root report false.
func (h *FSHost) toRelPath(absPath string) (string, bool) {
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(h.Cwd, absPath)
	}
	absPath = filepath.Clean(absPath)

	if absPath == h.Root {
		return ".", true
	}
	prefix := h.Root
	if prefix != string(filepath.Separator) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(absPath, prefix) {
		return "", false
	}
	return filepath.ToSlash(strings.TrimPrefix(absPath, prefix)), true
}
