package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Host = (*OSHost)(nil)

// OSHost implements ports.Host on the operating system's file system.
type OSHost struct {
	walker *Walker
	cwd    string
}

// NewOSHost creates a host rooted at the process working directory.
func NewOSHost(walker *Walker) (*OSHost, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}
	return NewOSHostAt(walker, cwd), nil
}

// NewOSHostAt creates a host that resolves relative paths against cwd.
func NewOSHostAt(walker *Walker, cwd string) *OSHost {
	return &OSHost{walker: walker, cwd: filepath.Clean(cwd)}
}

// FileExists reports whether path names a regular file.
func (h *OSHost) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirectoryExists reports whether path names a directory.
func (h *OSHost) DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadFile returns the contents of path.
func (h *OSHost) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- paths come from configuration or the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return data, nil
}

// ReadDirectory lists matching files below root in sorted order.
func (h *OSHost) ReadDirectory(root string, extensions, skip []string) ([]string, error) {
	if !h.DirectoryExists(root) {
		return nil, nil
	}
	files := slices.Collect(h.walker.WalkFiles(root, extensions, skip))
	slices.Sort(files)
	return files, nil
}

// GetDirectories lists the immediate subdirectories of path.
func (h *OSHost) GetDirectories(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
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

// Realpath resolves symbolic links, returning path unchanged on failure.
func (h *OSHost) Realpath(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}

// UseCaseSensitiveFileNames reports false on platforms whose default file systems fold case.
func (h *OSHost) UseCaseSensitiveFileNames() bool {
	switch runtime.GOOS {
	case "darwin", "windows", "ios":
		return false
	default:
		return true
	}
}

// CurrentDirectory returns the host's working directory.
func (h *OSHost) CurrentDirectory() string {
	return h.cwd
}

// DefaultLibFilePath searches node_modules upward from the working directory for the
// compiler's default library.
func (h *OSHost) DefaultLibFilePath(settings domain.CompilerSettings) string {
	return findDefaultLib(h.cwd, settings, h.FileExists)
}

// ModTime returns the modification time of path.
func (h *OSHost) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return info.ModTime(), nil
}

// libFileName mirrors the compiler's choice of default library per target.
func libFileName(target string) string {
	switch target {
	case "es3", "es5":
		return "lib.d.ts"
	case "es6", "es2015":
		return "lib.es6.d.ts"
	default:
		return "lib." + target + ".full.d.ts"
	}
}

func findDefaultLib(start string, settings domain.CompilerSettings, exists func(string) bool) string {
	name := libFileName(settings.Target())
	dir := start
	for {
		candidate := filepath.Join(dir, "node_modules", "typescript", "lib", name)
		if exists(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
