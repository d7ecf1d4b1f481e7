// Package ports defines the core interfaces for the application.
package ports

import (
	"time"

	"go.trai.ch/tsrun/internal/core/domain"
)

// Host supplies the file system callbacks consumed by the configuration layer and the
// compiler front end. Every method is swappable so a custom file system can be plugged in.
type Host interface {
	// FileExists reports whether path names a regular file. I/O errors count as "no".
	FileExists(path string) bool
	// DirectoryExists reports whether path names a directory.
	DirectoryExists(path string) bool
	// ReadFile returns the contents of path.
	ReadFile(path string) ([]byte, error)
	// ReadDirectory lists files below root, recursively, whose names end in one of extensions.
	// Directory names in skip are not descended into. Results are sorted absolute paths.
	ReadDirectory(root string, extensions, skip []string) ([]string, error)
	// GetDirectories lists the immediate subdirectory names of path.
	GetDirectories(path string) ([]string, error)
	// Realpath resolves symbolic links; it returns path unchanged on failure.
	Realpath(path string) string
	// UseCaseSensitiveFileNames reports whether file names are case sensitive.
	UseCaseSensitiveFileNames() bool
	// CurrentDirectory returns the working directory used to resolve relative paths.
	CurrentDirectory() string
	// DefaultLibFilePath returns the compiler's default library file for the settings,
	// or "" when no compiler installation can be located.
	DefaultLibFilePath(settings domain.CompilerSettings) string
	// ModTime returns the modification time of path.
	ModTime(path string) (time.Time, error)
}
