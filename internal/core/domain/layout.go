package domain

import "path/filepath"

const (
	// ToolDirName is the name of the internal working directory.
	ToolDirName = ".tsrun"

	// CacheDirName is the name of the output cache directory.
	CacheDirName = "cache"

	// OptionsFileName is the name of the optional service options file.
	OptionsFileName = "tsrun.yaml"

	// DefaultConfigFileName is the canonical project configuration name.
	DefaultConfigFileName = "tsconfig.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default path for the output cache.
// It joins .tsrun and cache.
func DefaultCachePath() string {
	return filepath.Join(ToolDirName, CacheDirName)
}
