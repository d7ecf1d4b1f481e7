package domain

import (
	"path/filepath"
	"strings"
)

// Canonicalize returns p as a clean absolute path, resolving relative paths against base.
func Canonicalize(base, p string) string {
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	return filepath.Clean(p)
}

// PathKey returns the comparison key for a canonical path.
// On case-insensitive file systems the key is lowercased.
func PathKey(canonical string, caseSensitive bool) string {
	if caseSensitive {
		return canonical
	}
	return strings.ToLower(canonical)
}

// OutputExtension returns the extension of the script emitted for fileName.
func OutputExtension(fileName string, s CompilerSettings) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".mts", ".mjs":
		return ".mjs"
	case ".cts", ".cjs":
		return ".cjs"
	case ".tsx", ".jsx":
		if jsx := s.JSX(); jsx == "preserve" || jsx == "react-native" {
			return ".jsx"
		}
	}
	return ".js"
}

// IsDeclaration reports whether the file only carries type declarations.
func IsDeclaration(fileName string) bool {
	base := strings.ToLower(filepath.Base(fileName))
	for _, ext := range []string{".d.ts", ".d.mts", ".d.cts"} {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}
	return strings.Contains(base, ".d.") && strings.HasSuffix(base, ".ts")
}
