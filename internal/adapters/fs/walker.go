// Package fs provides the file system hosts used by configuration loading and compilation.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// alwaysSkip names directories that never contain project sources.
var alwaysSkip = map[string]bool{
	".git": true,
	".jj":  true,
}

// Walker yields source files below a root directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root whose name ends in one of extensions.
// An empty extension list matches every file. Directories named in skip are not descended into.
func (w *Walker) WalkFiles(root string, extensions, skip []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, w.visit(root, extensions, skip, func(p string) string { return p }, yield))
	}
}

// WalkFS is WalkFiles over an fs.FS. Yielded paths are joined onto prefix.
func (w *Walker) WalkFS(fsys fs.FS, rel, prefix string, extensions, skip []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		toAbs := func(p string) string { return filepath.Join(prefix, filepath.FromSlash(p)) }
		_ = fs.WalkDir(fsys, rel, w.visit(rel, extensions, skip, toAbs, yield))
	}
}

func (w *Walker) visit(
	root string, extensions, skip []string, toAbs func(string) string, yield func(string) bool,
) fs.WalkDirFunc {
	return func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped.
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && w.shouldSkipDir(d.Name(), skip) {
				return fs.SkipDir
			}
			return nil
		}

		if !matchesExtension(d.Name(), extensions) {
			return nil
		}
		if !yield(toAbs(path)) {
			return fs.SkipAll
		}
		return nil
	}
}

func (w *Walker) shouldSkipDir(name string, skip []string) bool {
	if alwaysSkip[name] {
		return true
	}
	for _, s := range skip {
		if matched, _ := filepath.Match(s, name); matched {
			return true
		}
	}
	return false
}

func matchesExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
