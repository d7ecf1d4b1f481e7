package watcher

import "sync"

// ContentHasher fingerprints file contents.
type ContentHasher interface {
	ComputeFileHash(path string) (uint64, error)
}

// ChangeFilter drops events for files whose contents did not change, such as a save
// without edits.
type ChangeFilter struct {
	hasher ContentHasher

	mu     sync.Mutex
	hashes map[string]uint64
}

// NewChangeFilter creates an empty filter.
func NewChangeFilter(hasher ContentHasher) *ChangeFilter {
	return &ChangeFilter{hasher: hasher, hashes: make(map[string]uint64)}
}

// Prime records the current contents of paths.
func (f *ChangeFilter) Prime(paths ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range paths {
		if h, err := f.hasher.ComputeFileHash(p); err == nil {
			f.hashes[p] = h
		}
	}
}

// Changed returns the paths whose contents differ from the last recorded state.
// Unreadable paths count as changed, since they were removed or are directories.
func (f *ChangeFilter) Changed(paths []string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		h, err := f.hasher.ComputeFileHash(p)
		if err != nil {
			delete(f.hashes, p)
			out = append(out, p)
			continue
		}
		if prev, ok := f.hashes[p]; ok && prev == h {
			continue
		}
		f.hashes[p] = h
		out = append(out, p)
	}
	return out
}

// Reset forgets every recorded state.
func (f *ChangeFilter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.hashes)
}
