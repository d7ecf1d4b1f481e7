package config

import (
	"path/filepath"
	"sync"

	"go.trai.ch/tsrun/internal/core/ports"
)

var _ ports.ConfigResolver = (*Resolver)(nil)

type lookupKey struct {
	dir  string
	name string
}

type lookup struct {
	path  string
	found bool
}

// Resolver implements ports.ConfigResolver by probing parent directories through a Host.
type Resolver struct {
	host ports.Host

	mu   sync.Mutex
	memo map[lookupKey]lookup
}

// NewResolver creates a resolver probing through host.
func NewResolver(host ports.Host) *Resolver {
	return &Resolver{
		host: host,
		memo: make(map[lookupKey]lookup),
	}
}

// Find walks from startDir towards the file system root looking for fileName.
// The verdict for startDir is memoized, including "not found".
func (r *Resolver) Find(startDir, fileName string) (string, bool) {
	startDir = filepath.Clean(startDir)
	key := lookupKey{dir: startDir, name: fileName}

	r.mu.Lock()
	if hit, ok := r.memo[key]; ok {
		r.mu.Unlock()
		return hit.path, hit.found
	}
	r.mu.Unlock()

	result := r.probe(startDir, fileName)

	r.mu.Lock()
	r.memo[key] = result
	r.mu.Unlock()

	return result.path, result.found
}

func (r *Resolver) probe(startDir, fileName string) lookup {
	currentDir := startDir
	for {
		candidate := filepath.Join(currentDir, fileName)
		if r.host.FileExists(candidate) {
			return lookup{path: candidate, found: true}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return lookup{}
		}
		currentDir = parentDir
	}
}

// Clear drops every memoized lookup.
func (r *Resolver) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.memo)
}
