// Package docreg shares source documents between compilation contexts.
package docreg

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBucketSize is the number of documents kept per bucket.
const DefaultBucketSize = 4096

var (
	_ ports.DocumentRegistry = (*Registry)(nil)
	_ ports.DocumentBucket   = (*Bucket)(nil)
)

type bucketKey struct {
	cwd           string
	caseSensitive bool
}

// Registry implements ports.DocumentRegistry with one bounded LRU per environment.
type Registry struct {
	size int

	mu      sync.Mutex
	buckets map[bucketKey]*Bucket
}

// NewRegistry creates a registry whose buckets hold at most size documents.
func NewRegistry(size int) *Registry {
	if size <= 0 {
		size = DefaultBucketSize
	}
	return &Registry{
		size:    size,
		buckets: make(map[bucketKey]*Bucket),
	}
}

// Bucket returns the shared store for the working directory and case sensitivity.
func (r *Registry) Bucket(cwd string, caseSensitive bool) ports.DocumentBucket {
	key := bucketKey{cwd: cwd, caseSensitive: caseSensitive}

	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.buckets[key]; ok {
		return b
	}
	b := newBucket(r.size, caseSensitive)
	r.buckets[key] = b
	return b
}

// Clear drops every bucket.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.buckets)
}

// Bucket caches documents for one environment.
type Bucket struct {
	cache         *lru.Cache[string, ports.Document]
	caseSensitive bool

	hits   atomic.Int64
	misses atomic.Int64
}

func newBucket(size int, caseSensitive bool) *Bucket {
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, ports.Document](size)
	return &Bucket{cache: cache, caseSensitive: caseSensitive}
}

// Acquire returns the cached document when its version matches, otherwise calls load.
func (b *Bucket) Acquire(path string, version int64, load func() (string, error)) (ports.Document, error) {
	key := domain.PathKey(path, b.caseSensitive)

	if doc, ok := b.cache.Get(key); ok && doc.Version == version {
		b.hits.Add(1)
		return doc, nil
	}
	b.misses.Add(1)

	text, err := load()
	if err != nil {
		return ports.Document{}, zerr.With(err, "path", path)
	}
	doc := ports.Document{Path: path, Version: version, Text: text}
	b.cache.Add(key, doc)
	return doc, nil
}

// Stats returns the number of hits and misses so far.
func (b *Bucket) Stats() (hits, misses int64) {
	return b.hits.Load(), b.misses.Load()
}
