package transpiler

import (
	"sync"

	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.Project = (*project)(nil)

// project binds a configuration to the overrides of the latest request that used it.
// Settings are computed on every call so a refreshed configuration is observed.
type project struct {
	cfg *domain.ParsedConfiguration

	mu        sync.RWMutex
	overrides domain.CompilerSettings
}

func (p *project) ConfigPath() string {
	return p.cfg.Path()
}

func (p *project) RootFiles() []string {
	return p.cfg.RootFiles()
}

func (p *project) Contains(path string) bool {
	return p.cfg.Contains(path)
}

func (p *project) Settings() domain.CompilerSettings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg.Settings().Merge(p.overrides)
}

func (p *project) setOverrides(overrides domain.CompilerSettings) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.overrides = overrides
}

type contextEntry struct {
	project *project
	service ports.LanguageService
}

// Registry owns the compilation contexts, one per configuration path.
type Registry struct {
	host      ports.Host
	frontend  ports.Frontend
	documents ports.DocumentRegistry

	mu       sync.RWMutex
	contexts map[string]*contextEntry
	order    []string
	group    singleflight.Group
}

// NewRegistry creates an empty registry.
func NewRegistry(host ports.Host, frontend ports.Frontend, documents ports.DocumentRegistry) *Registry {
	return &Registry{
		host:      host,
		frontend:  frontend,
		documents: documents,
		contexts:  make(map[string]*contextEntry),
	}
}

// Context returns the context for cfg, creating it on first use. Concurrent callers for the
// same configuration share one construction.
func (r *Registry) Context(cfg *domain.ParsedConfiguration, overrides domain.CompilerSettings) (ports.LanguageService, error) {
	key := domain.PathKey(cfg.Path(), r.host.UseCaseSensitiveFileNames())

	r.mu.RLock()
	entry, ok := r.contexts[key]
	r.mu.RUnlock()
	if ok {
		entry.project.setOverrides(overrides)
		return entry.service, nil
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		r.mu.RLock()
		existing, ok := r.contexts[key]
		r.mu.RUnlock()
		if ok {
			return existing, nil
		}

		p := &project{cfg: cfg, overrides: overrides}
		bucket := r.documents.Bucket(r.host.CurrentDirectory(), r.host.UseCaseSensitiveFileNames())
		svc, err := r.frontend.NewService(p, r.host, bucket)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrContextCreateFailed.Error()), "config", cfg.Path())
		}

		created := &contextEntry{project: p, service: svc}
		r.mu.Lock()
		r.contexts[key] = created
		r.order = append(r.order, key)
		r.mu.Unlock()
		return created, nil
	})
	if err != nil {
		return nil, err
	}

	entry = v.(*contextEntry)
	entry.project.setOverrides(overrides)
	return entry.service, nil
}

// Owner returns the first context, in creation order, that claims path as a root file.
func (r *Registry) Owner(path string) (ports.LanguageService, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, key := range r.order {
		if entry := r.contexts[key]; entry.service.Owns(path) {
			return entry.service, true
		}
	}
	return nil, false
}

// Len returns the number of live contexts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contexts)
}

// Clear drops every context, the shared documents and the front end's memoized results.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.contexts)
	r.order = nil
	r.documents.Clear()
	r.frontend.Clear()
}
