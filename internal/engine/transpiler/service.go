// Package transpiler routes transpile requests to compilation contexts or isolated compiles.
package transpiler

import (
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
)

var _ ports.Transpiler = (*Service)(nil)

// Service implements ports.Transpiler. It is safe for concurrent use.
type Service struct {
	host     ports.Host
	resolver ports.ConfigResolver
	loader   ports.ConfigLoader
	frontend ports.Frontend
	registry *Registry
	cache    ports.OutputCache
	logger   ports.Logger
}

// NewService wires the dispatcher to its collaborators.
func NewService(
	host ports.Host,
	resolver ports.ConfigResolver,
	loader ports.ConfigLoader,
	frontend ports.Frontend,
	documents ports.DocumentRegistry,
	cache ports.OutputCache,
	logger ports.Logger,
) *Service {
	return &Service{
		host:     host,
		resolver: resolver,
		loader:   loader,
		frontend: frontend,
		registry: NewRegistry(host, frontend, documents),
		cache:    cache,
		logger:   logger,
	}
}

// Registry returns the context registry.
func (s *Service) Registry() *Registry {
	return s.registry
}

// ResolveConfig finds and loads the configuration that governs files in dir.
// The boolean is false when no configuration exists. Ignored diagnostic codes are dropped.
func (s *Service) ResolveConfig(
	dir string,
	opts domain.TranspileOptions,
) (*domain.ParsedConfiguration, []domain.Diagnostic, bool) {
	dir = domain.Canonicalize(s.host.CurrentDirectory(), dir)

	configPath, ok := s.resolver.Find(dir, opts.EffectiveConfigFileName())
	if !ok {
		return nil, nil, false
	}

	cfg, diags := s.loader.Load(configPath)
	filtered := domain.FilterDiagnostics(diags, opts.IgnoreDiagnostics)
	if cfg == nil && len(filtered) == 0 {
		// The configuration is unusable even if its diagnostics were ignored.
		filtered = diags
	}
	return cfg, filtered, true
}

// ClearAll drops every context, configuration and memoized lookup.
func (s *Service) ClearAll() {
	s.registry.Clear()
	s.loader.Clear()
	s.resolver.Clear()
	s.logger.Debug("cleared all compilation state")
}
