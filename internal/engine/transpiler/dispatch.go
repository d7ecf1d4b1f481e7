package transpiler

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
)

// Transpile compiles one file. Expected failures, including a broken configuration, are
// reported as diagnostics on the result.
func (s *Service) Transpile(
	ctx context.Context,
	filePath string,
	opts domain.TranspileOptions,
) domain.TranspilationResult {
	path := domain.Canonicalize(s.host.CurrentDirectory(), filePath)
	result := s.dispatch(ctx, path, opts)
	result.FileName = path
	result.Cwd = s.host.CurrentDirectory()
	result.Diagnostics = domain.FilterDiagnostics(result.Diagnostics, opts.IgnoreDiagnostics)
	return result
}

func (s *Service) dispatch(ctx context.Context, path string, opts domain.TranspileOptions) domain.TranspilationResult {
	if ls, ok := s.registry.Owner(path); ok {
		s.logger.Debug(fmt.Sprintf("%s: owned by %s", path, ls.Project().ConfigPath()))
		return s.fromContext(ctx, path, ls, opts)
	}

	if opts.SkipProject {
		s.logger.Debug(path + ": configuration lookup disabled")
		return s.isolated(path, opts.DefaultSettings.Merge(opts.CompilerOptions), "", opts)
	}

	cfg, diags, found := s.ResolveConfig(filepath.Dir(path), opts)
	if !found {
		s.logger.Debug(path + ": no configuration found")
		return s.isolated(path, opts.DefaultSettings.Merge(opts.CompilerOptions), "", opts)
	}
	if cfg == nil || domain.HasErrors(diags) {
		s.logger.Debug(fmt.Sprintf("%s: configuration has %d diagnostics", path, len(diags)))
		configPath := ""
		if cfg != nil {
			configPath = cfg.Path()
		}
		return domain.TranspilationResult{
			Route:       domain.RouteConfigError,
			ConfigPath:  configPath,
			Diagnostics: diags,
		}
	}

	ls, err := s.registry.Context(cfg, opts.CompilerOptions)
	if err != nil {
		// A context that cannot be built degrades to an isolated compile.
		s.logger.Warn(err.Error())
		return s.isolated(path, cfg.Settings().Merge(opts.CompilerOptions), cfg.Path(), opts)
	}

	if opts.TypeCheck && ls.Owns(path) {
		s.logger.Debug(fmt.Sprintf("%s: compiling in context %s", path, cfg.Path()))
		return s.fromContext(ctx, path, ls, opts)
	}

	s.logger.Debug(fmt.Sprintf("%s: not type-checked under %s, compiling in isolation", path, cfg.Path()))
	return s.isolated(path, cfg.Settings().Merge(opts.CompilerOptions), cfg.Path(), opts)
}

func (s *Service) fromContext(
	ctx context.Context,
	path string,
	ls ports.LanguageService,
	opts domain.TranspileOptions,
) domain.TranspilationResult {
	settings := ls.Project().Settings()

	var cached *domain.CacheRecord
	if !opts.NoCache {
		if rec, ok := s.cache.Read(path, settings); ok {
			s.logger.Debug(path + ": output cache hit")
			cached = rec
		}
	}

	result := extract(ctx, ls, path, cached, opts.TypeCheck)
	if cached == nil && !opts.NoCache {
		s.cache.Write(path, settings, result)
	}
	return result
}

// isolated compiles path on its own with settings.
func (s *Service) isolated(
	path string,
	settings domain.CompilerSettings,
	configPath string,
	opts domain.TranspileOptions,
) domain.TranspilationResult {
	result := domain.TranspilationResult{
		FileName:   path,
		Route:      domain.RouteIsolated,
		ConfigPath: configPath,
	}

	if !opts.NoCache {
		if rec, ok := s.cache.Read(path, settings); ok {
			s.logger.Debug(path + ": output cache hit")
			result.OutputText = rec.OutputText
			result.SourceMapText = rec.SourceMapText
			result.Cached = true
			return result
		}
	}

	text, err := s.host.ReadFile(path)
	if err != nil {
		result.Diagnostics = []domain.Diagnostic{domain.ReadFailure(path, err)}
		return result
	}

	var projectDir string
	if configPath != "" {
		projectDir = filepath.Dir(configPath)
	}
	out := s.frontend.TranspileModule(path, string(text), projectDir, settings)
	result.OutputText = out.OutputText
	result.SourceMapText = out.SourceMapText
	result.Diagnostics = out.Diagnostics

	if !opts.NoCache {
		s.cache.Write(path, settings, result)
	}
	return result
}
