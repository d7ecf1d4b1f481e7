// Package config locates and parses project configuration files and service options.
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tailscale/hujson"
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
)

var _ ports.ConfigLoader = (*Loader)(nil)

var (
	tsExtensions = []string{".ts", ".tsx", ".mts", ".cts"}
	jsExtensions = []string{".js", ".jsx", ".mjs", ".cjs"}

	// packageFolders are never descended into by wildcard includes.
	packageFolders = []string{"node_modules", "bower_components", "jspm_packages"}
)

// Loader implements ports.ConfigLoader for tsconfig.json files.
type Loader struct {
	host   ports.Host
	logger ports.Logger

	mu      sync.Mutex
	configs map[string]*domain.ParsedConfiguration
}

// NewLoader creates a loader reading through host.
func NewLoader(host ports.Host, logger ports.Logger) *Loader {
	return &Loader{
		host:    host,
		logger:  logger,
		configs: make(map[string]*domain.ParsedConfiguration),
	}
}

// fileSpec is a list of paths or patterns with the directory they are relative to.
type fileSpec struct {
	dir      string
	patterns []string
}

// resolvedConfig is a configuration with its extends chain applied.
type resolvedConfig struct {
	options map[string]any
	files   *fileSpec
	include *fileSpec
	exclude *fileSpec
}

// Load parses the configuration at configPath and refreshes the configuration object kept
// for that path. A nil configuration is returned only when the file could not be read or parsed.
func (l *Loader) Load(configPath string) (*domain.ParsedConfiguration, []domain.Diagnostic) {
	configPath = domain.Canonicalize(l.host.CurrentDirectory(), configPath)

	rc, diags := l.readChain(configPath, nil)
	if rc == nil {
		return nil, diags
	}

	diags = append(diags, ValidateCompilerOptions(configPath, rc.options)...)
	settings := domain.NewCompilerSettings(rc.options)

	files, fileDiags := l.resolveFiles(configPath, rc, settings.Bool("allowJs"))
	diags = append(diags, fileDiags...)

	caseSensitive := l.host.UseCaseSensitiveFileNames()
	key := domain.PathKey(configPath, caseSensitive)

	l.mu.Lock()
	cfg, ok := l.configs[key]
	if !ok {
		cfg = domain.NewParsedConfiguration(configPath, caseSensitive)
		l.configs[key] = cfg
	}
	l.mu.Unlock()

	cfg.Refresh(settings, files)

	verb := "loaded"
	if ok {
		verb = "refreshed"
	}
	l.logger.Debug(fmt.Sprintf("%s %s: %d root files, %d diagnostics", verb, configPath, len(files), len(diags)))

	return cfg, diags
}

// Clear drops every parsed configuration.
func (l *Loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.configs)
}

// readChain reads configPath and every configuration it extends.
// seen holds the chain of paths leading here, for cycle detection.
func (l *Loader) readChain(configPath string, seen []string) (*resolvedConfig, []domain.Diagnostic) {
	if slices.Contains(seen, configPath) {
		chain := append(slices.Clone(seen), configPath)
		return nil, []domain.Diagnostic{configDiagnostic(seen[0], domain.CodeExtendsCycle,
			"Circularity detected while resolving configuration: "+strings.Join(chain, " -> "))}
	}
	seen = append(seen, configPath)

	tc, diag := l.parse(configPath)
	if diag != nil {
		return nil, []domain.Diagnostic{*diag}
	}

	dir := filepath.Dir(configPath)
	own := resolvedConfig{options: absolutizePaths(dir, tc.CompilerOptions)}
	if tc.Files != nil {
		own.files = &fileSpec{dir: dir, patterns: *tc.Files}
	}
	if tc.Include != nil {
		own.include = &fileSpec{dir: dir, patterns: *tc.Include}
	}
	if tc.Exclude != nil {
		own.exclude = &fileSpec{dir: dir, patterns: *tc.Exclude}
	}

	bases, diags := l.extendsSpecifiers(configPath, tc.Extends)

	merged := &resolvedConfig{options: make(map[string]any)}
	for _, spec := range bases {
		basePath, ok := l.resolveExtends(dir, spec)
		if !ok {
			diags = append(diags, configDiagnostic(configPath, domain.CodeFileNotFound,
				fmt.Sprintf("File '%s' not found.", spec)))
			continue
		}
		base, baseDiags := l.readChain(basePath, seen)
		diags = append(diags, baseDiags...)
		if base == nil {
			if domain.HasErrors(baseDiags) {
				return nil, diags
			}
			continue
		}
		merged.overlay(base)
	}
	merged.overlay(&own)

	return merged, diags
}

func (rc *resolvedConfig) overlay(other *resolvedConfig) {
	for k, v := range other.options {
		rc.options[k] = v
	}
	if other.files != nil {
		rc.files = other.files
	}
	if other.include != nil {
		rc.include = other.include
	}
	if other.exclude != nil {
		rc.exclude = other.exclude
	}
}

// parse reads one configuration file. Comments and trailing commas are accepted.
func (l *Loader) parse(configPath string) (*Tsconfig, *domain.Diagnostic) {
	data, err := l.host.ReadFile(configPath)
	if err != nil {
		d := configDiagnostic(configPath, domain.CodeCannotReadFile,
			fmt.Sprintf("Cannot read file '%s'.", configPath))
		return nil, &d
	}

	standard, err := hujson.Standardize(data)
	if err != nil {
		d := configDiagnostic(configPath, domain.CodeParseFailed, err.Error())
		return nil, &d
	}

	var tc Tsconfig
	if err := json.Unmarshal(standard, &tc); err != nil {
		d := configDiagnostic(configPath, domain.CodeParseFailed, err.Error())
		return nil, &d
	}
	return &tc, nil
}

// extendsSpecifiers accepts both the string and the array form of "extends".
func (l *Loader) extendsSpecifiers(configPath string, raw json.RawMessage) ([]string, []domain.Diagnostic) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many, nil
	}
	return nil, []domain.Diagnostic{configDiagnostic(configPath, domain.CodeOptionType,
		"Compiler option 'extends' requires a value of type string or Array.")}
}

// resolveExtends resolves a relative specifier against dir, or a package specifier
// against node_modules directories from dir upward.
func (l *Loader) resolveExtends(dir, spec string) (string, bool) {
	if strings.HasPrefix(spec, ".") || filepath.IsAbs(spec) {
		p := domain.Canonicalize(dir, spec)
		return l.firstExisting(p, p+".json")
	}

	current := dir
	for {
		nm := filepath.Join(current, "node_modules", filepath.FromSlash(spec))
		if p, ok := l.firstExisting(nm, nm+".json", filepath.Join(nm, domain.DefaultConfigFileName)); ok {
			return p, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

func (l *Loader) firstExisting(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if l.host.FileExists(c) {
			return c, true
		}
	}
	return "", false
}

// resolveFiles expands files, include and exclude into canonical root files.
// Explicit files come first in declaration order, then include matches in sorted order.
func (l *Loader) resolveFiles(
	configPath string, rc *resolvedConfig, allowJs bool,
) ([]string, []domain.Diagnostic) {
	var diags []domain.Diagnostic
	configDir := filepath.Dir(configPath)
	caseSensitive := l.host.UseCaseSensitiveFileNames()

	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		key := domain.PathKey(p, caseSensitive)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		files = append(files, p)
	}

	if rc.files != nil {
		if len(rc.files.patterns) == 0 && rc.include == nil {
			diags = append(diags, configDiagnostic(configPath, domain.CodeEmptyFilesList,
				fmt.Sprintf("The 'files' list in config file '%s' is empty.", configPath)))
		}
		for _, f := range rc.files.patterns {
			abs := domain.Canonicalize(rc.files.dir, f)
			if !l.host.FileExists(abs) {
				diags = append(diags, configDiagnostic(configPath, domain.CodeFileNotFound,
					fmt.Sprintf("File '%s' not found.", abs)))
				continue
			}
			add(abs)
		}
	}

	include := rc.include
	if include == nil && rc.files == nil {
		include = &fileSpec{dir: configDir, patterns: []string{"**/*"}}
	}
	exclude := rc.exclude
	if exclude == nil {
		exclude = &fileSpec{dir: configDir, patterns: slices.Clone(packageFolders)}
		if outDir, ok := rc.options["outDir"].(string); ok && outDir != "" {
			exclude.patterns = append(exclude.patterns, outDir)
		}
	}

	extensions := tsExtensions
	if allowJs {
		extensions = append(slices.Clone(tsExtensions), jsExtensions...)
	}

	if include != nil {
		for _, p := range l.expandIncludes(include, exclude, extensions) {
			add(p)
		}
	}

	if len(files) == 0 && (rc.files == nil || len(rc.files.patterns) > 0) {
		var inc []string
		if include != nil {
			inc = include.patterns
		}
		incJSON, _ := json.Marshal(inc)
		excJSON, _ := json.Marshal(exclude.patterns)
		diags = append(diags, configDiagnostic(configPath, domain.CodeNoInputs, fmt.Sprintf(
			"No inputs were found in config file '%s'. Specified 'include' paths were '%s' and 'exclude' paths were '%s'.",
			configPath, incJSON, excJSON)))
	}

	return files, diags
}

func (l *Loader) expandIncludes(include, exclude *fileSpec, extensions []string) []string {
	var out []string
	for _, pattern := range include.patterns {
		abs := filepath.ToSlash(domain.Canonicalize(include.dir, directoryPattern(pattern)))
		base, rel := doublestar.SplitPattern(abs)
		baseDir := filepath.FromSlash(base)

		candidates, err := l.host.ReadDirectory(baseDir, extensions, packageFolders)
		if err != nil {
			l.logger.Debug(fmt.Sprintf("skipping include %q: %v", pattern, err))
			continue
		}
		for _, c := range candidates {
			r, err := filepath.Rel(baseDir, c)
			if err != nil {
				continue
			}
			if ok, _ := doublestar.Match(rel, filepath.ToSlash(r)); !ok {
				continue
			}
			if isExcluded(exclude, c) {
				continue
			}
			out = append(out, filepath.Clean(c))
		}
	}
	slices.Sort(out)
	return out
}

// directoryPattern turns a bare directory reference into a recursive wildcard.
func directoryPattern(pattern string) string {
	last := pattern
	if i := strings.LastIndexAny(pattern, `/\`); i >= 0 {
		last = pattern[i+1:]
	}
	if strings.ContainsAny(last, "*?") || filepath.Ext(last) != "" {
		return pattern
	}
	return strings.TrimRight(pattern, `/\`) + "/**/*"
}

func isExcluded(exclude *fileSpec, file string) bool {
	target := filepath.ToSlash(file)
	for _, p := range exclude.patterns {
		abs := filepath.ToSlash(domain.Canonicalize(exclude.dir, p))
		if ok, _ := doublestar.Match(abs, target); ok {
			return true
		}
		if ok, _ := doublestar.Match(abs+"/**", target); ok {
			return true
		}
	}
	return false
}

// absolutizePaths resolves path-valued options against dir, returning a new map.
func absolutizePaths(dir string, options map[string]any) map[string]any {
	out := make(map[string]any, len(options))
	for k, v := range options {
		if s, ok := v.(string); ok && slices.Contains(pathOptions, k) {
			v = domain.Canonicalize(dir, s)
		}
		out[k] = v
	}
	return out
}

func configDiagnostic(file string, code int, msg string) domain.Diagnostic {
	return domain.Diagnostic{
		File:     file,
		Code:     code,
		Category: domain.CategoryError,
		Kind:     domain.KindConfig,
		Message:  msg,
	}
}
