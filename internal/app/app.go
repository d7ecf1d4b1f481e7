// Package app implements the application layer for tsrun.
package app

import (
	"cmp"
	"io"
	"os"
	"time"

	"go.trai.ch/tsrun/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/tsrun/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
	"go.trai.ch/tsrun/internal/ui/diagnostics"
	"go.trai.ch/tsrun/internal/ui/output"
)

// App represents the main application logic.
type App struct {
	transpiler ports.Transpiler
	host       ports.Host
	cache      ports.OutputCache
	watcher    ports.Watcher
	changes    *watcher.ChangeFilter
	logger     ports.Logger
	stdout     io.Writer
	stderr     io.Writer
	debounce   time.Duration
}

// New creates a new App instance.
func New(
	transpiler ports.Transpiler,
	host ports.Host,
	cache ports.OutputCache,
	w ports.Watcher,
	changes *watcher.ChangeFilter,
	log ports.Logger,
) *App {
	return &App{
		transpiler: transpiler,
		host:       host,
		cache:      cache,
		watcher:    w,
		changes:    changes,
		logger:     log,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// WithOutput redirects compiled output and diagnostics.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithDebounce sets the window used to batch file changes in Watch.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// SetLogging configures the logger for the current command.
func (a *App) SetLogging(verbose, json bool) {
	a.logger.SetJSON(json)
	a.logger.SetVerbose(verbose)
}

// RequestOptions are the compile settings shared by every command.
type RequestOptions struct {
	// Project is the configuration file name searched for.
	Project string
	// SkipProject disables configuration discovery.
	SkipProject bool
	// TranspileOnly skips semantic diagnostics.
	TranspileOnly bool
	// CompilerOptions is a JSON object of overrides.
	CompilerOptions string
	// IgnoreDiagnostics are extra codes to drop.
	IgnoreDiagnostics []int
	// NoCache bypasses the output cache.
	NoCache bool
	// CacheDir moves the output cache.
	CacheDir string
	// Warn reports diagnostics without failing.
	Warn bool
	// Pretty renders diagnostics with source context and colors.
	Pretty bool
}

// request is a RequestOptions merged with tsrun.yaml and the defaults.
type request struct {
	opts   domain.TranspileOptions
	warn   bool
	pretty bool
}

// resolve layers the defaults, tsrun.yaml and the flags, in that order.
func (a *App) resolve(ro RequestOptions) (request, error) {
	cwd := a.host.CurrentDirectory()

	svc, err := config.LoadServiceOptions(cwd)
	if err != nil {
		return request{}, err
	}

	opts := domain.DefaultTranspileOptions()
	svc.Apply(&opts)

	if ro.Project != "" {
		opts.ConfigFileName = ro.Project
	}
	if ro.SkipProject {
		opts.SkipProject = true
	}
	if ro.TranspileOnly {
		opts.TypeCheck = false
	}
	overrides, err := config.ParseCompilerOptions(ro.CompilerOptions)
	if err != nil {
		return request{}, err
	}
	opts.CompilerOptions = opts.CompilerOptions.Merge(overrides)
	opts.IgnoreDiagnostics = append(opts.IgnoreDiagnostics, ro.IgnoreDiagnostics...)
	if ro.NoCache {
		opts.NoCache = true
	}

	if dir := cmp.Or(ro.CacheDir, svc.CacheDir); dir != "" {
		a.cache.SetDir(domain.Canonicalize(cwd, dir))
	}

	return request{opts: opts, warn: ro.Warn || svc.Warn, pretty: ro.Pretty}, nil
}

func (a *App) formatter(pretty bool) *diagnostics.Formatter {
	return diagnostics.NewFormatter(a.host.CurrentDirectory(), pretty, output.Profile(a.stderr))
}
