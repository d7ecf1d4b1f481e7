package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/zerr"
)

// configView is the JSON shape printed by ShowConfig.
type configView struct {
	Path            string                  `json:"path"`
	CompilerOptions domain.CompilerSettings `json:"compilerOptions"`
	Files           []string                `json:"files"`
}

// ShowConfig prints the configuration that governs files in dir as JSON.
func (a *App) ShowConfig(_ context.Context, dir string, opts RequestOptions) error {
	req, err := a.resolve(opts)
	if err != nil {
		return err
	}
	if dir == "" {
		dir = "."
	}

	cfg, diags, found := a.transpiler.ResolveConfig(dir, req.opts)
	if !found {
		return zerr.With(domain.ErrConfigNotFound, "dir", domain.Canonicalize(a.host.CurrentDirectory(), dir))
	}
	if cfg == nil || domain.HasErrors(diags) {
		_, _ = io.WriteString(a.stderr, a.formatter(req.pretty).Format(diags))
		path := ""
		if cfg != nil {
			path = cfg.Path()
		}
		return zerr.With(domain.ErrConfigInvalid, "path", path)
	}

	files := cfg.RootFiles()
	if files == nil {
		files = []string{}
	}
	data, err := json.MarshalIndent(configView{
		Path:            cfg.Path(),
		CompilerOptions: cfg.Settings().Merge(req.opts.CompilerOptions),
		Files:           files,
	}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode configuration")
	}
	_, err = fmt.Fprintln(a.stdout, string(data))
	return err
}

// CleanOptions configure the clean command.
type CleanOptions struct {
	// CacheDir overrides the cache location.
	CacheDir string
	// All removes the whole tool directory, not just the output cache.
	All bool
}

// Clean removes the output cache.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	if _, err := a.resolve(RequestOptions{CacheDir: options.CacheDir}); err != nil {
		return err
	}

	a.logger.Info("removing output cache...")
	if err := a.cache.Clean(); err != nil {
		return err
	}
	a.logger.Info("removed output cache " + a.cache.Dir())

	if !options.All {
		return nil
	}

	dir := filepath.Join(a.host.CurrentDirectory(), domain.ToolDirName)
	a.logger.Info(fmt.Sprintf("removing %s...", domain.ToolDirName))
	if err := os.RemoveAll(dir); err != nil && !errors.Is(err, os.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCleanFailed.Error()), "path", dir)
	}
	a.logger.Info("removed " + dir)
	return nil
}
