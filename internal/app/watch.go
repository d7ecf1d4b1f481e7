package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/tsrun/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Watch builds src into out, then rebuilds changed files until ctx is canceled.
// A change to a configuration file drops all compilation state and rebuilds everything.
func (a *App) Watch(ctx context.Context, src, out string, opts BuildOptions) error {
	b, err := a.newBuilder(src, out, opts)
	if err != nil {
		return err
	}

	if err := b.all(ctx); err != nil && !errors.Is(err, domain.ErrBuildFailed) {
		return err
	}

	if err := a.watcher.Start(ctx, b.src); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", b.src)
	}
	defer func() {
		_ = a.watcher.Stop()
	}()
	a.logger.Info("watching " + b.src + " for changes")

	batches := make(chan []string)
	debouncer := watcher.NewDebouncer(a.debounceWindow(), func(paths []string) {
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})
	defer debouncer.Stop()

	g, ctx := errgroup.WithContext(ctx)

	// Event Routine
	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	// Rebuild Routine
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-batches:
				if err := b.rebuild(ctx, paths); err != nil {
					if ctx.Err() != nil {
						return nil
					}
					if !errors.Is(err, domain.ErrBuildFailed) {
						a.logger.Error(err)
					}
				}
			}
		}
	})

	return g.Wait()
}

func (a *App) debounceWindow() time.Duration {
	if a.debounce > 0 {
		return a.debounce
	}
	return watcher.DefaultDebounceWindow
}

// rebuild handles one debounced batch of changed paths.
func (b *builder) rebuild(ctx context.Context, paths []string) error {
	changed := paths
	if b.app.changes != nil {
		changed = b.app.changes.Changed(paths)
	}
	if len(changed) == 0 {
		return nil
	}

	if slices.ContainsFunc(changed, b.isConfig) {
		b.app.logger.Info("configuration changed, rebuilding")
		b.app.transpiler.ClearAll()
		if b.app.changes != nil {
			b.app.changes.Reset()
		}
		if err := b.reload(); err != nil {
			return err
		}
		return b.all(ctx)
	}

	var files []string
	for _, p := range changed {
		if !b.isSource(p) {
			continue
		}
		if b.app.host.FileExists(p) {
			files = append(files, p)
			continue
		}
		b.remove(p)
	}
	if len(files) == 0 {
		return nil
	}

	b.app.logger.Info(fmt.Sprintf("%d changed, recompiling", len(files)))
	failed, err := b.compile(ctx, files)
	if err != nil {
		return err
	}
	if failed > 0 {
		return zerr.With(domain.ErrBuildFailed, "files", failed)
	}
	return nil
}

// isConfig reports whether path is a project configuration or the service options file.
func (b *builder) isConfig(path string) bool {
	base := filepath.Base(path)
	if base == domain.OptionsFileName || base == b.current().opts.EffectiveConfigFileName() {
		return true
	}
	return strings.HasPrefix(base, "tsconfig") && strings.HasSuffix(base, ".json")
}
