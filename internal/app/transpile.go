package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/hook"
	"go.trai.ch/zerr"
)

// TranspileOptions configure the transpile command.
type TranspileOptions struct {
	RequestOptions
	// OutFile receives the output instead of stdout. Only valid with one input.
	OutFile string
}

// Transpile compiles files through the hook and prints runnable output.
// Files with diagnostics are reported on stderr and make the call fail with
// domain.ErrTranspileFailed, unless warn mode is set.
func (a *App) Transpile(ctx context.Context, files []string, opts TranspileOptions) error {
	if len(files) == 0 {
		return domain.ErrNoInputFiles
	}
	if opts.OutFile != "" && len(files) > 1 {
		return zerr.With(domain.ErrOutFileMultipleInputs, "files", len(files))
	}

	req, err := a.resolve(opts.RequestOptions)
	if err != nil {
		return err
	}

	h := hook.New(a.transpiler, a.formatter(req.pretty), hook.Options{
		Transpile: req.opts,
		Warn:      req.warn,
		OnWarn: func(_, formatted string) {
			_, _ = io.WriteString(a.stderr, formatted)
		},
	})

	failed := 0
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := h.Compile(ctx, file)
		if err != nil {
			var compileErr *hook.CompileError
			if !errors.As(err, &compileErr) {
				return err
			}
			_, _ = io.WriteString(a.stderr, compileErr.Text)
			failed++
			continue
		}

		if err := a.emit(out, opts.OutFile); err != nil {
			return err
		}
	}

	if failed > 0 {
		return zerr.With(domain.ErrTranspileFailed, "files", failed)
	}
	return nil
}

func (a *App) emit(text, outFile string) error {
	if outFile == "" {
		_, err := io.WriteString(a.stdout, text)
		return err
	}

	path := domain.Canonicalize(a.host.CurrentDirectory(), outFile)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, []byte(text), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	a.logger.Debug("wrote " + path)
	return nil
}
