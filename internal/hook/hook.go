// Package hook is the boundary between a module loader and the transpiler service.
package hook

import (
	"context"

	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
)

// Formatter renders diagnostics for error messages and warnings.
type Formatter interface {
	Format(diags []domain.Diagnostic) string
}

// Options configure a Hook.
type Options struct {
	// Transpile is passed to every transpile request.
	Transpile domain.TranspileOptions
	// Warn reports diagnostics through OnWarn instead of failing the compile.
	Warn bool
	// OnWarn receives formatted diagnostics in warn mode.
	OnWarn func(path, formatted string)
	// Transformers rewrite emitted output, in order.
	Transformers []ports.Transformer
}

// CompileError is returned in hard-fail mode when a file has diagnostics.
type CompileError struct {
	Path        string
	Diagnostics []domain.Diagnostic
	Text        string
}

// Error returns the formatted diagnostics.
func (e *CompileError) Error() string {
	return "unable to compile " + e.Path + ":\n" + e.Text
}

// Unwrap returns domain.ErrTranspileFailed.
func (e *CompileError) Unwrap() error {
	return domain.ErrTranspileFailed
}

// Hook compiles files on behalf of a loader.
type Hook struct {
	transpiler ports.Transpiler
	formatter  Formatter
	maps       *SourceMaps
	opts       Options
}

// New creates a hook backed by transpiler.
func New(transpiler ports.Transpiler, formatter Formatter, opts Options) *Hook {
	return &Hook{
		transpiler: transpiler,
		formatter:  formatter,
		maps:       NewSourceMaps(),
		opts:       opts,
	}
}

// SourceMaps returns the side table filled by Compile.
func (h *Hook) SourceMaps() *SourceMaps {
	return h.maps
}

// Compile returns runnable output for path with its source map inlined.
// In hard-fail mode any remaining diagnostic is returned as a *CompileError.
func (h *Hook) Compile(ctx context.Context, path string) (string, error) {
	res := h.transpiler.Transpile(ctx, path, h.opts.Transpile)
	if res.FileName != "" {
		path = res.FileName
	}
	output := res.OutputText
	diags := domain.FilterDiagnostics(res.Diagnostics, h.opts.Transpile.IgnoreDiagnostics)

	if output != "" {
		for _, t := range h.opts.Transformers {
			next, err := t.Transform(path, output)
			if err != nil {
				diags = append(diags, domain.TransformFailure(path, err))
				break
			}
			output = next
		}
	}

	if len(diags) > 0 {
		formatted := h.formatter.Format(diags)
		if !h.opts.Warn {
			return "", &CompileError{Path: path, Diagnostics: diags, Text: formatted}
		}
		if h.opts.OnWarn != nil {
			h.opts.OnWarn(path, formatted)
		}
	}

	if output == "" {
		return "", nil
	}

	switch {
	case res.SourceMapText != "":
		var sm string
		output, sm = attachSourceMap(path, output, res.SourceMapText)
		h.maps.Store(path, sm)
	default:
		if sm, ok := inlineSourceMap(output); ok {
			h.maps.Store(path, sm)
		}
	}
	return output, nil
}
