package ports

import (
	"context"

	"go.trai.ch/tsrun/internal/core/domain"
)

// Transpiler is the transpilation service consumed by hooks and commands.
//
//go:generate mockgen -source=transpiler.go -destination=mocks/mock_transpiler.go -package=mocks
type Transpiler interface {
	// Transpile compiles one file. Expected failures are reported as diagnostics.
	Transpile(ctx context.Context, filePath string, opts domain.TranspileOptions) domain.TranspilationResult
	// ResolveConfig returns the configuration that would be used for files in dir.
	ResolveConfig(dir string, opts domain.TranspileOptions) (*domain.ParsedConfiguration, []domain.Diagnostic, bool)
	// ClearAll drops every context, configuration and memoized lookup.
	ClearAll()
}

// Transformer rewrites emitted output; it runs after every successful emit.
type Transformer interface {
	Transform(fileName, outputText string) (string, error)
}
