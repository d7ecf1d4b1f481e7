package ports

import (
	"context"

	"go.trai.ch/tsrun/internal/core/domain"
)

// Project is the live view of a configuration that a compilation context is bound to.
// Every method reflects the latest loader refresh.
type Project interface {
	// ConfigPath returns the configuration file the project was created for.
	ConfigPath() string
	// RootFiles returns the current root file set.
	RootFiles() []string
	// Contains reports whether the canonical path is a current root file.
	Contains(path string) bool
	// Settings returns the effective settings, overrides applied.
	Settings() domain.CompilerSettings
}

// OutputFile is one artifact produced by emit.
type OutputFile struct {
	Name string
	Text string
}

// EmitOutput is the result of emitting one file.
type EmitOutput struct {
	Skipped bool
	Files   []OutputFile
}

// IsolatedOutput is the result of a single-file transpile.
type IsolatedOutput struct {
	OutputText    string
	SourceMapText string
	Diagnostics   []domain.Diagnostic
}

// Frontend is the compiler front end.
//
//go:generate mockgen -source=frontend.go -destination=mocks/mock_frontend.go -package=mocks
type Frontend interface {
	// Version returns the tag recorded in cache entries.
	Version() string
	// NewService creates an incremental compilation context for a project.
	NewService(project Project, host Host, documents DocumentBucket) (LanguageService, error)
	// TranspileModule compiles one file's text without type information. Output locations
	// are computed as for a project rooted at projectDir, or at the file's directory when empty.
	TranspileModule(fileName, text, projectDir string, settings domain.CompilerSettings) IsolatedOutput
	// Clear drops results memoized across contexts.
	Clear()
}

// LanguageService is one incremental compilation context.
type LanguageService interface {
	// Project returns the project the context is bound to.
	Project() Project
	// Owns reports whether the canonical path is one of the project's current root files.
	Owns(path string) bool
	// EmitOutput emits path.
	EmitOutput(path string) (EmitOutput, error)
	// SyntacticDiagnostics returns the parse errors of path.
	SyntacticDiagnostics(path string) []domain.Diagnostic
	// SemanticDiagnostics returns the type errors of path.
	SemanticDiagnostics(ctx context.Context, path string) []domain.Diagnostic
}

// TypeChecker computes semantic diagnostics for a whole project.
type TypeChecker interface {
	// Check returns diagnostics grouped by canonical file path.
	Check(ctx context.Context, project Project) (map[string][]domain.Diagnostic, error)
	// Clear drops every memoized result.
	Clear()
}
