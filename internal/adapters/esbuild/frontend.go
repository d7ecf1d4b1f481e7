// Package esbuild implements the compiler front end on top of esbuild's transform API.
package esbuild

import (
	"path/filepath"
	"runtime/debug"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
)

const (
	modulePath      = "github.com/evanw/esbuild"
	fallbackVersion = "v0.25.10"
)

var _ ports.Frontend = (*Frontend)(nil)

// Frontend implements ports.Frontend. Emit and syntax errors come from esbuild; semantic
// diagnostics are delegated to a ports.TypeChecker.
type Frontend struct {
	checker ports.TypeChecker
	logger  ports.Logger
	version string
}

// NewFrontend creates a front end that type-checks with checker.
func NewFrontend(checker ports.TypeChecker, logger ports.Logger) *Frontend {
	return &Frontend{
		checker: checker,
		logger:  logger,
		version: "esbuild@" + moduleVersion(),
	}
}

// Version returns the tag recorded in cache entries.
func (f *Frontend) Version() string {
	return f.version
}

// Clear drops the checker's memoized diagnostics.
func (f *Frontend) Clear() {
	f.checker.Clear()
}

// NewService creates a compilation context for project.
func (f *Frontend) NewService(
	project ports.Project,
	host ports.Host,
	documents ports.DocumentBucket,
) (ports.LanguageService, error) {
	return newService(f, project, host, documents), nil
}

// TranspileModule compiles text on its own, without type information.
func (f *Frontend) TranspileModule(
	fileName, text, projectDir string,
	settings domain.CompilerSettings,
) ports.IsolatedOutput {
	if domain.IsDeclaration(fileName) {
		return ports.IsolatedOutput{}
	}
	if projectDir == "" {
		projectDir = filepath.Dir(fileName)
	}
	out := transpile(fileName, text, projectDir, settings)
	return ports.IsolatedOutput{
		OutputText:    out.code,
		SourceMapText: out.sourceMap,
		Diagnostics:   out.diagnostics,
	}
}

type transpiled struct {
	outputName  string
	code        string
	sourceMap   string
	diagnostics []domain.Diagnostic
}

// transpile runs one esbuild transform. Errors are returned as syntactic diagnostics and
// leave code empty.
func transpile(fileName, text, projectDir string, settings domain.CompilerSettings) transpiled {
	outputName := outputPath(fileName, projectDir, settings)
	result := api.Transform(text, transformOptions(fileName, outputName, settings))

	out := transpiled{outputName: outputName}
	if len(result.Errors) > 0 {
		out.diagnostics = toDiagnostics(fileName, result.Errors)
		return out
	}

	out.code = string(result.Code)
	if len(result.Map) > 0 {
		out.sourceMap = string(result.Map)
		out.code += "//# sourceMappingURL=" + filepath.Base(outputName) + ".map\n"
	}
	return out
}

func toDiagnostics(fileName string, msgs []api.Message) []domain.Diagnostic {
	diags := make([]domain.Diagnostic, 0, len(msgs))
	for _, m := range msgs {
		d := domain.Diagnostic{
			File:     fileName,
			Code:     domain.CodeParseFailed,
			Category: domain.CategoryError,
			Kind:     domain.KindSyntactic,
			Message:  m.Text,
		}
		if loc := m.Location; loc != nil {
			d.Line = loc.Line
			d.Column = loc.Column + 1
			d.LineText = loc.LineText
		}
		diags = append(diags, d)
	}
	return diags
}

func moduleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fallbackVersion
	}
	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			if dep.Replace != nil {
				dep = dep.Replace
			}
			if dep.Version != "" && dep.Version != "(devel)" {
				return dep.Version
			}
		}
	}
	return fallbackVersion
}
