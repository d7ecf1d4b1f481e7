package transpiler

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
)

var scriptExtensions = []string{".js", ".jsx", ".mjs", ".cjs"}

// extract pulls output and diagnostics for path out of a context. When cached is non-nil its
// output is used instead of emitting; diagnostics are always computed. Syntactic diagnostics
// short-circuit semantic ones.
func extract(
	ctx context.Context,
	ls ports.LanguageService,
	path string,
	cached *domain.CacheRecord,
	semantic bool,
) domain.TranspilationResult {
	result := domain.TranspilationResult{
		FileName:   path,
		Route:      domain.RouteContext,
		ConfigPath: ls.Project().ConfigPath(),
	}

	if cached != nil {
		result.OutputText = cached.OutputText
		result.SourceMapText = cached.SourceMapText
		result.Cached = true
	} else {
		out, err := ls.EmitOutput(path)
		if err != nil {
			result.Diagnostics = []domain.Diagnostic{domain.ReadFailure(path, err)}
			return result
		}
		if out.Skipped {
			result.Diagnostics = []domain.Diagnostic{domain.EmitSkipped(path)}
			return result
		}

		main, sourceMap, ok := selectOutputs(out.Files)
		if !ok {
			result.Diagnostics = []domain.Diagnostic{domain.NoOutput(path)}
			return result
		}
		result.OutputText = main
		result.SourceMapText = sourceMap
	}

	if diags := ls.SyntacticDiagnostics(path); len(diags) > 0 {
		result.Diagnostics = diags
		return result
	}
	if semantic {
		result.Diagnostics = ls.SemanticDiagnostics(ctx, path)
	}
	return result
}

// selectOutputs picks the compiled script and its map by file name suffix.
func selectOutputs(files []ports.OutputFile) (main, sourceMap string, ok bool) {
	for _, f := range files {
		name := strings.ToLower(f.Name)
		switch {
		case strings.HasSuffix(name, ".map"):
			sourceMap = f.Text
		case isScript(name):
			main = f.Text
			ok = true
		}
	}
	return main, sourceMap, ok
}

func isScript(name string) bool {
	return slices.Contains(scriptExtensions, filepath.Ext(name))
}
