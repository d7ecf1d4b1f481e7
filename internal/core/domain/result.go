package domain

// Route records which path of the dispatcher produced a result.
type Route uint8

const (
	// RouteIsolated means the file was compiled on its own, without type information.
	RouteIsolated Route = iota
	// RouteContext means the file was compiled by a project compilation context.
	RouteContext
	// RouteConfigError means the nearest configuration was invalid.
	RouteConfigError
)

// String returns the lowercase name of the route.
func (r Route) String() string {
	switch r {
	case RouteContext:
		return "context"
	case RouteConfigError:
		return "config-error"
	default:
		return "isolated"
	}
}

// TranspilationResult is the outcome of one transpile call.
type TranspilationResult struct {
	// FileName is the canonical input path.
	FileName string
	// OutputText is the compiled script; empty when compilation could not produce output.
	OutputText string
	// SourceMapText is the separate source map, if one was produced.
	SourceMapText string
	// Diagnostics are ordered: syntactic before semantic.
	Diagnostics []Diagnostic
	// Route is the dispatcher path that produced the result.
	Route Route
	// ConfigPath is the configuration used, or "" for settings not backed by a configuration.
	ConfigPath string
	// Cached is true when OutputText was served from the output cache.
	Cached bool
	// Cwd is the working directory of the host that produced the result,
	// used to shorten file names when diagnostics are formatted later.
	Cwd string
}

// HasErrors reports whether the result carries an error diagnostic.
func (r TranspilationResult) HasErrors() bool {
	return HasErrors(r.Diagnostics)
}
