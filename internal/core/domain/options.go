package domain

import "slices"

// TranspileOptions controls a single transpile request.
type TranspileOptions struct {
	// SkipProject disables configuration discovery; files not claimed by a live
	// context are compiled in isolation with DefaultSettings.
	SkipProject bool
	// TypeCheck requests semantic diagnostics from the configuration's context.
	// When false, files are compiled in isolation using the configuration's settings.
	TypeCheck bool
	// ConfigFileName overrides the configuration file name searched for.
	ConfigFileName string
	// CompilerOptions are overrides applied on top of any configuration's settings.
	CompilerOptions CompilerSettings
	// DefaultSettings are used for isolated compiles when no configuration is found.
	DefaultSettings CompilerSettings
	// IgnoreDiagnostics lists diagnostic codes to drop from results.
	IgnoreDiagnostics []int
	// NoCache bypasses the on-disk output cache.
	NoCache bool
}

// DefaultTranspileOptions returns the options used when a caller supplies none.
func DefaultTranspileOptions() TranspileOptions {
	return TranspileOptions{
		TypeCheck:      true,
		ConfigFileName: DefaultConfigFileName,
		DefaultSettings: NewCompilerSettings(map[string]any{
			"target":    DefaultTarget,
			"module":    DefaultModule,
			"sourceMap": true,
		}),
		IgnoreDiagnostics: slices.Clone(DefaultIgnoredCodes),
	}
}

// EffectiveConfigFileName returns ConfigFileName or the default name.
func (o TranspileOptions) EffectiveConfigFileName() string {
	if o.ConfigFileName == "" {
		return DefaultConfigFileName
	}
	return o.ConfigFileName
}
