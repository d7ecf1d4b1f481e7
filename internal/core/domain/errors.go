package domain

import "go.trai.ch/zerr"

var (
	// ErrTranspileFailed is returned by hooks in hard-fail mode when a result carries error diagnostics.
	ErrTranspileFailed = zerr.New("transpilation failed")

	// ErrConfigNotFound is returned when no project configuration exists above a directory.
	ErrConfigNotFound = zerr.New("could not find project configuration")

	// ErrConfigInvalid is returned when a project configuration produced error diagnostics.
	ErrConfigInvalid = zerr.New("project configuration is invalid")

	// ErrOptionsReadFailed is returned when the service options file cannot be read.
	ErrOptionsReadFailed = zerr.New("failed to read options file")

	// ErrOptionsParseFailed is returned when the service options file cannot be parsed.
	ErrOptionsParseFailed = zerr.New("failed to parse options file")

	// ErrInvalidCompilerOptions is returned when compiler option overrides are not a JSON object.
	ErrInvalidCompilerOptions = zerr.New("compiler options must be a JSON object")

	// ErrContextCreateFailed is returned when a compilation context could not be built.
	ErrContextCreateFailed = zerr.New("failed to create compilation context")

	// ErrCacheReadFailed is returned when a cache record cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache record")

	// ErrCacheMarshalFailed is returned when a cache record cannot be marshaled.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache record")

	// ErrCacheUnmarshalFailed is returned when a cache record cannot be unmarshaled.
	ErrCacheUnmarshalFailed = zerr.New("failed to unmarshal cache record")

	// ErrCacheWriteFailed is returned when a cache record cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache record")

	// ErrCacheCleanFailed is returned when the cache directory cannot be removed.
	ErrCacheCleanFailed = zerr.New("failed to clean cache directory")

	// ErrCheckerFailed is returned when the type checker process could not be run.
	ErrCheckerFailed = zerr.New("type checker failed")

	// ErrOutputWriteFailed is returned when a compiled file cannot be written to the output directory.
	ErrOutputWriteFailed = zerr.New("failed to write output file")

	// ErrSourceDirMissing is returned when the build source directory does not exist.
	ErrSourceDirMissing = zerr.New("source directory does not exist")

	// ErrBuildFailed is returned when at least one file of a build produced error diagnostics.
	ErrBuildFailed = zerr.New("build failed")

	// ErrNoInputFiles is returned when the transpile command receives no files.
	ErrNoInputFiles = zerr.New("no input files specified")

	// ErrOutFileMultipleInputs is returned when --out-file is combined with more than one input.
	ErrOutFileMultipleInputs = zerr.New("an output file can only be used with a single input")

	// ErrWatchFailed is returned when the source directory cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch source directory")

	// ErrFileReadFailed is returned when a source file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")
)
