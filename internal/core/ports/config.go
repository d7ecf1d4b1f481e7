package ports

import "go.trai.ch/tsrun/internal/core/domain"

// ConfigResolver locates the nearest project configuration file.
//
//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigResolver interface {
	// Find walks from startDir towards the root looking for fileName.
	// The verdict, including "not found", is memoized per directory.
	Find(startDir, fileName string) (string, bool)
	// Clear drops every memoized lookup.
	Clear()
}

// ConfigLoader parses project configuration files.
type ConfigLoader interface {
	// Load parses the configuration at configPath. Repeat calls for the same path refresh and
	// return the same *ParsedConfiguration. Error diagnostics mean the configuration is unusable.
	Load(configPath string) (*domain.ParsedConfiguration, []domain.Diagnostic)
	// Clear drops every parsed configuration.
	Clear()
}
