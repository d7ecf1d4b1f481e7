package domain

import (
	"path/filepath"
	"slices"
	"sync"
)

// ParsedConfiguration is one discovered project configuration.
//
// Its identity is the configuration path. Settings and root files may be refreshed in place
// when the same path is loaded again, so holders of the pointer observe the latest values.
type ParsedConfiguration struct {
	path          string
	dir           string
	caseSensitive bool

	mu       sync.RWMutex
	settings CompilerSettings
	files    []string
	keys     map[string]struct{}
}

// NewParsedConfiguration creates a configuration for the canonical config path.
func NewParsedConfiguration(path string, caseSensitive bool) *ParsedConfiguration {
	return &ParsedConfiguration{
		path:          path,
		dir:           filepath.Dir(path),
		caseSensitive: caseSensitive,
		keys:          make(map[string]struct{}),
	}
}

// Path returns the absolute path of the configuration file.
func (c *ParsedConfiguration) Path() string {
	return c.path
}

// Dir returns the directory containing the configuration file.
func (c *ParsedConfiguration) Dir() string {
	return c.dir
}

// Settings returns the current compiler settings.
func (c *ParsedConfiguration) Settings() CompilerSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// RootFiles returns a copy of the current root file list.
func (c *ParsedConfiguration) RootFiles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.files)
}

// Contains reports whether the canonical path is one of the root files.
func (c *ParsedConfiguration) Contains(path string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.keys[PathKey(path, c.caseSensitive)]
	return ok
}

// Refresh replaces the settings and root files in place.
func (c *ParsedConfiguration) Refresh(settings CompilerSettings, files []string) {
	keys := make(map[string]struct{}, len(files))
	for _, f := range files {
		keys[PathKey(f, c.caseSensitive)] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = settings
	c.files = slices.Clone(files)
	c.keys = keys
}
