package config

import "encoding/json"

// Tsconfig represents the structure of a tsconfig.json file after comments are stripped.
// Pointer fields distinguish an absent key from an empty list.
type Tsconfig struct {
	Extends         json.RawMessage `json:"extends"`
	CompilerOptions map[string]any  `json:"compilerOptions"`
	Files           *[]string       `json:"files"`
	Include         *[]string       `json:"include"`
	Exclude         *[]string       `json:"exclude"`
}

// ServiceOptions represents the structure of the optional tsrun.yaml file.
type ServiceOptions struct {
	CacheDir          string         `yaml:"cacheDir"`
	Cache             *bool          `yaml:"cache"`
	TranspileOnly     bool           `yaml:"transpileOnly"`
	SkipProject       bool           `yaml:"skipProject"`
	Project           string         `yaml:"project"`
	CompilerOptions   map[string]any `yaml:"compilerOptions"`
	IgnoreDiagnostics []int          `yaml:"ignoreDiagnostics"`
	Warn              bool           `yaml:"warn"`
}
