package domain

import (
	"encoding/json"
	"maps"
	"reflect"
	"slices"
	"strings"
)

const (
	// DefaultTarget is the language level used when settings do not name one.
	DefaultTarget = "es2020"
	// DefaultModule is the module format used when settings do not name one.
	DefaultModule = "commonjs"
)

// SourceMapMode selects how source maps are produced.
type SourceMapMode uint8

const (
	// SourceMapNone disables source maps.
	SourceMapNone SourceMapMode = iota
	// SourceMapSeparate emits the map as a separate artifact.
	SourceMapSeparate
	// SourceMapInline embeds the map in the output text.
	SourceMapInline
)

// emitAffecting lists the options that change emitted bytes.
var emitAffecting = map[string]struct{}{
	"allowJs":                 {},
	"alwaysStrict":            {},
	"downlevelIteration":      {},
	"emitDecoratorMetadata":   {},
	"esModuleInterop":         {},
	"experimentalDecorators":  {},
	"importHelpers":           {},
	"importsNotUsedAsValues":  {},
	"inlineSourceMap":         {},
	"inlineSources":           {},
	"jsx":                     {},
	"jsxFactory":              {},
	"jsxFragmentFactory":      {},
	"jsxImportSource":         {},
	"mapRoot":                 {},
	"module":                  {},
	"newLine":                 {},
	"outDir":                  {},
	"preserveValueImports":    {},
	"removeComments":          {},
	"rootDir":                 {},
	"sourceMap":               {},
	"sourceRoot":              {},
	"strict":                  {},
	"target":                  {},
	"useDefineForClassFields": {},
	"verbatimModuleSyntax":    {},
}

// lowercased lists enum-like options whose string values compare case-insensitively.
var lowercased = map[string]struct{}{
	"target":                 {},
	"module":                 {},
	"moduleResolution":       {},
	"jsx":                    {},
	"newLine":                {},
	"importsNotUsedAsValues": {},
}

// IsEmitAffecting reports whether the named option changes emitted bytes.
func IsEmitAffecting(name string) bool {
	_, ok := emitAffecting[name]
	return ok
}

// CompilerSettings is an immutable set of compiler options keyed by their tsconfig names.
// The zero value is an empty settings object.
type CompilerSettings struct {
	values map[string]any
}

// NewCompilerSettings copies values into a new settings object.
func NewCompilerSettings(values map[string]any) CompilerSettings {
	if len(values) == 0 {
		return CompilerSettings{}
	}
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = normalizeValue(k, v)
	}
	return CompilerSettings{values: out}
}

// normalizeValue folds enum strings and integer types so values decoded from JSON, YAML
// and Go literals compare equal.
func normalizeValue(name string, v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if _, ok := lowercased[name]; ok {
			return strings.ToLower(n)
		}
	}
	return v
}

// Len returns the number of options set.
func (s CompilerSettings) Len() int {
	return len(s.values)
}

// Get returns the raw value of an option.
func (s CompilerSettings) Get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// String returns a string option, or "" when unset or not a string.
func (s CompilerSettings) String(name string) string {
	v, _ := s.values[name].(string)
	return v
}

// Bool returns a boolean option, or false when unset or not a boolean.
func (s CompilerSettings) Bool(name string) bool {
	v, _ := s.values[name].(bool)
	return v
}

// Keys returns the option names in sorted order.
func (s CompilerSettings) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Map returns a copy of the underlying option map.
func (s CompilerSettings) Map() map[string]any {
	return maps.Clone(s.values)
}

// With returns a copy with one option replaced.
func (s CompilerSettings) With(name string, value any) CompilerSettings {
	out := s.Map()
	if out == nil {
		out = make(map[string]any, 1)
	}
	out[name] = value
	return NewCompilerSettings(out)
}

// Merge returns a new settings object with overrides applied on top of s.
// Overrides always win; neither input is modified.
func (s CompilerSettings) Merge(overrides CompilerSettings) CompilerSettings {
	if overrides.Len() == 0 {
		return s
	}
	out := make(map[string]any, len(s.values)+len(overrides.values))
	maps.Copy(out, s.values)
	maps.Copy(out, overrides.values)
	return CompilerSettings{values: out}
}

// EmitAffecting returns the subset of options that change emitted bytes.
func (s CompilerSettings) EmitAffecting() CompilerSettings {
	out := make(map[string]any)
	for k, v := range s.values {
		if IsEmitAffecting(k) {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return CompilerSettings{}
	}
	return CompilerSettings{values: out}
}

// EqualEmit compares the emit-affecting subsets of two settings objects.
// Key order is irrelevant.
func (s CompilerSettings) EqualEmit(other CompilerSettings) bool {
	a := s.EmitAffecting()
	b := other.EmitAffecting()
	if a.Len() != b.Len() {
		return false
	}
	for k, av := range a.values {
		bv, ok := b.values[k]
		if !ok || !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}

// Target returns the lowercased language level.
func (s CompilerSettings) Target() string {
	if t := s.String("target"); t != "" {
		return t
	}
	return DefaultTarget
}

// Module returns the lowercased module format.
func (s CompilerSettings) Module() string {
	if m := s.String("module"); m != "" {
		return m
	}
	return DefaultModule
}

// JSX returns the lowercased JSX mode, or "" when JSX is not configured.
func (s CompilerSettings) JSX() string {
	return s.String("jsx")
}

// SourceMapMode reports how source maps should be produced.
// An inline map takes precedence over a separate one.
func (s CompilerSettings) SourceMapMode() SourceMapMode {
	switch {
	case s.Bool("inlineSourceMap"):
		return SourceMapInline
	case s.Bool("sourceMap"):
		return SourceMapSeparate
	default:
		return SourceMapNone
	}
}

// Bucket returns the human-readable cache bucket name, e.g. "commonjs-es2017".
func (s CompilerSettings) Bucket() string {
	return s.Module() + "-" + s.Target()
}

// MarshalJSON encodes the settings as a plain JSON object.
func (s CompilerSettings) MarshalJSON() ([]byte, error) {
	if s.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.values)
}

// UnmarshalJSON decodes a plain JSON object into settings.
func (s *CompilerSettings) UnmarshalJSON(data []byte) error {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewCompilerSettings(values)
	return nil
}
