package domain

import (
	"encoding/json"
	"maps"
)

// CacheRecord is the on-disk representation of a previous emit.
// It never carries diagnostics.
type CacheRecord struct {
	FilePath        string
	Mtime           int64 // UnixNano at compile time
	CompilerVersion string
	// Settings holds only the emit-affecting options used for the compile.
	Settings      CompilerSettings
	OutputText    string
	SourceMapText string
}

// reserved names cannot collide with option names, which are camelCase compiler flags.
const (
	recordFilePath        = "filePath"
	recordMtime           = "mtime"
	recordCompilerVersion = "compilerVersion"
	recordOutputText      = "outputText"
	recordSourceMapText   = "sourceMapText"
)

// Valid reports whether the record may be reused for a file with the given modification time,
// compiler version and settings. Any mismatch invalidates the record.
func (r *CacheRecord) Valid(mtime int64, version string, settings CompilerSettings) bool {
	return r.Mtime == mtime &&
		r.CompilerVersion == version &&
		r.Settings.EqualEmit(settings)
}

// MarshalJSON writes the record as one flat object with the settings inlined.
func (r CacheRecord) MarshalJSON() ([]byte, error) {
	body := r.Settings.EmitAffecting().Map()
	if body == nil {
		body = make(map[string]any, 5)
	}
	body[recordFilePath] = r.FilePath
	body[recordMtime] = r.Mtime
	body[recordCompilerVersion] = r.CompilerVersion
	body[recordOutputText] = r.OutputText
	if r.SourceMapText != "" {
		body[recordSourceMapText] = r.SourceMapText
	}
	return json.Marshal(body)
}

// UnmarshalJSON reads a flat object written by MarshalJSON.
func (r *CacheRecord) UnmarshalJSON(data []byte) error {
	var head struct {
		FilePath        string `json:"filePath"`
		Mtime           int64  `json:"mtime"`
		CompilerVersion string `json:"compilerVersion"`
		OutputText      string `json:"outputText"`
		SourceMapText   string `json:"sourceMapText"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	settings := make(map[string]any, len(body))
	maps.Copy(settings, body)
	for _, k := range []string{
		recordFilePath, recordMtime, recordCompilerVersion, recordOutputText, recordSourceMapText,
	} {
		delete(settings, k)
	}

	*r = CacheRecord{
		FilePath:        head.FilePath,
		Mtime:           head.Mtime,
		CompilerVersion: head.CompilerVersion,
		Settings:        NewCompilerSettings(settings),
		OutputText:      head.OutputText,
		SourceMapText:   head.SourceMapText,
	}
	return nil
}
