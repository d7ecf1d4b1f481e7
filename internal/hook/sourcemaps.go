package hook

import (
	"encoding/base64"
	"encoding/json"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

const inlinePrefix = "//# sourceMappingURL=data:application/json;charset=utf-8;base64,"

var sourceMappingURL = regexp.MustCompile(`(?m)^//# sourceMappingURL=(\S*)\s*$`)

// SourceMaps is the side table of source maps for compiled files, keyed by source path.
type SourceMaps struct {
	mu   sync.RWMutex
	maps map[string]string
}

// NewSourceMaps creates an empty table.
func NewSourceMaps() *SourceMaps {
	return &SourceMaps{maps: make(map[string]string)}
}

// Store records the source map of path.
func (m *SourceMaps) Store(path, sourceMap string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maps[path] = sourceMap
}

// Retrieve returns the source map of path for stack trace rewriting.
func (m *SourceMaps) Retrieve(path string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sm, ok := m.maps[path]
	return sm, ok
}

// Clear drops every map.
func (m *SourceMaps) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.maps)
}

// attachSourceMap points a separate map at the source file and appends it inline to output,
// replacing any existing sourceMappingURL comment.
func attachSourceMap(path, output, sourceMap string) (string, string) {
	sourceMap = retarget(path, sourceMap)
	base := strings.TrimRight(stripSourceMappingURL(output), "\n")
	return base + "\n" + inlinePrefix + base64.StdEncoding.EncodeToString([]byte(sourceMap)), sourceMap
}

// inlineSourceMap decodes a base64 map already embedded in output.
func inlineSourceMap(output string) (string, bool) {
	matches := sourceMappingURL.FindAllStringSubmatch(output, -1)
	if len(matches) == 0 {
		return "", false
	}
	url := matches[len(matches)-1][1]
	_, data, ok := strings.Cut(url, ";base64,")
	if !ok || !strings.HasPrefix(url, "data:") {
		return "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

func stripSourceMappingURL(output string) string {
	return sourceMappingURL.ReplaceAllString(output, "")
}

// Relocate rewrites a map written next to output so that its file and sources resolve
// from there. Maps that are not JSON objects are returned unchanged.
func Relocate(sourceMap, source, output string) string {
	ref := source
	if rel, err := filepath.Rel(filepath.Dir(output), source); err == nil {
		ref = filepath.ToSlash(rel)
	}
	return rewrite(sourceMap, filepath.Base(output), ref)
}

// retarget rewrites the map's file and sources to the absolute source path.
func retarget(path, sourceMap string) string {
	return rewrite(sourceMap, filepath.Base(path), path)
}

func rewrite(sourceMap, file, source string) string {
	var body map[string]any
	if err := json.Unmarshal([]byte(sourceMap), &body); err != nil {
		return sourceMap
	}
	body["file"] = file
	body["sources"] = []string{source}
	delete(body, "sourceRoot")

	out, err := json.Marshal(body)
	if err != nil {
		return sourceMap
	}
	return string(out)
}
