package tsc

import (
	"strconv"
	"strings"

	"go.trai.ch/tsrun/internal/core/domain"
)

// cliExcluded are options that only steer emit or output locations. The checker never
// emits, so they are left out of the command line.
var cliExcluded = map[string]struct{}{
	"composite":           {},
	"declaration":         {},
	"declarationDir":      {},
	"declarationMap":      {},
	"emitDeclarationOnly": {},
	"incremental":         {},
	"inlineSourceMap":     {},
	"inlineSources":       {},
	"mapRoot":             {},
	"noEmit":              {},
	"outDir":              {},
	"outFile":             {},
	"sourceMap":           {},
	"sourceRoot":          {},
	"tsBuildInfoFile":     {},
}

// buildArgs returns the tsc arguments for checking configPath with settings.
// Object-valued options can only be expressed in a config file and are skipped.
func buildArgs(configPath string, settings domain.CompilerSettings) []string {
	args := []string{"-p", configPath, "--noEmit", "--pretty", "false"}

	for _, name := range settings.Keys() {
		if _, skip := cliExcluded[name]; skip {
			continue
		}
		v, _ := settings.Get(name)
		value, ok := flagValue(v)
		if !ok {
			continue
		}
		args = append(args, "--"+name, value)
	}
	return args
}

func flagValue(v any) (string, bool) {
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t), true
	case string:
		return t, t != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return "", false
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), len(parts) > 0
	case []string:
		return strings.Join(t, ","), len(t) > 0
	default:
		return "", false
	}
}
