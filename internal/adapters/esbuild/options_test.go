package esbuild

import (
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/tsrun/internal/core/domain"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		file   string
		module string
		want   api.Format
	}{
		{"a.ts", "", api.FormatCommonJS},
		{"a.ts", "commonjs", api.FormatCommonJS},
		{"a.ts", "esnext", api.FormatESModule},
		{"a.ts", "es2015", api.FormatESModule},
		{"a.ts", "preserve", api.FormatESModule},
		{"a.ts", "amd", api.FormatCommonJS},
		{"a.ts", "nodenext", api.FormatCommonJS},
		{"a.mts", "nodenext", api.FormatESModule},
		{"a.cts", "node16", api.FormatCommonJS},
	}
	for _, tt := range tests {
		t.Run(tt.file+"/"+tt.module, func(t *testing.T) {
			s := domain.NewCompilerSettings(map[string]any{"module": tt.module})
			assert.Equal(t, tt.want, formatFor(tt.file, s))
		})
	}
}

func TestTargetFor(t *testing.T) {
	tests := map[string]api.Target{
		"":       api.ES2020,
		"es3":    api.ES2015,
		"ES5":    api.ES2015,
		"es2017": api.ES2017,
		"es2022": api.ES2022,
		"es2023": api.ESNext,
		"esnext": api.ESNext,
	}
	for target, want := range tests {
		t.Run(target, func(t *testing.T) {
			s := domain.CompilerSettings{}
			if target != "" {
				s = domain.NewCompilerSettings(map[string]any{"target": target})
			}
			assert.Equal(t, want, targetFor(s))
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		settings map[string]any
		want     string
	}{
		{"next to source", "/repo/src/a.ts", nil, "/repo/src/a.js"},
		{"module extension", "/repo/src/a.mts", nil, "/repo/src/a.mjs"},
		{"commonjs extension", "/repo/src/a.cts", nil, "/repo/src/a.cjs"},
		{"tsx", "/repo/src/a.tsx", map[string]any{"jsx": "react"}, "/repo/src/a.js"},
		{"tsx preserved", "/repo/src/a.tsx", map[string]any{"jsx": "preserve"}, "/repo/src/a.jsx"},
		{"outDir", "/repo/src/a.ts", map[string]any{"outDir": "/repo/dist"}, "/repo/dist/src/a.js"},
		{
			"outDir with rootDir",
			"/repo/src/lib/a.ts",
			map[string]any{"outDir": "/repo/dist", "rootDir": "/repo/src"},
			"/repo/dist/lib/a.js",
		},
		{
			"outside rootDir",
			"/other/a.ts",
			map[string]any{"outDir": "/repo/dist", "rootDir": "/repo/src"},
			"/repo/dist/a.js",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.file, "/repo", domain.NewCompilerSettings(tt.settings))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTsconfigRaw(t *testing.T) {
	assert.Empty(t, tsconfigRaw(domain.CompilerSettings{}))

	raw := tsconfigRaw(domain.NewCompilerSettings(map[string]any{
		"experimentalDecorators": true,
		"strict":                 true,
	}))
	assert.JSONEq(t, `{"compilerOptions":{"experimentalDecorators":true}}`, raw)
}
