package esbuild_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsrun/internal/adapters/esbuild"
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newFrontend(t *testing.T) (*esbuild.Frontend, *mocks.MockTypeChecker, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	checker := mocks.NewMockTypeChecker(ctrl)
	log := mocks.NewMockLogger(ctrl)
	return esbuild.NewFrontend(checker, log), checker, log
}

func settings(values map[string]any) domain.CompilerSettings {
	return domain.NewCompilerSettings(values)
}

func TestFrontend_Version(t *testing.T) {
	f, _, _ := newFrontend(t)
	assert.True(t, strings.HasPrefix(f.Version(), "esbuild@v"), f.Version())
}

func TestFrontend_Clear(t *testing.T) {
	f, checker, _ := newFrontend(t)
	checker.EXPECT().Clear()

	f.Clear()
}

func TestTranspileModule_CommonJS(t *testing.T) {
	f, _, _ := newFrontend(t)

	out := f.TranspileModule("/repo/a.ts", "export const x = 1", "", settings(map[string]any{
		"target": "ES2017",
		"module": "commonjs",
	}))

	assert.Empty(t, out.Diagnostics)
	assert.Contains(t, out.OutputText, "module.exports")
	assert.Contains(t, out.OutputText, "const x = 1")
	assert.Empty(t, out.SourceMapText)
}

func TestTranspileModule_ESModule(t *testing.T) {
	f, _, _ := newFrontend(t)

	out := f.TranspileModule("/repo/a.ts", "export const x: number = 1", "", settings(map[string]any{
		"module": "esnext",
	}))

	assert.Empty(t, out.Diagnostics)
	assert.Contains(t, out.OutputText, "export const x = 1")
	assert.NotContains(t, out.OutputText, "module.exports")
}

func TestTranspileModule_SyntaxError(t *testing.T) {
	f, _, _ := newFrontend(t)

	out := f.TranspileModule("/repo/broken.ts", "const x = (1 + 2", "", domain.CompilerSettings{})

	require.NotEmpty(t, out.Diagnostics)
	d := out.Diagnostics[0]
	assert.Equal(t, "/repo/broken.ts", d.File)
	assert.Equal(t, domain.CodeParseFailed, d.Code)
	assert.Equal(t, domain.KindSyntactic, d.Kind)
	assert.Equal(t, domain.CategoryError, d.Category)
	assert.Equal(t, 1, d.Line)
	assert.Positive(t, d.Column)
	assert.Empty(t, out.OutputText)
}

func TestTranspileModule_SourceMaps(t *testing.T) {
	f, _, _ := newFrontend(t)

	t.Run("separate", func(t *testing.T) {
		out := f.TranspileModule("/repo/src/a.ts", "export const x = 1", "", settings(map[string]any{
			"sourceMap": true,
		}))
		require.NotEmpty(t, out.SourceMapText)
		assert.Contains(t, out.SourceMapText, `"a.ts"`)
		assert.NotContains(t, out.SourceMapText, "sourcesContent")
		assert.True(t, strings.HasSuffix(out.OutputText, "//# sourceMappingURL=a.js.map\n"), out.OutputText)
	})

	t.Run("inline sources", func(t *testing.T) {
		out := f.TranspileModule("/repo/src/a.ts", "export const x = 1", "", settings(map[string]any{
			"sourceMap":     true,
			"inlineSources": true,
		}))
		assert.Contains(t, out.SourceMapText, "sourcesContent")
	})

	t.Run("inline", func(t *testing.T) {
		out := f.TranspileModule("/repo/src/a.ts", "export const x = 1", "", settings(map[string]any{
			"inlineSourceMap": true,
		}))
		assert.Empty(t, out.SourceMapText)
		assert.Contains(t, out.OutputText, "sourceMappingURL=data:application/json;base64,")
	})

	t.Run("none", func(t *testing.T) {
		out := f.TranspileModule("/repo/src/a.ts", "export const x = 1", "", domain.CompilerSettings{})
		assert.Empty(t, out.SourceMapText)
		assert.NotContains(t, out.OutputText, "sourceMappingURL")
	})
}

func TestTranspileModule_StrictBanner(t *testing.T) {
	f, _, _ := newFrontend(t)

	strict := f.TranspileModule("/repo/a.ts", "export const x = 1", "", settings(map[string]any{"strict": true}))
	assert.True(t, strings.HasPrefix(strict.OutputText, `"use strict";`), strict.OutputText)

	loose := f.TranspileModule("/repo/a.ts", "export const x = 1", "", domain.CompilerSettings{})
	assert.False(t, strings.HasPrefix(loose.OutputText, `"use strict";`))
}

func TestTranspileModule_JSX(t *testing.T) {
	f, _, _ := newFrontend(t)
	src := "export const el = <div />"

	classic := f.TranspileModule("/repo/a.tsx", src, "", settings(map[string]any{
		"jsx":        "react",
		"jsxFactory": "h",
	}))
	require.Empty(t, classic.Diagnostics)
	assert.Contains(t, classic.OutputText, `h("div"`)

	preserved := f.TranspileModule("/repo/a.tsx", src, "", settings(map[string]any{"jsx": "preserve"}))
	require.Empty(t, preserved.Diagnostics)
	assert.Contains(t, preserved.OutputText, "<div />")
}

func TestTranspileModule_Declaration(t *testing.T) {
	f, _, _ := newFrontend(t)

	out := f.TranspileModule("/repo/types.d.ts", "declare const x: number;", "", domain.CompilerSettings{})
	assert.Equal(t, "", out.OutputText)
	assert.Empty(t, out.Diagnostics)
}

func TestTranspileModule_ProjectDir(t *testing.T) {
	f, _, _ := newFrontend(t)
	s := settings(map[string]any{"outDir": "/repo/out", "sourceMap": true})

	rooted := f.TranspileModule("/repo/src/a.ts", "export const x = 1", "/repo", s)
	assert.Equal(t, []string{"../../src/a.ts"}, mapSources(t, rooted.SourceMapText))

	alone := f.TranspileModule("/repo/src/a.ts", "export const x = 1", "", s)
	assert.Equal(t, []string{"../src/a.ts"}, mapSources(t, alone.SourceMapText))
}

func mapSources(t *testing.T, sourceMap string) []string {
	t.Helper()
	var m struct {
		Sources []string `json:"sources"`
	}
	require.NoError(t, json.Unmarshal([]byte(sourceMap), &m))
	return m.Sources
}
