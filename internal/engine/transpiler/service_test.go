package transpiler_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsrun/internal/adapters/cas"
	"go.trai.ch/tsrun/internal/adapters/config"
	"go.trai.ch/tsrun/internal/adapters/docreg"
	"go.trai.ch/tsrun/internal/adapters/esbuild"
	"go.trai.ch/tsrun/internal/adapters/fs"
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
	"go.trai.ch/tsrun/internal/core/ports/mocks"
	"go.trai.ch/tsrun/internal/engine/transpiler"
	"go.uber.org/mock/gomock"
)

var stamp = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// countingHost records how often each file is read.
type countingHost struct {
	*fs.FSHost

	mu    sync.Mutex
	reads map[string]int
}

func (h *countingHost) ReadFile(path string) ([]byte, error) {
	h.mu.Lock()
	h.reads[path]++
	h.mu.Unlock()
	return h.FSHost.ReadFile(path)
}

func (h *countingHost) readCount(path string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.reads[path]
}

type harness struct {
	files    fstest.MapFS
	host     *countingHost
	checker  *mocks.MockTypeChecker
	log      *mocks.MockLogger
	frontend *esbuild.Frontend
	cacheDir string
	svc      *transpiler.Service
}

func newHarness(t *testing.T, files fstest.MapFS) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		files:    files,
		host:     &countingHost{FSHost: fs.NewFSHost("/repo", files), reads: make(map[string]int)},
		checker:  mocks.NewMockTypeChecker(ctrl),
		log:      mocks.NewMockLogger(ctrl),
		cacheDir: filepath.Join(t.TempDir(), "cache"),
	}
	h.log.EXPECT().Debug(gomock.Any()).AnyTimes()
	h.log.EXPECT().Warn(gomock.Any()).AnyTimes()
	h.frontend = esbuild.NewFrontend(h.checker, h.log)
	h.svc = h.newService()
	return h
}

// newService simulates a fresh process sharing the same files and cache directory.
func (h *harness) newService() *transpiler.Service {
	return transpiler.NewService(
		h.host,
		config.NewResolver(h.host),
		config.NewLoader(h.host, h.log),
		h.frontend,
		docreg.NewRegistry(docreg.DefaultBucketSize),
		cas.NewStore(h.host, h.log, h.frontend.Version(), h.cacheDir),
		h.log,
	)
}

func (h *harness) noSemanticErrors() {
	h.checker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(map[string][]domain.Diagnostic{}, nil).AnyTimes()
}

func file(data string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(data), ModTime: stamp}
}

func transpile(h *harness, path string) domain.TranspilationResult {
	return h.svc.Transpile(context.Background(), path, domain.DefaultTranspileOptions())
}

func TestTranspile_CommonJSProject(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{"compilerOptions": {"target": "ES2017", "module": "commonjs"}}`),
		"a.ts":          file("export const x = 1"),
	})
	h.noSemanticErrors()

	got := transpile(h, "/repo/a.ts")

	assert.Empty(t, got.Diagnostics)
	assert.Contains(t, got.OutputText, "module.exports")
	assert.Contains(t, got.OutputText, "const x = 1")
	assert.Equal(t, domain.RouteContext, got.Route)
	assert.Equal(t, "/repo/tsconfig.json", got.ConfigPath)
	assert.Equal(t, "/repo/a.ts", got.FileName)
	assert.Equal(t, "/repo", got.Cwd)
}

func TestTranspile_RelativePath(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{}`),
		"src/a.ts":      file("export const x = 1"),
	})
	h.noSemanticErrors()

	got := transpile(h, "src/a.ts")

	assert.Equal(t, "/repo/src/a.ts", got.FileName)
	assert.Equal(t, domain.RouteContext, got.Route)
}

func TestTranspile_ContextReuse(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{"compilerOptions": {"module": "commonjs"}}`),
		"a.ts":          file("export const x = 1"),
		"b.ts":          file("export const y = 2"),
	})
	h.noSemanticErrors()

	first := transpile(h, "/repo/a.ts")
	owner, ok := h.svc.Registry().Owner("/repo/a.ts")
	require.True(t, ok)

	second := transpile(h, "/repo/a.ts")
	third := transpile(h, "/repo/b.ts")
	again, ok := h.svc.Registry().Owner("/repo/b.ts")
	require.True(t, ok)

	assert.Same(t, owner, again)
	assert.Equal(t, 1, h.svc.Registry().Len())
	assert.Equal(t, 1, h.host.readCount("/repo/tsconfig.json"))
	assert.Equal(t, first.OutputText, second.OutputText)
	assert.Empty(t, third.Diagnostics)
}

func TestTranspile_NoConfiguration(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"proj/tsconfig.json": file(`{}`),
		"loose/ok.ts":        file("export const x: number = 1"),
		"loose/broken.ts":    file("const x = (1 + 2"),
	})

	ok := transpile(h, "/repo/loose/ok.ts")
	assert.Equal(t, domain.RouteIsolated, ok.Route)
	assert.Empty(t, ok.ConfigPath)
	assert.Empty(t, ok.Diagnostics)
	assert.Contains(t, ok.OutputText, "module.exports")

	broken := transpile(h, "/repo/loose/broken.ts")
	assert.Equal(t, domain.RouteIsolated, broken.Route)
	require.NotEmpty(t, broken.Diagnostics)
	assert.True(t, broken.HasErrors())
	for _, d := range broken.Diagnostics {
		assert.Equal(t, domain.KindSyntactic, d.Kind)
	}
	assert.Zero(t, h.svc.Registry().Len())
}

func TestTranspile_SemanticError(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{"compilerOptions": {"strict": true}}`),
		"a.ts":          file("const x: string = 123"),
	})
	typeErr := domain.Diagnostic{
		File:     "/repo/a.ts",
		Line:     1,
		Column:   7,
		Code:     2322,
		Category: domain.CategoryError,
		Kind:     domain.KindSemantic,
		Message:  "Type 'number' is not assignable to type 'string'.",
	}
	h.checker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(map[string][]domain.Diagnostic{
		"/repo/a.ts": {typeErr},
	}, nil).AnyTimes()

	got := transpile(h, "/repo/a.ts")

	assert.Equal(t, []domain.Diagnostic{typeErr}, got.Diagnostics)
	assert.Contains(t, got.OutputText, "const x = 123")

	entries, err := os.ReadDir(h.cacheDir)
	if err == nil {
		assert.Empty(t, entries, "results with diagnostics are not cached")
	}
}

func TestTranspile_ProjectIsolation(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"p1/tsconfig.json": file(`{}`),
		"p1/a.ts":          file("import { dep } from './dep'; export const a = dep"),
		"p1/dep.ts":        file("export const dep: string = 1"),
		"p2/tsconfig.json": file(`{}`),
		"p2/b.ts":          file("export const b = 2"),
	})
	h.checker.EXPECT().Check(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p ports.Project) (map[string][]domain.Diagnostic, error) {
			if p.ConfigPath() == "/repo/p1/tsconfig.json" {
				return map[string][]domain.Diagnostic{
					"/repo/p1/dep.ts": {{File: "/repo/p1/dep.ts", Code: 2322, Kind: domain.KindSemantic}},
				}, nil
			}
			return map[string][]domain.Diagnostic{}, nil
		}).AnyTimes()

	dep := transpile(h, "/repo/p1/dep.ts")
	b := transpile(h, "/repo/p2/b.ts")

	assert.Len(t, dep.Diagnostics, 1)
	assert.Empty(t, b.Diagnostics)
	assert.Equal(t, "/repo/p2/tsconfig.json", b.ConfigPath)
	assert.Equal(t, 2, h.svc.Registry().Len())
}

func TestTranspile_ConfigurationError(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{"compilerOptions": {"target": "es1999"}}`),
		"a.ts":          file("export const x = 1"),
	})

	got := transpile(h, "/repo/a.ts")

	assert.Equal(t, domain.RouteConfigError, got.Route)
	assert.Empty(t, got.OutputText)
	require.NotEmpty(t, got.Diagnostics)
	assert.Equal(t, domain.CodeOptionValue, got.Diagnostics[0].Code)
	assert.Zero(t, h.svc.Registry().Len())
}

func TestTranspile_UnparseableConfiguration(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{"compilerOptions": `),
		"a.ts":          file("export const x = 1"),
	})

	got := transpile(h, "/repo/a.ts")

	assert.Equal(t, domain.RouteConfigError, got.Route)
	assert.True(t, got.HasErrors())
}

func TestTranspile_FileOutsideProject(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{"compilerOptions": {"module": "esnext"}, "files": ["a.ts"]}`),
		"a.ts":          file("export const x = 1"),
		"other.ts":      file("export const y = 2"),
	})
	h.noSemanticErrors()

	got := transpile(h, "/repo/other.ts")

	assert.Equal(t, domain.RouteIsolated, got.Route)
	assert.Equal(t, "/repo/tsconfig.json", got.ConfigPath)
	assert.Contains(t, got.OutputText, "export const y = 2")
	assert.Empty(t, got.Diagnostics)
}

func TestTranspile_SkipProject(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{"compilerOptions": {"module": "esnext"}}`),
		"a.ts":          file("export const x = 1"),
	})
	opts := domain.DefaultTranspileOptions()
	opts.SkipProject = true

	got := h.svc.Transpile(context.Background(), "/repo/a.ts", opts)

	assert.Equal(t, domain.RouteIsolated, got.Route)
	assert.Empty(t, got.ConfigPath)
	assert.Contains(t, got.OutputText, "module.exports")
	assert.Zero(t, h.host.readCount("/repo/tsconfig.json"))
}

func TestTranspile_TranspileOnly(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{}`),
		"a.ts":          file("const x: string = 123"),
	})
	opts := domain.DefaultTranspileOptions()
	opts.TypeCheck = false

	got := h.svc.Transpile(context.Background(), "/repo/a.ts", opts)

	assert.Equal(t, domain.RouteIsolated, got.Route)
	assert.Empty(t, got.Diagnostics)
}

func TestTranspile_CompilerOptionOverrides(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{"compilerOptions": {"module": "commonjs"}}`),
		"a.ts":          file("export const x = 1"),
	})
	h.noSemanticErrors()
	opts := domain.DefaultTranspileOptions()
	opts.CompilerOptions = domain.NewCompilerSettings(map[string]any{"module": "esnext"})

	got := h.svc.Transpile(context.Background(), "/repo/a.ts", opts)

	assert.Equal(t, domain.RouteContext, got.Route)
	assert.Contains(t, got.OutputText, "export const x = 1")
	assert.NotContains(t, got.OutputText, "module.exports")
}

func TestTranspile_IgnoreDiagnostics(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{}`),
		"a.ts":          file("const x: string = 123"),
	})
	h.checker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(map[string][]domain.Diagnostic{
		"/repo/a.ts": {{File: "/repo/a.ts", Code: 2322, Kind: domain.KindSemantic}},
	}, nil).AnyTimes()
	opts := domain.DefaultTranspileOptions()
	opts.IgnoreDiagnostics = append(opts.IgnoreDiagnostics, 2322)

	got := h.svc.Transpile(context.Background(), "/repo/a.ts", opts)

	assert.Empty(t, got.Diagnostics)
	assert.NotEmpty(t, got.OutputText)
}

func TestTranspile_MissingFile(t *testing.T) {
	h := newHarness(t, fstest.MapFS{})

	got := transpile(h, "/repo/missing.ts")

	require.Len(t, got.Diagnostics, 1)
	assert.Equal(t, domain.CodeCannotReadFile, got.Diagnostics[0].Code)
	assert.Equal(t, domain.RouteIsolated, got.Route)
}

func TestTranspile_IsolatedCache(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"a.ts": file("export const x = 1"),
	})

	first := transpile(h, "/repo/a.ts")
	require.Empty(t, first.Diagnostics)
	assert.False(t, first.Cached)

	h.svc = h.newService()
	second := transpile(h, "/repo/a.ts")
	assert.True(t, second.Cached)
	assert.Equal(t, first.OutputText, second.OutputText)
	assert.Equal(t, first.SourceMapText, second.SourceMapText)
	assert.Equal(t, 1, h.host.readCount("/repo/a.ts"))

	h.files["a.ts"] = &fstest.MapFile{Data: []byte("export const x = 2"), ModTime: stamp.Add(time.Minute)}
	third := transpile(h, "/repo/a.ts")
	assert.False(t, third.Cached)
	assert.Contains(t, third.OutputText, "2")
}

func TestTranspile_StrictChangeInvalidatesCache(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{"compilerOptions": {"module": "commonjs", "strict": true}}`),
		"a.ts":          file("export const x = 1"),
	})
	h.noSemanticErrors()

	first := transpile(h, "/repo/a.ts")
	require.Empty(t, first.Diagnostics)
	assert.Contains(t, first.OutputText, `"use strict"`)

	h.files["tsconfig.json"] = file(`{"compilerOptions": {"module": "commonjs", "strict": false}}`)
	h.svc = h.newService()
	second := transpile(h, "/repo/a.ts")

	assert.False(t, second.Cached)
	assert.NotContains(t, second.OutputText, `"use strict"`)
}

func TestTranspile_TranspileOnlyThenTypeCheckedUnderOutDir(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{"compilerOptions": {"outDir": "out", "sourceMap": true}}`),
		"src/a.ts":      file("export const x = 1"),
	})
	h.noSemanticErrors()
	opts := domain.DefaultTranspileOptions()
	opts.TypeCheck = false

	quick := h.svc.Transpile(context.Background(), "/repo/src/a.ts", opts)
	require.Equal(t, domain.RouteIsolated, quick.Route)

	checked := transpile(h, "/repo/src/a.ts")
	require.Empty(t, checked.Diagnostics)

	h.svc = h.newService()
	opts = domain.DefaultTranspileOptions()
	opts.NoCache = true
	fresh := h.svc.Transpile(context.Background(), "/repo/src/a.ts", opts)

	assert.Equal(t, []string{"../../src/a.ts"}, mapSources(t, fresh.SourceMapText))
	assert.Equal(t, mapSources(t, fresh.SourceMapText), mapSources(t, quick.SourceMapText))
	assert.Equal(t, mapSources(t, fresh.SourceMapText), mapSources(t, checked.SourceMapText))
	assert.Equal(t, fresh.OutputText, checked.OutputText)
}

func mapSources(t *testing.T, sourceMap string) []string {
	t.Helper()
	var m struct {
		Sources []string `json:"sources"`
	}
	require.NoError(t, json.Unmarshal([]byte(sourceMap), &m))
	return m.Sources
}

func TestTranspile_ContextCacheRecomputesDiagnostics(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{}`),
		"a.ts":          file("export const x = 1"),
	})
	gomock.InOrder(
		h.checker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(map[string][]domain.Diagnostic{}, nil),
		h.checker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(map[string][]domain.Diagnostic{
			"/repo/a.ts": {{File: "/repo/a.ts", Code: 2304, Kind: domain.KindSemantic}},
		}, nil),
	)

	first := transpile(h, "/repo/a.ts")
	require.Empty(t, first.Diagnostics)

	h.svc = h.newService()
	second := transpile(h, "/repo/a.ts")

	assert.True(t, second.Cached)
	assert.Equal(t, first.OutputText, second.OutputText)
	require.Len(t, second.Diagnostics, 1)
	assert.Equal(t, 2304, second.Diagnostics[0].Code)
}

func TestTranspile_NoCache(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"a.ts": file("export const x = 1"),
	})
	opts := domain.DefaultTranspileOptions()
	opts.NoCache = true

	got := h.svc.Transpile(context.Background(), "/repo/a.ts", opts)

	require.Empty(t, got.Diagnostics)
	_, err := os.Stat(h.cacheDir)
	assert.True(t, os.IsNotExist(err))
}

func TestTranspile_ClearAll(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{}`),
		"a.ts":          file("export const x = 1"),
	})
	h.noSemanticErrors()

	transpile(h, "/repo/a.ts")
	h.checker.EXPECT().Clear()
	h.svc.ClearAll()
	assert.Zero(t, h.svc.Registry().Len())

	transpile(h, "/repo/a.ts")
	assert.Equal(t, 2, h.host.readCount("/repo/tsconfig.json"))
}

func TestTranspile_Concurrent(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{}`),
		"a.ts":          file("export const x = 1"),
		"b.ts":          file("export const y = 2"),
	})
	h.noSemanticErrors()

	var wg sync.WaitGroup
	results := make([]domain.TranspilationResult, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path := "/repo/a.ts"
			if i%2 == 1 {
				path = "/repo/b.ts"
			}
			results[i] = transpile(h, path)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, h.svc.Registry().Len())
	for i, r := range results {
		assert.Empty(t, r.Diagnostics)
		assert.Equal(t, results[i%2].OutputText, r.OutputText)
	}
}

func TestResolveConfig(t *testing.T) {
	h := newHarness(t, fstest.MapFS{
		"tsconfig.json": file(`{"compilerOptions": {"target": "es2019"}}`),
		"src/a.ts":      file("export const x = 1"),
	})

	cfg, diags, ok := h.svc.ResolveConfig("src", domain.DefaultTranspileOptions())
	require.True(t, ok)
	assert.Empty(t, diags)
	assert.Equal(t, "/repo/tsconfig.json", cfg.Path())
	assert.Equal(t, "es2019", cfg.Settings().Target())
	assert.Equal(t, []string{"/repo/src/a.ts"}, cfg.RootFiles())

	_, _, ok = h.svc.ResolveConfig("/elsewhere", domain.DefaultTranspileOptions())
	assert.False(t, ok)
}
