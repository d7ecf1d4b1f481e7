package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsrun/cmd/tsrun/commands"
	"go.trai.ch/tsrun/internal/app"
	"go.trai.ch/tsrun/internal/build"
)

type mockApp struct {
	transpileFunc  func(ctx context.Context, files []string, opts app.TranspileOptions) error
	buildFunc      func(ctx context.Context, src, out string, opts app.BuildOptions) error
	watchFunc      func(ctx context.Context, src, out string, opts app.BuildOptions) error
	showConfigFunc func(ctx context.Context, dir string, opts app.RequestOptions) error
	cleanFunc      func(ctx context.Context, opts app.CleanOptions) error

	verbose bool
	json    bool
}

func (m *mockApp) Transpile(ctx context.Context, files []string, opts app.TranspileOptions) error {
	if m.transpileFunc != nil {
		return m.transpileFunc(ctx, files, opts)
	}
	return nil
}

func (m *mockApp) Build(ctx context.Context, src, out string, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, src, out, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, src, out string, opts app.BuildOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, src, out, opts)
	}
	return nil
}

func (m *mockApp) ShowConfig(ctx context.Context, dir string, opts app.RequestOptions) error {
	if m.showConfigFunc != nil {
		return m.showConfigFunc(ctx, dir, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) SetLogging(verbose, json bool) {
	m.verbose = verbose
	m.json = json
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Transpile(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.TranspileOptions
		var files []string
		mock := &mockApp{
			transpileFunc: func(_ context.Context, f []string, opts app.TranspileOptions) error {
				files = f
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "transpile", "a.ts", "b.ts",
			"-P", "tsconfig.build.json",
			"--skip-project",
			"-T",
			"-O", `{"module":"esnext"}`,
			"--ignore-diagnostics", "2307,7016",
			"--no-cache",
			"--cache-dir", "/tmp/cache",
			"--warn",
			"--pretty=false",
			"-o", "out.js",
			"--verbose",
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.ts", "b.ts"}, files)
		assert.Equal(t, "tsconfig.build.json", captured.Project)
		assert.True(t, captured.SkipProject)
		assert.True(t, captured.TranspileOnly)
		assert.JSONEq(t, `{"module":"esnext"}`, captured.CompilerOptions)
		assert.Equal(t, []int{2307, 7016}, captured.IgnoreDiagnostics)
		assert.True(t, captured.NoCache)
		assert.Equal(t, "/tmp/cache", captured.CacheDir)
		assert.True(t, captured.Warn)
		assert.False(t, captured.Pretty)
		assert.Equal(t, "out.js", captured.OutFile)
		assert.True(t, mock.verbose)
		assert.False(t, mock.json)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.TranspileOptions
		mock := &mockApp{
			transpileFunc: func(_ context.Context, _ []string, opts app.TranspileOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "transpile", "a.ts", "--json")
		require.NoError(t, err)
		assert.True(t, captured.Pretty)
		assert.False(t, captured.SkipProject)
		assert.False(t, captured.TranspileOnly)
		assert.False(t, captured.NoCache)
		assert.Empty(t, captured.Project)
		assert.Empty(t, captured.IgnoreDiagnostics)
		assert.Empty(t, captured.OutFile)
		assert.True(t, mock.json)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			transpileFunc: func(_ context.Context, _ []string, _ app.TranspileOptions) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "transpile", "a.ts")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no files provided", func(t *testing.T) {
		mock := &mockApp{
			transpileFunc: func(_ context.Context, _ []string, _ app.TranspileOptions) error {
				panic("should not be called")
			},
		}

		out, err := execute(t, mock, "transpile")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
	})
}

func TestCommands_Build(t *testing.T) {
	var captured app.BuildOptions
	var src, out string
	mock := &mockApp{
		buildFunc: func(_ context.Context, s, o string, opts app.BuildOptions) error {
			src, out = s, o
			captured = opts
			return nil
		},
	}

	_, err := execute(t, mock, "build", "src", "dist", "--module", "esnext", "-t", "es2022", "-j", "4", "-T")
	require.NoError(t, err)
	assert.Equal(t, "src", src)
	assert.Equal(t, "dist", out)
	assert.Equal(t, "esnext", captured.Module)
	assert.Equal(t, "es2022", captured.Target)
	assert.Equal(t, 4, captured.Jobs)
	assert.True(t, captured.TranspileOnly)

	_, err = execute(t, mock, "build", "src")
	require.Error(t, err)
}

func TestCommands_Watch(t *testing.T) {
	called := false
	mock := &mockApp{
		watchFunc: func(_ context.Context, src, out string, opts app.BuildOptions) error {
			called = true
			assert.Equal(t, "src", src)
			assert.Equal(t, "dist", out)
			assert.Equal(t, "commonjs", opts.Module)
			return nil
		},
	}

	_, err := execute(t, mock, "watch", "src", "dist", "-m", "commonjs")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_ShowConfig(t *testing.T) {
	var dir string
	var captured app.RequestOptions
	mock := &mockApp{
		showConfigFunc: func(_ context.Context, d string, opts app.RequestOptions) error {
			dir = d
			captured = opts
			return nil
		},
	}

	_, err := execute(t, mock, "show-config")
	require.NoError(t, err)
	assert.Equal(t, ".", dir)

	_, err = execute(t, mock, "show-config", "packages/a", "-P", "tsconfig.lib.json")
	require.NoError(t, err)
	assert.Equal(t, "packages/a", dir)
	assert.Equal(t, "tsconfig.lib.json", captured.Project)
}

func TestCommands_Clean(t *testing.T) {
	var captured app.CleanOptions
	mock := &mockApp{
		cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
			captured = opts
			return nil
		},
	}

	_, err := execute(t, mock, "clean", "--all", "--cache-dir", "c")
	require.NoError(t, err)
	assert.True(t, captured.All)
	assert.Equal(t, "c", captured.CacheDir)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tsrun version "+build.Version)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
