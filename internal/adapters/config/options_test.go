package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsrun/internal/adapters/config"
	"go.trai.ch/tsrun/internal/core/domain"
)

func TestLoadServiceOptions_Missing(t *testing.T) {
	opts, err := config.LoadServiceOptions(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &config.ServiceOptions{}, opts)
}

func TestLoadServiceOptions(t *testing.T) {
	dir := t.TempDir()
	content := `cacheDir: /tmp/tsrun-cache
cache: false
transpileOnly: true
project: tsconfig.build.json
compilerOptions:
  target: ES2022
  experimentalDecorators: true
ignoreDiagnostics: [2307]
warn: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.OptionsFileName), []byte(content), 0o600))

	opts, err := config.LoadServiceOptions(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tsrun-cache", opts.CacheDir)
	require.NotNil(t, opts.Cache)
	assert.False(t, *opts.Cache)
	assert.True(t, opts.TranspileOnly)
	assert.True(t, opts.Warn)
	assert.Equal(t, "tsconfig.build.json", opts.Project)
	assert.Equal(t, []int{2307}, opts.IgnoreDiagnostics)

	req := domain.DefaultTranspileOptions()
	opts.Apply(&req)

	assert.False(t, req.TypeCheck)
	assert.True(t, req.NoCache)
	assert.Equal(t, "tsconfig.build.json", req.ConfigFileName)
	assert.Equal(t, "es2022", req.CompilerOptions.Target())
	assert.True(t, req.CompilerOptions.Bool("experimentalDecorators"))
	assert.Contains(t, req.IgnoreDiagnostics, 2307)
	assert.Contains(t, req.IgnoreDiagnostics, domain.CodeNoInputs)
}

func TestLoadServiceOptions_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.OptionsFileName), []byte("cache: [unclosed"), 0o600))

	_, err := config.LoadServiceOptions(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrOptionsParseFailed.Error())
}

func TestParseCompilerOptions(t *testing.T) {
	settings, err := config.ParseCompilerOptions(`{
		// comments are allowed
		"module": "ESNext",
		"strict": true,
	}`)
	require.NoError(t, err)
	assert.Equal(t, "esnext", settings.Module())
	assert.True(t, settings.Bool("strict"))

	empty, err := config.ParseCompilerOptions("  ")
	require.NoError(t, err)
	assert.Zero(t, empty.Len())

	_, err = config.ParseCompilerOptions(`["module"]`)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidCompilerOptions.Error())

	_, err = config.ParseCompilerOptions(`{"module":`)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidCompilerOptions.Error())
}
