// Package tsc computes semantic diagnostics by running the TypeScript compiler.
package tsc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.TypeChecker = (*Checker)(nil)

// Fingerprinter hashes the state of a set of files.
type Fingerprinter interface {
	ComputeStateHash(host ports.Host, files []string, salt string) string
}

type checkResult struct {
	stamp string
	diags map[string][]domain.Diagnostic
}

// Checker implements ports.TypeChecker with `tsc --noEmit`.
// Results are memoized per configuration until a root file, the configuration file or the
// effective settings change.
type Checker struct {
	host   ports.Host
	hasher Fingerprinter
	logger ports.Logger

	mu       sync.Mutex
	results  map[string]checkResult
	group    singleflight.Group
	warnOnce sync.Once
}

// NewChecker creates a checker that reads file state through host.
func NewChecker(host ports.Host, hasher Fingerprinter, logger ports.Logger) *Checker {
	return &Checker{
		host:    host,
		hasher:  hasher,
		logger:  logger,
		results: make(map[string]checkResult),
	}
}

// Check returns the project's diagnostics grouped by canonical file path.
// When no compiler installation can be found it reports nothing.
func (c *Checker) Check(ctx context.Context, project ports.Project) (map[string][]domain.Diagnostic, error) {
	configPath := project.ConfigPath()
	settings := project.Settings()

	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCheckerFailed.Error())
	}
	files := append(project.RootFiles(), configPath)
	stamp := c.hasher.ComputeStateHash(c.host, files, configPath+"\x00"+string(raw))

	c.mu.Lock()
	prev, ok := c.results[configPath]
	c.mu.Unlock()
	if ok && prev.stamp == stamp {
		return prev.diags, nil
	}

	v, err, _ := c.group.Do(configPath+"\x00"+stamp, func() (any, error) {
		diags, err := c.run(ctx, configPath, settings)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.results[configPath] = checkResult{stamp: stamp, diags: diags}
		c.mu.Unlock()
		return diags, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string][]domain.Diagnostic), nil
}

func (c *Checker) run(ctx context.Context, configPath string, settings domain.CompilerSettings) (map[string][]domain.Diagnostic, error) {
	name, prefix, ok := c.command(settings)
	if !ok {
		c.warnOnce.Do(func() {
			c.logger.Warn("tsc not found; semantic diagnostics are disabled")
		})
		return map[string][]domain.Diagnostic{}, nil
	}

	dir := filepath.Dir(configPath)
	args := append(prefix, buildArgs(configPath, settings)...)
	c.logger.Debug("type check: " + name + " " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // compiler path resolved from the installation
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	diags := parseOutput(stdout.String(), dir)
	if err == nil {
		return diags, nil
	}

	// tsc exits non-zero whenever it reports errors.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(diags) > 0 {
		return diags, nil
	}

	exitCode := -1
	if exitErr != nil {
		exitCode = exitErr.ExitCode()
	}
	return nil, zerr.With(zerr.With(zerr.Wrap(err, domain.ErrCheckerFailed.Error()),
		"exit_code", exitCode), "stderr", strings.TrimSpace(stderr.String()))
}

// command locates the compiler: the installation next to the default library first, then PATH.
func (c *Checker) command(settings domain.CompilerSettings) (string, []string, bool) {
	if lib := c.host.DefaultLibFilePath(settings); lib != "" {
		script := filepath.Join(filepath.Dir(lib), "..", "bin", "tsc")
		if c.host.FileExists(script) {
			if node, err := exec.LookPath("node"); err == nil {
				return node, []string{filepath.Clean(script)}, true
			}
		}
	}
	if tsc, err := exec.LookPath("tsc"); err == nil {
		return tsc, nil, true
	}
	return "", nil, false
}

// Clear drops every memoized result.
func (c *Checker) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.results)
}
