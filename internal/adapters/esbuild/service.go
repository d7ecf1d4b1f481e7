package esbuild

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LanguageService = (*service)(nil)

type emitEntry struct {
	version  int64
	settings string
	out      transpiled
}

// service is one compilation context. Transform results are memoized per file by
// modification time and effective settings.
type service struct {
	frontend      *Frontend
	project       ports.Project
	host          ports.Host
	documents     ports.DocumentBucket
	caseSensitive bool

	mu    sync.Mutex
	emits map[string]emitEntry
}

func newService(f *Frontend, project ports.Project, host ports.Host, documents ports.DocumentBucket) *service {
	return &service{
		frontend:      f,
		project:       project,
		host:          host,
		documents:     documents,
		caseSensitive: host.UseCaseSensitiveFileNames(),
		emits:         make(map[string]emitEntry),
	}
}

func (s *service) Project() ports.Project {
	return s.project
}

func (s *service) Owns(path string) bool {
	return s.project.Contains(path)
}

// EmitOutput emits path. A file esbuild rejects still yields an empty main output so the
// caller goes on to collect its syntactic diagnostics.
func (s *service) EmitOutput(path string) (ports.EmitOutput, error) {
	if domain.IsDeclaration(path) {
		return ports.EmitOutput{Skipped: true}, nil
	}

	out, err := s.compile(path)
	if err != nil {
		return ports.EmitOutput{}, err
	}

	files := []ports.OutputFile{{Name: out.outputName, Text: out.code}}
	if out.sourceMap != "" {
		files = append(files, ports.OutputFile{Name: out.outputName + ".map", Text: out.sourceMap})
	}
	return ports.EmitOutput{Files: files}, nil
}

func (s *service) SyntacticDiagnostics(path string) []domain.Diagnostic {
	if domain.IsDeclaration(path) {
		return nil
	}
	out, err := s.compile(path)
	if err != nil {
		return nil
	}
	return out.diagnostics
}

func (s *service) SemanticDiagnostics(ctx context.Context, path string) []domain.Diagnostic {
	byFile, err := s.frontend.checker.Check(ctx, s.project)
	if err != nil {
		s.frontend.logger.Warn(fmt.Sprintf("type check of %s failed: %v", s.project.ConfigPath(), err))
		return nil
	}

	key := domain.PathKey(path, s.caseSensitive)
	for file, diags := range byFile {
		if domain.PathKey(file, s.caseSensitive) == key {
			return diags
		}
	}
	return nil
}

func (s *service) compile(path string) (transpiled, error) {
	mtime, err := s.host.ModTime(path)
	if err != nil {
		return transpiled{}, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	version := mtime.UnixNano()

	settings := s.project.Settings()
	raw, err := json.Marshal(settings)
	if err != nil {
		return transpiled{}, zerr.Wrap(err, "failed to encode settings")
	}
	settingsKey := string(raw)
	key := domain.PathKey(path, s.caseSensitive)

	s.mu.Lock()
	entry, ok := s.emits[key]
	s.mu.Unlock()
	if ok && entry.version == version && entry.settings == settingsKey {
		return entry.out, nil
	}

	doc, err := s.documents.Acquire(path, version, func() (string, error) {
		data, err := s.host.ReadFile(path)
		return string(data), err
	})
	if err != nil {
		return transpiled{}, zerr.Wrap(err, domain.ErrFileReadFailed.Error())
	}

	out := transpile(path, doc.Text, filepath.Dir(s.project.ConfigPath()), settings)

	s.mu.Lock()
	s.emits[key] = emitEntry{version: version, settings: settingsKey, out: out}
	s.mu.Unlock()

	return out, nil
}
