// Package cas persists emitted output between processes, keyed by canonical file path.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputCache = (*Store)(nil)

// Store implements ports.OutputCache with one JSON file per (path, settings bucket).
type Store struct {
	host    ports.Host
	logger  ports.Logger
	version string

	mu  sync.RWMutex
	dir string
}

// NewStore creates a cache in dir. Records are tagged with the compiler version.
func NewStore(host ports.Host, logger ports.Logger, version, dir string) *Store {
	return &Store{
		host:    host,
		logger:  logger,
		version: version,
		dir:     dir,
	}
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// SetDir moves the cache to dir.
func (s *Store) SetDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir = dir
}

// Read returns the record for filePath if it is still valid for the file's modification time,
// the compiler version and the emit-affecting settings. Every failure is a miss.
func (s *Store) Read(filePath string, settings domain.CompilerSettings) (*domain.CacheRecord, bool) {
	mtime, err := s.host.ModTime(filePath)
	if err != nil {
		return nil, false
	}

	rec, err := s.get(filePath, settings)
	if err != nil {
		s.logger.Debug(fmt.Sprintf("cache read %s: %v", filePath, err))
		return nil, false
	}
	if rec == nil || rec.FilePath != filePath {
		return nil, false
	}
	if !rec.Valid(mtime.UnixNano(), s.version, settings) {
		s.logger.Debug("cache stale: " + filePath)
		return nil, false
	}
	return rec, true
}

// Write stores a clean result. Results carrying diagnostics are never stored, and
// failures are logged at debug level and otherwise ignored.
func (s *Store) Write(filePath string, settings domain.CompilerSettings, result domain.TranspilationResult) {
	if len(result.Diagnostics) > 0 || result.OutputText == "" {
		return
	}

	mtime, err := s.host.ModTime(filePath)
	if err != nil {
		return
	}

	rec := domain.CacheRecord{
		FilePath:        filePath,
		Mtime:           mtime.UnixNano(),
		CompilerVersion: s.version,
		Settings:        settings.EmitAffecting(),
		OutputText:      result.OutputText,
		SourceMapText:   result.SourceMapText,
	}
	if err := s.put(rec, settings); err != nil {
		s.logger.Debug(fmt.Sprintf("cache write %s: %v", filePath, err))
	}
}

// Clean removes the cache directory.
func (s *Store) Clean() error {
	dir := s.Dir()
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCleanFailed.Error()), "dir", dir)
	}
	return nil
}

func (s *Store) get(filePath string, settings domain.CompilerSettings) (*domain.CacheRecord, error) {
	filename := s.getFilename(filePath, settings)
	//nolint:gosec // Path is constructed from the cache directory and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	var rec domain.CacheRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheUnmarshalFailed.Error())
	}
	return &rec, nil
}

// put writes through a temporary file and a rename so readers never see a partial record.
func (s *Store) put(rec domain.CacheRecord, settings domain.CompilerSettings) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	filename := s.getFilename(rec.FilePath, settings)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, ".record-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // No-op once renamed

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

// getFilename is <dir>/<bucket>/<xxhash64(path, bucket)>.json.
func (s *Store) getFilename(filePath string, settings domain.CompilerSettings) string {
	bucket := settings.Bucket()

	h := xxhash.New()
	_, _ = h.WriteString(filePath)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(bucket)

	return filepath.Join(s.Dir(), bucket, fmt.Sprintf("%016x.json", h.Sum64()))
}
