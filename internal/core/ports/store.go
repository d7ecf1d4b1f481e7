package ports

import "go.trai.ch/tsrun/internal/core/domain"

// OutputCache persists emitted output between processes.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type OutputCache interface {
	// Read returns a record that is valid for the file's current modification time,
	// the running compiler version and settings. Any failure is a miss.
	Read(filePath string, settings domain.CompilerSettings) (*domain.CacheRecord, bool)
	// Write stores a result. Failures are swallowed.
	Write(filePath string, settings domain.CompilerSettings, result domain.TranspilationResult)
	// Clean removes every cached record.
	Clean() error
	// Dir returns the cache directory.
	Dir() string
	// SetDir moves the cache to dir for subsequent calls.
	SetDir(dir string)
}
