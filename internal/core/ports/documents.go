package ports

// Document is one source file's contents at a version.
type Document struct {
	Path    string
	Version int64
	Text    string
}

// DocumentRegistry shares parsed source documents between compilation contexts.
//
//go:generate mockgen -source=documents.go -destination=mocks/mock_documents.go -package=mocks
type DocumentRegistry interface {
	// Bucket returns the shared store for contexts with the same working directory and case sensitivity.
	Bucket(cwd string, caseSensitive bool) DocumentBucket
	// Clear drops every bucket.
	Clear()
}

// DocumentBucket caches documents for one environment.
type DocumentBucket interface {
	// Acquire returns the document for path at version, calling load on a miss or version change.
	Acquire(path string, version int64, load func() (string, error)) (Document, error)
}
