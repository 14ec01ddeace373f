package storage

import "context"

// Client defines the interface for storing generated visualization artifacts
type Client interface {
	// Close closes the client
	Close() error

	// StoreFile stores a file at the specified path, overwriting any
	// previous content
	StoreFile(ctx context.Context, filePath string, fileData []byte) error

	// FileExists checks if a file exists at the specified path
	FileExists(ctx context.Context, filePath string) (bool, error)

	// List lists file paths under the given prefix
	List(ctx context.Context, prefix string) ([]string, error)
}
