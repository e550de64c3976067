package ports

import "go.trai.ch/wpbuild/internal/core/domain"

// CacheStore persists optimized artifacts keyed by source signature.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Key returns the signature of a source from its project relative path,
	// its content and the fingerprint of the transform settings.
	Key(relPath string, content []byte, fingerprint string) string

	// Get returns the entry for key, or nil, nil on a miss.
	Get(key string) (*domain.CacheEntry, error)

	// Put stores entry atomically. Concurrent writers of one key: last write wins.
	Put(entry domain.CacheEntry) error

	// Clear removes every entry.
	Clear() error

	// Close releases the underlying database.
	Close() error
}
