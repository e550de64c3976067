// Package cas implements the content addressed image cache on bbolt.
package cas

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.etcd.io/bbolt"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var bucketName = []byte("images")

// Store implements ports.CacheStore with a bbolt database.
// The database is opened on first use so that commands which never touch
// the cache do not take the file lock.
type Store struct {
	path string
	now  func() time.Time

	mu sync.Mutex
	db *bbolt.DB
}

var _ ports.CacheStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for LastUsed timestamps written by Put.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store backed by the database file at path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path: filepath.Clean(path),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signature returns the cache key of a source: its project relative path,
// its content and the fingerprint of the optimizer settings.
func Signature(relPath string, content []byte, fingerprint string) string {
	d := xxhash.New()
	for _, part := range [][]byte{[]byte(filepath.ToSlash(relPath)), content, []byte(fingerprint)} {
		_, _ = d.Write(part)
		_, _ = d.Write([]byte{0})
	}
	var sum [8]byte
	return hex.EncodeToString(d.Sum(sum[:0]))
}

// Key implements ports.CacheStore with Signature.
func (s *Store) Key(relPath string, content []byte, fingerprint string) string {
	return Signature(relPath, content, fingerprint)
}

func (s *Store) open() (*bbolt.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", s.path)
	}

	db, err := bbolt.Open(s.path, domain.PrivateFilePerm, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", s.path)
	}
	s.db = db
	return db, nil
}

// Get returns the entry stored under key in a read-only transaction, so
// lookups run concurrently. A miss returns nil, nil.
func (s *Store) Get(key string) (*domain.CacheEntry, error) {
	db, err := s.open()
	if err != nil {
		return nil, domain.Classify(domain.ErrCache, err)
	}

	var entry *domain.CacheEntry
	err = db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		data := b.Get([]byte(key))
		if data == nil {
			return nil
		}

		var e domain.CacheEntry
		if err := json.Unmarshal(data, &e); err != nil {
			return zerr.Wrap(err, "failed to decode cache entry")
		}
		entry = &e
		return nil
	})
	if err != nil {
		return nil, domain.Classify(domain.ErrCache, zerr.With(err, "key", key))
	}
	return entry, nil
}

// Put stores entry in a single transaction. The last writer of a key wins.
func (s *Store) Put(entry domain.CacheEntry) error {
	db, err := s.open()
	if err != nil {
		return domain.Classify(domain.ErrCache, err)
	}

	if entry.LastUsed.IsZero() {
		entry.LastUsed = s.now()
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return domain.Classify(domain.ErrCache, zerr.Wrap(err, "failed to encode cache entry"))
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return b.Put([]byte(entry.Key), data)
	})
	if err != nil {
		return domain.Classify(domain.ErrCache, zerr.With(zerr.Wrap(err, "failed to store cache entry"), "key", entry.Key))
	}
	return nil
}

// Clear drops every entry.
func (s *Store) Clear() error {
	db, err := s.open()
	if err != nil {
		return domain.Classify(domain.ErrCache, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketName) == nil {
			return nil
		}
		return tx.DeleteBucket(bucketName)
	})
	if err != nil {
		return domain.Classify(domain.ErrCache, zerr.Wrap(err, "failed to clear cache"))
	}
	return nil
}

// Len returns the number of stored entries.
func (s *Store) Len() (int, error) {
	db, err := s.open()
	if err != nil {
		return 0, domain.Classify(domain.ErrCache, err)
	}

	n := 0
	err = db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketName); b != nil {
			n = b.Stats().KeyN
		}
		return nil
	})
	return n, err
}

// Close releases the database if it was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return zerr.Wrap(err, "failed to close cache store")
	}
	return nil
}
