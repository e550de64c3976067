package cas_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
	"go.trai.ch/wpbuild/internal/adapters/cas"
	"go.trai.ch/wpbuild/internal/core/domain"
)

func newStore(t *testing.T, opts ...cas.Option) (*cas.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.DefaultCachePath())
	store := cas.NewStore(path, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

// writeRaw stores data under key without going through a Store.
func writeRaw(t *testing.T, path, key string, data []byte) {
	t.Helper()
	db, err := bbolt.Open(path, 0o600, nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()
	require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte("images"))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	}))
}

func TestStore_PutAndGet(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store, _ := newStore(t, cas.WithClock(func() time.Time { return now }))

	entry := domain.CacheEntry{Key: "abc", Source: "assets/img/raw/logo.png", Artifact: []byte("png")}
	require.NoError(t, store.Put(entry))

	stored := now
	now = now.Add(time.Hour)
	got, err := store.Get("abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.Artifact, got.Artifact)
	assert.Equal(t, entry.Source, got.Source)
	assert.True(t, got.LastUsed.Equal(stored), "a hit does not rewrite the entry")
}

func TestStore_ConcurrentHits(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, store.Put(domain.CacheEntry{Key: "logo", Artifact: []byte("png")}))

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			got, err := store.Get("logo")
			assert.NoError(t, err)
			if assert.NotNil(t, got) {
				assert.Equal(t, []byte("png"), got.Artifact)
			}
		})
	}
	wg.Wait()
}

func TestStore_CorruptEntry(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, store.Put(domain.CacheEntry{Key: "logo", Artifact: []byte("png")}))
	require.NoError(t, store.Close())
	writeRaw(t, path, "logo", []byte("{not json"))

	_, err := store.Get("logo")
	require.ErrorIs(t, err, domain.ErrCache)
}

func TestStore_Miss(t *testing.T) {
	store, _ := newStore(t)

	got, err := store.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Persistence(t *testing.T) {
	store1, path := newStore(t)
	require.NoError(t, store1.Put(domain.CacheEntry{Key: "k", Artifact: []byte("v")}))
	require.NoError(t, store1.Close())

	store2 := cas.NewStore(path)
	t.Cleanup(func() { _ = store2.Close() })

	got, err := store2.Get("k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []byte("v"), got.Artifact)
}

func TestStore_Clear(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, store.Put(domain.CacheEntry{Key: "a", Artifact: []byte("1")}))
	require.NoError(t, store.Put(domain.CacheEntry{Key: "b", Artifact: []byte("2")}))

	n, err := store.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing an empty store is not an error")

	got, err := store.Get("a")
	require.NoError(t, err)
	assert.Nil(t, got)

	n, err = store.Len()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_LastWriteWins(t *testing.T) {
	store, _ := newStore(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			assert.NoError(t, store.Put(domain.CacheEntry{Key: "same", Artifact: []byte{byte(i)}}))
		})
	}
	wg.Wait()

	got, err := store.Get("same")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Artifact, 1)
}

func TestSignature(t *testing.T) {
	base := cas.Signature("img/a.png", []byte("data"), "v1")

	assert.Len(t, base, 16)
	assert.Equal(t, base, cas.Signature("img/a.png", []byte("data"), "v1"))
	assert.NotEqual(t, base, cas.Signature("img/b.png", []byte("data"), "v1"))
	assert.NotEqual(t, base, cas.Signature("img/a.png", []byte("data!"), "v1"))
	assert.NotEqual(t, base, cas.Signature("img/a.png", []byte("data"), "v2"))
	assert.NotEqual(t,
		cas.Signature("ab", []byte("c"), ""),
		cas.Signature("a", []byte("bc"), ""),
		"field boundaries are part of the signature",
	)
}

func TestStore_OpenFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), domain.FilePerm))

	store := cas.NewStore(filepath.Join(blocker, "cache.db"))
	_, err := store.Get("k")
	assert.ErrorIs(t, err, domain.ErrCache)
}
