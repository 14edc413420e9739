package xref

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// storeContract exercises the Store behaviours shared by all implementations.
func storeContract(t *testing.T, store Store) {
	t.Helper()

	_, ok := store.IdentifierForISBN("978-1-63806-000-0")
	require.False(t, ok)

	store.SetIdentifierForISBN("978-1-63806-000-0", "457226")
	id, ok := store.IdentifierForISBN("978-1-63806-000-0")
	require.True(t, ok)
	require.Equal(t, "457226", id)

	_, ok = store.CoverURLForIdentifier("457226")
	require.False(t, ok)

	store.SetCoverURLForIdentifier("457226", "https://cdn.example/images/457226.jpg")
	url, ok := store.CoverURLForIdentifier("457226")
	require.True(t, ok)
	require.Equal(t, "https://cdn.example/images/457226.jpg", url)

	// Last writer wins; entries are idempotent facts
	store.SetCoverURLForIdentifier("457226", "https://cdn.example/images/457226-v2.jpg")
	url, _ = store.CoverURLForIdentifier("457226")
	require.Equal(t, "https://cdn.example/images/457226-v2.jpg", url)

	// Empty halves are never cached
	store.SetIdentifierForISBN("", "1")
	store.SetIdentifierForISBN("isbn", "")
	_, ok = store.IdentifierForISBN("")
	require.False(t, ok)
	_, ok = store.IdentifierForISBN("isbn")
	require.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			store.SetIdentifierForISBN(fmt.Sprintf("isbn-%d", n), fmt.Sprintf("id-%d", n))
		}(i)
		go func(n int) {
			defer wg.Done()
			store.SetCoverURLForIdentifier(fmt.Sprintf("id-%d", n), fmt.Sprintf("url-%d", n))
			store.IdentifierForISBN(fmt.Sprintf("isbn-%d", n))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		id, ok := store.IdentifierForISBN(fmt.Sprintf("isbn-%d", i))
		require.True(t, ok)
		require.Equal(t, fmt.Sprintf("id-%d", i), id)
	}
}

func openTestStore(t *testing.T, namespace string) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "xref.db"), namespace)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	storeContract(t, openTestStore(t, "drivethrurpg"))
}

func TestSQLiteStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xref.db")

	store, err := OpenSQLiteStore(path, "drivethrurpg")
	require.NoError(t, err)
	store.SetIdentifierForISBN("isbn-1", "457226")
	require.NoError(t, store.Close())

	reopened, err := OpenSQLiteStore(path, "drivethrurpg")
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	id, ok := reopened.IdentifierForISBN("isbn-1")
	require.True(t, ok)
	require.Equal(t, "457226", id)
}

func TestSQLiteStore_NamespaceIsolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xref.db")

	dtrpg, err := OpenSQLiteStore(path, "drivethrurpg")
	require.NoError(t, err)
	defer func() { _ = dtrpg.Close() }()

	wgv, err := OpenSQLiteStore(path, "wargamevault")
	require.NoError(t, err)
	defer func() { _ = wgv.Close() }()

	dtrpg.SetIdentifierForISBN("isbn-1", "457226")

	_, ok := wgv.IdentifierForISBN("isbn-1")
	require.False(t, ok)
}

func TestSQLiteStore_Clear(t *testing.T) {
	store := openTestStore(t, "drivethrurpg")

	store.SetIdentifierForISBN("isbn-1", "457226")
	store.SetCoverURLForIdentifier("457226", "url")

	require.NoError(t, store.Clear())

	_, ok := store.IdentifierForISBN("isbn-1")
	require.False(t, ok)
	_, ok = store.CoverURLForIdentifier("457226")
	require.False(t, ok)
}
