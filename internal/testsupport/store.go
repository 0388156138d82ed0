package testsupport

import (
	"context"
	"testing"

	"akordish/internal/catalog"
	"akordish/internal/config"
)

// MustOpenCatalog opens a catalog.Store for tests and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// AddSong inserts a song for tests using the provided store.
func AddSong(t testing.TB, store *catalog.Store, song catalog.Song) *catalog.Song {
	t.Helper()

	added, err := store.Add(context.Background(), song)
	if err != nil {
		t.Fatalf("store.Add: %v", err)
	}
	return added
}
