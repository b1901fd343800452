package selfcare

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func writeCatalogFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
}

func TestCatalogCacheServesWithinTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	writeCatalogFile(t, path, "mood,advice\nsad,Walk\n")

	clock := &fakeClock{t: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
	cache := NewCatalogCache(path, "advice", 30*time.Minute, clock.Now)

	rows, _, err := cache.Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("loaded %d rows, want 1", len(rows))
	}

	// Changing the file within the TTL must not show up.
	writeCatalogFile(t, path, "mood,advice\nsad,Walk\nhappy,Dance\n")
	clock.Advance(29 * time.Minute)

	rows, _, err = cache.Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows before expiry, want the cached 1", len(rows))
	}
}

func TestCatalogCacheReloadsAfterTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	writeCatalogFile(t, path, "mood,advice\nsad,Walk\n")

	clock := &fakeClock{t: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
	cache := NewCatalogCache(path, "advice", 30*time.Minute, clock.Now)

	if _, _, err := cache.Rows(); err != nil {
		t.Fatalf("Rows: %v", err)
	}

	writeCatalogFile(t, path, "mood,advice\nsad,Walk\nhappy,Dance\n")
	clock.Advance(31 * time.Minute)

	rows, _, err := cache.Rows()
	if err != nil {
		t.Fatalf("Rows after expiry: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("got %d rows after expiry, want the reloaded 2", len(rows))
	}
}

func TestCatalogCacheKeepsStaleCopyOnReloadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	writeCatalogFile(t, path, "mood,advice\nsad,Walk\n")

	clock := &fakeClock{t: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
	cache := NewCatalogCache(path, "advice", 30*time.Minute, clock.Now)

	if _, _, err := cache.Rows(); err != nil {
		t.Fatalf("Rows: %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove catalog file: %v", err)
	}
	clock.Advance(time.Hour)

	rows, _, err := cache.Rows()
	if err != nil {
		t.Fatalf("Rows must fall back to the stale copy, got error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want the stale 1", len(rows))
	}
}

func TestCatalogCacheInitialLoadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")
	cache := NewCatalogCache(path, "advice", 30*time.Minute, nil)

	if _, _, err := cache.Rows(); err == nil {
		t.Error("Rows succeeded with no file and no cached copy, want error")
	}
}
