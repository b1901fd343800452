package selfcare

import (
	"sync"
	"time"

	"serenemind/models"
)

// CatalogCache owns the loaded catalog and reloads it from disk once the TTL
// has elapsed. It is an explicit object with an injected clock rather than a
// module-level singleton, so the recommender itself stays pure and the
// expiry is testable.
type CatalogCache struct {
	path         string
	adviceColumn string
	ttl          time.Duration
	now          func() time.Time

	mu       sync.Mutex
	rows     []models.CatalogRow
	header   []string
	loadedAt time.Time
}

// NewCatalogCache constructs a cache for the catalog at path. Pass nil for
// now to use the system clock.
func NewCatalogCache(path, adviceColumn string, ttl time.Duration, now func() time.Time) *CatalogCache {
	if now == nil {
		now = time.Now
	}
	return &CatalogCache{
		path:         path,
		adviceColumn: adviceColumn,
		ttl:          ttl,
		now:          now,
	}
}

// Status reports the size and load time of the cached copy without
// triggering a reload. Zero values mean nothing has loaded yet.
func (c *CatalogCache) Status() (rows int, loadedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rows), c.loadedAt
}

// Rows returns the cached catalog rows and header, reloading from disk when
// the cached copy is stale. A failed reload keeps serving the previous copy
// when one exists.
func (c *CatalogCache) Rows() ([]models.CatalogRow, []string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rows != nil && c.now().Sub(c.loadedAt) < c.ttl {
		return c.rows, c.header, nil
	}

	rows, header, err := LoadCatalog(c.path, c.adviceColumn)
	if err != nil {
		if c.rows != nil {
			return c.rows, c.header, nil
		}
		return nil, nil, err
	}

	c.rows = rows
	c.header = header
	c.loadedAt = c.now()
	return c.rows, c.header, nil
}
