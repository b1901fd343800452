package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckInterval = 30 * time.Second

// CatalogStatus describes the loaded self-care catalog copy.
type CatalogStatus struct {
	Rows     int       `json:"rows"`
	LoadedAt time.Time `json:"loadedAt,omitempty"`
}

// HealthStatus is the snapshot served by the health endpoint: one flag per
// backing dependency plus the catalog state.
type HealthStatus struct {
	Mongo      bool          `json:"mongo"`
	CacheRedis bool          `json:"cacheRedis"`
	AuthRedis  bool          `json:"authRedis"`
	Catalog    CatalogStatus `json:"catalog"`
	CheckedAt  time.Time     `json:"checkedAt"`
}

// HealthDeps names the dependencies the monitor checks. Catalog reports the
// in-memory catalog cache and may be nil.
type HealthDeps struct {
	Mongo   *mongo.Client
	Cache   *redis.Client
	Auth    *redis.Client
	Catalog func() CatalogStatus
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor checks the dependencies once immediately and then on a
// fixed interval, keeping the in-memory snapshot current.
func StartHealthMonitor(deps HealthDeps) {
	go func() {
		checkDeps(deps)

		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()
		for range ticker.C {
			checkDeps(deps)
		}
	}()
}

func checkDeps(deps HealthDeps) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := HealthStatus{
		Mongo:      deps.Mongo != nil && deps.Mongo.Ping(ctx, nil) == nil,
		CacheRedis: deps.Cache != nil && deps.Cache.Ping(ctx).Err() == nil,
		AuthRedis:  deps.Auth != nil && deps.Auth.Ping(ctx).Err() == nil,
		CheckedAt:  time.Now(),
	}
	if deps.Catalog != nil {
		status.Catalog = deps.Catalog()
	}

	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}
