package selfcare

import (
	"context"

	"serenemind/models"

	"github.com/go-redis/redis/v8"
)

// SelfCareService answers self-care questionnaires against the reference
// catalog.
type SelfCareService interface {
	// Recommend returns the advice text best matching the query.
	Recommend(ctx context.Context, query map[string]string) (string, error)
	// Columns returns the question-form descriptors for the loaded catalog.
	Columns(ctx context.Context) ([]models.ColumnDescriptor, error)
}

// DefaultSelfCareService is the production implementation. Recommendation
// results are memoized in Redis keyed by the hashed query; cache failures
// fall through to recomputation.
type DefaultSelfCareService struct {
	Catalog      *CatalogCache
	CacheClient  *redis.Client
	AdviceColumn string
}
