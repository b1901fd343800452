package selfcare

import (
	"context"
	"encoding/json"
	"fmt"

	"serenemind/models"
	"serenemind/utils"

	"go.uber.org/zap"
)

// Recommend answers the query with the best-matching catalog advice. It
// first consults the Redis memo; on a miss it loads the catalog (through the
// TTL cache), runs BestMatch and stores the result.
func (s *DefaultSelfCareService) Recommend(ctx context.Context, query map[string]string) (string, error) {
	var cacheKey string
	if s.CacheClient != nil {
		queryBytes, err := json.Marshal(query)
		if err == nil {
			cacheKey = fmt.Sprintf("%s%x", utils.RecommendCachePrefix, queryBytes)
			cached, err := s.CacheClient.Get(ctx, cacheKey).Result()
			if err == nil && cached != "" {
				return cached, nil
			}
		}
	}

	rows, _, err := s.Catalog.Rows()
	if err != nil {
		return "", fmt.Errorf("failed to load catalog: %w", err)
	}

	advice, err := BestMatch(query, rows, s.AdviceColumn)
	if err != nil {
		return "", err
	}

	if s.CacheClient != nil && cacheKey != "" {
		if err := s.CacheClient.Set(ctx, cacheKey, advice, utils.RecommendCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Recommend: failed to cache result", zap.Error(err))
		}
	}

	return advice, nil
}

// Columns returns the question-form descriptors for the loaded catalog.
func (s *DefaultSelfCareService) Columns(ctx context.Context) ([]models.ColumnDescriptor, error) {
	rows, header, err := s.Catalog.Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return DeriveColumns(rows, header, s.AdviceColumn), nil
}
