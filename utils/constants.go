// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// RecommendCachePrefix is the prefix used for cached self-care recommendations.
const RecommendCachePrefix = "recommend:"

// RecommendCacheTTL is the time-to-live for cached recommendation results.
const RecommendCacheTTL = 15 * time.Minute

// TokenTTL is the lifetime of issued user auth tokens.
const TokenTTL = 72 * time.Hour
