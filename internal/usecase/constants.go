package usecase

import "time"

// ProjectionCacheTTL bounds how long a memoized projection may live even
// without an invalidating record change. Overridable via configuration at
// startup.
var ProjectionCacheTTL = 12 * time.Hour

// projectionCachePrefix namespaces projection cache keys by organization.
const projectionCachePrefix = "projection:"

func projectionCacheKey(orgID string) string {
	return projectionCachePrefix + orgID
}
