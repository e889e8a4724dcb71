// internal/selector/feecache.go
package selector

import (
	"context"
	"strings"
	"time"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/logger"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

// FeeCache stores resolved fees for a bounded time so re-selecting the
// same address does not repeat the lookup. *session.Store satisfies it.
type FeeCache interface {
	CachedFee(ctx context.Context, key string) (*models.Fee, bool, error)
	CacheFee(ctx context.Context, key string, fee *models.Fee, ttl time.Duration) error
}

// CachingDirectory wraps a Directory and caches CityRegionFee results.
// Option-list calls pass through untouched. Cache failures degrade to the
// backend lookup; they never fail the selection.
type CachingDirectory struct {
	Directory
	cache FeeCache
	ttl   time.Duration
	log   logger.Logger
}

func NewCachingDirectory(dir Directory, cache FeeCache, ttl time.Duration, log logger.Logger) *CachingDirectory {
	return &CachingDirectory{Directory: dir, cache: cache, ttl: ttl, log: log}
}

func feeKey(country, state, lga, city, cityRegion string) string {
	return strings.Join([]string{country, state, lga, city, cityRegion}, "|")
}

// CityRegionFee consults the cache before the backend. Degraded fees (the
// "error" source) are never cached, so a transient failure does not pin a
// zero fee for the TTL.
func (d *CachingDirectory) CityRegionFee(ctx context.Context, country, state, lga, city, cityRegion string) (*models.Fee, error) {
	key := feeKey(country, state, lga, city, cityRegion)

	if fee, ok, err := d.cache.CachedFee(ctx, key); err != nil {
		d.log.Warn("fee cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	} else if ok {
		return fee, nil
	}

	fee, err := d.Directory.CityRegionFee(ctx, country, state, lga, city, cityRegion)
	if err != nil {
		return nil, err
	}
	if fee.Source != models.FeeSourceError {
		if cacheErr := d.cache.CacheFee(ctx, key, fee, d.ttl); cacheErr != nil {
			d.log.Warn("fee cache write failed", map[string]interface{}{
				"key":   key,
				"error": cacheErr.Error(),
			})
		}
	}
	return fee, nil
}
