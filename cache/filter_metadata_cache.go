package filter_cache

import (
	"sync"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// The storefront filter bar needs category/material counts and the global
// price range on every page load; the aggregates are cheap but not free, so
// they are served from memory for a few minutes at a time.

type metadataEntry struct {
	metadata  *models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metadataEntry
)

func GetMetadata() (*models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.metadata, true
	}
	return nil, false
}

func SetMetadata(metadata *models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metadataEntry{
		metadata:  metadata,
		fetchedAt: time.Now(),
	}
}

// Invalidate drops the cached metadata. Called after any product, category or
// material mutation so admin edits show up without waiting out the TTL.
func Invalidate() {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = nil
}
