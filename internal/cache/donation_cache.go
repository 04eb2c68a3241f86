package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/GauravSharma9258/DBMS-Project/internal/metrics"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
)

// DonationCache holds donations that can still change hands: pending,
// assigned or picked up. Terminal records are evicted on Set so reads
// for them fall through to the database.
type DonationCache struct {
	mu    sync.RWMutex
	cache map[string]*repository.Donation
}

func NewDonationCache() *DonationCache {
	return &DonationCache{
		cache: make(map[string]*repository.Donation),
	}
}

// LoadInitialData primes the cache from the given open donations,
// typically fetched once at startup.
func (c *DonationCache) LoadInitialData(_ context.Context, donations []*repository.Donation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, donation := range donations {
		donationCopy := *donation
		c.cache[donation.ID] = &donationCopy
	}
	metrics.DonationCacheItems.Set(float64(len(c.cache)))
	zap.L().Info("Loaded open donations into cache", zap.Int("count", len(c.cache)))
}

func (c *DonationCache) Get(id string) (*repository.Donation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	donation, found := c.cache[id]
	if !found {
		return nil, false
	}
	donationCopy := *donation
	return &donationCopy, true
}

func (c *DonationCache) Set(donation *repository.Donation) {
	if !isOpenStatus(donation.Status) {
		c.Delete(donation.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	donationCopy := *donation
	c.cache[donation.ID] = &donationCopy
	metrics.DonationCacheItems.Set(float64(len(c.cache)))
}

func (c *DonationCache) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[id]; found {
		delete(c.cache, id)
		metrics.DonationCacheItems.Set(float64(len(c.cache)))
	}
}

func isOpenStatus(status repository.DonationStatus) bool {
	return status == repository.DonationPending ||
		status == repository.DonationAssigned ||
		status == repository.DonationPickedUp
}
