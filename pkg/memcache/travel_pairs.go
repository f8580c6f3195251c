package memcache

import (
	"sync"
	"time"
)

// TravelEdge is a cached routing result between two itinerary items.
type TravelEdge struct {
	DurationSeconds int
}

type PairKey struct {
	Mode string // "walking" or "driving"
	From string
	To   string
}

type TravelPairCache interface {
	Get(k PairKey) (TravelEdge, bool)
	Set(k PairKey, v TravelEdge, ttl time.Duration)
}

type pairEntry struct {
	edge      TravelEdge
	expiresAt time.Time
}

type travelPairCache struct {
	mu    sync.RWMutex
	store map[PairKey]pairEntry
}

func NewTravelPairCache() TravelPairCache {
	return &travelPairCache{store: make(map[PairKey]pairEntry)}
}

func (c *travelPairCache) Get(k PairKey) (TravelEdge, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.expiresAt) {
		return TravelEdge{}, false
	}
	return it.edge, true
}

func (c *travelPairCache) Set(k PairKey, v TravelEdge, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = pairEntry{edge: v, expiresAt: time.Now().Add(ttl)}
}
