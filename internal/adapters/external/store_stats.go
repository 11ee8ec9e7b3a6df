package external

import (
	"sync"
	"time"

	"weatherdash.app/internal/ports"
)

// storeCounters tracks hits and misses for a key-value store
type storeCounters struct {
	hits   int64
	misses int64
	mutex  sync.RWMutex
}

func (s *storeCounters) recordHit() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.hits++
}

func (s *storeCounters) recordMiss() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.misses++
}

func (s *storeCounters) snapshot() ports.StoreStats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := s.hits + s.misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(s.hits) / float64(total)
	}

	return ports.StoreStats{
		Hits:        s.hits,
		Misses:      s.misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}
