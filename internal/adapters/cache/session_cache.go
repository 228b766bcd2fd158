package cache

import (
	"fmt"
	"fxwidget/internal/widget"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
)

// RistrettoSessionCache keeps widget sessions for a limited time. Sessions
// leaving the cache have their in-flight requests canceled.
type RistrettoSessionCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewSessionCache(maxItems int64, ttl time.Duration) (*RistrettoSessionCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
		// every session costs exactly 1, so MaxCost is the session count
		IgnoreInternalCost: true,
		OnExit: func(val interface{}) {
			if s, ok := val.(*widget.Session); ok {
				s.Close()
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create session cache failed: %w", err)
	}
	return &RistrettoSessionCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoSessionCache) Get(id uuid.UUID) (*widget.Session, bool) {
	if v, ok := c.cache.Get(id.String()); ok {
		s, ok := v.(*widget.Session)
		return s, ok
	}
	return nil, false
}

// Put stores the session and reports whether it was admitted. A session
// dropped by the buffer or rejected by the admission policy is not kept.
func (c *RistrettoSessionCache) Put(s *widget.Session) bool {
	if !c.cache.SetWithTTL(s.ID().String(), s, 1, c.ttl) {
		return false
	}
	c.cache.Wait()
	_, ok := c.Get(s.ID())
	return ok
}

func (c *RistrettoSessionCache) Delete(id uuid.UUID) { c.cache.Del(id.String()) }

func (c *RistrettoSessionCache) Close() { c.cache.Close() }
