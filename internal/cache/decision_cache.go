// Package cache holds the in-process decision cache. Entries expire after a
// short TTL so the advancement engine never acts on a decision another
// admin changed more than a couple of minutes ago.
package cache

import (
	"sync"
	"time"

	"github.com/campusrecruit/backend/internal/model"
)

// DefaultTTL matches the list-cache TTL used elsewhere in the system.
const DefaultTTL = 2 * time.Minute

type entry struct {
	value     model.DecisionValue
	fetchedAt time.Time
}

// DecisionCache is a TTL map keyed by (application, phase). Writes always
// win over whatever is cached; reads older than the TTL miss so the caller
// falls through to the store.
type DecisionCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func NewDecisionCache(ttl time.Duration) *DecisionCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &DecisionCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func key(applicationID string, phase model.Phase) string {
	return applicationID + "|" + string(phase)
}

// Get returns the cached decision and whether the entry is still fresh.
func (c *DecisionCache) Get(applicationID string, phase model.Phase) (model.DecisionValue, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key(applicationID, phase)]
	if !ok {
		return model.DecisionPending, false
	}
	if c.now().Sub(e.fetchedAt) > c.ttl {
		delete(c.entries, key(applicationID, phase))
		return model.DecisionPending, false
	}
	return e.value, true
}

func (c *DecisionCache) Set(applicationID string, phase model.Phase, value model.DecisionValue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(applicationID, phase)] = entry{value: value, fetchedAt: c.now()}
}

// Invalidate drops a single entry, used after a bulk advancement moves the
// application past the phase.
func (c *DecisionCache) Invalidate(applicationID string, phase model.Phase) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key(applicationID, phase))
}
