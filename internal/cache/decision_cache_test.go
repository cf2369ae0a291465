package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campusrecruit/backend/internal/model"
)

func TestDecisionCache(t *testing.T) {
	now := time.Now()
	c := NewDecisionCache(2 * time.Minute)
	c.now = func() time.Time { return now }

	_, ok := c.Get("app-1", model.PhaseResume)
	assert.False(t, ok, "empty cache should miss")

	c.Set("app-1", model.PhaseResume, model.DecisionYes)
	v, ok := c.Get("app-1", model.PhaseResume)
	assert.True(t, ok)
	assert.Equal(t, model.DecisionYes, v)

	// Same application, different phase, is a different entry.
	_, ok = c.Get("app-1", model.PhaseCoffee)
	assert.False(t, ok)

	// Entries older than the TTL miss so callers re-fetch.
	now = now.Add(2*time.Minute + time.Second)
	_, ok = c.Get("app-1", model.PhaseResume)
	assert.False(t, ok, "stale entry should miss")

	now = now.Add(-time.Minute)
	c.Set("app-1", model.PhaseResume, model.DecisionNo)
	c.Invalidate("app-1", model.PhaseResume)
	_, ok = c.Get("app-1", model.PhaseResume)
	assert.False(t, ok, "invalidated entry should miss")
}
