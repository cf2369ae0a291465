package usecase

import (
	"sync"
	"time"
)

const DefaultAutoSaveDelay = 2 * time.Second

// SaveStatusType mirrors the badge the UI shows next to an edited field.
type SaveStatusType string

const (
	SaveStatusSaving SaveStatusType = "saving"
	SaveStatusSaved  SaveStatusType = "saved"
	SaveStatusError  SaveStatusType = "error"
)

type SaveStatus struct {
	Type      SaveStatusType `json:"type"`
	Message   string         `json:"message,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type pendingSave struct {
	timer   *time.Timer
	payload any
}

// AutoSaveCoordinator debounces in-flight evaluation edits: one cancellable
// delayed save per entity key. Rescheduling a key cancels its pending timer
// and replaces the payload, so the write that eventually fires carries the
// latest state, not a snapshot taken when the timer was started.
//
// A failed save marks a sticky error status for the key and is never
// retried automatically: the edit stays in the pending payload until a
// later edit reschedules the timer or the caller flushes explicitly.
// Visible edits are never silently dropped, and never silently resent.
type AutoSaveCoordinator struct {
	mu       sync.Mutex
	persist  func(key string, payload any) error
	delay    time.Duration
	pending  map[string]*pendingSave
	statuses map[string]SaveStatus
	now      func() time.Time
}

func NewAutoSaveCoordinator(delay time.Duration, persist func(key string, payload any) error) *AutoSaveCoordinator {
	if delay <= 0 {
		delay = DefaultAutoSaveDelay
	}
	return &AutoSaveCoordinator{
		persist:  persist,
		delay:    delay,
		pending:  make(map[string]*pendingSave),
		statuses: make(map[string]SaveStatus),
		now:      time.Now,
	}
}

// Schedule queues a save for the key, cancelling any timer already pending
// for it. Timers never overlap for the same key.
func (c *AutoSaveCoordinator) Schedule(key string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.pending[key]; ok {
		if p.timer != nil {
			p.timer.Stop()
		}
		p.payload = payload
		p.timer = time.AfterFunc(c.delay, func() { c.fire(key) })
		c.statuses[key] = SaveStatus{Type: SaveStatusSaving, Timestamp: c.now()}
		return
	}

	c.pending[key] = &pendingSave{
		payload: payload,
		timer:   time.AfterFunc(c.delay, func() { c.fire(key) }),
	}
	c.statuses[key] = SaveStatus{Type: SaveStatusSaving, Timestamp: c.now()}
}

// Flush persists the key's pending payload immediately, if any.
func (c *AutoSaveCoordinator) Flush(key string) {
	c.mu.Lock()
	p, ok := c.pending[key]
	if ok && p.timer != nil {
		p.timer.Stop()
	}
	c.mu.Unlock()
	if ok {
		c.fire(key)
	}
}

// Status reports the last known save state for the key; ok is false when
// the key has never been scheduled.
func (c *AutoSaveCoordinator) Status(key string) (SaveStatus, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.statuses[key]
	return s, ok
}

// fire runs outside the timer goroutine's control of the map: it claims the
// pending entry under the lock, then persists without holding it. The
// payload read here is whatever the latest Schedule stored.
func (c *AutoSaveCoordinator) fire(key string) {
	c.mu.Lock()
	p, ok := c.pending[key]
	if !ok {
		c.mu.Unlock()
		return
	}
	delete(c.pending, key)
	payload := p.payload
	c.mu.Unlock()

	err := c.persist(key, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.statuses[key] = SaveStatus{Type: SaveStatusError, Message: err.Error(), Timestamp: c.now()}
		// No auto-retry: put the payload back, with no timer, so an
		// explicit flush or the next edit can pick it up.
		if _, rescheduled := c.pending[key]; !rescheduled {
			c.pending[key] = &pendingSave{payload: payload}
		}
		return
	}
	c.statuses[key] = SaveStatus{Type: SaveStatusSaved, Timestamp: c.now()}
}
