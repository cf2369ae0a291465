package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPersist struct {
	mu       sync.Mutex
	payloads []any
	err      error
}

func (p *recordingPersist) save(key string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *recordingPersist) saved() []any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]any(nil), p.payloads...)
}

func waitForStatus(t *testing.T, c *AutoSaveCoordinator, key string, want SaveStatusType) SaveStatus {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if s, ok := c.Status(key); ok && s.Type == want {
			return s
		}
		time.Sleep(5 * time.Millisecond)
	}
	s, _ := c.Status(key)
	t.Fatalf("status for %s never became %s (last: %+v)", key, want, s)
	return SaveStatus{}
}

func TestAutoSave_DebouncesToLatestPayload(t *testing.T) {
	persist := &recordingPersist{}
	c := NewAutoSaveCoordinator(30*time.Millisecond, persist.save)

	c.Schedule("eval-1", "first draft")
	c.Schedule("eval-1", "second draft")

	waitForStatus(t, c, "eval-1", SaveStatusSaved)
	assert.Equal(t, []any{"second draft"}, persist.saved(), "one write, carrying the latest edit")
}

func TestAutoSave_KeysDebounceIndependently(t *testing.T) {
	persist := &recordingPersist{}
	c := NewAutoSaveCoordinator(20*time.Millisecond, persist.save)

	c.Schedule("eval-1", "a")
	c.Schedule("eval-2", "b")

	waitForStatus(t, c, "eval-1", SaveStatusSaved)
	waitForStatus(t, c, "eval-2", SaveStatusSaved)
	assert.ElementsMatch(t, []any{"a", "b"}, persist.saved())
}

func TestAutoSave_FailureIsStickyAndNeverRetried(t *testing.T) {
	persist := &recordingPersist{err: errors.New("connection reset")}
	c := NewAutoSaveCoordinator(10*time.Millisecond, persist.save)

	c.Schedule("eval-1", "unsaved text")
	status := waitForStatus(t, c, "eval-1", SaveStatusError)
	assert.Equal(t, "connection reset", status.Message)
	assert.False(t, status.Timestamp.IsZero())

	// No auto-retry: nothing else happens until the user acts.
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, persist.saved())

	// The edit is still in memory; an explicit flush saves it once the
	// backend recovers.
	persist.mu.Lock()
	persist.err = nil
	persist.mu.Unlock()
	c.Flush("eval-1")
	waitForStatus(t, c, "eval-1", SaveStatusSaved)
	assert.Equal(t, []any{"unsaved text"}, persist.saved())
}

func TestAutoSave_RescheduleAfterFailureWins(t *testing.T) {
	persist := &recordingPersist{err: errors.New("timeout")}
	c := NewAutoSaveCoordinator(10*time.Millisecond, persist.save)

	c.Schedule("eval-1", "v1")
	waitForStatus(t, c, "eval-1", SaveStatusError)

	persist.mu.Lock()
	persist.err = nil
	persist.mu.Unlock()
	c.Schedule("eval-1", "v2")
	waitForStatus(t, c, "eval-1", SaveStatusSaved)
	assert.Equal(t, []any{"v2"}, persist.saved())
}

func TestAutoSave_StatusUnknownKey(t *testing.T) {
	c := NewAutoSaveCoordinator(time.Minute, func(string, any) error { return nil })
	_, ok := c.Status("never-scheduled")
	require.False(t, ok)
}
