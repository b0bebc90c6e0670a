package undo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives AfterFunc callbacks manually so window expiry is
// deterministic.
type fakeClock struct {
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	deadline time.Time
	f        func()
	stopped  bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{deadline: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and fires due, unstopped timers.
func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
	for _, t := range c.timers {
		if !t.stopped && !t.deadline.After(c.now) {
			t.stopped = true
			t.f()
		}
	}
}

func TestUndoWithinWindow(t *testing.T) {
	clock := newFakeClock()
	b := New(clock, 5*time.Second)

	restored := false
	b.Push("task deleted", func() { restored = true })

	clock.Advance(3 * time.Second)
	assert.True(t, b.Undo())
	assert.True(t, restored)

	_, pending := b.Pending()
	assert.False(t, pending, "slot cleared after undo")
}

func TestUndoAfterExpiry(t *testing.T) {
	clock := newFakeClock()
	b := New(clock, 5*time.Second)

	var expired string
	b.OnExpire = func(label string) { expired = label }

	restored := false
	b.Push("task deleted", func() { restored = true })

	clock.Advance(6 * time.Second)
	assert.False(t, b.Undo(), "window closed")
	assert.False(t, restored)
	assert.Equal(t, "task deleted", expired)
}

func TestSecondDeleteOverwritesFirst(t *testing.T) {
	clock := newFakeClock()
	b := New(clock, 5*time.Second)

	firstRestored := false
	secondRestored := false
	b.Push("first", func() { firstRestored = true })
	b.Push("second", func() { secondRestored = true })

	label, ok := b.Pending()
	require.True(t, ok)
	assert.Equal(t, "second", label)

	assert.True(t, b.Undo())
	assert.False(t, firstRestored, "only the most recent deletion is undoable")
	assert.True(t, secondRestored)

	assert.False(t, b.Undo(), "no redo stack")
}

func TestOverwriteCancelsOldTimer(t *testing.T) {
	clock := newFakeClock()
	b := New(clock, 5*time.Second)

	var expiries []string
	b.OnExpire = func(label string) { expiries = append(expiries, label) }

	b.Push("first", func() {})
	clock.Advance(4 * time.Second)
	b.Push("second", func() {})
	clock.Advance(2 * time.Second) // first's original deadline passes

	assert.Empty(t, expiries, "first timer was cleared by the overwrite")

	clock.Advance(3 * time.Second)
	assert.Equal(t, []string{"second"}, expiries)
}

func TestUndoCancelsExpiry(t *testing.T) {
	clock := newFakeClock()
	b := New(clock, 5*time.Second)

	var expiries []string
	b.OnExpire = func(label string) { expiries = append(expiries, label) }

	b.Push("only", func() {})
	assert.True(t, b.Undo())
	clock.Advance(10 * time.Second)
	assert.Empty(t, expiries, "undo before the timer fires cancels auto-dismiss")
}

func TestUndoEmptyBuffer(t *testing.T) {
	b := New(newFakeClock(), 0)
	assert.False(t, b.Undo())
}
