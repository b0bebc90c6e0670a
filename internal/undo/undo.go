// Package undo implements the single-slot, time-bounded undo buffer used
// after deletions. The buffer holds the most recent removal only: pushing a
// new one overwrites the prior slot and cancels its expiry timer. There is
// no redo stack.
package undo

import (
	"sync"
	"time"
)

// DefaultWindow is how long an undo stays available after a deletion.
const DefaultWindow = 5 * time.Second

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// Clock abstracts time so the expiry window is deterministic in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type entry struct {
	label   string
	restore func()
}

// Buffer is the single-slot undo holder. Safe for use from a timer
// goroutine alongside the main loop.
type Buffer struct {
	mu     sync.Mutex
	clock  Clock
	window time.Duration
	slot   *entry
	timer  Timer

	// OnExpire, if set, runs after the window closes without an undo
	// (toast dismissal in interactive views).
	OnExpire func(label string)
}

// New creates a buffer with the given clock and window. A non-positive
// window falls back to DefaultWindow.
func New(clock Clock, window time.Duration) *Buffer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Buffer{clock: clock, window: window}
}

// Push records a deletion. Any prior pending undo is overwritten and its
// timer cleared; only the newest deletion remains undoable.
func (b *Buffer) Push(label string, restore func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.slot = &entry{label: label, restore: restore}
	b.timer = b.clock.AfterFunc(b.window, func() { b.expire(label) })
}

func (b *Buffer) expire(label string) {
	b.mu.Lock()
	if b.slot == nil || b.slot.label != label {
		b.mu.Unlock()
		return
	}
	b.slot = nil
	b.timer = nil
	onExpire := b.OnExpire
	b.mu.Unlock()

	if onExpire != nil {
		onExpire(label)
	}
}

// Undo runs the pending restore if the window is still open. It cancels
// the expiry timer and clears the slot. Returns false when nothing was
// undoable.
func (b *Buffer) Undo() bool {
	b.mu.Lock()
	if b.slot == nil {
		b.mu.Unlock()
		return false
	}
	restore := b.slot.restore
	b.slot = nil
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.mu.Unlock()

	restore()
	return true
}

// Pending reports the label of the deletion currently awaiting undo.
func (b *Buffer) Pending() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.slot == nil {
		return "", false
	}
	return b.slot.label, true
}
