// Package notify provides a small timed-message queue for surfacing events
// to a host UI. The queue is an explicitly passed handle: components that
// want to report hold a *Queue, and the host drains Pending on its draw
// cycle. There is no process-wide singleton and no init/teardown lifecycle.
package notify

import (
	"sync"
	"time"
)

// Level classifies a message for display purposes.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Default display durations.
const (
	DefaultTTL = 3 * time.Second
	ErrorTTL   = 4 * time.Second
)

// Message is one pending notification.
type Message struct {
	Level  Level
	Text   string
	Expiry time.Time
}

// Queue holds pending messages until they expire or are drained. Safe for
// concurrent use.
type Queue struct {
	mu      sync.Mutex
	pending []Message
	now     func() time.Time
}

// New creates a queue using the wall clock.
func New() *Queue {
	return NewWithClock(time.Now)
}

// NewWithClock creates a queue with an injected clock.
func NewWithClock(clock func() time.Time) *Queue {
	return &Queue{now: clock}
}

// Push appends a message that expires after ttl.
func (q *Queue) Push(level Level, text string, ttl time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, Message{
		Level:  level,
		Text:   text,
		Expiry: q.now().Add(ttl),
	})
}

// Info pushes an informational message with the default duration.
func (q *Queue) Info(text string) {
	q.Push(LevelInfo, text, DefaultTTL)
}

// Success pushes a success message with the default duration.
func (q *Queue) Success(text string) {
	q.Push(LevelSuccess, text, DefaultTTL)
}

// Warning pushes a warning message with the default duration.
func (q *Queue) Warning(text string) {
	q.Push(LevelWarning, text, DefaultTTL)
}

// Error pushes an error message; errors linger slightly longer.
func (q *Queue) Error(text string) {
	q.Push(LevelError, text, ErrorTTL)
}

// Pending prunes expired messages and returns a copy of the rest, oldest
// first.
func (q *Queue) Pending() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	live := q.pending[:0]
	for _, m := range q.pending {
		if m.Expiry.After(now) {
			live = append(live, m)
		}
	}
	q.pending = live

	result := make([]Message, len(live))
	copy(result, live)
	return result
}

// Clear drops all pending messages.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = nil
}
