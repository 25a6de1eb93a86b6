// Package history keeps a bounded, in-memory log of recent check-ins for
// trend display. Nothing is persisted.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dhabedank/leave-advisor/internal/core"
)

// DefaultCapacity is how many entries a Log keeps unless told otherwise.
const DefaultCapacity = 30

// steadyBand is the score change, either way, still reported as steady.
const steadyBand = 5

// Entry is one recorded check-in.
type Entry struct {
	ID         string          `json:"id"`
	RecordedAt time.Time       `json:"recorded_at"`
	Assessment core.Assessment `json:"assessment"`
	Advice     core.Advice     `json:"advice"`
}

// Direction summarises how scores moved across the log.
type Direction string

const (
	DirectionImproving Direction = "improving"
	DirectionDeclining Direction = "declining"
	DirectionSteady    Direction = "steady"
)

// Trend is a summary of the scores in a Log.
type Trend struct {
	Count     int       `json:"count"`
	Average   float64   `json:"average"`
	Latest    int       `json:"latest"`
	Change    int       `json:"change"` // Latest minus oldest
	Direction Direction `json:"direction"`
}

// Log is an append-only list that drops its oldest entry once full.
type Log struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
	now      func() time.Time
}

// NewLog creates a log holding at most capacity entries.
// A capacity <= 0 uses DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
		now:      time.Now,
	}
}

// Append records a check-in and returns the stored entry.
func (l *Log) Append(a core.Assessment, advice core.Advice) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		ID:         uuid.NewString(),
		RecordedAt: l.now(),
		Assessment: a,
		Advice:     advice,
	}

	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, entry)
	return entry
}

// Entries returns a copy of the log, oldest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries held.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Capacity returns the maximum number of entries held.
func (l *Log) Capacity() int {
	return l.capacity
}

// Trend summarises the scores currently held.
func (l *Log) Trend() Trend {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		return Trend{Direction: DirectionSteady}
	}

	total := 0
	for _, e := range l.entries {
		total += e.Advice.Recommendation.Score
	}

	first := l.entries[0].Advice.Recommendation.Score
	latest := l.entries[len(l.entries)-1].Advice.Recommendation.Score
	change := latest - first

	direction := DirectionSteady
	switch {
	case change > steadyBand:
		direction = DirectionImproving
	case change < -steadyBand:
		direction = DirectionDeclining
	}

	return Trend{
		Count:     len(l.entries),
		Average:   float64(total) / float64(len(l.entries)),
		Latest:    latest,
		Change:    change,
		Direction: direction,
	}
}
