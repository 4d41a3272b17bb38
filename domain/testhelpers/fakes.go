package testhelpers

import (
	"fmt"
	"sync"
)

// ScriptedRandom replays a fixed sequence of draws. It panics when a draw
// falls outside the requested range or the script runs out, which points
// straight at a test whose script no longer matches the code.
type ScriptedRandom struct {
	mu     sync.Mutex
	values []int64
	next   int
}

// NewScriptedRandom creates a source returning values in order
func NewScriptedRandom(values ...int64) *ScriptedRandom {
	return &ScriptedRandom{values: values}
}

func (s *ScriptedRandom) IntBetween(min, max int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.values) {
		panic(fmt.Sprintf("scripted random exhausted after %d draws", len(s.values)))
	}
	v := s.values[s.next]
	s.next++
	if max < min {
		max = min
	}
	if v < min || v > max {
		panic(fmt.Sprintf("scripted draw %d (#%d) outside [%d, %d]", v, s.next, min, max))
	}
	return v
}

// Remaining reports how many scripted draws were not consumed
func (s *ScriptedRandom) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values) - s.next
}

// NoopLocker satisfies AccountLocker without locking
type NoopLocker struct{}

func (NoopLocker) Lock(keys ...string) func() {
	return func() {}
}
