package store

import "sync/atomic"

// Sequence hands out increasing ids starting at 1. Ids are never reused.
// It is safe for concurrent use.
type Sequence struct {
	last atomic.Int64
}

// Next returns the next id.
func (s *Sequence) Next() int {
	return int(s.last.Add(1))
}

// Current returns the most recently issued id, or 0 if none was issued.
func (s *Sequence) Current() int {
	return int(s.last.Load())
}
