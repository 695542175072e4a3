// Package history keeps a bounded stack of vertex buffer snapshots.
package history

import "github.com/Faultbox/clay/pkg/math"

// DefaultCapacity is the number of undo steps kept.
const DefaultCapacity = 20

// Stack is a bounded LIFO of deep-copied snapshots backed by a ring, so a
// push at capacity drops the oldest entry in O(1).
type Stack struct {
	slots [][]math.Vec3
	head  int // index of the oldest entry
	size  int
}

// New creates a stack holding at most capacity snapshots.
func New(capacity int) *Stack {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Stack{slots: make([][]math.Vec3, capacity)}
}

// Len returns the number of stored snapshots.
func (s *Stack) Len() int {
	return s.size
}

// Cap returns the maximum number of snapshots.
func (s *Stack) Cap() int {
	return len(s.slots)
}

// Push stores a copy of positions as the most recent snapshot, evicting the
// oldest one when full. It reports whether an entry was evicted.
func (s *Stack) Push(positions []math.Vec3) (evicted bool) {
	var slot int
	if s.size == len(s.slots) {
		slot = s.head
		s.head = (s.head + 1) % len(s.slots)
		evicted = true
	} else {
		slot = (s.head + s.size) % len(s.slots)
		s.size++
	}

	// The evicted buffer is unreachable from outside, so its memory can be reused.
	dst := s.slots[slot]
	if len(dst) != len(positions) {
		dst = make([]math.Vec3, len(positions))
	}
	copy(dst, positions)
	s.slots[slot] = dst
	return evicted
}

// Pop removes and returns the most recent snapshot.
func (s *Stack) Pop() ([]math.Vec3, bool) {
	if s.size == 0 {
		return nil, false
	}
	slot := (s.head + s.size - 1) % len(s.slots)
	snap := s.slots[slot]
	s.slots[slot] = nil
	s.size--
	return snap, true
}

// Peek returns the most recent snapshot without removing it.
func (s *Stack) Peek() ([]math.Vec3, bool) {
	if s.size == 0 {
		return nil, false
	}
	return s.slots[(s.head+s.size-1)%len(s.slots)], true
}

// Clear drops every snapshot.
func (s *Stack) Clear() {
	for i := range s.slots {
		s.slots[i] = nil
	}
	s.head = 0
	s.size = 0
}
