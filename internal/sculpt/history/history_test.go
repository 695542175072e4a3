package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/clay/pkg/math"
)

func snap(id float32) []math.Vec3 {
	return []math.Vec3{{X: id}, {Y: id}}
}

func TestPushPopOrder(t *testing.T) {
	s := New(DefaultCapacity)
	for i := 1; i <= 3; i++ {
		s.Push(snap(float32(i)))
	}

	for want := 3; want >= 1; want-- {
		got, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, snap(float32(want)), got)
	}

	_, ok := s.Pop()
	assert.False(t, ok, "pop on empty stack should fail")
}

func TestPushIsDeepCopy(t *testing.T) {
	s := New(DefaultCapacity)
	buf := snap(1)
	s.Push(buf)
	buf[0].X = 99

	got, _ := s.Peek()
	assert.Equal(t, float32(1), got[0].X)
}

func TestBoundedEvictsOldest(t *testing.T) {
	s := New(DefaultCapacity)
	for i := 1; i <= DefaultCapacity; i++ {
		assert.False(t, s.Push(snap(float32(i))))
	}
	assert.Equal(t, DefaultCapacity, s.Len())

	// The 21st push evicts exactly snapshot 1.
	assert.True(t, s.Push(snap(21)))
	assert.Equal(t, DefaultCapacity, s.Len())

	var popped []float32
	for {
		got, ok := s.Pop()
		if !ok {
			break
		}
		popped = append(popped, got[0].X)
	}
	require.Len(t, popped, DefaultCapacity)
	assert.Equal(t, float32(21), popped[0])
	assert.Equal(t, float32(2), popped[len(popped)-1])
}

func TestLenNeverExceedsCapacity(t *testing.T) {
	s := New(5)
	for i := 0; i < 100; i++ {
		s.Push(snap(float32(i)))
		assert.LessOrEqual(t, s.Len(), s.Cap())
		if i%7 == 0 {
			s.Pop()
		}
	}
}

func TestInterleavedPushPopAfterWrap(t *testing.T) {
	s := New(3)
	for i := 1; i <= 5; i++ {
		s.Push(snap(float32(i)))
	}
	got, _ := s.Pop()
	assert.Equal(t, float32(5), got[0].X)

	s.Push(snap(6))
	got, _ = s.Pop()
	assert.Equal(t, float32(6), got[0].X)
	got, _ = s.Pop()
	assert.Equal(t, float32(4), got[0].X)
	got, _ = s.Pop()
	assert.Equal(t, float32(3), got[0].X)
	assert.Zero(t, s.Len())
}

func TestPoppedSnapshotNotReused(t *testing.T) {
	s := New(2)
	s.Push(snap(1))
	popped, _ := s.Pop()

	s.Push(snap(2))
	s.Push(snap(3))
	s.Push(snap(4))
	assert.Equal(t, float32(1), popped[0].X)
}

func TestClear(t *testing.T) {
	s := New(4)
	s.Push(snap(1))
	s.Push(snap(2))
	s.Clear()

	assert.Zero(t, s.Len())
	_, ok := s.Peek()
	assert.False(t, ok)

	s.Push(snap(3))
	got, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, float32(3), got[0].X)
}

func TestNewInvalidCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New(0).Cap())
}
