package stack

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushAll(t *testing.T, s *Stack[string], vals ...string) {
	t.Helper()
	for _, v := range vals {
		require.True(t, s.Push(v).Success(), "push %q", v)
	}
}

func TestNew_DefaultsInvalidCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New[string](0).Capacity())
	assert.Equal(t, DefaultCapacity, New[string](-3).Capacity())
	assert.Equal(t, 7, New[string](7).Capacity())
}

func TestStack_PushPeekTopIndex(t *testing.T) {
	s := New[string](5)
	pushAll(t, s, "A", "B", "C")

	assert.Equal(t, 3, s.Size())
	r := s.Peek()
	require.True(t, r.Success())
	assert.Equal(t, "C", r.Value)
	assert.Equal(t, `Top value is "C"`, r.Message)
	assert.Equal(t, 2, s.TopIndex())
	assert.Equal(t, 3, s.Size(), "peek must not remove")
}

func TestStack_PushOverflow(t *testing.T) {
	s := New[string](2)
	pushAll(t, s, "A", "B")

	r := s.Push("C")
	assert.False(t, r.Success())
	assert.ErrorIs(t, r.Err, ErrOverflow)
	assert.Equal(t, "Stack Overflow! Cannot push to full stack.", r.Message)
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, []string{"A", "B"}, s.Items())
	assert.True(t, s.IsFull())
}

func TestStack_PopUnderflow(t *testing.T) {
	s := New[string](5)

	r := s.Pop()
	assert.False(t, r.Success())
	assert.ErrorIs(t, r.Err, ErrUnderflow)
	assert.Equal(t, "Stack Underflow! Cannot pop from empty stack.", r.Message)
	assert.Equal(t, 0, s.Size())
	assert.Equal(t, -1, s.TopIndex())
}

func TestStack_PeekEmpty(t *testing.T) {
	s := New[string](5)

	r := s.Peek()
	assert.False(t, r.Success())
	assert.ErrorIs(t, r.Err, ErrEmpty)
	assert.Equal(t, "Stack is empty! Nothing to peek.", r.Message)
	assert.True(t, s.IsEmpty())
}

func TestStack_PushPopRoundTrip(t *testing.T) {
	s := New[string](4)
	pushAll(t, s, "x", "y")
	before := s.Size()

	require.True(t, s.Push("v").Success())
	r := s.Pop()
	require.True(t, r.Success())
	assert.Equal(t, "v", r.Value)
	assert.Equal(t, `Popped "v" from stack`, r.Message)
	assert.Equal(t, before, s.Size())
}

func TestStack_Clear(t *testing.T) {
	s := New[string](3)
	pushAll(t, s, "A", "B")

	r := s.Clear()
	assert.True(t, r.Success())
	assert.Equal(t, "Stack cleared successfully", r.Message)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 3, s.Capacity())

	assert.True(t, s.Clear().Success(), "clear on empty stack succeeds")
}

func TestStack_ResizeTruncatesNewest(t *testing.T) {
	s := New[string](5)
	pushAll(t, s, "A", "B", "C")

	r := s.Resize(2)
	require.True(t, r.Success())
	assert.Equal(t, 1, r.Removed)
	assert.Equal(t, "Resized from 5 to 2. Removed 1 items.", r.Message)
	assert.Equal(t, []string{"A", "B"}, s.Items())
	assert.Equal(t, 2, s.Capacity())
	assert.True(t, s.IsFull())
}

func TestStack_ResizeGrowKeepsItems(t *testing.T) {
	s := New[string](3)
	pushAll(t, s, "A", "B", "C")

	r := s.Resize(3)
	require.True(t, r.Success())
	assert.Equal(t, 0, r.Removed)
	assert.Equal(t, "Resized from 3 to 3", r.Message)

	r = s.Resize(8)
	require.True(t, r.Success())
	assert.Equal(t, "Resized from 3 to 8", r.Message)
	assert.Equal(t, []string{"A", "B", "C"}, s.Items())
	assert.Equal(t, 8, s.Capacity())
}

func TestStack_ResizeRejectsBelowOne(t *testing.T) {
	for _, n := range []int{0, -1, -20} {
		s := New[string](4)
		pushAll(t, s, "A", "B")

		r := s.Resize(n)
		assert.False(t, r.Success(), "resize(%d)", n)
		assert.ErrorIs(t, r.Err, ErrInvalidCapacity)
		assert.Equal(t, "Capacity must be at least 1", r.Message)
		assert.Equal(t, 4, s.Capacity())
		assert.Equal(t, []string{"A", "B"}, s.Items())
	}
}

func TestStack_ItemsReturnsCopy(t *testing.T) {
	s := New[string](3)
	pushAll(t, s, "A", "B")

	items := s.Items()
	items[0] = "mutated"
	_ = append(items, "extra")

	assert.Equal(t, []string{"A", "B"}, s.Items())
}

func TestStack_ResizeThenPushReusesTruncatedSlots(t *testing.T) {
	s := New[string](3)
	pushAll(t, s, "A", "B", "C")
	s.Resize(1)
	s.Resize(3)

	pushAll(t, s, "D")
	assert.Equal(t, []string{"A", "D"}, s.Items())
}

func TestStack_SizeTracksSuccessfulOps(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for capacity := 1; capacity <= 6; capacity++ {
		s := New[int](capacity)
		pushes, pops := 0, 0
		for i := 0; i < 200; i++ {
			if rng.IntN(2) == 0 {
				if s.Push(i).Success() {
					pushes++
				}
			} else if s.Pop().Success() {
				pops++
			}
			require.Equal(t, pushes-pops, s.Size())
			require.LessOrEqual(t, s.Size(), s.Capacity())
		}
	}
}
