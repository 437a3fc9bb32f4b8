// Package stack provides a bounded, resizable LIFO container. Every
// operation returns a Result; invalid use never panics.
package stack

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the capacity used when New is given a value below 1.
const DefaultCapacity = 5

var (
	ErrOverflow        = errors.New("stack overflow")
	ErrUnderflow       = errors.New("stack underflow")
	ErrEmpty           = errors.New("stack is empty")
	ErrInvalidCapacity = errors.New("invalid capacity")
)

// Result is the outcome of a single stack operation.
type Result[T any] struct {
	Message string
	Value   T   // set by Pop and Peek on success
	Removed int // items dropped by Resize
	Err     error
}

// Success reports whether the operation was applied.
func (r Result[T]) Success() bool {
	return r.Err == nil
}

// Stack is a fixed-capacity stack. Index 0 holds the oldest item.
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	items    []T
	capacity int
}

// New creates an empty stack with the given capacity.
func New[T any](capacity int) *Stack[T] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Stack[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Push appends v unless the stack is full.
func (s *Stack[T]) Push(v T) Result[T] {
	if len(s.items) >= s.capacity {
		return Result[T]{
			Message: "Stack Overflow! Cannot push to full stack.",
			Err:     ErrOverflow,
		}
	}
	s.items = append(s.items, v)
	return Result[T]{Message: fmt.Sprintf("Pushed \"%v\" to stack", v)}
}

// Pop removes and returns the newest item.
func (s *Stack[T]) Pop() Result[T] {
	if len(s.items) == 0 {
		return Result[T]{
			Message: "Stack Underflow! Cannot pop from empty stack.",
			Err:     ErrUnderflow,
		}
	}
	last := len(s.items) - 1
	v := s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return Result[T]{
		Message: fmt.Sprintf("Popped \"%v\" from stack", v),
		Value:   v,
	}
}

// Peek returns the newest item without removing it.
func (s *Stack[T]) Peek() Result[T] {
	if len(s.items) == 0 {
		return Result[T]{
			Message: "Stack is empty! Nothing to peek.",
			Err:     ErrEmpty,
		}
	}
	v := s.items[len(s.items)-1]
	return Result[T]{
		Message: fmt.Sprintf("Top value is \"%v\"", v),
		Value:   v,
	}
}

// Clear drops every item. Capacity is unchanged.
func (s *Stack[T]) Clear() Result[T] {
	clear(s.items)
	s.items = s.items[:0]
	return Result[T]{Message: "Stack cleared successfully"}
}

// Resize changes the capacity. When the stack holds more items than the
// new capacity, the newest items are dropped and only [0, n) is kept.
func (s *Stack[T]) Resize(n int) Result[T] {
	if n < 1 {
		return Result[T]{
			Message: "Capacity must be at least 1",
			Err:     fmt.Errorf("%w: %d", ErrInvalidCapacity, n),
		}
	}
	old := s.capacity
	s.capacity = n
	if len(s.items) > n {
		removed := len(s.items) - n
		clear(s.items[n:])
		s.items = s.items[:n]
		return Result[T]{
			Message: fmt.Sprintf("Resized from %d to %d. Removed %d items.", old, n, removed),
			Removed: removed,
		}
	}
	return Result[T]{Message: fmt.Sprintf("Resized from %d to %d", old, n)}
}

// Size returns the number of items held.
func (s *Stack[T]) Size() int { return len(s.items) }

// Capacity returns the maximum number of items.
func (s *Stack[T]) Capacity() int { return s.capacity }

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// IsFull reports whether a push would overflow.
func (s *Stack[T]) IsFull() bool { return len(s.items) == s.capacity }

// TopIndex returns the index of the newest item, or -1 when empty.
func (s *Stack[T]) TopIndex() int { return len(s.items) - 1 }

// Items returns a copy of the contents, oldest first.
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
