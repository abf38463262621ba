// Package arrayd implements a growable indexed container with append,
// random-access get/set and ordered removal. It is a plain linear-storage
// utility with no coupling to the arena allocator.
package arrayd

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is returned by New when the initial length is not positive.
var ErrInvalidLength = errors.New("arrayd: initial length must be positive")

// Array is a growable indexed container of T. The zero value is not usable;
// create one with New. Not goroutine-safe.
type Array[T any] struct {
	data []T
}

// New creates an Array with capacity for initialLength elements. Fails with
// ErrInvalidLength when initialLength <= 0.
func New[T any](initialLength int) (*Array[T], error) {
	if initialLength <= 0 {
		return nil, ErrInvalidLength
	}
	return &Array[T]{data: make([]T, 0, initialLength)}, nil
}

// Append adds v at the end, growing the backing storage as needed.
func (a *Array[T]) Append(v T) {
	a.data = append(a.data, v)
}

// Get returns the element at index i. Panics if i is out of range.
func (a *Array[T]) Get(i int) T {
	a.check(i)
	return a.data[i]
}

// Set replaces the element at index i. Panics if i is out of range.
func (a *Array[T]) Set(i int, v T) {
	a.check(i)
	a.data[i] = v
}

// RemoveAt removes the element at index i, shifting later elements down by
// one. Panics if i is out of range.
func (a *Array[T]) RemoveAt(i int) {
	a.check(i)
	last := len(a.data) - 1
	copy(a.data[i:], a.data[i+1:])
	var zero T
	a.data[last] = zero // drop the stale tail reference
	a.data = a.data[:last]
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Cap returns the current capacity of the backing storage.
func (a *Array[T]) Cap() int {
	return cap(a.data)
}

// Clear removes all elements but keeps the backing storage for reuse.
func (a *Array[T]) Clear() {
	clear(a.data)
	a.data = a.data[:0]
}

func (a *Array[T]) check(i int) {
	if i < 0 || i >= len(a.data) {
		panic(fmt.Sprintf("arrayd: index %d out of range [0:%d]", i, len(a.data)))
	}
}
