package gring

// bounded ring buffer, newest-first iteration

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ERR_VALUE = errors.New("Bad value")
)

type Ring[T any] struct {
	buf  []T
	used int
	next int
}

func NewRing[T any](capacity int) (*Ring[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("Invalid capacity: %d. Error: %w", capacity, ERR_VALUE)
	}
	return &Ring[T]{
		buf:  make([]T, capacity),
		used: 0,
		next: 0,
	}, nil
}

func (r *Ring[T]) Len() int {
	return r.used
}

// Overwrites the oldest entry once full
func (r *Ring[T]) Push(e T) {
	r.buf[r.next] = e
	r.next++
	if r.next >= len(r.buf) {
		r.next = 0
	}
	if r.used < len(r.buf) {
		r.used++
	}
}

func (r *Ring[T]) Newest() (T, bool) {
	var zero T
	if r.used == 0 {
		return zero, false
	}
	newest_pos := r.next - 1
	if newest_pos < 0 {
		newest_pos = len(r.buf) - 1
	}
	return r.buf[newest_pos], true
}

// Newest to oldest
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.used {
			real_pos := r.next - 1 - i
			if real_pos < 0 {
				real_pos += len(r.buf)
			}
			if !yield(r.buf[real_pos]) {
				return
			}
		}
	}
}
