package dheap

// fixed-capacity in-place d-ary max-heap

import (
	"errors"
	"iter"
)

const DEFAULT_MAX_SIZE int = 1000

var (
	ERR_HEAP_FULL          error = errors.New("Heap is full")
	ERR_EMPTY_HEAP         error = errors.New("Heap is empty")
	ERR_NO_SUCH_PARENT     error = errors.New("No such parent")
	ERR_PARENT_REACHED_END error = errors.New("Parent reached end")
	ERR_SON_REACHED_END    error = errors.New("Son reached end")
	ERR_INVALID_SON_INDEX  error = errors.New("Invalid son index")
	ERR_BAD_BRANCHING      error = errors.New("Bad branching factor")
)

// Storage is allocated once at capacity and never grows.
// Positions [0, size) are live, the rest is garbage.
type Heap struct {
	storage []int32
	size    int
	d       int
}

func New(d int, values []int32) (*Heap, error) {
	return NewSized(d, DEFAULT_MAX_SIZE, values)
}

// Copies at most capacity values (the excess is silently dropped,
// that's the clamping policy, not an error) and heapifies them.
func NewSized(d, capacity int, values []int32) (*Heap, error) {
	if d < 1 {
		return nil, ERR_BAD_BRANCHING
	}
	if capacity < 0 {
		capacity = 0
	}
	h := &Heap{
		storage: make([]int32, capacity),
		size:    min(len(values), capacity),
		d:       clamp_d(d, capacity),
	}
	copy(h.storage, values[:h.size])
	if err := h.build(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Heap) Size() int     { return h.size }
func (h *Heap) Cap() int      { return len(h.storage) }
func (h *Heap) D() int        { return h.d }
func (h *Heap) IsEmpty() bool { return h.size == 0 }

func (h *Heap) Peek() (int32, error) {
	if h.size == 0 {
		return 0, ERR_EMPTY_HEAP
	}
	return h.storage[0], nil
}

func (h *Heap) Insert(item int32) error {
	if h.size >= len(h.storage) {
		return ERR_HEAP_FULL
	}
	h.storage[h.size] = item
	h.size++
	return h.up(h.size - 1)
}

func (h *Heap) ExtractMax() (int32, error) {
	if h.size == 0 {
		return 0, ERR_EMPTY_HEAP
	}
	max := h.storage[0]
	h.storage[0] = h.storage[h.size-1]
	h.size--
	if err := h.down(0); err != nil {
		return 0, err
	}
	return max, nil
}

// The parent/son formulas depend on d, so the same storage under a
// new d is not a heap anymore and a full rebuild is forced.
func (h *Heap) ChangeD(d int) error {
	if d < 1 {
		return ERR_BAD_BRANCHING
	}
	h.d = clamp_d(d, len(h.storage))
	return h.build()
}

// Any d at or past the capacity yields the same flat one-level tree
// while the raw value would overflow the son index arithmetic, so
// the stored d is capped there.
func clamp_d(d, capacity int) int {
	if capacity > 0 && d > capacity {
		return capacity
	}
	return d
}

// Parent index of idx. ERR_PARENT_REACHED_END at the root is the
// normal stop condition for upwards traversal, not a real failure.
func (h *Heap) Parent(idx int) (int, error) {
	if idx == 0 {
		return 0, ERR_PARENT_REACHED_END
	}
	parent_idx := (idx - 1) / h.d
	if parent_idx >= h.size {
		return 0, ERR_NO_SUCH_PARENT
	}
	return parent_idx, nil
}

// Index of the n-th son of idx, n in [0, d). ERR_SON_REACHED_END
// means the slot is past the live range, i.e. no more sons.
func (h *Heap) NthSon(idx, n int) (int, error) {
	if n >= h.d {
		return 0, ERR_INVALID_SON_INDEX
	}
	son_idx := idx*h.d + n + 1
	if son_idx >= h.size {
		return 0, ERR_SON_REACHED_END
	}
	return son_idx, nil
}

// Live elements in storage order
func (h *Heap) All() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for i := range h.size {
			if !yield(h.storage[i]) {
				return
			}
		}
	}
}

// Level-by-level view: 1 element on level 0, then d, then d^2 etc.
// The yielded slices alias live storage and are only valid until
// the next mutation.
func (h *Heap) Levels() iter.Seq2[int, []int32] {
	return func(yield func(int, []int32) bool) {
		start, count, level := 0, 1, 0
		for start < h.size {
			end := min(h.size, start+count)
			if !yield(level, h.storage[start:end:end]) {
				return
			}
			start = end
			count *= h.d
			level++
		}
	}
}

// Bottom-up heapify over every non-leaf position, starting from
// the parent of the last live element. Sifting in reverse level
// order means the subtrees below are already valid on arrival.
func (h *Heap) build() error {
	if h.size < 2 {
		return nil
	}
	for i := (h.size - 2) / h.d; i >= 0; i-- {
		if err := h.down(i); err != nil {
			return err
		}
	}
	return nil
}

func (h *Heap) down(idx int) error {
	largest_idx := idx
	largest_val := h.storage[idx]
	for n := range h.d {
		son_idx, err := h.NthSon(idx, n)
		if errors.Is(err, ERR_SON_REACHED_END) {
			// sons are contiguous, nothing past this one
			break
		}
		if err != nil {
			return err
		}
		if h.storage[son_idx] > largest_val {
			largest_idx, largest_val = son_idx, h.storage[son_idx]
		}
	}
	if largest_idx != idx {
		h.storage[largest_idx], h.storage[idx] = h.storage[idx], largest_val
		return h.down(largest_idx)
	}
	return nil
}

func (h *Heap) up(idx int) error {
	for {
		parent_idx, err := h.Parent(idx)
		if errors.Is(err, ERR_PARENT_REACHED_END) {
			return nil
		}
		if err != nil {
			return err
		}
		// ties stay put
		if h.storage[parent_idx] >= h.storage[idx] {
			return nil
		}
		h.storage[parent_idx], h.storage[idx] = h.storage[idx], h.storage[parent_idx]
		idx = parent_idx
	}
}
