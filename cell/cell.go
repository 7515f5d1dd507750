package cell

import (
	"github.com/msaf1980/go-syncutils/atomic"
)

// Cell holds exactly one non-nil *T. The zero Cell is not ready for use,
// create cells with New or MustNew. A Cell must not be copied after creation.
type Cell[T any] struct {
	slot atomic.Pointer[T]
}

// New creates a cell holding initial.
func New[T any](initial *T) (*Cell[T], error) {
	if initial == nil {
		return nil, ErrNilValue
	}

	c := &Cell[T]{}
	c.slot.Store(initial)

	return c, nil
}

// MustNew is like New but panics if initial is nil.
func MustNew[T any](initial *T) *Cell[T] {
	c, err := New(initial)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the value currently stored.
func (c *Cell[T]) Get() *T {
	return c.slot.Load()
}

// Set stores v and returns the value it replaced.
func (c *Cell[T]) Set(v *T) *T {
	if v == nil {
		panic(ErrNilValue)
	}
	return c.slot.Swap(v)
}

// CompareAndSet stores v if the cell currently holds expected (the same
// pointer) and reports whether it did. It never retries.
func (c *Cell[T]) CompareAndSet(expected, v *T) bool {
	if v == nil {
		panic(ErrNilValue)
	}
	return c.slot.CompareAndSwap(expected, v)
}
