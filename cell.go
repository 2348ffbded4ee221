// Package cell provides a shared mutable cell: a zero-overhead wrapper
// around a value that marks it as intentionally shared between
// goroutines. The wrapper supplies no synchronization of its own;
// establishing whatever locking, atomics, or ordering the shared value
// needs is entirely the caller's job.
package cell

import "unsafe"

// A Cell holds a single value of type T and hands out pointers to it on
// request. Wrapping a value in a Cell signals that the value is meant to
// be reachable from multiple goroutines at once; it does not make any
// access to the value safe by itself. A T that is unsafe to share
// remains unsafe to share inside a Cell.
//
// A Cell has exactly the size and alignment of T, with the value at
// offset 0, so a *Cell[T] and a *T for the same memory are freely
// interconvertible. RawGet relies on this.
//
// The zero Cell is valid and holds the zero value of T.
type Cell[T any] struct {
	value T
}

// New returns a Cell wrapping value.
func New[T any](value T) Cell[T] {
	return Cell[T]{value: value}
}

// Unwrap moves the wrapped value out of the cell. The cell should not be
// used afterward; pointers previously obtained from it keep pointing at
// the cell's memory, not at the returned copy.
func (c Cell[T]) Unwrap() T {
	return c.value
}

// Get returns a pointer to the wrapped value. It never blocks and never
// reads or writes the value itself.
//
// The pointer is as unchecked as pointers get: Get does not require, and
// cannot verify, that the caller has exclusive access to the cell.
// Before writing through the returned pointer, the caller must ensure no
// other goroutine is reading or writing the value at that moment; before
// reading through it, that no other goroutine is writing. Violating this
// is a data race. The discipline that guarantees it — a mutex around
// every access, atomic operations on the pointed-to word, partitioning
// writers across disjoint regions — lives entirely outside the cell.
func (c *Cell[T]) Get() *T {
	return &c.value
}

// Exclusive returns a pointer to the wrapped value for a caller that
// already has exclusive access to the cell — for example, before the
// cell has been published to other goroutines, or after they have all
// been joined. Under that precondition no further synchronization is
// needed to use the pointer, since nothing else can touch the cell's
// contents. Exclusive is otherwise identical to Get.
func (c *Cell[T]) Exclusive() *T {
	return &c.value
}

// RawGet converts a pointer to a cell into a pointer to its wrapped
// value. It is a pure pointer reinterpretation: unlike Get it performs
// no field selection and touches no memory, so it may be called with a
// nil pointer (yielding nil) or with a pointer whose target is not yet
// initialized. Only a later dereference of the result carries any
// precondition.
func RawGet[T any](c *Cell[T]) *T {
	// The value is the cell's only field, so the two pointers address
	// the same memory.
	return (*T)(unsafe.Pointer(c))
}
