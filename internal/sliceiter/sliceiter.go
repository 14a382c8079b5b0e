// Package sliceiter provides a small forward/reverse slice cursor, adapted
// from LiamMartens-go-raptor's slice_it.go for walking a trip's stop_times
// in sequence order during GTFS ingestion (see internal/gtfsload).
package sliceiter

// Iterator walks data either forward from index 0 or backward from the
// last element.
type Iterator[T any] struct {
	data    []T
	length  int
	index   int
	reverse bool
}

// New builds an Iterator over data, walking backward from the end when
// reverse is true.
func New[T any](data []T, reverse bool) *Iterator[T] {
	it := &Iterator[T]{data: data, length: len(data), reverse: reverse}
	it.Reset()
	return it
}

// Len reports the number of elements in the underlying slice.
func (it *Iterator[T]) Len() int {
	return it.length
}

// HasNext reports whether Next can still be called.
func (it *Iterator[T]) HasNext() bool {
	if it.reverse {
		return it.index >= 0
	}
	return it.index < it.length
}

// Next returns the current element and advances the cursor. Panics if
// called without a preceding HasNext check.
func (it *Iterator[T]) Next() T {
	if !it.HasNext() {
		panic("sliceiter: Next called without a passing HasNext check")
	}
	val := it.data[it.index]
	if it.reverse {
		it.index--
	} else {
		it.index++
	}
	return val
}

// First returns the element iteration starts from (the last element when
// reverse). Panics on an empty slice.
func (it *Iterator[T]) First() T {
	if it.length == 0 {
		panic("sliceiter: First called on an empty slice")
	}
	if it.reverse {
		return it.data[it.length-1]
	}
	return it.data[0]
}

// Reset rewinds the cursor to its starting position.
func (it *Iterator[T]) Reset() {
	if it.reverse {
		it.index = it.length - 1
	} else {
		it.index = 0
	}
}
