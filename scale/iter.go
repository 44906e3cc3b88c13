package scale

import "github.com/jsphweid/tonality/harmony"

// Steppable is anything a scale can be laid onto: harmony.Interval and
// harmony.Pitch both qualify.
type Steppable[T any] interface {
	Add(harmony.Interval) T
}

// Iterator walks a scale upwards from a root, one degree per call to Next,
// moving the root up an octave after each pass. It never runs out; bound it
// with Take or your own loop. Build a new one to start over.
type Iterator[T Steppable[T]] struct {
	root      T
	index     int
	intervals []harmony.Interval
}

func NewIterator[T Steppable[T]](root T, s Scale) *Iterator[T] {
	return &Iterator[T]{root: root, intervals: s.steps()}
}

func (it *Iterator[T]) Next() T {
	item := it.root.Add(it.intervals[it.index])
	it.index++
	if it.index >= len(it.intervals) {
		it.root = it.root.Add(harmony.Octave)
		it.index = 0
	}
	return item
}

// Take returns the next n items.
func (it *Iterator[T]) Take(n int) []T {
	res := make([]T, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, it.Next())
	}
	return res
}
