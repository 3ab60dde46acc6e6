package list

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/hasbyte1/go-immutable-list/optional"
)

// ─────────────────────────────────────────────────────────────────────────────
// Ordering & randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a new list sorted by less[0]. The sort is stable: equal
// elements preserve their original order. When no comparator is given,
// elements sort by their ascending string rendering (fmt.Sprint), matching
// the default array-sort behaviour of dynamic hosts.
func (l *List[T]) Sort(less ...func(a, b T) bool) *List[T] {
	cmp := func(a, b T) bool { return fmt.Sprint(a) < fmt.Sprint(b) }
	if len(less) > 0 {
		cmp = less[0]
	}
	out := l.All()
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) })
	return &List[T]{items: out}
}

// Reverse returns a new list with the element order fully reversed.
func (l *List[T]) Reverse() *List[T] {
	n := len(l.items)
	out := make([]T, n)
	for i, item := range l.items {
		out[n-1-i] = item
	}
	return &List[T]{items: out}
}

// Rotate returns a new list rotated by count positions. A positive count
// rotates toward the tail (the last count elements move to the front); a
// negative count rotates toward the head. count is reduced modulo Size()
// first; rotating an empty list is a no-op.
func (l *List[T]) Rotate(count int) *List[T] {
	n := len(l.items)
	if n == 0 {
		return Empty[T]()
	}
	k := ((count % n) + n) % n
	if k == 0 {
		return l.Clone()
	}
	out := make([]T, 0, n)
	out = append(out, l.items[n-k:]...)
	out = append(out, l.items[:n-k]...)
	return &List[T]{items: out}
}

// Shuffle returns a new, uniformly-random permutation of the list using a
// Fisher–Yates shuffle. An optional pass count repeats the shuffle that many
// times (default 1); extra passes do not change the uniformity of the final
// distribution and exist for API compatibility. The receiver is never
// mutated.
func (l *List[T]) Shuffle(passes ...int) *List[T] {
	n := 1
	if len(passes) > 0 {
		n = passes[0]
	}
	out := l.All()
	for p := 0; p < n; p++ {
		rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	return &List[T]{items: out}
}

// Random returns one element selected uniformly at random (each element
// equally likely); absent when the list is empty.
func (l *List[T]) Random() optional.Option[T] {
	if len(l.items) == 0 {
		return optional.None[T]()
	}
	return optional.Some(l.items[rand.Intn(len(l.items))])
}

// Chunk splits the list into consecutive sub-groups of length size; the last
// group may be shorter. Returns [ErrInvalidChunkSize] when size <= 0.
func (l *List[T]) Chunk(size int) (*List[[]T], error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	chunks := make([][]T, 0, (len(l.items)+size-1)/size)
	for i := 0; i < len(l.items); i += size {
		end := i + size
		if end > len(l.items) {
			end = len(l.items)
		}
		chunk := make([]T, end-i)
		copy(chunk, l.items[i:end])
		chunks = append(chunks, chunk)
	}
	return &List[[]T]{items: chunks}, nil
}
