package list

import "github.com/hasbyte1/go-immutable-list/optional"

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of all elements using fn to extract numeric values.
func (l *List[T]) Sum(fn func(T) float64) float64 {
	var sum float64
	for _, item := range l.items {
		sum += fn(item)
	}
	return sum
}

// Average returns the arithmetic mean of all elements, or 0 for an empty
// list.
func (l *List[T]) Average(fn func(T) float64) float64 {
	if len(l.items) == 0 {
		return 0
	}
	return l.Sum(fn) / float64(len(l.items))
}

// Min returns the element with the smallest value extracted by fn; absent
// when the list is empty. Ties keep the earliest element.
func (l *List[T]) Min(fn func(T) float64) optional.Option[T] {
	if len(l.items) == 0 {
		return optional.None[T]()
	}
	minItem, minVal := l.items[0], fn(l.items[0])
	for _, item := range l.items[1:] {
		if v := fn(item); v < minVal {
			minVal, minItem = v, item
		}
	}
	return optional.Some(minItem)
}

// Max returns the element with the largest value extracted by fn; absent
// when the list is empty. Ties keep the earliest element.
func (l *List[T]) Max(fn func(T) float64) optional.Option[T] {
	if len(l.items) == 0 {
		return optional.None[T]()
	}
	maxItem, maxVal := l.items[0], fn(l.items[0])
	for _, item := range l.items[1:] {
		if v := fn(item); v > maxVal {
			maxVal, maxItem = v, item
		}
	}
	return optional.Some(maxItem)
}
