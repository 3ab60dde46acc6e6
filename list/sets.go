package list

// ─────────────────────────────────────────────────────────────────────────────
// Set-like operations
//
// Elements are compared by Go's default interface equality (the same rule
// map keys follow): comparable dynamic types compare by value, uncomparable
// ones panic at runtime.
// ─────────────────────────────────────────────────────────────────────────────

// Union returns the concatenation of l and other with duplicates removed,
// preserving first-occurrence order.
func (l *List[T]) Union(other *List[T]) *List[T] {
	return l.Concat(other).Unique()
}

// Intersection returns the elements of l that also occur in other, in l's
// order. Each occurrence in other is consumed at most once, so duplicates
// in l survive only as often as other supplies them.
func (l *List[T]) Intersection(other *List[T]) *List[T] {
	remaining := make(map[any]int, len(other.items))
	for _, item := range other.items {
		remaining[any(item)]++
	}
	return l.Filter(func(item T, _ int) bool {
		k := any(item)
		if remaining[k] == 0 {
			return false
		}
		remaining[k]--
		return true
	})
}

// Difference returns the elements of l absent from other's value set, in
// l's order.
func (l *List[T]) Difference(other *List[T]) *List[T] {
	set := make(map[any]struct{}, len(other.items))
	for _, item := range other.items {
		set[any(item)] = struct{}{}
	}
	return l.Filter(func(item T, _ int) bool {
		_, found := set[any(item)]
		return !found
	})
}

// Unique returns a new list with duplicate elements removed; the first
// occurrence wins and order is preserved.
func (l *List[T]) Unique() *List[T] {
	return l.UniqueBy(func(item T, _ int) any { return any(item) })
}

// UniqueBy returns a new list de-duplicated by the key derived with
// fn(item, index); the first occurrence per key wins and order is preserved.
func (l *List[T]) UniqueBy(fn func(T, int) any) *List[T] {
	seen := make(map[any]struct{}, len(l.items))
	return l.Filter(func(item T, i int) bool {
		k := fn(item, i)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & partitioning
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy partitions the elements into a map from the key returned by
// fn(item, index) to the ordered slice of matching elements.
//
// For non-string keys use the package-level [GroupBy].
func (l *List[T]) GroupBy(fn func(T, int) string) map[string][]T {
	groups := make(map[string][]T)
	for i, item := range l.items {
		k := fn(item, i)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// CountBy records the number of elements per key returned by fn(item, index).
//
// For non-string keys use the package-level [CountBy].
func (l *List[T]) CountBy(fn func(T, int) string) map[string]int {
	counts := make(map[string]int)
	for i, item := range l.items {
		counts[fn(item, i)]++
	}
	return counts
}

// Partition splits the list in a single pass into two new lists: the
// elements satisfying fn(item, index), in order, and the rest, in order.
// The two sizes always sum to Size().
func (l *List[T]) Partition(fn func(T, int) bool) (*List[T], *List[T]) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for i, item := range l.items {
		if fn(item, i) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return &List[T]{items: pass}, &List[T]{items: fail}
}
