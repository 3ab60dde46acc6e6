package list

import "reflect"

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (new-list-producing)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new list with only the elements for which fn(item, index)
// returns true, in original order.
func (l *List[T]) Filter(fn func(T, int) bool) *List[T] {
	out := make([]T, 0, len(l.items))
	for i, item := range l.items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return &List[T]{items: out}
}

// Map returns a new List[any] with each element transformed by
// fn(item, index). Order-preserving, same length.
//
// For type-safe transformation to a concrete type U, use the package-level
// [Map] function instead.
func (l *List[T]) Map(fn func(T, int) any) *List[any] {
	out := make([]any, len(l.items))
	for i, item := range l.items {
		out[i] = fn(item, i)
	}
	return &List[any]{items: out}
}

// Compact returns a new list with nil-valued elements dropped. All other
// zero values (0, "", false, empty structs) are retained.
func (l *List[T]) Compact() *List[T] {
	return l.Filter(func(item T, _ int) bool { return !isNilValue(item) })
}

// CompactMap maps each element with fn(item, index) and drops nil results,
// in a single pass.
//
// For a type-safe variant with an Option-returning callback, use the
// package-level [CompactMap].
func (l *List[T]) CompactMap(fn func(T, int) any) *List[any] {
	out := make([]any, 0, len(l.items))
	for i, item := range l.items {
		if v := fn(item, i); !isNilValue(v) {
			out = append(out, v)
		}
	}
	return &List[any]{items: out}
}

// FlatMap maps each element with fn(item, index) and flattens the results
// exactly one level: a result that is itself a sequence (a slice, array, or
// *List) is spliced in-place as individual elements; any other result is
// kept as a single element.
//
// For type-safe flat-mapping with a slice-returning callback, use the
// package-level [FlatMap].
func (l *List[T]) FlatMap(fn func(T, int) any) *List[any] {
	out := make([]any, 0, len(l.items))
	for i, item := range l.items {
		out = append(out, spliceValue(fn(item, i))...)
	}
	return &List[any]{items: out}
}

// Flat flattens nested sequence elements (slices, arrays, or *List values)
// recursively up to depth levels. The depth defaults to 1 when omitted;
// a depth of 0 returns the elements unflattened.
func (l *List[T]) Flat(depth ...int) *List[any] {
	d := 1
	if len(depth) > 0 {
		d = depth[0]
	}
	src := make([]any, len(l.items))
	for i, item := range l.items {
		src[i] = item
	}
	return &List[any]{items: flatten(src, d)}
}

// Reduce folds the list left-to-right into a single value of the element
// type T, starting from initial.
//
// For folds that change the type (T → U), use the package-level [Reduce].
func (l *List[T]) Reduce(initial T, fn func(acc, item T) T) T {
	acc := initial
	for _, item := range l.items {
		acc = fn(acc, item)
	}
	return acc
}

// ReduceRight folds the list right-to-left, from the last element to the
// first, starting from initial.
func (l *List[T]) ReduceRight(initial T, fn func(acc, item T) T) T {
	acc := initial
	for i := len(l.items) - 1; i >= 0; i-- {
		acc = fn(acc, l.items[i])
	}
	return acc
}

// Enumerate pairs each element with its zero-based index, producing a list
// of (index, item) pairs in original order.
func (l *List[T]) Enumerate() *List[Pair[int, T]] {
	out := make([]Pair[int, T], len(l.items))
	for i, item := range l.items {
		out[i] = Pair[int, T]{First: i, Second: item}
	}
	return &List[Pair[int, T]]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Flattening internals
// ─────────────────────────────────────────────────────────────────────────────

// anyLister is satisfied by every *List instantiation and lets the
// flattening code splice nested lists without knowing their element type.
type anyLister interface {
	anyItems() []any
}

func (l *List[T]) anyItems() []any {
	out := make([]any, len(l.items))
	for i, item := range l.items {
		out[i] = item
	}
	return out
}

// spliceValue renders v as the elements it contributes to a flattened
// result: its own elements when it is a sequence, itself otherwise.
func spliceValue(v any) []any {
	if nested, ok := sequenceOf(v); ok {
		return nested
	}
	return []any{v}
}

// sequenceOf returns the elements of v when v is a slice, array, or *List.
func sequenceOf(v any) ([]any, bool) {
	if al, ok := v.(anyLister); ok {
		return al.anyItems(), true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func flatten(items []any, depth int) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		nested, ok := sequenceOf(item)
		if !ok || depth <= 0 {
			out = append(out, item)
			continue
		}
		out = append(out, flatten(nested, depth-1)...)
	}
	return out
}

// isNilValue reports whether v holds no value: a nil interface or a nil
// pointer, map, slice, function, or channel.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
