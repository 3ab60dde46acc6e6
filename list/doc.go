// Package list provides a generic, immutable List type with a rich,
// chainable API of transformation, query, and combination operations.
//
// # Overview
//
// The central type is [List][T], a generic wrapper around an ordered backing
// slice of T. Every instance method is a pure function of the receiver and
// its arguments:
//
//	result := list.Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    Reverse().
//	    Splice(1, 2, 42)
//
// # Immutability
//
// All transformation methods return a *new* List, leaving the original
// unchanged — Sort, Reverse, Shuffle, and Splice included. This makes List
// values safe to read across goroutines without locking and avoids
// accidental aliasing bugs in pipelines.
//
// # Absence as a value
//
// Accessors that may fail to locate an element return an [optional.Option]
// rather than a sentinel or a nullable value:
//
//	list.Of(1, 2, 3).At(7).IsAbsent()     // true
//	list.Empty[int]().Random().GetOr(-1)  // -1
//
// # Index conventions and error policy
//
// Index arguments accept negative values counting back from the end (-1 is
// the last element). Structural edits with an out-of-range resolved index
// return an unchanged copy instead of failing; only argument-shape
// violations error, with sentinels matchable via errors.Is:
//
//	_, err := l.Chunk(0)                          // ErrInvalidChunkSize
//	errors.Is(err, list.ErrInvalidArgument)       // true
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions:
//
//	// Method-based (returns List[any]):
//	l.Map(func(n int, _ int) any { return n * 2 })
//
//	// Package-level (returns List[string], fully typed):
//	list.Map(l, func(n int, _ int) string { return strconv.Itoa(n) })
//
// Package-level functions: [Map], [FlatMap], [CompactMap], [Reduce],
// [ReduceRight], [Zip], [Collapse], [GroupBy], [CountBy], [KeyBy], [ToSet],
// [Contains].
//
// # Iteration
//
// Lists are consumable by range-over-func via [List.Values]; each pass
// yields every element once, in order, without mutating the list:
//
//	for v := range l.Values() { … }
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [List.Macro]:
//
//	list.RegisterMacro("evens", func(lst any, _ ...any) any {
//	    l := lst.(*list.List[int])
//	    return l.Filter(func(n, _ int) bool { return n%2 == 0 })
//	})
//
//	evens, _ := list.Of(1, 2, 3, 4).Macro("evens")
package list
