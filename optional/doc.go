// Package optional provides a minimal present-or-absent value wrapper.
//
// [Option][T] is the return type of every list accessor that may fail to
// locate an element (At, First, Last, Random, Find, …). It makes "no result"
// a type-checked outcome instead of a sentinel or nullable return:
//
//	found := list.Of(1, 2, 3).Find(func(n, _ int) bool { return n > 1 })
//	fmt.Println(found.GetOr(-1)) // 2
//
// # Unwrapping
//
// Three unwraps are provided, in decreasing order of caller obligation:
//
//   - [Option.Get] — checked: returns (value, ok).
//   - [Option.GetOr] / [Option.GetOrElse] — default-substituting.
//   - [Option.MustGet] — unchecked: panics with [ErrEmptyOptional] when
//     absent, following the stdlib Must convention.
//
// # Portability
//
// Option maps to Optional in Java, Option in Rust, and Maybe in Haskell.
package optional
