// Package option provides Option[T], an immutable container that either
// holds a value (Present) or holds nothing (Empty). It replaces nil
// pointers and ok-flags with a single composable value type.
//
// Highlights:
// - Present/Empty/FromPtr: construct an Option[T]
// - Get/GetOrElse/Ptr: extract the value (Get panics with ErrNoValue when empty)
// - Map/FlatMap: transform the value, short-circuiting on Empty
// - Filter/FilterNot/Find/Exists/Forall/Contains: predicate helpers
// - Fold/FoldLeft/FoldRight: reduce to a plain value
// - Foreach: run a side effect on the value, if any
// - OrElse/ToSlice: fallbacks and sequence views
//
// Sequencing several independent options follows the explicit chaining
// convention: nested FlatMap calls ending in one Map. The whole chain
// yields Empty as soon as any step is Empty:
//
//	sum := option.FlatMap(a, func(x int) option.Option[int] {
//		return option.Map(b, func(y int) int { return x + y })
//	})
//
// Option[T] is the leaf of the adt packages; either and try convert to
// and from it.
package option
