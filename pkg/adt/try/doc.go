// Package try provides Try[T], the immutable outcome of a fallible
// computation: either a success value or a captured recoverable error.
// Panics raised by user code are classified by an injectable fatal
// predicate; recoverable ones become failure values, fatal ones always
// propagate uncaught.
//
// Highlights:
// - Succeed/Fail/From/Evaluate: construct a Try[T]
// - Get/GetOrElse/Err: extract the value (Get re-panics a captured error)
// - Map/FlatMap/Flatten/Transform: compose, short-circuiting on failure
// - Filter: reject a success via predicate, producing PredicateError
// - Recover/RecoverWith: ordered partial handlers over the captured error
// - Failed/OrElse/Foreach/ToOption: inversion, fallback, effects, conversion
//
// A failed Try is inert data: the underlying error only resurfaces as a
// panic when Get is called. Chained FlatMap calls short-circuit at the
// first failure, carrying the causal error forward.
package try
