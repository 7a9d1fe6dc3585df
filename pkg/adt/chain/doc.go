// Package chain provides a fluent wrapper around try.Try[T] for building
// synchronous short-circuiting pipelines.
//
// It composes the try combinators behind a convenient Chain[T] type, so a
// sequence of fallible steps reads top to bottom instead of nesting.
//
// Key operations:
// - Start/FromValue: begin a chain from a Try[T] or a plain value
// - Then: switch to a new Try[T] via a function
// - ThenTry: call a function (T, error) and convert the error to a failure
// - Map: transform the successful value
// - Ensure: run side effects on success or failure without changing the result
// - Recover: apply partial handlers to a failure
// - Or: keep the first successful chain
// - Finally: collapse the chain into a final value via handlers
//
// Type-changing steps use the package-level Then/Map/Finally functions,
// since Go methods cannot introduce type parameters.
package chain
