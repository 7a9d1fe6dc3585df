package chain

import (
	"github.com/ib-77/adt3/pkg/adt/try"
)

// Chain wraps a try.Try to enable fluent chaining.
type Chain[T any] struct {
	res try.Try[T]
}

// Start creates a new chain from a try.Try.
func Start[T any](r try.Try[T]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](v T) Chain[T] {
	return Start(try.Succeed(v))
}

// Result returns the underlying try.Try.
func (c Chain[T]) Result() try.Try[T] {
	return c.res
}

// Then composes a function that already returns a try.Try[T].
func (c Chain[T]) Then(onSuccess func(T) try.Try[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: try.FlatMap(c.res, onSuccess)}
}

// ThenTry composes a function that returns (T, error), like repo calls.
func (c Chain[T]) ThenTry(tryOnSuccess func(T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: try.FlatMap(c.res, func(v T) try.Try[T] {
		return try.From(tryOnSuccess(v))
	})}
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(onSuccess func(T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: try.Map(c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the
// result.
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}
	if onSuccess != nil {
		c.res.Foreach(onSuccess)
	}
	return c
}

// Recover applies partial handlers to a failed chain.
func (c Chain[T]) Recover(cases ...try.Case[T]) Chain[T] {
	return Chain[T]{res: c.res.Recover(cases...)}
}

// Or keeps the receiver when it succeeded, the alternative otherwise.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return Chain[T]{res: c.res.OrElse(alternative.res)}
}

// Then switches the chain to a new value type via a Try-returning function.
func Then[T, U any](c Chain[T], onSuccess func(T) try.Try[U]) Chain[U] {
	return Chain[U]{res: try.FlatMap(c.res, onSuccess)}
}

// ThenTry switches the chain to a new value type via a (U, error) function.
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(T) (U, error)) Chain[U] {
	return Chain[U]{res: try.FlatMap(c.res, func(v T) try.Try[U] {
		return try.From(tryOnSuccess(v))
	})}
}

// Map transforms the chained value to a new type.
func Map[T, U any](c Chain[T], onSuccess func(T) U) Chain[U] {
	return Chain[U]{res: try.Map(c.res, onSuccess)}
}

// Finally collapses the chain into a final value via success/failure
// handlers.
func Finally[T, U any](c Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	if c.res.IsFailure() {
		return onFailure(c.res.Err())
	}
	return onSuccess(c.res.Get())
}
