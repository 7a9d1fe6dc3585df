package try

import (
	"errors"
	"fmt"

	"github.com/ib-77/adt3/pkg/adt/option"
)

// ErrNoFailure is carried by the Try returned from Failed on a success.
var ErrNoFailure = errors.New("try: Failed called on a success")

// PredicateError is the failure produced by Filter when a success value
// does not satisfy the predicate.
type PredicateError struct {
	Value any
}

func (e PredicateError) Error() string {
	return fmt.Sprintf("Predicate does not hold for %v", e.Value)
}

// Try is the immutable outcome of a fallible computation: a success value
// or a captured error. The zero value is a failure with a nil error; use
// the factories.
type Try[T any] struct {
	value T
	err   error
	ok    bool
}

// Succeed wraps a value as a successful outcome.
func Succeed[T any](v T) Try[T] {
	return Try[T]{value: v, ok: true}
}

// Fail wraps an already-captured error as a failed outcome.
func Fail[T any](err error) Try[T] {
	return Try[T]{err: err}
}

// From lifts Go's native (value, error) pair. The error is a value, not a
// raised condition, so no fatality classification applies.
func From[T any](v T, err error) Try[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Succeed(v)
}

// Evaluate runs the thunk. A normal completion yields a success; a
// recoverable panic is captured as a failure; a fatal panic propagates.
func Evaluate[T any](thunk func() T) Try[T] {
	return guard(func() Try[T] {
		return Succeed(thunk())
	})
}

func (t Try[T]) IsSuccess() bool {
	return t.ok
}

func (t Try[T]) IsFailure() bool {
	return !t.ok
}

// Err returns the captured error, nil on success.
func (t Try[T]) Err() error {
	return t.err
}

// Get returns the success value; on a failure it re-raises the captured
// error as a panic.
func (t Try[T]) Get() T {
	if !t.ok {
		panic(t.err)
	}
	return t.value
}

func (t Try[T]) GetOrElse(def T) T {
	if t.ok {
		return t.value
	}
	return def
}

// Filter keeps a success whose value satisfies the predicate and turns a
// rejection into a PredicateError failure. A failure passes through with
// the predicate never evaluated.
func (t Try[T]) Filter(pred func(T) bool) Try[T] {
	if !t.ok {
		return t
	}
	return guard(func() Try[T] {
		if pred(t.value) {
			return t
		}
		return Fail[T](PredicateError{Value: t.value})
	})
}

// Foreach invokes effect once on a success, never on a failure.
func (t Try[T]) Foreach(effect func(T)) {
	if t.ok {
		effect(t.value)
	}
}

// Failed inverts the outcome: a failure's error becomes an ordinary
// success value, a success becomes a failure with ErrNoFailure.
func (t Try[T]) Failed() Try[error] {
	if t.ok {
		return Fail[error](ErrNoFailure)
	}
	return Succeed(t.err)
}

// OrElse returns the receiver on success, the alternative otherwise. The
// alternative is an already-evaluated outcome and may itself be a failure.
func (t Try[T]) OrElse(alt Try[T]) Try[T] {
	if t.ok {
		return t
	}
	return alt
}

// ToOption drops the error: Present on success, Empty on failure.
func (t Try[T]) ToOption() option.Option[T] {
	if !t.ok {
		return option.Empty[T]()
	}
	return option.Present(t.value)
}

// Case is one arm of a partial recovery handler. A nil Match matches any
// error.
type Case[T any] struct {
	Match func(error) bool
	Then  func(error) T
}

// CaseWith is a Case whose handler returns a full Try, allowing recovery
// into a different failure.
type CaseWith[T any] struct {
	Match func(error) bool
	Then  func(error) Try[T]
}

// Recover applies the first matching case to the captured error. No match
// returns the original failure untouched; a panic raised by the chosen
// handler is captured under the standard rule. A success passes through.
func (t Try[T]) Recover(cases ...Case[T]) Try[T] {
	if t.ok {
		return t
	}
	return guard(func() Try[T] {
		for _, c := range cases {
			if c.Match == nil || c.Match(t.err) {
				return Succeed(c.Then(t.err))
			}
		}
		return t
	})
}

// RecoverWith is Recover for handlers that return a Try of their own.
func (t Try[T]) RecoverWith(cases ...CaseWith[T]) Try[T] {
	if t.ok {
		return t
	}
	return guard(func() Try[T] {
		for _, c := range cases {
			if c.Match == nil || c.Match(t.err) {
				return c.Then(t.err)
			}
		}
		return t
	})
}

// Map transforms a success value under the same capture rule as Evaluate;
// a failure passes through.
func Map[T, U any](t Try[T], f func(T) U) Try[U] {
	if !t.ok {
		return Fail[U](t.err)
	}
	return guard(func() Try[U] {
		return Succeed(f(t.value))
	})
}

// FlatMap chains a Try-returning function on a success; a panic raised by
// f itself is captured, distinct from a failure already inside the Try it
// returns. A failure passes through.
func FlatMap[T, U any](t Try[T], f func(T) Try[U]) Try[U] {
	if !t.ok {
		return Fail[U](t.err)
	}
	return guard(func() Try[U] {
		return f(t.value)
	})
}

// Flatten collapses one level of nesting: a succeeded outer yields the
// inner outcome in whatever state it is; a failed outer stays failed.
func Flatten[T any](t Try[Try[T]]) Try[T] {
	if !t.ok {
		return Fail[T](t.err)
	}
	return t.value
}

// Transform dispatches to exactly one handler by current state, unifying
// both branches into one Try. Panics inside the invoked handler are
// captured per the standard rule.
func Transform[T, U any](t Try[T], onSuccess func(T) Try[U], onFailure func(error) Try[U]) Try[U] {
	return guard(func() Try[U] {
		if t.ok {
			return onSuccess(t.value)
		}
		return onFailure(t.err)
	})
}
