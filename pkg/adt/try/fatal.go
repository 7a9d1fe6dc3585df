package try

import (
	"errors"
	"fmt"
)

// Fatal marks a panic value as unrecoverable. Evaluate and the guarded
// combinators never capture it; it propagates to the caller untouched.
type Fatal struct {
	Reason any
}

func (f Fatal) Error() string {
	return fmt.Sprintf("fatal: %v", f.Reason)
}

// Classifier reports whether a recovered panic value must propagate
// instead of being captured as a failure.
type Classifier func(v any) bool

var fatalClassifier Classifier = DefaultClassifier

// DefaultClassifier treats a panic value as fatal when it is a Fatal, or
// an error wrapping one. Everything else is recoverable.
func DefaultClassifier(v any) bool {
	if _, ok := v.(Fatal); ok {
		return true
	}
	err, ok := v.(error)
	if !ok {
		return false
	}
	var f Fatal
	return errors.As(err, &f)
}

// SetClassifier injects the host's fatal/recoverable policy. A nil
// classifier restores the default. The library is single-threaded by
// contract, so no synchronization is applied.
func SetClassifier(c Classifier) {
	if c == nil {
		c = DefaultClassifier
	}
	fatalClassifier = c
}

// PanicError wraps a captured panic payload that is not itself an error.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return PanicError{Value: v}
}

// guard runs f, capturing recoverable panics as failures and re-raising
// fatal ones.
func guard[T any](f func() Try[T]) (out Try[T]) {
	defer func() {
		if v := recover(); v != nil {
			if fatalClassifier(v) {
				panic(v)
			}
			out = Fail[T](asError(v))
		}
	}()
	return f()
}
