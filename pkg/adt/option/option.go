package option

import "errors"

// ErrNoValue is the panic value of Get on an empty Option.
var ErrNoValue = errors.New("option: no value present")

// Option is an immutable presence/absence container. The zero value is Empty.
type Option[T any] struct {
	value   T
	present bool
}

// Present wraps a value. The payload is stored as given; absence is only
// ever expressed by the Empty variant, never by a sentinel payload.
func Present[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// Empty returns the absent Option.
func Empty[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts Go's native nullable representation: nil becomes Empty,
// anything else becomes Present of the pointed-to value.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Empty[T]()
	}
	return Present(*p)
}

func (o Option[T]) IsDefined() bool {
	return o.present
}

func (o Option[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the contained value and panics with ErrNoValue when empty.
func (o Option[T]) Get() T {
	if !o.present {
		panic(ErrNoValue)
	}
	return o.value
}

func (o Option[T]) GetOrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// Ptr is the inverse of FromPtr: the value's address when present, nil
// when empty.
func (o Option[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) Exists(pred func(T) bool) bool {
	return o.present && pred(o.value)
}

// Forall is vacuously true on Empty, the opposite polarity of Exists.
func (o Option[T]) Forall(pred func(T) bool) bool {
	return !o.present || pred(o.value)
}

// Find returns the Option itself when present and the predicate holds,
// Empty otherwise.
func (o Option[T]) Find(pred func(T) bool) Option[T] {
	if o.present && pred(o.value) {
		return o
	}
	return Empty[T]()
}

func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if !o.present || pred(o.value) {
		return o
	}
	return Empty[T]()
}

func (o Option[T]) FilterNot(pred func(T) bool) Option[T] {
	if !o.present || !pred(o.value) {
		return o
	}
	return Empty[T]()
}

// Foreach invokes effect exactly once when present, never when empty.
func (o Option[T]) Foreach(effect func(T)) {
	if o.present {
		effect(o.value)
	}
}

func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alt
}

// ToSlice returns a zero- or one-element slice.
func (o Option[T]) ToSlice() []T {
	if !o.present {
		return []T{}
	}
	return []T{o.value}
}

// Contains reports whether the Option holds exactly x.
func Contains[T comparable](o Option[T], x T) bool {
	return o.present && o.value == x
}

// Map transforms the value when present; Empty maps to Empty.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.present {
		return Empty[U]()
	}
	return Present(f(o.value))
}

// FlatMap chains an option-returning function, short-circuiting on Empty.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.present {
		return Empty[U]()
	}
	return f(o.value)
}

// Fold reduces to f(value) when present, ifEmpty otherwise. Equivalent to
// Map(o, f).GetOrElse(ifEmpty).
func Fold[T, U any](o Option[T], ifEmpty U, f func(T) U) U {
	if !o.present {
		return ifEmpty
	}
	return f(o.value)
}

// FoldLeft applies op(start, value) when present, start otherwise.
func FoldLeft[T, U any](o Option[T], start U, op func(U, T) U) U {
	if !o.present {
		return start
	}
	return op(start, o.value)
}

// FoldRight applies op(value, start) when present, start otherwise. For a
// zero-or-one-element container the fold order only changes the argument
// positions; both directions are provided for API parity.
func FoldRight[T, U any](o Option[T], start U, op func(T, U) U) U {
	if !o.present {
		return start
	}
	return op(o.value, start)
}
