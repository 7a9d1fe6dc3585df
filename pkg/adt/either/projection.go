package either

import (
	"errors"
	"fmt"

	"github.com/ib-77/adt3/pkg/adt/option"
)

// ErrWrongSide is the panic value of a projection Get whose Either holds
// the other side.
var ErrWrongSide = errors.New("either: projection does not match active side")

// LeftProjection is a transient view over an Either that makes combinators
// act only when the Either is a Left. It carries the viewed Either and the
// side selection is the projection type itself.
type LeftProjection[L, R any] struct {
	e Either[L, R]
}

// RightProjection is the symmetric view selective on Right.
type RightProjection[L, R any] struct {
	e Either[L, R]
}

// Either returns the underlying disjunction.
func (p LeftProjection[L, R]) Either() Either[L, R] {
	return p.e
}

func (p RightProjection[L, R]) Either() Either[L, R] {
	return p.e
}

// Get returns the left value and panics with a wrapped ErrWrongSide when
// the Either is a Right.
func (p LeftProjection[L, R]) Get() L {
	if p.e.isRight {
		panic(fmt.Errorf("%w: Get on LeftProjection of Right", ErrWrongSide))
	}
	return p.e.left
}

func (p RightProjection[L, R]) Get() R {
	if !p.e.isRight {
		panic(fmt.Errorf("%w: Get on RightProjection of Left", ErrWrongSide))
	}
	return p.e.right
}

func (p LeftProjection[L, R]) GetOrElse(def L) L {
	if p.e.isRight {
		return def
	}
	return p.e.left
}

func (p RightProjection[L, R]) GetOrElse(def R) R {
	if !p.e.isRight {
		return def
	}
	return p.e.right
}

// ToOption returns Present of the value on the matching side, Empty otherwise.
func (p LeftProjection[L, R]) ToOption() option.Option[L] {
	if p.e.isRight {
		return option.Empty[L]()
	}
	return option.Present(p.e.left)
}

func (p RightProjection[L, R]) ToOption() option.Option[R] {
	if !p.e.isRight {
		return option.Empty[R]()
	}
	return option.Present(p.e.right)
}

func (p LeftProjection[L, R]) ToSlice() []L {
	if p.e.isRight {
		return []L{}
	}
	return []L{p.e.left}
}

func (p RightProjection[L, R]) ToSlice() []R {
	if !p.e.isRight {
		return []R{}
	}
	return []R{p.e.right}
}

// Foreach invokes effect once on the matching side, never on the other.
func (p LeftProjection[L, R]) Foreach(effect func(L)) {
	if !p.e.isRight {
		effect(p.e.left)
	}
}

func (p RightProjection[L, R]) Foreach(effect func(R)) {
	if p.e.isRight {
		effect(p.e.right)
	}
}

func (p LeftProjection[L, R]) Exists(pred func(L) bool) bool {
	return !p.e.isRight && pred(p.e.left)
}

func (p RightProjection[L, R]) Exists(pred func(R) bool) bool {
	return p.e.isRight && pred(p.e.right)
}

// Forall is vacuously true on the non-matching side.
func (p LeftProjection[L, R]) Forall(pred func(L) bool) bool {
	return p.e.isRight || pred(p.e.left)
}

func (p RightProjection[L, R]) Forall(pred func(R) bool) bool {
	return !p.e.isRight || pred(p.e.right)
}

// Filter keeps the whole Either when the matching side satisfies the
// predicate; any other case is Empty.
func (p LeftProjection[L, R]) Filter(pred func(L) bool) option.Option[Either[L, R]] {
	if !p.e.isRight && pred(p.e.left) {
		return option.Present(p.e)
	}
	return option.Empty[Either[L, R]]()
}

func (p RightProjection[L, R]) Filter(pred func(R) bool) option.Option[Either[L, R]] {
	if p.e.isRight && pred(p.e.right) {
		return option.Present(p.e)
	}
	return option.Empty[Either[L, R]]()
}

// LeftMap replaces the left side with f(value) when the Either is a Left;
// a Right passes through with its payload preserved as-is.
func LeftMap[L, R, U any](p LeftProjection[L, R], f func(L) U) Either[U, R] {
	if p.e.isRight {
		return Right[U, R](p.e.right)
	}
	return Left[U, R](f(p.e.left))
}

// RightMap is the symmetric transform on the right side.
func RightMap[L, R, U any](p RightProjection[L, R], f func(R) U) Either[L, U] {
	if !p.e.isRight {
		return Left[L, U](p.e.left)
	}
	return Right[L, U](f(p.e.right))
}

// LeftFlatMap chains an Either-returning function on the left side; a
// Right passes through unchanged.
func LeftFlatMap[L, R, U any](p LeftProjection[L, R], f func(L) Either[U, R]) Either[U, R] {
	if p.e.isRight {
		return Right[U, R](p.e.right)
	}
	return f(p.e.left)
}

// RightFlatMap chains an Either-returning function on the right side; a
// Left passes through unchanged.
func RightFlatMap[L, R, U any](p RightProjection[L, R], f func(R) Either[L, U]) Either[L, U] {
	if !p.e.isRight {
		return Left[L, U](p.e.left)
	}
	return f(p.e.right)
}
