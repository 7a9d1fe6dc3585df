package either

import (
	"github.com/ib-77/adt3/pkg/adt/option"
)

// Either holds either a left or a right value, never both. The zero value
// is Left of L's zero value.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs the left alternative.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right constructs the right alternative.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// Cond returns Right(ifTrue) when test holds, Left(ifFalse) otherwise.
func Cond[L, R any](test bool, ifFalse L, ifTrue R) Either[L, R] {
	if test {
		return Right[L, R](ifTrue)
	}
	return Left[L, R](ifFalse)
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Swap flips the side, preserving the contained value.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// Left returns the one-sided view selective on the left alternative.
func (e Either[L, R]) Left() LeftProjection[L, R] {
	return LeftProjection[L, R]{e: e}
}

// Right returns the one-sided view selective on the right alternative.
func (e Either[L, R]) Right() RightProjection[L, R] {
	return RightProjection[L, R]{e: e}
}

// Fold applies the handler matching the active side. Both handlers must
// produce the same result type.
func Fold[L, R, X any](e Either[L, R], onLeft func(L) X, onRight func(R) X) X {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Merge returns the contained value of an Either whose sides share one type.
func Merge[T any](e Either[T, T]) T {
	if e.isRight {
		return e.right
	}
	return e.left
}

// JoinLeft flattens a nested Either on the left: Left(inner) becomes inner.
// A Right passes through unchanged; its payload is never inspected, even
// when it is itself an Either.
func JoinLeft[L, R any](e Either[Either[L, R], R]) Either[L, R] {
	if e.isRight {
		return Right[L, R](e.right)
	}
	return e.left
}

// JoinRight flattens a nested Either on the right: Right(inner) becomes
// inner. A Left passes through unchanged regardless of its payload's shape.
func JoinRight[L, R any](e Either[L, Either[L, R]]) Either[L, R] {
	if e.isRight {
		return e.right
	}
	return Left[L, R](e.left)
}

// ToLeft lifts an option into an Either: Present(v) becomes Left(v),
// Empty becomes Right(right).
func ToLeft[L, R any](o option.Option[L], right R) Either[L, R] {
	if o.IsDefined() {
		return Left[L, R](o.Get())
	}
	return Right[L, R](right)
}

// ToRight lifts an option into an Either: Present(v) becomes Right(v),
// Empty becomes Left(left).
func ToRight[L, R any](o option.Option[R], left L) Either[L, R] {
	if o.IsDefined() {
		return Right[L, R](o.Get())
	}
	return Left[L, R](left)
}
