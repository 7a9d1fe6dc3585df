package either

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionGet(t *testing.T) {
	t.Parallel()
	l := Left[int, string](5)
	assert.Equal(t, 5, l.Left().Get())

	r := Right[int, string]("ok")
	assert.Equal(t, "ok", r.Right().Get())

	assert.PanicsWithError(t,
		"either: projection does not match active side: Get on LeftProjection of Right",
		func() { r.Left().Get() })
	assert.PanicsWithError(t,
		"either: projection does not match active side: Get on RightProjection of Left",
		func() { l.Right().Get() })
}

func TestProjectionGetOrElse(t *testing.T) {
	t.Parallel()
	l := Left[int, string](5)
	assert.Equal(t, 5, l.Left().GetOrElse(9))
	assert.Equal(t, "d", l.Right().GetOrElse("d"))

	r := Right[int, string]("ok")
	assert.Equal(t, 9, r.Left().GetOrElse(9))
	assert.Equal(t, "ok", r.Right().GetOrElse("d"))
}

func TestProjectionToOption(t *testing.T) {
	t.Parallel()
	l := Left[int, string](5)
	assert.True(t, l.Left().ToOption().IsDefined())
	assert.Equal(t, 5, l.Left().ToOption().Get())
	assert.True(t, l.Right().ToOption().IsEmpty())

	r := Right[int, string]("ok")
	assert.True(t, r.Left().ToOption().IsEmpty())
	assert.Equal(t, "ok", r.Right().ToOption().Get())
}

func TestProjectionToSlice(t *testing.T) {
	t.Parallel()
	l := Left[int, string](5)
	assert.Equal(t, []int{5}, l.Left().ToSlice())
	assert.Empty(t, l.Right().ToSlice())

	r := Right[int, string]("ok")
	assert.Empty(t, r.Left().ToSlice())
	assert.Equal(t, []string{"ok"}, r.Right().ToSlice())
}

func TestProjectionForeach(t *testing.T) {
	t.Parallel()
	calls := 0
	l := Left[int, string](5)
	l.Left().Foreach(func(int) { calls++ })
	require.Equal(t, 1, calls)

	l.Right().Foreach(func(string) { calls++ })
	require.Equal(t, 1, calls, "effect must not run on the non-matching side")
}

func TestProjectionExistsForall(t *testing.T) {
	t.Parallel()
	even := func(n int) bool { return n%2 == 0 }
	l := Left[int, string](4)
	r := Right[int, string]("ok")

	assert.True(t, l.Left().Exists(even))
	assert.False(t, Left[int, string](3).Left().Exists(even))
	assert.False(t, r.Left().Exists(even))

	assert.True(t, l.Left().Forall(even))
	assert.False(t, Left[int, string](3).Left().Forall(even))
	// vacuous truth on the non-matching side
	assert.True(t, r.Left().Forall(even))
}

func TestProjectionFilter(t *testing.T) {
	t.Parallel()
	even := func(n int) bool { return n%2 == 0 }
	l := Left[int, string](4)

	kept := l.Left().Filter(even)
	require.True(t, kept.IsDefined())
	assert.Equal(t, l, kept.Get())

	assert.True(t, Left[int, string](3).Left().Filter(even).IsEmpty())
	assert.True(t, Right[int, string]("ok").Left().Filter(even).IsEmpty())
}

func TestLeftMap(t *testing.T) {
	t.Parallel()
	sq := func(n int) int { return n * n }

	got := LeftMap(Left[int, string](42).Left(), sq)
	assert.Equal(t, Left[int, string](1764), got)

	// Right untouched, payload preserved as-is
	got = LeftMap(Right[int, string]("s").Left(), sq)
	assert.Equal(t, Right[int, string]("s"), got)
}

func TestRightMap(t *testing.T) {
	t.Parallel()
	up := func(s string) int { return len(s) }

	got := RightMap(Right[int, string]("four").Right(), up)
	assert.Equal(t, Right[int, int](4), got)

	got = RightMap(Left[int, string](7).Right(), up)
	assert.Equal(t, Left[int, int](7), got)
}

func TestLeftFlatMap(t *testing.T) {
	t.Parallel()
	f := func(n int) Either[string, string] {
		if n > 0 {
			return Left[string, string]("pos")
		}
		return Right[string, string]("neg")
	}

	assert.Equal(t, Left[string, string]("pos"), LeftFlatMap(Left[int, string](1).Left(), f))
	assert.Equal(t, Right[string, string]("neg"), LeftFlatMap(Left[int, string](-1).Left(), f))
	assert.Equal(t, Right[string, string]("kept"), LeftFlatMap(Right[int, string]("kept").Left(), f))
}

func TestRightFlatMap(t *testing.T) {
	t.Parallel()
	f := func(s string) Either[int, int] {
		if s == "" {
			return Left[int, int](-1)
		}
		return Right[int, int](len(s))
	}

	assert.Equal(t, Right[int, int](2), RightFlatMap(Right[int, string]("ab").Right(), f))
	assert.Equal(t, Left[int, int](-1), RightFlatMap(Right[int, string]("").Right(), f))
	assert.Equal(t, Left[int, int](9), RightFlatMap(Left[int, string](9).Right(), f))
}

func TestProjectionEitherAccessor(t *testing.T) {
	t.Parallel()
	e := Left[int, string](5)
	assert.Equal(t, e, e.Left().Either())
	assert.Equal(t, e, e.Right().Either())
}
