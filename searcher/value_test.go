package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueOrdering(t *testing.T) {
	require.True(t, NegativeInfinity().Less(Actual(0)))
	require.True(t, Actual(0).Less(PositiveInfinity()))
	require.True(t, NegativeInfinity().Less(PositiveInfinity()))
	require.True(t, Actual(-3).Less(Actual(4)), "finite values order by integer comparison")

	require.False(t, Actual(0).Less(Actual(0)))
	require.False(t, PositiveInfinity().Less(PositiveInfinity()))
	require.False(t, NegativeInfinity().Less(NegativeInfinity()))

	require.Equal(t, 0, Actual(2).Compare(Actual(2)))
	require.Positive(t, PositiveInfinity().Compare(Actual(1_000_000)), "no finite value reaches the upper sentinel")
	require.Negative(t, NegativeInfinity().Compare(Actual(-1_000_000)))
}

func TestValueOpposite(t *testing.T) {
	require.Equal(t, PositiveInfinity(), NegativeInfinity().Opposite())
	require.Equal(t, NegativeInfinity(), PositiveInfinity().Opposite())
	require.Equal(t, Actual(-5), Actual(5).Opposite())

	for _, v := range []Value{NegativeInfinity(), Actual(-2), Actual(0), Actual(7), PositiveInfinity()} {
		require.Equal(t, v, v.Opposite().Opposite(), "opposite must be self-inverse for %s", v)
	}
}

func TestValueScore(t *testing.T) {
	score, ok := Actual(3).Score()
	require.True(t, ok)
	require.EqualValues(t, 3, score)

	_, ok = PositiveInfinity().Score()
	require.False(t, ok, "the sentinels hold no finite score")
}

func TestValueString(t *testing.T) {
	require.Equal(t, "-inf", NegativeInfinity().String())
	require.Equal(t, "+inf", PositiveInfinity().String())
	require.Equal(t, "-4", Actual(-4).String())
}
