package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustPlay(t *testing.T, p Position, bowl Bowl) Position {
	t.Helper()
	next, err := p.Play(bowl)
	require.NoError(t, err, "bowl %d should be playable", bowl)
	return next
}

func TestPositionOptions(t *testing.T) {
	t.Run("fresh board offers every bowl", func(t *testing.T) {
		p := NewPosition(3, 2)

		require.Equal(t, []Bowl{0, 1, 2}, p.Options())
	})

	t.Run("empty bowls are not options", func(t *testing.T) {
		p := PositionFromBowls([]int{2, 0, 1, 3, 3, 3})

		require.Equal(t, []Bowl{0, 2}, p.Options(), "only non-empty bowls on the mover's side are playable")
	})

	t.Run("far side never contributes options", func(t *testing.T) {
		p := PositionFromBowls([]int{0, 0, 4, 4})

		require.Empty(t, p.Options())
	})
}

func TestPositionPlayEmptyBowl(t *testing.T) {
	p := PositionFromBowls([]int{0, 2, 1, 1})

	_, err := p.Play(0)

	require.ErrorIs(t, err, ErrNoStonesInBowl)
}

func TestPositionSow(t *testing.T) {
	t.Run("sowing into the far side passes the turn", func(t *testing.T) {
		p := PositionFromBowls([]int{2, 2, 2, 2})

		next := mustPlay(t, p, 1)

		require.Equal(t, []int{3, 2, 2, 0}, next.Bowls())
		own, opponent := next.Captures()
		require.Equal(t, 0, own)
		require.Equal(t, 1, opponent, "the sower banked the stone that passed their store")
		require.Equal(t, Blue, next.Turn(), "turn should change when the last stone misses the store")
	})

	t.Run("a full lap feeds every bowl and the store", func(t *testing.T) {
		p := PositionFromBowls([]int{6, 6, 6, 6})

		next := mustPlay(t, p, 0)

		require.Equal(t, []int{7, 7, 1, 8}, next.Bowls())
		own, opponent := next.Captures()
		require.Equal(t, 0, own)
		require.Equal(t, 1, opponent)
		require.Equal(t, Blue, next.Turn())
	})

	t.Run("landing in the own store retains the turn", func(t *testing.T) {
		p := PositionFromBowls([]int{2, 2, 2, 2, 2, 2})

		next := mustPlay(t, p, 1)

		require.Equal(t, []int{2, 0, 3, 2, 2, 2}, next.Bowls())
		own, opponent := next.Captures()
		require.Equal(t, 1, own)
		require.Equal(t, 0, opponent)
		require.Equal(t, Red, next.Turn(), "board should not rotate on turn retention")
	})

	t.Run("landing in an empty own bowl captures the opposite stack", func(t *testing.T) {
		p := PositionFromBowls([]int{2, 2, 0, 2, 2, 2, 2, 2})

		next := mustPlay(t, p, 0)

		require.Equal(t, []int{2, 0, 2, 2, 0, 3, 1, 2}, next.Bowls())
		own, opponent := next.Captures()
		require.Equal(t, 0, own)
		require.Equal(t, 2, opponent, "the opposite bowl's stones move to the sower's store")
	})

	t.Run("landing in an occupied own bowl does not capture", func(t *testing.T) {
		p := PositionFromBowls([]int{1, 2, 3, 3})

		next := mustPlay(t, p, 0)

		// Bowl 1 held stones already, so the opposite bowl keeps its stack.
		require.Equal(t, []int{3, 3, 0, 3}, next.Bowls())
		own, opponent := next.Captures()
		require.Equal(t, 0, own)
		require.Equal(t, 0, opponent)
	})

	t.Run("play does not mutate the original position", func(t *testing.T) {
		p := PositionFromBowls([]int{2, 2, 2, 2})

		mustPlay(t, p, 0)

		require.Equal(t, []int{2, 2, 2, 2}, p.Bowls(), "positions are values; sowing returns a new one")
	})
}

func TestPositionFinished(t *testing.T) {
	t.Run("fresh board is not finished", func(t *testing.T) {
		p := NewPosition(6, 4)

		require.False(t, p.Finished())

		_, ok := p.Score()
		require.False(t, ok, "an unfinished game has no score")
	})

	t.Run("empty active side finishes the game", func(t *testing.T) {
		p := PositionFromBowls([]int{0, 0, 2, 2})

		require.True(t, p.Finished(), "only the mover's side is checked for emptiness")

		score, ok := p.Score()
		require.True(t, ok)
		require.Equal(t, Score(-4), score, "the stranded opponent stones count against the mover")
	})

	t.Run("stones on the far side alone do not finish the game", func(t *testing.T) {
		p := PositionFromBowls([]int{1, 0, 0, 0})

		require.False(t, p.Finished())
	})
}

func TestPositionDelta(t *testing.T) {
	p := PositionFromBowls([]int{2, 2, 2, 2, 2, 2})

	next := mustPlay(t, p, 1) // lands in the own store, capture becomes [1,0]

	require.Equal(t, Score(1), next.Delta())
	require.Equal(t, Score(-1), mustPlay(t, next, 0).Delta(), "delta follows the capture rotation")
}

func TestStoneConservation(t *testing.T) {
	total := func(p Position) int {
		sum := 0
		for _, stones := range p.Bowls() {
			sum += stones
		}
		own, opponent := p.Captures()
		return sum + own + opponent
	}

	rng := rand.New(rand.NewSource(42))
	for _, size := range []int{1, 2, 3, 6} {
		for _, stones := range []int{1, 2, 4, 7} {
			p := NewPosition(size, stones)
			want := total(p)
			for !p.Finished() {
				options := p.Options()
				p = mustPlay(t, p, options[rng.Intn(len(options))])
				require.Equal(t, want, total(p),
					"stones must be conserved on a %d-bowl board with %d stones each", size, stones)
			}
		}
	}
}

func TestPositionString(t *testing.T) {
	p := PositionFromBowls([]int{2, 4, 3, 4})

	require.Equal(t, "[ 0]  4  3\n      2  4 [ 0]", p.String())
}
