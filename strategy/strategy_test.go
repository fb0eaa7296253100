package strategy

import (
	"strings"
	"testing"

	"mancala/game"

	"github.com/stretchr/testify/require"
)

func TestFirstPicksLowestOption(t *testing.T) {
	position := game.PositionFromBowls([]int{0, 3, 1, 2, 2, 2})

	bowl, found := NewFirst().Play(position)

	require.True(t, found)
	require.Equal(t, game.Bowl(1), bowl)
}

func TestFirstWithoutOptions(t *testing.T) {
	position := game.PositionFromBowls([]int{0, 0, 2, 2})

	_, found := NewFirst().Play(position)

	require.False(t, found)
}

func TestRandomPicksAnOption(t *testing.T) {
	position := game.PositionFromBowls([]int{0, 3, 0, 2, 1, 1})
	random := NewRandomSeeded(1)

	for i := 0; i < 20; i++ {
		bowl, found := random.Play(position)

		require.True(t, found)
		require.Contains(t, []game.Bowl{1, 3}, bowl)
	}
}

func TestRandomWithoutOptions(t *testing.T) {
	position := game.PositionFromBowls([]int{0, 0, 1, 1})

	_, found := NewRandomSeeded(1).Play(position)

	require.False(t, found)
}

func TestUserPlaysEnteredBowl(t *testing.T) {
	position := game.PositionFromBowls([]int{2, 2, 2, 2})
	var out strings.Builder
	user := NewUser(strings.NewReader("1\n"), &out)

	bowl, found := user.Play(position)

	require.True(t, found)
	require.Equal(t, game.Bowl(1), bowl)
	require.Contains(t, out.String(), "enter a play:")
	require.Contains(t, out.String(), position.String(), "the board is shown before prompting")
}

func TestUserRepromptsOnBadInput(t *testing.T) {
	position := game.PositionFromBowls([]int{2, 0, 2, 2})
	var out strings.Builder
	user := NewUser(strings.NewReader("wat\n1\n0\n"), &out)

	bowl, found := user.Play(position)

	require.True(t, found)
	require.Equal(t, game.Bowl(0), bowl, "bowl 1 is empty and must be rejected")
	require.Contains(t, out.String(), "enter a bowl index")
	require.Contains(t, out.String(), "not an option")
}

func TestUserInputRunsDry(t *testing.T) {
	position := game.PositionFromBowls([]int{2, 2, 2, 2})
	user := NewUser(strings.NewReader(""), &strings.Builder{})

	_, found := user.Play(position)

	require.False(t, found)
}
