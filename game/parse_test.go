package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("position with player", func(t *testing.T) {
		b, err := Parse("4,4,0,5,5,5,1,4,4,4,4,4,4,0/2")

		require.NoError(t, err)
		require.Equal(t, []int{4, 4, 0, 5, 5, 5, 1, 4, 4, 4, 4, 4, 4, 0}, b.Slots())
		require.Equal(t, Player2, b.Player())
		require.Equal(t, 6, b.PitsPerPlayer())
	})

	t.Run("player defaults to player 1", func(t *testing.T) {
		b, err := Parse(" 1, 2 ,0, 3,4,0 ")

		require.NoError(t, err)
		require.Equal(t, Player1, b.Player())
		require.Equal(t, []int{1, 2, 0, 3, 4, 0}, b.Slots())
	})

	t.Run("notation round trip", func(t *testing.T) {
		b, err := NewBoard(6, 4)
		require.NoError(t, err)
		b, err = b.ApplyMove(0)
		require.NoError(t, err)

		parsed, err := Parse(b.Notation())

		require.NoError(t, err)
		require.True(t, b.Equal(parsed))
		require.Equal(t, "0,5,5,5,5,4,0,4,4,4,4,4,4,0/2", b.Notation())
	})

	t.Run("malformed", func(t *testing.T) {
		for _, position := range []string{"", "4", "4,4,0,4,4,0/3", "a,b,c,d", "4,4,0,4,4/1", "4,-4,0,4,4,0"} {
			_, err := Parse(position)
			require.ErrorIs(t, err, ErrInvalidConfiguration, position)
		}
	})
}

func TestRender(t *testing.T) {
	t.Run("initial board", func(t *testing.T) {
		b, err := NewBoard(6, 4)
		require.NoError(t, err)

		lines := strings.Split(b.String(), "\n")

		require.Equal(t, "      6   5   4   3   2   1  ", lines[0])
		require.Equal(t, "│ 0 │ 4   4   4   4   4   4  │   │", lines[2])
		require.Equal(t, "│ P2├────────────────────────┤P1 │", lines[3])
		require.Equal(t, "│   │ 4   4   4   4   4   4  │ 0 │", lines[4])
		require.Equal(t, "    Player 1's turn", lines[len(lines)-1])
	})

	t.Run("player 2's pits read right to left", func(t *testing.T) {
		b := mustBoard(t, []int{1, 2, 0, 3, 4, 5}, Player2)

		lines := strings.Split(b.String(), "\n")

		require.Equal(t, "│ 5 │ 4   3  │   │", lines[2])
		require.Equal(t, "│   │ 1   2  │ 0 │", lines[4])
		require.Equal(t, "    Player 2's turn", lines[len(lines)-1])
	})

	t.Run("finished games announce the result", func(t *testing.T) {
		won := mustBoard(t, []int{0, 0, 0, 10, 0, 0, 0, 14}, Player1)
		require.True(t, strings.HasSuffix(won.String(), "Game Over - Player 2 wins!"))

		tied := mustBoard(t, []int{0, 0, 0, 6, 0, 0, 0, 6}, Player1)
		require.True(t, strings.HasSuffix(tied.String(), "Game Over - It's a tie!"))
	})
}
