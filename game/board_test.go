package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("standard board", func(t *testing.T) {
		b, err := NewBoard(6, 4)

		require.NoError(t, err)
		require.Equal(t, []int{4, 4, 4, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 0}, b.Slots())
		require.Equal(t, Player1, b.Player(), "Player 1 should move first")
		require.Equal(t, 48, b.TotalStones())
		require.Equal(t, 6, b.StoreIndex(Player1))
		require.Equal(t, 13, b.StoreIndex(Player2))
	})

	t.Run("zero stones yields a finished game", func(t *testing.T) {
		b, err := NewBoard(3, 0)

		require.NoError(t, err)
		require.True(t, b.IsTerminal())
		require.Empty(t, b.LegalMoves())
		require.Equal(t, Tie, b.Winner())
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		_, err := NewBoard(0, 4)
		require.ErrorIs(t, err, ErrInvalidConfiguration)

		_, err = NewBoard(6, -1)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})
}

func TestFromSlots(t *testing.T) {
	t.Run("copies the slots", func(t *testing.T) {
		slots := []int{1, 2, 0, 3, 4, 0}
		b, err := FromSlots(slots, Player2)
		require.NoError(t, err)

		slots[0] = 99
		require.Equal(t, 1, b.Stones(0), "Board should not share the caller's slice")
		require.Equal(t, 2, b.PitsPerPlayer())
		require.Equal(t, Player2, b.Player())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := FromSlots([]int{1, 0}, Player1)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "Too few slots")

		_, err = FromSlots([]int{1, 1, 0, 1, 1}, Player1)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "Odd number of slots")

		_, err = FromSlots([]int{1, -1, 0, 1, 1, 0}, Player1)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "Negative count")

		_, err = FromSlots([]int{1, 1, 0, 1, 1, 0}, Player(3))
		require.ErrorIs(t, err, ErrInvalidConfiguration, "Unknown player")
	})
}

func TestBoardGeometry(t *testing.T) {
	b, err := NewBoard(6, 4)
	require.NoError(t, err)

	start, end := b.PitRange(Player1)
	require.Equal(t, 0, start)
	require.Equal(t, 6, end)
	start, end = b.PitRange(Player2)
	require.Equal(t, 7, start)
	require.Equal(t, 13, end)

	require.True(t, b.Owns(Player1, 0))
	require.False(t, b.Owns(Player1, 6), "Stores are not pits")
	require.True(t, b.Owns(Player2, 12))
	require.False(t, b.Owns(Player2, 13), "Stores are not pits")

	for i := 0; i < 6; i++ {
		require.Equal(t, 12-i, b.Opposite(i))
		require.Equal(t, i, b.Opposite(b.Opposite(i)))
	}
}

func TestPitNumbers(t *testing.T) {
	b, err := NewBoard(6, 4)
	require.NoError(t, err)

	index, err := b.PitIndex(Player1, 1)
	require.NoError(t, err)
	require.Equal(t, 0, index)

	index, err = b.PitIndex(Player2, 6)
	require.NoError(t, err)
	require.Equal(t, 12, index)
	require.Equal(t, 6, b.PitNumber(index))
	require.Equal(t, 3, b.PitNumber(2))

	_, err = b.PitIndex(Player1, 0)
	require.ErrorIs(t, err, ErrIllegalMove)
	_, err = b.PitIndex(Player1, 7)
	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestPlayerAndResult(t *testing.T) {
	require.Equal(t, Player2, Player1.Opponent())
	require.Equal(t, Player1, Player2.Opponent())
	require.Equal(t, "Player 2", Player2.String())

	winner, ok := Player2Wins.Winner()
	require.True(t, ok)
	require.Equal(t, Player2, winner)

	_, ok = Tie.Winner()
	require.False(t, ok)
	_, ok = Ongoing.Winner()
	require.False(t, ok)

	require.Equal(t, "1-0", Player1Wins.String())
	require.Equal(t, "1/2-1/2", Tie.String())
	require.Equal(t, "*", Ongoing.String())
}
