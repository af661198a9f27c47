package searcher_test

import (
	"testing"

	"mancala/game"
	"mancala/searcher"

	"github.com/stretchr/testify/require"
)

func TestPruningMatchesMinimax(t *testing.T) {
	positions := []string{
		"4,4,4,4,4,4,0,4,4,4,4,4,4,0/1",
		"4,4,0,5,5,0,2,0,6,6,6,5,5,0/1",
		"5,0,3,6,6,1,2,0,6,6,6,0,6,1/2",
		"1,0,6,9,8,0,5,0,0,7,7,1,1,3/1",
		"3,3,3,0,3,3,3,0/2",
	}

	for _, position := range positions {
		board, err := game.Parse(position)
		require.NoError(t, err)
		state := game.NewGameState(board)

		for depth := 0; depth <= 4; depth++ {
			for _, name := range game.EvaluationNames() {
				evaluate, err := game.LookupEvaluation(name)
				require.NoError(t, err)

				plain := searcher.NewMinimax(searcher.WithPruning(false), searcher.WithEvaluationFn(evaluate), searcher.WithMetrics())
				pruned := searcher.NewMinimax(searcher.WithPruning(true), searcher.WithEvaluationFn(evaluate), searcher.WithMetrics())

				want, plainMetric, err := plain.Search(state, depth)
				require.NoError(t, err)
				got, prunedMetric, err := pruned.Search(state, depth)
				require.NoError(t, err)

				require.Equal(t, want, got, "%s at depth %d with %s", position, depth, name)
				require.LessOrEqual(t, prunedMetric.Nodes, plainMetric.Nodes, "%s at depth %d with %s", position, depth, name)
				require.True(t, board.IsLegal(got.Move), "Search should return a legal move")
			}
		}
	}
}

func TestSearchPrefersCapture(t *testing.T) {
	// Pit 2 captures the five stones opposite and ends the game
	board, err := game.Parse("0,0,1,0,2,0,0,0,0,5,0,0,0,0/1")
	require.NoError(t, err)

	move, err := searcher.ChooseMove(game.NewGameState(board), 1, true)

	require.NoError(t, err)
	require.Equal(t, 2, move)
}

func TestSearchOnFinishedGame(t *testing.T) {
	board, err := game.Parse("0,0,0,6,0,0,0,6/1")
	require.NoError(t, err)

	_, err = searcher.ChooseMove(game.NewGameState(board), 3, false)
	require.ErrorIs(t, err, searcher.ErrNoLegalMove)
}
