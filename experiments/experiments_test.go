package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"mancala/game"
	"mancala/searcher"

	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	config := DefaultConfig()
	config.Simulations = 6
	config.Depth = 2
	config.PitsPerPlayer = 4
	config.StonesPerPit = 3
	config.Seed = 11
	return config
}

func TestRunBenchmark(t *testing.T) {
	t.Run("summary adds up", func(t *testing.T) {
		config := smallConfig()

		summary, err := RunBenchmark(context.Background(), config)

		require.NoError(t, err)
		require.Equal(t, config.Simulations, summary.AIWins+summary.RandomWins+summary.Ties+summary.Unfinished)
		require.InDelta(t, 100, summary.AIWinRate+summary.RandomWinRate+summary.TieRate, 1e-9)
		require.Len(t, summary.Games, config.Simulations)
		require.Positive(t, summary.MeanMoves)
		require.Positive(t, summary.MeanNodes)

		moves := 0
		for i, record := range summary.Games {
			require.Equal(t, i+1, record.ID)
			require.Equal(t, AIAgentID, record.Agent1)
			require.Equal(t, RandomAgentID, record.Agent2)
			require.Equal(t, 24, record.Store1+record.Store2)
			moves += record.TotalMoves
		}
		require.Len(t, summary.Moves, moves)
	})

	t.Run("results do not depend on the number of workers", func(t *testing.T) {
		sequential := smallConfig()
		sequential.Workers = 1
		parallel := smallConfig()
		parallel.Workers = 4

		a, err := RunBenchmark(context.Background(), sequential)
		require.NoError(t, err)
		b, err := RunBenchmark(context.Background(), parallel)
		require.NoError(t, err)

		require.Equal(t, a.AIWins, b.AIWins)
		require.Equal(t, a.RandomWins, b.RandomWins)
		require.Equal(t, a.Ties, b.Ties)
		require.Equal(t, a.MeanMoves, b.MeanMoves)
		require.Equal(t, a.MeanNodes, b.MeanNodes)
		for i := range a.Games {
			require.Equal(t, a.Games[i].Winner, b.Games[i].Winner)
			require.Equal(t, a.Games[i].TotalMoves, b.Games[i].TotalMoves)
		}
	})

	t.Run("AI as player 2", func(t *testing.T) {
		config := smallConfig()
		config.AIPlayer = game.Player2
		config.Pruning = false

		summary, err := RunBenchmark(context.Background(), config)

		require.NoError(t, err)
		require.Equal(t, RandomAgentID, summary.Games[0].Agent1)
		require.Equal(t, AIAgentID, summary.Games[0].Agent2)
		for _, record := range summary.Moves {
			if record.Player == 2 {
				require.Equal(t, 2, record.Depth)
				require.False(t, record.Pruning)
			}
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		config := smallConfig()
		config.Depth = -1
		_, err := RunBenchmark(context.Background(), config)
		require.ErrorIs(t, err, searcher.ErrInvalidDepth)

		config = smallConfig()
		config.Simulations = 0
		_, err = RunBenchmark(context.Background(), config)
		require.Error(t, err)

		config = smallConfig()
		config.Evaluation = "unknown"
		_, err = RunBenchmark(context.Background(), config)
		require.Error(t, err)

		config = smallConfig()
		config.PitsPerPlayer = 0
		_, err = RunBenchmark(context.Background(), config)
		require.ErrorIs(t, err, game.ErrInvalidConfiguration)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := RunBenchmark(ctx, smallConfig())
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRunDepthComparison(t *testing.T) {
	config := smallConfig()
	config.Pruning = false

	summaries, err := RunDepthComparison(context.Background(), []int{1, 2}, config)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	for i, depth := range []int{1, 2} {
		require.Equal(t, depth, summaries[i].Config.Depth)
		require.True(t, summaries[i].Config.Pruning, "Comparison always prunes")
	}
}

func TestExport(t *testing.T) {
	summary, err := RunBenchmark(context.Background(), smallConfig())
	require.NoError(t, err)

	dir, err := summary.Export(t.TempDir(), "benchmark")

	require.NoError(t, err)
	for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		info, err := os.Stat(filepath.Join(dir, file))
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}
}
