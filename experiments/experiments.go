package experiments

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"
	"mancala/searcher"
	"mancala/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// Agent IDs used in the game records.
const (
	AIAgentID     = 1
	RandomAgentID = 2
)

// Config describes a benchmark: a number of games between a search agent and a
// random agent.
type Config struct {
	Simulations   int
	Depth         int
	Pruning       bool
	Evaluation    string // Name known to game.LookupEvaluation
	PitsPerPlayer int
	StonesPerPit  int
	Seed          uint64 // Game i uses Seed+i for the random agent
	Workers       int    // Games played concurrently, defaults to GOMAXPROCS
	AIPlayer      game.Player
}

func DefaultConfig() Config {
	return Config{
		Simulations:   meta.Simulations,
		Depth:         meta.BenchmarkDepth,
		Pruning:       true,
		Evaluation:    "utility",
		PitsPerPlayer: meta.PitsPerPlayer,
		StonesPerPit:  meta.StonesPerPit,
		Seed:          1,
		AIPlayer:      game.Player1,
	}
}

func (c Config) Algorithm() string {
	if c.Pruning {
		return "Alpha-Beta Pruning"
	}
	return "Basic Minimax"
}

func (c Config) validate() error {
	if c.Simulations < 1 {
		return fmt.Errorf("simulations must be positive, got %d", c.Simulations)
	}
	if c.Depth < 0 {
		return fmt.Errorf("%w: %d", searcher.ErrInvalidDepth, c.Depth)
	}
	if c.AIPlayer != game.Player1 && c.AIPlayer != game.Player2 {
		return fmt.Errorf("AI player must be 1 or 2, got %d", int(c.AIPlayer))
	}
	return nil
}

// AgentConfigs describes both agents of the benchmark for export.
func (c Config) AgentConfigs() []metrics.AgentConfig {
	return []metrics.AgentConfig{
		{ID: AIAgentID, Kind: "search", Depth: c.Depth, Pruning: c.Pruning, Evaluation: c.Evaluation},
		{ID: RandomAgentID, Kind: "random", Seed: c.Seed},
	}
}

// Summary aggregates the outcome of a benchmark from the AI's point of view.
type Summary struct {
	Config Config

	AIWins     int
	RandomWins int
	Ties       int
	Unfinished int

	AIWinRate     float64 // Percent
	RandomWinRate float64
	TieRate       float64

	MeanMoves      float64
	StdDevMoves    float64
	MeanGameTime   time.Duration
	MeanAIMoveTime time.Duration
	MeanNodes      float64       // Per AI move
	TotalTime      time.Duration // Sum of game durations
	WallTime       time.Duration

	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

type outcome struct {
	result game.Result
	game   metrics.GameMetric
	moves  []metrics.MoveMetric
}

// RunBenchmark plays config.Simulations games of the search agent against a
// random agent. Games run concurrently; each one owns its board and agents, so
// the summary does not depend on the number of workers.
func RunBenchmark(ctx context.Context, config Config) (Summary, error) {
	if err := config.validate(); err != nil {
		return Summary{}, err
	}
	evaluate, err := game.LookupEvaluation(config.Evaluation)
	if err != nil {
		return Summary{}, err
	}
	board, err := game.NewBoard(config.PitsPerPlayer, config.StonesPerPit)
	if err != nil {
		return Summary{}, err
	}
	workers := config.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	minimax := searcher.NewMinimax(
		searcher.WithPruning(config.Pruning),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMetrics(),
	)

	log.Info().Msgf("starting benchmark: AI (%s, depth %d) vs random, %d games on %d workers",
		config.Algorithm(), config.Depth, config.Simulations, workers)

	start := time.Now()
	outcomes := make([]outcome, config.Simulations)
	var completed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < config.Simulations; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ai := agent.NewSearchAgent(minimax, config.Depth)
			random := agent.NewRandomAgent(config.Seed + uint64(i))
			agents := [2]agent.Agent{ai, random}
			if config.AIPlayer == game.Player2 {
				agents = [2]agent.Agent{random, ai}
			}

			result, gameMetric, moveMetrics, err := runGame(agents, board)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			outcomes[i] = outcome{result: result, game: gameMetric, moves: moveMetrics}

			if n := completed.Add(1); n%10 == 0 {
				log.Info().Msgf("completed %d of %d games", n, config.Simulations)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := summarize(config, outcomes)
	summary.WallTime = time.Since(start)

	log.Info().Msgf("completed benchmark: AI won %d, random won %d, ties %d",
		summary.AIWins, summary.RandomWins, summary.Ties)
	return summary, nil
}

// runGame executes a single game between two agents and returns the result
func runGame(agents [2]agent.Agent, board game.Board) (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.LocalEngine(agents, board)
	return e.Run()
}

func summarize(config Config, outcomes []outcome) Summary {
	summary := Summary{Config: config}

	agent1, agent2 := AIAgentID, RandomAgentID
	if config.AIPlayer == game.Player2 {
		agent1, agent2 = RandomAgentID, AIAgentID
	}

	moves := make([]float64, 0, len(outcomes))
	gameTimes := make([]float64, 0, len(outcomes))
	var moveTimes, nodes []float64

	for i, o := range outcomes {
		winner, decided := o.result.Winner()
		switch {
		case o.result == game.Ongoing:
			summary.Unfinished++
		case !decided:
			summary.Ties++
		case winner == config.AIPlayer:
			summary.AIWins++
		default:
			summary.RandomWins++
		}

		moves = append(moves, float64(o.game.TotalMoves))
		gameTimes = append(gameTimes, float64(o.game.Duration))
		summary.TotalTime += o.game.Duration

		summary.Games = append(summary.Games, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     agent1,
			Agent2:     agent2,
			GameMetric: o.game,
		})
		for _, mm := range o.moves {
			summary.Moves = append(summary.Moves, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
			if mm.Player == int(config.AIPlayer) {
				moveTimes = append(moveTimes, float64(mm.Duration))
				nodes = append(nodes, float64(mm.Nodes))
			}
		}
	}

	total := float64(len(outcomes))
	summary.AIWinRate = float64(summary.AIWins) / total * 100
	summary.RandomWinRate = float64(summary.RandomWins) / total * 100
	summary.TieRate = float64(summary.Ties) / total * 100

	summary.MeanMoves = mean(moves)
	if len(moves) > 1 {
		summary.StdDevMoves = stat.StdDev(moves, nil)
	}
	summary.MeanGameTime = time.Duration(mean(gameTimes))
	summary.MeanAIMoveTime = time.Duration(mean(moveTimes))
	summary.MeanNodes = mean(nodes)
	return summary
}

func mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	m := stat.Mean(x, nil)
	if math.IsNaN(m) {
		return 0
	}
	return m
}

// RunDepthComparison runs one alpha-beta benchmark per depth, each with the
// same seed so that the random opponent behaves alike across depths.
func RunDepthComparison(ctx context.Context, depths []int, config Config) ([]Summary, error) {
	log.Info().Msgf("starting depth comparison for depths %v", depths)

	summaries := make([]Summary, 0, len(depths))
	for _, depth := range depths {
		c := config
		c.Depth = depth
		c.Pruning = true

		summary, err := RunBenchmark(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("depth %d: %w", depth, err)
		}
		summaries = append(summaries, summary)
	}

	log.Info().Msg("completed depth comparison")
	return summaries, nil
}

// Export stores the agent configs, game records and move records as CSV files
// under root/name and returns the directory written to.
func (s Summary) Export(root, name string) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(s.Config.AgentConfigs()); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Debug().Msg("stored agent configs")

	if err := writer.WriteGameRecords(s.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Debug().Msg("stored game records")

	if err := writer.WriteMoveRecords(s.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Debug().Msg("stored move records")

	return writer.Dir(), nil
}
