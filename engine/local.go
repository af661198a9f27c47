package engine

import (
	"fmt"
	"time"

	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State  *game.GameState
	Agents [2]agent.Agent // Indexed by player ID - 1
}

var _ Runner = (*Engine)(nil)

func LocalEngine(agents [2]agent.Agent, board game.Board) *Engine {
	if agents[0] == nil || agents[1] == nil {
		panic("need an agent for each player")
	}

	return &Engine{
		State:  game.NewGameState(board),
		Agents: agents,
	}
}

// Run executes the entire game loop until the game is over. A game cut short by
// MaxMoves reports game.Ongoing.
func (e *Engine) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %d is starting", e.State.Player())

	step := 1
	for !e.State.IsTerminal() && step <= MaxMoves {
		player := e.State.Player()

		move, searchMetric, err := e.Agents[player-1].FindMove(e.State)
		if err != nil {
			return game.Ongoing, gameMetric, moveMetrics, fmt.Errorf("player %d failed to find a move at step %d: %w", player, step, err)
		}

		next, err := e.State.Play(move)
		if err != nil {
			return game.Ongoing, gameMetric, moveMetrics, fmt.Errorf("player %d played move %d at step %d: %w", player, move, step, err)
		}

		extraTurn := !next.IsTerminal() && next.Player() == player
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Pit:          move,
			ExtraTurn:    extraTurn,
			SearchMetric: searchMetric,
		})
		log.Debug().
			Int("step", step).
			Int("player", player).
			Int("pit", move).
			Bool("extra_turn", extraTurn).
			Str("position", next.Board().Notation()).
			Msg("move played")

		e.State = next
		step++
	}

	result := e.State.Winner()
	if !e.State.IsTerminal() {
		log.Warn().Msgf("stopped after %d moves without a result", MaxMoves)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Winner = result.String()
	gameMetric.Store1, gameMetric.Store2 = e.State.Board().StoreCounts()

	return result, gameMetric, moveMetrics, nil
}
