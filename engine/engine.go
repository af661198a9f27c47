package engine

import (
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"
)

// MaxMoves bounds a single game so that a misbehaving agent cannot loop forever
const MaxMoves = meta.MaxMoves

type Runner interface {
	// Run plays a game till it is over or MaxMoves moves have been made
	Run() (result game.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
