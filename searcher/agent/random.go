package agent

import (
	"mancala/experiments/metrics"
	"mancala/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// Agents built with the same seed play the same moves. An agent must not be
// shared between goroutines.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state searcher.State) (int, metrics.SearchMetric, error) {
	moves := state.Actions()
	if len(moves) == 0 {
		return 0, metrics.SearchMetric{}, searcher.ErrNoLegalMove
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
