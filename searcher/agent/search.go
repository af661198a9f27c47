package agent

import (
	"mancala/experiments/metrics"
	"mancala/searcher"
)

type searchAgent struct {
	minimax *searcher.Minimax
	depth   int
}

// NewSearchAgent returns an agent that plays the move found by a search of
// the given depth.
func NewSearchAgent(minimax *searcher.Minimax, depth int) Agent {
	return searchAgent{minimax: minimax, depth: depth}
}

func (a searchAgent) FindMove(state searcher.State) (int, metrics.SearchMetric, error) {
	decision, metric, err := a.minimax.Search(state, a.depth)
	if err != nil {
		return 0, metric, err
	}
	return decision.Move, metric, nil
}
