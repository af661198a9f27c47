package agent

import (
	"mancala/experiments/metrics"
	"mancala/searcher"
)

type Agent interface {
	// FindMove returns the chosen move and the search metrics (if collected)
	FindMove(state searcher.State) (int, metrics.SearchMetric, error)
}
