package searcher

import (
	"math"

	"mancala/experiments/metrics"
)

// minimax visits every node down to the cutoff.
type minimax struct {
	evaluate Evaluate
	metrics  metrics.Collector
}

func (s minimax) root(state State, moves []int, depth int) (Decision, error) {
	maximizing := state.Player() == MaxPlayer

	var best Decision
	for i, move := range moves {
		child, err := playMove(state, move)
		if err != nil {
			return Decision{}, err
		}
		value, err := s.value(child, depth-1)
		if err != nil {
			return Decision{}, err
		}
		if i == 0 || improves(maximizing, value, best.Value) {
			best = Decision{Move: move, Value: value}
		}
	}
	return best, nil
}

func (s minimax) value(state State, depth int) (int, error) {
	s.metrics.AddNode()

	// Terminal states are scored exactly, before the depth cutoff applies
	if state.IsTerminal() {
		s.metrics.AddLeaf()
		return state.Utility(MaxPlayer), nil
	}
	if depth <= 0 {
		s.metrics.AddLeaf()
		return s.evaluate(state), nil
	}

	moves := state.Actions()
	if len(moves) == 0 {
		s.metrics.AddLeaf()
		return state.Utility(MaxPlayer), nil
	}

	maximizing := state.Player() == MaxPlayer
	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	for _, move := range moves {
		child, err := playMove(state, move)
		if err != nil {
			return 0, err
		}
		value, err := s.value(child, depth-1)
		if err != nil {
			return 0, err
		}
		if improves(maximizing, value, best) {
			best = value
		}
	}
	return best, nil
}
