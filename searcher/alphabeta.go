package searcher

import (
	"math"

	"mancala/experiments/metrics"
)

// alphaBeta returns the same values as minimax while skipping siblings that
// cannot change the result. alpha is the value MAX is already guaranteed on the
// current path, beta the value MIN is already guaranteed.
type alphaBeta struct {
	evaluate Evaluate
	metrics  metrics.Collector
}

func (s alphaBeta) root(state State, moves []int, depth int) (Decision, error) {
	maximizing := state.Player() == MaxPlayer
	alpha, beta := math.MinInt, math.MaxInt

	var best Decision
	for i, move := range moves {
		child, err := playMove(state, move)
		if err != nil {
			return Decision{}, err
		}
		// A child that fails low (or high for MIN) returns a bound no better than
		// best, so the strict comparison below never picks it over an exact value.
		value, err := s.value(child, depth-1, alpha, beta)
		if err != nil {
			return Decision{}, err
		}
		if i == 0 || improves(maximizing, value, best.Value) {
			best = Decision{Move: move, Value: value}
		}
		if maximizing {
			alpha = max(alpha, best.Value)
		} else {
			beta = min(beta, best.Value)
		}
	}
	return best, nil
}

func (s alphaBeta) value(state State, depth, alpha, beta int) (int, error) {
	s.metrics.AddNode()

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

	if state.Player() == MaxPlayer {
		v := math.MinInt
		for _, move := range moves {
			child, err := playMove(state, move)
			if err != nil {
				return 0, err
			}
			value, err := s.value(child, depth-1, alpha, beta)
			if err != nil {
				return 0, err
			}
			v = max(v, value)
			if v >= beta { // MIN above will never allow this node
				s.metrics.AddPrune()
				return v, nil
			}
			alpha = max(alpha, v)
		}
		return v, nil
	}

	v := math.MaxInt
	for _, move := range moves {
		child, err := playMove(state, move)
		if err != nil {
			return 0, err
		}
		value, err := s.value(child, depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		v = min(v, value)
		if v <= alpha { // MAX above will never allow this node
			s.metrics.AddPrune()
			return v, nil
		}
		beta = min(beta, v)
	}
	return v, nil
}
