package searcher

import (
	"fmt"

	"mancala/experiments/metrics"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax chooses moves by depth-bounded minimax, with or without alpha-beta
// pruning. It holds configuration only, so one value can serve concurrent
// searches of independent games.
type Minimax struct {
	pruning  bool
	evaluate Evaluate
	metrics  bool
}

func WithPruning(enabled bool) Option {
	return func(m *Minimax) {
		m.pruning = enabled
	}
}

func WithEvaluationFn(evaluate Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = true
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		pruning:  true,
		evaluate: utility,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Pruning() bool {
	return m.pruning
}

// Search explores depth plies below state and returns the best move for the
// player to move. A depth of 0 scores every root move statically. The metric
// is only populated when the searcher was built WithMetrics.
func (m *Minimax) Search(state State, depth int) (Decision, metrics.SearchMetric, error) {
	if depth < 0 {
		return Decision{}, metrics.SearchMetric{}, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	moves := state.Actions()
	if len(moves) == 0 {
		return Decision{}, metrics.SearchMetric{}, ErrNoLegalMove
	}

	collector := metrics.NewDummyCollector()
	if m.metrics {
		collector = metrics.NewCollector()
	}
	collector.Start(depth, m.pruning)
	collector.AddNode() // Root

	var decision Decision
	var err error
	if m.pruning {
		s := alphaBeta{evaluate: m.evaluate, metrics: collector}
		decision, err = s.root(state, moves, depth)
	} else {
		s := minimax{evaluate: m.evaluate, metrics: collector}
		decision, err = s.root(state, moves, depth)
	}
	metric := collector.Complete()
	if err != nil {
		return Decision{}, metric, err
	}

	log.Trace().
		Int("move", decision.Move).
		Int("value", decision.Value).
		Int("depth", depth).
		Bool("pruning", m.pruning).
		Int64("nodes", metric.Nodes).
		Msg("search complete")
	return decision, metric, nil
}

// ChooseMove returns only the move of Search.
func (m *Minimax) ChooseMove(state State, depth int) (int, error) {
	decision, _, err := m.Search(state, depth)
	if err != nil {
		return 0, err
	}
	return decision.Move, nil
}

// ChooseMove searches state with the default evaluation.
func ChooseMove(state State, depth int, usePruning bool) (int, error) {
	return NewMinimax(WithPruning(usePruning)).ChooseMove(state, depth)
}

func playMove(state State, move int) (State, error) {
	child, err := state.Result(move)
	if err != nil {
		return nil, fmt.Errorf("failed to play move %d: %w", move, err)
	}
	return child, nil
}
