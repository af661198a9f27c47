package game

import (
	"fmt"
	"sort"

	"mancala/searcher"
)

// EvaluateStores scores a state by player 1's store minus player 2's store,
// the same value as its utility.
func EvaluateStores(s searcher.State) int {
	return s.Utility(int(Player1))
}

// EvaluateMaterial scores a state as if the game ended now and each side swept
// its pits into its own store. On terminal boards it equals EvaluateStores.
func EvaluateMaterial(s searcher.State) int {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	b := gs.board
	p1 := b.Store(Player1) + b.SideStones(Player1)
	p2 := b.Store(Player2) + b.SideStones(Player2)
	return p1 - p2
}

var evaluators = map[string]searcher.Evaluate{
	"utility":  EvaluateStores,
	"material": EvaluateMaterial,
}

// LookupEvaluation returns the evaluation registered under name.
func LookupEvaluation(name string) (searcher.Evaluate, error) {
	evaluate, ok := evaluators[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluation %q (available: %v)", name, EvaluationNames())
	}
	return evaluate, nil
}

func EvaluationNames() []string {
	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
