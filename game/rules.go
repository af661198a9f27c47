package game

import "fmt"

// LegalMoves returns the mover's non-empty pits in increasing index order, or
// nothing once the game is over.
func (b Board) LegalMoves() []int {
	if b.IsTerminal() {
		return []int{}
	}

	start, end := b.PitRange(b.player)
	moves := make([]int, 0, b.pits)
	for i := start; i < end; i++ {
		if b.slots[i] > 0 {
			moves = append(moves, i)
		}
	}
	return moves
}

// IsLegal reports whether the mover may sow from the given pit.
func (b Board) IsLegal(pit int) bool {
	return b.Owns(b.player, pit) && b.slots[pit] > 0 && !b.IsTerminal()
}

// ApplyMove sows the stones of the given pit for the player to move and returns
// the resulting position. The receiver is left untouched, including on error.
func (b Board) ApplyMove(pit int) (Board, error) {
	if b.IsTerminal() {
		return Board{}, fmt.Errorf("%w: game is already over", ErrIllegalMove)
	}
	if !b.Owns(b.player, pit) {
		return Board{}, fmt.Errorf("%w: pit %d does not belong to %s", ErrIllegalMove, pit, b.player)
	}
	if b.slots[pit] == 0 {
		return Board{}, fmt.Errorf("%w: pit %d is empty", ErrIllegalMove, pit)
	}

	next := b.clone()
	last := next.sow(pit)
	store := next.StoreIndex(next.player)

	// Capture only looks at the final stone: intermediate stones dropped into
	// empty pits during the same sow never capture.
	if next.Owns(next.player, last) && next.slots[last] == 1 {
		opposite := next.Opposite(last)
		if next.slots[opposite] > 0 {
			next.slots[store] += next.slots[opposite] + 1
			next.slots[opposite] = 0
			next.slots[last] = 0
		}
	}

	if next.IsTerminal() {
		next.sweep()
		return next, nil
	}

	// Extra turn when the last stone lands in the mover's store
	if last != store {
		next.player = next.player.Opponent()
	}
	return next, nil
}

// sow empties the pit and drops one stone into every following slot except the
// opponent's store. It returns the index of the last stone.
func (b *Board) sow(pit int) int {
	skip := b.StoreIndex(b.player.Opponent())
	stones := b.slots[pit]
	b.slots[pit] = 0

	index := pit
	for stones > 0 {
		index = (index + 1) % len(b.slots)
		if index == skip {
			continue
		}
		b.slots[index]++
		stones--
	}
	return index
}

// sweep moves every stone still in a pit into its owner's store.
func (b *Board) sweep() {
	for _, p := range []Player{Player1, Player2} {
		start, end := b.PitRange(p)
		store := b.StoreIndex(p)
		for i := start; i < end; i++ {
			b.slots[store] += b.slots[i]
			b.slots[i] = 0
		}
	}
}

// IsTerminal reports whether either side has run out of stones in its pits.
func (b Board) IsTerminal() bool {
	return b.SideStones(Player1) == 0 || b.SideStones(Player2) == 0
}

// Winner compares the stores of a finished game. Stones still in pits are not
// counted, so callers should only rely on it once IsTerminal holds.
func (b Board) Winner() Result {
	if !b.IsTerminal() {
		return Ongoing
	}

	p1, p2 := b.StoreCounts()
	switch {
	case p1 > p2:
		return Player1Wins
	case p2 > p1:
		return Player2Wins
	default:
		return Tie
	}
}
