package game

import "fmt"

// PitIndex converts a 1-based pit number, counted from each player's own left,
// into a board index for p.
func (b Board) PitIndex(p Player, number int) (int, error) {
	if number < 1 || number > b.pits {
		return 0, fmt.Errorf("%w: pit number %d outside 1..%d", ErrIllegalMove, number, b.pits)
	}
	start, _ := b.PitRange(p)
	return start + number - 1, nil
}

// PitNumber converts a pit index back into its owner's 1-based pit number.
func (b Board) PitNumber(index int) int {
	if index > b.pits {
		return index - b.pits
	}
	return index + 1
}
