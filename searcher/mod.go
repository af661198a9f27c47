package searcher

// MaxPlayer is the player whose utility the search maximizes. Its opponent
// minimizes the same value.
const MaxPlayer = 1

// State is the view of a two-player zero-sum game that the search needs. Any
// rules engine can be searched by implementing it; the search never looks
// behind it.
//
// State should be immutable - Result always returns a new, independent state.
type State interface {
	// Player returns the player to move (1 or 2).
	Player() int
	// Actions returns the legal moves in a stable order, empty when terminal.
	Actions() []int
	Result(move int) (State, error)
	// Utility returns the exact value of the state for the given player.
	Utility(player int) int
	IsTerminal() bool
}

// Evaluate statically scores a non-terminal state at the search cutoff, from
// MaxPlayer's perspective.
type Evaluate func(State) int

// Decision is the move chosen at the root together with its backed-up value
// from MaxPlayer's perspective.
type Decision struct {
	Move  int
	Value int
}

func utility(s State) int {
	return s.Utility(MaxPlayer)
}

// improves reports whether value is strictly better than best for the side to
// move. Strictness keeps the first of equally valued moves.
func improves(maximizing bool, value, best int) bool {
	if maximizing {
		return value > best
	}
	return value < best
}
