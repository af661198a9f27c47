package game

import "mancala/searcher"

// GameState adapts a Board to the searcher.State interface. The utility and
// the legal moves are computed once when the state is built.
type GameState struct {
	board   Board
	utility int // Player 1 store minus player 2 store
	moves   []int
}

var _ searcher.State = (*GameState)(nil)

func NewGameState(board Board) *GameState {
	p1, p2 := board.StoreCounts()
	return &GameState{
		board:   board,
		utility: p1 - p2,
		moves:   board.LegalMoves(),
	}
}

// NewInitialState builds the search state for a fresh board.
func NewInitialState(pitsPerPlayer, stonesPerPit int) (*GameState, error) {
	board, err := NewBoard(pitsPerPlayer, stonesPerPit)
	if err != nil {
		return nil, err
	}
	return NewGameState(board), nil
}

// Board returns the wrapped position.
func (gs *GameState) Board() Board {
	return gs.board
}

func (gs *GameState) Player() int {
	return int(gs.board.Player())
}

func (gs *GameState) Actions() []int {
	moves := make([]int, len(gs.moves))
	copy(moves, gs.moves)
	return moves
}

func (gs *GameState) Result(move int) (searcher.State, error) {
	return gs.Play(move)
}

// Play is Result with the concrete return type.
func (gs *GameState) Play(move int) (*GameState, error) {
	next, err := gs.board.ApplyMove(move)
	if err != nil {
		return nil, err
	}
	return NewGameState(next), nil
}

// Utility is the store difference seen from the given player.
func (gs *GameState) Utility(player int) int {
	if Player(player) == Player2 {
		return -gs.utility
	}
	return gs.utility
}

func (gs *GameState) IsTerminal() bool {
	return gs.board.IsTerminal()
}

func (gs *GameState) Winner() Result {
	return gs.board.Winner()
}

func (gs *GameState) String() string {
	return gs.board.String()
}
