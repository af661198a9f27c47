package game

import "fmt"

// Player identifies a side of the board. Player1 moves first.
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) valid() bool {
	return p == Player1 || p == Player2
}

func (p Player) String() string {
	return fmt.Sprintf("Player %d", int(p))
}

// Result is the outcome of a game as decided by the final store totals.
type Result int

const (
	Ongoing Result = iota
	Player1Wins
	Player2Wins
	Tie
)

// Winner maps the result to the winning player, and false for a tie or an
// unfinished game.
func (r Result) Winner() (Player, bool) {
	switch r {
	case Player1Wins:
		return Player1, true
	case Player2Wins:
		return Player2, true
	default:
		return 0, false
	}
}

func (r Result) String() string {
	switch r {
	case Player1Wins:
		return "1-0"
	case Player2Wins:
		return "0-1"
	case Tie:
		return "1/2-1/2"
	default:
		return "*"
	}
}
