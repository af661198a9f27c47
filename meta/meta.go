// meta/meta.go
package meta

// PitsPerPlayer defines the number of pits on each side of a standard board.
const PitsPerPlayer = 6

// StonesPerPit defines the number of stones initially placed in every pit.
const StonesPerPit = 4

// PlayDepth defines the search depth of the AI in interactive games.
const PlayDepth = 6

// BenchmarkDepth defines the search depth of the AI in benchmark games.
const BenchmarkDepth = 5

// Simulations defines the number of games per benchmark.
const Simulations = 100

// MaxMoves defines the number of moves after which a game is abandoned.
const MaxMoves = 1000
