package game

import "fmt"

// Board is a Kalah position. The slots are laid out counter-clockwise:
// player 1's pits occupy [0, P), player 1's store is at P, player 2's pits
// occupy [P+1, 2P+1) and player 2's store is at 2P+1.
//
// Board is a value: no method mutates the receiver and every transition
// returns a Board backed by a fresh slot slice, so copies can be handed to
// independent search branches or goroutines.
type Board struct {
	pits   int   // Pits per player
	slots  []int // Stone count per slot
	player Player
}

// NewBoard returns the initial position with stonesPerPit stones in every pit,
// empty stores and player 1 to move.
func NewBoard(pitsPerPlayer, stonesPerPit int) (Board, error) {
	if pitsPerPlayer < 1 {
		return Board{}, fmt.Errorf("%w: pits per player must be at least 1, got %d", ErrInvalidConfiguration, pitsPerPlayer)
	}
	if stonesPerPit < 0 {
		return Board{}, fmt.Errorf("%w: stones per pit cannot be negative, got %d", ErrInvalidConfiguration, stonesPerPit)
	}

	b := Board{
		pits:   pitsPerPlayer,
		slots:  make([]int, 2*pitsPerPlayer+2),
		player: Player1,
	}
	for i := range b.slots {
		b.slots[i] = stonesPerPit
	}
	b.slots[b.StoreIndex(Player1)] = 0
	b.slots[b.StoreIndex(Player2)] = 0
	return b, nil
}

// FromSlots builds an arbitrary position from slot counts given in board order.
func FromSlots(slots []int, player Player) (Board, error) {
	if len(slots) < 4 || len(slots)%2 != 0 {
		return Board{}, fmt.Errorf("%w: need an even number of at least 4 slots, got %d", ErrInvalidConfiguration, len(slots))
	}
	if !player.valid() {
		return Board{}, fmt.Errorf("%w: unknown player %d", ErrInvalidConfiguration, int(player))
	}
	for i, stones := range slots {
		if stones < 0 {
			return Board{}, fmt.Errorf("%w: slot %d holds %d stones", ErrInvalidConfiguration, i, stones)
		}
	}

	b := Board{
		pits:   len(slots)/2 - 1,
		slots:  make([]int, len(slots)),
		player: player,
	}
	copy(b.slots, slots)
	return b, nil
}

func (b Board) clone() Board {
	slots := make([]int, len(b.slots))
	copy(slots, b.slots)
	return Board{pits: b.pits, slots: slots, player: b.player}
}

func (b Board) PitsPerPlayer() int {
	return b.pits
}

// Player returns the player to move.
func (b Board) Player() Player {
	return b.player
}

// Slots returns a copy of all stone counts in board order.
func (b Board) Slots() []int {
	slots := make([]int, len(b.slots))
	copy(slots, b.slots)
	return slots
}

func (b Board) Stones(index int) int {
	return b.slots[index]
}

func (b Board) StoreIndex(p Player) int {
	if p == Player1 {
		return b.pits
	}
	return 2*b.pits + 1
}

func (b Board) Store(p Player) int {
	return b.slots[b.StoreIndex(p)]
}

// StoreCounts returns the stores of player 1 and player 2.
func (b Board) StoreCounts() (int, int) {
	return b.Store(Player1), b.Store(Player2)
}

// PitRange returns the half-open index range [start, end) of p's pits.
func (b Board) PitRange(p Player) (start, end int) {
	if p == Player1 {
		return 0, b.pits
	}
	return b.pits + 1, 2*b.pits + 1
}

// Owns reports whether index is one of p's pits. Stores are never owned.
func (b Board) Owns(p Player, index int) bool {
	start, end := b.PitRange(p)
	return start <= index && index < end
}

// Opposite returns the index of the pit facing the given pit.
func (b Board) Opposite(index int) int {
	return 2*b.pits - index
}

// SideStones counts the stones left in p's pits, stores excluded.
func (b Board) SideStones(p Player) int {
	start, end := b.PitRange(p)
	total := 0
	for _, stones := range b.slots[start:end] {
		total += stones
	}
	return total
}

func (b Board) TotalStones() int {
	total := 0
	for _, stones := range b.slots {
		total += stones
	}
	return total
}

// Equal reports whether both boards hold the same position and mover.
func (b Board) Equal(other Board) bool {
	if b.pits != other.pits || b.player != other.player || len(b.slots) != len(other.slots) {
		return false
	}
	for i := range b.slots {
		if b.slots[i] != other.slots[i] {
			return false
		}
	}
	return true
}
