package game

import (
	"fmt"
	"strconv"
	"strings"
)

const cellWidth = 4

// String draws the board with player 2's store on the left, player 2's pits
// along the top (numbered right to left) and player 1's pits along the bottom.
func (b Board) String() string {
	var sb strings.Builder
	rule := strings.Repeat("─", b.pits*cellWidth)

	sb.WriteString("     ")
	for n := b.pits; n >= 1; n-- {
		sb.WriteString(center(strconv.Itoa(n), cellWidth))
	}
	sb.WriteString("\n")
	sb.WriteString("┌───┬" + rule + "┬───┐\n")

	sb.WriteString("│" + center(strconv.Itoa(b.Store(Player2)), 3) + "│")
	start, end := b.PitRange(Player2)
	for i := end - 1; i >= start; i-- {
		sb.WriteString(center(strconv.Itoa(b.slots[i]), cellWidth))
	}
	sb.WriteString("│   │\n")

	sb.WriteString("│ P2├" + rule + "┤P1 │\n")

	sb.WriteString("│   │")
	start, end = b.PitRange(Player1)
	for i := start; i < end; i++ {
		sb.WriteString(center(strconv.Itoa(b.slots[i]), cellWidth))
	}
	sb.WriteString("│" + center(strconv.Itoa(b.Store(Player1)), 3) + "│\n")

	sb.WriteString("└───┴" + rule + "┴───┘\n")
	sb.WriteString("     ")
	for n := 1; n <= b.pits; n++ {
		sb.WriteString(center(strconv.Itoa(n), cellWidth))
	}
	sb.WriteString("\n\n")

	switch result := b.Winner(); result {
	case Ongoing:
		fmt.Fprintf(&sb, "    %s's turn", b.player)
	case Tie:
		sb.WriteString("    Game Over - It's a tie!")
	default:
		winner, _ := result.Winner()
		fmt.Fprintf(&sb, "    Game Over - %s wins!", winner)
	}
	return sb.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
