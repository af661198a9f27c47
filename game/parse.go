package game

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var notation = regexp.MustCompile(`^\s*(\d+(?:\s*,\s*\d+)+)\s*(?:/\s*([12]))?\s*$`)

// Parse reads a position written as comma separated slot counts in board
// order, optionally followed by "/1" or "/2" for the player to move:
//
//	4,4,4,4,4,4,0,4,4,4,4,4,4,0/1
func Parse(position string) (Board, error) {
	match := notation.FindStringSubmatch(position)
	if match == nil {
		return Board{}, fmt.Errorf("%w: cannot parse position %q", ErrInvalidConfiguration, position)
	}

	var slots []int
	for _, part := range strings.Split(match[1], ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Board{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		slots = append(slots, n)
	}

	player := Player1
	if match[2] == "2" {
		player = Player2
	}
	return FromSlots(slots, player)
}

// Notation is the inverse of Parse.
func (b Board) Notation() string {
	parts := make([]string, len(b.slots))
	for i, stones := range b.slots {
		parts[i] = strconv.Itoa(stones)
	}
	return fmt.Sprintf("%s/%d", strings.Join(parts, ","), int(b.player))
}
