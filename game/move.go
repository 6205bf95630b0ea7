package game

import (
	"fmt"
	"strings"
)

// Move is the ordered path of a piece: start, each landing cell, end. A
// length of two is either a single step or a single jump; longer moves are
// jump chains.
type Move []Coord

// Start returns the cell the piece leaves.
func (m Move) Start() Coord {
	return m[0]
}

// End returns the cell the piece lands on.
func (m Move) End() Coord {
	return m[len(m)-1]
}

// Equal reports whether m and o visit the same cells in the same order.
func (m Move) Equal(o Move) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}

// Flatten returns the move as row, col pairs laid end to end.
func (m Move) Flatten() []int {
	out := make([]int, 0, 2*len(m))
	for _, c := range m {
		out = append(out, c.Row, c.Col)
	}
	return out
}

// MoveFromPairs is the inverse of Flatten.
func MoveFromPairs(values []int) (Move, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates: %d", len(values))
	}
	m := make(Move, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		m = append(m, Coord{Row: values[i], Col: values[i+1]})
	}
	return m, nil
}

func (m Move) String() string {
	parts := make([]string, len(m))
	for i, c := range m {
		parts[i] = c.String()
	}
	return strings.Join(parts, "->")
}

// MoveKind is the shape of a move, derived from its cells and the board.
type MoveKind int

const (
	Illegal MoveKind = iota
	Step
	JumpChain
)

func (k MoveKind) String() string {
	switch k {
	case Step:
		return "Step"
	case JumpChain:
		return "JumpChain"
	default:
		return "Illegal"
	}
}
