package game

import "fmt"

// Size is the width and height of the square embedding of the star board.
const Size = 8

// NumPieces is the number of pieces each player owns.
const NumPieces = 10

// Player identifies one of the two sides.
type Player int8

const (
	Player0 Player = iota
	Player1
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	return 1 - p
}

// Cell returns the cell value occupied by p.
func (p Player) Cell() Cell {
	return Cell(p + 1)
}

func (p Player) String() string {
	return fmt.Sprintf("Player%d", int(p))
}

// Cell is the occupancy of one board coordinate. The numeric values are the
// canonical encoding used by every persisted format: Empty=0, Player0=1,
// Player1=2.
type Cell uint8

const (
	Empty Cell = iota
	OwnedByPlayer0
	OwnedByPlayer1
)

// Owner reports which player occupies the cell, if any.
func (c Cell) Owner() (Player, bool) {
	switch c {
	case OwnedByPlayer0:
		return Player0, true
	case OwnedByPlayer1:
		return Player1, true
	default:
		return 0, false
	}
}

// Coord is a (row, col) position on the grid.
type Coord struct {
	Row int
	Col int
}

// InBounds reports whether c lies on the 8x8 grid.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Index is the row-major bit index of c, as used by fingerprints.
func (c Coord) Index() int {
	return c.Row*Size + c.Col
}

// Add returns c shifted by k steps of d.
func (c Coord) Add(d Direction, k int) Coord {
	return Coord{Row: c.Row + d.Row*k, Col: c.Col + d.Col*k}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CoordOf is the inverse of Coord.Index.
func CoordOf(index int) Coord {
	return Coord{Row: index / Size, Col: index % Size}
}

// Result is the classification of a position.
type Result int

const (
	NotFinished Result = iota
	Draw
	Player0Won
	Player1Won
)

// WonBy returns the winning Result for p.
func WonBy(p Player) Result {
	if p == Player0 {
		return Player0Won
	}
	return Player1Won
}

// Winner returns the winning player if r is a win.
func (r Result) Winner() (Player, bool) {
	switch r {
	case Player0Won:
		return Player0, true
	case Player1Won:
		return Player1, true
	default:
		return 0, false
	}
}

func (r Result) String() string {
	switch r {
	case NotFinished:
		return "NotFinished"
	case Draw:
		return "Draw"
	case Player0Won:
		return "Player0Won"
	case Player1Won:
		return "Player1Won"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// PieceLister exposes the piece-location tables the Evaluator reads.
type PieceLister interface {
	Pieces(p Player) [NumPieces]Coord
}
