package game

import (
	"fmt"
	"strings"

	"chinesecheckers/utils"
)

// Board owns the grid and the per-player piece-location tables. The two are
// kept in lockstep by Apply and Undo: a coordinate is in pieces[p] iff the
// grid cell there holds p, and bits mirrors the grid as occupancy masks.
type Board struct {
	grid   [Size][Size]Cell
	pieces [2][NumPieces]Coord
	bits   [2]uint64
}

// NewBoard returns a board in the canonical start layout.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset places every piece back on its home cells.
func (b *Board) Reset() {
	b.grid = [Size][Size]Cell{}
	b.bits = [2]uint64{}
	for _, p := range []Player{Player0, Player1} {
		b.pieces[p] = homes[p]
		for _, c := range homes[p] {
			b.set(c, p.Cell())
		}
	}
}

// BoardFromPieces builds a board holding exactly the given pieces. It panics
// if a coordinate is off the grid or used twice.
func BoardFromPieces(p0, p1 [NumPieces]Coord) *Board {
	b := &Board{}
	for p, list := range [2][NumPieces]Coord{p0, p1} {
		b.pieces[p] = list
		for _, c := range list {
			if !c.InBounds() {
				panic(fmt.Sprintf("piece %v is off the board", c))
			}
			if b.CellAt(c) != Empty {
				panic(fmt.Sprintf("two pieces on %v", c))
			}
			b.set(c, Player(p).Cell())
		}
	}
	return b
}

func (b *Board) set(c Coord, v Cell) {
	bit := uint64(1) << c.Index()
	if owner, ok := b.grid[c.Row][c.Col].Owner(); ok {
		b.bits[owner] &^= bit
	}
	b.grid[c.Row][c.Col] = v
	if owner, ok := v.Owner(); ok {
		b.bits[owner] |= bit
	}
}

// CellAt returns the occupancy of c.
func (b *Board) CellAt(c Coord) Cell {
	return b.grid[c.Row][c.Col]
}

// Pieces returns a copy of p's piece-location table.
func (b *Board) Pieces(p Player) [NumPieces]Coord {
	return b.pieces[p]
}

// Fingerprint returns the occupancy masks of both players.
func (b *Board) Fingerprint() Fingerprint {
	return Fingerprint{b.bits[Player0], b.bits[Player1]}
}

// Occupied returns the union of both players' occupancy.
func (b *Board) Occupied() uint64 {
	return b.bits[Player0] | b.bits[Player1]
}

// Apply moves the piece on the move's start cell to its end cell. It does
// not check legality; only that a piece exists to be moved.
func (b *Board) Apply(m Move) Player {
	start, end := m.Start(), m.End()
	mover, ok := b.CellAt(start).Owner()
	if !ok {
		panic(fmt.Sprintf("apply %v: no piece on %v", m, start))
	}
	b.relocate(mover, start, end)
	return mover
}

// Undo reverts the most recent Apply of m.
func (b *Board) Undo(m Move) Player {
	start, end := m.Start(), m.End()
	mover, ok := b.CellAt(end).Owner()
	if !ok {
		panic(fmt.Sprintf("undo %v: no piece on %v", m, end))
	}
	if start != end && b.CellAt(start) != Empty {
		panic(fmt.Sprintf("undo %v: start cell %v is occupied", m, start))
	}
	b.relocate(mover, end, start)
	return mover
}

func (b *Board) relocate(p Player, from, to Coord) {
	slot := utils.FindIndex(b.pieces[p][:], from)
	if slot < 0 {
		panic(fmt.Sprintf("piece list of %v has no entry for %v", p, from))
	}
	b.set(from, Empty)
	b.set(to, p.Cell())
	b.pieces[p][slot] = to
}

// Flatten returns the grid in row-major order.
func (b *Board) Flatten() [Size * Size]Cell {
	var out [Size * Size]Cell
	for r := range Size {
		for c := range Size {
			out[r*Size+c] = b.grid[r][c]
		}
	}
	return out
}

// Consistent reports whether the grid, piece tables and masks agree.
func (b *Board) Consistent() bool {
	var seen [2]uint64
	for p := range b.pieces {
		for _, c := range b.pieces[p] {
			if !c.InBounds() || b.CellAt(c) != Player(p).Cell() {
				return false
			}
			seen[p] |= 1 << c.Index()
		}
	}
	var fromGrid [2]uint64
	for i := range Size * Size {
		if owner, ok := b.CellAt(CoordOf(i)).Owner(); ok {
			fromGrid[owner] |= 1 << i
		}
	}
	return seen == b.bits && fromGrid == b.bits
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := range Size {
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", b.grid[r][c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
