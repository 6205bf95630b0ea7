package game

// Direction is one of the six lattice directions of the triangular board
// folded into the square grid.
type Direction struct {
	Row int
	Col int
}

// Directions lists the lattice directions in generation order. The two
// diagonals run along the anti-diagonal only; (1,1) and (-1,-1) are not
// neighbours on the star board.
var Directions = [6]Direction{
	{-1, 0},
	{-1, 1},
	{0, -1},
	{0, 1},
	{1, -1},
	{1, 0},
}

// Home regions, fixed at compile time. Player0's home is row+col < 4 in the
// upper-left corner and Player1's is the mirror set in the lower-right.
var homes = [2][NumPieces]Coord{
	{
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1},
		{3, 0},
	},
	{
		{7, 7}, {7, 6}, {7, 5}, {7, 4},
		{6, 7}, {6, 6}, {6, 5},
		{5, 7}, {5, 6},
		{4, 7},
	},
}

// homeMasks holds the fingerprint bits of each home region.
var homeMasks = [2]uint64{0x000000000103070F, 0xF0E0C08000000000}

// neighbours[i] lists the cells one step away from cell i. Cells on the
// grid boundary get the reduced set of in-bounds directions.
var neighbours [Size * Size][]Coord

func init() {
	for i := range neighbours {
		c := CoordOf(i)
		for _, d := range Directions {
			if n := c.Add(d, 1); n.InBounds() {
				neighbours[i] = append(neighbours[i], n)
			}
		}
	}
}

// Home returns the home cells of p. The opponent's home is p's goal.
func Home(p Player) [NumPieces]Coord {
	return homes[p]
}

// HomeMask returns the fingerprint mask of p's home region.
func HomeMask(p Player) uint64 {
	return homeMasks[p]
}

// Goal returns the fingerprint mask of the region p must fill to win.
func Goal(p Player) uint64 {
	return homeMasks[p.Other()]
}

// InHome reports whether c is one of p's home cells.
func InHome(p Player, c Coord) bool {
	if p == Player0 {
		return c.Row+c.Col < 4
	}
	return (Size-1-c.Row)+(Size-1-c.Col) < 4
}

// Neighbours returns the cells a piece on c may step to when empty.
func Neighbours(c Coord) []Coord {
	return neighbours[c.Index()]
}

// IsNeighbour reports whether b is one lattice step from a.
func IsNeighbour(a, b Coord) bool {
	for _, n := range neighbours[a.Index()] {
		if n == b {
			return true
		}
	}
	return false
}
