package game

import "chinesecheckers/utils"

// jumpGraph discovers elementary jump edges of one board on demand. Edges
// are board-wide: any piece, the mover's or the opponent's, can be jumped,
// and a chain may continue from any empty landing cell. The board must not
// change while a jumpGraph is in use.
type jumpGraph struct {
	board *Board
	long  bool
	done  uint64
	edges [Size * Size][]Coord
}

func newJumpGraph(b *Board, long bool) *jumpGraph {
	return &jumpGraph{board: b, long: long}
}

// from returns the landing cells of every elementary jump starting on c.
func (g *jumpGraph) from(c Coord) []Coord {
	i := c.Index()
	if g.done&(1<<i) == 0 {
		g.edges[i] = g.scan(c)
		g.done |= 1 << i
	}
	return g.edges[i]
}

// scan walks outward along each direction to the nearest occupied cell at
// distance k; the jump lands at 2k when every cell after the jumped piece up
// to and including the landing cell is empty. Without long jumps only k = 1
// is allowed.
func (g *jumpGraph) scan(c Coord) []Coord {
	var out []Coord
	for _, d := range Directions {
		for k := 1; ; k++ {
			landing := c.Add(d, 2*k)
			if !landing.InBounds() {
				break
			}
			if g.board.CellAt(c.Add(d, k)) == Empty {
				if g.long {
					continue
				}
				break
			}
			clear := true
			for l := k + 1; l <= 2*k; l++ {
				if g.board.CellAt(c.Add(d, l)) != Empty {
					clear = false
					break
				}
			}
			if clear {
				out = append(out, landing)
			}
			break
		}
	}
	return out
}

func (g *jumpGraph) hasEdge(from, to Coord) bool {
	return utils.FindIndex(g.from(from), to) >= 0
}

func midpoint(a, b Coord) Coord {
	return Coord{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}

// chains appends one move per cell reachable from root by jumping. The
// traversal is breadth first and never revisits a cell, so each destination
// keeps the first path found. Jumps over root itself are skipped: the piece
// has left that cell.
func (g *jumpGraph) chains(root Coord, out []Move) []Move {
	var parent [Size * Size]int8
	explored := uint64(1) << root.Index()
	queue := make([]Coord, 0, 16)
	queue = append(queue, root)

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, n := range g.from(v) {
			bit := uint64(1) << n.Index()
			if explored&bit != 0 || midpoint(v, n) == root {
				continue
			}
			explored |= bit
			parent[n.Index()] = int8(v.Index())
			queue = append(queue, n)
			out = append(out, pathTo(parent, root, n))
		}
	}
	return out
}

func pathTo(parent [Size * Size]int8, root, end Coord) Move {
	length := 1
	for c := end; c != root; c = CoordOf(int(parent[c.Index()])) {
		length++
	}
	m := make(Move, length)
	for c, i := end, length-1; i >= 0; i-- {
		m[i] = c
		if i > 0 {
			c = CoordOf(int(parent[c.Index()]))
		}
	}
	return m
}

// SingleStepMoves lists every slide of one of p's pieces to an empty
// neighbouring cell.
func SingleStepMoves(b *Board, p Player) []Move {
	var out []Move
	for _, piece := range b.pieces[p] {
		for _, n := range Neighbours(piece) {
			if b.CellAt(n) == Empty {
				out = append(out, Move{piece, n})
			}
		}
	}
	return out
}

// JumpChains lists, for each of p's pieces, one jump chain to every cell it
// can reach by jumping.
func JumpChains(b *Board, p Player, long bool) []Move {
	g := newJumpGraph(b, long)
	var out []Move
	for _, root := range b.pieces[p] {
		out = g.chains(root, out)
	}
	return out
}

// AvailableMoves lists all single steps followed by all jump chains of p.
func AvailableMoves(b *Board, p Player, long bool) []Move {
	return append(SingleStepMoves(b, p), JumpChains(b, p, long)...)
}

// Classify determines the kind of m on b. A two-cell move onto an empty
// neighbour is a Step; a move whose every consecutive pair is an elementary
// jump, never jumping over its own start cell and never revisiting a cell,
// is a JumpChain. Anything else, including moves shorter than two cells and
// moves that do not start on a piece, is Illegal.
func Classify(b *Board, m Move, long bool) MoveKind {
	if len(m) < 2 {
		return Illegal
	}
	for _, c := range m {
		if !c.InBounds() {
			return Illegal
		}
	}
	start := m.Start()
	if b.CellAt(start) == Empty {
		return Illegal
	}
	if len(m) == 2 && IsNeighbour(start, m.End()) {
		if b.CellAt(m.End()) == Empty {
			return Step
		}
		return Illegal
	}

	g := newJumpGraph(b, long)
	visited := uint64(1) << start.Index()
	for i := 0; i+1 < len(m); i++ {
		from, to := m[i], m[i+1]
		bit := uint64(1) << to.Index()
		if visited&bit != 0 || !g.hasEdge(from, to) || midpoint(from, to) == start {
			return Illegal
		}
		visited |= bit
	}
	return JumpChain
}
