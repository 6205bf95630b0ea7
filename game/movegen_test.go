package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sparseBoard keeps Player0's piece on (0,0) isolated from the rest of its
// army so jump tests only see the pieces they place on row 0.
func sparseBoard(row0 ...Coord) *Board {
	p0 := [NumPieces]Coord{{0, 0}, {7, 0}, {7, 1}, {7, 2}, {7, 3}, {6, 0}, {6, 1}, {6, 2}, {5, 0}, {5, 1}}
	p1 := [NumPieces]Coord{{3, 4}, {3, 5}, {3, 6}, {4, 4}, {4, 5}, {4, 6}, {2, 6}, {2, 7}, {1, 7}, {0, 7}}
	for i, c := range row0 {
		p1[len(p1)-1-i] = c
	}
	return BoardFromPieces(p0, p1)
}

func movesFrom(moves []Move, start Coord) []Move {
	var out []Move
	for _, m := range moves {
		if m.Start() == start {
			out = append(out, m)
		}
	}
	return out
}

func TestAvailableMoves(t *testing.T) {
	t.Run("start position moves are legal and unique per destination", func(t *testing.T) {
		b := NewBoard()
		for _, p := range []Player{Player0, Player1} {
			seen := make(map[[2]Coord]bool)
			for _, m := range AvailableMoves(b, p, false) {
				owner, ok := b.CellAt(m.Start()).Owner()
				require.True(t, ok && owner == p, "Move %v should start on a piece of %v", m, p)
				require.Equal(t, Empty, b.CellAt(m.End()), "Move %v should end on an empty cell", m)
				require.NotEqual(t, Illegal, Classify(b, m, false), "Move %v should classify as legal", m)
				key := [2]Coord{m.Start(), m.End()}
				require.False(t, seen[key], "Destination of %v should be listed once", m)
				seen[key] = true
			}
		}
	})

	t.Run("both players have the same number of opening moves", func(t *testing.T) {
		b := NewBoard()
		require.Len(t, AvailableMoves(b, Player1, false), len(AvailableMoves(b, Player0, false)))
	})

	t.Run("steps come before jumps", func(t *testing.T) {
		b := NewBoard()
		moves := AvailableMoves(b, Player0, false)
		steps := SingleStepMoves(b, Player0)
		require.Equal(t, steps, moves[:len(steps)])
		require.Contains(t, moves, Move{{0, 2}, {0, 4}})
		require.Contains(t, moves, Move{{3, 0}, {4, 0}})
	})

	t.Run("jump chains continue from landing cells", func(t *testing.T) {
		b := sparseBoard(Coord{0, 1}, Coord{0, 3})
		chains := movesFrom(JumpChains(b, Player0, false), Coord{0, 0})

		require.Equal(t, []Move{
			{{0, 0}, {0, 2}},
			{{0, 0}, {0, 2}, {0, 4}},
		}, chains)
		require.Equal(t, JumpChain, Classify(b, Move{{0, 0}, {0, 2}, {0, 4}}, false))
		require.Equal(t, Illegal, Classify(b, Move{{0, 0}, {0, 4}}, false))
	})

	t.Run("long jumps land symmetrically", func(t *testing.T) {
		b := sparseBoard(Coord{0, 2})

		require.Empty(t, movesFrom(JumpChains(b, Player0, false), Coord{0, 0}))
		require.Equal(t, []Move{{{0, 0}, {0, 4}}}, movesFrom(JumpChains(b, Player0, true), Coord{0, 0}))
		require.Equal(t, Illegal, Classify(b, Move{{0, 0}, {0, 4}}, false))
		require.Equal(t, JumpChain, Classify(b, Move{{0, 0}, {0, 4}}, true))
	})

	t.Run("chains never jump over their own start cell", func(t *testing.T) {
		p0 := [NumPieces]Coord{{0, 0}, {2, 4}, {2, 5}, {2, 7}, {1, 7}, {3, 5}, {3, 6}, {5, 5}, {6, 3}, {7, 1}}
		p1 := [NumPieces]Coord{{0, 7}, {1, 2}, {2, 0}, {4, 2}, {4, 6}, {5, 0}, {5, 1}, {5, 6}, {5, 7}, {6, 0}}
		b := BoardFromPieces(p0, p1)
		overStart := Move{{2, 4}, {2, 6}, {4, 4}, {0, 4}}

		require.Equal(t, JumpChain, Classify(b, overStart[:3], true))
		require.NotContains(t, JumpChains(b, Player0, true), overStart)
		require.Equal(t, Illegal, Classify(b, overStart, true), "Last hop crosses the vacated start cell")
	})
}

func TestClassify(t *testing.T) {
	b := NewBoard()

	require.Equal(t, Step, Classify(b, Move{{3, 0}, {4, 0}}, false))
	require.Equal(t, JumpChain, Classify(b, Move{{0, 2}, {0, 4}}, false))
	require.Equal(t, Illegal, Classify(b, Move{{3, 0}}, false), "Single cell is not a move")
	require.Equal(t, Illegal, Classify(b, Move{{3, 0}, {2, 0}}, false), "Step onto a piece")
	require.Equal(t, Illegal, Classify(b, Move{{3, 3}, {3, 4}}, false), "Empty start")
	require.Equal(t, Illegal, Classify(b, Move{{3, 0}, {5, 0}}, false), "Jump over nothing")
	require.Equal(t, Illegal, Classify(b, Move{{3, 0}, {3, -1}}, false), "Off the board")
}
