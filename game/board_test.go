package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	t.Run("start layout", func(t *testing.T) {
		b := NewBoard()

		require.True(t, b.Consistent(), "Board should be consistent")
		require.Equal(t, HomeMask(Player0), b.Fingerprint()[Player0], "Player0 should fill its home")
		require.Equal(t, HomeMask(Player1), b.Fingerprint()[Player1], "Player1 should fill its home")
		require.Equal(t, OwnedByPlayer0, b.CellAt(Coord{3, 0}))
		require.Equal(t, OwnedByPlayer1, b.CellAt(Coord{4, 7}))
		require.Equal(t, Empty, b.CellAt(Coord{3, 4}))
	})

	t.Run("apply then undo restores the board", func(t *testing.T) {
		b := NewBoard()
		before := *b
		m := Move{{0, 2}, {0, 4}}

		mover := b.Apply(m)
		require.Equal(t, Player0, mover)
		require.Equal(t, Empty, b.CellAt(Coord{0, 2}))
		require.Equal(t, OwnedByPlayer0, b.CellAt(Coord{0, 4}))
		require.Contains(t, b.Pieces(Player0), Coord{0, 4})
		require.True(t, b.Consistent())

		require.Equal(t, Player0, b.Undo(m))
		require.Equal(t, before, *b, "Undo should restore board exactly")
	})

	t.Run("apply from an empty cell panics", func(t *testing.T) {
		b := NewBoard()
		require.Panics(t, func() { b.Apply(Move{{3, 3}, {3, 4}}) })
	})

	t.Run("undo onto an occupied start panics", func(t *testing.T) {
		b := NewBoard()
		require.Panics(t, func() { b.Undo(Move{{0, 1}, {0, 2}}) })
	})

	t.Run("pieces with duplicates are rejected", func(t *testing.T) {
		p0 := homes[Player0]
		p1 := homes[Player1]
		p1[0] = p0[0]
		require.Panics(t, func() { BoardFromPieces(p0, p1) })
	})

	t.Run("flattened cells reproduce the fingerprint", func(t *testing.T) {
		b := NewBoard()
		b.Apply(Move{{3, 0}, {4, 0}})

		require.Equal(t, b.Fingerprint(), FingerprintOf(b.Flatten()))
	})
}

func TestFingerprint(t *testing.T) {
	t.Run("equal boards share keys", func(t *testing.T) {
		a, b := NewBoard(), NewBoard()
		require.Equal(t, a.Fingerprint().Key(), b.Fingerprint().Key())
	})

	t.Run("different boards differ", func(t *testing.T) {
		a, b := NewBoard(), NewBoard()
		b.Apply(Move{{3, 0}, {4, 0}})
		require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
		require.NotEqual(t, a.Fingerprint().Key(), b.Fingerprint().Key())
	})

	t.Run("count in goal", func(t *testing.T) {
		f := NewBoard().Fingerprint()
		require.Equal(t, NumPieces, f.Count(Player0, HomeMask(Player0)))
		require.Equal(t, 0, f.Count(Player0, Goal(Player0)))
	})
}
