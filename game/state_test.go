package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	p0Forward = Move{{0, 2}, {0, 4}}
	p0Back    = Move{{0, 4}, {0, 2}}
	p1Forward = Move{{4, 7}, {3, 7}}
	p1Back    = Move{{3, 7}, {4, 7}}
)

// nearWin has Player0 one step from filling its goal: (3,7)->(4,7) wins.
func nearWin() *Board {
	p0 := [NumPieces]Coord{{7, 7}, {7, 6}, {7, 5}, {7, 4}, {6, 7}, {6, 6}, {6, 5}, {5, 7}, {5, 6}, {3, 7}}
	p1 := [NumPieces]Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {3, 1}}
	return BoardFromPieces(p0, p1)
}

// blockedGoal has Player0 on nine goal cells and Player1 on the tenth.
func blockedGoal(stray Coord) *Board {
	p0 := [NumPieces]Coord{{7, 7}, {7, 6}, {7, 5}, {7, 4}, {6, 7}, {6, 6}, {6, 5}, {5, 7}, {4, 7}, stray}
	p1 := [NumPieces]Coord{{5, 6}, {3, 3}, {3, 4}, {2, 3}, {2, 4}, {4, 3}, {4, 4}, {4, 2}, {3, 2}, {2, 2}}
	return BoardFromPieces(p0, p1)
}

func TestSubmitMove(t *testing.T) {
	t.Run("accepts alternating legal moves", func(t *testing.T) {
		g := NewGame()

		require.True(t, g.SubmitMove(Player0, p0Forward))
		require.Equal(t, Player1, g.Turn())
		require.True(t, g.SubmitMove(Player1, p1Forward))
		require.True(t, g.SubmitMove(Player0, Move{{3, 0}, {4, 0}}))
		require.True(t, g.SubmitMove(Player1, Move{{5, 7}, {4, 7}}))
		require.Equal(t, Player0, g.Turn())
		require.True(t, g.Board().Consistent())
	})

	t.Run("rejections leave the game unchanged", func(t *testing.T) {
		g := NewGame()
		before := g.Fingerprint()

		require.False(t, g.SubmitMove(Player1, p1Forward), "Player1 is not to move")
		require.False(t, g.SubmitMove(Player0, p1Forward), "Piece belongs to Player1")
		require.False(t, g.SubmitMove(Player0, Move{{3, 0}, {5, 0}}), "No piece to jump over")
		require.False(t, g.SubmitMove(Player0, Move{{3, 0}}), "Too short")
		require.False(t, g.SubmitMove(Player0, Move{{9, 0}, {4, 0}}), "Off the board")

		require.Equal(t, Player0, g.Turn())
		require.Equal(t, before, g.Fingerprint())
		require.Equal(t, 0, g.Tracker().Len())
		require.Equal(t, NotFinished, g.StateOfGame())
	})

	t.Run("accepts any simple chain to a generated destination", func(t *testing.T) {
		p0 := [NumPieces]Coord{{0, 0}, {4, 0}, {4, 1}, {5, 0}, {5, 1}, {6, 0}, {6, 1}, {7, 0}, {7, 1}, {7, 2}}
		p1 := [NumPieces]Coord{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {7, 7}, {7, 6}, {7, 5}, {7, 4}, {6, 7}, {6, 6}}
		g := NewGameFromBoard(BoardFromPieces(p0, p1), Player0)
		generated := Move{{0, 0}, {0, 2}, {2, 2}}
		detour := Move{{0, 0}, {2, 0}, {2, 2}}

		require.Contains(t, g.AvailableMoves(), generated)
		require.NotContains(t, g.AvailableMoves(), detour)
		require.True(t, g.SubmitMove(Player0, detour))
		require.Equal(t, Player0.Cell(), g.Board().CellAt(Coord{2, 2}))
		require.Equal(t, Empty, g.Board().CellAt(Coord{0, 0}))
		require.Equal(t, Player1, g.Turn())
	})
}

func TestPlayUnplay(t *testing.T) {
	g := NewGame()
	g.SubmitMove(Player0, p0Forward)
	before := g.Fingerprint()
	seen := g.Tracker().Len()

	for _, m := range g.AvailableMoves() {
		g.Play(m)
		require.Equal(t, Player0, g.Turn())
		g.Unplay(m)

		require.Equal(t, Player1, g.Turn())
		require.Equal(t, before, g.Fingerprint(), "Unplay of %v should restore the board", m)
		require.Equal(t, seen, g.Tracker().Len(), "Unplay of %v should restore the tracker", m)
	}
	require.True(t, g.Board().Consistent())
	require.Panics(t, func() { g.Play(p0Back) }, "Player0 is not to move")
}

func TestClone(t *testing.T) {
	g := NewGame()
	g.SubmitMove(Player0, p0Forward)
	c := g.Clone()
	c.SubmitMove(Player1, p1Forward)

	require.Equal(t, Player1, g.Turn())
	require.Equal(t, Empty, g.Board().CellAt(Coord{3, 7}))
	require.Equal(t, 1, g.Tracker().Len())
	require.Equal(t, 2, c.Tracker().Len())
}

func TestStateOfGame(t *testing.T) {
	t.Run("repetition draws on the occurrence after the threshold", func(t *testing.T) {
		g := NewGame()
		cycle := []Move{p0Forward, p1Forward, p0Back, p1Back}

		for i := 0; i < 3; i++ {
			for _, m := range cycle {
				require.True(t, g.SubmitMove(g.Turn(), m))
				require.Equal(t, NotFinished, g.StateOfGame())
			}
		}
		require.Equal(t, 3, g.Repetitions(), "Start position is reached once per cycle")

		require.True(t, g.SubmitMove(Player0, p0Forward))
		require.Equal(t, Draw, g.StateOfGame())
	})

	t.Run("custom threshold", func(t *testing.T) {
		g := NewGame(WithRepetitionThreshold(1))
		for _, m := range []Move{p0Forward, p1Forward, p0Back, p1Back} {
			require.True(t, g.SubmitMove(g.Turn(), m))
		}
		require.Equal(t, NotFinished, g.StateOfGame())
		require.True(t, g.SubmitMove(Player0, p0Forward))
		require.Equal(t, Draw, g.StateOfGame())
	})

	t.Run("filling the goal wins", func(t *testing.T) {
		g := NewGameFromBoard(nearWin(), Player0)
		require.Equal(t, NotFinished, g.StateOfGame())

		require.True(t, g.SubmitMove(Player0, Move{{3, 7}, {4, 7}}))
		require.Equal(t, Player0Won, g.StateOfGame())
		winner, ok := g.StateOfGame().Winner()
		require.True(t, ok)
		require.Equal(t, Player0, winner)
	})

	t.Run("draw takes precedence over a win by default", func(t *testing.T) {
		for _, policy := range []struct {
			options []Option
			want    Result
		}{
			{nil, Draw},
			{[]Option{WithWinPolicy(WinPolicy{WinOverDraw: true})}, Player0Won},
		} {
			g := NewGameFromBoard(nearWin(), Player0, policy.options...)
			g.SubmitMove(Player0, Move{{3, 7}, {4, 7}})
			for i := 0; i < 3; i++ {
				g.Tracker().Record(g.Fingerprint())
			}
			require.Equal(t, policy.want, g.StateOfGame())
		}
	})

	t.Run("opponent pieces in the goal", func(t *testing.T) {
		stray := Coord{2, 5}
		require.Equal(t, NotFinished, NewGameFromBoard(blockedGoal(stray), Player1).StateOfGame())

		g := NewGameFromBoard(blockedGoal(stray), Player1,
			WithWinPolicy(WinPolicy{CountOpponentInGoal: true}))
		require.Equal(t, Player0Won, g.StateOfGame())
	})

	t.Run("home must be vacated", func(t *testing.T) {
		stray := Coord{0, 0}
		g := NewGameFromBoard(blockedGoal(stray), Player1,
			WithWinPolicy(WinPolicy{CountOpponentInGoal: true}))
		require.Equal(t, Player0Won, g.StateOfGame())

		g = NewGameFromBoard(blockedGoal(stray), Player1,
			WithWinPolicy(WinPolicy{CountOpponentInGoal: true, RequireHomeVacated: true}))
		require.Equal(t, NotFinished, g.StateOfGame())
	})
}
