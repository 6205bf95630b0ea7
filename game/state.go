package game

import "fmt"

// Game is the rules engine: the board, the side to move and the repetition
// counts form one mutable unit owned by a single caller at a time.
type Game struct {
	board   *Board
	tracker *Tracker
	turn    Player
	rules   Rules
}

// NewGame starts a game from the canonical layout with Player0 to move.
func NewGame(options ...Option) *Game {
	return &Game{
		board:   NewBoard(),
		tracker: NewTracker(),
		turn:    Player0,
		rules:   NewStandardRules(options...),
	}
}

// NewGameFromBoard starts a game from an arbitrary layout. The tracker
// starts empty.
func NewGameFromBoard(b *Board, turn Player, options ...Option) *Game {
	return &Game{
		board:   b,
		tracker: NewTracker(),
		turn:    turn,
		rules:   NewStandardRules(options...),
	}
}

// Reset restores the start layout and clears the repetition counts.
func (g *Game) Reset() {
	g.board.Reset()
	g.tracker.Reset()
	g.turn = Player0
}

// Clone returns a deep copy sharing no mutable state with g.
func (g *Game) Clone() *Game {
	board := *g.board
	return &Game{
		board:   &board,
		tracker: g.tracker.Clone(),
		turn:    g.turn,
		rules:   g.rules,
	}
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Tracker() *Tracker {
	return g.tracker
}

func (g *Game) Rules() Rules {
	return g.rules
}

// Turn returns the side to move.
func (g *Game) Turn() Player {
	return g.turn
}

func (g *Game) Pieces(p Player) [NumPieces]Coord {
	return g.board.Pieces(p)
}

func (g *Game) Fingerprint() Fingerprint {
	return g.board.Fingerprint()
}

// AvailableMoves lists the legal moves of the side to move.
func (g *Game) AvailableMoves() []Move {
	return AvailableMoves(g.board, g.turn, g.rules.LongJumps)
}

// AvailableMovesFor lists the legal moves of p regardless of the turn.
func (g *Game) AvailableMovesFor(p Player) []Move {
	return AvailableMoves(g.board, p, g.rules.LongJumps)
}

// Classify returns the kind of m on the current board.
func (g *Game) Classify(m Move) MoveKind {
	return Classify(g.board, m, g.rules.LongJumps)
}

// SubmitMove validates and plays m for player. It returns false, with no
// state changed, when it is not player's turn, when m does not start on one
// of player's pieces, or when m is not a legal move.
func (g *Game) SubmitMove(player Player, m Move) bool {
	if player != g.turn || len(m) < 2 || !m.Start().InBounds() {
		return false
	}
	if owner, ok := g.board.CellAt(m.Start()).Owner(); !ok || owner != player {
		return false
	}
	if g.Classify(m) == Illegal || !g.reaches(m) {
		return false
	}
	g.Play(m)
	return true
}

// reaches reports whether the generator offers a move with m's endpoints.
func (g *Game) reaches(m Move) bool {
	for _, candidate := range g.AvailableMoves() {
		if candidate.Start() == m.Start() && candidate.End() == m.End() {
			return true
		}
	}
	return false
}

// Play applies m for the side to move without validation, records the
// resulting position and passes the turn.
func (g *Game) Play(m Move) {
	if mover := g.board.Apply(m); mover != g.turn {
		g.board.Undo(m)
		panic(fmt.Sprintf("play %v: piece belongs to %v but %v is to move", m, mover, g.turn))
	}
	g.tracker.Record(g.board.Fingerprint())
	g.turn = g.turn.Other()
}

// Unplay is the exact inverse of the most recent Play of m.
func (g *Game) Unplay(m Move) {
	g.tracker.Forget(g.board.Fingerprint())
	g.turn = g.turn.Other()
	if mover := g.board.Undo(m); mover != g.turn {
		panic(fmt.Sprintf("unplay %v: piece belongs to %v but %v moved last", m, mover, g.turn))
	}
}

// Repetitions returns how often the current position has been produced.
func (g *Game) Repetitions() int {
	return g.tracker.Count(g.board.Fingerprint())
}

// StateOfGame classifies the current position. A position produced more
// than the repetition threshold allows is a draw; the side that just moved
// is checked for a win before the side to move.
func (g *Game) StateOfGame() Result {
	f := g.board.Fingerprint()
	draw := g.tracker.Count(f) > g.rules.RepetitionThreshold
	if draw && !g.rules.Win.WinOverDraw {
		return Draw
	}
	for _, p := range []Player{g.turn.Other(), g.turn} {
		if g.rules.hasWon(f, p) {
			return WonBy(p)
		}
	}
	if draw {
		return Draw
	}
	return NotFinished
}
