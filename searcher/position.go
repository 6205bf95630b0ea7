package searcher

import "chinesecheckers/game"

// Position is what the search needs from a game: reversible moves and the
// termination rules. Play and Unplay must be exact inverses, including the
// repetition counts that StateOfGame consults.
type Position interface {
	game.PieceLister
	Turn() game.Player
	StateOfGame() game.Result
	AvailableMoves() []game.Move
	Play(m game.Move)
	Unplay(m game.Move)
	Fingerprint() game.Fingerprint
}

// Forkable positions can be copied so that several goroutines search
// independent replicas.
type Forkable[P any] interface {
	Position
	Clone() P
}
