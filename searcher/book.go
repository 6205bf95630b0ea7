package searcher

import (
	"chinesecheckers/game"

	"github.com/rs/zerolog/log"
)

// Book maps fingerprint keys to precomputed replies.
type Book map[uint64]game.Move

// probe returns the booked reply for pos if it is still a legal move there.
func (b Book) probe(pos Position) (game.Move, bool) {
	booked, ok := b[pos.Fingerprint().Key()]
	if !ok {
		return nil, false
	}
	for _, m := range pos.AvailableMoves() {
		if m.Start() == booked.Start() && m.End() == booked.End() {
			return m, true
		}
	}
	log.Warn().Msgf("opening book move %v is not legal for %v, searching instead", booked, pos.Turn())
	return nil, false
}
