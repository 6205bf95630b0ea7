package player

import (
	"context"

	"chinesecheckers/experiments/metrics"
	"chinesecheckers/game"
	"chinesecheckers/searcher"

	"golang.org/x/exp/rand"
)

// Agent chooses a move for the side to move. It may search g but must leave
// it as it found it.
type Agent interface {
	FindMove(g *game.Game) (game.Move, metrics.SearchMetric)
}

// SearchAgent plays the alpha-beta searcher's choice.
type SearchAgent struct {
	searcher *searcher.AlphaBeta
	workers  int
}

// NewSearchAgent splits the root across workers goroutines when workers is
// above one.
func NewSearchAgent(s *searcher.AlphaBeta, workers int) *SearchAgent {
	return &SearchAgent{searcher: s, workers: workers}
}

func (a *SearchAgent) FindMove(g *game.Game) (game.Move, metrics.SearchMetric) {
	if a.workers <= 1 {
		move, _, metric := a.searcher.Search(g)
		return move, metric
	}
	move, _, err := searcher.SearchParallel(context.Background(), a.searcher, g, a.searcher.Depth(), a.workers)
	if err != nil {
		panic(err)
	}
	return move, a.searcher.Metrics()
}

// RandomAgent plays a uniformly random legal move.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(g *game.Game) (game.Move, metrics.SearchMetric) {
	moves := g.AvailableMoves()
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
