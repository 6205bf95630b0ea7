package searcher

import (
	"context"

	"chinesecheckers/game"

	"golang.org/x/sync/errgroup"
)

// SearchParallel splits the root of a depth-ply search across up to workers
// goroutines. Every root move is searched on its own clone of pos with the
// full window, so the chosen move and score match BestMove with an unbounded
// window. A legal opening-book reply is returned without searching. pos
// itself is only read.
func SearchParallel[P Forkable[P]](ctx context.Context, a *AlphaBeta, pos P, depth, workers int) (game.Move, float64, error) {
	a.metrics.Start(workers, depth)
	if m, ok := a.book.probe(pos); ok {
		a.metrics.AddBookHit()
		return m, a.evaluator.HeuristicValue(pos, pos.Turn()), nil
	}
	r := a.newRun(pos)
	moves := r.rootMoves(depth)
	if len(moves) == 0 {
		move, score := r.root(depth, MinusInfinity, PlusInfinity)
		return move, score, nil
	}

	scores := make([]float64, len(moves))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, m := range moves {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fork := pos.Clone()
			fork.Play(m)
			scores[i] = a.Value(fork, r.maximizing, depth-1, MinusInfinity, PlusInfinity)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	best := 0
	for i, score := range scores {
		if score > scores[best] {
			best = i
		}
	}
	return moves[best], scores[best], nil
}
