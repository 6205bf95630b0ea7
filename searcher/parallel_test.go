package searcher

import (
	"context"
	"testing"

	"chinesecheckers/game"

	"github.com/stretchr/testify/require"
)

func TestSearchParallel(t *testing.T) {
	t.Run("matches the sequential search", func(t *testing.T) {
		for _, g := range []*game.Game{game.NewGame(), midgame()} {
			a := NewAlphaBeta()
			wantMove, wantScore := a.BestMove(g, 3, MinusInfinity, PlusInfinity)
			before := g.Fingerprint()

			move, score, err := SearchParallel(context.Background(), a, g, 3, 4)

			require.NoError(t, err)
			require.Equal(t, wantScore, score)
			require.Equal(t, wantMove, move)
			require.Equal(t, before, g.Fingerprint(), "Parallel search should not touch the position")
		}
	})

	t.Run("counts nodes from every worker", func(t *testing.T) {
		a := NewAlphaBeta(WithMetrics())
		_, _, err := SearchParallel(context.Background(), a, game.NewGame(), 2, 8)

		require.NoError(t, err)
		metric := a.Metrics()
		require.Equal(t, 8, metric.Workers)
		require.Positive(t, metric.Nodes)
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := SearchParallel(ctx, NewAlphaBeta(), game.NewGame(), 2, 2)

		require.ErrorIs(t, err, context.Canceled)
	})
}
