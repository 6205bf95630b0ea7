package player

import (
	"testing"

	"chinesecheckers/game"
	"chinesecheckers/searcher"

	"github.com/stretchr/testify/require"
)

func TestSearchAgent(t *testing.T) {
	for _, workers := range []int{1, 4} {
		g := game.NewGame()
		before := g.Fingerprint()
		agent := NewSearchAgent(searcher.NewAlphaBeta(searcher.WithDepth(2), searcher.WithMetrics()), workers)

		move, metric := agent.FindMove(g)

		require.NotNil(t, move)
		require.True(t, g.Clone().SubmitMove(game.Player0, move), "Agent with %d workers should play a legal move", workers)
		require.Equal(t, before, g.Fingerprint())
		require.Positive(t, metric.Nodes)
	}
}

func TestRandomAgent(t *testing.T) {
	g := game.NewGame()
	a, b := NewRandomAgent(7), NewRandomAgent(7)

	for i := 0; i < 10; i++ {
		m, _ := a.FindMove(g)
		require.True(t, g.Clone().SubmitMove(game.Player0, m))
		other, _ := b.FindMove(g)
		require.Equal(t, m, other, "Agents with equal seeds should agree")
	}
}
