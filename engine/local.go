package engine

import (
	"fmt"
	"time"

	"chinesecheckers/experiments/metrics"
	"chinesecheckers/game"
	"chinesecheckers/meta"
	"chinesecheckers/player"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// LocalEngine referees two in-process agents on one game.
type LocalEngine struct {
	Game     *game.Game
	Agents   [2]player.Agent
	maxMoves int
}

func WithMaxMoves(n int) Option {
	return func(e *LocalEngine) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// NewLocalEngine seats agents[i] as game.Player(i) on g.
func NewLocalEngine(g *game.Game, agents [2]player.Agent, options ...Option) *LocalEngine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	e := &LocalEngine{
		Game:     g,
		Agents:   agents,
		maxMoves: meta.MAX_MOVES,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run alternates the agents until the game ends or the move cap is hit. An
// agent that cannot move or proposes a rejected move panics: both indicate a
// broken agent.
func (e *LocalEngine) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.Game.Turn()),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("%v is starting", e.Game.Turn())

	step := 0
	for e.Game.StateOfGame() == game.NotFinished && step < e.maxMoves {
		current := e.Game.Turn()
		move, searchMetric := e.Agents[current].FindMove(e.Game)
		if move == nil {
			panic(fmt.Sprintf("%v found no move at step %d", current, step+1))
		}
		if !e.Game.SubmitMove(current, move) {
			panic(fmt.Sprintf("%v proposed illegal move %v at step %d", current, move, step+1))
		}
		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(current),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: %v played %v", step, current, move)
	}

	result := e.Game.StateOfGame()
	gameMetric.Result = result.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step

	log.Info().Msgf("game ended after %d moves: %v", step, result)
	return result, gameMetric, moveMetrics
}
