package engine

import (
	"chinesecheckers/experiments/metrics"
	"chinesecheckers/game"
)

type Engine interface {
	// Run plays a game till it is decided or a max number of moves is reached
	Run() (result game.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
