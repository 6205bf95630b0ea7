package searcher

import (
	"cmp"
	"math"
	"slices"

	"chinesecheckers/game"
	"chinesecheckers/meta"
)

const WIN = float64(meta.WIN_SCORE)
const LOSS = -WIN

// DRAW is reported when the maximizing player made the drawing move; the
// opponent drawing scores -DRAW.
const DRAW = float64(meta.DRAW_SCORE)

var (
	PlusInfinity  = math.Inf(1)
	MinusInfinity = math.Inf(-1)
)

// orderMoves sorts moves by the progress they make for p, best first. The
// sort is stable so equal gains keep generation order.
func orderMoves(moves []game.Move, p game.Player, e *game.Evaluator) {
	slices.SortStableFunc(moves, func(a, b game.Move) int {
		return cmp.Compare(e.Gain(p, b), e.Gain(p, a))
	})
}

// terminalValue scores a finished game from maximizing's point of view.
func terminalValue(result game.Result, turn, maximizing game.Player) float64 {
	if result == game.Draw {
		if maximizing == turn.Other() {
			return DRAW
		}
		return -DRAW
	}
	if winner, _ := result.Winner(); winner == maximizing {
		return WIN
	}
	return LOSS
}
