package searcher

import (
	"fmt"

	"chinesecheckers/experiments/metrics"
	"chinesecheckers/game"
	"chinesecheckers/meta"

	"github.com/rs/zerolog/log"
)

type Option func(a *AlphaBeta)

// AlphaBeta is a depth-limited fail-soft minimax searcher with alpha-beta
// pruning. The maximizing player is the side to move at the root.
type AlphaBeta struct {
	depth     int
	alpha     float64
	beta      float64
	evaluator *game.Evaluator
	useTable  bool
	book      Book
	metrics   metrics.Collector
}

func WithDepth(depth int) Option {
	return func(a *AlphaBeta) {
		if depth > 0 {
			a.depth = depth
		}
	}
}

func WithEvaluator(e *game.Evaluator) Option {
	return func(a *AlphaBeta) {
		if e != nil {
			a.evaluator = e
		}
	}
}

// WithWindow narrows the root window. Scores outside it are only bounds.
func WithWindow(alpha, beta float64) Option {
	return func(a *AlphaBeta) {
		if alpha < beta {
			a.alpha, a.beta = alpha, beta
		}
	}
}

// WithTranspositionTable caches subtree values for the duration of each
// search.
func WithTranspositionTable() Option {
	return func(a *AlphaBeta) {
		a.useTable = true
	}
}

func WithOpeningBook(book Book) Option {
	return func(a *AlphaBeta) {
		a.book = book
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		depth:     meta.DEFAULT_DEPTH,
		alpha:     MinusInfinity,
		beta:      PlusInfinity,
		evaluator: game.DefaultEvaluator(),
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *AlphaBeta) Depth() int {
	return a.depth
}

func (a *AlphaBeta) Evaluator() *game.Evaluator {
	return a.evaluator
}

// Metrics completes the statistics of the most recent search.
func (a *AlphaBeta) Metrics() metrics.SearchMetric {
	return a.metrics.Complete()
}

// Search picks a move for the side to move with the configured depth and
// window, answering from the opening book when it has a legal reply.
func (a *AlphaBeta) Search(pos Position) (game.Move, float64, metrics.SearchMetric) {
	a.metrics.Start(1, a.depth)
	if m, ok := a.book.probe(pos); ok {
		a.metrics.AddBookHit()
		return m, a.evaluator.HeuristicValue(pos, pos.Turn()), a.Metrics()
	}
	move, score := a.BestMove(pos, a.depth, a.alpha, a.beta)
	metric := a.Metrics()
	log.Debug().
		Int("depth", a.depth).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Dur("elapsed", metric.Duration).
		Msgf("searched %v for %v", move, pos.Turn())
	return move, score, metric
}

// BestMove searches pos to depth plies inside (alpha, beta). It returns the
// first root move, in progress order, that attains the best score, and nil
// when the game is over, depth is zero or there is no legal move. pos is
// left exactly as it was found.
func (a *AlphaBeta) BestMove(pos Position, depth int, alpha, beta float64) (game.Move, float64) {
	before, turn := pos.Fingerprint(), pos.Turn()
	r := a.newRun(pos)
	move, score := r.root(depth, alpha, beta)
	if pos.Fingerprint() != before || pos.Turn() != turn {
		panic(fmt.Sprintf("search of depth %d did not restore the position", depth))
	}
	return move, score
}

// Value is the minimax value of pos searched depth plies deep from
// maximizing's point of view, whoever is to move.
func (a *AlphaBeta) Value(pos Position, maximizing game.Player, depth int, alpha, beta float64) float64 {
	r := a.newRun(pos)
	r.maximizing = maximizing
	return r.value(depth, alpha, beta)
}

// run holds the state of one search over one position replica.
type run struct {
	pos        Position
	maximizing game.Player
	evaluator  *game.Evaluator
	table      *TranspositionTable
	metrics    metrics.Collector
}

func (a *AlphaBeta) newRun(pos Position) *run {
	r := &run{
		pos:        pos,
		maximizing: pos.Turn(),
		evaluator:  a.evaluator,
		metrics:    a.metrics,
	}
	if a.useTable {
		r.table = NewTranspositionTable()
	}
	return r
}

// rootMoves returns the legal moves in search order, or nil when the root is
// a leaf.
func (r *run) rootMoves(depth int) []game.Move {
	if depth <= 0 || r.pos.StateOfGame() != game.NotFinished {
		return nil
	}
	moves := r.pos.AvailableMoves()
	orderMoves(moves, r.maximizing, r.evaluator)
	return moves
}

func (r *run) root(depth int, alpha, beta float64) (game.Move, float64) {
	moves := r.rootMoves(depth)
	if len(moves) == 0 {
		return nil, r.value(0, alpha, beta)
	}
	r.metrics.AddNode()

	var best game.Move
	bestScore := MinusInfinity
	for _, m := range moves {
		r.pos.Play(m)
		v := r.value(depth-1, alpha, beta)
		r.pos.Unplay(m)
		if v > bestScore {
			best, bestScore = m, v
		}
		alpha = max(alpha, bestScore)
		if bestScore >= beta {
			r.metrics.AddCutoff()
			break
		}
	}
	return best, bestScore
}

// value is the fail-soft minimax value of the current position.
func (r *run) value(depth int, alpha, beta float64) float64 {
	r.metrics.AddNode()
	if result := r.pos.StateOfGame(); result != game.NotFinished {
		return terminalValue(result, r.pos.Turn(), r.maximizing)
	}
	if depth <= 0 {
		return r.evaluator.HeuristicValue(r.pos, r.maximizing)
	}

	turn := r.pos.Turn()
	var fingerprint game.Fingerprint
	if r.table != nil {
		fingerprint = r.pos.Fingerprint()
		if e, ok := r.table.probe(fingerprint, turn, depth); ok {
			r.metrics.AddTTHit()
			switch e.bound {
			case Exact:
				return e.value
			case Lower:
				alpha = max(alpha, e.value)
			case Upper:
				beta = min(beta, e.value)
			}
			if alpha >= beta {
				return e.value
			}
		}
	}

	moves := r.pos.AvailableMoves()
	if len(moves) == 0 {
		return r.evaluator.HeuristicValue(r.pos, r.maximizing)
	}

	alphaIn, betaIn := alpha, beta
	maximizing := turn == r.maximizing
	best := PlusInfinity
	if maximizing {
		best = MinusInfinity
	}
	for _, m := range moves {
		r.pos.Play(m)
		v := r.value(depth-1, alpha, beta)
		r.pos.Unplay(m)
		if maximizing {
			best = max(best, v)
			alpha = max(alpha, best)
			if best >= beta {
				r.metrics.AddCutoff()
				break
			}
		} else {
			best = min(best, v)
			beta = min(beta, best)
			if best <= alpha {
				r.metrics.AddCutoff()
				break
			}
		}
	}

	if r.table != nil {
		r.table.store(fingerprint, turn, depth, best, alphaIn, betaIn)
	}
	return best
}
