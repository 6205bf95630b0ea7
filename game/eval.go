package game

import (
	"encoding/json"
	"fmt"
	"os"
)

// Weights is a per-cell table seen from Player0's side of the board. Player1
// reads it point-mirrored, so one table serves both players.
type Weights [Size][Size]float64

// At returns the weight of c from p's point of view.
func (w *Weights) At(p Player, c Coord) float64 {
	if p == Player1 {
		return w[Size-1-c.Row][Size-1-c.Col]
	}
	return w[c.Row][c.Col]
}

// Scaled returns a copy of w with every entry multiplied by f.
func (w Weights) Scaled(f float64) Weights {
	for r := range w {
		for c := range w[r] {
			w[r][c] *= f
		}
	}
	return w
}

// DefaultWeights grows with the squared distance from the owner's corner.
func DefaultWeights() Weights {
	return Weights{
		{0, 1, 4, 9, 16, 25, 36, 49},
		{1, 2, 5, 10, 17, 26, 37, 50},
		{4, 5, 8, 13, 20, 29, 40, 53},
		{9, 10, 13, 18, 25, 34, 45, 58},
		{16, 17, 20, 25, 32, 41, 52, 65},
		{25, 26, 29, 34, 41, 50, 62, 74},
		{36, 37, 40, 45, 52, 62, 72, 85},
		{49, 50, 53, 58, 65, 74, 85, 98},
	}
}

// Evaluator scores piece placements with two tables: Progress for the
// maximizing player and Regression for its opponent.
type Evaluator struct {
	Progress   Weights `json:"progress"`
	Regression Weights `json:"regression"`
}

func NewEvaluator(progress, regression Weights) *Evaluator {
	return &Evaluator{Progress: progress, Regression: regression}
}

// DefaultEvaluator uses the quadratic table for both players.
func DefaultEvaluator() *Evaluator {
	return NewEvaluator(DefaultWeights(), DefaultWeights())
}

// Evaluate sums the weights of from's pieces, using Progress when from is
// the maximizing player and Regression otherwise.
func (e *Evaluator) Evaluate(pieces PieceLister, from, maximizing Player) float64 {
	table := &e.Regression
	if from == maximizing {
		table = &e.Progress
	}
	total := 0.0
	for _, c := range pieces.Pieces(from) {
		total += table.At(from, c)
	}
	return total
}

// HeuristicValue favours the maximizing player's advance six times over the
// opponent's.
func (e *Evaluator) HeuristicValue(pieces PieceLister, maximizing Player) float64 {
	return 6*e.Evaluate(pieces, maximizing, maximizing) - e.Evaluate(pieces, maximizing.Other(), maximizing)
}

// Gain is the progress made by moving a piece of p from start to end.
func (e *Evaluator) Gain(p Player, m Move) float64 {
	return e.Progress.At(p, m.End()) - e.Progress.At(p, m.Start())
}

func LoadEvaluator(path string) (*Evaluator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weights: %w", err)
	}
	e := &Evaluator{}
	if err := json.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("failed to decode weights %s: %w", path, err)
	}
	return e, nil
}

func (e *Evaluator) Save(path string) error {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode weights: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write weights: %w", err)
	}
	return nil
}
