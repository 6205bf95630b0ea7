package game

import "chinesecheckers/meta"

// WinPolicy fixes the edge cases of win detection. The zero value is the
// simple rule: a player wins once all ten pieces stand in the goal.
type WinPolicy struct {
	// CountOpponentInGoal grants the win once every goal cell is occupied
	// and at least one of them by the player, so opponent pieces left in
	// the goal cannot block it.
	CountOpponentInGoal bool
	// RequireHomeVacated refuses the win while the player still has a piece
	// on its own home region.
	RequireHomeVacated bool
	// WinOverDraw reports a win even when the same position also reaches
	// the repetition threshold. By default the draw is reported.
	WinOverDraw bool
}

// Rules is the configuration of one game.
type Rules struct {
	RepetitionThreshold int
	LongJumps           bool
	Win                 WinPolicy
}

// Option adjusts the rules built by NewStandardRules.
type Option func(r *Rules)

// WithRepetitionThreshold sets how many times a position may be produced
// before the next occurrence draws the game.
func WithRepetitionThreshold(n int) Option {
	return func(r *Rules) {
		if n > 0 {
			r.RepetitionThreshold = n
		}
	}
}

// WithLongJumps allows symmetric jumps over a piece at any distance.
func WithLongJumps() Option {
	return func(r *Rules) {
		r.LongJumps = true
	}
}

// WithWinPolicy replaces the win policy.
func WithWinPolicy(policy WinPolicy) Option {
	return func(r *Rules) {
		r.Win = policy
	}
}

// NewStandardRules returns the default rules with options applied.
func NewStandardRules(options ...Option) Rules {
	r := Rules{RepetitionThreshold: meta.REPETITION_THRESHOLD}
	for _, option := range options {
		option(&r)
	}
	return r
}

// hasWon applies the win policy to p on fingerprint f.
func (r Rules) hasWon(f Fingerprint, p Player) bool {
	goal := Goal(p)
	if r.Win.RequireHomeVacated && f[p]&HomeMask(p) != 0 {
		return false
	}
	if f[p]&goal == goal {
		return true
	}
	if !r.Win.CountOpponentInGoal {
		return false
	}
	return f[p]&goal != 0 && (f[p]|f[p.Other()])&goal == goal
}
