package game

import "fmt"

// Tracker counts how often each fingerprint has been produced by a move in
// the current game. Record and Forget must be paired with Board.Apply and
// Board.Undo.
type Tracker struct {
	seen map[Fingerprint]int
}

func NewTracker() *Tracker {
	return &Tracker{seen: make(map[Fingerprint]int)}
}

// Record counts one more occurrence of f and returns the new count.
func (t *Tracker) Record(f Fingerprint) int {
	t.seen[f]++
	return t.seen[f]
}

// Forget reverts one Record of f.
func (t *Tracker) Forget(f Fingerprint) {
	n, ok := t.seen[f]
	if !ok || n <= 0 {
		panic(fmt.Sprintf("repetition tracker: forget of unrecorded fingerprint %x/%x", f[0], f[1]))
	}
	if n == 1 {
		delete(t.seen, f)
		return
	}
	t.seen[f] = n - 1
}

// Count returns the number of recorded occurrences of f.
func (t *Tracker) Count(f Fingerprint) int {
	return t.seen[f]
}

// Len returns the number of distinct recorded fingerprints.
func (t *Tracker) Len() int {
	return len(t.seen)
}

// Reset clears all counts for a new game.
func (t *Tracker) Reset() {
	clear(t.seen)
}

// Clone returns an independent copy.
func (t *Tracker) Clone() *Tracker {
	c := &Tracker{seen: make(map[Fingerprint]int, len(t.seen))}
	for k, v := range t.seen {
		c.seen[k] = v
	}
	return c
}
