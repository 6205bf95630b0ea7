package searcher

import "chinesecheckers/game"

type Bound int8

const (
	Exact Bound = iota
	Lower
	Upper
)

type ttKey struct {
	fingerprint game.Fingerprint
	turn        game.Player
}

type ttEntry struct {
	value float64
	depth int
	bound Bound
}

// TranspositionTable caches subtree values of one search. Entries are only
// reused at exactly the depth they were computed at, so a hit returns what
// the subtree search would have returned.
type TranspositionTable struct {
	entries map[ttKey]ttEntry
}

func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[ttKey]ttEntry)}
}

func (t *TranspositionTable) probe(f game.Fingerprint, turn game.Player, depth int) (ttEntry, bool) {
	e, ok := t.entries[ttKey{f, turn}]
	if !ok || e.depth != depth {
		return ttEntry{}, false
	}
	return e, true
}

// store classifies a fail-soft value against the window it was searched
// with.
func (t *TranspositionTable) store(f game.Fingerprint, turn game.Player, depth int, value, alpha, beta float64) {
	bound := Exact
	if value <= alpha {
		bound = Upper
	} else if value >= beta {
		bound = Lower
	}
	t.entries[ttKey{f, turn}] = ttEntry{value: value, depth: depth, bound: bound}
}

func (t *TranspositionTable) Len() int {
	return len(t.entries)
}
