// meta/meta.go
package meta

// WORKERS defines the number of goroutines used by parallel search and the tuner.
const WORKERS = 8

// DEFAULT_DEPTH defines the search depth used when none is configured.
const DEFAULT_DEPTH = 3

// MAX_MOVES defines the number of plies after which a match is abandoned.
const MAX_MOVES = 100

// REPETITION_THRESHOLD defines how many times a position may recur before the game is drawn.
const REPETITION_THRESHOLD = 3

// WIN_SCORE and DRAW_SCORE are the terminal values reported by the search.
const WIN_SCORE = 100000

const DRAW_SCORE = 50000
