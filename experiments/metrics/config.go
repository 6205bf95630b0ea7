package metrics

// AgentConfig describes one competitor of a match experiment.
type AgentConfig struct {
	ID      int
	Depth   int
	Workers int
	Table   bool // transposition table
	Random  bool // uniform random mover, ignores the other fields
}
