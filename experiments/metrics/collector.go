package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Workers  int
	Depth    int
	Duration time.Duration
	Nodes    int
	Cutoffs  int
	TTHits   int
	BookHits int
}

type MoveMetric struct {
	Step   int
	Player int // game.Player
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int    // game.Player
	Result         string // game.Result
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates the statistics of one search. Counters may be
// incremented from several goroutines.
type Collector interface {
	Start(workers, depth int)
	AddNode()
	AddCutoff()
	AddTTHit()
	AddBookHit()
	Complete() SearchMetric
}

type collector struct {
	workers   int
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	ttHits    atomic.Int64
	bookHits  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(workers, depth int) {
	m.startTime = time.Now()
	m.workers = workers
	m.depth = depth
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.ttHits.Store(0)
	m.bookHits.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddTTHit() {
	m.ttHits.Add(1)
}

func (m *collector) AddBookHit() {
	m.bookHits.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Workers:  m.workers,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
		TTHits:   int(m.ttHits.Load()),
		BookHits: int(m.bookHits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(workers, depth int) {}
func (m *dummyCollector) AddNode()                 {}
func (m *dummyCollector) AddCutoff()               {}
func (m *dummyCollector) AddTTHit()                {}
func (m *dummyCollector) AddBookHit()              {}
func (m *dummyCollector) Complete() SearchMetric   { return SearchMetric{} }
