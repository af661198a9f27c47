package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes the work done by one move search.
type SearchMetric struct {
	Depth    int
	Pruning  bool
	Duration time.Duration
	Nodes    int64 // States visited, root included
	Leaves   int64 // States scored by utility or evaluation
	Prunes   int64 // Alpha or beta cutoffs
}

type MoveMetric struct {
	Step      int
	Player    int // Player ID
	Pit       int // Board index of the sown pit
	ExtraTurn bool
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         string // Result notation, e.g. "1-0"
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Store1         int
	Store2         int
}

type Collector interface {
	Start(depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	pruning   bool
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	prunes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.pruning = pruning
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Pruning:  m.pruning,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes.Load(),
		Leaves:   m.leaves.Load(),
		Prunes:   m.prunes.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                      {}
func (m *dummyCollector) AddLeaf()                      {}
func (m *dummyCollector) AddPrune()                     {}
func (m *dummyCollector) Complete() SearchMetric        { return SearchMetric{} }
