package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goal         string
	Outcome      string
	Duration     time.Duration
	Iterations   int
	NodesCreated int
	NodesPruned  int
	PeakNodes    int
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, 0 for a draw or an unfinished game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goal string)
	AddIteration()
	AddNode(live int)
	AddPruned(n int)
	Complete() SearchMetric
}

type collector struct {
	goal         string
	startTime    time.Time
	iterations   atomic.Int64
	nodesCreated atomic.Int64
	nodesPruned  atomic.Int64
	peakNodes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goal string) {
	m.startTime = time.Now()
	m.goal = goal
}

func (m *collector) AddIteration() {
	m.iterations.Add(1)
}

// AddNode records a node creation along with the number of nodes alive afterwards.
func (m *collector) AddNode(live int) {
	m.nodesCreated.Add(1)
	for {
		peak := m.peakNodes.Load()
		if int64(live) <= peak || m.peakNodes.CompareAndSwap(peak, int64(live)) {
			return
		}
	}
}

func (m *collector) AddPruned(n int) {
	m.nodesPruned.Add(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goal:         m.goal,
		Duration:     time.Since(m.startTime),
		Iterations:   int(m.iterations.Load()),
		NodesCreated: int(m.nodesCreated.Load()),
		NodesPruned:  int(m.nodesPruned.Load()),
		PeakNodes:    int(m.peakNodes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goal string)      {}
func (m *dummyCollector) AddIteration()          {}
func (m *dummyCollector) AddNode(live int)       {}
func (m *dummyCollector) AddPruned(n int)        {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
