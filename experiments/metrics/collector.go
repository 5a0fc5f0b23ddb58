package metrics

import (
	"amazons/game"
	"time"
)

type SearchMetric struct {
	Depth    int // Search depth picked for the move
	Duration time.Duration
	Nodes    int // Nodes entered, root included
	Leaves   int // Nodes scored by the heuristic
	Cutoffs  int // Alpha-beta cut-offs
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	Hash   game.StateHash // Position after the move
	SearchMetric
}

type GameMetric struct {
	ID             string
	Shape          game.Shape
	Size           uint
	StartingPlayer game.Player
	Winner         game.Player
	WinnerName     string
	Forfeit        string // Reason the loser forfeited, empty when the game ended on the board
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers statistics of a single search. A search runs on one
// goroutine, so collectors are not safe for concurrent use.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	depth     int
	nodes     int
	leaves    int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes = 0
	m.leaves = 0
	m.cutoffs = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Cutoffs:  m.cutoffs,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
