package experiments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"amazons/engine"
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/player"
	"amazons/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

const (
	KindSearch = "search"
	KindRandom = "random"
)

// Experiment plays every match-up a number of times. Each match-up is played
// with both agents taking turns at opening.
type Experiment struct {
	Name      string
	Shape     game.Shape
	Size      uint
	Games     int    // Per match-up
	MaxTurns  int    // 0 uses engine.MaxTurns
	Parallel  int    // Games played at once, at least 1
	Seed      uint64 // 0 draws a random seed
	OutputDir string // Empty skips writing records
	Agents    []metrics.AgentConfig
	MatchUps  [][2]int // Pairs of AgentConfig.ID, first plays as player1
}

type Result struct {
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Summary metrics.Summary
	Dir     string // Where the records were written
}

type task struct {
	index  int
	agent1 metrics.AgentConfig
	agent2 metrics.AgentConfig
	start  game.Player
}

// NewPlayer builds the player an agent config describes.
func NewPlayer(config metrics.AgentConfig, name string, seed uint64) (player.Player, error) {
	switch config.Kind {
	case KindRandom:
		return player.NewRandomPlayer(name, seed), nil
	case KindSearch, "":
		return player.NewSearchPlayer(name, seed,
			searcher.WithDepthBias(config.DepthBias),
			searcher.WithRatioKept(config.RatioKept),
			searcher.WithMaxDepth(config.MaxDepth),
			searcher.WithFixedDepth(config.FixedDepth),
		), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
}

func (x Experiment) tasks() ([]task, error) {
	agents := map[int]metrics.AgentConfig{}
	for _, config := range x.Agents {
		agents[config.ID] = config
	}

	tasks := []task{}
	for _, matchUp := range x.MatchUps {
		agent1, ok1 := agents[matchUp[0]]
		agent2, ok2 := agents[matchUp[1]]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("match-up %v refers to an unknown agent", matchUp)
		}
		for i := 0; i < x.Games; i++ {
			tasks = append(tasks, task{
				index:  len(tasks),
				agent1: agent1,
				agent2: agent2,
				start:  game.Player(i % game.NumPlayers),
			})
		}
	}
	return tasks, nil
}

// Run plays all games, at most Parallel at a time, and writes the records when
// OutputDir is set. Records keep the order of the match-ups.
func (x Experiment) Run(ctx context.Context) (Result, error) {
	tasks, err := x.tasks()
	if err != nil {
		return Result{}, err
	}
	if x.Seed == 0 {
		x.Seed = frand.Uint64n(1<<63) + 1
	}
	if !x.Shape.IsValid() {
		x.Shape = game.DefaultShape
	}
	startTime := time.Now()

	log.Info().Msgf("starting %s experiment: %d games over %d match-ups, seed %d", x.Name, len(tasks), len(x.MatchUps), x.Seed)

	gameRecords := make([]metrics.GameRecord, len(tasks))
	moveRecords := make([][]metrics.MoveRecord, len(tasks))
	var mu sync.Mutex
	done := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(x.Parallel, 1))
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, moves, err := x.play(t)
			if err != nil {
				return err
			}
			gameRecords[t.index] = record
			moveRecords[t.index] = moves

			mu.Lock()
			done++
			log.Info().Msgf("completed game %d of %d (agent %d vs agent %d) with winner: %s",
				done, len(tasks), t.agent1.ID, t.agent2.ID, record.Winner)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("%s experiment: %w", x.Name, err)
	}

	result := Result{Games: gameRecords}
	for _, moves := range moveRecords {
		result.Moves = append(result.Moves, moves...)
	}
	result.Summary = metrics.Summarize(result.Games, result.Moves)
	log.Info().Msgf("completed %s experiment: %d games, mean length %.1f", x.Name, result.Summary.Games, result.Summary.GameLength.Mean)

	if x.OutputDir == "" {
		return result, nil
	}
	dir, err := x.write(result, startTime)
	if err != nil {
		return result, err
	}
	result.Dir = dir
	return result, nil
}

// play runs a single game. Seeds derive from the experiment seed and the game
// index, so a game can be replayed on its own.
func (x Experiment) play(t task) (metrics.GameRecord, []metrics.MoveRecord, error) {
	seed := x.Seed + uint64(t.index)*game.NumPlayers
	p1, err := NewPlayer(t.agent1, fmt.Sprintf("agent%d", t.agent1.ID), seed)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	p2, err := NewPlayer(t.agent2, fmt.Sprintf("agent%d", t.agent2.ID), seed+1)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	state := game.NewGameState(x.Shape, x.Size, t.start)
	e := engine.LocalEngine([game.NumPlayers]player.Player{p1, p2}, state, engine.WithMaxTurns(x.MaxTurns))
	_, gameMetric, moveMetrics := e.Run()

	moves := make([]metrics.MoveRecord, 0, len(moveMetrics))
	for _, mm := range moveMetrics {
		moves = append(moves, metrics.MoveRecord{Game: gameMetric.ID, MoveMetric: mm})
	}
	return metrics.GameRecord{Agent1: t.agent1.ID, Agent2: t.agent2.ID, GameMetric: gameMetric}, moves, nil
}

func (x Experiment) write(result Result, startTime time.Time) (string, error) {
	writer, err := metrics.NewWriter(x.OutputDir, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteMetadata(metrics.Metadata{
		Name:      x.Name,
		Shape:     x.Shape.String(),
		Size:      game.ValidateSize(x.Shape, x.Size),
		Seed:      x.Seed,
		Games:     x.Games,
		MaxTurns:  x.MaxTurns,
		Agents:    x.Agents,
		MatchUps:  x.MatchUps,
		StartTime: startTime,
		Summary:   &result.Summary,
	})
	if err != nil {
		return "", err
	}
	log.Info().Msg("stored experiment metadata")

	err = writer.WriteAgentConfigs(x.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
