package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"amazons/config"
	"amazons/engine"
	"amazons/experiments"
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

func main() {
	cfg := &config.Config{}
	err := cfg.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Debug().Msgf("loaded config: %+v", *cfg)

	if cfg.Seed == 0 {
		cfg.Seed = frand.Uint64n(1<<63) + 1
	}

	switch cfg.Mode {
	case "experiment":
		runExperiment(cfg)
	default:
		runGame(cfg)
	}
}

func agentConfig(cfg *config.Config, id int, kind string) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:        id,
		Kind:      kind,
		DepthBias: cfg.DepthBias,
		RatioKept: cfg.RatioKept,
		MaxDepth:  cfg.MaxDepth,
	}
}

// runGame plays a single game between the configured players.
func runGame(cfg *config.Config) {
	players := [game.NumPlayers]player.Player{}
	for i, kind := range cfg.Players {
		p, err := experiments.NewPlayer(agentConfig(cfg, i+1, kind), fmt.Sprintf("%s%d", kind, i+1), cfg.Seed+uint64(i))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create player")
		}
		players[i] = p
	}

	state := game.NewGameState(cfg.Shape, cfg.Size, cfg.Starting)
	options := []engine.Option{engine.WithMaxTurns(cfg.MaxTurns)}
	if cfg.ExportDir != "" {
		options = append(options, engine.WithExport(cfg.ExportDir))
	}
	winner, gameMetric, moveMetrics := engine.LocalEngine(players, state, options...).Run()

	log.Debug().Msgf("final position:\n%s", state)
	nodes := 0
	for _, mm := range moveMetrics {
		nodes += mm.Nodes
	}
	if winner == game.Undefined {
		fmt.Printf("No winner after %d moves\n", gameMetric.TotalMoves)
		return
	}
	fmt.Printf("Winner: %s (%s) after %d moves in %s, %d nodes searched\n",
		gameMetric.WinnerName, winner, gameMetric.TotalMoves, gameMetric.Duration, nodes)
	if gameMetric.Forfeit != "" {
		fmt.Printf("The loser forfeited: %s\n", gameMetric.Forfeit)
	}
}

// runExperiment runs the configured preset until it completes or is interrupted.
func runExperiment(cfg *config.Config) {
	x, err := experiments.Preset(cfg.Experiment, experiments.Experiment{
		Shape:     cfg.Shape,
		Size:      cfg.Size,
		Games:     cfg.Games,
		MaxTurns:  cfg.MaxTurns,
		Parallel:  cfg.Parallel,
		Seed:      cfg.Seed,
		OutputDir: cfg.OutputDir,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up experiment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := x.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for id, s := range result.Summary.Agents {
		fmt.Printf("agent %d: %d wins in %d games\n", id, s.Wins, s.Games)
	}
	fmt.Printf("records stored in %s\n", result.Dir)
}
