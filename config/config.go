package config

import (
	"fmt"
	"strings"

	"amazons/game"
	"amazons/meta"
	"amazons/searcher"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
)

// Config is loaded from flags, AMAZONS_ prefixed environment variables and an
// optional config file of "name value" lines, in decreasing precedence.
type Config struct {
	Mode       string // "game" or "experiment"
	Experiment string // Preset name in experiment mode
	Shape      game.Shape
	Size       uint
	Starting   game.Player
	Seed       uint64
	Games      int
	Parallel   int
	MaxTurns   int
	Players    [game.NumPlayers]string // "search" or "random"
	DepthBias  float64
	RatioKept  int
	MaxDepth   int
	OutputDir  string
	ExportDir  string // Empty disables Graphviz frames
	LogLevel   zerolog.Level
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("amazons", "AMAZONS", flag.ContinueOnError)

	var shape, player1, player2, logLevel string
	var size uint
	var starting int
	fs.String(flag.DefaultConfigFlagname, "", "path to a config file")
	fs.StringVar(&c.Mode, "mode", "game", "game plays a single game, experiment runs a preset experiment")
	fs.StringVar(&c.Experiment, "experiment", "baseline", "experiment preset: baseline, depth-bias or thinning")
	fs.StringVar(&shape, "shape", meta.SHAPE, "board shape: c (square), d (donut), t (clover) or 8 (eight)")
	fs.UintVar(&size, "size", meta.SIZE, "board side length")
	fs.IntVar(&starting, "starting", 1, "the player who opens the game, 1 or 2")
	fs.Uint64Var(&c.Seed, "seed", 0, "random seed, 0 draws one")
	fs.IntVar(&c.Games, "games", meta.GAMES, "games per match-up in experiment mode")
	fs.IntVar(&c.Parallel, "parallel", meta.PARALLEL, "games played at once in experiment mode")
	fs.IntVar(&c.MaxTurns, "max-turns", meta.MAX_TURNS, "maximum number of moves in a game, 0 uses the engine limit")
	fs.StringVar(&player1, "player1", "search", "first player: search or random")
	fs.StringVar(&player2, "player2", "random", "second player: search or random")
	fs.Float64Var(&c.DepthBias, "depth-bias", searcher.DefaultDepthBias, "constant part of the search depth, at least 1")
	fs.IntVar(&c.RatioKept, "ratio-kept", searcher.DefaultRatioKept, "queen candidate thinning ratio, 1 keeps all")
	fs.IntVar(&c.MaxDepth, "max-depth", 0, "search depth cap, 0 leaves it uncapped")
	fs.StringVar(&c.OutputDir, "output-dir", meta.OUTPUT_DIR, "directory for experiment records")
	fs.StringVar(&c.ExportDir, "export-dir", "", "write a Graphviz frame per move of a single game to this directory")
	fs.StringVar(&logLevel, "log-level", meta.LOG_LEVEL, "log level: debug, info, warn, error or disabled")

	err := fs.Parse(args)
	if err != nil {
		return err
	}

	c.Shape, err = game.ParseShape(shape)
	if err != nil {
		return err
	}
	c.Size = game.ValidateSize(c.Shape, size)
	if starting != 1 && starting != 2 {
		return fmt.Errorf("starting player must be 1 or 2, got %d", starting)
	}
	c.Starting = game.Player(starting - 1)
	for i, kind := range []string{player1, player2} {
		kind = strings.ToLower(kind)
		if kind != "search" && kind != "random" {
			return fmt.Errorf("unknown player kind %q", kind)
		}
		c.Players[i] = kind
	}
	if c.Mode != "game" && c.Mode != "experiment" {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.DepthBias < 1 {
		return fmt.Errorf("depth bias must be at least 1, got %g", c.DepthBias)
	}
	if c.RatioKept < 1 {
		return fmt.Errorf("ratio kept must be at least 1, got %d", c.RatioKept)
	}
	c.LogLevel, err = zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}
