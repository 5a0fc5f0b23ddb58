package engine

import (
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/player"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

// WithMaxTurns stops the game after the given number of moves.
func WithMaxTurns(turns int) Option {
	return func(e *localEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithID names the game instead of drawing a random id.
func WithID(id string) Option {
	return func(e *localEngine) {
		if id != "" {
			e.id = id
		}
	}
}

// WithExport writes a Graphviz frame of the board to dir before the first
// move and after every move.
func WithExport(dir string) Option {
	return func(e *localEngine) {
		e.exportDir = dir
	}
}

// localEngine referees a game between two in-process players.
type localEngine struct {
	id        string
	players   [game.NumPlayers]player.Player
	state     *game.GameState
	maxTurns  int
	exportDir string
}

// LocalEngine returns an engine refereeing state between players, players[i]
// playing as game.Player(i).
func LocalEngine(players [game.NumPlayers]player.Player, state *game.GameState, options ...Option) Engine {
	for _, p := range players {
		if p == nil {
			panic("need two players")
		}
	}
	e := &localEngine{
		id:       uuid.NewString(),
		players:  players,
		state:    state,
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run feeds each player the other's last move, validates the reply and applies
// it. A player sending an invalid move forfeits.
func (e *localEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		ID:             e.id,
		Shape:          e.state.Shape,
		Size:           e.state.Size,
		StartingPlayer: e.state.CurrentPlayer,
		StartTime:      time.Now(),
	}

	positions := [game.NumPlayers][]uint{}
	for p := range positions {
		positions[p] = append([]uint{}, e.state.Queens.Positions(game.Player(p))...)
	}
	for i, p := range e.players {
		p.Initialize(game.Player(i), e.state.Board, e.state.Queens.Count(), positions)
	}

	log.Info().Msgf("game %s: %s (%s) vs %s (%s) on a %s board of size %d, %s is starting",
		e.id, e.players[game.Player1].Name(), game.Player1, e.players[game.Player2].Name(), game.Player2,
		e.state.Shape, e.state.Size, e.state.CurrentPlayer)

	e.export()
	moveMetrics := []metrics.MoveMetric{}
	previous := game.NoMove
	for !e.state.IsOver() && e.state.Turn < e.maxTurns {
		current := e.state.CurrentPlayer
		move, searchMetric := e.players[current].Play(previous)

		err := e.state.Play(move)
		if err != nil {
			log.Warn().Err(err).Msgf("game %s: %s sent an invalid move", e.id, e.players[current].Name())
			break
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.state.Turn,
			Player:       current,
			Move:         move,
			Hash:         e.state.Hash(),
			SearchMetric: searchMetric,
		})
		previous = move
		e.export()
	}

	for _, p := range e.players {
		p.Finalize()
	}

	winner := e.state.Winner()
	gameMetric.Winner = winner
	if winner != game.Undefined {
		gameMetric.WinnerName = e.players[winner].Name()
	}
	if e.state.Forfeit != nil {
		gameMetric.Forfeit = e.state.Forfeit.Error()
	}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.state.Turn

	if winner == game.Undefined {
		log.Info().Msgf("game %s: stopped after %d moves without a winner", e.id, e.state.Turn)
	} else {
		log.Info().Msgf("game %s: %s (%s) wins after %d moves", e.id, gameMetric.WinnerName, winner, e.state.Turn)
	}
	return winner, gameMetric, moveMetrics
}

func (e *localEngine) export() {
	if e.exportDir == "" {
		return
	}
	err := e.writeFrame()
	if err != nil {
		log.Warn().Err(err).Msgf("game %s: failed to export frame %d", e.id, e.state.Turn)
	}
}

func (e *localEngine) writeFrame() error {
	dir := filepath.Join(e.exportDir, e.id)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%04d.dot", e.state.Turn)))
	if err != nil {
		return err
	}
	defer f.Close()
	return e.state.WriteDot(f)
}
