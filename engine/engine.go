package engine

import (
	"amazons/experiments/metrics"
	"amazons/game"
)

// MaxTurns bounds a game when no limit is configured. Every move disconnects a
// cell, so a game on an N cell board cannot run longer than N moves anyway.
const MaxTurns = 10000

type Engine interface {
	// Run plays a game till there's a winner or the turn limit is reached, in
	// which case the winner is game.Undefined.
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
