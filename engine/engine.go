package engine

import (
	"context"
	"prover/experiments/metrics"
	"prover/game"
)

const MaxMoves = 10000

type Engine interface {
	// Run plays a game till it ends or a max number of moves is reached
	Run(ctx context.Context) (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
