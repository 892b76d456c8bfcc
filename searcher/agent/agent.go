package agent

import (
	"context"
	"prover/experiments/metrics"
	"prover/game"
)

type Agent interface {
	// FindMove returns the move to play and performance metrics (if collected) from the search
	FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error)
	Name() string
}
