package agent

import (
	"context"
	"fmt"
	"prover/experiments/metrics"
	"prover/game"

	"lukechampine.com/frand"
)

type randomAgent struct{}

// NewRandomAgent returns an agent that plays uniformly random legal moves.
func NewRandomAgent() Agent {
	return randomAgent{}
}

func (a randomAgent) Name() string {
	return "random"
}

func (a randomAgent) FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("no move available in %v", state)
	}
	return moves[frand.Intn(len(moves))], metrics.SearchMetric{}, nil
}
