package agent

import (
	"context"
	"fmt"
	"prover/experiments/metrics"
	"prover/game"
	"prover/searcher"
)

type proofAgent struct {
	solver *searcher.Solver
	goal   searcher.Goal
}

// NewProofAgent returns an agent that solves every position it moves from for
// the mover and reports the outcome in its metrics. The move it plays is the
// solver's, which is a random legal move.
func NewProofAgent(solver *searcher.Solver, goal searcher.Goal) Agent {
	return proofAgent{solver: solver, goal: goal}
}

func (a proofAgent) Name() string {
	return "proof-" + a.goal.String()
}

func (a proofAgent) FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	result, err := a.solver.Solve(ctx, state, a.goal, state.Mover())
	if err != nil {
		return nil, result.Metric, fmt.Errorf("failed to solve position: %w", err)
	}
	if result.Move == nil {
		return nil, result.Metric, fmt.Errorf("no move available in %v", state)
	}
	return result.Move, result.Metric, nil
}
