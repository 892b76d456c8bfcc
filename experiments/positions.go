package experiments

import (
	"fmt"
	"prover/config"
	"prover/game"
	"prover/game/nim"
	"prover/game/tictactoe"
	"prover/searcher"
)

// NewPosition builds the root state and proof goal a position describes.
func NewPosition(p config.Position) (game.State, searcher.Goal, error) {
	goal, err := searcher.ParseGoal(p.Goal)
	if err != nil {
		return nil, goal, err
	}

	switch p.Game {
	case config.GameTicTacToe:
		state, err := tictactoe.Parse(p.Board)
		if err != nil {
			return nil, goal, fmt.Errorf("position %s: %w", p, err)
		}
		return state, goal, nil
	case config.GameNim:
		state, err := nim.New(p.Stones, p.MaxTake)
		if err != nil {
			return nil, goal, fmt.Errorf("position %s: %w", p, err)
		}
		return state, goal, nil
	}
	return nil, goal, fmt.Errorf("%w: %q", config.ErrUnknownGame, p.Game)
}

// NewSolver maps the solver section of the configuration onto solver options.
func NewSolver(cfg config.Solver) *searcher.Solver {
	options := []searcher.Option{searcher.WithMetrics()}

	if cfg.Duration > 0 {
		options = append(options, searcher.WithDuration(cfg.Duration))
	}
	if cfg.Iterations > 0 {
		options = append(options, searcher.WithIterations(cfg.Iterations))
	}
	if cfg.Seed != 0 {
		options = append(options, searcher.WithSeed(cfg.Seed))
	}
	return searcher.NewSolver(options...)
}
