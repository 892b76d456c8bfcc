package experiments

import (
	"context"
	"fmt"
	"prover/config"
	"prover/engine"
	"prover/experiments/metrics"
	"prover/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// RunSolveExperiment solves every configured position on a pool of workers,
// each search with its own solver, and stores one record per position.
func RunSolveExperiment(ctx context.Context, cfg config.Config) ([]metrics.SolveRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Info().Msgf("starting solve experiment over %d positions with %d workers...", len(cfg.Positions), cfg.Workers)

	records := make([]metrics.SolveRecord, len(cfg.Positions))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, position := range cfg.Positions {
		g.Go(func() error {
			state, goal, err := NewPosition(position)
			if err != nil {
				return err
			}

			seeded := cfg.Solver
			if seeded.Seed != 0 {
				seeded.Seed += uint64(i)
			}
			result, err := NewSolver(seeded).Solve(ctx, state, goal, state.Mover())
			if err != nil {
				return fmt.Errorf("position %s: %w", position, err)
			}

			move := ""
			if result.Move != nil {
				move = result.Move.String()
			}
			records[i] = metrics.SolveRecord{
				ID:           i + 1,
				Position:     position.String(),
				PositionHash: uint64(state.Hash()),
				Move:         move,
				SearchMetric: result.Metric,
			}
			log.Info().Msgf("completed position %d of %d (%s): %s", i+1, len(cfg.Positions), position, result.Outcome)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msg("completed solve experiment")

	writer, err := metrics.NewWriter(cfg.OutputDir, "solve", cfg.Compress)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSolveRecords(records); err != nil {
		return nil, fmt.Errorf("failed to write solve records: %w", err)
	}
	log.Info().Str("run", writer.RunID).Str("dir", writer.Dir()).Msg("stored solve records")

	return records, nil
}

// RunPlayoutExperiment plays cfg.Games games from every configured position.
// The mover at the root is a proof agent for the position's goal and the other
// seat is a random agent, so the move records trace how the proof status of
// the proof agent's positions evolves along the game.
func RunPlayoutExperiment(ctx context.Context, cfg config.Config) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msg("starting playout experiment...")

	for pi, position := range cfg.Positions {
		log.Info().Msgf("starting position %d of %d (%s)...", pi+1, len(cfg.Positions), position)

		for i := 0; i < cfg.Games; i++ {
			state, goal, err := NewPosition(position)
			if err != nil {
				return nil, nil, err
			}

			agents := make([]agent.Agent, state.Players())
			for seat := range agents {
				agents[seat] = agent.NewRandomAgent()
			}
			agents[state.Mover()-1] = agent.NewProofAgent(NewSolver(cfg.Solver), goal)

			e := engine.LocalEngine(state, agents)
			winner, gameMetric, moveMetrics, err := e.Run(ctx)
			if err != nil {
				return nil, nil, fmt.Errorf("position %s game %d: %w", position, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     agents[0].Name(),
				Agent2:     agents[1].Name(),
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed position %d game %d with winner: %d", pi+1, i+1, winner)
		}
		log.Info().Msgf("completed position %d of %d", pi+1, len(cfg.Positions))
	}

	log.Info().Msg("completed playout experiment")

	writer, err := metrics.NewWriter(cfg.OutputDir, "playout", cfg.Compress)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, nil, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return gameRecords, moveRecords, nil
}
