package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"prover/config"
	"prover/experiments"
	"prover/logx"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "prover",
		Short:        "Proof-number search for two-player games",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = logx.NewLogger(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newSolveCmd(), newExperimentCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var (
		position config.Position
		solver   config.Solver
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Prove or disprove a single position for the player to move",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, goal, err := experiments.NewPosition(position)
			if err != nil {
				return err
			}

			result, err := experiments.NewSolver(solver).Solve(cmd.Context(), state, goal, state.Mover())
			if err != nil {
				log.Error().Err(err).Str("position", position.String()).Msg("solve-failed")
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s for player %d: %s\n", position, state.Mover(), result.Outcome)
			if result.Move != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "move: %s\n", result.Move)
			}
			m := result.Metric
			fmt.Fprintf(cmd.OutOrStdout(), "iterations: %d, nodes: %d created, %d pruned, %d peak, took %s\n",
				m.Iterations, m.NodesCreated, m.NodesPruned, m.PeakNodes, m.Duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&position.Game, "game", config.GameTicTacToe, "game to solve (tictactoe, nim)")
	cmd.Flags().StringVar(&position.Board, "board", ".........", "tictactoe board, row by row, '.' for empty")
	cmd.Flags().IntVar(&position.Stones, "stones", 12, "nim pile size")
	cmd.Flags().IntVar(&position.MaxTake, "max-take", 3, "nim maximum stones per move")
	cmd.Flags().StringVar(&position.Goal, "goal", "win", "proof goal for the player to move (win, loss)")
	cmd.Flags().DurationVar(&solver.Duration, "duration", 0, "search time budget, 0 for none")
	cmd.Flags().IntVar(&solver.Iterations, "iterations", 0, "search iteration budget, 0 for none")
	cmd.Flags().Uint64Var(&solver.Seed, "seed", 0, "seed for the reported move, 0 for a random seed")
	return cmd
}

func newExperimentCmd() *cobra.Command {
	var (
		path string
		kind string
	)

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Run a batch experiment described by a YAML config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if path != "" {
				var err error
				if cfg, err = config.Load(path); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("log-level") {
				log.Logger = logx.NewLogger(cfg.LogLevel)
			}

			start := time.Now()
			switch kind {
			case "solve":
				if _, err := experiments.RunSolveExperiment(cmd.Context(), cfg); err != nil {
					return err
				}
			case "playout":
				if _, _, err := experiments.RunPlayoutExperiment(cmd.Context(), cfg); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown experiment kind %q", kind)
			}
			log.Info().Msgf("experiment took %s", time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "config", "", "path to the YAML config, defaults are used when empty")
	cmd.Flags().StringVar(&kind, "kind", "solve", "experiment to run (solve, playout)")
	return cmd
}
