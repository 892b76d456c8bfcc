package engine

import (
	"context"
	"fmt"
	"prover/experiments/metrics"
	"prover/game"
	"prover/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type Local struct {
	State  game.State
	Agents []agent.Agent // Indexed by player ID - 1
}

func LocalEngine(state game.State, agents []agent.Agent) *Local {
	if len(agents) != state.Players() {
		panic("number of players does not match number of agents")
	}
	if len(agents) < 2 {
		panic("need at least two players")
	}
	return &Local{
		State:  state,
		Agents: agents,
	}
}

// Run executes the game loop until the game ends or MaxMoves moves were played.
func (e *Local) Run(ctx context.Context) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.State.Mover()),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %d is starting", e.State.Mover())

	step := 1
	for !e.State.IsTerminal() && step <= MaxMoves {
		player := e.State.Mover()
		a := e.Agents[player-1]

		move, searchMetric, err := a.FindMove(ctx, e.State)
		if err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("agent %s failed at step %d: %w", a.Name(), step, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(player),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})

		e.State = e.State.Play(move)
		step++
	}

	winner := game.Winner(e.State)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step - 1
	gameMetric.Winner = int(winner)

	if !e.State.IsTerminal() {
		log.Warn().Msgf("stopped after %d moves without a result", MaxMoves)
	}
	return winner, gameMetric, moveMetrics, nil
}
