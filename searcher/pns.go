package searcher

import (
	"context"
	"fmt"
	"prover/experiments/metrics"
	"prover/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Goal int

const (
	ProveWin Goal = iota
	ProveLoss
)

func (g Goal) String() string {
	if g == ProveLoss {
		return "loss"
	}
	return "win"
}

// ParseGoal accepts "win" or "loss".
func ParseGoal(s string) (Goal, error) {
	switch s {
	case "win":
		return ProveWin, nil
	case "loss":
		return ProveLoss, nil
	}
	return ProveWin, fmt.Errorf("%w: %q", ErrUnknownGoal, s)
}

type Outcome int

const (
	Unsolved Outcome = iota
	Proven
	Disproven
)

func (o Outcome) String() string {
	switch o {
	case Proven:
		return "proven"
	case Disproven:
		return "disproven"
	}
	return "unsolved"
}

// Result of a search. Move is a uniformly random legal move of the root and
// carries no guarantee of being part of a winning line.
type Result struct {
	Outcome Outcome
	Move    game.Move
	Metric  metrics.SearchMetric
}

type Option func(s *Solver)

// WithDuration bounds the wall-clock time of each search.
func WithDuration(duration time.Duration) Option {
	return func(s *Solver) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

// WithIterations bounds the number of select, expand, update cycles of each search.
func WithIterations(iterations int) Option {
	return func(s *Solver) {
		if iterations > 0 {
			s.iterations = iterations
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Solver) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(s *Solver) {
		s.newCollector = metrics.NewCollector
	}
}

// Solver runs proof-number searches. Each call to Solve builds its own tree,
// but the random source is shared, so a Solver must not be used from several
// goroutines at once.
type Solver struct {
	duration     time.Duration
	iterations   int
	rng          *rand.Rand
	newCollector func() metrics.Collector
}

func NewSolver(options ...Option) *Solver {
	s := &Solver{ // Default values: no budget, run until solved
		rng:          rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Solve proves or disproves goal for player, who must be the mover in state.
// A search stopped by its iteration or time budget returns Unsolved and a nil
// error; a search stopped by ctx returns Unsolved and the context's error.
func (s *Solver) Solve(ctx context.Context, state game.State, goal Goal, player game.Player) (Result, error) {
	if err := validateRoot(state, player); err != nil {
		return Result{}, err
	}

	budgetCtx := ctx
	if s.duration > 0 {
		var cancel context.CancelFunc
		budgetCtx, cancel = context.WithTimeout(ctx, s.duration)
		defer cancel()
	}

	collector := s.newCollector()
	collector.Start(goal.String())
	log.Debug().Str("goal", goal.String()).Int("player", int(player)).Msg("pns-start")

	srch := newSearch(state, goal, player, collector)
	iterations := 0
	var err error
	for !srch.solved() {
		if ctx.Err() != nil {
			err = fmt.Errorf("proof search interrupted: %w", ctx.Err())
			break
		}
		if budgetCtx.Err() != nil || (s.iterations > 0 && iterations >= s.iterations) {
			log.Debug().Int("iterations", iterations).Msg("pns-budget-exhausted")
			break
		}
		srch.step()
		collector.AddIteration()
		iterations++
	}

	root := srch.tree.node(srch.root)
	result := Result{
		Outcome: srch.outcome(),
		Move:    s.pickMove(root.moves),
		Metric:  collector.Complete(),
	}
	result.Metric.Outcome = result.Outcome.String()

	log.Debug().
		Str("outcome", result.Outcome.String()).
		Stringer("proof", root.Proof()).
		Stringer("disproof", root.Disproof()).
		Int("iterations", iterations).
		Msg("pns-done")

	return result, err
}

func (s *Solver) pickMove(moves []game.Move) game.Move {
	if len(moves) == 0 {
		return nil
	}
	return moves[s.rng.Intn(len(moves))]
}
