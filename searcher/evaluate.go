package searcher

import "prover/game"

// evaluator classifies terminal nodes against the rank bounds the proof
// player had at the root. The bounds are taken once and never refreshed.
type evaluator struct {
	goal   Goal
	player game.Player
	best   game.Rank
	worst  game.Rank
}

func newEvaluator(root game.State, goal Goal, player game.Player) evaluator {
	best, worst := root.RankBounds(player)
	return evaluator{goal: goal, player: player, best: best, worst: worst}
}

func (e evaluator) evaluate(n *proofNode) value {
	if !n.state.IsTerminal() {
		return valueUnknown
	}

	rank := n.state.Rank(e.player)
	switch {
	case rank == e.best && e.goal == ProveWin:
		return valueTrue
	case rank == e.worst && e.goal == ProveLoss:
		return valueTrue
	default:
		// worst when proving a win, best when proving a loss, and anything in between
		return valueFalse
	}
}
