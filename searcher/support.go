package searcher

import (
	"errors"
	"fmt"
	"prover/game"
)

var (
	ErrUnsupportedGame = errors.New("game not supported by proof-number search")
	ErrWrongMover      = errors.New("proof player is not the mover at the root")
	ErrNoLegalMoves    = errors.New("non-terminal root has no legal moves")
	ErrUnknownGoal     = errors.New("unknown proof goal")
)

// SupportsGame accepts deterministic, perfect-information, alternating games
// between exactly two players.
func SupportsGame(g game.Properties) error {
	if n := g.Players(); n != 2 {
		return fmt.Errorf("%w: %d players", ErrUnsupportedGame, n)
	}
	if g.IsStochastic() {
		return fmt.Errorf("%w: stochastic", ErrUnsupportedGame)
	}
	if g.HasHiddenInformation() {
		return fmt.Errorf("%w: hidden information", ErrUnsupportedGame)
	}
	if !g.IsAlternating() {
		return fmt.Errorf("%w: simultaneous moves", ErrUnsupportedGame)
	}
	return nil
}

func validateRoot(state game.State, player game.Player) error {
	if err := SupportsGame(state); err != nil {
		return err
	}
	if mover := state.Mover(); mover != player {
		return fmt.Errorf("%w: mover %d, proof player %d", ErrWrongMover, mover, player)
	}
	if !state.IsTerminal() && len(state.LegalMoves()) == 0 {
		return ErrNoLegalMoves
	}
	return nil
}
