// Package nim implements the single-pile subtraction game: players alternately
// take between 1 and MaxTake stones, and whoever takes the last stone wins.
// The player to move loses exactly when Stones is a multiple of MaxTake+1.
package nim

import (
	"errors"
	"fmt"
	"hash/fnv"
	"prover/game"
)

var (
	ErrNegativeStones = errors.New("stones must not be negative")
	ErrMaxTake        = errors.New("max take must be at least 1")
)

const (
	First  game.Player = 1
	Second game.Player = 2
)

type Take int

func (t Take) String() string {
	return fmt.Sprintf("take %d", int(t))
}

type State struct {
	Stones  int
	MaxTake int
	Turn    game.Player
}

func New(stones, maxTake int) (State, error) {
	if stones < 0 {
		return State{}, fmt.Errorf("%w: %d", ErrNegativeStones, stones)
	}
	if maxTake < 1 {
		return State{}, fmt.Errorf("%w: %d", ErrMaxTake, maxTake)
	}
	return State{Stones: stones, MaxTake: maxTake, Turn: First}, nil
}

func opponent(p game.Player) game.Player {
	if p == First {
		return Second
	}
	return First
}

func (s State) Players() int               { return 2 }
func (s State) IsStochastic() bool         { return false }
func (s State) HasHiddenInformation() bool { return false }
func (s State) IsAlternating() bool        { return true }

func (s State) Mover() game.Player {
	return s.Turn
}

func (s State) IsTerminal() bool {
	return s.Stones == 0
}

func (s State) LegalMoves() []game.Move {
	n := min(s.MaxTake, s.Stones)
	moves := make([]game.Move, 0, n)
	for take := 1; take <= n; take++ {
		moves = append(moves, Take(take))
	}
	return moves
}

func (s State) Play(m game.Move) game.State {
	take, ok := m.(Take)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", m))
	}
	if take < 1 || int(take) > s.MaxTake || int(take) > s.Stones {
		panic(fmt.Sprintf("illegal %s with %d stones left", take, s.Stones))
	}
	return State{
		Stones:  s.Stones - int(take),
		MaxTake: s.MaxTake,
		Turn:    opponent(s.Turn),
	}
}

// Rank treats the player who emptied the pile, i.e. the one not on turn, as the winner.
func (s State) Rank(player game.Player) game.Rank {
	if player == s.Turn {
		return 2
	}
	return 1
}

func (s State) RankBounds(player game.Player) (game.Rank, game.Rank) {
	return 1, 2
}

func (s State) Hash() game.StateHash {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d/%d/%d", s.Stones, s.MaxTake, s.Turn)
	return game.StateHash(h.Sum64())
}

func (s State) String() string {
	return fmt.Sprintf("nim(%d/%d, player %d to move)", s.Stones, s.MaxTake, s.Turn)
}
