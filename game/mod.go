package game

// Player identifies a seat at the table. Seats are numbered from 1.
type Player int

// Rank is a player's placing in a finished game: 1 is first place, and tied
// players share the average of the places they span (a two-player draw is 1.5).
type Rank float64

type StateHash uint64

type Move interface {
	String() string
}

// Properties describes the kind of game a State belongs to.
type Properties interface {
	Players() int
	IsStochastic() bool
	HasHiddenInformation() bool
	IsAlternating() bool
}

// State should be immutable - operations on State always return a new copy
type State interface {
	Properties

	Mover() Player
	IsTerminal() bool
	// LegalMoves is empty for terminal states
	LegalMoves() []Move
	Play(Move) State
	// Rank is only meaningful when IsTerminal reports true
	Rank(player Player) Rank
	// RankBounds returns the best and worst rank the player can still finish with
	RankBounds(player Player) (best, worst Rank)
	Hash() StateHash
}

// Winner returns the player ranked first in a terminal state, or 0 if the
// state is not terminal or nobody finished alone in first place.
func Winner(state State) Player {
	if !state.IsTerminal() {
		return 0
	}
	for p := 1; p <= state.Players(); p++ {
		if state.Rank(Player(p)) == 1 {
			return Player(p)
		}
	}
	return 0
}
