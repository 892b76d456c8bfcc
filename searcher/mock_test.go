package searcher

import (
	"fmt"
	"prover/game"
)

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return fmt.Sprintf("move-%d", m.id)
}

// mockState is an explicit game tree. Terminal states carry player 1's rank;
// player 2 gets the mirrored rank.
type mockState struct {
	mover    game.Player
	children []mockState
	terminal bool
	rank     game.Rank

	players    int
	stochastic bool
	hidden     bool
	concurrent bool
}

// leaf is a terminal state where player 1 finishes with rank.
func leaf(rank game.Rank) mockState {
	return mockState{terminal: true, rank: rank}
}

func branch(mover game.Player, children ...mockState) mockState {
	return mockState{mover: mover, children: children}
}

func (m mockState) Players() int {
	if m.players == 0 {
		return 2
	}
	return m.players
}

func (m mockState) IsStochastic() bool         { return m.stochastic }
func (m mockState) HasHiddenInformation() bool { return m.hidden }
func (m mockState) IsAlternating() bool        { return !m.concurrent }

func (m mockState) Mover() game.Player {
	return m.mover
}

func (m mockState) IsTerminal() bool {
	return m.terminal
}

func (m mockState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(m.children))
	for i := range m.children {
		moves[i] = mockMove{id: i}
	}
	return moves
}

func (m mockState) Play(move game.Move) game.State {
	return m.children[move.(mockMove).id]
}

func (m mockState) Rank(player game.Player) game.Rank {
	if player == 1 {
		return m.rank
	}
	return 3 - m.rank
}

func (m mockState) RankBounds(player game.Player) (game.Rank, game.Rank) {
	return 1, 2
}

func (m mockState) Hash() game.StateHash {
	return 0
}

// numberedNode is a node whose numbers are forced, for tests that exercise
// selection on hand-built trees.
func (t *tree) numberedNode(parent nodeID, kind nodeType, proof, disproof Number) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, proofNode{
		parent:   parent,
		kind:     kind,
		state:    leaf(1.5),
		proof:    proof,
		disproof: disproof,
		numbered: true,
	})
	t.live++
	return id
}

func (t *tree) attach(parent nodeID, children ...nodeID) {
	n := t.node(parent)
	n.children = append(n.children, children...)
	n.moves = make([]game.Move, len(n.children))
	for i := range n.moves {
		n.moves[i] = mockMove{id: i}
	}
	n.expanded = true
}
