package searcher

import (
	"prover/experiments/metrics"
	"prover/game"
)

// nodeID indexes a proofNode in its tree's arena.
type nodeID int

const noNode nodeID = -1

type nodeType uint8

const (
	orNode nodeType = iota
	andNode
)

func (k nodeType) String() string {
	if k == andNode {
		return "AND"
	}
	return "OR"
}

type value uint8

const (
	valueUnknown value = iota
	valueTrue
	valueFalse
)

type proofNode struct {
	parent   nodeID
	kind     nodeType
	state    game.State
	moves    []game.Move
	children []nodeID
	expanded bool
	value    value

	proof    Number
	disproof Number
	numbered bool
}

func newProofNode(parent nodeID, state game.State, goal Goal, player game.Player) proofNode {
	kind := andNode
	if (state.Mover() == player) != (goal == ProveLoss) {
		kind = orNode
	}

	var moves []game.Move
	if !state.IsTerminal() {
		moves = state.LegalMoves()
	}

	children := make([]nodeID, len(moves))
	for i := range children {
		children[i] = noNode
	}

	return proofNode{
		parent:   parent,
		kind:     kind,
		state:    state,
		moves:    moves,
		children: children,
	}
}

func (n *proofNode) Proof() Number {
	if !n.numbered {
		panic("proof number read before it was computed")
	}
	return n.proof
}

func (n *proofNode) Disproof() Number {
	if !n.numbered {
		panic("disproof number read before it was computed")
	}
	return n.disproof
}

func (n *proofNode) solved() bool {
	return n.Proof() == 0 || n.Disproof() == 0
}

// tree is the arena owning every node of one search. Released slots are
// recycled through the free list.
type tree struct {
	nodes     []proofNode
	free      []nodeID
	live      int
	evaluator evaluator
	metrics   metrics.Collector
}

func newTree(e evaluator, collector metrics.Collector) *tree {
	return &tree{evaluator: e, metrics: collector}
}

// node returns a pointer into the arena. It is invalidated by the next add.
func (t *tree) node(id nodeID) *proofNode {
	return &t.nodes[id]
}

// add creates, evaluates and numbers a node for state.
func (t *tree) add(parent nodeID, state game.State) nodeID {
	n := newProofNode(parent, state, t.evaluator.goal, t.evaluator.player)

	var id nodeID
	if last := len(t.free) - 1; last >= 0 {
		id = t.free[last]
		t.free = t.free[:last]
		t.nodes[id] = n
	} else {
		id = nodeID(len(t.nodes))
		t.nodes = append(t.nodes, n)
	}
	t.live++
	t.metrics.AddNode(t.live)

	node := t.node(id)
	node.value = t.evaluator.evaluate(node)
	t.setNumbers(id)
	return id
}

// deleteSubtree releases every descendant of id. The node keeps its own numbers.
func (t *tree) deleteSubtree(id nodeID) {
	n := t.node(id)
	stack := make([]nodeID, 0, len(n.children))
	for _, child := range n.children {
		if child != noNode {
			stack = append(stack, child)
		}
	}
	n.children = nil

	released := 0
	for len(stack) > 0 {
		last := len(stack) - 1
		current := stack[last]
		stack = stack[:last]
		for _, child := range t.nodes[current].children {
			if child != noNode {
				stack = append(stack, child)
			}
		}
		t.nodes[current] = proofNode{parent: noNode}
		t.free = append(t.free, current)
		released++
	}

	t.live -= released
	if released > 0 {
		t.metrics.AddPruned(released)
	}
}
