package searcher

import (
	"prover/experiments/metrics"
	"prover/game"
)

// search is the state of one proof-number search: the arena, its root and the
// node the next selection starts from.
type search struct {
	tree    *tree
	root    nodeID
	current nodeID
}

func newSearch(state game.State, goal Goal, player game.Player, collector metrics.Collector) *search {
	t := newTree(newEvaluator(state, goal, player), collector)
	root := t.add(noNode, state)
	return &search{tree: t, root: root, current: root}
}

func (s *search) solved() bool {
	return s.tree.node(s.root).solved()
}

func (s *search) outcome() Outcome {
	root := s.tree.node(s.root)
	switch {
	case root.Proof() == 0:
		return Proven
	case root.Disproof() == 0:
		return Disproven
	}
	return Unsolved
}

// step runs one select, expand, update cycle.
func (s *search) step() {
	mostProving := s.tree.selectMostProving(s.current)
	s.tree.expand(mostProving)
	s.current = s.tree.updateAncestors(mostProving)
}

// selectMostProving descends from id through the first child whose proof
// (at OR nodes) or disproof (at AND nodes) equals its parent's.
func (t *tree) selectMostProving(id nodeID) nodeID {
	for {
		n := t.node(id)
		if !n.expanded {
			return id
		}

		next := noNode
		for _, c := range n.children {
			if c == noNode {
				continue
			}
			child := t.node(c)
			if (n.kind == orNode && child.Proof() == n.Proof()) ||
				(n.kind == andNode && child.Disproof() == n.Disproof()) {
				next = c
				break
			}
		}
		if next == noNode {
			return id
		}
		id = next
	}
}

// expand fills the child slots in move order and stops as soon as one child
// decides the node on its own.
func (t *tree) expand(id nodeID) {
	n := t.node(id)
	kind, state, moves := n.kind, n.state, n.moves

	for i, move := range moves {
		child := t.add(id, state.Play(move))
		t.node(id).children[i] = child

		c := t.node(child)
		if (kind == orNode && c.Proof() == 0) || (kind == andNode && c.Disproof() == 0) {
			break
		}
	}
	t.node(id).expanded = true
}

// updateAncestors recomputes numbers from id up towards the root and returns
// the node the next selection should start from: the first node whose numbers
// did not change, or the root.
func (t *tree) updateAncestors(id nodeID) nodeID {
	for {
		n := t.node(id)
		oldProof, oldDisproof := n.Proof(), n.Disproof()

		t.setNumbers(id)
		if n.Proof() == oldProof && n.Disproof() == oldDisproof {
			return id
		}
		if n.solved() {
			t.deleteSubtree(id)
		}
		if n.parent == noNode {
			return id
		}
		id = n.parent
	}
}
