package searcher

import (
	"prover/experiments/metrics"
	"prover/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProofNodeType(t *testing.T) {
	tests := []struct {
		name  string
		mover game.Player
		goal  Goal
		want  nodeType
	}{
		{"proof player to move proving a win", 1, ProveWin, orNode},
		{"opponent to move proving a win", 2, ProveWin, andNode},
		{"proof player to move proving a loss", 1, ProveLoss, andNode},
		{"opponent to move proving a loss", 2, ProveLoss, orNode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := branch(tc.mover, leaf(1), leaf(2))
			n := newProofNode(noNode, state, tc.goal, 1)
			require.Equal(t, tc.want, n.kind)
		})
	}
}

func TestNewProofNodeMoves(t *testing.T) {
	t.Run("non-terminal state materializes every legal move", func(t *testing.T) {
		n := newProofNode(noNode, branch(1, leaf(1), leaf(2), leaf(1)), ProveWin, 1)
		require.Len(t, n.moves, 3)
		require.Equal(t, []nodeID{noNode, noNode, noNode}, n.children)
		require.False(t, n.expanded)
	})

	t.Run("terminal state has no moves", func(t *testing.T) {
		n := newProofNode(noNode, leaf(1), ProveWin, 1)
		require.Empty(t, n.moves)
		require.Empty(t, n.children)
	})
}

func TestProofNodeNumbersBeforeComputed(t *testing.T) {
	n := newProofNode(noNode, leaf(1), ProveWin, 1)

	require.Panics(t, func() { n.Proof() }, "Reading an unset proof number is a programmer error")
	require.Panics(t, func() { n.Disproof() }, "Reading an unset disproof number is a programmer error")
}

func TestTreeAdd(t *testing.T) {
	collector := metrics.NewCollector()
	tr := newTree(newEvaluator(branch(1), ProveWin, 1), collector)

	root := tr.add(noNode, branch(1, leaf(1), leaf(2)))
	child := tr.add(root, leaf(1))

	require.Equal(t, nodeID(0), root)
	require.Equal(t, nodeID(1), child)
	require.Equal(t, root, tr.node(child).parent)
	require.Equal(t, valueUnknown, tr.node(root).value)
	require.Equal(t, valueTrue, tr.node(child).value)
	require.Equal(t, Number(1), tr.node(root).Proof(), "Node should be numbered on creation")
	require.Equal(t, 2, tr.live)
	require.Equal(t, 2, collector.Complete().NodesCreated)
}

func TestTreeDeleteSubtree(t *testing.T) {
	collector := metrics.NewCollector()
	tr := newTree(newEvaluator(branch(1), ProveWin, 1), collector)
	state := branch(1, branch(2, leaf(1), leaf(1)), leaf(2))

	root := tr.add(noNode, state)
	tr.expand(root)
	first := tr.node(root).children[0]
	tr.expand(first)
	require.Equal(t, 5, tr.live)

	proof, disproof := tr.node(root).Proof(), tr.node(root).Disproof()
	tr.deleteSubtree(root)

	require.Empty(t, tr.node(root).children, "Children should be released")
	require.Equal(t, proof, tr.node(root).Proof(), "Node should keep its numbers")
	require.Equal(t, disproof, tr.node(root).Disproof(), "Node should keep its numbers")
	require.Equal(t, 1, tr.live)
	require.Len(t, tr.free, 4)
	require.Equal(t, 4, collector.Complete().NodesPruned)

	reused := tr.add(noNode, leaf(2))
	require.Contains(t, []nodeID{1, 2, 3, 4}, reused, "Released slots should be recycled")
	require.Len(t, tr.free, 3)
	require.Equal(t, 2, tr.live)
}
