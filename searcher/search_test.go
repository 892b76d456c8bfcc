package searcher

import (
	"prover/experiments/metrics"
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Tests one proof-number search cycle on hand-built trees:
- selection: first child matching the parent's proof (OR) or disproof (AND), lowest index wins
- expansion: move order, early cutoff once a child decides the node
- update: stop at the first unchanged node and resume selection there; prune solved subtrees
*/

func TestSelectMostProving(t *testing.T) {
	t.Run("OR node picks the first child matching its proof number", func(t *testing.T) {
		tr := newTestTree()
		root := tr.numberedNode(noNode, orNode, 3, 7)
		c0 := tr.numberedNode(root, andNode, 5, 1)
		c1 := tr.numberedNode(root, andNode, 3, 2)
		c2 := tr.numberedNode(root, andNode, 3, 4)
		tr.attach(root, c0, c1, c2)

		require.Equal(t, c1, tr.selectMostProving(root), "Lowest matching index should win the tie")
	})

	t.Run("AND node picks the first child matching its disproof number", func(t *testing.T) {
		tr := newTestTree()
		root := tr.numberedNode(noNode, andNode, 9, 2)
		c0 := tr.numberedNode(root, orNode, 1, 4)
		c1 := tr.numberedNode(root, orNode, 3, 2)
		c2 := tr.numberedNode(root, orNode, 5, 2)
		tr.attach(root, noNode, c0, c1, c2)

		require.Equal(t, c1, tr.selectMostProving(root))
	})

	t.Run("descends until an unexpanded node", func(t *testing.T) {
		tr := newTestTree()
		root := tr.numberedNode(noNode, orNode, 2, 3)
		mid := tr.numberedNode(root, andNode, 2, 1)
		tr.attach(root, mid)
		other := tr.numberedNode(mid, orNode, 1, 3)
		target := tr.numberedNode(mid, orNode, 1, 1)
		tr.attach(mid, other, target)

		require.Equal(t, target, tr.selectMostProving(root))
	})

	t.Run("unexpanded start is returned as is", func(t *testing.T) {
		tr := newTestTree()
		root := tr.numberedNode(noNode, orNode, 1, 1)

		require.Equal(t, root, tr.selectMostProving(root))
	})
}

func TestExpand(t *testing.T) {
	t.Run("fills every slot when no child decides the node", func(t *testing.T) {
		s := newSearch(branch(1, branch(2, leaf(1)), leaf(2)), ProveWin, 1, metrics.NewDummyCollector())

		s.tree.expand(s.root)

		root := s.tree.node(s.root)
		require.True(t, root.expanded)
		require.NotContains(t, root.children, noNode)
		require.Equal(t, valueFalse, s.tree.node(root.children[1]).value)
	})

	t.Run("OR node stops at the first proven child", func(t *testing.T) {
		s := newSearch(branch(1, leaf(2), leaf(1), leaf(1)), ProveWin, 1, metrics.NewDummyCollector())

		s.tree.expand(s.root)

		root := s.tree.node(s.root)
		require.True(t, root.expanded)
		require.NotEqual(t, noNode, root.children[1])
		require.Equal(t, noNode, root.children[2], "Slots after the deciding child stay empty")
		require.Equal(t, 3, s.tree.live)
	})

	t.Run("AND node stops at the first disproven child", func(t *testing.T) {
		s := newSearch(branch(2, leaf(2), leaf(1)), ProveWin, 1, metrics.NewDummyCollector())

		s.tree.expand(s.root)

		root := s.tree.node(s.root)
		require.NotEqual(t, noNode, root.children[0])
		require.Equal(t, noNode, root.children[1])
	})
}

func TestStepResumesFromUnchangedAncestor(t *testing.T) {
	a := branch(2, branch(1, leaf(1)), branch(1, leaf(1)))
	b := branch(2, leaf(1), leaf(1))
	s := newSearch(branch(1, a, b), ProveWin, 1, metrics.NewDummyCollector())

	s.step()
	require.Equal(t, s.root, s.current, "Root numbers changed, so selection restarts at the root")

	s.step()
	first := s.tree.node(s.root).children[0]
	require.Equal(t, first, s.current, "Expanded node kept its numbers, so selection resumes there")
	require.Equal(t, Number(2), s.tree.node(first).Proof())
	require.Equal(t, Number(1), s.tree.node(first).Disproof())
}

func TestUpdateAncestorsPrunesSolvedNodes(t *testing.T) {
	// Player 2 moves at the root, so the root is an AND node that needs both replies proven.
	a := branch(1, leaf(1))
	b := branch(1, leaf(2), leaf(2))
	s := newSearch(branch(2, a, b), ProveWin, 1, metrics.NewCollector())

	s.step()
	aID := s.tree.node(s.root).children[0]
	require.Equal(t, s.root, s.current)

	s.step()

	pruned := s.tree.node(aID)
	require.Equal(t, Number(0), pruned.Proof())
	require.Empty(t, pruned.children, "Solved node should release its children")
	require.Len(t, s.tree.free, 1)
	require.False(t, s.solved())
	require.Equal(t, Number(1), s.tree.node(s.root).Proof())
}

func TestScenarioOnePlyForcedWin(t *testing.T) {
	state := branch(1, leaf(2), leaf(1), branch(2, leaf(1)))
	s := newSearch(state, ProveWin, 1, metrics.NewDummyCollector())
	require.Equal(t, orNode, s.tree.node(s.root).kind)

	s.step()

	require.Equal(t, Number(0), s.tree.node(s.root).Proof())
	require.Equal(t, Proven, s.outcome())
	require.Empty(t, s.tree.node(s.root).children, "Solved root should release its subtree")
}

func TestScenarioOnePlyForcedLossUnderAnd(t *testing.T) {
	state := branch(2, leaf(2), leaf(2))
	s := newSearch(state, ProveWin, 1, metrics.NewDummyCollector())
	require.Equal(t, andNode, s.tree.node(s.root).kind)

	s.step()

	require.Equal(t, Number(0), s.tree.node(s.root).Disproof())
	require.Equal(t, Disproven, s.outcome())
}
