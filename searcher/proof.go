package searcher

// numbers computes the proof and disproof numbers of a node from its type,
// value and, once expanded, the current numbers of its filled child slots.
// It reads the tree only, so repeated calls with unchanged children agree.
func (t *tree) numbers(id nodeID) (Number, Number) {
	n := t.node(id)

	if !n.expanded {
		switch n.value {
		case valueTrue:
			return 0, Infinity
		case valueFalse:
			return Infinity, 0
		}
		if n.kind == andNode {
			return atLeastOne(len(n.moves)), 1
		}
		return 1, atLeastOne(len(n.moves))
	}

	sum, least := Number(0), Infinity
	for _, c := range n.children {
		if c == noNode {
			continue
		}
		child := t.node(c)
		if n.kind == andNode {
			sum = sum.Add(child.Proof())
			least = min(least, child.Disproof())
		} else {
			sum = sum.Add(child.Disproof())
			least = min(least, child.Proof())
		}
	}

	if n.kind == andNode {
		return sum, least
	}
	return least, sum
}

func (t *tree) setNumbers(id nodeID) {
	proof, disproof := t.numbers(id)
	n := t.node(id)
	n.proof = proof
	n.disproof = disproof
	n.numbered = true
}
