package rrbtree

// Concat returns a new tree containing t's elements followed by other's.
// The nodes along the two spines nearest the join point are rebuilt, as are
// any sibling nodes that balance re-chunks at those levels; every other
// subtree of both trees is shared with the result.
func (t *Tree[E]) Concat(other *Tree[E]) (*Tree[E], error) {
	if t == nil || other == nil {
		return nil, ErrNilTree
	}
	if t.IsEmpty() {
		return other, nil
	}
	if other.IsEmpty() {
		return t, nil
	}
	root, height := concatNodes[E](t.cfg, t.root, t.height, other.root, other.height)
	root, height = normalizeHeight[E](root, height)
	return &Tree[E]{cfg: t.cfg, root: root, height: height}, nil
}

// concatNodes merges left (height h1) and right (height h2), returning the
// merged subtree and its height. The returned height is either
// max(h1,h2) (no promotion) or max(h1,h2)+1 (the merge overflowed and a new
// level was introduced) — callers distinguish the two by comparing against
// the height they expected.
func concatNodes[E any](cfg Config, left treeNode[E], h1 int, right treeNode[E], h2 int) (treeNode[E], int) {
	B := cfg.branchFactor()

	if h1 == 1 && h2 == 1 {
		l := left.(*leafNode[E])
		r := right.(*leafNode[E])
		combined := append(append([]E(nil), l.values()...), r.values()...)
		if len(combined) <= B {
			return makeLeaf[E](combined), 1
		}
		children := []treeNode[E]{makeLeaf[E](combined[:B]), makeLeaf[E](combined[B:])}
		return makeInternal[E](children), 2
	}

	if h1 == h2 {
		li := left.(*innerNode[E])
		ri := right.(*innerNode[E])
		merged, midHeight := concatNodes[E](cfg, rhand[E](li), h1-1, lhand[E](ri), h2-1)
		combined := spliceMiddle[E](lbody[E](li), merged, midHeight, h1-1, rbody[E](ri))
		return rewrapBalanced[E](cfg, combined, h1-1)
	}

	if h1 > h2 {
		li := left.(*innerNode[E])
		merged, midHeight := concatNodes[E](cfg, rhand[E](li), h1-1, right, h2)
		combined := spliceMiddle[E](lbody[E](li), merged, midHeight, h1-1, nil)
		return rewrapBalanced[E](cfg, combined, h1-1)
	}

	// h1 < h2
	ri := right.(*innerNode[E])
	merged, midHeight := concatNodes[E](cfg, left, h1, lhand[E](ri), h2-1)
	combined := spliceMiddle[E](nil, merged, midHeight, h2-1, rbody[E](ri))
	return rewrapBalanced[E](cfg, combined, h2-1)
}

// spliceMiddle assembles the children list for a rebuilt parent: the
// untouched left siblings, the recursively-merged middle (splicing its own
// children in place of a single slot if it was promoted a level), and the
// untouched right siblings.
func spliceMiddle[E any](leftSiblings []treeNode[E], merged treeNode[E], midHeight, expectHeight int, rightSiblings []treeNode[E]) []treeNode[E] {
	var out []treeNode[E]
	out = append(out, leftSiblings...)
	if midHeight == expectHeight {
		out = append(out, merged)
	} else {
		assert(midHeight == expectHeight+1, "spliceMiddle: unexpected height jump in merged subtree")
		promoted := merged.(*innerNode[E])
		out = append(out, promoted.children()...)
	}
	out = append(out, rightSiblings...)
	return out
}

// rewrapBalanced rebalances a freshly-assembled children list (all at height
// childHeight) and wraps it as a node at height childHeight+1, splitting into
// two nodes plus a fresh root level if the list overflowed B after balance.
func rewrapBalanced[E any](cfg Config, children []treeNode[E], childHeight int) (treeNode[E], int) {
	B := cfg.branchFactor()
	balanced := balance[E](cfg, children, childHeight)
	if len(balanced) <= B {
		return makeInternal[E](balanced), childHeight + 1
	}
	mid := len(balanced) / 2
	left := makeInternal[E](balanced[:mid])
	right := makeInternal[E](balanced[mid:])
	root := makeInternal[E]([]treeNode[E]{left, right})
	tracer().Debugf("rrbtree: concat overflowed %d children at height %d, introduced new root level", len(balanced), childHeight+1)
	return root, childHeight + 2
}

// balance redistributes a list of same-height nodes so that their count
// stays within E of the minimum required to hold their combined content at
// branch factor B (the relaxation tolerance). A list already within that
// bound is returned unchanged. Otherwise the whole list is flattened and
// re-chunked left to right into nodes of B units each, including nodes far
// from the concatenation point; at internal levels each new node's children
// are balanced in turn, so every rebuilt node meets the bound as well.
func balance[E any](cfg Config, nodes []treeNode[E], height int) []treeNode[E] {
	B := cfg.branchFactor()
	E_ := cfg.E

	if height == 1 {
		total := 0
		for _, n := range nodes {
			total += n.size()
		}
		ideal := ceilDiv(total, B)
		if len(nodes) <= ideal+E_ {
			return nodes
		}
		tracer().Debugf("rrbtree: balance rechunking %d leaves (ideal %d) at height 1", len(nodes), ideal)
		var all []E
		for _, n := range nodes {
			all = append(all, n.(*leafNode[E]).values()...)
		}
		return chunkLeaves[E](all, B)
	}

	total := 0
	for _, n := range nodes {
		total += n.(*innerNode[E]).childCount()
	}
	ideal := ceilDiv(total, B)
	if len(nodes) <= ideal+E_ {
		return nodes
	}
	tracer().Debugf("rrbtree: balance rechunking %d inner nodes (ideal %d) at height %d", len(nodes), ideal, height)
	var grandchildren []treeNode[E]
	for _, n := range nodes {
		grandchildren = append(grandchildren, n.(*innerNode[E]).children()...)
	}
	return chunkInner[E](cfg, grandchildren, height-1)
}

func ceilDiv(a, b int) int {
	if a == 0 {
		return 0
	}
	return (a + b - 1) / b
}

func chunkLeaves[E any](elements []E, B int) []treeNode[E] {
	var out []treeNode[E]
	for i := 0; i < len(elements); i += B {
		end := i + B
		if end > len(elements) {
			end = len(elements)
		}
		out = append(out, makeLeaf[E](elements[i:end]))
	}
	return out
}

func chunkInner[E any](cfg Config, children []treeNode[E], childHeight int) []treeNode[E] {
	B := cfg.branchFactor()
	var out []treeNode[E]
	for i := 0; i < len(children); i += B {
		end := i + B
		if end > len(children) {
			end = len(children)
		}
		out = append(out, makeInternal[E](balance[E](cfg, children[i:end], childHeight)))
	}
	return out
}

// normalizeHeight collapses a root chain of single-child internal nodes,
// ensuring the tree never carries height levels that hold no branching
// information.
func normalizeHeight[E any](root treeNode[E], height int) (treeNode[E], int) {
	for height > 1 {
		inner, ok := root.(*innerNode[E])
		if !ok || inner.childCount() != 1 {
			break
		}
		root = inner.children()[0]
		height--
	}
	return root, height
}
