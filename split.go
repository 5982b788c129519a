package rrbtree

import "fmt"

// Split divides t at position i into two trees: left holding [0,i) and right
// holding [i,size). Only the nodes along the single spine to index i are
// rebuilt; every subtree wholly to the left or right of that spine is
// shared with t.
func (t *Tree[E]) Split(i int) (*Tree[E], *Tree[E], error) {
	if t == nil {
		return nil, nil, ErrNilTree
	}
	size := t.Size()
	if i < 0 || i > size {
		return nil, nil, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, size)
	}
	empty, err := Empty[E](t.cfg)
	if err != nil {
		return nil, nil, err
	}
	if i == 0 {
		return empty, t, nil
	}
	if i == size {
		return t, empty, nil
	}
	leftRoot, leftH, rightRoot, rightH := splitNode[E](t.cfg, t.root, t.height, i)
	leftRoot, leftH = normalizeHeight[E](leftRoot, leftH)
	rightRoot, rightH = normalizeHeight[E](rightRoot, rightH)
	return &Tree[E]{cfg: t.cfg, root: leftRoot, height: leftH},
		&Tree[E]{cfg: t.cfg, root: rightRoot, height: rightH}, nil
}

// splitNode splits the subtree n (height h) at local index i, returning the
// left part's root/height and the right part's root/height. Either side may
// come back as (nil, 0) when the split falls exactly on that side's edge.
func splitNode[E any](cfg Config, n treeNode[E], h int, i int) (treeNode[E], int, treeNode[E], int) {
	if h == 1 {
		leaf := n.(*leafNode[E])
		values := leaf.values()
		var left, right treeNode[E]
		var lh, rh int
		if i > 0 {
			left = makeLeaf[E](values[:i])
			lh = 1
		}
		if i < len(values) {
			right = makeLeaf[E](values[i:])
			rh = 1
		}
		return left, lh, right, rh
	}

	inner := n.(*innerNode[E])
	k, localIdx := findBranch[E](cfg, inner, h, i)
	children := inner.children()

	leftSub, _, rightSub, _ := splitNode[E](cfg, children[k], h-1, localIdx)

	var leftChildren []treeNode[E]
	leftChildren = append(leftChildren, children[:k]...)
	if leftSub != nil {
		leftChildren = append(leftChildren, leftSub)
	}

	var rightChildren []treeNode[E]
	if rightSub != nil {
		rightChildren = append(rightChildren, rightSub)
	}
	rightChildren = append(rightChildren, children[k+1:]...)

	// The single child at the cut point (leftSub/rightSub) may be under-full;
	// rebalance with the same tolerance-bounded pass concat uses, so the
	// relaxation invariant (extra_steps <= E) holds on both sides of the cut.
	leftChildren = balance[E](cfg, leftChildren, h-1)
	rightChildren = balance[E](cfg, rightChildren, h-1)

	leftRoot, leftH := wrapLevel[E](leftChildren, h-1)
	rightRoot, rightH := wrapLevel[E](rightChildren, h-1)
	return leftRoot, leftH, rightRoot, rightH
}

// wrapLevel wraps a list of same-height children (height childHeight) into
// their parent at a uniform height of childHeight+1, even when there is only
// one child. Collapsing a single-child node mid-recursion would hand the
// caller a node one level shorter than its siblings, which splitNode and the
// height-parameterized balance both assume never happens; height reduction
// is instead applied exactly once, at the root, via normalizeHeight.
func wrapLevel[E any](children []treeNode[E], childHeight int) (treeNode[E], int) {
	if len(children) == 0 {
		return nil, 0
	}
	return makeInternal[E](children), childHeight + 1
}
