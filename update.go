package rrbtree

import "fmt"

// Update returns a new tree with the element at position i replaced by x.
// Only the spine from the root to the affected leaf is copied; every
// untouched sibling subtree is shared with t.
func (t *Tree[E]) Update(i int, x E) (*Tree[E], error) {
	if t == nil {
		return nil, ErrNilTree
	}
	if i < 0 || i >= t.Size() {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, t.Size())
	}
	newRoot := updateNode[E](t.cfg, t.root, t.height, i, x)
	return t.withRoot(newRoot, t.height), nil
}

func updateNode[E any](cfg Config, n treeNode[E], h int, i int, x E) treeNode[E] {
	if h == 1 {
		leaf := n.(*leafNode[E])
		values := append([]E(nil), leaf.values()...)
		values[i] = x
		return makeLeaf[E](values)
	}
	inner := n.(*innerNode[E])
	k, localIdx := findBranch[E](cfg, inner, h, i)
	children := append([]treeNode[E](nil), inner.children()...)
	children[k] = updateNode[E](cfg, children[k], h-1, localIdx, x)
	return makeInternal[E](children)
}
