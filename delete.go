package rrbtree

import "fmt"

// Delete returns a new tree with the element at position i removed.
// Emptied slots are dropped and ranges recomputed fresh; each rebuilt level's
// children then pass through balance, the same tolerance-bounded pass Concat
// and Split use, so nodes thinned out by deletions are consolidated once they
// exceed the relaxation bound E. No separate sibling borrow/merge step runs.
func (t *Tree[E]) Delete(i int) (*Tree[E], error) {
	if t == nil {
		return nil, ErrNilTree
	}
	size := t.Size()
	if i < 0 || i >= size {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, size)
	}
	newRoot := deleteNode[E](t.cfg, t.root, t.height, i)
	if newRoot == nil {
		return Empty[E](t.cfg)
	}
	newRoot, newHeight := normalizeHeight[E](newRoot, t.height)
	return &Tree[E]{cfg: t.cfg, root: newRoot, height: newHeight}, nil
}

// deleteNode removes local index i from the subtree n (height h), returning
// the rebuilt subtree, or nil when removing i emptied n entirely.
func deleteNode[E any](cfg Config, n treeNode[E], h int, i int) treeNode[E] {
	if h == 1 {
		leaf := n.(*leafNode[E])
		values := leaf.values()
		if len(values) == 1 {
			return nil
		}
		remaining := append([]E(nil), values[:i]...)
		remaining = append(remaining, values[i+1:]...)
		return makeLeaf[E](remaining)
	}

	inner := n.(*innerNode[E])
	k, localIdx := findBranch[E](cfg, inner, h, i)
	children := inner.children()

	newChild := deleteNode[E](cfg, children[k], h-1, localIdx)

	var newChildren []treeNode[E]
	newChildren = append(newChildren, children[:k]...)
	if newChild != nil {
		newChildren = append(newChildren, newChild)
	}
	newChildren = append(newChildren, children[k+1:]...)
	newChildren = balance[E](cfg, newChildren, h-1)

	if len(newChildren) == 0 {
		return nil
	}
	return makeInternal[E](newChildren)
}
