package rrbtree

// treeNode is the shared contract for leaves and internal nodes. Concrete
// layouts (fixed-array-backed or slice-backed) live in node_dynamic.go /
// node_fixed.go, selected by the rrb_fixed build tag.
type treeNode[E any] interface {
	isLeaf() bool
	size() int
}

func sizeOf[E any](n treeNode[E]) int {
	if n == nil {
		return 0
	}
	return n.size()
}

// rhand returns the rightmost child of an internal node.
func rhand[E any](n *innerNode[E]) treeNode[E] {
	c := n.children()
	assert(len(c) > 0, "rhand called on internal node with no slots")
	return c[len(c)-1]
}

// lhand returns the leftmost child of an internal node.
func lhand[E any](n *innerNode[E]) treeNode[E] {
	c := n.children()
	assert(len(c) > 0, "lhand called on internal node with no slots")
	return c[0]
}

// lbody returns the children of n with the rightmost child dropped.
func lbody[E any](n *innerNode[E]) []treeNode[E] {
	c := n.children()
	assert(len(c) > 0, "lbody called on internal node with no slots")
	return append([]treeNode[E](nil), c[:len(c)-1]...)
}

// rbody returns the children of n with the leftmost child dropped.
//
// The removed child's contribution to the old ranges table is simply
// discarded: callers always regroup the returned slots through makeInternal,
// which recomputes cumulative ranges from scratch, so no explicit rebase of
// the surviving ranges is needed here.
func rbody[E any](n *innerNode[E]) []treeNode[E] {
	c := n.children()
	assert(len(c) > 0, "rbody called on internal node with no slots")
	return append([]treeNode[E](nil), c[1:]...)
}
