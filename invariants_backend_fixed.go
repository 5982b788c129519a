//go:build rrb_fixed

package rrbtree

import "fmt"

// checkBackendLeaf/checkBackendInner validate the fixed backend's logical
// length against its backing array capacity.
func checkBackendLeaf[E any](l *leafNode[E]) error {
	if int(l.n) > len(l.elements) {
		return fmt.Errorf("%w: leaf length %d exceeds backing array %d", ErrInvalidConfig, l.n, len(l.elements))
	}
	return nil
}

func checkBackendInner[E any](n *innerNode[E]) error {
	if int(n.n) > len(n.slots) {
		return fmt.Errorf("%w: child count %d exceeds backing array %d", ErrInvalidConfig, n.n, len(n.slots))
	}
	if int(n.n) > len(n.ranges) {
		return fmt.Errorf("%w: range count %d exceeds backing array %d", ErrInvalidConfig, n.n, len(n.ranges))
	}
	return nil
}
