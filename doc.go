/*
Package rrbtree implements a Relaxed Radix Balanced (RRB) tree: a persistent
indexed sequence supporting random access, update, append, concatenation,
split, and single-element deletion in O(log n) time.

An RRB tree generalises a strict radix-balanced vector by relaxing the
"every branch is full" invariant at internal nodes. This lets concat and
split rebalance only the nodes along the affected spine instead of rebuilding
the whole tree, at the cost of a small, bounded amount of per-node slack
(tracked as "extra steps" against a configurable tolerance E).

Trees are values of Tree[E], built from an empty tree via New or Empty:

	t, _ := rrbtree.Empty[int](rrbtree.Config{})
	t, _ = t.Append(1)
	t, _ = t.Append(2)
	v, _ := t.Get(0) // 1

All operations are non-destructive: they return a new Tree sharing untouched
structure with their inputs, never mutating a node visible to another Tree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rrbtree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
