package rrbtree

// Append returns a new tree with x added after the last element. It is
// expressed as the degenerate case of Concat against a one-element tree.
func (t *Tree[E]) Append(x E) (*Tree[E], error) {
	if t == nil {
		return nil, ErrNilTree
	}
	return t.Concat(singleton[E](t.cfg, x))
}
