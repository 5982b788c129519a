package rrbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rrbtree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("rrbtree: index out of bounds")
	// ErrNilTree signals a method called on a nil *Tree receiver.
	ErrNilTree = errors.New("rrbtree: nil tree")
	// ErrImbalanced signals that a rebuilt subtree violates the relaxation
	// bound extra_steps <= E. It is returned only by Check().
	ErrImbalanced = errors.New("rrbtree: relaxation bound violated")
)
