package rrbtree

import (
	"math/rand"
	"testing"
)

// TestRandomizedModel drives a sequence of random operations against both an
// RRB tree and a reference slice, checking agreement after every step.
func TestRandomizedModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cfg := Config{M: 2, E: 1}

	tr, err := Empty[int](cfg)
	if err != nil {
		t.Fatalf("Empty: %v", err)
	}
	model := []int{}
	nextValue := 0

	checkAgreement := func(step int) {
		t.Helper()
		if tr.Size() != len(model) {
			t.Fatalf("step %d: size mismatch: tree=%d model=%d", step, tr.Size(), len(model))
		}
		if err := tr.Check(); err != nil {
			t.Fatalf("step %d: Check failed: %v", step, err)
		}
		for i, want := range model {
			got, err := tr.Get(i)
			if err != nil {
				t.Fatalf("step %d: Get(%d): %v", step, i, err)
			}
			if got != want {
				t.Fatalf("step %d: Get(%d) = %d, want %d", step, i, got, want)
			}
		}
	}

	for step := 0; step < 2000; step++ {
		op := rng.Intn(5)
		switch {
		case op == 0 || len(model) == 0:
			// append
			v := nextValue
			nextValue++
			var err error
			tr, err = tr.Append(v)
			if err != nil {
				t.Fatalf("step %d: Append: %v", step, err)
			}
			model = append(model, v)

		case op == 1:
			// update
			i := rng.Intn(len(model))
			v := nextValue
			nextValue++
			var err error
			tr, err = tr.Update(i, v)
			if err != nil {
				t.Fatalf("step %d: Update(%d): %v", step, i, err)
			}
			model[i] = v

		case op == 2:
			// delete
			i := rng.Intn(len(model))
			var err error
			tr, err = tr.Delete(i)
			if err != nil {
				t.Fatalf("step %d: Delete(%d): %v", step, i, err)
			}
			model = append(model[:i], model[i+1:]...)

		case op == 3:
			// split+concat round trip at a random index, must reproduce the
			// original sequence exactly: concat(split(t)) is the identity.
			i := rng.Intn(len(model) + 1)
			left, right, err := tr.Split(i)
			if err != nil {
				t.Fatalf("step %d: Split(%d): %v", step, i, err)
			}
			if err := left.Check(); err != nil {
				t.Fatalf("step %d: Check left: %v", step, err)
			}
			if err := right.Check(); err != nil {
				t.Fatalf("step %d: Check right: %v", step, err)
			}
			if left.Size() != i || right.Size() != len(model)-i {
				t.Fatalf("step %d: split sizes = %d,%d want %d,%d", step, left.Size(), right.Size(), i, len(model)-i)
			}
			rejoined, err := left.Concat(right)
			if err != nil {
				t.Fatalf("step %d: Concat: %v", step, err)
			}
			tr = rejoined

		default:
			// concat a freshly built small tree onto the end
			n := rng.Intn(5)
			extra := make([]int, n)
			for j := range extra {
				extra[j] = nextValue
				nextValue++
			}
			other, err := New[int](cfg, extra...)
			if err != nil {
				t.Fatalf("step %d: New: %v", step, err)
			}
			tr, err = tr.Concat(other)
			if err != nil {
				t.Fatalf("step %d: Concat: %v", step, err)
			}
			model = append(model, extra...)
		}
		checkAgreement(step)
	}
}

// TestRandomizedConcatSplitIdentity focuses on the concat/split inverse
// property across many random trees and split points.
func TestRandomizedConcatSplitIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := Config{M: 2, E: 2}

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(200)
		elements := make([]int, n)
		for i := range elements {
			elements[i] = i
		}
		tr, err := New[int](cfg, elements...)
		if err != nil {
			t.Fatalf("trial %d: New: %v", trial, err)
		}
		if n == 0 {
			continue
		}
		i := rng.Intn(n + 1)
		left, right, err := tr.Split(i)
		if err != nil {
			t.Fatalf("trial %d: Split(%d): %v", trial, i, err)
		}
		rejoined, err := left.Concat(right)
		if err != nil {
			t.Fatalf("trial %d: Concat: %v", trial, err)
		}
		if err := rejoined.Check(); err != nil {
			t.Fatalf("trial %d: Check: %v", trial, err)
		}
		if rejoined.Size() != n {
			t.Fatalf("trial %d: size = %d, want %d", trial, rejoined.Size(), n)
		}
		for j := 0; j < n; j++ {
			v, err := rejoined.Get(j)
			if err != nil {
				t.Fatalf("trial %d: Get(%d): %v", trial, j, err)
			}
			if v != j {
				t.Fatalf("trial %d: Get(%d) = %d, want %d", trial, j, v, j)
			}
		}
	}
}
