// Package flattree reconstructs and annotates tree structure from flat
// sequences of nodes that are already in depth-first (pre-order) order.
// It never performs I/O and never re-sorts its input: one forward pass
// is enough to link parents to children and to describe how the tree
// shape changes at every node.
//
// Input sequences are iter.Seq2[T, error] so that a failing producer can
// surface its error mid-traversal; the iterators here forward such
// errors unchanged and stop.
package flattree

import "iter"

// Triple is one window over a sequence. Cur is the item itself; Prev and
// Next point at its neighbors and are nil at the sequence edges.
type Triple[T any] struct {
	Prev *T
	Cur  T
	Next *T
}

// FromSlice adapts a flat list into the sequence form the iterators
// consume. It never yields an error.
func FromSlice[T any](items []T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Triples yields a (previous, current, next) window for every item in
// items, in order, exactly once per item. An error pulled from items is
// forwarded as-is and ends the sequence.
func Triples[T any](items iter.Seq2[T, error]) iter.Seq2[Triple[T], error] {
	return func(yield func(Triple[T], error) bool) {
		var prev, cur *T
		for item, err := range items {
			if err != nil {
				var zero Triple[T]
				yield(zero, err)
				return
			}
			next := item
			if cur != nil {
				if !yield(Triple[T]{Prev: prev, Cur: *cur, Next: &next}, nil) {
					return
				}
			}
			prev, cur = cur, &next
		}
		if cur != nil {
			yield(Triple[T]{Prev: prev, Cur: *cur}, nil)
		}
	}
}
