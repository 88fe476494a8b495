package flattree

import (
	"fmt"
	"iter"
)

// Leveler exposes a node's depth in the tree. Levels must be
// depth-first-consistent along the input sequence: a node may be at most
// one level deeper than the node before it.
type Leveler interface {
	Level() int
}

// Frame describes how the tree shape changes at one node. Each frame is
// an independent snapshot; callers may retain it past the next step.
type Frame struct {
	// NewLevel is true when the node starts a new, deeper level (always
	// true for the first node).
	NewLevel bool `json:"new_level"`
	// ClosedLevels lists the levels that end exactly at this node, in
	// descending order. Empty when the next node is at the same level or
	// deeper.
	ClosedLevels []int `json:"closed_levels"`
	// Ancestors holds the rendered labels of the node's ancestors,
	// root-first. Only populated when ancestor tracking is enabled.
	Ancestors []string `json:"ancestors,omitempty"`
}

// Item pairs a node with its structural frame.
type Item[T any] struct {
	Node  T
	Frame Frame
}

// Options configures Annotate.
type Options[T any] struct {
	// Ancestors enables ancestor-chain tracking on each frame.
	Ancestors bool
	// Label renders an ancestor entry. Defaults to fmt.Sprint. Called
	// once per ancestor-stack push, not per emission.
	Label func(T) string
}

// Annotate turns a depth-first-ordered sequence into a lazy stream of
// (node, frame) pairs suitable for linear nested rendering, without
// building an explicit tree. Errors from items pass through unchanged.
func Annotate[T Leveler](items iter.Seq2[T, error], opts Options[T]) iter.Seq2[Item[T], error] {
	label := opts.Label
	if label == nil {
		label = func(v T) string { return fmt.Sprint(v) }
	}
	return func(yield func(Item[T], error) bool) {
		var (
			firstLevel int
			ancestors  []string
			prevClosed int
		)
		for t, err := range Triples(items) {
			if err != nil {
				yield(Item[T]{}, err)
				return
			}
			level := t.Cur.Level()

			var frame Frame
			if t.Prev == nil {
				frame.NewLevel = true
				firstLevel = level
			} else {
				frame.NewLevel = (*t.Prev).Level() < level
				if opts.Ancestors {
					// The previous node ended prevClosed levels, which
					// removes that many ancestors from the chain.
					if n := min(prevClosed, len(ancestors)); n > 0 {
						ancestors = ancestors[:len(ancestors)-n]
					}
					if frame.NewLevel {
						ancestors = append(ancestors, label(*t.Prev))
					}
				}
			}

			// Everything from the current level down to just above the
			// next node's level closes here; at the end of the sequence
			// everything still open closes.
			stop := firstLevel
			if t.Next != nil {
				stop = (*t.Next).Level() + 1
			}
			frame.ClosedLevels = []int{}
			for l := level; l >= stop; l-- {
				frame.ClosedLevels = append(frame.ClosedLevels, l)
			}
			prevClosed = len(frame.ClosedLevels)

			if opts.Ancestors {
				frame.Ancestors = make([]string, len(ancestors))
				copy(frame.Ancestors, ancestors)
			}

			if !yield(Item[T]{Node: t.Cur, Frame: frame}, nil) {
				return
			}
		}
	}
}

// AnnotateSlice annotates an in-memory flat list eagerly. Slices cannot
// fail mid-traversal, so no error is possible.
func AnnotateSlice[T Leveler](items []T, opts Options[T]) []Item[T] {
	out := make([]Item[T], 0, len(items))
	for item, err := range Annotate(FromSlice(items), opts) {
		if err != nil {
			// Unreachable: FromSlice never yields an error.
			continue
		}
		out = append(out, item)
	}
	return out
}
