package flattree

import (
	"errors"
	"fmt"
	"iter"
)

// ErrNotDepthFirst reports that an input sequence was not in valid
// depth-first order. Wrapped by every *OrderError.
var ErrNotDepthFirst = errors.New("sequence not in depth-first order")

// OrderError identifies the node at which a depth-first-order violation
// was detected and the origin of the sequence. Once raised the pass is
// aborted and any partially linked nodes must be discarded.
type OrderError struct {
	Index  int    // position of the offending node in the sequence
	Node   string // rendering of the offending node
	Source string // where the sequence came from
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("node %q (index %d) in %s: %v", e.Node, e.Index, e.Source, ErrNotDepthFirst)
}

func (e *OrderError) Unwrap() error { return ErrNotDepthFirst }

// Linker is the write side of a tree node: Build records parent/child
// links through it. ResetLinks is called once per node per pass so that
// links derived by an earlier pass never leak into the result.
type Linker[T any] interface {
	SetParent(T)
	AddChild(T)
	ResetLinks()
}

// Node is the constraint Build places on reconstructed node types.
type Node[T any] interface {
	Leveler
	Linker[T]
}

// AncestorCacher is implemented by node types that can memoize that
// their full ancestor chain is reachable through parent links. Build
// marks nodes this way only when the pass covers a tree from the true
// root (root level zero).
type AncestorCacher interface {
	MarkAncestorsCached()
}

// BuildOptions configures a reconstruction pass.
type BuildOptions struct {
	// Filtered marks the sequence as a filtered subset of a larger tree.
	// A node shallower than the current root level then starts a new
	// root instead of failing, and level gaps are tolerated because
	// intermediate ancestors may be absent.
	Filtered bool
	// Source names the sequence origin for error messages.
	Source string
}

// Build converts one depth-first-ordered sequence into parent/child
// links in a single forward pass and returns the root nodes in arrival
// order. Every non-root node is linked to the most recently seen node
// one step shallower. The only failure this pass itself can produce is
// an *OrderError; errors pulled from items are returned unchanged.
func Build[T Node[T]](items iter.Seq2[T, error], opts BuildOptions) ([]T, error) {
	source := opts.Source
	if source == "" {
		source = "sequence"
	}

	var (
		roots       []T
		currentPath []T
		rootLevel   int
		prevLevel   int
		first       = true
	)
	index := 0
	for node, err := range items {
		if err != nil {
			return nil, err
		}
		level := node.Level()

		switch {
		case first || (opts.Filtered && level < rootLevel):
			// First node, or a filtered sequence legitimately surfacing
			// a shallower node after earlier branches were filtered out.
			rootLevel = level
		case level < rootLevel:
			return nil, &OrderError{Index: index, Node: fmt.Sprint(node), Source: source}
		case !opts.Filtered && level > prevLevel+1:
			// A node more than one step deeper than its predecessor has
			// no parent anywhere in the sequence.
			return nil, &OrderError{Index: index, Node: fmt.Sprint(node), Source: source}
		}

		node.ResetLinks()

		// Drop branches that have been fully exited.
		for len(currentPath) > level-rootLevel {
			currentPath = currentPath[:len(currentPath)-1]
		}

		if level == rootLevel {
			roots = append(roots, node)
		} else {
			parent := currentPath[len(currentPath)-1]
			node.SetParent(parent)
			parent.AddChild(node)
			if rootLevel == 0 {
				// The pass covers an untruncated tree, so ancestor
				// lookups can walk parent links instead of re-querying.
				if c, ok := any(node).(AncestorCacher); ok {
					c.MarkAncestorsCached()
				}
			}
		}

		currentPath = append(currentPath, node)
		prevLevel = level
		first = false
		index++
	}
	return roots, nil
}

// BuildSlice reconstructs an in-memory flat list.
func BuildSlice[T Node[T]](items []T, opts BuildOptions) ([]T, error) {
	return Build(FromSlice(items), opts)
}
