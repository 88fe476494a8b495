// Package outline holds the node model shared by the importers, the
// reconstruction core, and the renderers.
package outline

import (
	"github.com/dgallion1/treelist/internal/flattree"
)

// Node is one entry of a flat outline. Depth is its level in the tree;
// Parent and Children are derived links installed by a reconstruction
// pass and are valid only until the next pass over the same nodes.
type Node struct {
	UID   string `json:"uid,omitempty"`
	Label string `json:"label"`
	Depth int    `json:"depth"`

	Parent   *Node   `json:"-"`
	Children []*Node `json:"-"`

	ancestorsCached bool
}

func (n *Node) Level() int { return n.Depth }

func (n *Node) SetParent(p *Node) { n.Parent = p }

func (n *Node) AddChild(c *Node) { n.Children = append(n.Children, c) }

func (n *Node) ResetLinks() {
	n.Parent = nil
	n.Children = nil
	n.ancestorsCached = false
}

func (n *Node) MarkAncestorsCached() { n.ancestorsCached = true }

// AncestorsCached reports whether the last pass linked this node inside
// a tree rooted at level zero, so Ancestors can trust parent links.
func (n *Node) AncestorsCached() bool { return n.ancestorsCached }

// Ancestors returns the labels of this node's ancestors, root first, by
// walking parent links.
func (n *Node) Ancestors() []string {
	var chain []string
	for p := n.Parent; p != nil; p = p.Parent {
		chain = append(chain, p.Label)
	}
	// Reverse into root-first order.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func (n *Node) String() string { return n.Label }

// Document is a flat outline in depth-first order.
type Document struct {
	Title string  `json:"title"`
	Nodes []*Node `json:"nodes"`
}

// Roots reconstructs the tree over d.Nodes and returns the top-level
// nodes. With filtered set, shallower nodes appearing later start new
// roots instead of failing.
func (d *Document) Roots(filtered bool) ([]*Node, error) {
	source := d.Title
	if source == "" {
		source = "outline"
	}
	return flattree.BuildSlice(d.Nodes, flattree.BuildOptions{
		Filtered: filtered,
		Source:   source,
	})
}

// Annotate returns each node of d paired with its structural frame.
// Ancestor chains use node labels.
func (d *Document) Annotate(ancestors bool) []flattree.Item[*Node] {
	return flattree.AnnotateSlice(d.Nodes, flattree.Options[*Node]{
		Ancestors: ancestors,
		Label:     func(n *Node) string { return n.Label },
	})
}
