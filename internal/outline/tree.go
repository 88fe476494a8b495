package outline

// TreeNode is a nested, JSON-safe projection of a reconstructed tree.
type TreeNode struct {
	UID      string      `json:"uid,omitempty"`
	Label    string      `json:"label"`
	Depth    int         `json:"depth"`
	Children []*TreeNode `json:"children,omitempty"`
}

// FromTree projects reconstructed roots into nested TreeNodes.
func FromTree(roots []*Node) []*TreeNode {
	out := make([]*TreeNode, 0, len(roots))
	for _, r := range roots {
		out = append(out, projectNode(r))
	}
	return out
}

func projectNode(n *Node) *TreeNode {
	t := &TreeNode{UID: n.UID, Label: n.Label, Depth: n.Depth}
	for _, c := range n.Children {
		t.Children = append(t.Children, projectNode(c))
	}
	return t
}

// Flatten traverses roots depth-first (pre-order) and returns the nodes
// as a flat list. For a freshly reconstructed tree this reproduces the
// original input sequence.
func Flatten(roots []*Node) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		out = append(out, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return out
}
