package flattree

import (
	"errors"
	"testing"
)

// tnode is a minimal linkable node for reconstruction tests.
type tnode struct {
	label    string
	level    int
	parent   *tnode
	children []*tnode
	cached   bool
}

func (n *tnode) Level() int           { return n.level }
func (n *tnode) SetParent(p *tnode)   { n.parent = p }
func (n *tnode) AddChild(c *tnode)    { n.children = append(n.children, c) }
func (n *tnode) ResetLinks()          { n.parent = nil; n.children = nil; n.cached = false }
func (n *tnode) MarkAncestorsCached() { n.cached = true }
func (n *tnode) String() string       { return n.label }

func tnodes(levels ...int) []*tnode {
	out := make([]*tnode, len(levels))
	for i, l := range levels {
		out[i] = &tnode{label: string(rune('A' + i)), level: l}
	}
	return out
}

func flattenNodes(roots []*tnode) []*tnode {
	var out []*tnode
	var walk func(*tnode)
	walk = func(n *tnode) {
		out = append(out, n)
		for _, c := range n.children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return out
}

func TestBuild_Scenario(t *testing.T) {
	// A B C D E at levels 0 1 2 1 0.
	nodes := tnodes(0, 1, 2, 1, 0)
	roots, err := BuildSlice(nodes, BuildOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(roots) != 2 || roots[0].label != "A" || roots[1].label != "E" {
		t.Fatalf("expected roots [A E], got %v", roots)
	}
	a := roots[0]
	if len(a.children) != 2 || a.children[0].label != "B" || a.children[1].label != "D" {
		t.Fatalf("expected A children [B D], got %v", a.children)
	}
	b := a.children[0]
	if len(b.children) != 1 || b.children[0].label != "C" {
		t.Fatalf("expected B children [C], got %v", b.children)
	}
	if len(a.children[1].children) != 0 {
		t.Errorf("expected D to have no children")
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	sequences := [][]int{
		{0, 1, 2, 1, 0},
		{0, 1, 2, 3, 1, 2, 0, 1},
		{0},
		{0, 1, 1, 1, 0},
	}
	for _, levels := range sequences {
		nodes := tnodes(levels...)
		roots, err := BuildSlice(nodes, BuildOptions{})
		if err != nil {
			t.Fatalf("levels %v: unexpected error: %v", levels, err)
		}
		flat := flattenNodes(roots)
		if len(flat) != len(nodes) {
			t.Fatalf("levels %v: flatten returned %d nodes, want %d", levels, len(flat), len(nodes))
		}
		for i := range nodes {
			if flat[i] != nodes[i] {
				t.Errorf("levels %v: flatten[%d] = %s, want %s", levels, i, flat[i].label, nodes[i].label)
			}
		}
	}
}

func TestBuild_ParentLevelProperty(t *testing.T) {
	nodes := tnodes(0, 1, 2, 3, 1, 2, 0, 1)
	roots, err := BuildSlice(nodes, BuildOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) == 0 {
		t.Fatal("expected roots")
	}
	for _, n := range nodes {
		if n.parent == nil {
			if n.level != 0 {
				t.Errorf("%s: non-root node has no parent", n.label)
			}
			continue
		}
		if n.parent.level != n.level-1 {
			t.Errorf("%s: parent level %d, want %d", n.label, n.parent.level, n.level-1)
		}
	}
}

func TestBuild_OutOfOrder(t *testing.T) {
	// A level-2 node right after a level-0 node has no parent anywhere.
	nodes := tnodes(0, 1, 0, 2)
	_, err := BuildSlice(nodes, BuildOptions{Source: "test input"})
	if err == nil {
		t.Fatal("expected ordering error")
	}
	if !errors.Is(err, ErrNotDepthFirst) {
		t.Fatalf("expected ErrNotDepthFirst, got %v", err)
	}
	var oe *OrderError
	if !errors.As(err, &oe) {
		t.Fatalf("expected *OrderError, got %T", err)
	}
	if oe.Index != 3 {
		t.Errorf("expected offending index 3, got %d", oe.Index)
	}
	if oe.Node != "D" {
		t.Errorf("expected offending node D, got %q", oe.Node)
	}
	if oe.Source != "test input" {
		t.Errorf("expected source %q, got %q", "test input", oe.Source)
	}
}

func TestBuild_RetreatBelowRootLevel(t *testing.T) {
	nodes := tnodes(1, 2, 0)
	_, err := BuildSlice(nodes, BuildOptions{})
	if !errors.Is(err, ErrNotDepthFirst) {
		t.Fatalf("expected ErrNotDepthFirst, got %v", err)
	}
}

func TestBuild_Filtered(t *testing.T) {
	// Levels 2 3 2 with ancestors filtered away: both level-2 nodes are
	// roots, the level-3 node hangs off the first.
	nodes := tnodes(2, 3, 2)
	roots, err := BuildSlice(nodes, BuildOptions{Filtered: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 2 || roots[0].label != "A" || roots[1].label != "C" {
		t.Fatalf("expected roots [A C], got %v", roots)
	}
	if len(roots[0].children) != 1 || roots[0].children[0].label != "B" {
		t.Fatalf("expected A children [B], got %v", roots[0].children)
	}
	if roots[0].children[0].parent != roots[0] {
		t.Error("expected B parented to A")
	}
}

func TestBuild_FilteredNewMinimumBecomesRoot(t *testing.T) {
	// A later, shallower node lowers the root level for the pass.
	nodes := tnodes(2, 3, 1, 2)
	roots, err := BuildSlice(nodes, BuildOptions{Filtered: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 2 || roots[0].label != "A" || roots[1].label != "C" {
		t.Fatalf("expected roots [A C], got %v", roots)
	}
	if len(roots[1].children) != 1 || roots[1].children[0].label != "D" {
		t.Fatalf("expected C children [D], got %v", roots[1].children)
	}
}

func TestBuild_UnfilteredRejectsLevelGap(t *testing.T) {
	nodes := tnodes(0, 2)
	if _, err := BuildSlice(nodes, BuildOptions{}); !errors.Is(err, ErrNotDepthFirst) {
		t.Fatalf("expected ErrNotDepthFirst for level gap, got %v", err)
	}
}

func TestBuild_AncestorCacheMarking(t *testing.T) {
	nodes := tnodes(0, 1, 2)
	if _, err := BuildSlice(nodes, BuildOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nodes[0].cached {
		t.Error("root should not be marked")
	}
	if !nodes[1].cached || !nodes[2].cached {
		t.Error("expected non-root nodes marked when pass starts at level 0")
	}

	// A pass that does not start at the true root cannot vouch for the
	// whole ancestor chain.
	deep := tnodes(2, 3)
	if _, err := BuildSlice(deep, BuildOptions{Filtered: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deep[1].cached {
		t.Error("expected no marking for a pass rooted above level 0")
	}
}

func TestBuild_RepeatedPassResetsLinks(t *testing.T) {
	nodes := tnodes(0, 1, 0)
	if _, err := BuildSlice(nodes, BuildOptions{}); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	roots, err := BuildSlice(nodes, BuildOptions{})
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if len(roots[0].children) != 1 {
		t.Errorf("expected children from earlier pass not to accumulate, got %d", len(roots[0].children))
	}
}

func TestBuild_UpstreamErrorPropagated(t *testing.T) {
	boom := errors.New("provider failed")
	src := func(yield func(*tnode, error) bool) {
		if !yield(&tnode{label: "A", level: 0}, nil) {
			return
		}
		yield(nil, boom)
	}
	roots, err := Build(src, BuildOptions{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if roots != nil {
		t.Error("expected no partial roots after failure")
	}
}
