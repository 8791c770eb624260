package tree

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"go.uber.org/goleak"
)

func buildTree() *Node[string] {
	// a(b(d e) c(f))
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	a.AddChild(b).AddChild(c)
	b.AddChild(NewNode("d")).AddChild(NewNode("e"))
	c.AddChild(NewNode("f"))
	return a
}

func names(nodes []*Node[string]) string {
	var s []string
	for _, n := range nodes {
		s = append(s, n.Payload)
	}
	return strings.Join(s, " ")
}

func TestNodeChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.tree")
	defer teardown()
	//
	a := buildTree()
	if a.ChildCount() != 2 {
		t.Fatalf("expected root to have 2 children, has %d", a.ChildCount())
	}
	b, ok := a.Child(0)
	if !ok || b.Payload != "b" || b.Parent() != a {
		t.Errorf("expected first child to be b with parent a, is %v", b)
	}
	if _, ok := a.Child(5); ok {
		t.Errorf("expected child #5 to not exist")
	}
	x := NewNode("x")
	a.InsertChildAt(1, x)
	if a.IndexOfChild(x) != 1 {
		t.Errorf("expected x at position 1, is at %d", a.IndexOfChild(x))
	}
	x.Isolate()
	if a.ChildCount() != 2 || x.Parent() != nil {
		t.Errorf("expected x to be isolated from a")
	}
}

func TestTopDownDocumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.tree")
	defer teardown()
	//
	a := buildTree()
	all := Select(a, Whatever[string]())
	if names(all) != "a b d e c f" {
		t.Errorf("expected document order 'a b d e c f', have %q", names(all))
	}
	leafs := Select(a, NodeIsLeaf[string]())
	if names(leafs) != "d e f" {
		t.Errorf("expected leafs 'd e f', have %q", names(leafs))
	}
}

func TestTopDownSkipAndAbort(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.tree")
	defer teardown()
	//
	a := buildTree()
	var visited []string
	err := TopDown(a, func(n, parent *Node[string], pos int) error {
		visited = append(visited, n.Payload)
		if n.Payload == "b" {
			return SkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(visited, "") != "abcf" {
		t.Errorf("expected to skip children of b, visited %v", visited)
	}
	boom := errors.New("boom")
	err = TopDown(a, func(n, parent *Node[string], pos int) error {
		if n.Payload == "e" {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected walk to abort with error, have %v", err)
	}
	if err := TopDown[string](nil, nil); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree for nil root, have %v", err)
	}
}

func TestBottomUpRank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.tree")
	defer teardown()
	//
	a := buildTree()
	if err := BottomUp(a, CalcRank[string]); err != nil {
		t.Fatal(err)
	}
	if a.Rank != 6 {
		t.Errorf("expected rank of root to be 6, is %d", a.Rank)
	}
	b, _ := a.Child(0)
	if b.Rank != 3 {
		t.Errorf("expected rank of b to be 3, is %d", b.Rank)
	}
}

func TestAncestorWith(t *testing.T) {
	a := buildTree()
	f := Select(a, func(n *Node[string]) bool { return n.Payload == "f" })[0]
	if f.Depth() != 2 {
		t.Errorf("expected depth of f to be 2, is %d", f.Depth())
	}
	anc := AncestorWith(f, func(n *Node[string]) bool { return n.Payload == "a" })
	if anc != a {
		t.Errorf("expected ancestor of f to be a, is %v", anc)
	}
	if AncestorWith(f, func(n *Node[string]) bool { return n.Payload == "f" }) != nil {
		t.Errorf("expected AncestorWith to not include the start node")
	}
}

func TestConcurrentAddChild(t *testing.T) {
	root := NewNode(0)
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			root.AddChild(NewNode(i))
		}(i)
	}
	wg.Wait()
	if root.ChildCount() != 50 {
		t.Errorf("expected 50 children, have %d", root.ChildCount())
	}
}

func TestWalkerDescendentsAndAncestors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.tree")
	defer teardown()
	defer goleak.VerifyNone(t)
	//
	a := buildTree()
	leafs, err := NewWalker(a).DescendentsWith(NodeIsLeaf[string]()).Promise()()
	if err != nil {
		t.Fatal(err)
	}
	if names(leafs) != "d e f" {
		t.Errorf("expected leafs 'd e f', have %q", names(leafs))
	}
	all, _ := NewWalker(a).AllDescendents().Promise()()
	if names(all) != "b d e c f" {
		t.Errorf("expected descendents in document order 'b d e c f', have %q", names(all))
	}
	isB := func(n *Node[string]) bool { return n.Payload == "b" }
	parents, err := NewWalker(a).DescendentsWith(NodeIsLeaf[string]()).AncestorWith(isB).Promise()()
	if err != nil {
		t.Fatal(err)
	}
	if names(parents) != "b b" {
		t.Errorf("expected ancestors 'b b' of leafs, have %q", names(parents))
	}
	ps, _ := NewWalker(a).AllDescendents().Filter(NodeIsLeaf[string]()).Parent().Promise()()
	if names(ps) != "b b c" {
		t.Errorf("expected parents 'b b c' of leafs, have %q", names(ps))
	}
}

func TestWalkerTopDownAndBottomUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.tree")
	defer teardown()
	defer goleak.VerifyNone(t)
	//
	a := buildTree()
	nodes, err := NewWalker(a).TopDown(func(n, _ *Node[string], _ int) error {
		if n.Payload == "b" {
			return SkipChildren
		}
		return nil
	}).Promise()()
	if err != nil {
		t.Fatal(err)
	}
	if names(nodes) != "a b c f" {
		t.Errorf("expected 'a b c f', have %q", names(nodes))
	}
	nodes, err = NewWalker(a).BottomUp(CalcRank[string]).Promise()()
	if err != nil {
		t.Fatal(err)
	}
	if names(nodes) != "d e b f c a" || a.Rank != 6 {
		t.Errorf("expected bottom-up order and rank 6, have %q and %d", names(nodes), a.Rank)
	}
	boom := errors.New("boom")
	_, err = NewWalker(a).AllDescendents().TopDown(func(n, _ *Node[string], _ int) error {
		if n.Payload == "e" {
			return boom
		}
		return nil
	}).Promise()()
	if !errors.Is(err, boom) {
		t.Errorf("expected walk to fail with error, have %v", err)
	}
}

func TestWalkerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.tree")
	defer teardown()
	//
	w := NewWalker[string](nil)
	if _, err := w.AllDescendents().Promise()(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree for nil walker, have %v", err)
	}
	if _, err := NewWalker(buildTree()).Filter(nil).Promise()(); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter for nil predicate, have %v", err)
	}
	w = NewWalker(buildTree())
	future := w.AllDescendents().Promise()
	w.Parent()
	if _, err := future(); err != nil {
		t.Errorf("expected first promise to succeed, have %v", err)
	}
	if _, err := w.Promise()(); !errors.Is(err, ErrNoMoreFiltersAccepted) {
		t.Errorf("expected ErrNoMoreFiltersAccepted, have %v", err)
	}
	nodes, err := NewWalker(NewNode("x")).Promise()()
	if err != nil || names(nodes) != "x" {
		t.Errorf("expected walker without filters to yield its initial node, have %q, %v", names(nodes), err)
	}
}
