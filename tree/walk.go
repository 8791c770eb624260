package tree

import "errors"

// SkipChildren may be returned by an Action to stop descending below
// the current node. It is not reported as an error.
var SkipChildren = errors.New("skip children")

// ErrEmptyTree is returned when a walk is started on a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Action is a function type to operate on tree nodes during a walk.
// position is the index of node within the children of parent.
type Action[T comparable] func(node *Node[T], parent *Node[T], position int) error

// Predicate is a function type to match against nodes of a tree.
type Predicate[T comparable] func(node *Node[T]) bool

// Whatever is a predicate matching every node.
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool { return true }
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(n *Node[T]) bool { return n.ChildCount() == 0 }
}

// TopDown traverses a tree starting at (and including) root, in document
// order. Parents are always processed before their children.
//
// If action returns SkipChildren for a node, the branch below this node
// is not visited. Any other error aborts the walk and is returned.
func TopDown[T comparable](root *Node[T], action Action[T]) error {
	if root == nil {
		return ErrEmptyTree
	}
	err := topDown(root, root.Parent(), indexInParent(root), action)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

func topDown[T comparable](node, parent *Node[T], pos int, action Action[T]) error {
	if err := action(node, parent, pos); err != nil {
		return err
	}
	for i, ch := range node.Children() {
		if err := topDown(ch, node, i, action); err != nil && !errors.Is(err, SkipChildren) {
			return err
		}
	}
	return nil
}

// BottomUp traverses a tree starting at root, processing all children of
// a node before the node itself. An error aborts the walk.
func BottomUp[T comparable](root *Node[T], action Action[T]) error {
	if root == nil {
		return ErrEmptyTree
	}
	return bottomUp(root, root.Parent(), indexInParent(root), action)
}

func bottomUp[T comparable](node, parent *Node[T], pos int, action Action[T]) error {
	for i, ch := range node.Children() {
		if err := bottomUp(ch, node, i, action); err != nil {
			return err
		}
	}
	return action(node, parent, pos)
}

// Select returns all nodes of the tree below (and including) root matching
// a predicate, in document order.
func Select[T comparable](root *Node[T], predicate Predicate[T]) []*Node[T] {
	var selection []*Node[T]
	_ = TopDown(root, func(n, _ *Node[T], _ int) error {
		if predicate(n) {
			selection = append(selection, n)
		}
		return nil
	})
	return selection
}

// AncestorWith finds the nearest ancestor of node matching a predicate.
// The search does not include node itself.
func AncestorWith[T comparable](node *Node[T], predicate Predicate[T]) *Node[T] {
	if node == nil {
		return nil
	}
	for anc := node.Parent(); anc != nil; anc = anc.Parent() {
		if predicate(anc) {
			return anc
		}
	}
	return nil
}

// CalcRank is an action for bottom-up processing. It calculates the Rank
// for each node, meaning: the number of nodes in its sub-tree (including itself).
// The root node will hold the number of nodes in the entire tree.
// Leaf nodes will have a rank of 1.
func CalcRank[T comparable](n *Node[T], parent *Node[T], position int) error {
	r := uint32(1)
	for _, ch := range n.Children() {
		r += ch.Rank
	}
	n.Rank = r
	tracer().Debugf("rank of %v is %d", n, r)
	return nil
}

func indexInParent[T comparable](node *Node[T]) int {
	if node.Parent() == nil {
		return 0
	}
	return node.Parent().IndexOfChild(node)
}
