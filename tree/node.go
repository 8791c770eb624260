package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"
)

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]         // parent node of this node
	children childrenSlice[T] // mutex-protected slice of children nodes
	Payload  T                // nodes carry a payload of arbitrary type
	Rank     uint32           // number of nodes in the sub-tree, set by CalcRank
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node and connects it to this node as its parent.
// It returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		node.children.insertAt(-1, ch, node)
	}
	return node
}

// InsertChildAt inserts a child node at position i, shifting children at
// later positions. If i is beyond the end, the child is appended.
// It returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch != nil {
		node.children.insertAt(i, ch, node)
	}
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent and returns it.
func (node *Node[T]) Isolate() *Node[T] {
	if node != nil && node.parent != nil {
		node.parent.children.remove(node)
	}
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	return node.children.length()
}

// Child returns the child at position n.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	ch := node.children.child(n)
	return ch, ch != nil
}

// Children returns a copy of the children of a node.
func (node *Node[T]) Children() []*Node[T] {
	return node.children.asSlice()
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.Children() {
		if ch == child {
			return i
		}
	}
	return -1
}

// Depth returns the number of ancestors of a node.
func (node *Node[T]) Depth() int {
	d := 0
	for p := node.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// --- Slices of concurrency-safe sets of children ----------------------

type childrenSlice[T comparable] struct {
	sync.RWMutex
	slice []*Node[T]
}

func (chs *childrenSlice[T]) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

// insertAt with i < 0 appends.
func (chs *childrenSlice[T]) insertAt(i int, child *Node[T], parent *Node[T]) {
	chs.Lock()
	defer chs.Unlock()
	if i < 0 || i >= len(chs.slice) {
		chs.slice = append(chs.slice, child)
	} else {
		chs.slice = append(chs.slice, nil)
		copy(chs.slice[i+1:], chs.slice[i:])
		chs.slice[i] = child
	}
	child.parent = parent
}

func (chs *childrenSlice[T]) remove(node *Node[T]) {
	chs.Lock()
	defer chs.Unlock()
	for i, ch := range chs.slice {
		if ch == node {
			chs.slice = append(chs.slice[:i], chs.slice[i+1:]...)
			node.parent = nil
			return
		}
	}
}

func (chs *childrenSlice[T]) child(n int) *Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice[T]) asSlice() []*Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node[T], len(chs.slice))
	copy(children, chs.slice)
	return children
}
