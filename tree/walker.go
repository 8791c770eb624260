package tree

import (
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidFilter is flagged if a pipeline filter step is defunct, e.g. if
// a nil predicate is passed to a Walker.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrNoMoreFiltersAccepted is flagged if a client already called Promise(),
// but tried to re-use a walker with another filter.
var ErrNoMoreFiltersAccepted = errors.New("in promise mode; will not accept new filters; use a new walker")

// stageBuffer is the capacity of the channels between pipeline stages.
const stageBuffer = 16

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A typical usage of a Walker looks like this:
//
//	w := NewWalker(node)
//	future := w.DescendentsWith(isText).AncestorWith(isBlock).Promise()
//	nodes, err := future()
//
// Every call of a filter method appends a stage to a pipeline. When
// Promise is called, every stage is started in a goroutine of its own,
// connected to its neighbours by channels. A stage processes its input
// nodes one at a time, therefore the resulting nodes are in document
// order for document-ordered input.
//
// Clients must call Promise() as the final link of the expression chain
// and call the returned future, even if they do not expect a non-empty
// result, to learn about errors.
type Walker[T comparable] struct {
	mu        sync.Mutex
	initial   *Node[T]
	filters   []filter[T]
	err       error
	promising bool
}

// filter is a pipeline stage. It is called for every input node and
// forwards nodes to the next stage with push.
type filter[T comparable] func(node *Node[T], push func(*Node[T])) error

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first filter will have this initial node as its only input.
//
// If initial is nil, NewWalker returns a nil Walker. Filters on a nil
// Walker are no-ops and its promise yields ErrEmptyTree.
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree walker, initial node = %v", initial)
	return &Walker[T]{initial: initial}
}

func (w *Walker[T]) appendFilter(f filter[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case w.promising:
		w.err = ErrNoMoreFiltersAccepted
	case f == nil:
		if w.err == nil {
			w.err = ErrInvalidFilter
		}
	default:
		w.filters = append(w.filters, f)
	}
	return w
}

// Promise is a future synchronisation point. It starts the pipeline and
// returns a function which blocks until all stages have finished and then
// returns the resulting nodes and the first error which occurred.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	w.mu.Lock()
	err, filters := w.err, w.filters
	if w.promising && err == nil {
		err = ErrNoMoreFiltersAccepted
	}
	w.promising = true
	w.mu.Unlock()
	if err != nil {
		return func() ([]*Node[T], error) {
			return nil, err
		}
	}
	done := make(chan struct{})
	var selection []*Node[T]
	var lasterror error
	go func() {
		defer close(done)
		selection, lasterror = runPipeline(w.initial, filters)
	}()
	return func() ([]*Node[T], error) {
		<-done
		return selection, lasterror
	}
}

func runPipeline[T comparable](initial *Node[T], filters []filter[T]) ([]*Node[T], error) {
	var g errgroup.Group
	var failed atomic.Bool
	in := make(chan *Node[T], 1)
	in <- initial
	close(in)
	for _, f := range filters {
		out := make(chan *Node[T], stageBuffer)
		g.Go(stage(f, in, out, &failed))
		in = out
	}
	var selection []*Node[T]
	for n := range in {
		selection = append(selection, n)
	}
	return selection, g.Wait()
}

// stage runs a filter on every node of in. After an error in any stage,
// the remaining input is drained without further processing.
func stage[T comparable](f filter[T], in <-chan *Node[T], out chan<- *Node[T],
	failed *atomic.Bool) func() error {
	//
	return func() error {
		defer close(out)
		push := func(n *Node[T]) {
			if !failed.Load() {
				out <- n
			}
		}
		var first error
		for n := range in {
			if failed.Load() {
				continue
			}
			if err := f(n, push); err != nil {
				tracer().Debugf("tree walker stage failed at %v: %v", n, err)
				failed.Store(true)
				first = err
			}
		}
		return first
	}
}

// Parent forwards the parent of every node. Root nodes produce no result.
func (w *Walker[T]) Parent() *Walker[T] {
	return w.appendFilter(func(node *Node[T], push func(*Node[T])) error {
		if p := node.Parent(); p != nil {
			push(p)
		}
		return nil
	})
}

// AncestorWith finds the nearest ancestor matching a predicate.
// The search does not include the start node.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if predicate == nil {
		return w.appendFilter(nil)
	}
	return w.appendFilter(func(node *Node[T], push func(*Node[T])) error {
		if anc := AncestorWith(node, predicate); anc != nil {
			push(anc)
		}
		return nil
	})
}

// DescendentsWith finds all descendents matching a predicate, in document
// order. The search does not include the start node.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if predicate == nil {
		return w.appendFilter(nil)
	}
	return w.appendFilter(func(node *Node[T], push func(*Node[T])) error {
		for _, ch := range node.Children() {
			for _, n := range Select(ch, predicate) {
				push(n)
			}
		}
		return nil
	})
}

// AllDescendents traverses all descendents.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter forwards the nodes of the selection which match a predicate.
func (w *Walker[T]) Filter(predicate Predicate[T]) *Walker[T] {
	if predicate == nil {
		return w.appendFilter(nil)
	}
	return w.appendFilter(func(node *Node[T], push func(*Node[T])) error {
		if predicate(node) {
			push(node)
		}
		return nil
	})
}

// TopDown traverses the sub-trees of all nodes of the selection, starting
// at (and including) each node. Parents are processed before their
// children. Every node for which action succeeds is forwarded.
//
// An action may return SkipChildren to stop descending below a node. Any
// other error aborts the walk.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if action == nil {
		return w.appendFilter(nil)
	}
	return w.appendFilter(func(node *Node[T], push func(*Node[T])) error {
		return TopDown(node, func(n, parent *Node[T], position int) error {
			err := action(n, parent, position)
			if err == nil || errors.Is(err, SkipChildren) {
				push(n)
			}
			return err
		})
	})
}

// BottomUp traverses the sub-trees of all nodes of the selection,
// processing all children of a node before the node itself. Every node for
// which action succeeds is forwarded. An error aborts the walk.
func (w *Walker[T]) BottomUp(action Action[T]) *Walker[T] {
	if action == nil {
		return w.appendFilter(nil)
	}
	return w.appendFilter(func(node *Node[T], push func(*Node[T])) error {
		return BottomUp(node, func(n, parent *Node[T], position int) error {
			if err := action(n, parent, position); err != nil {
				return err
			}
			push(n)
			return nil
		})
	})
}
