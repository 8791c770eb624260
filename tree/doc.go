/*
Package tree implements a generic tree type, used for the layout tree.

Nodes carry a payload of type parameter T and maintain a slice of
children. Manipulation of children is concurrency-safe.

Functions TopDown, BottomUp and Select traverse a tree synchronously.
TopDown visits nodes in document order, parents before their children.
BottomUp visits children before their parents.

A Walker chains filters (DescendentsWith, AncestorWith, Filter, TopDown, …)
into a pipeline of concurrent stages, finished by a call to Promise:

	nodes, err := tree.NewWalker(root).DescendentsWith(isText).Promise()()

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'dragonfly.tree'.
func tracer() tracing.Trace {
	return tracing.Select("dragonfly.tree")
}
