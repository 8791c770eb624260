/*
Package dom provides the nodes of the layout tree.

Overview

A Node is created for every element and every text fragment of an HTML
document. It carries the element name, the attributes, the properties set
by style sheets and style attributes, the computed CSS declaration, and
the geometry (position and size) computed by the layout.

Text nodes hold a fragment of the inner text of their parent element, with
whitespace collapsed. Their element name is "#text".

Tree Implementation

Styling and layout of HTML/CSS involves a lot of operations on different trees.
We implement the various trees on top of a general purpose tree type
(package tree), which offers concurrent operations to manipluate
tree nodes.

In a fully object oriented programming language we would subclass this
tree type for every type of tree in use (styled tree, layout tree,
render tree), but in Go we resort to generics: the layout tree is a
tree.Node[*dom.Node].

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'dragonfly.dom'
func tracer() tracing.Trace {
	return tracing.Select("dragonfly.dom")
}
