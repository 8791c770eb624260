/*
Package style holds raw CSS property values and the data structures to
store them per DOM node.

CSS knows a whole lot of properties. We split them up into property groups
(margins, padding, colors, fonts, …), and a property map holds the groups
styling a node. Values are kept in their textual form. Typed interpretation
of values is done in package css.

The user-agent defaults live in this package, too. They are the values
of last resort when neither a stylesheet nor an ancestor provides a value.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dragonfly.css'.
func tracer() tracing.Trace {
	return tracing.Select("dragonfly.css")
}
