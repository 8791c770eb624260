/*
Package w3cdom provides a W3C-style Document Object Model view of a
layout tree.

See also https://www.w3schools.com/XML/dom_intro.asp

The view is read-only and reflects the layout tree at the time of access.
Attribute order follows the attribute keys in lexical order.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"sort"
	"strings"

	"github.com/npillmayer/dragonfly/dom"
	"github.com/npillmayer/dragonfly/dom/style"
	"github.com/npillmayer/dragonfly/dom/style/css"
	"github.com/npillmayer/dragonfly/tree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'dragonfly.dom'.
func tracer() tracing.Trace {
	return tracing.Select("dragonfly.dom")
}

// Node represents W3C-type Node
type Node interface {
	NodeType() html.NodeType        // type of the underlying HTML node (ElementNode or TextNode)
	NodeName() string               // node name output depends on the node's type
	NodeValue() string              // node value output depends on the node's type
	HasAttributes() bool            // check for existence of attributes
	ParentNode() Node               // get the parent node, if any
	HasChildNodes() bool            // check for existende of sub-nodes
	ChildNodes() NodeList           // get a list of all children-nodes
	Children() NodeList             // get a list of element child-nodes
	FirstChild() Node               // get the first children-node
	NextSibling() Node              // get the Node's next sibling or nil if last
	Attributes() NamedNodeMap       // get all attributes of a node
	ComputedStyles() ComputedStyles // get computed CSS styles
	TextContent() (string, error)   // get text from node and all descendents
}

// NodeList represents W3C-type NodeList
type NodeList interface {
	Length() int
	Item(int) Node
	String() string
}

// Attr represents W3C-type Attr
type Attr interface {
	Namespace() string
	Key() string
	Value() string
}

// NamedNodeMap represents w3C-type NamedNodeMap
type NamedNodeMap interface {
	Length() int
	Item(int) Attr
	GetNamedItem(string) Attr
}

// ComputedStyles represents a CSS style
type ComputedStyles interface {
	GetPropertyValue(string) style.Property
	Styles() *style.PropertyMap
}

// FromLayout returns a DOM view of a layout tree node. Returns nil for a nil
// node.
func FromLayout(n *tree.Node[*dom.Node]) Node {
	if n == nil || n.Payload == nil {
		return nil
	}
	return &domNode{n}
}

type domNode struct {
	n *tree.Node[*dom.Node]
}

var _ Node = &domNode{}

func (d *domNode) NodeType() html.NodeType {
	if d.n.Payload.IsText() {
		return html.TextNode
	}
	return html.ElementNode
}

// NodeName is the upper-case element name for elements and "#text" for text.
func (d *domNode) NodeName() string {
	if d.n.Payload.IsText() {
		return dom.TextNodeName
	}
	return strings.ToUpper(d.n.Payload.Name)
}

// NodeValue is the text of a text node and empty for elements.
func (d *domNode) NodeValue() string {
	return d.n.Payload.Text
}

func (d *domNode) HasAttributes() bool {
	return len(d.n.Payload.Attrs) > 0
}

func (d *domNode) ParentNode() Node {
	return FromLayout(d.n.Parent())
}

func (d *domNode) HasChildNodes() bool {
	return d.n.ChildCount() > 0
}

func (d *domNode) ChildNodes() NodeList {
	return nodeList(d.n.Children())
}

func (d *domNode) Children() NodeList {
	var elements nodeList
	for _, ch := range d.n.Children() {
		if !ch.Payload.IsText() {
			elements = append(elements, ch)
		}
	}
	return elements
}

func (d *domNode) FirstChild() Node {
	ch, ok := d.n.Child(0)
	if !ok {
		return nil
	}
	return FromLayout(ch)
}

func (d *domNode) NextSibling() Node {
	parent := d.n.Parent()
	if parent == nil {
		return nil
	}
	ch, ok := parent.Child(parent.IndexOfChild(d.n) + 1)
	if !ok {
		return nil
	}
	return FromLayout(ch)
}

func (d *domNode) Attributes() NamedNodeMap {
	attrs := make(attrMap, 0, len(d.n.Payload.Attrs))
	for k, v := range d.n.Payload.Attrs {
		attrs = append(attrs, attr{key: k, value: v})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].key < attrs[j].key })
	return attrs
}

func (d *domNode) ComputedStyles() ComputedStyles {
	return computedStyles{d.n}
}

// TextContent concatenates the text of all text nodes below the node.
func (d *domNode) TextContent() (string, error) {
	return dom.InnerText(d.n), nil
}

func (d *domNode) String() string {
	return d.n.Payload.String()
}

// --- Node lists ------------------------------------------------------------

type nodeList []*tree.Node[*dom.Node]

func (nl nodeList) Length() int {
	return len(nl)
}

func (nl nodeList) Item(i int) Node {
	if i < 0 || i >= len(nl) {
		return nil
	}
	return FromLayout(nl[i])
}

func (nl nodeList) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, n := range nl {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n.Payload.String())
	}
	b.WriteString("]")
	return b.String()
}

// --- Attributes ------------------------------------------------------------

type attr struct {
	key, value string
}

func (a attr) Namespace() string { return "" }
func (a attr) Key() string       { return a.key }
func (a attr) Value() string     { return a.value }

type attrMap []attr

func (m attrMap) Length() int {
	return len(m)
}

func (m attrMap) Item(i int) Attr {
	if i < 0 || i >= len(m) {
		return nil
	}
	return m[i]
}

func (m attrMap) GetNamedItem(key string) Attr {
	key = strings.ToLower(key)
	for _, a := range m {
		if a.key == key {
			return a
		}
	}
	return nil
}

// --- Styles ----------------------------------------------------------------

type computedStyles struct {
	n *tree.Node[*dom.Node]
}

// GetPropertyValue returns the value of a property, as found by the cascade.
// Properties which cannot be found yield style.NullStyle.
func (cs computedStyles) GetPropertyValue(key string) style.Property {
	p, err := css.GetProperty(cs.n, key)
	if err != nil {
		tracer().Debugf("property %q of %s: %v", key, cs.n.Payload, err)
		return style.NullStyle
	}
	return p
}

func (cs computedStyles) Styles() *style.PropertyMap {
	return cs.n.Payload.Styles()
}
