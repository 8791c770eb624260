/*
Package layout builds the layout tree of an HTML document.

The layout tree is a tree of dom.Node, rooted at an "html" node. It is
built from a document parsed by golang.org/x/net/html, styled with the
user-agent style sheet, style sheets of the document and style attributes,
and finally flowed into page geometry.

Geometry follows a simple flow model: block-level boxes stack vertically,
inline boxes and text advance horizontally on the current line and wrap at
the viewport width. Offsets of relatively positioned boxes are not applied.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/dragonfly/assets"
	"github.com/npillmayer/dragonfly/dom"
	"github.com/npillmayer/dragonfly/dom/style/cssom"
	"github.com/npillmayer/dragonfly/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/dragonfly/dom/w3cdom"
	"github.com/npillmayer/dragonfly/tree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'dragonfly.layout'.
func tracer() tracing.Trace {
	return tracing.Select("dragonfly.layout")
}

// DefaultViewportWidth is the width in pixels used by Compute.
const DefaultViewportWidth float32 = 800

// Layout is a layout tree together with the style sheets used to style it.
type Layout struct {
	root  *tree.Node[*dom.Node]
	cssom *cssom.CSSOM
}

var uaSheet struct {
	once  sync.Once
	sheet *douceuradapter.CSSStyles
}

// UserAgentStyleSheet returns the embedded default style sheet, parsed with
// browser color keywords replaced. It is parsed once.
func UserAgentStyleSheet() cssom.StyleSheet {
	uaSheet.once.Do(func() {
		sheet, err := douceuradapter.Parse(assets.DefaultCSS(), cssom.DefaultCSS)
		if err != nil {
			tracer().Errorf("default style sheet: %v", err)
		}
		uaSheet.sheet = sheet
	})
	return uaSheet.sheet
}

// Default returns an empty layout: a single "html" root node, styled by the
// user-agent style sheet only.
func Default() *Layout {
	l := &Layout{
		root:  tree.NewNode(dom.Root()),
		cssom: cssom.NewCSSOM(),
	}
	n := l.cssom.AddStyleSheet(UserAgentStyleSheet(), cssom.OriginUserAgent)
	tracer().Debugf("user-agent style sheet has %d rules", n)
	return l
}

// Compute builds the layout tree for a parsed HTML document. Style sheets in
// sheets (usually linked from the document) are applied as author style
// sheets, followed by the <style> elements of the document.
// Text is measured with m, which may be nil for a layout without text
// geometry.
func Compute(doc *html.Node, m dom.Measurer, sheets ...cssom.StyleSheet) (*Layout, error) {
	if doc == nil {
		return nil, fmt.Errorf("layout: no document")
	}
	l := Default()
	for _, sheet := range sheets {
		l.cssom.AddStyleSheet(sheet, cssom.OriginAuthor)
	}
	for _, sheet := range douceuradapter.ExtractStyleElements(doc) {
		l.cssom.AddStyleSheet(sheet, cssom.OriginAuthor)
	}
	l.build(doc, l.root, 0)
	err := dom.ComputeStyles(l.root)
	l.Flow(m, DefaultViewportWidth)
	return l, err
}

// build walks the HTML tree below h and appends layout nodes to parent.
func (l *Layout) build(h *html.Node, parent *tree.Node[*dom.Node], depth int) {
	switch h.Type {
	case html.DocumentNode:
	case html.ElementNode:
		tracer().Debugf("compute node %s, recursion depth %d", h.Data, depth)
		parent = l.addElement(h, parent)
	case html.TextNode:
		tracer().Debugf("adding text to parent node %s", parent.Payload)
		parent.AddChild(tree.NewNode(dom.NewText(h.Data)))
		return
	default:
		tracer().Infof("unhandled html node type %d (%q)", h.Type, shorten(h.Data))
		return
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		l.build(c, parent, depth+1)
	}
}

// addElement creates a node for an element. The "html" element replaces the
// root node. Returns the node to append children to.
func (l *Layout) addElement(h *html.Node, parent *tree.Node[*dom.Node]) *tree.Node[*dom.Node] {
	node := dom.NewElement(h.Data)
	var inline string
	for _, attr := range h.Attr {
		node.SetAttr(attr.Key, attr.Val)
		if strings.EqualFold(attr.Key, "style") {
			inline = attr.Val
		}
	}
	node.SetStyles(l.cssom.Style(h, inline))
	if node.Name == "html" {
		tracer().Debugf("update root node")
		l.root.Payload = node
		return l.root
	}
	child := tree.NewNode(node)
	parent.AddChild(child)
	return child
}

// Root returns the root node of the layout tree.
func (l *Layout) Root() *tree.Node[*dom.Node] {
	return l.root
}

// DOM returns a W3C-style DOM view of the layout tree, starting at the root.
func (l *Layout) DOM() w3cdom.Node {
	return w3cdom.FromLayout(l.root)
}

// CSSOM returns the style sheets of the layout.
func (l *Layout) CSSOM() *cssom.CSSOM {
	return l.cssom
}

// Nodes returns all nodes of the layout tree in document order.
func (l *Layout) Nodes() []*dom.Node {
	nodes, err := tree.NewWalker(l.root).TopDown(func(*tree.Node[*dom.Node], *tree.Node[*dom.Node], int) error {
		return nil
	}).Promise()()
	if err != nil {
		tracer().Errorf("collecting layout nodes: %v", err)
	}
	payloads := make([]*dom.Node, len(nodes))
	for i, n := range nodes {
		payloads[i] = n.Payload
	}
	return payloads
}

func shorten(s string) string {
	if r := []rune(s); len(r) > 20 {
		return string(r[:20]) + "…"
	}
	return s
}
