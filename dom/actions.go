package dom

import (
	"strings"

	"github.com/npillmayer/dragonfly/dom/style/css"
	"github.com/npillmayer/dragonfly/tree"
)

// NodeIsText is a predicate to match text-nodes of a layout tree.
// It is intended to be used with tree.Select and tree walkers.
func NodeIsText() tree.Predicate[*Node] {
	return func(n *tree.Node[*Node]) bool {
		return n.Payload != nil && n.Payload.IsText()
	}
}

// NodeIsElement is a predicate to match elements with a given name.
func NodeIsElement(name string) tree.Predicate[*Node] {
	return func(n *tree.Node[*Node]) bool {
		return n.Payload != nil && n.Payload.Name == name
	}
}

// NodeIsBlock is a predicate to match nodes with a block-level display mode.
func NodeIsBlock() tree.Predicate[*Node] {
	return func(n *tree.Node[*Node]) bool {
		return n.Payload != nil && n.Payload.Style.Display.IsBlockLevel()
	}
}

// FindByID returns the first node with a given ID, in document order.
func FindByID(root *tree.Node[*Node], id string) *tree.Node[*Node] {
	hasID := func(n *tree.Node[*Node]) bool {
		return n.Payload != nil && n.Payload.ID == id
	}
	if root == nil {
		return nil
	}
	if hasID(root) {
		return root
	}
	nodes, err := tree.NewWalker(root).DescendentsWith(hasID).Promise()()
	if err != nil || len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// InnerText concatenates the text of all text nodes below n. For a text
// node this is its own text.
func InnerText(n *tree.Node[*Node]) string {
	if n == nil {
		return ""
	}
	if NodeIsText()(n) {
		return n.Payload.Text
	}
	texts, err := tree.NewWalker(n).DescendentsWith(NodeIsText()).Promise()()
	if err != nil {
		tracer().Errorf("collecting text of %s: %v", n.Payload, err)
	}
	var b strings.Builder
	for _, t := range texts {
		b.WriteString(t.Payload.Text)
	}
	return b.String()
}

// ComputeStyles computes the declarations of all nodes of a tree, top-down.
// Computing continues after errors; the first error is returned.
func ComputeStyles(root *tree.Node[*Node]) error {
	var first error
	rootFontSize := css.DefaultFontSize
	future := tree.NewWalker(root).TopDown(func(n, parent *tree.Node[*Node], _ int) error {
		var pdecl *css.Declaration
		if parent != nil {
			pdecl = &parent.Payload.Style
		}
		decl, err := css.ComputeDeclaration(n, pdecl, rootFontSize)
		if err != nil {
			tracer().Errorf("computing style of %s: %v", n.Payload, err)
			if first == nil {
				first = err
			}
		}
		n.Payload.Style = decl
		if n == root {
			rootFontSize = decl.FontSize
		}
		return nil
	}).Promise()
	if _, err := future(); err != nil {
		return err
	}
	return first
}
