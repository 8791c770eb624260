package dom

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/dragonfly"
	"github.com/npillmayer/dragonfly/dom/style"
	"github.com/npillmayer/dragonfly/dom/style/css"
	"github.com/npillmayer/dragonfly/fonts"
)

// TextNodeName is the element name of text nodes.
const TextNodeName = "#text"

// Node is the building block of the layout tree. Nodes are wrapped into
// tree.Node[*Node] to form a tree.
type Node struct {
	Pos   dragonfly.Pos2    // position in page coordinates
	Size  dragonfly.Vec2    // size, as computed by Bounds or the layout
	Name  string            // lower case element name, "#text" for text nodes
	Attrs map[string]string // attributes of an element
	ID    string            // value of attribute "id"
	Style css.Declaration   // computed style
	// Text is set for text nodes only. It is not the inner text of an
	// element, but a fragment of the inner text of the parent element.
	Text  string
	props *style.PropertyMap
}

// NewElement creates a node for an element.
func NewElement(name string) *Node {
	return &Node{
		Name:  strings.ToLower(name),
		Attrs: make(map[string]string),
		Style: css.DefaultDeclaration(),
	}
}

// NewText creates a text node. Whitespace in text is collapsed, see SetText.
func NewText(text string) *Node {
	n := &Node{Name: TextNodeName, Style: css.DefaultDeclaration()}
	n.SetText(text)
	return n
}

// Root creates the root node of a layout tree, an "html" element.
func Root() *Node {
	return NewElement("html")
}

// IsText returns true for text nodes.
func (n *Node) IsText() bool {
	return n.Name == TextNodeName
}

// SetText sets the text of a text node. Every whitespace character is
// replaced by a space, and runs of whitespace are collapsed to a single space.
func (n *Node) SetText(text string) {
	var b strings.Builder
	b.Grow(len(text))
	space := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	n.Text = b.String()
	tracer().Debugf("set node text: %q", n.Text)
}

// SetAttr sets an attribute. Attribute "id" sets the ID of the node.
func (n *Node) SetAttr(key, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	key = strings.ToLower(key)
	n.Attrs[key] = value
	if key == "id" {
		n.ID = value
	}
}

// Attr returns the value of an attribute.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Attrs[strings.ToLower(key)]
	return v, ok
}

// Styles returns the properties set for the node by style sheets and style
// attributes. May be nil.
func (n *Node) Styles() *style.PropertyMap {
	return n.props
}

// SetStyles sets the style properties of the node.
func (n *Node) SetStyles(pmap *style.PropertyMap) {
	n.props = pmap
}

// ElementName returns the element name. Together with Styles it makes
// *Node a css.StyledNode.
func (n *Node) ElementName() string {
	return n.Name
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsText() {
		return fmt.Sprintf("%q", n.Text)
	}
	if n.ID != "" {
		return fmt.Sprintf("<%s id=%s>", n.Name, n.ID)
	}
	return "<" + n.Name + ">"
}

// Measurer measures glyphs. It is implemented by *fonts.Manager.
type Measurer interface {
	GlyphMetrics(r rune, px float32, family style.FontFamily) (fonts.GlyphMetrics, error)
	LineHeight(px float32, family style.FontFamily) (float32, error)
}

var _ Measurer = (*fonts.Manager)(nil)

// Bounds computes the size of the node's own text, i.e. the sum of the
// advance widths of its glyphs and the line height, in the font family and
// size of the node's style. Nodes without text have size (0, 0).
// The size is stored in n.Size and returned.
func (n *Node) Bounds(m Measurer) dragonfly.Vec2 {
	n.Size = dragonfly.V(0, 0)
	if n.Text == "" || m == nil {
		return n.Size
	}
	px := n.Style.FontSizePx()
	if px <= 0 {
		px = css.ToPx(css.DefaultFontSize)
	}
	family := n.Style.FontFamily
	var width float32
	for _, r := range n.Text {
		metrics, err := m.GlyphMetrics(r, px, family)
		if err != nil {
			tracer().Errorf("measuring %q: %v", r, err)
			continue
		}
		width += metrics.AdvanceWidth
	}
	height, err := m.LineHeight(px, family)
	if err != nil {
		tracer().Errorf("line height: %v", err)
		height = px * 1.2
	}
	n.Size = dragonfly.V(width, height)
	tracer().Debugf("bounds of %s: %v", n, n.Size)
	return n.Size
}
