package layout

import (
	"github.com/npillmayer/dragonfly"
	"github.com/npillmayer/dragonfly/dom"
	"github.com/npillmayer/dragonfly/tree"
)

// Flow computes the geometry of the layout tree for a viewport of a given
// width. Text is measured with m. Flow may be called again, e.g. after the
// viewport has been resized.
func (l *Layout) Flow(m dom.Measurer, width float32) {
	if width <= 0 {
		width = DefaultViewportWidth
	}
	f := flow{measurer: m, width: width}
	if isHidden(l.root) {
		hide(l.root)
		return
	}
	f.block(l.root, 0, 0, width)
	tracer().Debugf("page size is %v", l.root.Payload.Size)
}

type flow struct {
	measurer dom.Measurer
	width    float32
}

// line is the state of the current line of an inline formatting context.
type line struct {
	left, x, y float32
	height     float32
}

func (ln *line) empty() bool {
	return ln.x == ln.left
}

func (ln *line) wrap() {
	ln.y += ln.height
	ln.x = ln.left
	ln.height = 0
}

// block lays out a block-level box at (x, y) with a given width. Block-level
// children stack vertically, everything else is collected into lines.
// Returns the height of the box.
func (f *flow) block(n *tree.Node[*dom.Node], x, y, width float32) float32 {
	n.Payload.Pos = dragonfly.V(x, y)
	ln := &line{left: x, x: x, y: y}
	for _, ch := range n.Children() {
		switch {
		case isHidden(ch):
			hide(ch)
		case isBlock(ch):
			if !ln.empty() {
				ln.wrap()
			}
			ln.y += f.block(ch, x, ln.y, width)
		default:
			f.place(ch, ln, x+width)
		}
	}
	if !ln.empty() {
		ln.wrap()
	}
	n.Payload.Size = dragonfly.V(width, ln.y-y)
	return ln.y - y
}

// place puts an inline box onto the current line, wrapping to a new line if
// it does not fit and the line is not empty. Whitespace at the start of a
// line takes no space.
func (f *flow) place(n *tree.Node[*dom.Node], ln *line, right float32) {
	blank := n.Payload.IsText() && isBlank(n.Payload.Text)
	if blank && ln.empty() {
		collapse(n, ln)
		return
	}
	size := f.inline(n, ln.x, ln.y)
	if ln.x+size[0] > right && !ln.empty() {
		ln.wrap()
		if blank {
			collapse(n, ln)
			return
		}
		size = f.inline(n, ln.x, ln.y)
	}
	ln.x += size[0]
	if size[1] > ln.height {
		ln.height = size[1]
	}
}

// collapse puts a box of size zero at the current position of a line.
func collapse(n *tree.Node[*dom.Node], ln *line) {
	n.Payload.Pos = dragonfly.V(ln.x, ln.y)
	n.Payload.Size = dragonfly.V(0, 0)
}

// inline lays out an inline box and its children on a single line, starting
// at (x, y). Returns the size of the box.
func (f *flow) inline(n *tree.Node[*dom.Node], x, y float32) dragonfly.Vec2 {
	n.Payload.Pos = dragonfly.V(x, y)
	if n.Payload.IsText() {
		return n.Payload.Bounds(f.measurer)
	}
	var w, h float32
	for _, ch := range n.Children() {
		if isHidden(ch) {
			hide(ch)
			continue
		}
		size := f.inline(ch, x+w, y)
		w += size[0]
		if size[1] > h {
			h = size[1]
		}
	}
	n.Payload.Size = dragonfly.V(w, h)
	return n.Payload.Size
}

// hide removes the geometry of a sub-tree.
func hide(n *tree.Node[*dom.Node]) {
	_ = tree.TopDown(n, func(n, _ *tree.Node[*dom.Node], _ int) error {
		n.Payload.Pos = dragonfly.V(0, 0)
		n.Payload.Size = dragonfly.V(0, 0)
		return nil
	})
}

func isHidden(n *tree.Node[*dom.Node]) bool {
	return !n.Payload.IsText() && n.Payload.Style.Display.IsNone()
}

func isBlock(n *tree.Node[*dom.Node]) bool {
	return !n.Payload.IsText() && n.Payload.Style.Display.IsBlockLevel()
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' {
			return false
		}
	}
	return true
}
