package dom

import (
	"errors"
	"testing"

	"github.com/npillmayer/dragonfly/dom/style"
	"github.com/npillmayer/dragonfly/dom/style/css"
	"github.com/npillmayer/dragonfly/fonts"
	"github.com/npillmayer/dragonfly/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.dom")
	defer teardown()
	//
	tests := []struct {
		in, out string
	}{
		{"Hello World", "Hello World"},
		{"  Hello \n\t World  ", " Hello World "},
		{"a  b", "a b"},
		{"\n", " "},
		{"", ""},
		{"Grüße,\r\nWelt", "Grüße, Welt"},
	}
	for _, test := range tests {
		assert.Equal(t, test.out, NewText(test.in).Text)
	}
}

func TestNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.dom")
	defer teardown()
	//
	root := Root()
	assert.Equal(t, "html", root.Name)
	assert.False(t, root.IsText())
	assert.True(t, root.Style.Position.IsStatic())
	div := NewElement("DIV")
	div.SetAttr("ID", "main")
	div.SetAttr("class", "wide")
	assert.Equal(t, "div", div.ElementName())
	assert.Equal(t, "main", div.ID)
	v, ok := div.Attr("Class")
	assert.True(t, ok)
	assert.Equal(t, "wide", v)
	assert.Equal(t, "<div id=main>", div.String())
	txt := NewText("x")
	assert.True(t, txt.IsText())
	assert.Equal(t, TextNodeName, txt.ElementName())
	assert.Nil(t, txt.Styles())
}

// fixedWidth measures every glyph with an advance of half the font size.
type fixedWidth struct{}

func (fixedWidth) GlyphMetrics(r rune, px float32, family style.FontFamily) (fonts.GlyphMetrics, error) {
	if r == '?' {
		return fonts.GlyphMetrics{}, errors.New("no glyph")
	}
	return fonts.GlyphMetrics{AdvanceWidth: px / 2, Width: px / 2, Height: px}, nil
}

func (fixedWidth) LineHeight(px float32, family style.FontFamily) (float32, error) {
	return px * 1.25, nil
}

func TestBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.dom")
	defer teardown()
	//
	n := NewText("abcd")
	size := n.Bounds(fixedWidth{})
	assert.Equal(t, float32(32), size[0], "4 glyphs at 16px default size")
	assert.Equal(t, float32(20), size[1])
	assert.Equal(t, size, n.Size)
	n.Style.FontSize = css.FromPx(10)
	size = n.Bounds(fixedWidth{})
	assert.Equal(t, float32(20), size[0])
	n.SetText("ab?")
	size = n.Bounds(fixedWidth{})
	assert.Equal(t, float32(10), size[0], "unmeasurable glyphs are skipped")
	//
	empty := NewElement("p")
	size = empty.Bounds(fixedWidth{})
	assert.Equal(t, float32(0), size[0])
	assert.Equal(t, float32(0), size[1])
}

func TestBoundsWithFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.dom")
	defer teardown()
	//
	m, err := fonts.WithFallbackFont()
	require.NoError(t, err)
	short := NewText("ii").Bounds(m)
	long := NewText("WWWW").Bounds(m)
	assert.Greater(t, short[0], float32(0))
	assert.Greater(t, long[0], 2*short[0])
	assert.Equal(t, short[1], long[1])
}

func TestComputeStylesAndPredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.dom")
	defer teardown()
	//
	html := Root()
	html.SetStyles(style.NewPropertyMap())
	html.Styles().Add("font-size", "20px")
	html.Styles().Add("color", "green")
	p := NewElement("p")
	p.SetAttr("id", "para")
	p.SetStyles(style.NewPropertyMap())
	p.Styles().Add("font-size", "2em")
	root := tree.NewNode(html)
	para := tree.NewNode(p)
	root.AddChild(para)
	para.AddChild(tree.NewNode(NewText("Hello ")))
	span := tree.NewNode(NewElement("span"))
	para.AddChild(span)
	span.AddChild(tree.NewNode(NewText("World")))
	//
	require.NoError(t, ComputeStyles(root))
	assert.Equal(t, float32(20), html.Style.FontSizePx())
	assert.Equal(t, float32(40), p.Style.FontSizePx())
	assert.Equal(t, float32(40), span.Payload.Style.FontSizePx())
	assert.True(t, p.Style.Display.IsBlockLevel())
	assert.False(t, span.Payload.Style.Display.IsBlockLevel())
	//
	assert.Same(t, para, FindByID(root, "para"))
	assert.Nil(t, FindByID(root, "nope"))
	assert.Equal(t, "Hello World", InnerText(root))
	assert.Len(t, tree.Select(root, NodeIsText()), 2)
	assert.Len(t, tree.Select(root, NodeIsBlock()), 2)
	world := tree.Select(root, NodeIsText())[1]
	assert.Same(t, span, tree.AncestorWith(world, NodeIsElement("span")))
	assert.Same(t, para, tree.AncestorWith(world, NodeIsBlock()))
}
