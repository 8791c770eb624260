package css_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/npillmayer/dragonfly"
	"github.com/npillmayer/dragonfly/dom/style"
	"github.com/npillmayer/dragonfly/dom/style/css"
	"github.com/npillmayer/dragonfly/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	name   string
	styles *style.PropertyMap
}

func (n *testNode) Styles() *style.PropertyMap { return n.styles }
func (n *testNode) ElementName() string        { return n.name }

func styled(name string, kv ...string) *tree.Node[*testNode] {
	n := &testNode{name: name}
	if len(kv) > 0 {
		n.styles = style.NewPropertyMap()
		for i := 0; i+1 < len(kv); i += 2 {
			n.styles.AddCompound(kv[i], style.Property(kv[i+1]))
		}
	}
	return tree.NewNode(n)
}

//   html (color: red; font-size: 20px)
//    +-- body (position: relative; top: 10px)
//         +-- p (font-size: 1.5em; background-color: #00f)
//              +-- #text
func styledTree() (html, body, p, text *tree.Node[*testNode]) {
	html = styled("html", "color", "red", "font-size", "20px")
	body = styled("body", "position", "relative", "top", "10px")
	p = styled("p", "font-size", "1.5em", "background-color", "#00f")
	text = styled("#text")
	html.AddChild(body)
	body.AddChild(p)
	p.AddChild(text)
	return
}

func TestCascadedProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.css")
	defer teardown()
	//
	_, body, p, text := styledTree()
	c, err := css.GetProperty(text, "color")
	require.NoError(t, err)
	assert.Equal(t, style.Property("red"), c)
	// position is not inherited
	pos, err := css.GetProperty(p, "position")
	require.NoError(t, err)
	assert.Equal(t, style.Property("static"), pos)
	pos, _ = css.GetProperty(body, "position")
	assert.Equal(t, style.Property("relative"), pos)
	// user-agent default per element
	disp, _ := css.GetProperty(p, "display")
	assert.Equal(t, style.Property("block"), disp)
	disp, _ = css.GetProperty(text, "display")
	assert.Equal(t, style.Property("inline"), disp)
	ff, _ := css.GetProperty(text, "font-family")
	assert.Equal(t, style.Property("serif"), ff)
	_, err = css.GetProperty(text, "no-such-property")
	assert.True(t, errors.Is(err, dragonfly.ErrUnknownStyleProperty))
	_, err = css.GetProperty(p, "no-such-property")
	assert.True(t, errors.Is(err, dragonfly.ErrUnknownStyleProperty), "unknown and not inherited")
	top, err := css.GetProperty(p, "top")
	assert.NoError(t, err)
	assert.Equal(t, style.Property("auto"), top)
}

func TestInheritValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.css")
	defer teardown()
	//
	parent := styled("div", "background-color", "green")
	child := styled("span", "background-color", "inherit")
	parent.AddChild(child)
	bg, err := css.GetProperty(child, "background-color")
	require.NoError(t, err)
	assert.Equal(t, style.Property("green"), bg)
}

func TestComputeDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.css")
	defer teardown()
	//
	html, body, p, text := styledTree()
	root, err := css.ComputeDeclaration(html, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(20), root.FontSizePx())
	assert.True(t, root.Display.IsBlockLevel())
	red, ok := root.Color.Get()
	require.True(t, ok)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, red)
	//
	b, err := css.ComputeDeclaration(body, &root, root.FontSize)
	require.NoError(t, err)
	assert.True(t, b.Position.IsRelative())
	top := css.NormalizeOffsets(b.Position.Offsets())[css.Top]
	du, ok := top.Dim.Resolve(0, 0, 0)
	require.True(t, ok)
	assert.Equal(t, float32(10), css.ToPx(du))
	//
	para, err := css.ComputeDeclaration(p, &b, root.FontSize)
	require.NoError(t, err)
	assert.Equal(t, float32(30), para.FontSizePx())
	assert.True(t, para.Position.IsStatic())
	blue, ok := para.BackgroundColor.Get()
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, blue)
	//
	txt, err := css.ComputeDeclaration(text, &para, root.FontSize)
	require.NoError(t, err)
	assert.Equal(t, float32(30), txt.FontSizePx())
	assert.Equal(t, style.GenericFontFamily(style.Serif), txt.FontFamily)
	assert.False(t, txt.Display.IsBlockLevel())
	assert.Equal(t, red, txt.Color.WithDefault(color.RGBA{}))
	bg, _ := txt.BackgroundColor.Get()
	assert.Equal(t, color.RGBA{}, bg, "text background is transparent")
}

func TestFontSizeKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.css")
	defer teardown()
	//
	parent := css.DefaultDeclaration()
	for kw, want := range map[string]float32{"large": 18, "xx-small": 9, "2rem": 32, "150%": 24} {
		n := styled("span", "font-size", kw)
		decl, err := css.ComputeDeclaration(n, &parent, css.DefaultFontSize)
		require.NoError(t, err)
		assert.Equal(t, want, decl.FontSizePx(), kw)
	}
	n := styled("span", "font-size", "huge")
	decl, _ := css.ComputeDeclaration(n, &parent, css.DefaultFontSize)
	assert.Equal(t, float32(16), decl.FontSizePx(), "illegal font-size is ignored")
}

func TestDisplayModes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.css")
	defer teardown()
	//
	d, err := css.ParseDisplay(" Inline-Block ")
	require.NoError(t, err)
	assert.True(t, d.Contains(css.InlineMode))
	assert.True(t, d.Contains(css.InnerBlockMode))
	assert.False(t, d.IsBlockLevel())
	assert.Equal(t, "InlineMode InnerBlockMode", d.FullString())
	assert.True(t, css.Display("none").IsNone())
	assert.True(t, css.Display("list-item").IsBlockLevel())
	_, err = css.ParseDisplay("ruby-text-container")
	assert.Error(t, err)
	assert.Equal(t, css.BlockMode, css.Display("ruby-text-container"))
	assert.Equal(t, "–", css.NoMode.Symbol())
}
