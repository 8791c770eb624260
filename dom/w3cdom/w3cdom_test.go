package w3cdom

import (
	"testing"

	"github.com/npillmayer/dragonfly/dom"
	"github.com/npillmayer/dragonfly/dom/style"
	"github.com/npillmayer/dragonfly/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// <html style="color:red"><p id=a class=x>Hello <b>World</b></p><div/></html>
func buildTree() *tree.Node[*dom.Node] {
	h := dom.Root()
	pmap := style.NewPropertyMap()
	pmap.AddCompound("color", "red")
	h.SetStyles(pmap)
	root := tree.NewNode(h)
	p := dom.NewElement("p")
	p.SetAttr("id", "a")
	p.SetAttr("class", "x")
	pn := tree.NewNode(p)
	root.AddChild(pn)
	pn.AddChild(tree.NewNode(dom.NewText("Hello ")))
	b := tree.NewNode(dom.NewElement("b"))
	pn.AddChild(b)
	b.AddChild(tree.NewNode(dom.NewText("World")))
	root.AddChild(tree.NewNode(dom.NewElement("div")))
	return root
}

func TestNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.dom")
	defer teardown()
	//
	assert.Nil(t, FromLayout(nil))
	root := FromLayout(buildTree())
	assert.Equal(t, html.ElementNode, root.NodeType())
	assert.Equal(t, "HTML", root.NodeName())
	assert.Nil(t, root.ParentNode())
	assert.Nil(t, root.NextSibling())
	require.True(t, root.HasChildNodes())
	p := root.FirstChild()
	assert.Equal(t, "P", p.NodeName())
	assert.Equal(t, "DIV", p.NextSibling().NodeName())
	assert.Nil(t, p.NextSibling().NextSibling())
	assert.Equal(t, "HTML", p.ParentNode().NodeName())
	//
	assert.Equal(t, 2, p.ChildNodes().Length())
	assert.Equal(t, 1, p.Children().Length(), "text nodes are not element children")
	assert.Equal(t, `["Hello ", <b>]`, p.ChildNodes().String())
	assert.Nil(t, p.ChildNodes().Item(5))
	text := p.FirstChild()
	assert.Equal(t, html.TextNode, text.NodeType())
	assert.Equal(t, "#text", text.NodeName())
	assert.Equal(t, "Hello ", text.NodeValue())
	content, err := root.TextContent()
	require.NoError(t, err)
	assert.Equal(t, "Hello World", content)
}

func TestAttributesAndStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.dom")
	defer teardown()
	//
	root := FromLayout(buildTree())
	p := root.FirstChild()
	require.True(t, p.HasAttributes())
	attrs := p.Attributes()
	assert.Equal(t, 2, attrs.Length())
	assert.Equal(t, "class", attrs.Item(0).Key())
	assert.Equal(t, "a", attrs.GetNamedItem("ID").Value())
	assert.Nil(t, attrs.GetNamedItem("href"))
	assert.False(t, p.NextSibling().HasAttributes())
	//
	assert.Equal(t, style.Property("red"), p.ComputedStyles().GetPropertyValue("color"),
		"color cascades from the root")
	color, ok := root.ComputedStyles().Styles().Property("color")
	assert.True(t, ok)
	assert.Equal(t, style.Property("red"), color)
	assert.Nil(t, p.ComputedStyles().Styles())
}
