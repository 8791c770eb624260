package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/dragonfly/dom"
	"github.com/npillmayer/dragonfly/dom/style"
	"github.com/npillmayer/dragonfly/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTree() *tree.Node[*dom.Node] {
	html := dom.Root()
	pmap := style.NewPropertyMap()
	pmap.Add("color", "red")
	pmap.Add("font-size", "20px")
	html.SetStyles(pmap)
	root := tree.NewNode(html)
	p := tree.NewNode(dom.NewElement("p"))
	p.AddChild(tree.NewNode(dom.NewText("Hello\tlong World")))
	root.AddChild(p)
	return root
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.dom")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := ToGraphViz(buildTree(), &buf, nil); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	for _, expected := range []string{
		"digraph g {",
		`node00001	[ label="html"`,
		"node00001 -> node00002",
		"node00002 -> node00003",
		`<font color="white">Color</font>`,
		`<td align="right">font-size:</td><td>20px</td>`,
		`"\"Hello␣long...\""`,
	} {
		if !strings.Contains(dot, expected) {
			t.Errorf("expected DOT output to contain %q", expected)
		}
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected DOT output to be terminated")
	}
}

func TestTreeOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.dom")
	defer teardown()
	//
	root := buildTree()
	root.Payload.Size[0] = 800
	s := ToTree(root).String()
	t.Logf("\n%s", s)
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines of output, have %d", len(lines))
	}
	if !strings.Contains(lines[0], "<html> @(0,0) 800x0") {
		t.Errorf("unexpected root line %q", lines[0])
	}
	if !strings.Contains(lines[2], `"Hello long World"`) {
		t.Errorf("unexpected text line %q", lines[2])
	}
}
