/*
Package domdbg implements helpers to debug a layout tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/dragonfly/dom"
	"github.com/npillmayer/dragonfly/dom/style"
	"github.com/npillmayer/dragonfly/tree"
	"github.com/xlab/treeprint"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGColor,
	style.PGFont,
	style.PGDisplay,
}

// ToGraphViz outputs a diagram for a layout tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree, a Writer, and an optional list of style parameter groups.
// The diagram will include all styles belonging to one of the
// parameter groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Color
//     - Font
//     - Display
//
func ToGraphViz(root *tree.Node[*dom.Node], w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*tree.Node[*dom.Node]]string, 1024)
	if err = nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a layout tree and a testing.T, it will
// create a Graphiviz image of the tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *tree.Node[*dom.Node], t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *dom.Node
	Name string
}

func nodes(n *tree.Node[*dom.Node], w io.Writer, dict map[*tree.Node[*dom.Node]]string,
	gparams *graphParamsType) error {
	//
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := domEdge(n, ch, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func domNode(n *tree.Node[*dom.Node], w io.Writer, dict map[*tree.Node[*dom.Node]]string,
	gparams *graphParamsType) error {
	//
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n.Payload, name}); err != nil {
		return err
	}
	return domStyles(n, name, w, gparams)
}

func domStyles(n *tree.Node[*dom.Node], name string, w io.Writer, gparams *graphParamsType) error {
	pmap := n.Payload.Styles()
	var prev *style.PropertyGroup
	for _, s := range gparams.StyleGroups {
		pg := pmap.Group(s)
		if pg == nil {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = gparams.PgedgeTmpl.Execute(w, pgedge{name, pg})
		} else {
			err = gparams.PgpgTmpl.Execute(w, []*style.PropertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

type edge struct {
	N1, N2 node
}

func domEdge(n1, n2 *tree.Node[*dom.Node], w io.Writer, dict map[*tree.Node[*dom.Node]]string,
	gparams *graphParamsType) error {
	//
	e := edge{node{n1.Payload, dict[n1]}, node{n2.Payload, dict[n2]}}
	return gparams.EdgeTmpl.Execute(w, e)
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func shortText(n *dom.Node) string {
	text := []rune(n.Text)
	s := "\"\\\""
	if len(text) > 10 {
		s += string(text[:10]) + "...\\\"\""
	} else {
		s += string(text) + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Text output ------------------------------------------------------

// ToTree returns a printable tree of the nodes of a layout tree, with
// their display mode symbol, position and size.
func ToTree(root *tree.Node[*dom.Node]) treeprint.Tree {
	t := treeprint.NewWithRoot(label(root.Payload))
	var add func(treeprint.Tree, *tree.Node[*dom.Node])
	add = func(branch treeprint.Tree, n *tree.Node[*dom.Node]) {
		for _, ch := range n.Children() {
			if ch.ChildCount() == 0 {
				branch.AddNode(label(ch.Payload))
				continue
			}
			add(branch.AddBranch(label(ch.Payload)), ch)
		}
	}
	add(t, root)
	return t
}

func label(n *dom.Node) string {
	return fmt.Sprintf("%s %s @(%g,%g) %gx%g", n.Style.Display.Symbol(), n,
		n.Pos[0], n.Pos[1], n.Size[0], n.Size[1])
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .N.IsText }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.Name }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
