package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/dragonfly/dom"
	"github.com/npillmayer/dragonfly/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCSSCommand(t *testing.T) {
	out, err := execute(t, "css", "--default")
	require.NoError(t, err)
	assert.NotContains(t, out, "DfTextColor")
	assert.Contains(t, out, "(default-css)")
	//
	out, err = execute(t, "css")
	require.NoError(t, err)
	assert.Contains(t, out, "DfTextColor", "keywords are kept in normal mode")
	//
	_, err = execute(t, "css", filepath.Join(t.TempDir(), "none.css"))
	assert.Error(t, err)
}

func TestLoadCommand(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(page, []byte(`<!DOCTYPE html>
<html><head><link rel="stylesheet" href="page.css"></head>
<body><p id="x">Hello <b>World</b></p></body></html>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.css"),
		[]byte("p { color: green }"), 0o644))
	dot := filepath.Join(dir, "page.dot")
	out, err := execute(t, "load", "--timers=false", "--dot", dot, page)
	require.NoError(t, err)
	assert.Contains(t, out, "<p id=x>")
	assert.Contains(t, out, `"World"`)
	assert.NotContains(t, out, "pull ")
	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph"))
	//
	_, err = execute(t, "load", "--no-local-fs", page)
	assert.Error(t, err)
	_, err = execute(t, "load")
	assert.Error(t, err, "missing argument")
}

func TestWriteDot(t *testing.T) {
	root := tree.NewNode(dom.Root())
	root.AddChild(tree.NewNode(dom.NewText("x")))
	path := filepath.Join(t.TempDir(), "tree.dot")
	require.NoError(t, writeDot(path, root))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph"))
	assert.Error(t, writeDot(filepath.Join(t.TempDir(), "no", "such", "dir.dot"), root))
	if _, err := os.Stat("/dev/full"); err == nil {
		assert.Error(t, writeDot("/dev/full", root), "write errors are reported")
	}
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "https://example.com", pageURL("https://example.com"))
	assert.Equal(t, "no/such/file.html", pageURL("no/such/file.html"))
	f := filepath.Join(t.TempDir(), "x.html")
	require.NoError(t, os.WriteFile(f, nil, 0o644))
	assert.True(t, strings.HasPrefix(pageURL(f), "file:///"))
}
