package engine

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/dragonfly"
	"github.com/npillmayer/dragonfly/dom"
	"github.com/npillmayer/dragonfly/fonts"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"golang.org/x/net/html"
)

const page = `<!DOCTYPE html>
<html><head>
<link rel="stylesheet" href="css/site.css">
<link rel="stylesheet" href="/missing.css">
<link rel="icon" href="/favicon.ico">
</head><body><p id="greeting">Hello</p></body></html>`

func newSite(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/index.html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	})
	mux.HandleFunc("/css/site.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css")
		w.Write([]byte("#greeting { color: red; font-size: 20px }"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNew(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.engine")
	defer teardown()
	//
	for _, bad := range []string{"", "index.html", "http://[::1", "%zz"} {
		_, err := New(bad, nil)
		assert.True(t, errors.Is(err, dragonfly.ErrURLParse), "%q should be rejected", bad)
	}
	wc, err := New(" https://example.com/a/b.html ", nil)
	require.NoError(t, err)
	assert.Equal(t, "example.com", wc.URL().Host)
	assert.Nil(t, wc.Document())
	assert.NotNil(t, wc.Layout(), "default layout before load")
	assert.True(t, errors.Is(wc.RecomputeLayout(), ErrNotLoaded))
	_, err = New("https://example.com", nil, MaxCacheSize(-1))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.engine")
	defer teardown()
	//
	srv := newSite(t)
	fm, err := fonts.WithFallbackFont()
	require.NoError(t, err)
	wc, err := New(srv.URL+"/index.html", fm, HTTPClient(srv.Client()))
	require.NoError(t, err)
	require.NoError(t, wc.Load(context.Background()))
	require.NotNil(t, wc.Document())
	assert.Equal(t, NoQuirks, wc.Quirks())
	assert.Len(t, wc.sheets, 1, "missing style sheet is skipped")
	//
	p := dom.FindByID(wc.Layout().Root(), "greeting")
	require.NotNil(t, p)
	c, ok := p.Payload.Style.Color.Get()
	require.True(t, ok)
	assert.Equal(t, colornames.Red, c)
	assert.InDelta(t, 20, p.Payload.Style.FontSizePx(), 0.01)
	assert.Equal(t, "Hello", dom.InnerText(p))
	assert.Greater(t, p.Payload.Size[1], float32(0))
	//
	assert.Greater(t, wc.Timers.Total, time.Duration(0))
	assert.GreaterOrEqual(t, wc.Timers.Total, wc.Timers.Pull+wc.Timers.Parse)
	assert.LessOrEqual(t, wc.Timers.Pull, wc.Timers.Total)
	first := wc.Layout()
	require.NoError(t, wc.RecomputeLayout())
	assert.NotSame(t, first, wc.Layout())
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.engine")
	defer teardown()
	//
	srv := newSite(t)
	wc, err := New(srv.URL+"/nothing-here.html", nil, HTTPClient(srv.Client()))
	require.NoError(t, err)
	err = wc.Load(context.Background())
	assert.True(t, errors.Is(err, dragonfly.ErrHTTP))
	assert.Nil(t, wc.Document())
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	wc, err = New(srv.URL+"/index.html", nil, HTTPClient(srv.Client()))
	require.NoError(t, err)
	assert.Error(t, wc.Load(ctx))
}

func TestOptionsFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dragonfly.engine")
	defer teardown()
	//
	conf := testconfig.Conf{}
	conf.Set(KeyMaxCacheSize, "1024")
	conf.Set(KeyAllowLocalFS, "false")
	conf.Set(KeyTimeout, "2s")
	conf.Set(KeySystemFonts, "true")
	opts, err := OptionsFromConfig(conf)
	require.NoError(t, err)
	assert.Len(t, opts, 4)
	wc, err := New("https://example.com", nil, opts...)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), wc.Puller().MaxCacheSize)
	assert.False(t, wc.Puller().AllowLocalFS)
	assert.Equal(t, 2*time.Second, wc.Puller().Timeout)
	assert.True(t, wc.systemFonts)
	//
	opts, err = OptionsFromConfig(testconfig.Conf{})
	require.NoError(t, err)
	wc, err = New("https://example.com", nil, opts...)
	require.NoError(t, err)
	assert.True(t, wc.Puller().AllowLocalFS, "default")
	//
	conf = testconfig.Conf{}
	conf.Set(KeyTimeout, "soon")
	_, err = OptionsFromConfig(conf)
	assert.Error(t, err)
}

func TestQuirksMode(t *testing.T) {
	tests := []struct {
		doc  string
		mode QuirksMode
	}{
		{`<!DOCTYPE html><p>x`, NoQuirks},
		{`<p>no doctype`, Quirks},
		{`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd"><p>x`, NoQuirks},
		{`<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd"><p>x`, LimitedQuirks},
		{`<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN"><p>x`, Quirks},
		{`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd"><p>x`, LimitedQuirks},
		{`<!DOCTYPE HTML PUBLIC "-//IETF//DTD HTML 2.0//EN"><p>x`, Quirks},
		{`<!DOCTYPE svg><p>x`, Quirks},
	}
	for _, test := range tests {
		doc, err := html.Parse(strings.NewReader(test.doc))
		require.NoError(t, err)
		assert.Equal(t, test.mode, QuirksModeOf(doc), test.doc)
	}
	assert.Equal(t, "limited-quirks", LimitedQuirks.String())
}
