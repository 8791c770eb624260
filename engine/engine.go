/*
Package engine ties the parts of the browser engine together.

A WebContext loads a page: it pulls the page from its URL, parses it,
loads the style sheets linked from it and computes the layout. The time
spent in each step is recorded in the context's timers.

	wc, err := engine.New("https://example.com", nil)
	…
	err = wc.Load(ctx)
	…
	fmt.Println(domdbg.ToTree(wc.Layout().Root()))

A WebContext is not safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/npillmayer/dragonfly"
	"github.com/npillmayer/dragonfly/dom/style/cssom"
	"github.com/npillmayer/dragonfly/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/dragonfly/fonts"
	"github.com/npillmayer/dragonfly/layout"
	"github.com/npillmayer/dragonfly/puller"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'dragonfly.engine'.
func tracer() tracing.Trace {
	return tracing.Select("dragonfly.engine")
}

// ErrNotLoaded is returned by operations which need a loaded page.
var ErrNotLoaded = errors.New("page not loaded")

// Timers holds the durations of the steps of loading a page.
type Timers struct {
	Pull   time.Duration // pulling the page, from the network or the cache
	Parse  time.Duration // parsing the page
	Layout time.Duration // computing the most recent layout
	Total  time.Duration // loading the page, including layout
}

// WebContext is the context of a single page.
type WebContext struct {
	Timers      Timers
	url         *url.URL
	puller      *puller.Puller
	fonts       *fonts.Manager
	systemFonts bool
	document    *html.Node
	quirks      QuirksMode
	sheets      []cssom.StyleSheet
	layout      *layout.Layout
}

// Option configures a WebContext.
type Option func(*WebContext) error

// MaxCacheSize sets the size limit of the cache of the puller in bytes.
func MaxCacheSize(n int64) Option {
	return func(wc *WebContext) error {
		if n < 0 {
			return fmt.Errorf("cache size must not be negative: %d", n)
		}
		wc.puller.MaxCacheSize = n
		return nil
	}
}

// AllowLocalFS permits or denies access to the local file system through
// 'file' URLs.
func AllowLocalFS(allow bool) Option {
	return func(wc *WebContext) error {
		wc.puller.AllowLocalFS = allow
		return nil
	}
}

// Timeout sets the timeout for a single request.
func Timeout(d time.Duration) Option {
	return func(wc *WebContext) error {
		wc.puller.Timeout = d
		return nil
	}
}

// HTTPClient sets the client used for http(s) requests.
func HTTPClient(c *http.Client) Option {
	return func(wc *WebContext) error {
		wc.puller.Client = c
		return nil
	}
}

// SystemFonts selects system fonts for the generic font families. It takes
// effect only if no font manager has been passed to New.
func SystemFonts(on bool) Option {
	return func(wc *WebContext) error {
		wc.systemFonts = on
		return nil
	}
}

// New creates a web context for a page. rawURL must be an absolute URL.
// If fm is nil, a font manager is created on first Load.
func New(rawURL string, fm *fonts.Manager, opts ...Option) (*WebContext, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dragonfly.ErrURLParse, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("%w: relative URL without a base: %q", dragonfly.ErrURLParse, rawURL)
	}
	wc := &WebContext{
		url:    u,
		puller: puller.New(),
		fonts:  fm,
		layout: layout.Default(),
	}
	for _, opt := range opts {
		if err := opt(wc); err != nil {
			return nil, err
		}
	}
	return wc, nil
}

// Load pulls and parses the page, loads the linked style sheets and
// computes the layout.
func (wc *WebContext) Load(ctx context.Context) error {
	start := time.Now()
	if err := wc.loadFonts(ctx); err != nil {
		return err
	}
	pullStart := time.Now()
	data, err := wc.puller.PullString(ctx, wc.url)
	if err != nil {
		return err
	}
	wc.Timers.Pull = time.Since(pullStart)
	tracer().Infof("pulled in %v", wc.Timers.Pull)
	//
	tracer().Infof("parsing page at %q", wc.url)
	parseStart := time.Now()
	doc, err := html.Parse(strings.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", wc.url, err)
	}
	wc.document = doc
	wc.Timers.Parse = time.Since(parseStart)
	tracer().Infof("parsed in %v", wc.Timers.Parse)
	wc.quirks = QuirksModeOf(doc)
	switch wc.quirks {
	case Quirks:
		tracer().Infof("using quirks mode")
	case LimitedQuirks:
		tracer().Infof("using limited quirks mode")
	default:
		tracer().Infof("using standard mode")
	}
	wc.sheets = wc.linkedStyleSheets(ctx, doc)
	if err := ctx.Err(); err != nil {
		return err
	}
	//
	tracer().Infof("computing layout for the first time")
	if err := wc.RecomputeLayout(); err != nil {
		return err
	}
	wc.Timers.Total = time.Since(start)
	tracer().Infof("loaded page in %v", wc.Timers.Total)
	return nil
}

func (wc *WebContext) loadFonts(ctx context.Context) (err error) {
	if wc.fonts != nil {
		return nil
	}
	if wc.systemFonts {
		wc.fonts, err = fonts.WithSystemFonts(ctx)
	} else {
		wc.fonts, err = fonts.WithFallbackFont()
	}
	return err
}

// linkedStyleSheets pulls and parses the style sheets linked from doc.
// Style sheets which cannot be loaded are traced and skipped.
func (wc *WebContext) linkedStyleSheets(ctx context.Context, doc *html.Node) []cssom.StyleSheet {
	var urls []*url.URL
	for _, href := range douceuradapter.ExtractLinkedStyleSheets(doc) {
		u, err := wc.url.Parse(href)
		if err != nil {
			tracer().Errorf("style sheet link %q: %v", href, err)
			continue
		}
		urls = append(urls, u)
	}
	if len(urls) == 0 {
		return nil
	}
	var sheets []cssom.StyleSheet
	for i, r := range wc.puller.PullAll(ctx, urls) {
		data, err := r.Get()
		if err != nil {
			tracer().Errorf("style sheet %s: %v", urls[i], err)
			continue
		}
		sheet, err := douceuradapter.Parse(string(data), cssom.Normal)
		if err != nil {
			tracer().Errorf("style sheet %s: %v", urls[i], err)
			continue
		}
		tracer().Debugf("loaded style sheet %s", urls[i])
		sheets = append(sheets, sheet)
	}
	return sheets
}

// RecomputeLayout computes the layout of the current document.
func (wc *WebContext) RecomputeLayout() error {
	if wc.document == nil {
		return ErrNotLoaded
	}
	tracer().Infof("recomputing layout...")
	start := time.Now()
	l, err := layout.Compute(wc.document, wc.fonts, wc.sheets...)
	if l != nil {
		wc.layout = l
	}
	wc.Timers.Layout = time.Since(start)
	tracer().Infof("computed layout in %v", wc.Timers.Layout)
	if err != nil {
		tracer().Errorf("layout: %v", err)
	}
	return nil
}

// Document returns the parsed page, or nil if the page has not been loaded.
func (wc *WebContext) Document() *html.Node {
	return wc.document
}

// Layout returns the most recent layout. Before Load, it is the default layout.
func (wc *WebContext) Layout() *layout.Layout {
	return wc.layout
}

// URL returns the URL of the page.
func (wc *WebContext) URL() *url.URL {
	return wc.url
}

// Quirks returns the quirks mode of the loaded document.
func (wc *WebContext) Quirks() QuirksMode {
	return wc.quirks
}

// Puller returns the puller of the context.
func (wc *WebContext) Puller() *puller.Puller {
	return wc.puller
}

// Fonts returns the font manager, or nil before the first Load if none was
// passed to New.
func (wc *WebContext) Fonts() *fonts.Manager {
	return wc.fonts
}
