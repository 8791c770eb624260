/*
Package puller retrieves resources, i.e. pages and style sheets, from
file and http(s) URLs.

Remote resources are kept in a cache which is bounded by the number of
bytes it holds. Least recently used entries are evicted first.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package puller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/dragonfly"
	"github.com/npillmayer/dragonfly/result"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html/charset"
	"golang.org/x/sync/errgroup"
)

// tracer traces with key 'dragonfly.puller'.
func tracer() tracing.Trace {
	return tracing.Select("dragonfly.puller")
}

// DefaultMaxCacheSize is the default limit of the cache: 1 GiB.
const DefaultMaxCacheSize int64 = 1024 * 1024 * 1024

// maximum number of concurrent requests of PullAll
const maxConcurrentPulls = 8

// maximum number of cache entries, independent of their size
const maxCacheEntries = 1 << 16

// Puller retrieves resources. A Puller is safe for concurrent use; it
// must not be copied after first use.
type Puller struct {
	MaxCacheSize int64         // maximum cache size in bytes; 0 disables the cache
	AllowLocalFS bool          // allow access to the file system through 'file://'
	Timeout      time.Duration // timeout for a single request, 0 for none
	Client       *http.Client  // nil for http.DefaultClient

	mu        sync.Mutex
	cache     *lru.Cache[string, entry]
	cacheSize int64
}

type entry struct {
	data        []byte
	contentType string
}

// New creates a puller with the default settings: a cache of
// DefaultMaxCacheSize and access to the local file system.
func New() *Puller {
	return &Puller{
		MaxCacheSize: DefaultMaxCacheSize,
		AllowLocalFS: true,
	}
}

// PullBytes retrieves the resource at u.
func (p *Puller) PullBytes(ctx context.Context, u *url.URL) ([]byte, error) {
	e, err := p.pull(ctx, u)
	return e.data, err
}

// PullString retrieves the resource at u as text, decoded to UTF-8. The
// encoding is taken from the Content-Type of an http response or, if there
// is none, sniffed from the content.
func (p *Puller) PullString(ctx context.Context, u *url.URL) (string, error) {
	e, err := p.pull(ctx, u)
	if err != nil {
		return "", err
	}
	r, err := charset.NewReader(bytes.NewReader(e.data), e.contentType)
	if err != nil {
		tracer().Infof("cannot decode %s (%s): %v", u, e.contentType, err)
		return string(e.data), nil
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: decoding %s: %v", dragonfly.ErrIO, u, err)
	}
	return string(text), nil
}

// PullAll retrieves several resources concurrently. It returns one result
// per URL, in the order of urls.
func (p *Puller) PullAll(ctx context.Context, urls []*url.URL) []result.Result[[]byte] {
	results := make([]result.Result[[]byte], len(urls))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPulls)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			results[i] = result.From(p.PullBytes(ctx, u))
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (p *Puller) pull(ctx context.Context, u *url.URL) (entry, error) {
	if u == nil {
		return entry{}, fmt.Errorf("%w: no URL", dragonfly.ErrURLParse)
	}
	tracer().Infof("pulling %q, scheme %q", u, u.Scheme)
	if u.Scheme == "file" && p.AllowLocalFS {
		data, err := readLocalFile(u)
		return entry{data: data}, err
	}
	key := u.String()
	if e, ok := p.cached(key); ok {
		tracer().Debugf("found %s in cache", key)
		return e, nil
	}
	e, err := p.request(ctx, u)
	if err != nil {
		return entry{}, err
	}
	p.store(key, e)
	return e, nil
}

// readLocalFile reads the file of a file URL. Leading slashes are trimmed,
// making the path relative to the working directory. If there is no such
// file, the absolute path is tried.
func readLocalFile(u *url.URL) ([]byte, error) {
	path := strings.TrimLeft(u.Path, "/")
	tracer().Infof("reading local file %q", path)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && u.Path != path {
		data, err = os.ReadFile(u.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dragonfly.ErrIO, err)
	}
	return data, nil
}

func (p *Puller) request(ctx context.Context, u *url.URL) (entry, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return entry{}, fmt.Errorf("%w: %v", dragonfly.ErrHTTP, err)
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return entry{}, fmt.Errorf("%w: %v", dragonfly.ErrHTTP, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entry{}, fmt.Errorf("%w: GET %s: %s", dragonfly.ErrHTTP, u, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return entry{}, fmt.Errorf("%w: reading %s: %v", dragonfly.ErrIO, u, err)
	}
	return entry{data: data, contentType: resp.Header.Get("Content-Type")}, nil
}

// --- Cache -----------------------------------------------------------------

func (p *Puller) cached(key string) (entry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cache == nil {
		return entry{}, false
	}
	return p.cache.Get(key)
}

func (p *Puller) store(key string, e entry) {
	size := int64(len(e.data))
	if p.MaxCacheSize <= 0 {
		return
	}
	if size > p.MaxCacheSize {
		tracer().Debugf("%s does not fit into the cache (%d bytes)", key, size)
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cache == nil {
		p.cache, _ = lru.NewWithEvict(maxCacheEntries, func(_ string, e entry) {
			p.cacheSize -= int64(len(e.data))
		})
	}
	p.cache.Remove(key)
	for p.cacheSize+size > p.MaxCacheSize {
		if _, _, ok := p.cache.RemoveOldest(); !ok {
			break
		}
	}
	p.cache.Add(key, e)
	p.cacheSize += size
}

// CacheSize returns the number of bytes in the cache.
func (p *Puller) CacheSize() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cacheSize
}

// ClearCache removes all entries from the cache.
func (p *Puller) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cache != nil {
		p.cache.Purge()
	}
	p.cacheSize = 0
}
