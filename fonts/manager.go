package fonts

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/dragonfly"
	"github.com/npillmayer/dragonfly/assets"
	"github.com/npillmayer/dragonfly/dom/style"
	"golang.org/x/sync/errgroup"
)

// DefaultCacheSize is the number of fonts a Manager caches by name.
const DefaultCacheSize = 16

// Locator finds a system font by family name and returns its data.
type Locator func(ctx context.Context, family string) ([]byte, error)

// Manager is a store of fonts. It is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	generic  [5]*Face // serif, sans-serif, monospace, cursive, fantasy
	fallback *Face
	cache    *lru.Cache[string, *Face]
	locate   Locator
}

// Option configures a Manager.
type Option func(*Manager) error

// CacheSize sets the number of fonts cached by name.
func CacheSize(n int) Option {
	return func(m *Manager) error {
		if n <= 0 {
			return fmt.Errorf("font cache size must be positive, is %d", n)
		}
		c, err := lru.New[string, *Face](n)
		if err != nil {
			return err
		}
		m.cache = c
		return nil
	}
}

// SystemLocator replaces the lookup of system fonts.
func SystemLocator(l Locator) Option {
	return func(m *Manager) error {
		m.locate = l
		return nil
	}
}

var fallbackFace struct {
	once sync.Once
	face *Face
	err  error
}

// Fallback returns the face of the fallback font compiled into the executable.
func Fallback() (*Face, error) {
	fallbackFace.once.Do(func() {
		fallbackFace.face, fallbackFace.err = ParseFace(assets.FallbackFontName, assets.FallbackFont())
	})
	return fallbackFace.face, fallbackFace.err
}

// NewManager creates a font manager with every generic family set to the
// fallback font.
func NewManager(opts ...Option) (*Manager, error) {
	fallback, err := Fallback()
	if err != nil {
		return nil, err
	}
	m := &Manager{fallback: fallback, locate: systemFont}
	for i := range m.generic {
		m.generic[i] = fallback
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	if m.cache == nil {
		if m.cache, err = lru.New[string, *Face](DefaultCacheSize); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// WithFallbackFont creates a font manager which uses the fallback font only.
func WithFallbackFont(opts ...Option) (*Manager, error) {
	return NewManager(opts...)
}

// WithSystemFonts creates a font manager and loads the generic families from
// the fonts installed on the system.
func WithSystemFonts(ctx context.Context, opts ...Option) (*Manager, error) {
	m, err := NewManager(opts...)
	if err != nil {
		return nil, err
	}
	return m, m.LoadSystemFonts(ctx)
}

// system font families tried for the generic families, in order of preference
var genericCandidates = [5][]string{
	{"DejaVu Serif", "Liberation Serif", "Noto Serif", "Times New Roman", "Georgia"},
	{"DejaVu Sans", "Liberation Sans", "Noto Sans", "Arial", "Helvetica"},
	{"DejaVu Sans Mono", "Liberation Mono", "Noto Sans Mono", "Courier New", "Menlo"},
	{"Comic Sans MS", "URW Chancery L", "Z003", "Apple Chancery"},
	{"Impact", "Papyrus", "Luminari"},
}

var genericNames = [5]string{"serif", "sans-serif", "monospace", "cursive", "fantasy"}

// LoadSystemFonts loads the generic font families from the system,
// concurrently. A family which cannot be found keeps its current face; the
// error is traced. An error is returned only if ctx is done.
func (m *Manager) LoadSystemFonts(ctx context.Context) error {
	start := time.Now()
	tracer().Infof("loading system fonts")
	g, ctx := errgroup.WithContext(ctx)
	for i := range genericCandidates {
		i := i
		g.Go(func() error {
			face, err := m.locateFirst(ctx, genericCandidates[i])
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				tracer().Errorf("no system font for %s: %v", genericNames[i], err)
				return nil
			}
			tracer().Debugf("%s font is %s", genericNames[i], face.Name())
			m.mu.Lock()
			m.generic[i] = face
			m.mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	tracer().Infof("loaded system fonts in %v", time.Since(start))
	return err
}

func (m *Manager) locateFirst(ctx context.Context, families []string) (*Face, error) {
	var lastErr error = fmt.Errorf("%w: no candidates", dragonfly.ErrFontSelection)
	for _, family := range families {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := m.locate(ctx, family)
		if err != nil {
			lastErr = err
			continue
		}
		face, err := ParseFace(family, data)
		if err != nil {
			lastErr = err
			continue
		}
		return face, nil
	}
	return nil, lastErr
}

// ByName returns a system font by family name. Fonts found are cached;
// failed lookups are not.
func (m *Manager) ByName(name string) (*Face, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("%w: empty font name", dragonfly.ErrFontSelection)
	}
	if face, ok := m.cache.Get(key); ok {
		tracer().Debugf("found cached font %q", name)
		return face, nil
	}
	tracer().Infof("looking up font %q", name)
	data, err := m.locate(context.Background(), name)
	if err != nil {
		return nil, err
	}
	face, err := ParseFace(name, data)
	if err != nil {
		return nil, err
	}
	m.cache.Add(key, face)
	return face, nil
}

// CachedFonts returns the number of fonts in the name cache.
func (m *Manager) CachedFonts() int {
	return m.cache.Len()
}

// FallbackFace returns the fallback face of m.
func (m *Manager) FallbackFace() *Face {
	return m.fallback
}

// Font returns the face for a font family. Custom families are looked up
// by name, falling back to the fallback font if the lookup fails.
func (m *Manager) Font(family style.FontFamily) *Face {
	var slot int
	switch family.Generic {
	case style.Serif, style.SystemUI, style.UISerif, style.UIRounded,
		style.Math, style.Emoji, style.Fangsong:
		slot = 0
	case style.SansSerif, style.UISansSerif:
		slot = 1
	case style.Monospace, style.UIMonospace:
		slot = 2
	case style.Cursive:
		slot = 3
	case style.Fantasy:
		slot = 4
	case style.CustomFamily:
		face, err := m.ByName(family.Name)
		if err != nil {
			tracer().Infof("could not find system font %q: %v", family.Name, err)
			return m.fallback
		}
		return face
	default:
		return m.fallback
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generic[slot]
}

// GlyphMetrics returns the metrics of the glyph for r at size px, taken from
// the face for family.
func (m *Manager) GlyphMetrics(r rune, px float32, family style.FontFamily) (GlyphMetrics, error) {
	return m.Font(family).Metrics(r, px)
}

// LineHeight returns the line height of the face for family at size px.
func (m *Manager) LineHeight(px float32, family style.FontFamily) (float32, error) {
	return m.Font(family).LineHeight(px)
}
