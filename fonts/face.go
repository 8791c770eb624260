package fonts

import (
	"fmt"
	"sync"

	"github.com/npillmayer/dragonfly"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a parsed font. Faces are safe for concurrent use.
type Face struct {
	name    string
	font    *sfnt.Font
	buffers sync.Pool // of *sfnt.Buffer, which must not be shared
}

// ParseFace parses TrueType or OpenType font data. For font collections the
// first font is taken. If name is empty, the family name from the font's
// name table is used.
func ParseFace(name string, data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty font data", dragonfly.ErrFontLoading)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		coll, cerr := sfnt.ParseCollection(data)
		if cerr != nil || coll == nil || coll.NumFonts() == 0 {
			return nil, fmt.Errorf("%w: %v", dragonfly.ErrFontLoading, err)
		}
		if f, err = coll.Font(0); err != nil {
			return nil, fmt.Errorf("%w: %v", dragonfly.ErrFontLoading, err)
		}
	}
	face := &Face{font: f}
	face.buffers.New = func() any { return &sfnt.Buffer{} }
	if name == "" {
		b := face.buffer()
		name, _ = f.Name(b, sfnt.NameIDFamily)
		face.release(b)
	}
	face.name = name
	return face, nil
}

// Name returns the family name of the face.
func (face *Face) Name() string {
	return face.name
}

func (face *Face) String() string {
	return fmt.Sprintf("Face(%s)", face.name)
}

func (face *Face) buffer() *sfnt.Buffer {
	return face.buffers.Get().(*sfnt.Buffer)
}

func (face *Face) release(b *sfnt.Buffer) {
	face.buffers.Put(b)
}

// GlyphMetrics holds the metrics of a glyph, in pixels. XMin and YMin are the
// offsets of the lower left corner of the glyph's bounding box from the
// origin, with y growing upwards.
type GlyphMetrics struct {
	Width        float32
	Height       float32
	AdvanceWidth float32
	XMin         float32
	YMin         float32
}

// HasGlyph returns true if the face has a glyph for r.
func (face *Face) HasGlyph(r rune) bool {
	b := face.buffer()
	defer face.release(b)
	x, err := face.font.GlyphIndex(b, r)
	return err == nil && x != 0
}

// Metrics returns the metrics of the glyph for r at a font size of px pixels.
// Runes without a glyph are measured with the font's "notdef" glyph.
func (face *Face) Metrics(r rune, px float32) (GlyphMetrics, error) {
	b := face.buffer()
	defer face.release(b)
	x, err := face.font.GlyphIndex(b, r)
	if err != nil {
		return GlyphMetrics{}, fmt.Errorf("%w: glyph for %q: %v", dragonfly.ErrFontLoading, r, err)
	}
	ppem := toFixed(px)
	bounds, advance, err := face.font.GlyphBounds(b, x, ppem, font.HintingNone)
	if err != nil {
		return GlyphMetrics{}, fmt.Errorf("%w: bounds of %q: %v", dragonfly.ErrFontLoading, r, err)
	}
	return GlyphMetrics{
		Width:        fromFixed(bounds.Max.X - bounds.Min.X),
		Height:       fromFixed(bounds.Max.Y - bounds.Min.Y),
		AdvanceWidth: fromFixed(advance),
		XMin:         fromFixed(bounds.Min.X),
		YMin:         -fromFixed(bounds.Max.Y),
	}, nil
}

// LineHeight returns the distance between two baselines at a font size of px.
func (face *Face) LineHeight(px float32) (float32, error) {
	b := face.buffer()
	defer face.release(b)
	m, err := face.font.Metrics(b, toFixed(px), font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", dragonfly.ErrFontLoading, err)
	}
	return fromFixed(m.Height), nil
}

func toFixed(px float32) fixed.Int26_6 {
	return fixed.Int26_6(px * 64)
}

func fromFixed(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
