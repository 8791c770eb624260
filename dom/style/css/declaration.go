package css

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/dragonfly/dom/style"
	"github.com/npillmayer/dragonfly/maybe"
	"github.com/npillmayer/dragonfly/tree"
	"github.com/npillmayer/tyse/core/dimen"
)

// DefaultFontSize is the font size of the root element if no style sheet
// sets one.
var DefaultFontSize = 16 * PX

// Declaration is the computed style of a node, reduced to the properties
// the layout engine interprets.
type Declaration struct {
	Position        PositionT
	Display         DisplayMode
	Color           maybe.Maybe[color.RGBA]
	BackgroundColor maybe.Maybe[color.RGBA]
	FontFamily      style.FontFamily
	FontSize        dimen.DU
}

// DefaultDeclaration returns the declaration used in absence of any styles:
// static, inline, no colors, serif at 16px.
func DefaultDeclaration() Declaration {
	return Declaration{
		Position:        Static(),
		Display:         InlineMode | InnerInlineMode,
		Color:           maybe.Nothing[color.RGBA](),
		BackgroundColor: maybe.Nothing[color.RGBA](),
		FontFamily:      style.GenericFontFamily(style.Serif),
		FontSize:        DefaultFontSize,
	}
}

// FontSizePx returns the font size in CSS pixels.
func (decl Declaration) FontSizePx() float32 {
	return ToPx(decl.FontSize)
}

func (decl Declaration) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "position:%s; display:%s; ", decl.Position, decl.Display.FullString())
	if c, ok := decl.Color.Get(); ok {
		fmt.Fprintf(&b, "color:%s; ", style.ColorString(c))
	}
	if c, ok := decl.BackgroundColor.Get(); ok {
		fmt.Fprintf(&b, "background-color:%s; ", style.ColorString(c))
	}
	fmt.Fprintf(&b, "font-family:%s; font-size:%gpx", decl.FontFamily, decl.FontSizePx())
	return b.String()
}

// ComputeDeclaration computes the declaration for a styled node, given the
// declaration of its parent (nil for the root) and the font size of the root
// element. Values which cannot be interpreted are traced and replaced by
// their defaults.
func ComputeDeclaration[S StyledNode](node *tree.Node[S], parent *Declaration,
	rootFontSize dimen.DU) (Declaration, error) {
	//
	decl := DefaultDeclaration()
	if parent != nil {
		decl.Color = parent.Color
		decl.FontFamily = parent.FontFamily
		decl.FontSize = parent.FontSize
	}
	if rootFontSize == 0 {
		rootFontSize = DefaultFontSize
	}
	p, err := GetProperty(node, "position")
	if err != nil {
		return decl, err
	}
	decl.Position = Position(p).WithOffsets(offsets(node))
	if p, err = GetProperty(node, "display"); err != nil {
		return decl, err
	}
	decl.Display = Display(p)
	if p, err = GetProperty(node, "color"); err != nil {
		return decl, err
	}
	decl.Color = maybe.OneOf(p.Color(), decl.Color)
	if p, err = GetProperty(node, "background-color"); err != nil {
		return decl, err
	}
	decl.BackgroundColor = p.Color()
	if p, err = GetProperty(node, "font-family"); err != nil {
		return decl, err
	}
	decl.FontFamily = p.FontFamily()
	decl.FontSize = fontSize(GetLocalProperty(node.Payload.Styles(), "font-size"),
		decl.FontSize, rootFontSize)
	return decl, nil
}

func offsets[S StyledNode](node *tree.Node[S]) []PositionOffset {
	var o []PositionOffset
	for dir, key := range [4]string{"top", "right", "bottom", "left"} {
		p, err := GetProperty(node, key)
		if err != nil {
			continue
		}
		d, err := ParseDimen(p)
		if err != nil {
			tracer().Debugf("position offset %s: %v", key, err)
			continue
		}
		o = append(o, PositionOffset{Dim: d, Dir: PosDir(dir)})
	}
	return o
}

// font-size keywords, in pixels
var fontSizeKeywords = map[style.Property]float32{
	"xx-small":  9,
	"x-small":   10,
	"small":     13,
	"medium":    16,
	"large":     18,
	"x-large":   24,
	"xx-large":  32,
	"xxx-large": 48,
}

func fontSize(p style.Property, inherited, root dimen.DU) dimen.DU {
	if p.IsUnset() {
		return inherited
	}
	if px, ok := fontSizeKeywords[p]; ok {
		return FromPx(px)
	}
	switch p {
	case "smaller":
		return scale(inherited, 1/1.2)
	case "larger":
		return scale(inherited, 1.2)
	}
	d, err := ParseDimen(p)
	if err != nil {
		tracer().Debugf("font-size: %v", err)
		return inherited
	}
	if size, ok := d.Resolve(inherited, root, inherited); ok && size > 0 {
		return size
	}
	return inherited
}
