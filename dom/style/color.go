package style

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/dragonfly/maybe"
	"golang.org/x/image/colornames"
)

// Color interprets a property as a CSS color. Supported are named colors,
// hex notation (#rgb, #rgba, #rrggbb, #rrggbbaa), functional notation
// (rgb(), rgba(), hsl(), hsla()) and the keyword "transparent".
//
// If the property cannot be interpreted as a color, Nothing is returned.
func (p Property) Color() maybe.Maybe[color.RGBA] {
	c, err := ParseColor(string(p))
	if err != nil {
		tracer().Debugf("color: %v", err)
		return maybe.Nothing[color.RGBA]()
	}
	return maybe.Just(c)
}

// ParseColor parses a CSS color value.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return color.RGBA{}, fmt.Errorf("empty color value")
	case s == "transparent":
		return color.RGBA{}, nil
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s)
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		return parseRGBFunc(s)
	case strings.HasPrefix(s, "hsl(") || strings.HasPrefix(s, "hsla("):
		return parseHSLFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(s string) (color.RGBA, error) {
	alpha := uint8(0xff)
	switch len(s) {
	case 5: // #rgba
		a, err := strconv.ParseUint(s[4:5], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("illegal hex color %q", s)
		}
		alpha = uint8(a * 17)
		s = s[:4]
	case 9: // #rrggbbaa
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("illegal hex color %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("illegal hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return premultiplied(r, g, b, alpha), nil
}

func parseRGBFunc(s string) (color.RGBA, error) {
	args, err := functionArgs(s)
	if err != nil {
		return color.RGBA{}, err
	}
	if len(args) != 3 && len(args) != 4 {
		return color.RGBA{}, fmt.Errorf("rgb() needs 3 or 4 arguments: %q", s)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := channel(args[i], 255)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("illegal color %q: %w", s, err)
		}
		rgb[i] = uint8(math.Round(v))
	}
	alpha, err := alphaArg(args)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("illegal color %q: %w", s, err)
	}
	return premultiplied(rgb[0], rgb[1], rgb[2], alpha), nil
}

func parseHSLFunc(s string) (color.RGBA, error) {
	args, err := functionArgs(s)
	if err != nil {
		return color.RGBA{}, err
	}
	if len(args) != 3 && len(args) != 4 {
		return color.RGBA{}, fmt.Errorf("hsl() needs 3 or 4 arguments: %q", s)
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("illegal hue in %q", s)
	}
	sat, err1 := channel(args[1], 1)
	l, err2 := channel(args[2], 1)
	if err1 != nil || err2 != nil || !strings.HasSuffix(args[1], "%") || !strings.HasSuffix(args[2], "%") {
		return color.RGBA{}, fmt.Errorf("illegal saturation/lightness in %q", s)
	}
	alpha, err := alphaArg(args)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("illegal color %q: %w", s, err)
	}
	h = math.Mod(math.Mod(h, 360)+360, 360)
	r, g, b := colorful.Hsl(h, sat, l).Clamped().RGB255()
	return premultiplied(r, g, b, alpha), nil
}

// functionArgs splits "name(a, b, c)" or "name(a b c / d)" into its arguments.
func functionArgs(s string) ([]string, error) {
	lp, rp := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if lp < 0 || rp < lp {
		return nil, fmt.Errorf("malformed color function %q", s)
	}
	inner := strings.NewReplacer(",", " ", "/", " ").Replace(s[lp+1 : rp])
	return strings.Fields(inner), nil
}

// channel parses a number or a percentage, scaled to max.
func channel(arg string, max float64) (float64, error) {
	var v float64
	var err error
	if strings.HasSuffix(arg, "%") {
		v, err = strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
		v = v / 100 * max
	} else {
		v, err = strconv.ParseFloat(arg, 64)
	}
	if err != nil {
		return 0, err
	}
	return math.Max(0, math.Min(max, v)), nil
}

func alphaArg(args []string) (uint8, error) {
	if len(args) < 4 {
		return 0xff, nil
	}
	a, err := channel(args[3], 1)
	if err != nil {
		return 0, err
	}
	return uint8(math.Round(a * 255)), nil
}

// color.RGBA is alpha-premultiplied.
func premultiplied(r, g, b, a uint8) color.RGBA {
	if a == 0xff {
		return color.RGBA{r, g, b, a}
	}
	mul := func(c uint8) uint8 {
		return uint8((uint32(c)*uint32(a) + 127) / 255)
	}
	return color.RGBA{mul(r), mul(g), mul(b), a}
}

// ColorString returns a textual representation of a color, suitable for
// debugging output. Opaque colors are rendered in hex notation.
func ColorString(c color.Color) string {
	if c == nil {
		return "none"
	}
	_, _, _, a := c.RGBA()
	if a == 0 {
		return "transparent"
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "transparent"
	}
	if a != 0xffff {
		return fmt.Sprintf("%s/%d%%", cf.Hex(), a*100/0xffff)
	}
	return cf.Hex()
}
