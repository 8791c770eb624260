package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/dragonfly/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenREM     uint32 = 0x0400
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// PX is a CSS pixel. All absolute CSS units are converted via PX.
var PX = dimen.PT * 3 / 4

// ToPx converts a dimension to CSS pixels.
func ToPx(d dimen.DU) float32 {
	return float32(float64(d) / float64(PX))
}

// FromPx converts CSS pixels to a dimension.
func FromPx(px float32) dimen.DU {
	return dimen.DU(math.Round(float64(px) * float64(PX)))
}

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	ratio float64 // for font-relative and percentage values
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage n
	| FontRel unit n
	| ContentRel Min N
	| ContentRel Max N
*/

// Auto creates a CSS dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension of value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension of value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value, e.g. 80 for 80%.
func Percentage(n float64) DimenT {
	return DimenT{ratio: n, flags: dimenPercent}
}

// EM creates a CSS dimension relative to the current font size.
func EM(n float64) DimenT {
	return DimenT{ratio: n, flags: dimenEM}
}

// REM creates a CSS dimension relative to the font size of the root element.
func REM(n float64) DimenT {
	return DimenT{ratio: n, flags: dimenREM}
}

// IsNone is true for the zero value of DimenT, i.e. an unset dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAuto is true for dimension `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsRelative is true for font-relative dimensions and percentages.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask != 0
}

// Resolve computes a fixed dimension from d. Font-relative dimensions are
// resolved against fontSize (em) and rootFontSize (rem), percentages
// against reference. Dimensions without a fixed value (auto, …) return false.
func (d DimenT) Resolve(fontSize, rootFontSize, reference dimen.DU) (dimen.DU, bool) {
	switch {
	case d.IsAbsolute():
		return d.d, true
	case d.flags&relativeMask == dimenEM:
		return scale(fontSize, d.ratio), true
	case d.flags&relativeMask == dimenREM:
		return scale(rootFontSize, d.ratio), true
	case d.flags&relativeMask == dimenPercent:
		return scale(reference, d.ratio/100), true
	}
	return 0, false
}

func scale(x dimen.DU, f float64) dimen.DU {
	return dimen.DU(math.Round(float64(x) * f))
}

func (d DimenT) String() string {
	switch {
	case d.IsNone():
		return "none"
	case d.IsAuto():
		return "auto"
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	case d.IsAbsolute():
		return strconv.FormatFloat(float64(ToPx(d.d)), 'f', -1, 32) + "px"
	case d.flags&relativeMask == dimenEM:
		return strconv.FormatFloat(d.ratio, 'f', -1, 64) + "em"
	case d.flags&relativeMask == dimenREM:
		return strconv.FormatFloat(d.ratio, 'f', -1, 64) + "rem"
	case d.flags&relativeMask == dimenPercent:
		return strconv.FormatFloat(d.ratio, 'f', -1, 64) + "%"
	}
	return "?"
}

// absolute units, in CSS pixels
var unitsInPX = map[string]float64{
	"px": 1,
	"pt": 4.0 / 3.0,
	"pc": 16,
	"in": 96,
	"cm": 96 / 2.54,
	"mm": 96 / 25.4,
}

// ParseDimen interprets a property as a CSS dimension. Plain numbers are
// accepted only for 0.
func ParseDimen(p style.Property) (DimenT, error) {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	switch s {
	case "":
		return DimenT{}, nil
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "0":
		return JustDimen(0), nil
	}
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
	})
	if i <= 0 {
		return DimenT{}, fmt.Errorf("not a CSS dimension: %q", s)
	}
	n, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("not a CSS dimension: %q", s)
	}
	unit := s[i:]
	switch unit {
	case "em":
		return EM(n), nil
	case "rem":
		return REM(n), nil
	case "%":
		return Percentage(n), nil
	}
	if f, ok := unitsInPX[unit]; ok {
		return JustDimen(dimen.DU(math.Round(n * f * float64(PX)))), nil
	}
	return DimenT{}, fmt.Errorf("unsupported unit %q in dimension %q", unit, s)
}

// ---------------------------------------------------------------------------

// Match starts pattern matching on a dimension.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is used for matching DimenT values within a switch statement.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case m.dimen.flags&relativeMask > 0 && d.flags&relativeMask > 0:
		if m.dimen.flags&relativeMask == d.flags&relativeMask {
			return m
		}
		return nil
	case m.dimen.flags&contentMask > 0 && d.flags&contentMask > 0:
		return m
	case m.dimen.flags&relativeMask == 0 && d.flags&relativeMask == 0 &&
		(m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	}
	return nil
}

// Just matches a fixed dimension and extracts its value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches a percentage and extracts its value.
func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.ratio
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds the results for the alternatives of a dimension match.
type DimenPatterns[T any] struct {
	Auto         T
	Inherit      T
	Initial      T
	Just         T
	FontRelative T
	Percentage   T
	Default      T
}

// DimenPattern starts an expression match on a dimension.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is part of pattern matching for DimenT types.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern matching the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.IsAuto():
		return patterns.Auto
	case m.dimen.IsAbsolute():
		return patterns.Just
	case m.dimen.flags&kindMask == dimenInitial:
		return patterns.Initial
	case m.dimen.flags&kindMask == dimenInherit:
		return patterns.Inherit
	case m.dimen.flags&relativeMask == dimenPercent:
		return patterns.Percentage
	case m.dimen.flags&relativeMask == dimenEM, m.dimen.flags&relativeMask == dimenREM:
		return patterns.FontRelative
	}
	return patterns.Default
}

// With extracts the fixed value of a dimension.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const returns x.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
