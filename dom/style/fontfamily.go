package style

import (
	"strings"
)

// GenericFamily is an enum type for the generic CSS font families.
type GenericFamily uint8

// Generic font families. CustomFamily denotes a family given by name.
const (
	Serif       GenericFamily = iota // default
	SansSerif                        // plain stroke endings
	Monospace                        // fixed width
	Cursive                          // handwriting
	Fantasy                          // decorative
	SystemUI                         // platform UI font
	UISerif                          // serif UI font
	UISansSerif                      // sans-serif UI font
	UIMonospace                      // monospace UI font
	UIRounded                        // UI font with rounded features
	Math                             // mathematics
	Emoji                            // emoji
	Fangsong                         // Chinese Fangsong style
	CustomFamily                     // named font family
)

var genericFamilyNames = [...]string{
	Serif:        "serif",
	SansSerif:    "sans-serif",
	Monospace:    "monospace",
	Cursive:      "cursive",
	Fantasy:      "fantasy",
	SystemUI:     "system-ui",
	UISerif:      "ui-serif",
	UISansSerif:  "ui-sans-serif",
	UIMonospace:  "ui-monospace",
	UIRounded:    "ui-rounded",
	Math:         "math",
	Emoji:        "emoji",
	Fangsong:     "fangsong",
	CustomFamily: "custom",
}

func (g GenericFamily) String() string {
	if int(g) < len(genericFamilyNames) {
		return genericFamilyNames[g]
	}
	return "serif"
}

// FontFamily is a CSS font family, either one of the generic families or
// a custom family given by name. The zero value is the default family (serif).
type FontFamily struct {
	Generic GenericFamily
	Name    string // name of a custom family, empty for generic families
}

// GenericFontFamily creates a font family for a generic family.
func GenericFontFamily(g GenericFamily) FontFamily {
	return FontFamily{Generic: g}
}

// CustomFontFamily creates a font family for a font name, e.g. "Helvetica".
func CustomFontFamily(name string) FontFamily {
	return FontFamily{Generic: CustomFamily, Name: name}
}

// IsCustom is true for named font families.
func (ff FontFamily) IsCustom() bool {
	return ff.Generic == CustomFamily
}

func (ff FontFamily) String() string {
	if ff.IsCustom() {
		return ff.Name
	}
	return ff.Generic.String()
}

// FontFamily interprets a property as a CSS font family. It will never fail:
// a list of families selects its first entry, and quotes are stripped.
// The empty property is the default family (serif).
func (p Property) FontFamily() FontFamily {
	return ParseFontFamily(string(p))
}

// ParseFontFamily parses a CSS font-family value. See Property.FontFamily.
func ParseFontFamily(s string) FontFamily {
	first, _, _ := strings.Cut(s, ",")
	first = strings.TrimSpace(first)
	if unquoted := strings.Trim(first, `"'`); unquoted != first {
		// a quoted name is never a generic family
		if unquoted == "" {
			return FontFamily{}
		}
		return CustomFontFamily(unquoted)
	}
	if first == "" {
		return FontFamily{}
	}
	lower := strings.ToLower(first)
	for g, name := range genericFamilyNames {
		if GenericFamily(g) != CustomFamily && name == lower {
			return GenericFontFamily(GenericFamily(g))
		}
	}
	tracer().Debugf("font family %q is not a generic family", first)
	return CustomFontFamily(first)
}
