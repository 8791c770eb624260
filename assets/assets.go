/*
Package assets holds the resources compiled into every dragonfly executable:
the user-agent default stylesheet and the fallback font.

The default stylesheet uses browser color keywords (see BrowserColorKeywords),
which the CSS parser substitutes when it reads the sheet in default-stylesheet
mode. The fallback font is used for glyph metrics whenever no other font is
available.

The fallback font is Go Regular (package golang.org/x/image/font/gofont/goregular).
It takes the place of Cruft.ttf: there is no font file in this folder, the
TrueType data is compiled in from goregular.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package assets

import (
	_ "embed"

	"golang.org/x/image/font/gofont/goregular"
)

// DefaultCSSBytes is the raw content of the user-agent default stylesheet.
//
//go:embed default.css
var DefaultCSSBytes []byte

// DefaultCSS returns the user-agent default stylesheet.
func DefaultCSS() string {
	return string(DefaultCSSBytes)
}

// FallbackFontName is the family name of the fallback font.
const FallbackFontName = "Go"

// FallbackFont returns the TrueType data of the fallback font.
// Clients must not modify the returned slice.
func FallbackFont() []byte {
	return goregular.TTF
}

// BrowserColorKeywords are the custom color keywords used in the default
// stylesheet. They are not valid CSS outside of it.
var BrowserColorKeywords = []string{
	"DfTextColor",
	"DfPageBackgroundColor",
	"DfButtonBorderColor",
	"DfInputPlaceholderTextColor",
	"DfButtonBackgroundColor",
	"DfButtonTextColor",
	"DfLinkColor",
	"DfVisitedColor",
	"DfActiveColor",
	"DfMarkBackgroundColor",
	"DfMarkTextColor",
	"DfFieldsetBorderColor",
}
