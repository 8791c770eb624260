package style

import (
	"strings"
	"sync"
)

// Values "default" have the following semantics:
// Treat this as an inherent UA default, which should not be instantiated in memory,
// but rather will be treated implicitely by rendering code.
//
var nonInherited = map[string]string{
	"position":            "static",
	"background-color":    "transparent",
	"border-top-color":    "default",
	"border-left-color":   "default",
	"border-right-color":  "default",
	"border-bottom-color": "default",
	"flow-from":           "none",
	"flow-into":           "none",
}

var isDimension = map[string]string{
	"width":                      "auto",
	"height":                     "auto",
	"min-width":                  "none",
	"min-height":                 "none",
	"max-width":                  "none",
	"max-height":                 "none",
	"top":                        "auto",
	"right":                      "auto",
	"bottom":                     "auto",
	"left":                       "auto",
	"margin-top":                 "0",
	"margin-left":                "0",
	"margin-right":               "0",
	"margin-bottom":              "0",
	"padding-top":                "0",
	"padding-left":               "0",
	"padding-right":              "0",
	"padding-bottom":             "0",
	"border-top-width":           "medium",
	"border-left-width":          "medium",
	"border-right-width":         "medium",
	"border-bottom-width":        "medium",
	"border-top-left-radius":     "0",
	"border-top-right-radius":    "0",
	"border-bottom-left-radius":  "0",
	"border-bottom-right-radius": "0",
}

// GetUserAgentDefaultProperty returns the user-agent default property for a given key
// and an element name. The element name is needed for properties with
// element-specific defaults, e.g. `display`.
//
// For properties without a default, NullStyle is returned.
func GetUserAgentDefaultProperty(element string, key string) Property {
	switch key {
	case "display":
		return DisplayPropertyForElement(element)
	default:
		if dim, ok := isDimension[key]; ok {
			return Property(dim)
		}
		if p, ok := nonInherited[key]; ok {
			return Property(p)
		}
	}
	if p, ok := UserAgentDefaults().Property(key); ok {
		return p
	}
	return NullStyle
}

// DisplayPropertyForElement returns the default `display` CSS property for an
// HTML element, given its (lowercase) tag name. Text nodes are passed in as
// "#text" and are always inline.
//
// The default stylesheet will usually override this, but for elements it does
// not mention we fall back to these values.
func DisplayPropertyForElement(element string) Property {
	switch strings.ToLower(element) {
	case "":
		return "none"
	case "#text":
		return "inline"
	case "#document", "html", "body":
		return "block"
	case "head", "title", "meta", "link", "script", "style", "template", "base", "noscript":
		return "none"
	case "p", "h1", "h2", "h3", "h4", "h5", "h6", "pre", "blockquote":
		return "block"
	case "address", "article", "aside", "div", "footer", "header", "hgroup",
		"main", "nav", "section", "ol", "ul", "dl", "dd", "dt", "figure",
		"figcaption", "form", "fieldset", "hr", "menu", "details", "summary", "dialog":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "dfn",
		"em", "i", "kbd", "label", "mark", "q", "s", "samp", "small", "span",
		"strong", "sub", "sup", "time", "u", "var", "img", "tt", "big":
		return "inline"
	case "button", "input", "select", "textarea":
		return "inline-block"
	}
	tracer().Debugf("unknown HTML element %s will be set to display: inline", element)
	return "inline"
}

var uaDefaults *PropertyMap
var uaDefaultsOnce sync.Once

// UserAgentDefaults returns the (shared) property map of user-agent defaults.
// Clients must not modify it.
func UserAgentDefaults() *PropertyMap {
	uaDefaultsOnce.Do(func() {
		uaDefaults = InitializeDefaultPropertyValues(nil)
	})
	return uaDefaults
}

// InitializeDefaultPropertyValues creates an internal data structure to
// hold all the default values for CSS properties.
// In real-world browsers these are the user-agent CSS values.
func InitializeDefaultPropertyValues(additionalProps []KeyValue) *PropertyMap {
	m := make(map[string]*PropertyGroup, 15)
	root := NewPropertyGroup("Root")

	x := NewPropertyGroup(PGX) // special group for extension properties
	for _, kv := range additionalProps {
		x.Set(kv.Key, kv.Value)
	}
	m[PGX] = x

	margins := NewPropertyGroup(PGMargins)
	margins.Set("margin-top", "0")
	margins.Set("margin-left", "0")
	margins.Set("margin-right", "0")
	margins.Set("margin-bottom", "0")
	margins.Parent = root
	m[PGMargins] = margins

	padding := NewPropertyGroup(PGPadding)
	padding.Set("padding-top", "0")
	padding.Set("padding-left", "0")
	padding.Set("padding-right", "0")
	padding.Set("padding-bottom", "0")
	padding.Parent = root
	m[PGPadding] = padding

	border := NewPropertyGroup(PGBorder)
	for _, dir := range fourDirs {
		border.Set("border-"+dir+"-color", "black")
		border.Set("border-"+dir+"-width", "medium")
		border.Set("border-"+dir+"-style", "none")
	}
	for _, corner := range fourCorners {
		border.Set("border-"+corner+"-radius", "0")
	}
	border.Parent = root
	m[PGBorder] = border

	dimension := NewPropertyGroup(PGDimension)
	dimension.Set("width", "auto")
	dimension.Set("height", "auto")
	dimension.Set("min-width", "none")
	dimension.Set("min-height", "none")
	dimension.Set("max-width", "none")
	dimension.Set("max-height", "none")
	dimension.Parent = root
	m[PGDimension] = dimension

	region := NewPropertyGroup(PGRegion)
	region.Set("flow-from", "")
	region.Set("flow-into", "")
	region.Parent = root
	m[PGRegion] = region

	display := NewPropertyGroup(PGDisplay)
	display.Set("display", "inline")
	display.Set("float", "none")
	display.Set("visibility", "visible")
	display.Set("position", "static")
	display.Set("top", "auto")
	display.Set("right", "auto")
	display.Set("bottom", "auto")
	display.Set("left", "auto")
	display.Parent = root
	m[PGDisplay] = display

	color := NewPropertyGroup(PGColor)
	color.Set("color", "black")
	color.Set("background-color", "transparent")
	color.Parent = root
	m[PGColor] = color

	font := NewPropertyGroup(PGFont)
	font.Set("font-family", "serif")
	font.Set("font-size", "16px")
	font.Set("font-style", "normal")
	font.Set("font-weight", "normal")
	font.Set("line-height", "normal")
	font.Parent = root
	m[PGFont] = font

	text := NewPropertyGroup(PGText)
	text.Set("direction", "ltr")
	text.Set("white-space", "normal")
	text.Set("word-spacing", "normal")
	text.Set("letter-spacing", "normal")
	text.Set("word-break", "normal")
	text.Set("overflow-wrap", "normal")
	text.Set("hyphens", "manual")
	text.Parent = root
	m[PGText] = text

	return &PropertyMap{m}
}
