package cssom

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/dragonfly/dom/style"
)

// ParserMode controls the parsing behaviour of CSS parsers.
type ParserMode uint8

const (
	// Normal is for regular CSS files.
	Normal ParserMode = iota
	// Inline is for inline style attributes.
	Inline
	// DefaultCSS is for the browser's default.css, which may use browser
	// color keywords.
	DefaultCSS
)

func (m ParserMode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Inline:
		return "inline"
	case DefaultCSS:
		return "default-css"
	}
	return "unknown-mode"
}

var browserKeywords = map[string]string{
	"DfTextColor":                 "black",
	"DfPageBackgroundColor":       "white",
	"DfButtonBorderColor":         "gray",
	"DfInputPlaceholderTextColor": "gray",
	"DfButtonBackgroundColor":     "lightgray",
	"DfButtonTextColor":           "black",
	"DfLinkColor":                 "lightblue",
	"DfVisitedColor":              "purple",
	"DfActiveColor":               "blue",
	"DfMarkBackgroundColor":       "lightgray",
	"DfMarkTextColor":             "yellow",
	"DfFieldsetBorderColor":       "black",
}

// ReplaceBrowserKeyword substitutes a browser color keyword by its concrete
// color. Keywords are matched exactly; values other than keywords are
// returned unchanged.
func ReplaceBrowserKeyword(value string) string {
	if c, ok := browserKeywords[value]; ok {
		return c
	}
	return value
}

// IsBrowserKeyword returns true if value is one of the browser color keywords.
func IsBrowserKeyword(value string) bool {
	_, ok := browserKeywords[value]
	return ok
}

// StripCommentsAndSpace removes all block comments from a CSS source and
// collapses runs of whitespace into a single space. Nested comments are not
// supported. An unterminated comment extends to the end of the input.
// Quoted strings are copied unchanged.
func StripCommentsAndSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for len(s) > 0 {
		if strings.HasPrefix(s, "/*") {
			end := strings.Index(s[2:], "*/")
			if end < 0 {
				break
			}
			s = s[end+4:]
			continue
		}
		if s[0] == '"' || s[0] == '\'' {
			n := QuotedLength(s)
			b.WriteString(s[:n])
			s = s[n:]
			inSpace = false
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// QuotedLength returns the length in bytes of the quoted string at the start
// of s, including both quotes. Backslash escapes are honored. An unterminated
// string extends to the end of s. If s does not start with a quote, 0 is
// returned.
func QuotedLength(s string) int {
	if s == "" || (s[0] != '"' && s[0] != '\'') {
		return 0
	}
	q := s[0]
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case q:
			return i + 1
		}
	}
	return len(s)
}

// declaration is a single key-value pair of a style rule or style attribute.
type declaration struct {
	key       string
	value     style.Property
	important bool
}

// splitDeclarations splits a declaration block (without braces) into its
// declarations. Empty segments and segments without a key are skipped.
func splitDeclarations(css string) []declaration {
	var decls []declaration
	for _, segment := range strings.Split(StripCommentsAndSpace(css), ";") {
		key, value, _ := strings.Cut(segment, ":")
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if key == "" {
			if value != "" {
				tracer().Debugf("ignoring CSS declaration without property: %q", segment)
			}
			continue
		}
		d := declaration{key: key}
		if v, ok := cutImportant(value); ok {
			value, d.important = v, true
		}
		d.value = style.Property(value)
		decls = append(decls, d)
	}
	return decls
}

func cutImportant(value string) (string, bool) {
	i := strings.LastIndexByte(value, '!')
	if i < 0 || strings.ToLower(strings.TrimSpace(value[i+1:])) != "important" {
		return value, false
	}
	return strings.TrimSpace(value[:i]), true
}

// ParseInline parses the content of a style attribute into a property map.
// ParseInline never fails: empty declarations are skipped and properties
// unknown to the engine are traced and kept in the extension group.
//
//    pmap := ParseInline("position: absolute; color: red;")
//
func ParseInline(css string) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	for _, d := range splitDeclarations(css) {
		if !isKnownProperty(d.key) {
			tracer().Infof("unhandled CSS property: %q", d.key)
		}
		pmap.AddCompound(d.key, d.value)
	}
	return pmap
}

func isKnownProperty(key string) bool {
	if style.GroupNameFromPropertyKey(key) != style.PGX {
		return true
	}
	_, err := style.SplitCompoundProperty(key, "0")
	return err == nil
}
