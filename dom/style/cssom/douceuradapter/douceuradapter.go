/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/dragonfly/dom/style"
	"github.com/npillmayer/dragonfly/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'dragonfly.css'.
func tracer() tracing.Trace {
	return tracing.Select("dragonfly.css")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses a CSS style sheet. Parsing is tolerant: if the style sheet
// as a whole cannot be parsed, it is split into rules and every rule
// failing to parse is skipped. At-rules (@media, @font-face, …) are dropped.
// In mode cssom.DefaultCSS browser color keywords are replaced by colors.
//
// An error is returned only if not a single rule could be parsed from a
// non-empty input.
func Parse(source string, mode cssom.ParserMode) (*CSSStyles, error) {
	source = cssom.StripCommentsAndSpace(source)
	sheet, err := parser.Parse(source)
	if err != nil {
		tracer().Debugf("CSS does not parse as a whole, parsing rule by rule: %v", err)
		sheet = css.NewStylesheet()
		var lastErr error
		chunks := splitRules(source)
		for _, chunk := range chunks {
			s, err := parser.Parse(chunk)
			if err != nil {
				tracer().Infof("skipping CSS rule: %v", err)
				lastErr = err
				continue
			}
			sheet.Rules = append(sheet.Rules, s.Rules...)
		}
		if len(sheet.Rules) == 0 && len(chunks) > 0 {
			return nil, lastErr
		}
	}
	rules := sheet.Rules[:0]
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("ignoring CSS at-rule %s", r.Name)
			continue
		}
		for _, d := range r.Declarations {
			d.Property = strings.ToLower(strings.TrimSpace(d.Property))
			if mode == cssom.DefaultCSS {
				d.Value = cssom.ReplaceBrowserKeyword(strings.TrimSpace(d.Value))
			}
		}
		rules = append(rules, r)
	}
	sheet.Rules = rules
	return Wrap(sheet), nil
}

// splitRules splits CSS source text into top-level rules, i.e. chunks
// ending with a '}' at nesting level 0. Braces in quoted strings do not count.
func splitRules(source string) []string {
	var chunks []string
	depth, start := 0, 0
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '"', '\'':
			i += cssom.QuotedLength(source[i:]) - 1
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				if chunk := strings.TrimSpace(source[start : i+1]); chunk != "" {
					chunks = append(chunks, chunk)
				}
				start = i + 1
			}
		}
	}
	if rest := strings.TrimSpace(source[start:]); rest != "" {
		chunks = append(chunks, rest)
	}
	return chunks
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return sheet == nil || len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok && othercss != nil {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	tracer().Errorf("cannot append rules from style sheet of type %T", other)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	if sheet == nil {
		return nil
	}
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		rules[i] = Rule(*r)
	}
	return rules
}

func (sheet *CSSStyles) String() string {
	if sheet == nil {
		return ""
	}
	return sheet.css.String()
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top". Every key is listed once.
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	seen := make(map[string]bool, len(decl))
	for _, d := range decl {
		if !seen[d.Property] {
			props = append(props, d.Property)
			seen[d.Property] = true
		}
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a rule declares a key more than once, the last declaration wins, unless
// an earlier one is marked important.
func (r Rule) Value(key string) style.Property {
	if d := r.find(key); d != nil {
		return style.Property(d.Value)
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	if d := r.find(key); d != nil {
		return d.Important
	}
	return false
}

// find returns the declaration for key which takes effect within the rule:
// the last important one, if any, otherwise the last one.
func (r Rule) find(key string) *css.Declaration {
	var last *css.Declaration
	for _, d := range r.Declarations {
		if d.Property != key {
			continue
		}
		if d.Important || last == nil || !last.Important {
			last = d
		}
	}
	return last
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements which do not parse are
// skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css = append(css, extractStyles(body)...)
	return css
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode || ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		c, err := Parse(ch.FirstChild.Data, cssom.Normal)
		if err != nil {
			tracer().Infof("skipping <style> element: %v", err)
			continue
		}
		css = append(css, c)
	}
	return css
}

// ExtractLinkedStyleSheets returns the href attributes of all
// <link rel="stylesheet"> elements of an HTML parse tree, in document order.
func ExtractLinkedStyleSheets(htmldoc *html.Node) []string {
	var hrefs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Link {
			var rel, href string
			for _, a := range n.Attr {
				switch strings.ToLower(a.Key) {
				case "rel":
					rel = a.Val
				case "href":
					href = a.Val
				}
			}
			if href != "" && hasToken(rel, "stylesheet") {
				hrefs = append(hrefs, href)
			}
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	if htmldoc != nil {
		walk(htmldoc)
	}
	return hrefs
}

func hasToken(list, token string) bool {
	for _, t := range strings.Fields(list) {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
