package cssom

import "github.com/npillmayer/dragonfly/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the layout tree, we introduce an interface
// for CSS stylesheets. Clients for the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// Origin is the origin of a style sheet. Declarations of a higher origin
// override declarations of a lower one.
type Origin uint8

// Origins of style declarations, in ascending order of precedence.
const (
	OriginUserAgent Origin = iota // the browser's default.css
	OriginAuthor                  // <style> elements and linked style sheets
	OriginInline                  // style attributes
)

func (o Origin) String() string {
	switch o {
	case OriginUserAgent:
		return "user-agent"
	case OriginAuthor:
		return "author"
	case OriginInline:
		return "inline"
	}
	return "unknown-origin"
}
