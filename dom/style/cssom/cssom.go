package cssom

import (
	"sort"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/dragonfly/dom/style"
	"golang.org/x/net/html"
)

// CSSOM is a collection of style sheets from different origins. It computes
// the styles of HTML elements by matching the rules of its sheets.
//
// A CSSOM is safe for concurrent use.
type CSSOM struct {
	sync.RWMutex
	rules []compiledRule
	count int // number of rules added, for ordering
}

// compiledRule is a rule with its selector group parsed by cascadia.
type compiledRule struct {
	selectors cascadia.SelectorGroup
	decls     []declaration
	origin    Origin
	order     int
}

// NewCSSOM creates an empty CSSOM.
func NewCSSOM() *CSSOM {
	return &CSSOM{}
}

// AddStyleSheet adds the rules of a style sheet with a given origin. Rules
// with selectors cascadia cannot parse (e.g., pseudo-elements) are traced
// and skipped. Returns the number of rules added.
func (cssom *CSSOM) AddStyleSheet(sheet StyleSheet, origin Origin) int {
	if sheet == nil || sheet.Empty() {
		return 0
	}
	cssom.Lock()
	defer cssom.Unlock()
	n := 0
	for _, rule := range sheet.Rules() {
		sel, err := compileSelector(rule.Selector())
		if err != nil {
			tracer().Debugf("skipping CSS rule: %v", err)
			continue
		}
		cr := compiledRule{selectors: sel, origin: origin, order: cssom.count}
		for _, key := range rule.Properties() {
			cr.decls = append(cr.decls, declaration{
				key:       strings.ToLower(key),
				value:     rule.Value(key),
				important: rule.IsImportant(key),
			})
		}
		cssom.rules = append(cssom.rules, cr)
		cssom.count++
		n++
	}
	return n
}

// Size returns the number of rules in the CSSOM.
func (cssom *CSSOM) Size() int {
	cssom.RLock()
	defer cssom.RUnlock()
	return len(cssom.rules)
}

var selectorCache = struct {
	sync.Mutex
	m map[string]cascadia.SelectorGroup
}{m: make(map[string]cascadia.SelectorGroup)}

func compileSelector(prelude string) (cascadia.SelectorGroup, error) {
	prelude = strings.TrimSpace(prelude)
	selectorCache.Lock()
	defer selectorCache.Unlock()
	if sel, ok := selectorCache.m[prelude]; ok {
		return sel, nil
	}
	sel, err := cascadia.ParseGroup(prelude)
	if err != nil {
		return nil, err
	}
	selectorCache.m[prelude] = sel
	return sel, nil
}

// match is a declaration applicable to an element, with the data needed to
// order it within the cascade.
type match struct {
	declaration
	origin      Origin
	specificity cascadia.Specificity
	order       int
}

func (m match) less(other match) bool {
	if m.important != other.important {
		return other.important
	}
	if m.origin != other.origin {
		return m.origin < other.origin
	}
	if m.specificity != other.specificity {
		return m.specificity.Less(other.specificity)
	}
	return m.order < other.order
}

// Style computes the property map for an HTML element node from the rules
// matching it and from an inline style (the content of its style attribute,
// may be empty). Returns nil for nodes other than elements.
//
// Declarations are applied in ascending order of importance, origin,
// specificity and order of appearance, i.e. the last one applied wins.
func (cssom *CSSOM) Style(node *html.Node, inline string) *style.PropertyMap {
	if node == nil || node.Type != html.ElementNode {
		return nil
	}
	var matches []match
	cssom.RLock()
	for _, rule := range cssom.rules {
		spec, ok := matchRule(rule.selectors, node)
		if !ok {
			continue
		}
		for _, d := range rule.decls {
			matches = append(matches, match{
				declaration: d,
				origin:      rule.origin,
				specificity: spec,
				order:       rule.order,
			})
		}
	}
	cssom.RUnlock()
	for _, d := range splitDeclarations(inline) {
		matches = append(matches, match{declaration: d, origin: OriginInline})
	}
	if len(matches) == 0 {
		return nil
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].less(matches[j])
	})
	pmap := style.NewPropertyMap()
	for _, m := range matches {
		pmap.AddCompound(m.key, m.value)
	}
	return pmap
}

// matchRule returns the highest specificity of the selectors of a group
// matching node.
func matchRule(group cascadia.SelectorGroup, node *html.Node) (cascadia.Specificity, bool) {
	var spec cascadia.Specificity
	found := false
	for _, sel := range group {
		if !sel.Match(node) {
			continue
		}
		if s := sel.Specificity(); !found || spec.Less(s) {
			spec = s
		}
		found = true
	}
	return spec, found
}
