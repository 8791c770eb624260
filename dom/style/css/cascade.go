package css

import (
	"fmt"

	"github.com/npillmayer/dragonfly"
	"github.com/npillmayer/dragonfly/dom/style"
	"github.com/npillmayer/dragonfly/tree"
)

// StyledNode is a tree payload carrying style properties.
// The property map holds the properties set for the node by the style
// sheets and by inline styles, not the computed values.
type StyledNode interface {
	comparable
	Styles() *style.PropertyMap // may be nil
	ElementName() string        // lower case element name or "#text"
}

// GetCascadedProperty gets the value of a property. The search cascades to
// parent property maps, if available.
//
// Clients will usually call GetProperty(…) instead as this will respect
// CSS semantics for inherited properties.
//
// The call to GetCascadedProperty will flag an error if the style property
// isn't found (which should not happen for properties contained in the
// user-agent default style properties).
func GetCascadedProperty[S StyledNode](node *tree.Node[S], key string) (style.Property, error) {
	for it := node; it != nil; it = it.Parent() {
		p := GetLocalProperty(it.Payload.Styles(), key)
		if !p.IsUnset() {
			return p, nil
		}
	}
	if p, ok := style.UserAgentDefaults().Property(key); ok {
		return p, nil
	}
	return style.NullStyle, fmt.Errorf("%w: %s", dragonfly.ErrUnknownStyleProperty, key)
}

// GetProperty gets the value of a property. If the property is not set
// locally on the style node and the property is inheritable, the search
// cascades to parent property maps, if available. A value of "inherit"
// will always be taken from the parent.
//
// Non-inherited properties not set locally are taken from the user-agent
// defaults. Properties which are neither set nor known flag an error
// dragonfly.ErrUnknownStyleProperty.
func GetProperty[S StyledNode](node *tree.Node[S], key string) (style.Property, error) {
	if node == nil {
		return style.NullStyle, fmt.Errorf("cannot get property %q of nil node", key)
	}
	if style.IsCascading(key) {
		return GetCascadedProperty(node, key)
	}
	p := GetLocalProperty(node.Payload.Styles(), key)
	if p.IsInherit() && node.Parent() != nil {
		return GetProperty(node.Parent(), key)
	}
	if p.IsUnset() {
		p = style.GetUserAgentDefaultProperty(node.Payload.ElementName(), key)
		if p.IsEmpty() && style.GroupNameFromPropertyKey(key) == style.PGX {
			return style.NullStyle, fmt.Errorf("%w: %s", dragonfly.ErrUnknownStyleProperty, key)
		}
	}
	return p, nil
}

// GetLocalProperty returns a style property value, if it is set locally
// for a styled node's property map. No cascading is performed.
func GetLocalProperty(pmap *style.PropertyMap, key string) style.Property {
	groupname := style.GroupNameFromPropertyKey(key)
	group := pmap.Group(groupname)
	if group == nil {
		return style.NullStyle
	}
	p, _ := group.Get(key)
	return p
}
