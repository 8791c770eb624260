/*
Package cssom provides functionality for CSS styling.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Style sheets are de-coupled from their implementation by interfaces
StyleSheet and Rule; package douceuradapter provides a concrete
implementation on top of github.com/aymerick/douceur.

A CSSOM collects style sheets from three origins: the user-agent sheet
(the browser's default.css), author sheets (<style> elements and linked
style sheets) and inline style attributes. For every HTML element it
selects the matching rules with https://godoc.org/github.com/andybalholm/cascadia
and computes a property map, ordered by

   1. importance (!important declarations win)
   2. origin (user-agent < author < inline)
   3. selector specificity
   4. order of appearance

The browser's default style sheet uses color keywords like "DfTextColor"
to let the browser substitute its own colors. When a style sheet is parsed
in ParserMode DefaultCSS, these keywords are replaced by concrete colors.

The styling component is difficult to document/describe without
diagrams. A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'dragonfly.css'.
func tracer() tracing.Trace {
	return tracing.Select("dragonfly.css")
}
