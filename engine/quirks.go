package engine

import (
	"strings"

	"golang.org/x/net/html"
)

// QuirksMode is the rendering mode of a document, as determined by its
// doctype.
type QuirksMode uint8

// Rendering modes.
const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)

func (q QuirksMode) String() string {
	switch q {
	case LimitedQuirks:
		return "limited-quirks"
	case Quirks:
		return "quirks"
	}
	return "no-quirks"
}

// Prefixes of public identifiers which switch to quirks mode. The list is
// abridged.
var quirksPublicPrefixes = []string{
	"+//silmaril//dtd html pro v0r11 19970101//",
	"-//as//dtd html 3.0 aswedit + extensions//",
	"-//ietf//dtd html 2.0",
	"-//ietf//dtd html 3",
	"-//ietf//dtd html level",
	"-//ietf//dtd html strict",
	"-//ietf//dtd html//",
	"-//microsoft//dtd internet explorer",
	"-//netscape comm. corp.//dtd",
	"-//o'reilly and associates//dtd html",
	"-//softquad",
	"-//spyglass//dtd html 2.0 extended//",
	"-//sun microsystems corp.//dtd hotjava",
	"-//w3c//dtd html 3",
	"-//w3c//dtd html 4.0 frameset//",
	"-//w3c//dtd html 4.0 transitional//",
	"-//w3c//dtd w3 html//",
	"-//w3o//dtd w3 html 3.0//",
	"-//webtechs//dtd mozilla html",
}

// QuirksModeOf derives the rendering mode of a parsed document from its
// doctype. A document without a doctype is rendered in quirks mode.
func QuirksModeOf(doc *html.Node) QuirksMode {
	dt := doctype(doc)
	if dt == nil {
		return Quirks
	}
	if !strings.EqualFold(dt.Data, "html") {
		return Quirks
	}
	var public, system string
	var hasSystem bool
	for _, a := range dt.Attr {
		switch a.Key {
		case "public":
			public = strings.ToLower(a.Val)
		case "system":
			system = strings.ToLower(a.Val)
			hasSystem = true
		}
	}
	switch public {
	case "-//w3o//dtd w3 html strict 3.0//en//", "-/w3c/dtd html 4.0 transitional/en", "html":
		return Quirks
	}
	if system == "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd" {
		return Quirks
	}
	for _, prefix := range quirksPublicPrefixes {
		if strings.HasPrefix(public, prefix) {
			return Quirks
		}
	}
	if strings.HasPrefix(public, "-//w3c//dtd html 4.01 frameset//") ||
		strings.HasPrefix(public, "-//w3c//dtd html 4.01 transitional//") {
		if !hasSystem {
			return Quirks
		}
		return LimitedQuirks
	}
	if strings.HasPrefix(public, "-//w3c//dtd xhtml 1.0 frameset//") ||
		strings.HasPrefix(public, "-//w3c//dtd xhtml 1.0 transitional//") {
		return LimitedQuirks
	}
	return NoQuirks
}

func doctype(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.DoctypeNode {
			return c
		}
	}
	return nil
}
