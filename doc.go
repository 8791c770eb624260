/*
Package dragonfly is the root of a small headless HTML/CSS engine.

Overview

The engine pulls a page, parses it, styles it with a built-in user-agent
stylesheet plus the page's own stylesheets, and computes a layout tree.
It does not render. Sub-packages:

   assets      embedded default stylesheet and fallback font
   puller      resource retrieval from file:// and http(s):// URLs
   dom         layout tree nodes
   dom/style   CSS properties, the CSSOM and the cascade
   dom/w3cdom  a W3C-style view of the layout tree
   dom/domdbg  debugging output of the layout tree
   fonts       font lookup, fallback and glyph metrics
   layout      layout tree construction
   engine      the web context tying everything together

Command cmd/dragonfly loads pages from the command line.

This package holds the error kinds and the small geometry types shared
by all sub-packages.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dragonfly
