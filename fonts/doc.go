/*
Package fonts manages the fonts used for measuring text.

A Manager holds one face for each of the generic CSS font families
(serif, sans-serif, monospace, cursive and fantasy) and a fallback face,
which is compiled into the executable (see package assets). Every slot
starts out with the fallback face; system fonts replace it once they are
loaded. Fonts requested by family name are looked up on the system and
kept in an LRU cache.

Font files are parsed with golang.org/x/image/font/sfnt, system fonts are
located with github.com/flopp/go-findfont.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fonts

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dragonfly.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("dragonfly.fonts")
}
