/*
Package textindex maintains a vocabulary index over an ordered set.

The index tokenizes UTF-8 text into words, using the segmenters from the uax
module, and keeps each distinct word together with an occurrence count in an
ordered B-tree container. Besides plain text, the index ingests HTML
fragments (tags stripped) and whole text files; file loading happens
asynchronously with broadcast progress events while preserving a synchronous
`Wait` barrier.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textindex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'oset'
func tracer() tracing.Trace {
	return tracing.Select("oset")
}
