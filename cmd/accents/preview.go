package main

import (
	"sync"

	"github.com/npillmayer/mathacc/core/dimen"
	"github.com/npillmayer/mathacc/engine/math/accent"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// cellWidth is the width of a terminal cell, as a stand-in for the width of
// a base in the absence of fonts.
const cellWidth = 5 * dimen.PT

var setupGraphemes sync.Once

type accentPreview struct {
	text      string // base with the accent appended
	graphemes int    // grapheme clusters of text
	cells     int    // display width of text
	baseCells int    // display width of the base alone
}

// preview appends an accent to the end of a base and measures the result.
// A combining accent merges into the last grapheme of the base.
func preview(base string, a accent.Accent) accentPreview {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	pv := accentPreview{text: base + a.String()}
	pv.baseCells = cells(grapheme.StringFromString(base))
	gstr := grapheme.StringFromString(pv.text)
	pv.graphemes = gstr.Len()
	pv.cells = cells(gstr)
	tracer().Debugf("preview %q: %d graphemes, %d cells", pv.text, pv.graphemes, pv.cells)
	return pv
}

func cells(gstr grapheme.String) int {
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		w += uax11.Width([]byte(gstr.Nth(i)), uax11.LatinContext)
	}
	return w
}
