/*
Package accent implements math accents, i.e. marks attached above or below
a base expression, like the hat in x̂ or the arrow of a vector.

Accents may be designated by the combining character itself, by one of a
list of aliases (`^` for the circumflex, `→` or `⟶` for the combining
arrow above, etc.), or by a single-character symbol. Resolution follows the
order of a fixed table; the first matching entry wins:

    a, ok := accent.Combining("→")   // U+20D7 COMBINING RIGHT ARROW ABOVE
    a, ok  = accent.Normalize("q")   // not in the table, 'q' verbatim

Whether an accent is drawn above or below its base is decided by a
Classifier. Two strategies exist: one consulting the canonical combining
class from the Unicode normalization tables, and one using a curated list of
well-known marks. Both treat horizontal brackets below (⏟ ⎵ ⏝ ⏡) as bottom
accents.

Every table entry is available as a native function of the evaluation
environment, created once by a Registry:

    reg := accent.NewRegistry()
    f, _ := reg.Func("→")
    v, err := f.Call(foundations.NewArgs(foundations.Str("v")))

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package accent

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathacc.accent'.
func tracer() tracing.Trace {
	return tracing.Select("mathacc.accent")
}
