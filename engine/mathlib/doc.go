/*
Package mathlib sets up the math library of the evaluation environment.

A Library is created once, from a configuration, and then handed to the
consumers which need it. It owns the accent function registry, the
classifier deciding about accent placement, the typesetting registers
holding element defaults, and a scope binding the library's names:

    conf := testconfig.Conf{
        "math.accent.classifier": "curated",
        "math.accent.size":       "120%",
    }
    lib, err := mathlib.New(conf)
    hat, _ := lib.Lookup("hat")
    v, err := lib.Call(hat, foundations.NewArgs(foundations.Str("x")))

Configuration keys are

    math.accent.classifier   unicode (default) or curated
    math.accent.size         default accent size, e.g. 100% or 120%+1pt
    math.accent.dotless      default dotless setting, true or false

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mathlib

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathacc.lib'.
func tracer() tracing.Trace {
	return tracing.Select("mathacc.lib")
}
