/*
Package foundations implements the evaluation environment math functions
are called from: values, content elements, call arguments, native functions
and scopes.

The environment is small on purpose. Values carry a type and a
representation, content is an opaque tree of elements, and native functions
receive their arguments as an Args list which they consume with Expect and
Named. Arguments not consumed by a function are reported as errors after the
call.

Casting

Native functions read typed arguments through casters, i.e. functions which
convert a generic Value into a Go type or fail with a type mismatch:

    base, err := foundations.ExpectAs(args, "base", foundations.CastContent)
    size, ok, err := foundations.NamedAs(args, "size", foundations.CastRel)

Errors of argument extraction are core errors (see package core) wrapping one
of ErrMissingArgument, ErrUnexpectedArgument or ErrTypeMismatch.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package foundations

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathacc.foundations'.
func tracer() tracing.Trace {
	return tracing.Select("mathacc.foundations")
}
